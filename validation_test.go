package main

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	t.Run("accepts YYYY-MM-DD", func(t *testing.T) {
		require.NoError(t, validateDate("start_date", "2026-02-01"))
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, value := range []string{"01.02.2026", "2026/02/01", "2026-2-1", "tomorrow", ""} {
			err := validateDate("start_date", value)
			assert.Error(t, err, "value %q should be rejected", value)
		}
	})

	t.Run("optional date accepts nil and empty", func(t *testing.T) {
		assert.NoError(t, validateOptionalDate("contract_date", nil))
		empty := ""
		assert.NoError(t, validateOptionalDate("contract_date", &empty))

		bad := "never"
		assert.Error(t, validateOptionalDate("contract_date", &bad))
	})
}

func TestValidateRequired(t *testing.T) {
	t.Run("rejects empty and whitespace-only values", func(t *testing.T) {
		assert.Error(t, validateRequired("partner", ""))
		assert.Error(t, validateRequired("partner", "   "))
	})

	t.Run("accepts non-empty values", func(t *testing.T) {
		assert.NoError(t, validateRequired("partner", "Beispiel AG"))
	})

	t.Run("names the offending field", func(t *testing.T) {
		err := validateRequired("notice_period", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notice_period")
	})
}

func TestHandleDatabaseError(t *testing.T) {
	t.Run("no rows maps to 404", func(t *testing.T) {
		status, _ := handleDatabaseError(sql.ErrNoRows)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("foreign key violation maps to 400", func(t *testing.T) {
		status, message := handleDatabaseError(errors.New("constraint failed: FOREIGN KEY constraint failed (787)"))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Budget not found", message)
	})

	t.Run("locked database maps to 500", func(t *testing.T) {
		status, message := handleDatabaseError(errors.New("database is locked (5) (SQLITE_BUSY)"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Database unavailable", message)
	})

	t.Run("anything else maps to 500", func(t *testing.T) {
		status, _ := handleDatabaseError(errors.New("disk I/O error"))
		assert.Equal(t, http.StatusInternalServerError, status)
	})
}

func TestGrossFromNet(t *testing.T) {
	t.Run("flat 19 percent VAT", func(t *testing.T) {
		assert.Equal(t, 119.0, grossFromNet(100))
		assert.Equal(t, 0.0, grossFromNet(0))
	})

	t.Run("rounds to cents", func(t *testing.T) {
		// 99.99 * 1.19 = 118.9881
		assert.Equal(t, 118.99, grossFromNet(99.99))
		// 0.01 * 1.19 = 0.0119
		assert.Equal(t, 0.01, grossFromNet(0.01))
		// 33.33 * 1.19 = 39.6627
		assert.Equal(t, 39.66, grossFromNet(33.33))
	})
}
