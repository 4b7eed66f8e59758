package main

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var errInvalidAmount = errors.New("amount must be a number")

// Validation functions

// validateRequired validates that a field is not empty or just whitespace
func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	return nil
}

// validateDate validates that a date string is in YYYY-MM-DD format
func validateDate(field, value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return nil
}

// validateOptionalDate validates a date string that may be absent or empty
func validateOptionalDate(field string, value *string) error {
	if value == nil || *value == "" {
		return nil
	}
	return validateDate(field, *value)
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	if errors.Is(err, sql.ErrNoRows) {
		return http.StatusNotFound, "Resource not found"
	}

	errorStr := err.Error()

	// SQLite reports a broken expense->budget reference this way
	if strings.Contains(errorStr, "FOREIGN KEY constraint failed") {
		return http.StatusBadRequest, "Budget not found"
	}

	// Busy/locked single-writer engine; fatal to this request, never retried
	if strings.Contains(errorStr, "database is locked") || strings.Contains(errorStr, "SQLITE_BUSY") {
		return http.StatusInternalServerError, "Database unavailable"
	}

	return http.StatusInternalServerError, "Internal server error"
}

// nullableString converts a sql.NullString to a *string for JSON responses
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// optionalParam converts a *string request field into a driver-friendly value
func optionalParam(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
