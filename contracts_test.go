package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContract(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("returns every submitted field and a fresh id", func(t *testing.T) {
		fields := validContractFields()
		w := makeMultipartRequest("POST", "/contracts/", fields, "", nil)

		assert.Equal(t, http.StatusCreated, w.Code)

		var contract Contract
		require.NoError(t, parseJSONResponse(w, &contract))

		assert.NotZero(t, contract.ID)
		require.NotNil(t, contract.ContractNumber)
		assert.Equal(t, "V-2026-001", *contract.ContractNumber)
		assert.Equal(t, "Max Mustermann GmbH", contract.Partner)
		require.NotNil(t, contract.ContractDate)
		assert.Equal(t, "2026-01-10", *contract.ContractDate)
		assert.Equal(t, "2026-02-01", contract.StartDate)
		assert.Equal(t, "2027-01-31", contract.EndDate)
		assert.Equal(t, "3 Monate", contract.NoticePeriod)
		assert.Equal(t, 199.99, contract.Amount)
		assert.Equal(t, "Miete", contract.Category)
		require.NotNil(t, contract.Notes)
		assert.Equal(t, "Zusatzvereinbarung folgt", *contract.Notes)
		assert.Nil(t, contract.DocumentPath)
	})

	t.Run("assigns a previously unused id to each contract", func(t *testing.T) {
		first := createTestContract(t, validContractFields(), "", nil)
		second := createTestContract(t, validContractFields(), "", nil)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("optional fields may be omitted", func(t *testing.T) {
		fields := validContractFields()
		delete(fields, "contract_number")
		delete(fields, "contract_date")
		delete(fields, "notes")

		w := makeMultipartRequest("POST", "/contracts/", fields, "", nil)
		assert.Equal(t, http.StatusCreated, w.Code)

		var contract Contract
		require.NoError(t, parseJSONResponse(w, &contract))
		assert.Nil(t, contract.ContractNumber)
		assert.Nil(t, contract.ContractDate)
		assert.Nil(t, contract.Notes)
	})

	t.Run("rejects missing required field", func(t *testing.T) {
		fields := validContractFields()
		delete(fields, "partner")

		w := makeMultipartRequest("POST", "/contracts/", fields, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed date without a partial write", func(t *testing.T) {
		require.NoError(t, cleanupTestData())

		fields := validContractFields()
		fields["start_date"] = "01.02.2026"

		w := makeMultipartRequest("POST", "/contracts/", fields, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		listResp := makeRequest("GET", "/contracts/", nil)
		var contracts []Contract
		require.NoError(t, parseJSONResponse(listResp, &contracts))
		assert.Empty(t, contracts)
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		fields := validContractFields()
		fields["amount"] = "viel"

		w := makeMultipartRequest("POST", "/contracts/", fields, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetContract(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	contract := createTestContract(t, validContractFields(), "", nil)

	t.Run("repeated reads return identical field values", func(t *testing.T) {
		url := "/contracts/" + itoa(contract.ID)

		first := makeRequest("GET", url, nil)
		second := makeRequest("GET", url, nil)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		w := makeRequest("GET", "/contracts/999999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListContracts(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	t.Run("empty store yields an empty list not null", func(t *testing.T) {
		w := makeRequest("GET", "/contracts/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("lists every stored contract", func(t *testing.T) {
		createTestContract(t, validContractFields(), "", nil)
		createTestContract(t, validContractFields(), "", nil)

		w := makeRequest("GET", "/contracts/", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var contracts []Contract
		require.NoError(t, parseJSONResponse(w, &contracts))
		assert.Len(t, contracts, 2)
	})
}

func TestUpdateContract(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	contract := createTestContract(t, validContractFields(), "", nil)

	t.Run("overwrites every provided field", func(t *testing.T) {
		fields := validContractFields()
		fields["partner"] = "Beispiel AG"
		fields["amount"] = "250"
		fields["category"] = "Versicherung"
		delete(fields, "notes")

		w := makeMultipartRequest("PUT", "/contracts/"+itoa(contract.ID), fields, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var updated Contract
		require.NoError(t, parseJSONResponse(w, &updated))

		assert.Equal(t, contract.ID, updated.ID)
		assert.Equal(t, "Beispiel AG", updated.Partner)
		assert.Equal(t, 250.0, updated.Amount)
		assert.Equal(t, "Versicherung", updated.Category)
		assert.Nil(t, updated.Notes)
	})

	t.Run("rejects malformed date without mutating the row", func(t *testing.T) {
		fields := validContractFields()
		fields["end_date"] = "soon"

		w := makeMultipartRequest("PUT", "/contracts/"+itoa(contract.ID), fields, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		current := makeRequest("GET", "/contracts/"+itoa(contract.ID), nil)
		var got Contract
		require.NoError(t, parseJSONResponse(current, &got))
		assert.Equal(t, "2027-01-31", got.EndDate)
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		w := makeMultipartRequest("PUT", "/contracts/999999", validContractFields(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteContract(t *testing.T) {
	if err := cleanupTestData(); err != nil {
		t.Fatalf("Failed to cleanup test data: %v", err)
	}

	contract := createTestContract(t, validContractFields(), "", nil)

	t.Run("removes the row", func(t *testing.T) {
		w := makeRequest("DELETE", "/contracts/"+itoa(contract.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(w, &response))
		assert.Equal(t, "Contract deleted successfully", response["message"])

		after := makeRequest("GET", "/contracts/"+itoa(contract.ID), nil)
		assert.Equal(t, http.StatusNotFound, after.Code)
	})

	t.Run("returns 404 on repeat delete", func(t *testing.T) {
		w := makeRequest("DELETE", "/contracts/"+itoa(contract.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
