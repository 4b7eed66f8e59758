package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
)

var (
	testRouter  *gin.Engine
	testTempDir string
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	// Set gin to test mode
	gin.SetMode(gin.TestMode)

	if err := setupTestEnv(); err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	teardownTestEnv()

	os.Exit(code)
}

// setupTestEnv creates a throwaway SQLite database and document directory,
// runs the embedded migrations and wires the same router as main
func setupTestEnv() error {
	dir, err := os.MkdirTemp("", "vertragsdb-test-")
	if err != nil {
		return err
	}
	testTempDir = dir

	documentDir = filepath.Join(dir, "documents")
	dbPath := filepath.Join(dir, "test.db")

	db, err = openDatabase(dbPath)
	if err != nil {
		return err
	}

	if err := runMigrations(dbPath); err != nil {
		return err
	}

	testRouter = gin.New()
	registerRoutes(testRouter)

	return nil
}

// teardownTestEnv closes the database and removes the temp directory
func teardownTestEnv() {
	if db != nil {
		db.Close()
	}
	if testTempDir != "" {
		os.RemoveAll(testTempDir)
	}
}

// cleanupTestData removes all data from test tables
func cleanupTestData() error {
	// Clean in reverse dependency order
	for _, table := range []string{"expenses", "budgets", "contracts", "invoices"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}
	return nil
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeJSONRequest marshals a payload and sends it as a JSON request body
func makeJSONRequest(method, url string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return makeRequest(method, url, bytes.NewBuffer(body))
}

// makeMultipartRequest helper function for making multipart form requests,
// optionally with an uploaded file
func makeMultipartRequest(method, url string, fields map[string]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			panic(err)
		}
	}

	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			panic(err)
		}
		part.Write(fileContent)
	}

	writer.Close()

	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// itoa formats an entity id for request URLs
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// validContractFields returns a complete contract form for tests to tweak
func validContractFields() map[string]string {
	return map[string]string{
		"contract_number": "V-2026-001",
		"partner":         "Max Mustermann GmbH",
		"contract_date":   "2026-01-10",
		"start_date":      "2026-02-01",
		"end_date":        "2027-01-31",
		"notice_period":   "3 Monate",
		"amount":          "199.99",
		"category":        "Miete",
		"notes":           "Zusatzvereinbarung folgt",
	}
}

// createTestContract creates a contract via the API and returns it
func createTestContract(t *testing.T, fields map[string]string, fileName string, fileContent []byte) Contract {
	t.Helper()

	w := makeMultipartRequest("POST", "/contracts/", fields, fileName, fileContent)
	if w.Code != 201 {
		t.Fatalf("Failed to create test contract: status %d, body %s", w.Code, w.Body.String())
	}

	var contract Contract
	if err := parseJSONResponse(w, &contract); err != nil {
		t.Fatalf("Failed to parse test contract: %v", err)
	}
	return contract
}

// createTestBudget creates a budget via the API and returns it
func createTestBudget(t *testing.T, req BudgetRequest) Budget {
	t.Helper()

	w := makeJSONRequest("POST", "/budgets/", req)
	if w.Code != 201 {
		t.Fatalf("Failed to create test budget: status %d, body %s", w.Code, w.Body.String())
	}

	var budget Budget
	if err := parseJSONResponse(w, &budget); err != nil {
		t.Fatalf("Failed to parse test budget: %v", err)
	}
	return budget
}
