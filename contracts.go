package main

import (
	"database/sql"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Contract handler functions

// contractForm holds the parsed multipart form fields of a create/update request
type contractForm struct {
	ContractNumber *string
	Partner        string
	ContractDate   *string
	StartDate      string
	EndDate        string
	NoticePeriod   string
	Amount         float64
	Category       string
	Notes          *string
}

// parseContractForm reads and validates the contract form fields. Validation
// happens in full before any write so a malformed request never leaves a
// partial row behind.
func parseContractForm(c *gin.Context) (*contractForm, error) {
	form := &contractForm{
		Partner:      c.PostForm("partner"),
		StartDate:    c.PostForm("start_date"),
		EndDate:      c.PostForm("end_date"),
		NoticePeriod: c.PostForm("notice_period"),
		Category:     c.PostForm("category"),
	}

	if v := c.PostForm("contract_number"); v != "" {
		form.ContractNumber = &v
	}
	if v := c.PostForm("contract_date"); v != "" {
		form.ContractDate = &v
	}
	if v := c.PostForm("notes"); v != "" {
		form.Notes = &v
	}

	for field, value := range map[string]string{
		"partner":       form.Partner,
		"start_date":    form.StartDate,
		"end_date":      form.EndDate,
		"notice_period": form.NoticePeriod,
		"category":      form.Category,
	} {
		if err := validateRequired(field, value); err != nil {
			return nil, err
		}
	}

	if err := validateDate("start_date", form.StartDate); err != nil {
		return nil, err
	}
	if err := validateDate("end_date", form.EndDate); err != nil {
		return nil, err
	}
	if err := validateOptionalDate("contract_date", form.ContractDate); err != nil {
		return nil, err
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		return nil, errInvalidAmount
	}
	form.Amount = amount

	return form, nil
}

// fetchContract loads a single contract row by id
func fetchContract(id int64) (Contract, error) {
	var contract Contract
	var contractNumber, contractDate, documentPath, notes sql.NullString

	err := db.QueryRow(`
		SELECT id, contract_number, partner, contract_date, start_date, end_date,
		       notice_period, amount, category, document_path, notes
		FROM contracts
		WHERE id = ?
	`, id).Scan(&contract.ID, &contractNumber, &contract.Partner, &contractDate,
		&contract.StartDate, &contract.EndDate, &contract.NoticePeriod,
		&contract.Amount, &contract.Category, &documentPath, &notes)
	if err != nil {
		return Contract{}, err
	}

	contract.ContractNumber = nullableString(contractNumber)
	contract.ContractDate = nullableString(contractDate)
	contract.DocumentPath = nullableString(documentPath)
	contract.Notes = nullableString(notes)

	return contract, nil
}

// @Summary Create contract
// @Description Create a new contract from multipart form fields, optionally attaching a document
// @Tags contracts
// @Accept multipart/form-data
// @Produce json
// @Param partner formData string true "Contract partner"
// @Param start_date formData string true "Start date (YYYY-MM-DD)"
// @Param end_date formData string true "End date (YYYY-MM-DD)"
// @Param notice_period formData string true "Notice period"
// @Param amount formData number true "Contract amount"
// @Param category formData string true "Category"
// @Param contract_number formData string false "Contract number"
// @Param contract_date formData string false "Contract date (YYYY-MM-DD)"
// @Param notes formData string false "Notes"
// @Param file formData file false "Attached document"
// @Success 201 {object} Contract "Created contract"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contracts/ [post]
func createContract(c *gin.Context) {
	form, err := parseContractForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := db.Exec(`
		INSERT INTO contracts (contract_number, partner, contract_date, start_date,
		                       end_date, notice_period, amount, category, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, optionalParam(form.ContractNumber), form.Partner, optionalParam(form.ContractDate),
		form.StartDate, form.EndDate, form.NoticePeriod, form.Amount, form.Category,
		optionalParam(form.Notes))
	if err != nil {
		log.Printf("Error creating contract: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Printf("Error reading contract id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating contract"})
		return
	}

	// The row is inserted first so the generated id can be embedded in the
	// stored filename.
	if fileHeader, err := c.FormFile("file"); err == nil {
		path, err := saveDocument(fileHeader, id)
		if err != nil {
			log.Printf("Error storing document for contract %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing document"})
			return
		}
		if _, err := db.Exec("UPDATE contracts SET document_path = ? WHERE id = ?", path, id); err != nil {
			log.Printf("Error linking document for contract %d: %v", id, err)
			statusCode, message := handleDatabaseError(err)
			c.JSON(statusCode, gin.H{"error": message})
			return
		}
	}

	contract, err := fetchContract(id)
	if err != nil {
		log.Printf("Error fetching created contract %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, contract)
}

// @Summary Get all contracts
// @Description Retrieve all contracts from the database
// @Tags contracts
// @Produce json
// @Success 200 {array} Contract "List of contracts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contracts/ [get]
func getContracts(c *gin.Context) {
	rows, err := db.Query(`
		SELECT id, contract_number, partner, contract_date, start_date, end_date,
		       notice_period, amount, category, document_path, notes
		FROM contracts
	`)
	if err != nil {
		log.Printf("Error fetching contracts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching contracts"})
		return
	}
	defer rows.Close()

	contracts := make([]Contract, 0)
	for rows.Next() {
		var contract Contract
		var contractNumber, contractDate, documentPath, notes sql.NullString

		err := rows.Scan(&contract.ID, &contractNumber, &contract.Partner, &contractDate,
			&contract.StartDate, &contract.EndDate, &contract.NoticePeriod,
			&contract.Amount, &contract.Category, &documentPath, &notes)
		if err != nil {
			log.Printf("Error scanning contract: %v", err)
			continue
		}

		contract.ContractNumber = nullableString(contractNumber)
		contract.ContractDate = nullableString(contractDate)
		contract.DocumentPath = nullableString(documentPath)
		contract.Notes = nullableString(notes)

		contracts = append(contracts, contract)
	}

	c.JSON(http.StatusOK, contracts)
}

// @Summary Get contract
// @Description Retrieve a single contract by ID
// @Tags contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} Contract "Contract"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Contract not found"
// @Router /contracts/{id} [get]
func getContract(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	contract, err := fetchContract(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// @Summary Update contract
// @Description Overwrite every field of an existing contract, optionally replacing its document
// @Tags contracts
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Contract ID"
// @Param partner formData string true "Contract partner"
// @Param start_date formData string true "Start date (YYYY-MM-DD)"
// @Param end_date formData string true "End date (YYYY-MM-DD)"
// @Param notice_period formData string true "Notice period"
// @Param amount formData number true "Contract amount"
// @Param category formData string true "Category"
// @Param contract_number formData string false "Contract number"
// @Param contract_date formData string false "Contract date (YYYY-MM-DD)"
// @Param notes formData string false "Notes"
// @Param file formData file false "Replacement document"
// @Success 200 {object} Contract "Updated contract"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Contract not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contracts/{id} [put]
func updateContract(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	if _, err := fetchContract(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	form, err := parseContractForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A replacement document is written before the row update; the previous
	// file is deliberately left on disk.
	var documentPath *string
	if fileHeader, err := c.FormFile("file"); err == nil {
		path, err := saveDocument(fileHeader, id)
		if err != nil {
			log.Printf("Error storing document for contract %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing document"})
			return
		}
		documentPath = &path
	}

	if documentPath != nil {
		_, err = db.Exec(`
			UPDATE contracts
			SET contract_number = ?, partner = ?, contract_date = ?, start_date = ?,
			    end_date = ?, notice_period = ?, amount = ?, category = ?, notes = ?,
			    document_path = ?
			WHERE id = ?
		`, optionalParam(form.ContractNumber), form.Partner, optionalParam(form.ContractDate),
			form.StartDate, form.EndDate, form.NoticePeriod, form.Amount, form.Category,
			optionalParam(form.Notes), *documentPath, id)
	} else {
		_, err = db.Exec(`
			UPDATE contracts
			SET contract_number = ?, partner = ?, contract_date = ?, start_date = ?,
			    end_date = ?, notice_period = ?, amount = ?, category = ?, notes = ?
			WHERE id = ?
		`, optionalParam(form.ContractNumber), form.Partner, optionalParam(form.ContractDate),
			form.StartDate, form.EndDate, form.NoticePeriod, form.Amount, form.Category,
			optionalParam(form.Notes), id)
	}
	if err != nil {
		log.Printf("Error updating contract %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	contract, err := fetchContract(id)
	if err != nil {
		log.Printf("Error fetching updated contract %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, contract)
}

// @Summary Delete contract
// @Description Delete a specific contract by ID. Any attached document stays on disk.
// @Tags contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} map[string]interface{} "Contract deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Contract not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contracts/{id} [delete]
func deleteContract(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	if _, err := fetchContract(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	if _, err := db.Exec("DELETE FROM contracts WHERE id = ?", id); err != nil {
		log.Printf("Error deleting contract %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contract deleted successfully"})
}

// @Summary Download contract document
// @Description Download the document attached to a contract. A missing row and a
// @Description missing file are reported as distinct 404s.
// @Tags contracts
// @Produce octet-stream
// @Param id path int true "Contract ID"
// @Success 200 {file} binary "Document bytes"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Contract or document not found"
// @Router /contracts/{id}/document [get]
func downloadContractDocument(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	contract, err := fetchContract(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	if contract.DocumentPath == nil || !documentExists(*contract.DocumentPath) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.FileAttachment(*contract.DocumentPath, filepath.Base(*contract.DocumentPath))
}
