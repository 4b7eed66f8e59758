package main

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Invoice handler functions

// vatRate is the flat 19% VAT applied to every invoice
var vatRate = decimal.NewFromFloat(1.19)

// grossFromNet derives the VAT-inclusive gross amount. Decimal arithmetic
// rounded to cents keeps the stored value free of binary rounding drift.
func grossFromNet(net float64) float64 {
	gross, _ := decimal.NewFromFloat(net).Mul(vatRate).Round(2).Float64()
	return gross
}

// fetchInvoice loads a single invoice row by id
func fetchInvoice(id int64) (Invoice, error) {
	var invoice Invoice
	var contractNumber sql.NullString

	err := db.QueryRow(`
		SELECT id, invoice_number, invoice_date, contract_number, cost_center,
		       amount_net, amount_gross
		FROM invoices
		WHERE id = ?
	`, id).Scan(&invoice.ID, &invoice.InvoiceNumber, &invoice.InvoiceDate,
		&contractNumber, &invoice.CostCenter, &invoice.AmountNet, &invoice.AmountGross)
	if err != nil {
		return Invoice{}, err
	}

	invoice.ContractNumber = nullableString(contractNumber)
	return invoice, nil
}

// @Summary Create invoice
// @Description Create a new invoice. The gross amount is derived as net x 1.19 at creation time and persisted.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body InvoiceRequest true "Invoice data"
// @Success 201 {object} Invoice "Created invoice with derived gross amount"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /invoices/ [post]
func createInvoice(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateRequired("invoice_number", req.InvoiceNumber); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateRequired("cost_center", req.CostCenter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateDate("invoice_date", req.InvoiceDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := db.Exec(`
		INSERT INTO invoices (invoice_number, invoice_date, contract_number,
		                      cost_center, amount_net, amount_gross)
		VALUES (?, ?, ?, ?, ?, ?)
	`, req.InvoiceNumber, req.InvoiceDate, optionalParam(req.ContractNumber),
		req.CostCenter, req.AmountNet, grossFromNet(req.AmountNet))
	if err != nil {
		log.Printf("Error creating invoice: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Printf("Error reading invoice id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating invoice"})
		return
	}

	invoice, err := fetchInvoice(id)
	if err != nil {
		log.Printf("Error fetching created invoice %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// @Summary Get all invoices
// @Description Retrieve all invoices from the database
// @Tags invoices
// @Produce json
// @Success 200 {array} Invoice "List of invoices"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /invoices/ [get]
func getInvoices(c *gin.Context) {
	rows, err := db.Query(`
		SELECT id, invoice_number, invoice_date, contract_number, cost_center,
		       amount_net, amount_gross
		FROM invoices
	`)
	if err != nil {
		log.Printf("Error fetching invoices: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching invoices"})
		return
	}
	defer rows.Close()

	invoices := make([]Invoice, 0)
	for rows.Next() {
		var invoice Invoice
		var contractNumber sql.NullString

		err := rows.Scan(&invoice.ID, &invoice.InvoiceNumber, &invoice.InvoiceDate,
			&contractNumber, &invoice.CostCenter, &invoice.AmountNet, &invoice.AmountGross)
		if err != nil {
			log.Printf("Error scanning invoice: %v", err)
			continue
		}

		invoice.ContractNumber = nullableString(contractNumber)
		invoices = append(invoices, invoice)
	}

	c.JSON(http.StatusOK, invoices)
}

// @Summary Delete invoice
// @Description Delete a specific invoice by ID
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} map[string]interface{} "Invoice deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Invoice not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /invoices/{id} [delete]
func deleteInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID"})
		return
	}

	if _, err := fetchInvoice(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	if _, err := db.Exec("DELETE FROM invoices WHERE id = ?", id); err != nil {
		log.Printf("Error deleting invoice %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
