package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Expense handler functions
//
// Expenses are append-only: they are created against a budget and disappear
// only when that budget is deleted. No update or delete endpoint exists.

// fetchExpense loads a single expense row by id
func fetchExpense(id int64) (Expense, error) {
	var expense Expense
	var description sql.NullString

	err := db.QueryRow(`
		SELECT id, budget_id, amount, date, description
		FROM expenses
		WHERE id = ?
	`, id).Scan(&expense.ID, &expense.BudgetID, &expense.Amount, &expense.Date, &description)
	if err != nil {
		return Expense{}, err
	}

	expense.Description = nullableString(description)
	return expense, nil
}

// @Summary Create expense
// @Description Record a new expense against a budget
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body ExpenseRequest true "Expense data"
// @Success 201 {object} Expense "Created expense"
// @Failure 400 {object} map[string]interface{} "Bad request or unknown budget"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /expenses/ [post]
func createExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.BudgetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budget_id cannot be empty"})
		return
	}
	if err := validateDate("date", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// budget_id is guarded by the engine's foreign key enforcement; a
	// violation surfaces here and maps to a 400.
	res, err := db.Exec(`
		INSERT INTO expenses (budget_id, amount, date, description)
		VALUES (?, ?, ?, ?)
	`, req.BudgetID, req.Amount, req.Date, optionalParam(req.Description))
	if err != nil {
		log.Printf("Error creating expense: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Printf("Error reading expense id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating expense"})
		return
	}

	expense, err := fetchExpense(id)
	if err != nil {
		log.Printf("Error fetching created expense %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, expense)
}
