package main

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Budget handler functions

// validateBudgetRequest checks dates before any write occurs
func validateBudgetRequest(req *BudgetRequest) error {
	if err := validateDate("start_date", req.StartDate); err != nil {
		return err
	}
	return validateDate("end_date", req.EndDate)
}

// fetchBudgetExpenses loads all expenses owned by a budget
func fetchBudgetExpenses(budgetID int64) ([]Expense, error) {
	rows, err := db.Query(`
		SELECT id, budget_id, amount, date, description
		FROM expenses
		WHERE budget_id = ?
	`, budgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]Expense, 0)
	for rows.Next() {
		var expense Expense
		var description sql.NullString

		if err := rows.Scan(&expense.ID, &expense.BudgetID, &expense.Amount,
			&expense.Date, &description); err != nil {
			return nil, err
		}

		expense.Description = nullableString(description)
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

// fetchBudget loads a budget row together with its expenses
func fetchBudget(id int64) (Budget, error) {
	var budget Budget
	var contractNumber sql.NullString

	err := db.QueryRow(`
		SELECT id, contract_number, initial_amount, start_date, end_date
		FROM budgets
		WHERE id = ?
	`, id).Scan(&budget.ID, &contractNumber, &budget.InitialAmount,
		&budget.StartDate, &budget.EndDate)
	if err != nil {
		return Budget{}, err
	}

	budget.ContractNumber = nullableString(contractNumber)

	expenses, err := fetchBudgetExpenses(id)
	if err != nil {
		return Budget{}, err
	}
	budget.Expenses = expenses

	return budget, nil
}

// @Summary Create budget
// @Description Create a new budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body BudgetRequest true "Budget data"
// @Success 201 {object} Budget "Created budget"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /budgets/ [post]
func createBudget(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateBudgetRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := db.Exec(`
		INSERT INTO budgets (contract_number, initial_amount, start_date, end_date)
		VALUES (?, ?, ?, ?)
	`, optionalParam(req.ContractNumber), req.InitialAmount, req.StartDate, req.EndDate)
	if err != nil {
		log.Printf("Error creating budget: %v", err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Printf("Error reading budget id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating budget"})
		return
	}

	budget, err := fetchBudget(id)
	if err != nil {
		log.Printf("Error fetching created budget %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// @Summary Get all budgets
// @Description Retrieve all budgets, each with its expenses nested
// @Tags budgets
// @Produce json
// @Success 200 {array} Budget "List of budgets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /budgets/ [get]
func getBudgets(c *gin.Context) {
	rows, err := db.Query(`
		SELECT id, contract_number, initial_amount, start_date, end_date
		FROM budgets
	`)
	if err != nil {
		log.Printf("Error fetching budgets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching budgets"})
		return
	}
	defer rows.Close()

	budgets := make([]Budget, 0)
	for rows.Next() {
		var budget Budget
		var contractNumber sql.NullString

		err := rows.Scan(&budget.ID, &contractNumber, &budget.InitialAmount,
			&budget.StartDate, &budget.EndDate)
		if err != nil {
			log.Printf("Error scanning budget: %v", err)
			continue
		}

		budget.ContractNumber = nullableString(contractNumber)
		budget.Expenses = make([]Expense, 0)
		budgets = append(budgets, budget)
	}
	rows.Close()

	// Attach expenses in one pass instead of one query per budget
	byBudget := make(map[int64]int, len(budgets))
	for i, budget := range budgets {
		byBudget[budget.ID] = i
	}

	expenseRows, err := db.Query(`
		SELECT id, budget_id, amount, date, description
		FROM expenses
	`)
	if err != nil {
		log.Printf("Error fetching expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching budgets"})
		return
	}
	defer expenseRows.Close()

	for expenseRows.Next() {
		var expense Expense
		var description sql.NullString

		if err := expenseRows.Scan(&expense.ID, &expense.BudgetID, &expense.Amount,
			&expense.Date, &description); err != nil {
			log.Printf("Error scanning expense: %v", err)
			continue
		}

		expense.Description = nullableString(description)
		if i, ok := byBudget[expense.BudgetID]; ok {
			budgets[i].Expenses = append(budgets[i].Expenses, expense)
		}
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary Get budget
// @Description Retrieve a single budget with its expenses nested
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} Budget "Budget"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Budget not found"
// @Router /budgets/{id} [get]
func getBudget(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget ID"})
		return
	}

	budget, err := fetchBudget(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary Update budget
// @Description Overwrite every field of an existing budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param budget body BudgetRequest true "Updated budget data"
// @Success 200 {object} Budget "Updated budget"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Budget not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /budgets/{id} [put]
func updateBudget(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget ID"})
		return
	}

	if _, err := fetchBudget(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateBudgetRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err = db.Exec(`
		UPDATE budgets
		SET contract_number = ?, initial_amount = ?, start_date = ?, end_date = ?
		WHERE id = ?
	`, optionalParam(req.ContractNumber), req.InitialAmount, req.StartDate, req.EndDate, id)
	if err != nil {
		log.Printf("Error updating budget %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	budget, err := fetchBudget(id)
	if err != nil {
		log.Printf("Error fetching updated budget %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary Delete budget
// @Description Delete a budget and all expenses that belong to it
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} map[string]interface{} "Budget deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Budget not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /budgets/{id} [delete]
func deleteBudget(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid budget ID"})
		return
	}

	if _, err := fetchBudget(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	// Both deletes share one transaction so a partial cascade can never
	// leave orphaned expenses behind.
	tx, err := db.Begin()
	if err != nil {
		log.Printf("Error starting delete transaction for budget %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM expenses WHERE budget_id = ?", id); err != nil {
		log.Printf("Error deleting expenses for budget %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	if _, err := tx.Exec("DELETE FROM budgets WHERE id = ?", id); err != nil {
		log.Printf("Error deleting budget %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	if err := tx.Commit(); err != nil {
		log.Printf("Error committing delete for budget %d: %v", id, err)
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
