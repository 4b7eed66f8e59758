package main

// Contract represents an agreement with a partner, optionally with an
// attached document stored on disk
type Contract struct {
	ID             int64   `json:"id"`
	ContractNumber *string `json:"contract_number"`
	Partner        string  `json:"partner"`
	ContractDate   *string `json:"contract_date"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	NoticePeriod   string  `json:"notice_period"`
	Amount         float64 `json:"amount"`
	Category       string  `json:"category"`
	DocumentPath   *string `json:"document_path"`
	Notes          *string `json:"notes"`
}

// Budget represents a monetary allowance over a time window
type Budget struct {
	ID             int64     `json:"id"`
	ContractNumber *string   `json:"contract_number"`
	InitialAmount  float64   `json:"initial_amount"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Expenses       []Expense `json:"expenses"`
}

// BudgetRequest represents the request structure for creating or updating a budget
type BudgetRequest struct {
	ContractNumber *string `json:"contract_number"`
	InitialAmount  float64 `json:"initial_amount"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
}

// Expense represents a single draw-down against a budget
type Expense struct {
	ID          int64   `json:"id"`
	BudgetID    int64   `json:"budget_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

// ExpenseRequest represents the request structure for creating an expense
type ExpenseRequest struct {
	BudgetID    int64   `json:"budget_id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

// Invoice represents a billing record with a derived VAT-inclusive gross amount
type Invoice struct {
	ID             int64   `json:"id"`
	InvoiceNumber  string  `json:"invoice_number"`
	InvoiceDate    string  `json:"invoice_date"`
	ContractNumber *string `json:"contract_number"`
	CostCenter     string  `json:"cost_center"`
	AmountNet      float64 `json:"amount_net"`
	AmountGross    float64 `json:"amount_gross"`
}

// InvoiceRequest represents the request structure for creating an invoice.
// The gross amount is derived server-side and never client-supplied.
type InvoiceRequest struct {
	InvoiceNumber  string  `json:"invoice_number"`
	InvoiceDate    string  `json:"invoice_date"`
	ContractNumber *string `json:"contract_number"`
	CostCenter     string  `json:"cost_center"`
	AmountNet      float64 `json:"amount_net"`
}
