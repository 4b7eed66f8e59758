package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "modernc.org/sqlite"

	_ "github.com/olivergaser/VertragsDB/docs"
)

var (
	db          *sql.DB
	documentDir string
)

// @title VertragsDB API
// @version 1.0
// @description Contract, budget and invoice record keeping backend.
// @BasePath /
func main() {
	_ = godotenv.Load()

	dbPath := getEnvOrDefault("DB_PATH", "./data/contracts.db")
	documentDir = getEnvOrDefault("DOCUMENT_DIR", "./data/documents")

	if err := os.MkdirAll(documentDir, 0755); err != nil {
		log.Fatal("Failed to create document directory: ", err)
	}

	var err error
	db, err = openDatabase(dbPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	log.Println("Running database migrations...")
	if err := runMigrations(dbPath); err != nil {
		log.Fatal("Error running migrations: ", err)
	}
	log.Println("Database migrations completed successfully")

	r := gin.Default()

	// CORS middleware: the UI may be served from anywhere
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	}))

	registerRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := getEnvOrDefault("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// openDatabase opens the SQLite store with foreign keys enforced and a busy
// timeout so concurrent writers see a blocked engine instead of an error.
func openDatabase(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return database, nil
}

// registerRoutes wires the HTTP surface; shared with the test router
func registerRoutes(r *gin.Engine) {
	r.GET("/health", healthCheck)

	r.POST("/contracts/", createContract)
	r.GET("/contracts/", getContracts)
	r.GET("/contracts/:id", getContract)
	r.PUT("/contracts/:id", updateContract)
	r.DELETE("/contracts/:id", deleteContract)
	r.GET("/contracts/:id/document", downloadContractDocument)

	r.POST("/budgets/", createBudget)
	r.GET("/budgets/", getBudgets)
	r.GET("/budgets/:id", getBudget)
	r.PUT("/budgets/:id", updateBudget)
	r.DELETE("/budgets/:id", deleteBudget)

	r.POST("/expenses/", createExpense)

	r.POST("/invoices/", createInvoice)
	r.GET("/invoices/", getInvoices)
	r.DELETE("/invoices/:id", deleteInvoice)
}

// @Summary Health check
// @Description Liveness probe for container orchestration
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
