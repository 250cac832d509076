package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

var dbCounter atomic.Int64

// setupIsolatedDB opens a fresh in-memory database migrated for all models.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Expense{},
		&models.Income{},
		&models.Portfolio{},
		&models.Investment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// setupTestServer wires the full API surface over an isolated database, the
// same way the production entrypoint does.
func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupIsolatedDB(t)

	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db)
	incomeService := services.NewIncomeService(db)
	investmentService := services.NewInvestmentService(db)
	reportService := services.NewReportService(db, expenseService, incomeService, categoryService, investmentService)

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, categoryService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	reportHandler := handlers.NewReportHandler(reportService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/user/register", authHandler.Register)
	v1.POST("/token", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/user/profile", authHandler.GetProfile)

	admin := protected.Group("/users")
	admin.Use(middleware.AdminMiddleware())
	admin.GET("", userHandler.ListUsers)
	admin.GET("/:id", userHandler.GetUser)
	admin.PUT("/:id", userHandler.UpdateUser)
	admin.DELETE("/:id", userHandler.DeleteUser)

	categories := protected.Group("/category")
	categories.GET("", categoryHandler.GetUserCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	expenses := protected.Group("/expense")
	expenses.GET("", expenseHandler.GetMonthlyExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/export-csv", expenseHandler.ExportCSV)
	expenses.GET("/export-xlsx", expenseHandler.ExportXLSX)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.POST("/:id", expenseHandler.DuplicateExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	incomes := protected.Group("/income")
	incomes.GET("", incomeHandler.GetMonthlyIncomes)
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("/:id", incomeHandler.GetIncomeByID)
	incomes.POST("/:id", incomeHandler.DuplicateIncome)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	portfolios := protected.Group("/portfolios")
	portfolios.GET("", investmentHandler.GetUserPortfolios)
	portfolios.POST("", investmentHandler.CreatePortfolio)
	portfolios.GET("/:id", investmentHandler.GetPortfolioByID)
	portfolios.PUT("/:id", investmentHandler.UpdatePortfolio)
	portfolios.DELETE("/:id", investmentHandler.DeletePortfolio)
	portfolios.GET("/:id/investments", investmentHandler.GetPortfolioInvestments)
	portfolios.POST("/:id/investments", investmentHandler.CreateInvestment)

	investments := protected.Group("/investments")
	investments.GET("/:id", investmentHandler.GetInvestmentByID)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	protected.GET("/report-date-range", reportHandler.DateRange)
	protected.GET("/report-category", reportHandler.CategoryBreakdown)
	protected.GET("/report-day-graph", reportHandler.WeeklyExpenseGraph)
	protected.GET("/report-week-graph", reportHandler.WeeklyExpenseGraph)
	protected.GET("/report-month-graph", reportHandler.MonthlyExpenseGraph)
	protected.GET("/report-most-recent-expenses", reportHandler.MostRecentExpenses)
	protected.GET("/report-net", reportHandler.NetSummary)
	protected.GET("/report-portfolios", reportHandler.PortfolioSummaries)
	protected.GET("/report-weekly-investments", reportHandler.WeeklyInvestments)
	protected.GET("/report-total-investments", reportHandler.TotalInvestments)

	return router, db
}

// doJSON performs a JSON request with an optional bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decode parses a recorded response body into a generic map.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
	return result
}

// itoa formats a JSON-decoded numeric ID as a path segment.
func itoa(id float64) string {
	return strconv.FormatFloat(id, 'f', -1, 64)
}

// registerUser registers a user through the API and returns its bearer token.
func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/user/register", "", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "supersecret",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed with status %d: %s", w.Code, w.Body.String())
	}

	body := decode(t, w)
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected token in registration response, got %s", w.Body.String())
	}
	return token
}
