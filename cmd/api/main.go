package main

import (
	"fmt"
	"net/http"
	"os"

	"fintrack/internal/config"
	"fintrack/internal/database"
	_ "fintrack/internal/docs" // generated swagger docs
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance tracker for budgeted expense categories, incomes, investment portfolios, and spending reports.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db)
	incomeService := services.NewIncomeService(db)
	investmentService := services.NewInvestmentService(db)
	reportService := services.NewReportService(db, expenseService, incomeService, categoryService, investmentService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, categoryService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/user/register", authHandler.Register)
	v1.POST("/token", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/user/profile", authHandler.GetProfile)

	// Admin user management
	admin := protected.Group("/users")
	admin.Use(middleware.AdminMiddleware())
	admin.GET("", userHandler.ListUsers)
	admin.GET("/:id", userHandler.GetUser)
	admin.PUT("/:id", userHandler.UpdateUser)
	admin.DELETE("/:id", userHandler.DeleteUser)

	// Category routes
	categories := protected.Group("/category")
	categories.GET("", categoryHandler.GetUserCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Expense routes. Exports are registered before /:id so the literal
	// segments are not swallowed by the parameter route.
	expenses := protected.Group("/expense")
	expenses.GET("", expenseHandler.GetMonthlyExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/export-csv", expenseHandler.ExportCSV)
	expenses.GET("/export-xlsx", expenseHandler.ExportXLSX)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.POST("/:id", expenseHandler.DuplicateExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Income routes
	incomes := protected.Group("/income")
	incomes.GET("", incomeHandler.GetMonthlyIncomes)
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("/:id", incomeHandler.GetIncomeByID)
	incomes.POST("/:id", incomeHandler.DuplicateIncome)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	// Portfolio and investment routes
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

	// Report routes. The day graph serves the same weekly aggregate as the
	// week graph.
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

	log.Infof("Starting Fintrack backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
