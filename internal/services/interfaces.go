package services

import (
	"time"

	"fintrack/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, email, password string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUser(id uint, username, email, password *string, isAdmin *bool) (*models.User, error)
	DeleteUser(id uint) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	GetUserCategories(userID uint) ([]models.Category, error)
	CreateCategory(userID uint, name string, budget *float64) (*models.Category, error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, name *string, budget *float64) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// WeekTotal is one week bucket of summed amounts, keyed by the Monday the
// week starts on.
type WeekTotal struct {
	Week  string  `json:"week"`
	Total float64 `json:"total"`
}

// MonthTotal is one month bucket of summed amounts, keyed by the first of the
// month.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// NetSummary is the current-month spending summary. CategoryCount is filled
// by the report layer, not by the expense service.
type NetSummary struct {
	Month         string  `json:"month"`
	TotalExpense  float64 `json:"total_expense"`
	ExpenseCount  int64   `json:"expense_count"`
	CategoryCount int64   `json:"categoryCount"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	GetMonthlyExpenses(userID uint) ([]models.Expense, error)
	CreateExpense(userID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	DuplicateExpense(userID, expenseID uint) (*models.Expense, error)
	ExpensesBetween(userID uint, from, to time.Time) ([]models.Expense, error)
	TotalBetween(userID uint, from, to time.Time) (float64, error)
	WeeklyTotals(userID uint) ([]WeekTotal, error)
	MonthlyTotals(userID uint) ([]MonthTotal, error)
	NetForMonth(userID uint) (*NetSummary, error)
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	GetMonthlyIncomes(userID uint) ([]models.Income, error)
	CreateIncome(userID uint, name string, amount float64, description string) (*models.Income, error)
	GetIncomeByID(userID, incomeID uint) (*models.Income, error)
	UpdateIncome(userID, incomeID uint, name string, amount float64, description string) (*models.Income, error)
	DeleteIncome(userID, incomeID uint) error
	DuplicateIncome(userID, incomeID uint) (*models.Income, error)
	IncomesBetween(userID uint, from, to time.Time) ([]models.Income, error)
	TotalBetween(userID uint, from, to time.Time) (float64, error)
}

// InvestmentServicer defines the contract for portfolio and investment logic.
type InvestmentServicer interface {
	GetUserPortfolios(userID uint) ([]models.Portfolio, error)
	CreatePortfolio(userID uint, name, description string, budget float64) (*models.Portfolio, error)
	GetPortfolioByID(userID, portfolioID uint) (*models.Portfolio, error)
	UpdatePortfolio(userID, portfolioID uint, name, description *string, budget *float64) (*models.Portfolio, error)
	DeletePortfolio(userID, portfolioID uint) error
	GetPortfolioInvestments(userID, portfolioID uint) ([]models.Investment, error)
	CreateInvestment(userID, portfolioID uint, name string, amount, value float64, description string) (*models.Investment, error)
	GetInvestmentByID(userID, investmentID uint) (*models.Investment, error)
	UpdateInvestment(userID, investmentID uint, name, description *string, amount, value *float64) (*models.Investment, error)
	DeleteInvestment(userID, investmentID uint) error
	InvestmentsSince(userID uint, since time.Time) ([]models.Investment, error)
}

// DateRangeReport is the payload for the date-range report endpoint.
type DateRangeReport struct {
	Filtered interface{} `json:"filtered"`
	Total    float64     `json:"total"`
}

// CategoryAmount pairs a category name with its total expense cost.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ReportServicer defines the contract for the read-only reporting surface.
type ReportServicer interface {
	DateRange(userID uint, from, to time.Time, selectKind string) (*DateRangeReport, error)
	CategoryBreakdown(userID uint) ([]CategoryAmount, error)
	WeeklyExpenseGraph(userID uint) ([]WeekTotal, error)
	MonthlyExpenseGraph(userID uint) ([]MonthTotal, error)
	MostRecentExpenses(userID uint) ([]models.Expense, error)
	NetSummary(userID uint) (*NetSummary, error)
	PortfolioSummaries(userID uint) ([]models.Portfolio, error)
	WeeklyInvestments(userID uint) ([]WeekTotal, error)
	TotalInvestments(userID uint) (float64, error)
}
