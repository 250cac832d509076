package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a budget-less category dated now.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint) *models.Category {
	t.Helper()
	return CreateTestCategoryWithBudget(t, db, userID, nil)
}

// CreateTestCategoryWithBudget creates a category with the given budget.
func CreateTestCategoryWithBudget(t *testing.T, db *gorm.DB, userID uint, budget *float64) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: &userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Date:   time.Now(),
		Budget: budget,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64) *models.Expense {
	t.Helper()
	return CreateTestExpenseOn(t, db, userID, categoryID, amount, time.Now())
}

// CreateTestExpenseOn creates an expense with the given date.
func CreateTestExpenseOn(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:     &userID,
		Name:       fmt.Sprintf("Test Expense %d", nextID()),
		Amount:     amount,
		CategoryID: categoryID,
		Date:       date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income dated now.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Income {
	t.Helper()
	return CreateTestIncomeOn(t, db, userID, amount, time.Now())
}

// CreateTestIncomeOn creates an income with the given date.
func CreateTestIncomeOn(t *testing.T, db *gorm.DB, userID uint, amount float64, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID: &userID,
		Name:   fmt.Sprintf("Test Income %d", nextID()),
		Amount: amount,
		Date:   date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestPortfolio creates a portfolio with the given budget.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, userID uint, budget float64) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		UserID: userID,
		Name:   fmt.Sprintf("Test Portfolio %d", nextID()),
		Budget: budget,
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}

// CreateTestInvestment creates an investment dated now.
func CreateTestInvestment(t *testing.T, db *gorm.DB, portfolioID uint, amount, value float64) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		PortfolioID:  portfolioID,
		Name:         fmt.Sprintf("Test Investment %d", nextID()),
		Amount:       amount,
		Value:        value,
		DateInvested: time.Now(),
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}
