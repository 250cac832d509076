package handlers

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/services"
)

// The mocks embed the service interfaces so each test only overrides the
// methods the handler under test actually calls. An unexpected call panics,
// which is the failure we want.

type mockUserService struct {
	services.UserServicer
	registerFn     func(username, email, password string) (*models.User, error)
	attemptLoginFn func(username, password string) (*models.User, error)
	getByIDFn      func(id uint) (*models.User, error)
	listFn         func() ([]models.User, error)
	updateFn       func(id uint, username, email, password *string, isAdmin *bool) (*models.User, error)
	deleteFn       func(id uint) error
}

func (m *mockUserService) Register(username, email, password string) (*models.User, error) {
	return m.registerFn(username, email, password)
}

func (m *mockUserService) AttemptLogin(username, password string) (*models.User, error) {
	return m.attemptLoginFn(username, password)
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	return m.getByIDFn(id)
}

func (m *mockUserService) ListUsers() ([]models.User, error) {
	return m.listFn()
}

func (m *mockUserService) UpdateUser(id uint, username, email, password *string, isAdmin *bool) (*models.User, error) {
	return m.updateFn(id, username, email, password, isAdmin)
}

func (m *mockUserService) DeleteUser(id uint) error {
	return m.deleteFn(id)
}

type mockCategoryService struct {
	services.CategoryServicer
	getUserCategoriesFn func(userID uint) ([]models.Category, error)
	createFn            func(userID uint, name string, budget *float64) (*models.Category, error)
	getByIDFn           func(userID, categoryID uint) (*models.Category, error)
	updateFn            func(userID, categoryID uint, name *string, budget *float64) (*models.Category, error)
	deleteFn            func(userID, categoryID uint) error
}

func (m *mockCategoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	return m.getUserCategoriesFn(userID)
}

func (m *mockCategoryService) CreateCategory(userID uint, name string, budget *float64) (*models.Category, error) {
	return m.createFn(userID, name, budget)
}

func (m *mockCategoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	return m.getByIDFn(userID, categoryID)
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID uint, name *string, budget *float64) (*models.Category, error) {
	return m.updateFn(userID, categoryID, name, budget)
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID uint) error {
	return m.deleteFn(userID, categoryID)
}

type mockExpenseService struct {
	services.ExpenseServicer
	getMonthlyFn func(userID uint) ([]models.Expense, error)
	createFn     func(userID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error)
	getByIDFn    func(userID, expenseID uint) (*models.Expense, error)
	duplicateFn  func(userID, expenseID uint) (*models.Expense, error)
	deleteFn     func(userID, expenseID uint) error
}

func (m *mockExpenseService) GetMonthlyExpenses(userID uint) ([]models.Expense, error) {
	return m.getMonthlyFn(userID)
}

func (m *mockExpenseService) CreateExpense(userID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error) {
	return m.createFn(userID, name, amount, description, categoryID)
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	return m.getByIDFn(userID, expenseID)
}

func (m *mockExpenseService) DuplicateExpense(userID, expenseID uint) (*models.Expense, error) {
	return m.duplicateFn(userID, expenseID)
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID uint) error {
	return m.deleteFn(userID, expenseID)
}

type mockIncomeService struct {
	services.IncomeServicer
	createFn func(userID uint, name string, amount float64, description string) (*models.Income, error)
}

func (m *mockIncomeService) CreateIncome(userID uint, name string, amount float64, description string) (*models.Income, error) {
	return m.createFn(userID, name, amount, description)
}

type mockReportService struct {
	services.ReportServicer
	dateRangeFn func(userID uint, from, to time.Time, selectKind string) (*services.DateRangeReport, error)
	netFn       func(userID uint) (*services.NetSummary, error)
}

func (m *mockReportService) DateRange(userID uint, from, to time.Time, selectKind string) (*services.DateRangeReport, error) {
	return m.dateRangeFn(userID, from, to, selectKind)
}

func (m *mockReportService) NetSummary(userID uint) (*services.NetSummary, error) {
	return m.netFn(userID)
}
