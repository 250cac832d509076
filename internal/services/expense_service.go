package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// GetMonthlyExpenses returns the user's expenses for the current calendar
// month, newest id first.
func (s *expenseService) GetMonthlyExpenses(userID uint) ([]models.Expense, error) {
	start, end := currentMonthRange(time.Now())

	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// CreateExpense creates a new expense dated now. The category must exist.
func (s *expenseService) CreateExpense(userID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category")
	}

	expense := &models.Expense{
		UserID:      &userID,
		Name:        name,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Date:        time.Now(),
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetExpenseByID retrieves an expense by primary key. A missing record is
// not-found; a record owned by someone else is forbidden.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expense.UserID == nil || *expense.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return &expense, nil
}

// UpdateExpense replaces every mutable field of an expense. All fields are
// re-supplied on update; this is a full replacement, not a patch.
func (s *expenseService) UpdateExpense(userID, expenseID uint, name string, amount float64, description string, categoryID uint) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "expense name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category")
	}

	updates := map[string]interface{}{
		"name":        name,
		"amount":      amount,
		"description": description,
		"category_id": categoryID,
	}
	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// DeleteExpense hard-deletes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DuplicateExpense copies name, amount, description and category from the
// source into a fresh expense dated now. The source is never touched.
func (s *expenseService) DuplicateExpense(userID, expenseID uint) (*models.Expense, error) {
	source, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	duplicate := &models.Expense{
		UserID:      &userID,
		Name:        source.Name,
		Amount:      source.Amount,
		Description: source.Description,
		CategoryID:  source.CategoryID,
		Date:        time.Now(),
	}
	if err := s.db.Create(duplicate).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return duplicate, nil
}

// ExpensesBetween returns the user's expenses in the inclusive date range,
// newest id first.
func (s *expenseService) ExpensesBetween(userID uint, from, to time.Time) ([]models.Expense, error) {
	start, end := dateRangeBounds(from, to)

	var expenses []models.Expense
	err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// TotalBetween sums the user's expense amounts over the inclusive date range,
// rounded to two decimals. from == to covers exactly that day.
func (s *expenseService) TotalBetween(userID uint, from, to time.Time) (float64, error) {
	start, end := dateRangeBounds(from, to)

	var total float64
	err := s.db.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return round2(total), nil
}

// WeeklyTotals groups all of the user's expenses by the week they fall in,
// oldest week first. The buckets are computed here rather than with a SQL
// date_trunc so the same code runs on postgres and the sqlite test driver.
func (s *expenseService) WeeklyTotals(userID uint) ([]WeekTotal, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	buckets := make(map[string]float64)
	for _, e := range expenses {
		key := weekStart(e.Date).Format(time.DateOnly)
		buckets[key] += e.Amount
	}

	totals := make([]WeekTotal, 0, len(buckets))
	for week, total := range buckets {
		totals = append(totals, WeekTotal{Week: week, Total: round2(total)})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Week < totals[j].Week })
	return totals, nil
}

// MonthlyTotals groups all of the user's expenses by month, oldest first.
func (s *expenseService) MonthlyTotals(userID uint) ([]MonthTotal, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	buckets := make(map[string]float64)
	for _, e := range expenses {
		key := monthStart(e.Date).Format(time.DateOnly)
		buckets[key] += e.Amount
	}

	totals := make([]MonthTotal, 0, len(buckets))
	for month, total := range buckets {
		totals = append(totals, MonthTotal{Month: month, Total: round2(total)})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals, nil
}

// NetForMonth summarizes the current month's spending. The category count is
// merged in by the report layer.
func (s *expenseService) NetForMonth(userID uint) (*NetSummary, error) {
	start, end := currentMonthRange(time.Now())

	var total float64
	err := s.db.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	err = s.db.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &NetSummary{
		Month:        start.Format("2006-01"),
		TotalExpense: round2(total),
		ExpenseCount: count,
	}, nil
}
