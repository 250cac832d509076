package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// GetMonthlyIncomes returns the user's incomes for the current calendar
// month, newest id first.
func (s *incomeService) GetMonthlyIncomes(userID uint) ([]models.Income, error) {
	start, end := currentMonthRange(time.Now())

	var incomes []models.Income
	err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id DESC").
		Find(&incomes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}

// CreateIncome creates a new income dated now. An empty name falls back to
// the "Income" default.
func (s *incomeService) CreateIncome(userID uint, name string, amount float64, description string) (*models.Income, error) {
	if name == "" {
		name = "Income"
	}

	income := &models.Income{
		UserID:      &userID,
		Name:        name,
		Amount:      amount,
		Description: description,
		Date:        time.Now(),
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// GetIncomeByID retrieves an income by primary key. A missing record is
// not-found; a record owned by someone else is forbidden.
func (s *incomeService) GetIncomeByID(userID, incomeID uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.First(&income, incomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if income.UserID == nil || *income.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return &income, nil
}

// UpdateIncome replaces the mutable fields of an income. The date column
// refreshes on every save.
func (s *incomeService) UpdateIncome(userID, incomeID uint, name string, amount float64, description string) (*models.Income, error) {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = "Income"
	}

	updates := map[string]interface{}{
		"name":        name,
		"amount":      amount,
		"description": description,
		"date":        time.Now(),
	}
	if err := s.db.Model(income).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// DeleteIncome hard-deletes an income.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DuplicateIncome copies name, amount and description from the source into a
// fresh income dated now. The source is never touched.
func (s *incomeService) DuplicateIncome(userID, incomeID uint) (*models.Income, error) {
	source, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	duplicate := &models.Income{
		UserID:      &userID,
		Name:        source.Name,
		Amount:      source.Amount,
		Description: source.Description,
		Date:        time.Now(),
	}
	if err := s.db.Create(duplicate).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return duplicate, nil
}

// IncomesBetween returns the user's incomes in the inclusive date range,
// newest id first.
func (s *incomeService) IncomesBetween(userID uint, from, to time.Time) ([]models.Income, error) {
	start, end := dateRangeBounds(from, to)

	var incomes []models.Income
	err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("id DESC").
		Find(&incomes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, nil
}

// TotalBetween sums the user's income amounts over the inclusive date range,
// rounded to two decimals. from == to covers exactly that day.
func (s *incomeService) TotalBetween(userID uint, from, to time.Time) (float64, error) {
	start, end := dateRangeBounds(from, to)

	var total float64
	err := s.db.Model(&models.Income{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return round2(total), nil
}
