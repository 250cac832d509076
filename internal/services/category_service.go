package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// GetUserCategories retrieves all categories owned by a user, with the
// derived budget fields filled in.
func (s *categoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range categories {
		total, err := s.expenseTotal(categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].ComputeBudgetFields(total)
	}
	return categories, nil
}

// CreateCategory creates a new category for a user.
func (s *categoryService) CreateCategory(userID uint, name string, budget *float64) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if len(name) > 50 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must be 50 characters or fewer")
	}
	if budget != nil && *budget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
	}

	category := &models.Category{
		UserID: &userID,
		Name:   name,
		Date:   time.Now(),
		Budget: budget,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	category.ComputeBudgetFields(0)
	return category, nil
}

// GetCategoryByID retrieves a category by primary key. A missing record is
// not-found; a record owned by someone else is forbidden.
func (s *categoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if category.UserID == nil || *category.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	total, err := s.expenseTotal(category.ID)
	if err != nil {
		return nil, err
	}
	category.ComputeBudgetFields(total)
	return &category, nil
}

// UpdateCategory updates the provided fields of a category. The date column
// refreshes on every save.
func (s *categoryService) UpdateCategory(userID, categoryID uint, name *string, budget *float64) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"date": time.Now()}
	if name != nil {
		if *name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
		}
		if len(*name) > 50 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must be 50 characters or fewer")
		}
		updates["name"] = *name
	}
	if budget != nil {
		if *budget < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
		}
		updates["budget"] = *budget
	}

	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	total, err := s.expenseTotal(category.ID)
	if err != nil {
		return nil, err
	}
	category.ComputeBudgetFields(total)
	return category, nil
}

// DeleteCategory hard-deletes a category.
func (s *categoryService) DeleteCategory(userID, categoryID uint) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// expenseTotal sums all expense amounts linked to a category.
func (s *categoryService) expenseTotal(categoryID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Expense{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
