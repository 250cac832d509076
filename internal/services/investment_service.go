package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// investmentService handles portfolio and investment business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// GetUserPortfolios retrieves all portfolios owned by a user, with derived
// performance fields filled in.
func (s *investmentService) GetUserPortfolios(userID uint) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&portfolios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range portfolios {
		if err := s.computePerformance(&portfolios[i]); err != nil {
			return nil, err
		}
	}
	return portfolios, nil
}

// CreatePortfolio creates a new portfolio for a user.
func (s *investmentService) CreatePortfolio(userID uint, name, description string, budget float64) (*models.Portfolio, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "portfolio name is required")
	}
	if budget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
	}

	portfolio := &models.Portfolio{
		UserID:      userID,
		Name:        name,
		Description: description,
		Budget:      budget,
	}
	if err := s.db.Create(portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	portfolio.ComputePerformance(0, 0)
	return portfolio, nil
}

// GetPortfolioByID retrieves a portfolio scoped to its owner. A portfolio
// owned by someone else is indistinguishable from one that does not exist.
func (s *investmentService) GetPortfolioByID(userID, portfolioID uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := s.db.Where("id = ? AND user_id = ?", portfolioID, userID).First(&portfolio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.computePerformance(&portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// UpdatePortfolio updates the provided fields of a portfolio.
func (s *investmentService) UpdatePortfolio(userID, portfolioID uint, name, description *string, budget *float64) (*models.Portfolio, error) {
	portfolio, err := s.GetPortfolioByID(userID, portfolioID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		if *name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "portfolio name is required")
		}
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	if budget != nil {
		if *budget < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
		}
		updates["budget"] = *budget
	}

	if len(updates) > 0 {
		if err := s.db.Model(portfolio).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if err := s.computePerformance(portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// DeletePortfolio removes a portfolio and its investments.
func (s *investmentService) DeletePortfolio(userID, portfolioID uint) error {
	portfolio, err := s.GetPortfolioByID(userID, portfolioID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", portfolioID).Delete(&models.Investment{}).Error; err != nil {
			return err
		}
		return tx.Delete(portfolio).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetPortfolioInvestments lists the investments of a portfolio owned by the
// user, with derived return fields filled in.
func (s *investmentService) GetPortfolioInvestments(userID, portfolioID uint) ([]models.Investment, error) {
	if _, err := s.GetPortfolioByID(userID, portfolioID); err != nil {
		return nil, err
	}

	var investments []models.Investment
	if err := s.db.Where("portfolio_id = ?", portfolioID).Order("id").Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range investments {
		investments[i].ComputeReturn()
	}
	return investments, nil
}

// CreateInvestment creates an investment after checking the portfolio's
// remaining budget. The check recomputes the remaining budget immediately
// before the insert but does not hold a lock across it, so two concurrent
// creates can both pass and overrun the budget.
func (s *investmentService) CreateInvestment(userID, portfolioID uint, name string, amount, value float64, description string) (*models.Investment, error) {
	portfolio, err := s.GetPortfolioByID(userID, portfolioID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "investment name is required")
	}

	if portfolio.RemainingBudget < amount {
		return nil, apperrors.ErrInsufficientBudget
	}

	investment := &models.Investment{
		PortfolioID:  portfolioID,
		Name:         name,
		Amount:       amount,
		Value:        value,
		Description:  description,
		DateInvested: time.Now(),
	}
	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	investment.ComputeReturn()
	return investment, nil
}

// GetInvestmentByID retrieves an investment scoped to the owning portfolio's
// user. Same existence-hiding behavior as portfolios.
func (s *investmentService) GetInvestmentByID(userID, investmentID uint) (*models.Investment, error) {
	var investment models.Investment
	err := s.db.
		Joins("JOIN portfolios ON portfolios.id = investments.portfolio_id").
		Where("investments.id = ? AND portfolios.user_id = ?", investmentID, userID).
		First(&investment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	investment.ComputeReturn()
	return &investment, nil
}

// UpdateInvestment updates the provided fields of an investment.
func (s *investmentService) UpdateInvestment(userID, investmentID uint, name, description *string, amount, value *float64) (*models.Investment, error) {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		if *name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "investment name is required")
		}
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if value != nil {
		updates["value"] = *value
	}

	if len(updates) > 0 {
		if err := s.db.Model(investment).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	investment.ComputeReturn()
	return investment, nil
}

// DeleteInvestment hard-deletes an investment.
func (s *investmentService) DeleteInvestment(userID, investmentID uint) error {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(investment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// InvestmentsSince returns all of the user's investments dated on or after
// the given time, across every portfolio.
func (s *investmentService) InvestmentsSince(userID uint, since time.Time) ([]models.Investment, error) {
	var investments []models.Investment
	err := s.db.
		Joins("JOIN portfolios ON portfolios.id = investments.portfolio_id").
		Where("portfolios.user_id = ? AND investments.date_invested >= ?", userID, since).
		Order("investments.id").
		Find(&investments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range investments {
		investments[i].ComputeReturn()
	}
	return investments, nil
}

// computePerformance fills a portfolio's derived fields from live sums over
// its investments.
func (s *investmentService) computePerformance(portfolio *models.Portfolio) error {
	type sums struct {
		Invested float64
		Value    float64
	}
	var result sums
	err := s.db.Model(&models.Investment{}).
		Where("portfolio_id = ?", portfolio.ID).
		Select("COALESCE(SUM(amount), 0) AS invested, COALESCE(SUM(value), 0) AS value").
		Scan(&result).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.ComputePerformance(result.Invested, result.Value)
	return nil
}
