package models

import "time"

// Portfolio groups investments under a budget. Ownership is mandatory and
// cascades: deleting the user removes the portfolio and its investments.
type Portfolio struct {
	Base
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `json:"description"`
	Budget      float64 `gorm:"default:0" json:"budget"`

	// Computed at query time, never stored.
	TotalValue      float64 `gorm:"-" json:"total_value"`
	TotalInvested   float64 `gorm:"-" json:"total_invested"`
	TotalReturn     float64 `gorm:"-" json:"total_return"`
	RemainingBudget float64 `gorm:"-" json:"remaining_budget"`

	Investments []Investment `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"investments,omitempty"`
}

// ComputePerformance fills the derived fields from the given invested/value sums.
func (p *Portfolio) ComputePerformance(totalInvested, totalValue float64) {
	p.TotalInvested = totalInvested
	p.TotalValue = totalValue
	p.TotalReturn = totalValue - totalInvested
	p.RemainingBudget = p.Budget - totalInvested
}

// Investment is a single holding inside a portfolio. Amount is the sum
// invested, Value the current worth.
type Investment struct {
	Base
	PortfolioID  uint      `gorm:"not null;index" json:"portfolio_id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Value        float64   `gorm:"not null" json:"value"`
	Description  string    `json:"description"`
	DateInvested time.Time `json:"date_invested"`

	// Computed at query time, never stored.
	ReturnOnInvestment float64 `gorm:"-" json:"return_on_investment"`

	Portfolio Portfolio `gorm:"foreignKey:PortfolioID" json:"-"`
}

// ComputeReturn fills the derived return field.
func (i *Investment) ComputeReturn() {
	i.ReturnOnInvestment = i.Value - i.Amount
}
