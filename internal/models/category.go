package models

import "time"

// Category represents an expense category. The owner reference is optional:
// deleting a user clears it but leaves the category in place.
type Category struct {
	Base
	UserID *uint     `gorm:"index" json:"user_id"`
	Name   string    `gorm:"size:50" json:"name"`
	Date   time.Time `json:"date"`
	Budget *float64  `json:"budget"`

	// Computed at query time, never stored.
	TotalExpenseCost float64  `gorm:"-" json:"total_expense_cost"`
	RemainingBudget  *float64 `gorm:"-" json:"remaining_budget"`
	IsBudgetExceeded bool     `gorm:"-" json:"is_budget_exceeded"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}

// ComputeBudgetFields fills the derived budget fields from the given spend total.
// RemainingBudget stays nil and IsBudgetExceeded false when no budget is set.
func (c *Category) ComputeBudgetFields(totalSpend float64) {
	c.TotalExpenseCost = totalSpend
	if c.Budget == nil {
		c.RemainingBudget = nil
		c.IsBudgetExceeded = false
		return
	}
	remaining := *c.Budget - totalSpend
	c.RemainingBudget = &remaining
	c.IsBudgetExceeded = totalSpend > *c.Budget
}
