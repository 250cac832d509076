package models

import "time"

// Expense represents a single spend record. Category is mandatory, the owner
// reference is optional and cleared on user deletion.
type Expense struct {
	Base
	UserID      *uint     `gorm:"index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `json:"description"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`
	Date        time.Time `json:"date"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}
