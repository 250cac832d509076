package models

import "time"

// Income represents a single income record.
type Income struct {
	Base
	UserID      *uint     `gorm:"index" json:"user_id"`
	Name        string    `gorm:"size:30;default:Income" json:"name"`
	Amount      float64   `gorm:"default:0" json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
