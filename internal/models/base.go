package models

import "time"

// Base contains common columns for all tables. Deletes are hard deletes;
// removed records do not linger behind a deleted_at marker.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
