package models

import "time"

// Base holds the server-assigned columns shared by every table.
// Deletion is physical, so there is no DeletedAt column.
type Base struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
