// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a message authored by exactly one user. Posts are
// immutable: they are never updated or deleted after creation.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
