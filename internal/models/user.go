// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in the Ripple application.
// JoinedAt is set once at registration and never changes; accounts are
// never deleted.
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email    string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	IsAdmin  bool      `gorm:"not null;default:false" json:"is_admin"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
	Posts    []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
