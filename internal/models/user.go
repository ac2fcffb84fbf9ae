package models

import (
	"strings"
	"time"
)

// User represents a user of the store.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
}

// CanonicalEmail is the form emails are stored and looked up in.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
