package models

import "gorm.io/gorm"

// User is the identity a journal belongs to. Trades and daily summaries
// reference it by ID only.
type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-"`
	Preferences  string `json:"preferences"`
}
