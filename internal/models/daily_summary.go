package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary is a manual ledger entry per user, calendar day and currency:
// deposits, withdrawals and P/L not captured by any Trade record.
// One row exists per (user_id, date, currency); a second write for the same
// key replaces the stored values rather than accumulating them.
type DailySummary struct {
	gorm.Model
	UserID     uint      `json:"userId" gorm:"uniqueIndex:idx_user_date_currency;not null"`
	Date       time.Time `json:"date" gorm:"uniqueIndex:idx_user_date_currency;not null"`
	Currency   string    `json:"currency" gorm:"uniqueIndex:idx_user_date_currency;default:USD"`
	Deposit    float64   `json:"deposit"`
	Withdrawal float64   `json:"withdrawal"`
	ManualPnl  float64   `json:"manual_pnl"`
}
