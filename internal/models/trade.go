package models

import (
	"time"

	"gorm.io/gorm"
)

// Trade statuses.
const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// Trade directions.
const (
	TypeBuy  = "BUY"
	TypeSell = "SELL"
)

// Close reasons recorded when a trade is closed.
const (
	CloseReasonTP     = "TP"
	CloseReasonSL     = "SL"
	CloseReasonBE     = "BE"
	CloseReasonManual = "MANUAL"
)

// Trade represents a single logged position in the journal.
// EntryPrice and LotSize are always required; the remaining numeric fields
// are optional and stay nil until the user fills them in. Pnl is meaningful
// only once Status is CLOSED.
type Trade struct {
	gorm.Model
	UserID      uint       `json:"userId" gorm:"index;not null"`
	Asset       string     `json:"asset" gorm:"not null"`
	Currency    string     `json:"currency" gorm:"index;default:USD"`
	Timeframe   string     `json:"timeframe"`
	Session     string     `json:"session"`
	Type        string     `json:"type"` // "BUY" or "SELL"
	EntryPrice  float64    `json:"entry_price" gorm:"not null"`
	ExitPrice   *float64   `json:"exit_price"`
	TP          *float64   `json:"tp"`
	SL          *float64   `json:"sl"`
	LotSize     float64    `json:"lot_size" gorm:"not null"`
	Pnl         *float64   `json:"pnl"`
	Status      string     `json:"status" gorm:"index;default:OPEN"`
	CloseReason *string    `json:"close_reason"`
	Notes       string     `json:"notes"`
	ImagesPath  string     `json:"images_path"`
	ClosedAt    *time.Time `json:"closed_at"`
}

// CloseDay returns the day the trade was closed on. Trades closed before the
// closed_at column existed fall back to the last-update timestamp, which
// approximates the close date.
func (t *Trade) CloseDay() time.Time {
	if t.ClosedAt != nil {
		return *t.ClosedAt
	}
	return t.UpdatedAt
}
