package store

import (
	"context"
	"fmt"
	"time"

	"trade-journal-go/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryTotals holds all-time sums over a user's daily summaries.
type SummaryTotals struct {
	SumDeposit    float64
	SumWithdrawal float64
	SumManualPnl  float64
}

// SummaryStore persists per-day manual ledger entries.
type SummaryStore struct {
	db *gorm.DB
}

// NewSummaryStore creates a new SummaryStore.
func NewSummaryStore(db *gorm.DB) *SummaryStore {
	return &SummaryStore{db: db}
}

// Upsert writes the daily summary for (userID, date, currency). An existing
// row for the same key is replaced, not accumulated: the submitted values win.
func (s *SummaryStore) Upsert(ctx context.Context, summary *models.DailySummary) error {
	summary.Date = startOfDay(summary.Date)

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"deposit", "withdrawal", "manual_pnl", "updated_at"}),
	}).Create(summary).Error
	if err != nil {
		return fmt.Errorf("could not upsert daily summary: %w", err)
	}

	// Re-read so the caller sees the stored row (including the original id
	// when the write hit the conflict branch).
	return s.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND currency = ?", summary.UserID, summary.Date, summary.Currency).
		First(summary).Error
}

// ListInRange returns a user's daily summaries for one currency with date in
// [from, to].
func (s *SummaryStore) ListInRange(ctx context.Context, userID uint, currency string, from, to time.Time) ([]models.DailySummary, error) {
	var summaries []models.DailySummary
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND currency = ?", userID, currency).
		Where("date >= ? AND date <= ?", from, to).
		Find(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("could not list daily summaries: %w", err)
	}
	return summaries, nil
}

// AggregateTotals sums deposits, withdrawals and manual pnl over all of a
// user's daily summaries for one currency. The balance computation is
// all-time, never restricted to a period.
func (s *SummaryStore) AggregateTotals(ctx context.Context, userID uint, currency string) (SummaryTotals, error) {
	var totals SummaryTotals
	err := s.db.WithContext(ctx).Model(&models.DailySummary{}).
		Where("user_id = ? AND currency = ?", userID, currency).
		Select("COALESCE(SUM(deposit), 0), COALESCE(SUM(withdrawal), 0), COALESCE(SUM(manual_pnl), 0)").
		Row().Scan(&totals.SumDeposit, &totals.SumWithdrawal, &totals.SumManualPnl)
	if err != nil {
		return SummaryTotals{}, fmt.Errorf("could not aggregate daily summaries: %w", err)
	}
	return totals, nil
}
