package store

import (
	"context"
	"fmt"
	"time"

	"trade-journal-go/internal/models"

	"gorm.io/gorm"
)

// PnlFilter selects which closed trades an aggregate covers.
type PnlFilter string

const (
	PnlAll  PnlFilter = "all"
	PnlGt0  PnlFilter = "gt0"
	PnlLt0  PnlFilter = "lt0"
	PnlLte0 PnlFilter = "lte0"
)

// PnlAggregate is the result of summing pnl over a set of closed trades.
type PnlAggregate struct {
	Sum   float64
	Count int64
}

// TradeFilter narrows a trade listing. Zero values mean "no filter".
type TradeFilter struct {
	Status   string
	Currency string
	Date     *time.Time // restricts to that calendar day on created_at
}

// TradeStore persists trade records.
type TradeStore struct {
	db *gorm.DB
}

// NewTradeStore creates a new TradeStore.
func NewTradeStore(db *gorm.DB) *TradeStore {
	return &TradeStore{db: db}
}

// List returns a user's trades, newest first.
func (s *TradeStore) List(ctx context.Context, userID uint, filter TradeFilter) ([]models.Trade, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Currency != "" {
		query = query.Where("currency = ?", filter.Currency)
	}
	if filter.Date != nil {
		start := startOfDay(*filter.Date)
		query = query.Where("created_at >= ? AND created_at <= ?", start, endOfDay(start))
	}

	var trades []models.Trade
	if err := query.Order("created_at desc").Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("could not list trades: %w", err)
	}
	return trades, nil
}

// Get returns a single trade by id.
func (s *TradeStore) Get(ctx context.Context, id uint) (*models.Trade, error) {
	var trade models.Trade
	if err := s.db.WithContext(ctx).First(&trade, id).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

// Create inserts a new trade.
func (s *TradeStore) Create(ctx context.Context, trade *models.Trade) error {
	if err := s.db.WithContext(ctx).Create(trade).Error; err != nil {
		return fmt.Errorf("could not create trade: %w", err)
	}
	return nil
}

// Update applies a partial update to a trade. A transition to CLOSED stamps
// closed_at so calendar grouping does not have to lean on updated_at.
// Returns gorm.ErrRecordNotFound for an unknown id.
func (s *TradeStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Trade, error) {
	var trade models.Trade
	if err := s.db.WithContext(ctx).First(&trade, id).Error; err != nil {
		return nil, err
	}

	if status, ok := fields["status"].(string); ok {
		if status == models.StatusClosed && trade.Status != models.StatusClosed {
			fields["closed_at"] = time.Now()
		}
	}

	if err := s.db.WithContext(ctx).Model(&trade).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("could not update trade %d: %w", id, err)
	}
	return &trade, nil
}

// Delete removes a trade. Returns gorm.ErrRecordNotFound for an unknown id.
func (s *TradeStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Trade{}, id)
	if res.Error != nil {
		return fmt.Errorf("could not delete trade %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListClosedCreatedBetween returns closed trades whose created_at falls in
// [from, to], oldest first. Used by the analytics time series.
func (s *TradeStore) ListClosedCreatedBetween(ctx context.Context, userID uint, currency string, from, to time.Time) ([]models.Trade, error) {
	var trades []models.Trade
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND currency = ?", userID, models.StatusClosed, currency).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at asc").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("could not list closed trades: %w", err)
	}
	return trades, nil
}

// ListClosedByCloseDay returns closed trades whose close time falls in
// [from, to]. Rows without a closed_at stamp match on updated_at instead.
func (s *TradeStore) ListClosedByCloseDay(ctx context.Context, userID uint, currency string, from, to time.Time) ([]models.Trade, error) {
	var trades []models.Trade
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND currency = ?", userID, models.StatusClosed, currency).
		Where("COALESCE(closed_at, updated_at) >= ? AND COALESCE(closed_at, updated_at) <= ?", from, to).
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("could not list closed trades: %w", err)
	}
	return trades, nil
}

// AggregateClosedPnl sums pnl over a user's closed trades for one currency,
// optionally restricted by sign.
func (s *TradeStore) AggregateClosedPnl(ctx context.Context, userID uint, currency string, filter PnlFilter) (PnlAggregate, error) {
	query := s.db.WithContext(ctx).Model(&models.Trade{}).
		Where("user_id = ? AND status = ? AND currency = ?", userID, models.StatusClosed, currency)

	switch filter {
	case PnlGt0:
		query = query.Where("pnl > 0")
	case PnlLt0:
		query = query.Where("pnl < 0")
	case PnlLte0:
		query = query.Where("pnl <= 0")
	}

	var agg PnlAggregate
	err := query.
		Select("COALESCE(SUM(pnl), 0) AS sum, COUNT(pnl) AS count").
		Row().Scan(&agg.Sum, &agg.Count)
	if err != nil {
		return PnlAggregate{}, fmt.Errorf("could not aggregate pnl: %w", err)
	}
	return agg, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
