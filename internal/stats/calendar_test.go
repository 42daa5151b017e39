package stats

import (
	"context"
	"testing"
	"time"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarSummary_MergesTradesAndSummaries(t *testing.T) {
	service, db := setupService(t)
	ctx := context.Background()

	june10 := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	june12 := time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)

	seedClosedTrade(t, db, 1, "USD", 50, june10)
	seedClosedTrade(t, db, 1, "USD", -20, june10)
	seedClosedTrade(t, db, 1, "USD", 30, june12)

	summaries := store.NewSummaryStore(db)
	require.NoError(t, summaries.Upsert(ctx, &models.DailySummary{
		UserID: 1, Date: june10, Currency: "USD", Deposit: 100, ManualPnl: 5,
	}))
	require.NoError(t, summaries.Upsert(ctx, &models.DailySummary{
		UserID: 1, Date: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), Currency: "USD", Withdrawal: 40,
	}))

	result, err := service.CalendarSummary(ctx, 1, june10, "USD")
	require.NoError(t, err)

	// Sparse map: only days with activity appear.
	require.Len(t, result, 3)

	day10 := result["2025-06-10"]
	assert.InDelta(t, 35.0, day10.Pnl, 1e-9) // 50 - 20 trade pnl + 5 manual
	assert.Equal(t, 100.0, day10.Deposit)
	assert.Zero(t, day10.Withdrawal)

	day12 := result["2025-06-12"]
	assert.InDelta(t, 30.0, day12.Pnl, 1e-9)

	// A summary-only day still gets a cell.
	day20 := result["2025-06-20"]
	assert.Zero(t, day20.Pnl)
	assert.Equal(t, 40.0, day20.Withdrawal)
}

func TestCalendarSummary_MonthBoundaries(t *testing.T) {
	service, db := setupService(t)

	seedClosedTrade(t, db, 1, "USD", 10, time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC))
	seedClosedTrade(t, db, 1, "USD", 20, time.Date(2025, 6, 1, 0, 30, 0, 0, time.UTC))
	seedClosedTrade(t, db, 1, "USD", 40, time.Date(2025, 7, 1, 0, 30, 0, 0, time.UTC))

	result, err := service.CalendarSummary(context.Background(), 1, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "USD")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.InDelta(t, 20.0, result["2025-06-01"].Pnl, 1e-9)
}

func TestCalendarSummary_FallsBackToUpdatedAt(t *testing.T) {
	// Rows closed before the closed_at column existed group on updated_at.
	service, db := setupService(t)

	trade := models.Trade{
		UserID: 1, Asset: "EURUSD", Currency: "USD",
		EntryPrice: 1.1, LotSize: 1,
		Status: models.StatusClosed, Pnl: ptr(12.0),
	}
	trade.CreatedAt = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	trade.UpdatedAt = time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&trade).Error)

	result, err := service.CalendarSummary(context.Background(), 1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "USD")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.InDelta(t, 12.0, result["2025-06-03"].Pnl, 1e-9)
}

func TestCalendarSummary_EmptyMonth(t *testing.T) {
	service, _ := setupService(t)

	result, err := service.CalendarSummary(context.Background(), 1, time.Now(), "USD")
	require.NoError(t, err)
	assert.Empty(t, result)
}
