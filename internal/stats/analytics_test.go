package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_EmptyState(t *testing.T) {
	service, _ := setupService(t)

	result, err := service.Analytics(context.Background(), 1, PeriodMonth, "USD", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, PeriodMonth, result.Period)
	assert.NotNil(t, result.ChartData)
	assert.Empty(t, result.ChartData)
	assert.Zero(t, result.Summary.TotalTrades)
	assert.Equal(t, "0.0", result.Summary.WinRate)
	assert.Equal(t, "0.00", result.Summary.ProfitFactor)
	assert.Equal(t, "0.00", result.Summary.TotalPnl)
}

func TestAnalytics_ChartGrouping(t *testing.T) {
	service, db := setupService(t)

	// Two trades on day one, one on day two.
	dayOne := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	dayTwo := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	seedClosedTrade(t, db, 1, "USD", 50, dayOne)
	seedClosedTrade(t, db, 1, "USD", -20, dayOne.Add(2*time.Hour))
	seedClosedTrade(t, db, 1, "USD", 30, dayTwo)

	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	result, err := service.Analytics(context.Background(), 1, PeriodCustom, "USD", &start, &end)
	require.NoError(t, err)

	require.Len(t, result.ChartData, 2)

	first := result.ChartData[0]
	assert.Equal(t, dayOne.Format("2006-01-02"), first.Date)
	assert.InDelta(t, 30.0, first.Pnl, 1e-9) // 50 - 20 summed per day
	// Cumulative is the running total after the last trade of the day.
	assert.InDelta(t, 30.0, first.Cumulative, 1e-9)
	assert.Equal(t, 2, first.Trades)

	second := result.ChartData[1]
	assert.InDelta(t, 30.0, second.Pnl, 1e-9)
	assert.InDelta(t, 60.0, second.Cumulative, 1e-9)
	assert.Equal(t, 1, second.Trades)
}

func TestAnalytics_Summary(t *testing.T) {
	service, db := setupService(t)

	now := time.Now()
	seedClosedTrade(t, db, 1, "USD", 50, now.AddDate(0, 0, -5))
	seedClosedTrade(t, db, 1, "USD", -20, now.AddDate(0, 0, -4))
	seedClosedTrade(t, db, 1, "USD", 30, now.AddDate(0, 0, -3))

	result, err := service.Analytics(context.Background(), 1, PeriodWeek, "USD", nil, nil)
	require.NoError(t, err)

	summary := result.Summary
	assert.Equal(t, 3, summary.TotalTrades)
	assert.Equal(t, 2, summary.Winners)
	assert.Equal(t, 1, summary.Losers)
	assert.Equal(t, "66.7", summary.WinRate)
	assert.Equal(t, "60.00", summary.TotalPnl)
	assert.Equal(t, "4.00", summary.ProfitFactor)
	assert.Equal(t, "40.00", summary.AvgWin)
	assert.Equal(t, "20.00", summary.AvgLoss)
	assert.Equal(t, "50.00", summary.BestTrade)
	assert.Equal(t, "-20.00", summary.WorstTrade)
}

func TestAnalytics_ZeroPnlCountsAsNeither(t *testing.T) {
	service, db := setupService(t)

	now := time.Now()
	seedClosedTrade(t, db, 1, "USD", 10, now.AddDate(0, 0, -2))
	seedClosedTrade(t, db, 1, "USD", 0, now.AddDate(0, 0, -1))

	result, err := service.Analytics(context.Background(), 1, PeriodWeek, "USD", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalTrades)
	assert.Equal(t, 1, result.Summary.Winners)
	assert.Zero(t, result.Summary.Losers)
	// Win rate still divides by the full trade count.
	assert.Equal(t, "50.0", result.Summary.WinRate)
	assert.Equal(t, "N/A", result.Summary.ProfitFactor)
}

func TestAnalytics_PeriodFiltering(t *testing.T) {
	service, db := setupService(t)

	now := time.Now()
	seedClosedTrade(t, db, 1, "USD", 10, now.AddDate(0, 0, -2))  // inside week
	seedClosedTrade(t, db, 1, "USD", 99, now.AddDate(0, 0, -20)) // outside week, inside month

	week, err := service.Analytics(context.Background(), 1, PeriodWeek, "USD", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, week.Summary.TotalTrades)

	month, err := service.Analytics(context.Background(), 1, PeriodMonth, "USD", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, month.Summary.TotalTrades)

	// Unrecognized period falls back to one month.
	fallback, err := service.Analytics(context.Background(), 1, "fortnight", "USD", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fallback.Summary.TotalTrades)
}

func TestAnalytics_CustomRange(t *testing.T) {
	service, db := setupService(t)

	seedClosedTrade(t, db, 1, "USD", 10, time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	// Late on the end date itself: the range is inclusive through 23:59:59.
	seedClosedTrade(t, db, 1, "USD", 20, time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC))
	seedClosedTrade(t, db, 1, "USD", 99, time.Date(2025, 6, 16, 1, 0, 0, 0, time.UTC))

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	result, err := service.Analytics(context.Background(), 1, PeriodCustom, "USD", &start, &end)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalTrades)
	assert.Equal(t, "30.00", result.Summary.TotalPnl)
}

func TestAnalytics_BestTradeTieKeepsFirst(t *testing.T) {
	service, db := setupService(t)

	now := time.Now()
	seedClosedTrade(t, db, 1, "USD", 25, now.AddDate(0, 0, -3))
	seedClosedTrade(t, db, 1, "USD", 25, now.AddDate(0, 0, -2))
	seedClosedTrade(t, db, 1, "USD", -25, now.AddDate(0, 0, -1))

	result, err := service.Analytics(context.Background(), 1, PeriodWeek, "USD", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "25.00", result.Summary.BestTrade)
	assert.Equal(t, "-25.00", result.Summary.WorstTrade)
}
