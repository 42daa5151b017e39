package stats

import (
	"context"
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// DayTotals is one calendar cell: realized pnl plus manual cash flow for a
// single day.
type DayTotals struct {
	Pnl        float64 `json:"pnl"`
	Deposit    float64 `json:"deposit"`
	Withdrawal float64 `json:"withdrawal"`
}

// CalendarSummary groups one month of activity by calendar day. Trades
// contribute their pnl on the day they were closed; daily summaries add their
// manual pnl, deposits and withdrawals on their own date. Days without any
// activity are absent from the map.
func (s *Service) CalendarSummary(ctx context.Context, userID uint, month time.Time, currency string) (map[string]DayTotals, error) {
	currency = s.currencyOrDefault(currency)

	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	trades, err := s.trades.ListClosedByCloseDay(ctx, userID, currency, start, end)
	if err != nil {
		return nil, fmt.Errorf("calendar summary: %w", err)
	}

	merged := make(map[string]DayTotals)
	for _, trade := range trades {
		day := trade.CloseDay().Format(dayFormat)
		totals := merged[day]
		if trade.Pnl != nil {
			totals.Pnl += *trade.Pnl
		}
		merged[day] = totals
	}

	summaries, err := s.summaries.ListInRange(ctx, userID, currency, start, end)
	if err != nil {
		return nil, fmt.Errorf("calendar summary: %w", err)
	}

	// Unlike the replace-on-upsert storage semantics, the merge here is
	// additive: manual pnl lands in the same bucket as trade pnl.
	for _, summary := range summaries {
		day := summary.Date.Format(dayFormat)
		totals := merged[day]
		totals.Pnl += summary.ManualPnl
		totals.Deposit += summary.Deposit
		totals.Withdrawal += summary.Withdrawal
		merged[day] = totals
	}

	return merged, nil
}
