package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"trade-journal-go/internal/models"

	"github.com/shopspring/decimal"
)

// Analytics periods.
const (
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodYear   = "year"
	PeriodCustom = "custom"
)

// ChartPoint is one day on the cumulative P/L chart. Type and Asset carry the
// first trade of the day; Trades counts how many were folded into the bucket.
type ChartPoint struct {
	Date       string  `json:"date"`
	Pnl        float64 `json:"pnl"`
	Cumulative float64 `json:"cumulative"`
	Type       string  `json:"type"`
	Asset      string  `json:"asset"`
	Trades     int     `json:"trades"`
}

// AnalyticsSummary aggregates the full trade set of the period. Monetary
// values are rendered with two decimal places.
type AnalyticsSummary struct {
	TotalTrades  int    `json:"totalTrades"`
	Winners      int    `json:"winners"`
	Losers       int    `json:"losers"`
	WinRate      string `json:"winRate"`
	TotalPnl     string `json:"totalPnl"`
	ProfitFactor string `json:"profitFactor"`
	AvgWin       string `json:"avgWin"`
	AvgLoss      string `json:"avgLoss"`
	BestTrade    string `json:"bestTrade"`
	WorstTrade   string `json:"worstTrade"`
}

// Analytics is the time-series view of a user's closed trades.
type Analytics struct {
	Period    string           `json:"period"`
	Currency  string           `json:"currency"`
	ChartData []ChartPoint     `json:"chartData"`
	Summary   AnalyticsSummary `json:"summary"`
}

// EmptyAnalytics is the well-defined empty state: a structurally valid
// all-zero result rather than an error.
func EmptyAnalytics(period, currency string) *Analytics {
	return &Analytics{
		Period:    period,
		Currency:  currency,
		ChartData: []ChartPoint{},
		Summary: AnalyticsSummary{
			WinRate:      "0.0",
			TotalPnl:     "0.00",
			ProfitFactor: "0.00",
			AvgWin:       "0.00",
			AvgLoss:      "0.00",
			BestTrade:    "0.00",
			WorstTrade:   "0.00",
		},
	}
}

// Analytics builds the cumulative P/L chart and summary statistics for the
// requested period. A custom range uses the given dates with the end date
// inclusive through the last instant of its day; unrecognized periods fall
// back to one month.
func (s *Service) Analytics(ctx context.Context, userID uint, period, currency string, customStart, customEnd *time.Time) (*Analytics, error) {
	currency = s.currencyOrDefault(currency)

	from, to := resolveRange(period, customStart, customEnd, time.Now())

	trades, err := s.trades.ListClosedCreatedBetween(ctx, userID, currency, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	if len(trades) == 0 {
		return EmptyAnalytics(period, currency), nil
	}

	return &Analytics{
		Period:    period,
		Currency:  currency,
		ChartData: buildChart(trades),
		Summary:   summarize(trades),
	}, nil
}

func resolveRange(period string, customStart, customEnd *time.Time, now time.Time) (time.Time, time.Time) {
	if customStart != nil && customEnd != nil {
		end := *customEnd
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), end.Location())
		return *customStart, end
	}

	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now
	case PeriodYear:
		return now.AddDate(-1, 0, 0), now
	default: // month, including unrecognized values
		return now.AddDate(0, -1, 0), now
	}
}

// buildChart walks the trades in chronological order keeping a running
// cumulative sum, then folds same-day points into a single bucket: pnl is
// summed, cumulative is the running total after the day's last trade.
func buildChart(trades []models.Trade) []ChartPoint {
	points := make([]ChartPoint, 0, len(trades))
	byDate := make(map[string]int)

	cumulative := decimal.Zero
	for _, trade := range trades {
		pnl := decimal.NewFromFloat(tradePnl(trade))
		cumulative = cumulative.Add(pnl)
		date := trade.CreatedAt.Format(dayFormat)

		if i, ok := byDate[date]; ok {
			points[i].Pnl += pnl.InexactFloat64()
			points[i].Cumulative = cumulative.InexactFloat64()
			points[i].Trades++
			continue
		}

		byDate[date] = len(points)
		points = append(points, ChartPoint{
			Date:       date,
			Pnl:        pnl.InexactFloat64(),
			Cumulative: cumulative.InexactFloat64(),
			Type:       trade.Type,
			Asset:      trade.Asset,
			Trades:     1,
		})
	}

	return points
}

func summarize(trades []models.Trade) AnalyticsSummary {
	var winners, losers int
	totalPnl := decimal.Zero
	grossProfit := decimal.Zero
	grossLoss := decimal.Zero

	best := tradePnl(trades[0])
	worst := tradePnl(trades[0])

	for _, trade := range trades {
		pnl := tradePnl(trade)
		totalPnl = totalPnl.Add(decimal.NewFromFloat(pnl))

		switch {
		case pnl > 0:
			winners++
			grossProfit = grossProfit.Add(decimal.NewFromFloat(pnl))
		case pnl < 0:
			losers++
			grossLoss = grossLoss.Add(decimal.NewFromFloat(pnl))
		}

		// Strict comparisons keep the first occurrence on ties.
		if pnl > best {
			best = pnl
		}
		if pnl < worst {
			worst = pnl
		}
	}

	grossLoss = grossLoss.Abs()
	winRate := float64(winners) / float64(len(trades)) * 100

	avgWin := decimal.Zero
	if winners > 0 {
		avgWin = grossProfit.Div(decimal.NewFromInt(int64(winners)))
	}
	avgLoss := decimal.Zero
	if losers > 0 {
		avgLoss = grossLoss.Div(decimal.NewFromInt(int64(losers)))
	}

	pf := NewProfitFactor(grossProfit.InexactFloat64(), grossLoss.Neg().InexactFloat64())

	return AnalyticsSummary{
		TotalTrades:  len(trades),
		Winners:      winners,
		Losers:       losers,
		WinRate:      strconv.FormatFloat(winRate, 'f', 1, 64),
		TotalPnl:     totalPnl.StringFixed(2),
		ProfitFactor: pf.String(),
		AvgWin:       avgWin.StringFixed(2),
		AvgLoss:      avgLoss.StringFixed(2),
		BestTrade:    decimal.NewFromFloat(best).StringFixed(2),
		WorstTrade:   decimal.NewFromFloat(worst).StringFixed(2),
	}
}

func tradePnl(trade models.Trade) float64 {
	if trade.Pnl == nil {
		return 0
	}
	return *trade.Pnl
}
