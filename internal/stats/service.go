// Package stats computes the journal's derived views: account balance and
// trade statistics, the per-day calendar summary, and the analytics time
// series. Every view is a pure function of the two stores' current contents,
// recomputed on each call.
package stats

import (
	"context"
	"fmt"

	"trade-journal-go/internal/store"

	"github.com/shopspring/decimal"
)

// Service reads from the trade and summary stores and derives statistics.
type Service struct {
	trades          *store.TradeStore
	summaries       *store.SummaryStore
	defaultCurrency string
}

// NewService creates a new Service. defaultCurrency is applied whenever a
// caller does not name one.
func NewService(trades *store.TradeStore, summaries *store.SummaryStore, defaultCurrency string) *Service {
	return &Service{
		trades:          trades,
		summaries:       summaries,
		defaultCurrency: defaultCurrency,
	}
}

func (s *Service) currencyOrDefault(currency string) string {
	if currency == "" {
		return s.defaultCurrency
	}
	return currency
}

// Stats is the balance view for one user and currency.
type Stats struct {
	Currency     string  `json:"currency"`
	Balance      float64 `json:"balance"`
	WinRate      float64 `json:"winRate"`
	ProfitFactor float64 `json:"profitFactor"`
	TotalTrades  int64   `json:"totalTrades"`
}

// Stats computes the balance view: net balance, win rate, profit factor and
// closed-trade count. Deposits, withdrawals and manual pnl are all-time sums,
// never restricted to a period.
func (s *Service) Stats(ctx context.Context, userID uint, currency string) (*Stats, error) {
	currency = s.currencyOrDefault(currency)

	// Five independent read-only aggregates; no ordering dependency between
	// them, they are simply gathered and combined.
	tradeAgg, err := s.trades.AggregateClosedPnl(ctx, userID, currency, store.PnlAll)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	grossProfit, err := s.trades.AggregateClosedPnl(ctx, userID, currency, store.PnlGt0)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	grossLoss, err := s.trades.AggregateClosedPnl(ctx, userID, currency, store.PnlLt0)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	losses, err := s.trades.AggregateClosedPnl(ctx, userID, currency, store.PnlLte0)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	money, err := s.summaries.AggregateTotals(ctx, userID, currency)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	wins := grossProfit.Count

	winRate := 0.0
	if total := wins + losses.Count; total > 0 {
		winRate = float64(wins) / float64(total) * 100
	}

	balance := decimal.NewFromFloat(money.SumDeposit).
		Sub(decimal.NewFromFloat(money.SumWithdrawal)).
		Add(decimal.NewFromFloat(tradeAgg.Sum)).
		Add(decimal.NewFromFloat(money.SumManualPnl))

	pf := NewProfitFactor(grossProfit.Sum, grossLoss.Sum)

	return &Stats{
		Currency:     currency,
		Balance:      balance.InexactFloat64(),
		WinRate:      winRate,
		ProfitFactor: pf.Sentinel(),
		TotalTrades:  tradeAgg.Count,
	}, nil
}
