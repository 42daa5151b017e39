// Package quotes fetches latest market prices so open positions in the
// journal can be eyeballed against the market. It never touches the stores.
package quotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ClientInterface defines the interface for the quote client.
type ClientInterface interface {
	GetPrices(ctx context.Context, symbols []string) (map[string]string, error)
}

// TickerPrice represents the upstream response for a single symbol.
type TickerPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// Client is a rate-limited REST client for a market quote API.
// It implements ClientInterface.
type Client struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)

// NewClient creates a new quote client.
func NewClient(baseURL string, rateLimit float64, burst int, logger *zap.Logger) *Client {
	return &Client{
		client:  resty.New().SetBaseURL(baseURL),
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
	}
}

// GetPrices fetches the latest price for the given symbols. Symbols the
// upstream does not know are simply absent from the result.
func (c *Client) GetPrices(ctx context.Context, symbols []string) (map[string]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	var prices []*TickerPrice
	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", strings.Join(symbols, ",")).
		SetResult(&prices).
		SetHeader("Content-Type", "application/json")

	c.logger.Debug("Fetching quotes", zap.Strings("symbols", symbols))
	resp, err := req.Get("/prices")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("quote API returned status %s: %s", resp.Status(), resp.String())
	}

	priceMap := make(map[string]string, len(prices))
	for _, p := range prices {
		priceMap[p.Symbol] = p.Price
	}
	return priceMap, nil
}
