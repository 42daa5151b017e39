package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// setupTestServer creates a new test server and a Client configured to use it.
func setupTestServer(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)

	c := &Client{
		client:  resty.New().SetBaseURL(server.URL),
		logger:  zap.NewNop(), // Use a no-op logger for tests
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	return c, server
}

func TestGetPrices(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/prices", r.URL.Path)
			assert.Equal(t, "EURUSD,XAUUSD", r.URL.Query().Get("symbols"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"symbol":"EURUSD","price":"1.0842"},{"symbol":"XAUUSD","price":"2372.10"}]`))
		})

		c, server := setupTestServer(handler)
		defer server.Close()

		prices, err := c.GetPrices(context.Background(), []string{"EURUSD", "XAUUSD"})
		assert.NoError(t, err)
		assert.Equal(t, map[string]string{"EURUSD": "1.0842", "XAUUSD": "2372.10"}, prices)
	})

	t.Run("UpstreamError", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"upstream down"}`))
		})

		c, server := setupTestServer(handler)
		defer server.Close()

		_, err := c.GetPrices(context.Background(), []string{"EURUSD"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("CanceledContext", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:0", 1, 1, zap.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.GetPrices(ctx, []string{"EURUSD"})
		assert.Error(t, err)
	})
}
