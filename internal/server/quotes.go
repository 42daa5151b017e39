package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getQuotes returns latest market prices for a comma-separated symbol list.
func (s *Server) getQuotes(c *gin.Context) {
	raw := c.Query("symbols")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols required"})
		return
	}

	symbols := make([]string, 0)
	for _, symbol := range strings.Split(raw, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}

	prices, err := s.quotes.GetPrices(c.Request.Context(), symbols)
	if err != nil {
		s.logger.Error("Failed to fetch quotes", zap.Strings("symbols", symbols), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prices)
}
