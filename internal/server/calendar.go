package server

import (
	"net/http"
	"time"

	"trade-journal-go/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) calendarSummary(c *gin.Context) {
	userID, ok := s.parseUserID(c)
	if !ok {
		return
	}

	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
			return
		}
		month = parsed
	}

	summary, err := s.stats.CalendarSummary(c.Request.Context(), userID, month, c.Query("currency"))
	if err != nil {
		s.logger.Error("Failed to compute calendar summary", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

type dailySummaryRequest struct {
	UserID     Number `json:"userId"`
	Date       string `json:"date"`
	Currency   string `json:"currency"`
	Deposit    Number `json:"deposit"`
	Withdrawal Number `json:"withdrawal"`
	ManualPnl  Number `json:"manual_pnl"`
}

func (s *Server) upsertDailySummary(c *gin.Context) {
	var req dailySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.UserID.HasValue() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Journal.DefaultCurrency
	}

	// Blank or absent amounts coerce to zero.
	summary := models.DailySummary{
		UserID:     uint(req.UserID.Value()),
		Date:       date,
		Currency:   currency,
		Deposit:    req.Deposit.Or(0),
		Withdrawal: req.Withdrawal.Or(0),
		ManualPnl:  req.ManualPnl.Or(0),
	}

	if err := s.summaries.Upsert(c.Request.Context(), &summary); err != nil {
		s.logger.Error("Failed to upsert daily summary", zap.Uint("user_id", summary.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
