package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/stats"
	"trade-journal-go/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// parseUserID extracts the required userId query parameter. A missing or
// malformed value writes a 400 and reports false.
func (s *Server) parseUserID(c *gin.Context) (uint, bool) {
	raw := c.Query("userId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID must be numeric"})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) parseTradeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trade ID must be numeric"})
		return 0, false
	}
	return uint(id), true
}

func (s *Server) listTrades(c *gin.Context) {
	userID, ok := s.parseUserID(c)
	if !ok {
		return
	}

	filter := store.TradeFilter{Status: c.Query("status")}
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	trades, err := s.trades.List(c.Request.Context(), userID, filter)
	if err != nil {
		s.logger.Error("Failed to list trades", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trades)
}

type createTradeRequest struct {
	UserID     Number `json:"userId"`
	Asset      string `json:"asset"`
	Currency   string `json:"currency"`
	Timeframe  string `json:"timeframe"`
	Session    string `json:"session"`
	Type       string `json:"type"`
	EntryPrice Number `json:"entry_price"`
	TP         Number `json:"tp"`
	SL         Number `json:"sl"`
	LotSize    Number `json:"lot_size"`
	Notes      string `json:"notes"`
	ImagesPath string `json:"images_path"`
}

func (s *Server) createTrade(c *gin.Context) {
	var req createTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.UserID.HasValue() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}
	if req.Asset == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset is required"})
		return
	}
	if !req.EntryPrice.HasValue() || !req.LotSize.HasValue() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entry_price and lot_size are required"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Journal.DefaultCurrency
	}

	trade := models.Trade{
		UserID:     uint(req.UserID.Value()),
		Asset:      req.Asset,
		Currency:   currency,
		Timeframe:  req.Timeframe,
		Session:    req.Session,
		Type:       req.Type,
		EntryPrice: req.EntryPrice.Value(),
		LotSize:    req.LotSize.Value(),
		Notes:      req.Notes,
		ImagesPath: req.ImagesPath,
		Status:     models.StatusOpen,
	}
	if req.TP.HasValue() {
		v := req.TP.Value()
		trade.TP = &v
	}
	if req.SL.HasValue() {
		v := req.SL.Value()
		trade.SL = &v
	}

	if err := s.trades.Create(c.Request.Context(), &trade); err != nil {
		s.logger.Error("Failed to create trade", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, trade)
}

type updateTradeRequest struct {
	Asset       *string `json:"asset"`
	Currency    *string `json:"currency"`
	Timeframe   *string `json:"timeframe"`
	Session     *string `json:"session"`
	Type        *string `json:"type"`
	EntryPrice  Number  `json:"entry_price"`
	ExitPrice   Number  `json:"exit_price"`
	TP          Number  `json:"tp"`
	SL          Number  `json:"sl"`
	LotSize     Number  `json:"lot_size"`
	Pnl         Number  `json:"pnl"`
	Status      *string `json:"status"`
	CloseReason *string `json:"close_reason"`
	Notes       *string `json:"notes"`
	ImagesPath  *string `json:"images_path"`
}

// fields builds the partial-update column map. A blank value clears an
// optional numeric column; a blank entry_price or lot_size is dropped since
// those columns are required.
func (r *updateTradeRequest) fields() map[string]interface{} {
	fields := make(map[string]interface{})

	setString := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setString("asset", r.Asset)
	setString("currency", r.Currency)
	setString("timeframe", r.Timeframe)
	setString("session", r.Session)
	setString("type", r.Type)
	setString("status", r.Status)
	setString("close_reason", r.CloseReason)
	setString("notes", r.Notes)
	setString("images_path", r.ImagesPath)

	setRequired := func(column string, value Number) {
		if value.HasValue() {
			fields[column] = value.Value()
		}
	}
	setRequired("entry_price", r.EntryPrice)
	setRequired("lot_size", r.LotSize)

	setOptional := func(column string, value Number) {
		if !value.Set() {
			return
		}
		if value.Blank() {
			fields[column] = nil
			return
		}
		fields[column] = value.Value()
	}
	setOptional("exit_price", r.ExitPrice)
	setOptional("tp", r.TP)
	setOptional("sl", r.SL)
	setOptional("pnl", r.Pnl)

	return fields
}

func (s *Server) updateTrade(c *gin.Context) {
	id, ok := s.parseTradeID(c)
	if !ok {
		return
	}

	var req updateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, err := s.trades.Update(c.Request.Context(), id, req.fields())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
			return
		}
		s.logger.Error("Failed to update trade", zap.Uint("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (s *Server) deleteTrade(c *gin.Context) {
	id, ok := s.parseTradeID(c)
	if !ok {
		return
	}

	if err := s.trades.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found"})
			return
		}
		s.logger.Error("Failed to delete trade", zap.Uint("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trade deleted"})
}

func (s *Server) tradeStats(c *gin.Context) {
	userID, ok := s.parseUserID(c)
	if !ok {
		return
	}

	result, err := s.stats.Stats(c.Request.Context(), userID, c.Query("currency"))
	if err != nil {
		s.logger.Error("Failed to compute stats", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) tradeAnalytics(c *gin.Context) {
	period := c.DefaultQuery("period", "month")
	currency := c.Query("currency")
	if currency == "" {
		currency = s.cfg.Journal.DefaultCurrency
	}

	// Unlike the other views, a missing user id degrades to a well-defined
	// empty result instead of an error.
	raw := c.Query("userId")
	userID, err := strconv.ParseUint(raw, 10, 64)
	if raw == "" || err != nil {
		c.JSON(http.StatusOK, stats.EmptyAnalytics(period, currency))
		return
	}

	var customStart, customEnd *time.Time
	if startRaw, endRaw := c.Query("startDate"), c.Query("endDate"); startRaw != "" && endRaw != "" {
		start, errStart := time.Parse("2006-01-02", startRaw)
		end, errEnd := time.Parse("2006-01-02", endRaw)
		if errStart == nil && errEnd == nil {
			customStart, customEnd = &start, &end
		}
	}

	result, err := s.stats.Analytics(c.Request.Context(), uint(userID), period, currency, customStart, customEnd)
	if err != nil {
		s.logger.Error("Failed to compute analytics", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(http.StatusOK, stats.EmptyAnalytics(period, currency))
		return
	}
	c.JSON(http.StatusOK, result)
}
