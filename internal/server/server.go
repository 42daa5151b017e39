// Package server exposes the journal over HTTP/JSON.
package server

import (
	"context"
	"fmt"
	"net/http"

	"trade-journal-go/internal/auth"
	"trade-journal-go/internal/config"
	"trade-journal-go/internal/quotes"
	"trade-journal-go/internal/stats"
	"trade-journal-go/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wires the HTTP layer to the stores and services behind it.
type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	router    *gin.Engine
	server    *http.Server
	trades    *store.TradeStore
	summaries *store.SummaryStore
	stats     *stats.Service
	auth      *auth.Service
	quotes    quotes.ClientInterface
}

// NewServer creates a new Server and registers all routes.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	trades *store.TradeStore,
	summaries *store.SummaryStore,
	statsService *stats.Service,
	authService *auth.Service,
	quoteClient quotes.ClientInterface,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		cfg:       cfg,
		logger:    logger.Named("http-server"),
		router:    router,
		trades:    trades,
		summaries: summaries,
		stats:     statsService,
		auth:      authService,
		quotes:    quoteClient,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		},
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.healthHandler)

	// Uploaded trade screenshots are served statically.
	s.router.Static("/uploads", s.cfg.Upload.Dir)

	api := s.router.Group("/api")
	{
		api.GET("/trades", s.listTrades)
		api.POST("/trades", s.createTrade)
		api.GET("/trades/stats", s.tradeStats)
		api.GET("/trades/analytics", s.tradeAnalytics)
		api.PUT("/trades/:id", s.updateTrade)
		api.DELETE("/trades/:id", s.deleteTrade)

		api.GET("/calendar/summary", s.calendarSummary)
		api.POST("/calendar/daily-summary", s.upsertDailySummary)

		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)

		api.POST("/upload", s.uploadImage)
		api.GET("/quotes", s.getQuotes)
	}
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server in a new goroutine.
func (s *Server) Start() {
	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error("API server failed", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
