package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/leaguebudget/internal/adapter/http/handler"
	"github.com/iho/leaguebudget/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BudgetHandler         *handler.BudgetHandler
	RecommendationHandler *handler.RecommendationHandler
	HealthHandler         *handler.HealthHandler
	RateLimiter           *middleware.RateLimiter
	MetricsHandler        http.Handler
	Logger                zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1/leagues/{leagueID}", func(r chi.Router) {
		r.Get("/budgets", cfg.BudgetHandler.Get)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/market", cfg.RecommendationHandler.Market)
			r.Get("/squad", cfg.RecommendationHandler.Squad)
		})
	})

	return r
}
