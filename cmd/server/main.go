package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/leaguebudget/internal/adapter/http"
	"github.com/iho/leaguebudget/internal/adapter/http/handler"
	"github.com/iho/leaguebudget/internal/adapter/http/middleware"
	"github.com/iho/leaguebudget/internal/adapter/leagueapi"
	postgresRepo "github.com/iho/leaguebudget/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/leaguebudget/internal/adapter/repository/redis"
	"github.com/iho/leaguebudget/internal/infrastructure/config"
	"github.com/iho/leaguebudget/internal/infrastructure/idgen"
	"github.com/iho/leaguebudget/internal/infrastructure/leagues"
	"github.com/iho/leaguebudget/internal/infrastructure/logger"
	"github.com/iho/leaguebudget/internal/infrastructure/metrics"
	"github.com/iho/leaguebudget/internal/infrastructure/postgres"
	"github.com/iho/leaguebudget/internal/infrastructure/redis"
	"github.com/iho/leaguebudget/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config, appLogger zerolog.Logger) error {
	ctx := context.Background()

	location, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", cfg.Timezone, err)
	}

	allocator, err := usecase.AllocatorByName(cfg.AllocationStrategy)
	if err != nil {
		return err
	}

	profiles, err := leagues.Load(cfg.LeaguesFile)
	if err != nil {
		return err
	}
	appLogger.Info().Strs("leagues", profiles.IDs()).Msg("loaded league profiles")

	// Run migrations before serving predictions
	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		return err
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClientWithConfig(ctx, redis.ClientConfig{
		URL:         cfg.RedisURL,
		PoolSize:    cfg.RedisPoolSize,
		DialTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	m := metrics.New()

	// Upstream league API
	retrier := leagueapi.NewRetrier(leagueapi.RetrierConfig{
		MaxRetries:      cfg.UpstreamMaxRetries,
		InitialInterval: cfg.UpstreamRetryWait,
		MaxInterval:     cfg.UpstreamMaxWait,
	}, appLogger)
	client := leagueapi.New(leagueapi.Config{
		BaseURL: cfg.UpstreamBaseURL,
		Token:   cfg.UpstreamToken,
		Timeout: cfg.UpstreamTimeout,
		RPS:     cfg.UpstreamRPS,
	}, appLogger, leagueapi.WithRetrier(retrier), leagueapi.WithMetrics(m))

	// Initialize repositories
	cache := redisRepo.NewCache(redisClient)
	predictionRepo := usecase.NewCachedPredictionRepository(
		postgresRepo.NewPredictionRepository(pool), cache, cfg.PredictionCacheTTL, appLogger,
	).WithMetrics(m)

	// Initialize use cases
	budgetUC := usecase.NewBudgetUseCase(
		usecase.BudgetSources{
			Activities: client,
			Rewards:    client,
			Managers:   client,
			Account:    client,
			Ranking:    client,
		},
		profiles,
		allocator,
		idgen.NewULIDGenerator(),
		usecase.SystemClock{},
		m,
		appLogger,
	)
	recommendationUC := usecase.NewRecommendationUseCase(predictionRepo, client, usecase.SystemClock{}, location, appLogger).
		WithCutoffHour(cfg.CutoffHour).
		WithMetrics(m)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go limiter.RunSweeper(sweepCtx, time.Minute, 10*time.Minute)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BudgetHandler:         handler.NewBudgetHandler(budgetUC),
		RecommendationHandler: handler.NewRecommendationHandler(recommendationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		RateLimiter:           limiter,
		Logger:                appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         listenAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Str("allocator", cfg.AllocationStrategy).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg.HTTPShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info().Msg("server stopped")
	return nil
}

func listenAddr(port string) string {
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf(":%s", port)
}

func shutdownTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
