package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	postgresRepo "github.com/iho/leaguebudget/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/leaguebudget/internal/adapter/repository/redis"
	"github.com/iho/leaguebudget/internal/domain"
	"github.com/iho/leaguebudget/internal/infrastructure/config"
	"github.com/iho/leaguebudget/internal/infrastructure/postgres"
	"github.com/iho/leaguebudget/internal/infrastructure/redis"
	"github.com/iho/leaguebudget/internal/usecase"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Prediction store migrations (uses DATABASE_URL)",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
				return err
			}
			success.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := postgres.RunMigrationsDown(cfg.DatabaseURL); err != nil {
				return err
			}
			success.Fprintln(cmd.OutOrStdout(), "migration rolled back")
			return nil
		},
	}

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

// predictionRecord is one row of a prediction export.
type predictionRecord struct {
	PlayerID          string              `json:"player_id"`
	LastName          string              `json:"last_name"`
	TeamName          string              `json:"team_name"`
	MarketValue       decimal.Decimal     `json:"mv"`
	MarketValueChange decimal.Decimal     `json:"mv_change_1d"`
	PredictedMVTarget decimal.Decimal     `json:"predicted_mv_target"`
	Prob              decimal.NullDecimal `json:"prob"`
}

func readPredictions(path string) ([]domain.Prediction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []predictionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	predictions := make([]domain.Prediction, 0, len(records))
	for i, r := range records {
		if r.PlayerID == "" {
			return nil, fmt.Errorf("record %d: missing player_id", i)
		}
		predictions = append(predictions, domain.Prediction{
			PlayerID:          r.PlayerID,
			LastName:          r.LastName,
			TeamName:          r.TeamName,
			MarketValue:       r.MarketValue,
			MarketValueChange: r.MarketValueChange,
			PredictedMVTarget: r.PredictedMVTarget,
			S11Prob:           r.Prob,
		})
	}
	return predictions, nil
}

// predictionDate returns the calendar day predictions are stored under, as
// UTC midnight. Without a flag it is today in loc.
func predictionDate(flag string, now time.Time, loc *time.Location) (time.Time, error) {
	if flag != "" {
		parsed, err := time.Parse("2006-01-02", flag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: %w", flag, err)
		}
		return parsed, nil
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// invalidatePredictionCache drops the cached prediction set so the API serves
// the import right away. A cache outage only delays that until the TTL.
func invalidatePredictionCache(cmd *cobra.Command, redisURL string) {
	client, err := redis.NewClient(cmd.Context(), redisURL)
	if err != nil {
		warn.Fprintf(cmd.ErrOrStderr(), "prediction cache not invalidated: %v\n", err)
		return
	}
	defer client.Close()

	if err := redisRepo.NewCache(client).Delete(cmd.Context(), usecase.PredictionCacheKey); err != nil {
		warn.Fprintf(cmd.ErrOrStderr(), "prediction cache not invalidated: %v\n", err)
	}
}

func predictionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predictions",
		Short: "Manage stored market value predictions",
	}

	var day string
	importCmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Store a day of predictions from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return fmt.Errorf("invalid time zone %q: %w", cfg.Timezone, err)
			}
			date, err := predictionDate(day, time.Now(), loc)
			if err != nil {
				return err
			}

			predictions, err := readPredictions(args[0])
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.DatabaseURL, 2, 0)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := postgresRepo.NewPredictionRepository(pool).Save(cmd.Context(), date, predictions); err != nil {
				return err
			}
			invalidatePredictionCache(cmd, cfg.RedisURL)
			success.Fprintf(cmd.OutOrStdout(), "stored %d predictions for %s\n", len(predictions), date.Format("2006-01-02"))
			return nil
		},
	}
	importCmd.Flags().StringVar(&day, "date", "", "Prediction date (YYYY-MM-DD), defaults to today in TIMEZONE")

	cmd.AddCommand(importCmd)
	return cmd
}
