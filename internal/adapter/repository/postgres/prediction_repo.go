package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

const listLatestPredictions = `
SELECT player_id, last_name, team_name,
       mv::text, mv_change_1d::text, predicted_mv_target::text, s_11_prob::text
FROM mv_predictions
WHERE prediction_date = (SELECT max(prediction_date) FROM mv_predictions)
ORDER BY predicted_mv_target DESC, player_id`

const upsertPrediction = `
INSERT INTO mv_predictions (
    prediction_date, player_id, last_name, team_name,
    mv, mv_change_1d, predicted_mv_target, s_11_prob
) VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8::numeric)
ON CONFLICT (prediction_date, player_id) DO UPDATE SET
    last_name = EXCLUDED.last_name,
    team_name = EXCLUDED.team_name,
    mv = EXCLUDED.mv,
    mv_change_1d = EXCLUDED.mv_change_1d,
    predicted_mv_target = EXCLUDED.predicted_mv_target,
    s_11_prob = EXCLUDED.s_11_prob`

type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PredictionRepository implements usecase.PredictionRepository.
type PredictionRepository struct {
	pool pgxPool
}

// NewPredictionRepository creates a new PredictionRepository.
func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return newPredictionRepositoryWithPool(pool)
}

func newPredictionRepositoryWithPool(pool pgxPool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

// ListLatest returns the predictions of the most recent prediction day.
func (r *PredictionRepository) ListLatest(ctx context.Context) ([]domain.Prediction, error) {
	rows, err := r.pool.Query(ctx, listLatestPredictions)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []domain.Prediction
	for rows.Next() {
		var (
			p                  domain.Prediction
			mv, change, target string
			prob               *string
		)
		if err := rows.Scan(&p.PlayerID, &p.LastName, &p.TeamName, &mv, &change, &target, &prob); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}

		if p.MarketValue, err = decimal.NewFromString(mv); err != nil {
			return nil, fmt.Errorf("invalid mv for player %s: %w", p.PlayerID, err)
		}
		if p.MarketValueChange, err = decimal.NewFromString(change); err != nil {
			return nil, fmt.Errorf("invalid mv_change_1d for player %s: %w", p.PlayerID, err)
		}
		if p.PredictedMVTarget, err = decimal.NewFromString(target); err != nil {
			return nil, fmt.Errorf("invalid predicted_mv_target for player %s: %w", p.PlayerID, err)
		}
		if prob != nil {
			d, err := decimal.NewFromString(*prob)
			if err != nil {
				return nil, fmt.Errorf("invalid s_11_prob for player %s: %w", p.PlayerID, err)
			}
			p.S11Prob = decimal.NewNullDecimal(d)
		}

		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}

// Save upserts the predictions of one day in a single transaction.
func (r *PredictionRepository) Save(ctx context.Context, day time.Time, predictions []domain.Prediction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	date := day.UTC().Truncate(24 * time.Hour)
	for _, p := range predictions {
		var prob *string
		if p.S11Prob.Valid {
			s := p.S11Prob.Decimal.String()
			prob = &s
		}

		if _, err := tx.Exec(ctx, upsertPrediction,
			date,
			p.PlayerID,
			p.LastName,
			p.TeamName,
			p.MarketValue.String(),
			p.MarketValueChange.String(),
			p.PredictedMVTarget.String(),
			prob,
		); err != nil {
			return fmt.Errorf("failed to save prediction for player %s: %w", p.PlayerID, err)
		}
	}

	return tx.Commit(ctx)
}
