package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// DefaultCutoffHour is the local hour at which market listings of the day are settled.
const DefaultCutoffHour = 22

var (
	marketIDAliases = []string{"id"}
	squadIDAliases  = []string{"i", "pi"}
	secondsPerHour  = decimal.NewFromInt(3600)
)

// RecommendationMetrics records served recommendations.
type RecommendationMetrics interface {
	CountRecommendations(kind string, rows int)
}

// RecommendationUseCase joins model predictions with market and squad listings.
type RecommendationUseCase struct {
	predictions PredictionRepository
	market      MarketSource
	clock       Clock
	location    *time.Location
	cutoffHour  int
	metrics     RecommendationMetrics
	logger      zerolog.Logger
}

// NewRecommendationUseCase creates a new RecommendationUseCase. Expiry is
// evaluated in location.
func NewRecommendationUseCase(
	predictions PredictionRepository,
	market MarketSource,
	clock Clock,
	location *time.Location,
	logger zerolog.Logger,
) *RecommendationUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	if location == nil {
		location = time.UTC
	}
	return &RecommendationUseCase{
		predictions: predictions,
		market:      market,
		clock:       clock,
		location:    location,
		cutoffHour:  DefaultCutoffHour,
		logger:      logger,
	}
}

// WithCutoffHour sets the local hour at which listings of the day settle.
func (uc *RecommendationUseCase) WithCutoffHour(hour int) *RecommendationUseCase {
	if hour >= 0 && hour < 24 {
		uc.cutoffHour = hour
	}
	return uc
}

// WithMetrics records served rows on m.
func (uc *RecommendationUseCase) WithMetrics(m RecommendationMetrics) *RecommendationUseCase {
	uc.metrics = m
	return uc
}

func (uc *RecommendationUseCase) count(kind string, rows int) {
	if uc.metrics != nil {
		uc.metrics.CountRecommendations(kind, rows)
	}
}

// Market returns bid recommendations for players currently on the market.
func (uc *RecommendationUseCase) Market(ctx context.Context, leagueID string) (*domain.MarketTable, error) {
	if leagueID == "" {
		return nil, domain.ErrInvalidLeagueID
	}

	predictions, err := uc.predictions.ListLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}

	listings, err := uc.market.FetchMarketListings(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market listings: %w", err)
	}

	table := JoinMarket(predictions, listings, uc.clock.Now().In(uc.location), uc.cutoffHour)
	uc.logger.Debug().
		Str("league_id", leagueID).
		Int("predictions", len(predictions)).
		Int("listings", len(listings)).
		Int("recommendations", len(table.Rows)).
		Msg("market recommendations joined")
	uc.count("market", len(table.Rows))

	return &table, nil
}

// Squad returns the predictions for players the user owns.
func (uc *RecommendationUseCase) Squad(ctx context.Context, leagueID string) (*domain.SquadTable, error) {
	if leagueID == "" {
		return nil, domain.ErrInvalidLeagueID
	}

	squad, err := uc.market.FetchSquad(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch squad: %w", err)
	}
	if len(squad) == 0 {
		uc.logger.Info().Str("league_id", leagueID).Msg("no squad players found, skipping squad recommendations")
		table := JoinSquadEmpty()
		return &table, nil
	}

	predictions, err := uc.predictions.ListLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}

	table, err := JoinSquad(predictions, squad)
	if err != nil {
		return nil, err
	}
	uc.count("squad", len(table.Rows))
	return &table, nil
}

// JoinSquadEmpty returns a squad table with all columns and no rows.
func JoinSquadEmpty() domain.SquadTable {
	return domain.SquadTable{Columns: domain.SquadColumns, Rows: []domain.SquadRecommendation{}}
}

// JoinSquad inner-joins predictions with the squad by player id. The squad id
// field may be named "i" or "pi"; an empty squad yields an empty table.
func JoinSquad(predictions []domain.Prediction, squad []domain.Listing) (domain.SquadTable, error) {
	if len(squad) == 0 {
		return JoinSquadEmpty(), nil
	}

	available := domain.FieldNames(squad)
	idField := resolveAlias(available, squadIDAliases...)
	if idField == "" {
		return domain.SquadTable{}, &domain.SchemaError{Kind: "squad player id", Fields: available}
	}

	byID := indexListings(squad, idField)
	table := JoinSquadEmpty()
	for _, p := range predictions {
		for range byID[p.PlayerID] {
			table.Rows = append(table.Rows, squadRow(p))
		}
	}
	return table, nil
}

// JoinMarket inner-joins predictions with market listings, keeps predictions
// above the value threshold and sorts them by predicted gain. now must be in
// the local time zone used for the daily cutoff.
func JoinMarket(predictions []domain.Prediction, listings []domain.Listing, now time.Time, cutoffHour int) domain.MarketTable {
	idField := resolveAlias(domain.FieldNames(listings), marketIDAliases...)
	byID := indexListings(listings, idField)

	untilCutoff := decimal.NewFromFloat(nextCutoff(now, cutoffHour).Sub(now).Hours()).RoundBank(2)

	table := domain.MarketTable{Columns: domain.MarketColumns, Rows: []domain.MarketRecommendation{}}
	for _, p := range predictions {
		if !p.PredictedMVTarget.GreaterThan(domain.MarketValueThreshold) {
			continue
		}

		for _, listing := range byID[p.PlayerID] {
			row := domain.MarketRecommendation{SquadRecommendation: squadRow(p)}
			if exp, ok := listing.Decimal("exp"); ok {
				hours := exp.Div(secondsPerHour).RoundBank(2)
				row.HoursToExpiry = decimal.NewNullDecimal(hours)
				row.ExpiringToday = hours.LessThan(untilCutoff)
			}
			table.Rows = append(table.Rows, row)
		}
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		return table.Rows[i].PredictedMVTarget.GreaterThan(table.Rows[j].PredictedMVTarget)
	})
	return table
}

// nextCutoff returns the next occurrence of hour:00 strictly after now.
func nextCutoff(now time.Time, hour int) time.Time {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !cutoff.After(now) {
		cutoff = cutoff.AddDate(0, 0, 1)
	}
	return cutoff
}

func indexListings(listings []domain.Listing, idField string) map[string][]domain.Listing {
	byID := make(map[string][]domain.Listing, len(listings))
	if idField == "" {
		return byID
	}
	for _, l := range listings {
		if id, ok := l.String(idField); ok {
			byID[id] = append(byID[id], l)
		}
	}
	return byID
}

func squadRow(p domain.Prediction) domain.SquadRecommendation {
	return domain.SquadRecommendation{
		LastName:          p.LastName,
		TeamName:          p.TeamName,
		MarketValue:       p.MarketValue,
		MVChangeYesterday: p.MarketValueChange,
		PredictedMVTarget: p.PredictedMVTarget,
		S11Prob:           p.S11Prob,
	}
}
