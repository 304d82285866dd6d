package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// ActivitySource fetches the league activity feed.
type ActivitySource interface {
	FetchActivities(ctx context.Context, leagueID string, since time.Time) (*domain.ActivityBatch, error)
}

// RewardResolver resolves an achievement type into the amount of times it was
// reached and the reward paid per occurrence.
type RewardResolver interface {
	ResolveAchievementReward(ctx context.Context, leagueID, achievementType string) (amount, reward decimal.Decimal, err error)
}

// ManagerDirectory provides the league roster and per-manager details.
type ManagerDirectory interface {
	ListManagers(ctx context.Context, leagueID string) ([]domain.Manager, error)
	FetchManagerInfo(ctx context.Context, leagueID, managerID string) (*domain.ManagerInfo, error)
	FetchManagerPerformance(ctx context.Context, leagueID, managerID, name string) (*domain.ManagerPerformance, error)
}

// AccountSource provides the authenticated user's own data.
type AccountSource interface {
	FetchOwnBudget(ctx context.Context, leagueID string) (decimal.Decimal, error)
	FetchOwnUsername(ctx context.Context) (string, error)
}

// RankingSource provides the league ranking, best first.
type RankingSource interface {
	FetchLeagueRanking(ctx context.Context, leagueID string) ([]domain.RankingEntry, error)
}

// MarketSource provides the squad and market listings.
type MarketSource interface {
	FetchSquad(ctx context.Context, leagueID string) ([]domain.Listing, error)
	FetchMarketListings(ctx context.Context, leagueID string) ([]domain.Listing, error)
}

// LeagueClient is the full upstream API surface.
type LeagueClient interface {
	ActivitySource
	RewardResolver
	ManagerDirectory
	AccountSource
	RankingSource
	MarketSource
}

// PredictionRepository defines data access for model predictions.
type PredictionRepository interface {
	ListLatest(ctx context.Context) ([]domain.Prediction, error)
}

// LeagueProfiles looks up per-league settings.
type LeagueProfiles interface {
	Get(leagueID string) (domain.LeagueProfile, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
