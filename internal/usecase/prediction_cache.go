package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/leaguebudget/internal/domain"
)

// PredictionCacheKey holds the latest prediction day. Importing predictions
// deletes it.
const PredictionCacheKey = "predictions:latest"

// DefaultPredictionCacheTTL bounds how long a stale set survives when an
// import could not invalidate the cache.
const DefaultPredictionCacheTTL = 15 * time.Minute

// CacheMetrics records cache lookups.
type CacheMetrics interface {
	CountCacheLookup(hit bool)
}

// CachedPredictionRepository is a read-through cache in front of the
// prediction store. Cache failures fall through to the store.
type CachedPredictionRepository struct {
	next    PredictionRepository
	cache   Cache
	ttl     time.Duration
	metrics CacheMetrics
	logger  zerolog.Logger
}

// NewCachedPredictionRepository wraps next with cache.
func NewCachedPredictionRepository(next PredictionRepository, cache Cache, ttl time.Duration, logger zerolog.Logger) *CachedPredictionRepository {
	if ttl <= 0 {
		ttl = DefaultPredictionCacheTTL
	}
	return &CachedPredictionRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

// WithMetrics records cache hits and misses on m.
func (r *CachedPredictionRepository) WithMetrics(m CacheMetrics) *CachedPredictionRepository {
	r.metrics = m
	return r
}

func (r *CachedPredictionRepository) countLookup(hit bool) {
	if r.metrics != nil {
		r.metrics.CountCacheLookup(hit)
	}
}

// ListLatest implements PredictionRepository.
func (r *CachedPredictionRepository) ListLatest(ctx context.Context) ([]domain.Prediction, error) {
	if cached, err := r.cache.Get(ctx, PredictionCacheKey); err == nil {
		var predictions []domain.Prediction
		if err := json.Unmarshal([]byte(cached), &predictions); err == nil {
			r.countLookup(true)
			return predictions, nil
		}
		r.logger.Debug().Str("key", PredictionCacheKey).Msg("discarding malformed cached predictions")
	}

	r.countLookup(false)

	predictions, err := r.next.ListLatest(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(predictions)
	if err != nil {
		return predictions, nil
	}
	if err := r.cache.Set(ctx, PredictionCacheKey, string(encoded), r.ttl); err != nil {
		r.logger.Warn().Err(err).Str("key", PredictionCacheKey).Msg("failed to cache predictions")
	}
	return predictions, nil
}

// Invalidate drops the cached prediction set.
func (r *CachedPredictionRepository) Invalidate(ctx context.Context) error {
	return r.cache.Delete(ctx, PredictionCacheKey)
}
