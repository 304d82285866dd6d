package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/leaguebudget/internal/domain"
	"github.com/iho/leaguebudget/internal/usecase"
	"github.com/iho/leaguebudget/internal/usecase/mocks"
)

type memoryCache struct {
	values map[string]string
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.values, key)
	return nil
}

type lookupCounter struct {
	hits, misses int
}

func (c *lookupCounter) CountCacheLookup(hit bool) {
	if hit {
		c.hits++
		return
	}
	c.misses++
}

func samplePredictions() []domain.Prediction {
	return []domain.Prediction{
		{
			PlayerID:          "p1",
			LastName:          "Kane",
			TeamName:          "Bayern",
			MarketValue:       decimal.NewFromInt(120000000),
			MarketValueChange: decimal.NewFromInt(50000),
			PredictedMVTarget: decimal.NewFromInt(80000),
			S11Prob:           decimal.NewNullDecimal(decimal.RequireFromString("0.93")),
		},
		{PlayerID: "p2", LastName: "Olise", PredictedMVTarget: decimal.NewFromInt(-3000)},
	}
}

func TestCachedPredictionRepository_CachesLatestDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPredictionRepository(ctrl)
	store.EXPECT().ListLatest(gomock.Any()).Return(samplePredictions(), nil).Times(1)

	counter := &lookupCounter{}
	repo := usecase.NewCachedPredictionRepository(store, &memoryCache{values: map[string]string{}}, time.Hour, zerolog.Nop()).
		WithMetrics(counter)

	for i := 0; i < 3; i++ {
		got, err := repo.ListLatest(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].PredictedMVTarget.Equal(decimal.NewFromInt(80000)))
		assert.True(t, got[0].S11Prob.Valid)
		assert.False(t, got[1].S11Prob.Valid)
	}

	assert.Equal(t, 2, counter.hits)
	assert.Equal(t, 1, counter.misses)
}

func TestCachedPredictionRepository_InvalidateReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPredictionRepository(ctrl)
	gomock.InOrder(
		store.EXPECT().ListLatest(gomock.Any()).Return(samplePredictions()[:1], nil),
		store.EXPECT().ListLatest(gomock.Any()).Return(samplePredictions(), nil),
	)

	repo := usecase.NewCachedPredictionRepository(store, &memoryCache{values: map[string]string{}}, 0, zerolog.Nop())

	first, err := repo.ListLatest(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Invalidate(context.Background()))
	second, err := repo.ListLatest(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestCachedPredictionRepository_StoreErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPredictionRepository(ctrl)
	store.EXPECT().ListLatest(gomock.Any()).Return(nil, errors.New("connection refused"))

	cache := &memoryCache{values: map[string]string{usecase.PredictionCacheKey: "garbage"}}
	repo := usecase.NewCachedPredictionRepository(store, cache, time.Minute, zerolog.Nop())

	_, err := repo.ListLatest(context.Background())
	require.Error(t, err)
	assert.Equal(t, "garbage", cache.values[usecase.PredictionCacheKey])
}
