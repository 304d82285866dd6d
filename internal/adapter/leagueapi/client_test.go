package leagueapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/leaguebudget/internal/domain"
)

type recordingMetrics struct {
	mu       sync.Mutex
	statuses map[string][]string
	retries  map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{statuses: map[string][]string{}, retries: map[string]int{}}
}

func (m *recordingMetrics) ObserveUpstream(endpoint, status string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[endpoint] = append(m.statuses[endpoint], status)
}

func (m *recordingMetrics) CountRetry(endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retries[endpoint]++
}

func newTestClient(t *testing.T, mux *http.ServeMux, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Token: "secret"}, zerolog.Nop(), opts...)
}

func fastRetrier(maxRetries uint64) *Retrier {
	return NewRetrier(RetrierConfig{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	}, zerolog.Nop())
}

func TestFetchActivities_PaginatesAndClassifies(t *testing.T) {
	since := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	var firstPage string
	for i := 0; i < FeedPageSize; i++ {
		if i > 0 {
			firstPage += ","
		}
		firstPage += fmt.Sprintf(`{"t":15,"dt":"2025-09-01T10:00:00Z","data":{"byr":"A","slr":"B","trp":%d}}`, 1000+i)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/42/activitiesFeed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, strconv.Itoa(FeedPageSize), r.URL.Query().Get("max"))

		switch r.URL.Query().Get("start") {
		case "0":
			fmt.Fprintf(w, `{"af":[%s]}`, firstPage)
		case strconv.Itoa(FeedPageSize):
			fmt.Fprint(w, `{"af":[
				{"t":22,"dt":"2025-08-20T08:00:00Z","data":{"bn":50000}},
				{"t":22,"dt":"2025-08-19T08:00:00Z","data":{}},
				{"t":26,"dt":"2025-08-18T08:00:00Z","data":{"t":7}},
				{"t":3,"dt":"2025-08-17T08:00:00Z","data":{"x":1}},
				{"t":15,"dt":"2025-07-30T08:00:00Z","data":{"byr":"old","trp":1}}
			]}`)
		default:
			t.Fatalf("unexpected page %s", r.URL.Query().Get("start"))
		}
	})

	client := newTestClient(t, mux)
	batch, err := client.FetchActivities(context.Background(), "42", since)
	require.NoError(t, err)

	require.Len(t, batch.Activities, FeedPageSize)
	buyer, _ := batch.Activities[0].String("byr")
	assert.Equal(t, "A", buyer)
	price, _ := batch.Activities[0].Decimal("trp")
	assert.True(t, price.Equal(decimal.NewFromInt(1000)))

	require.Len(t, batch.LoginBonuses, 2)
	assert.True(t, batch.LoginBonuses[0].Amount.Valid)
	assert.True(t, batch.LoginBonuses[0].Amount.Decimal.Equal(decimal.NewFromInt(50000)))
	assert.False(t, batch.LoginBonuses[1].Amount.Valid)

	require.Len(t, batch.AchievementBonuses, 1)
	assert.Equal(t, "7", batch.AchievementBonuses[0].AchievementType)
}

func TestFetchActivities_StopsOnShortPage(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/1/activitiesFeed", func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"af":[{"t":15,"data":{"usr":"A","trp":"10"}}]}`)
	})

	batch, err := newTestClient(t, mux).FetchActivities(context.Background(), "1", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, batch.Activities, 1)
}

func TestGetJSON_RetriesTransientFailures(t *testing.T) {
	attempts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/1/me/budget", func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"b":1234567.5}`)
	})

	metrics := newRecordingMetrics()
	client := newTestClient(t, mux, WithRetrier(fastRetrier(3)), WithMetrics(metrics))

	budget, err := client.FetchOwnBudget(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, budget.Equal(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 2, metrics.retries["budget"])
	assert.Equal(t, []string{"503", "503", "200"}, metrics.statuses["budget"])
}

func TestGetJSON_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/1/squad", func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "no such league", http.StatusNotFound)
	})

	client := newTestClient(t, mux, WithRetrier(fastRetrier(3)))
	_, err := client.FetchSquad(context.Background(), "1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, apiErr.Retryable())
	assert.Equal(t, 1, attempts)
}

func TestGetJSON_GivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/1/market", func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	})

	client := newTestClient(t, mux, WithRetrier(fastRetrier(2)))
	_, err := client.FetchMarketListings(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestGetJSON_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/user/settings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := newTestClient(t, mux).FetchOwnUsername(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRankingAndManagers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/9/ranking", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"us":[
			{"i":"22","n":"B","sp":800,"spl":2},
			{"i":"11","n":"A","sp":1000,"spl":1},
			{"i":33,"n":"C","sp":500,"spl":3}
		]}`)
	})
	client := newTestClient(t, mux)

	ranking, err := client.FetchLeagueRanking(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	assert.Equal(t, "A", ranking[0].Name)
	assert.True(t, ranking[0].TotalPoints.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "C", ranking[2].Name)

	managers, err := client.ListManagers(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, []domain.Manager{{Name: "A", ID: "11"}, {Name: "B", ID: "22"}, {Name: "C", ID: "33"}}, managers)
}

func TestRankingPutsUnplacedUsersLast(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/9/ranking", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"us":[
			{"i":"1","n":"X","sp":10},
			{"i":"2","n":"C","sp":500,"spl":3},
			{"i":"3","n":"Y","sp":20},
			{"i":"4","n":"A","sp":1000,"spl":1},
			{"i":"5","n":"B","sp":800,"spl":2}
		]}`)
	})
	client := newTestClient(t, mux)

	ranking, err := client.FetchLeagueRanking(context.Background(), "9")
	require.NoError(t, err)

	names := make([]string, 0, len(ranking))
	for _, e := range ranking {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "X", "Y"}, names)
}

func TestPlaceLess(t *testing.T) {
	assert.True(t, placeLess("1", "2"))
	assert.False(t, placeLess("2", "1"))
	assert.True(t, placeLess("5", ""))
	assert.False(t, placeLess("", "5"))
	assert.False(t, placeLess("", ""))
}

func TestManagerDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/9/managers/11/dashboard", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tv":98000000}`)
	})
	mux.HandleFunc("/v4/leagues/9/managers/11/performance", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"it":[{"sid":"2024","tp":3100},{"sid":"2025","tp":812}]}`)
	})
	mux.HandleFunc("/v4/leagues/9/managers/22/dashboard", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	mux.HandleFunc("/v4/leagues/9/managers/22/performance", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"it":[]}`)
	})
	client := newTestClient(t, mux)
	ctx := context.Background()

	info, err := client.FetchManagerInfo(ctx, "9", "11")
	require.NoError(t, err)
	assert.True(t, info.TeamValue.Valid)
	assert.True(t, info.TeamValue.Decimal.Equal(decimal.NewFromInt(98_000_000)))

	perf, err := client.FetchManagerPerformance(ctx, "9", "11", "A")
	require.NoError(t, err)
	assert.Equal(t, "A", perf.Name)
	assert.True(t, perf.TotalPoints.Decimal.Equal(decimal.NewFromInt(812)))

	info, err = client.FetchManagerInfo(ctx, "9", "22")
	require.NoError(t, err)
	assert.False(t, info.TeamValue.Valid)

	perf, err = client.FetchManagerPerformance(ctx, "9", "22", "B")
	require.NoError(t, err)
	assert.False(t, perf.TotalPoints.Valid)
	assert.True(t, perf.PointBonus().IsZero())
}

func TestAccountEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/user/settings", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"u":{"unm":"me","em":"me@example.com"}}`)
	})
	mux.HandleFunc("/v4/leagues/9/me/budget", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"pbas":0}`)
	})
	client := newTestClient(t, mux)

	name, err := client.FetchOwnUsername(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me", name)

	_, err = client.FetchOwnBudget(context.Background(), "9")
	assert.Error(t, err)
}

func TestResolveAchievementReward(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/9/user/achievements/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ac":3,"er":25000}`)
	})
	mux.HandleFunc("/v4/leagues/9/user/achievements/8", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ac":3}`)
	})
	client := newTestClient(t, mux)

	amount, reward, err := client.ResolveAchievementReward(context.Background(), "9", "7")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(3)))
	assert.True(t, reward.Equal(decimal.NewFromInt(25000)))

	_, _, err = client.ResolveAchievementReward(context.Background(), "9", "8")
	assert.Error(t, err)
}

func TestMarketAndSquad(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/leagues/9/market", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"it":[{"i":"p1","exp":7200,"prc":1000000},{"id":"p2","exp":60}]}`)
	})
	mux.HandleFunc("/v4/leagues/9/squad", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	client := newTestClient(t, mux)

	listings, err := client.FetchMarketListings(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, listings, 2)
	id, _ := listings[0].String("id")
	assert.Equal(t, "p1", id)
	exp, _ := listings[0].Decimal("exp")
	assert.True(t, exp.Equal(decimal.NewFromInt(7200)))
	id, _ = listings[1].String("id")
	assert.Equal(t, "p2", id)

	squad, err := client.FetchSquad(context.Background(), "9")
	require.NoError(t, err)
	assert.Empty(t, squad)
}
