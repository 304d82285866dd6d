package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Budget metrics
	BudgetRuns     *prometheus.CounterVec
	BudgetDuration prometheus.Histogram
	BudgetWarnings *prometheus.CounterVec

	// Recommendation metrics
	Recommendations *prometheus.CounterVec

	// Upstream API metrics
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	UpstreamRetries  *prometheus.CounterVec

	// Prediction cache metrics
	PredictionCacheLookups *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers all metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Budget metrics
		BudgetRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaguebudget_budget_runs_total",
				Help: "Total budget reconciliation passes by outcome",
			},
			[]string{"outcome"},
		),
		BudgetDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leaguebudget_budget_run_duration_seconds",
			Help:    "Duration of budget reconciliation passes",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}),
		BudgetWarnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaguebudget_budget_warnings_total",
				Help: "Total degraded steps in budget passes by stage",
			},
			[]string{"stage"},
		),

		// Recommendation metrics
		Recommendations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaguebudget_recommendations_total",
				Help: "Total recommendation rows served by kind",
			},
			[]string{"kind"},
		),

		// Upstream API metrics
		UpstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaguebudget_upstream_requests_total",
				Help: "Total requests to the league API",
			},
			[]string{"endpoint", "status"},
		),
		UpstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "leaguebudget_upstream_duration_seconds",
				Help:    "League API request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		UpstreamRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaguebudget_upstream_retries_total",
				Help: "Total retried league API requests",
			},
			[]string{"endpoint"},
		),

		// Prediction cache metrics
		PredictionCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaguebudget_prediction_cache_lookups_total",
				Help: "Prediction cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveBudgetRun records one budget pass.
func (m *Metrics) ObserveBudgetRun(outcome string, duration time.Duration) {
	m.BudgetRuns.WithLabelValues(outcome).Inc()
	m.BudgetDuration.Observe(duration.Seconds())
}

// CountWarning records one degraded step.
func (m *Metrics) CountWarning(stage string) {
	m.BudgetWarnings.WithLabelValues(stage).Inc()
}

// CountRecommendations records served recommendation rows.
func (m *Metrics) CountRecommendations(kind string, rows int) {
	m.Recommendations.WithLabelValues(kind).Add(float64(rows))
}

// ObserveUpstream records one league API request.
func (m *Metrics) ObserveUpstream(endpoint, status string, duration time.Duration) {
	m.UpstreamRequests.WithLabelValues(endpoint, status).Inc()
	m.UpstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// CountRetry records a retried league API request.
func (m *Metrics) CountRetry(endpoint string) {
	m.UpstreamRetries.WithLabelValues(endpoint).Inc()
}

// CountCacheLookup records a prediction cache hit or miss.
func (m *Metrics) CountCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.PredictionCacheLookups.WithLabelValues(result).Inc()
}
