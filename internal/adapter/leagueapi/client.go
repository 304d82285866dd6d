// Package leagueapi is the HTTP client for the fantasy league API.
package leagueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/iho/leaguebudget/internal/usecase"
)

// Config configures a Client.
type Config struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	RPS       float64
	UserAgent string
}

// Metrics records upstream request outcomes.
type Metrics interface {
	ObserveUpstream(endpoint, status string, duration time.Duration)
	CountRetry(endpoint string)
}

// APIError is a non-2xx response from the league API.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("league api %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed when repeated.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// ErrUnauthorized is returned when the API rejects the token.
var ErrUnauthorized = errors.New("league api: unauthorized")

// Client implements usecase.LeagueClient against the league API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	agent   string
	limiter *rate.Limiter
	retrier usecase.Retrier
	metrics Metrics
	logger  zerolog.Logger
}

// Option configures optional Client collaborators.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRetrier retries failed requests with r.
func WithRetrier(r usecase.Retrier) Option {
	return func(c *Client) { c.retrier = r }
}

// WithMetrics records request metrics on m.
func WithMetrics(m Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a new Client.
func New(cfg Config, logger zerolog.Logger, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	agent := cfg.UserAgent
	if agent == "" {
		agent = "leaguebudget/1.0"
	}

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}

	c := &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		agent:   agent,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("component", "leagueapi").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ usecase.LeagueClient = (*Client)(nil)

// getJSON fetches path and decodes the body into out. Numbers are kept as
// json.Number so amounts survive without float rounding.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	attempt := 0
	call := func() error {
		attempt++
		if attempt > 1 && c.metrics != nil {
			c.metrics.CountRetry(endpoint)
		}
		return c.fetch(ctx, endpoint, path, query, out)
	}

	if c.retrier == nil {
		return call()
	}
	return c.retrier.Retry(ctx, call)
}

func (c *Client) fetch(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.agent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(endpoint, "transport_error", start)
		return fmt.Errorf("league api %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.observe(endpoint, strconv.Itoa(resp.StatusCode), start)
	if err != nil {
		return fmt.Errorf("league api %s: failed to read body: %w", endpoint, err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("league api request")

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, endpoint)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: truncate(string(body), 256)}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("league api %s: failed to decode response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) observe(endpoint, status string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(endpoint, status, time.Since(start))
	}
}

func leaguePath(leagueID string, parts ...string) string {
	segments := append([]string{"/v4/leagues", url.PathEscape(leagueID)}, parts...)
	return strings.Join(segments, "/")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
