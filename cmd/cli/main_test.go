package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/adapter/http/dto"
	"github.com/iho/leaguebudget/internal/domain"
)

func init() {
	color.NoColor = true
}

func withServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	orig := baseURL
	baseURL = srv.URL
	t.Cleanup(func() { baseURL = orig })
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, struct {
		A int `json:"a"`
	}{A: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "{\n  \"a\": 1\n}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected json output:\n%s", buf.String())
	}
}

func TestBudgetsCommand(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/leagues/42/budgets" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("since") != "2025-08-01" || r.URL.Query().Get("start_budget") != "1000" {
			t.Fatalf("expected overrides to be forwarded, got %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"run_id":"r1","league_id":"42","columns":["User","Budget","Team Value","Max Negative","Available Budget"],
			"rows":[
				{"user":"B","budget":"1350","team_value":null,"max_negative":"-445.5","available_budget":"1795.5"},
				{"user":"A","budget":"-5000","team_value":"1000","max_negative":"1320","available_budget":"-6320"}
			],
			"warnings":[{"stage":"ranking","subject":"42","reason":"upstream down"}],
			"anchor":"B","anchor_estimate":"1200","reconciled":true}`)
	})

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"budgets", "42", "--since", "2025-08-01", "--start-budget", "1000"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Available Budget", "1796", "-6320", "synced", "warning [ranking]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if strings.Index(got, "1350") > strings.Index(got, "-5000") {
		t.Fatalf("expected server row order to be kept, got:\n%s", got)
	}
}

func TestGetJSONReportsAPIErrors(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"failed to calculate budgets","message":"league not found: 9"}`)
	})

	_, err := fetchBudgets(context.Background(), "9", "", "")
	if err == nil || !strings.Contains(err.Error(), "league not found") {
		t.Fatalf("expected API error to surface, got %v", err)
	}
}

func TestRenderMarketAndSquad(t *testing.T) {
	var buf bytes.Buffer
	renderMarket(&buf, &domain.MarketTable{
		Columns: domain.MarketColumns,
		Rows: []domain.MarketRecommendation{{
			SquadRecommendation: domain.SquadRecommendation{
				LastName:          "Wirtz",
				TeamName:          "Leverkusen",
				MarketValue:       decimal.NewFromInt(90_000_000),
				PredictedMVTarget: decimal.NewFromInt(250_000),
			},
			HoursToExpiry: decimal.NewNullDecimal(decimal.RequireFromString("3.5")),
			ExpiringToday: true,
		}},
	})
	if !strings.Contains(buf.String(), "Wirtz") || !strings.Contains(buf.String(), "3.50") {
		t.Fatalf("unexpected market output:\n%s", buf.String())
	}

	buf.Reset()
	renderSquad(&buf, &domain.SquadTable{Columns: domain.SquadColumns, Rows: []domain.SquadRecommendation{}})
	if !strings.Contains(buf.String(), "No squad players found.") {
		t.Fatalf("unexpected squad output:\n%s", buf.String())
	}
}

func TestReadPredictions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predictions.json")
	content := `[
		{"player_id":"p1","last_name":"Kane","team_name":"Bayern","mv":"120000000","mv_change_1d":"50000","predicted_mv_target":"80000","prob":"0.93"},
		{"player_id":"p2","last_name":"Olise","team_name":"Bayern","mv":"60000000","mv_change_1d":"-1000","predicted_mv_target":"-3000","prob":null}
	]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	predictions, err := readPredictions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}
	if !predictions[0].S11Prob.Valid || predictions[1].S11Prob.Valid {
		t.Fatalf("unexpected probabilities %+v", predictions)
	}

	if err := os.WriteFile(path, []byte(`[{"last_name":"x"}]`), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := readPredictions(path); err == nil {
		t.Fatalf("expected error for missing player_id")
	}
}

func TestPredictionDateUsesConfiguredZone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	// Already the next day in Berlin.
	now := time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC)

	got, err := predictionDate("", now, berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if !got.UTC().Truncate(24 * time.Hour).Equal(want) {
		t.Fatalf("stored day drifted to %s", got.UTC().Truncate(24*time.Hour))
	}

	got, err = predictionDate("", now, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 17 {
		t.Fatalf("expected the 17th in UTC, got %s", got)
	}

	got, err = predictionDate("2026-09-01", now, berlin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("explicit date not honoured: %s", got)
	}

	if _, err := predictionDate("18.10.2026", now, berlin); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestColoredTableStaysAligned(t *testing.T) {
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })

	var buf bytes.Buffer
	renderBudgets(&buf, &dto.BudgetReportResponse{
		LeagueID: "42",
		Columns:  dto.BudgetColumns,
		Rows: []dto.BudgetRowResponse{
			{User: "Müller", Budget: decimal.NewFromInt(1350), MaxNegative: decimal.NewFromInt(-445), AvailableBudget: decimal.NewFromInt(1795)},
			{User: "A", Budget: decimal.NewFromInt(-5000), MaxNegative: decimal.NewFromInt(1320), AvailableBudget: decimal.NewFromInt(-6320)},
		},
	})

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected colored output, got %q", buf.String())
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")[1:]
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", lines)
	}
	width := len([]rune(ansi.ReplaceAllString(lines[0], "")))
	for _, line := range lines[1:] {
		if got := len([]rune(ansi.ReplaceAllString(line, ""))); got != width {
			t.Fatalf("expected visible width %d, got %d in %q", width, got, line)
		}
	}
}
