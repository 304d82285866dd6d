package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/iho/leaguebudget/internal/adapter/http/dto"
	"github.com/iho/leaguebudget/internal/domain"
)

func jsonIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// getJSON calls the API and decodes a successful response into out.
func getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := strings.TrimRight(baseURL, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (status %d): %s", apiErr.Error, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func leaguePath(leagueID string, parts ...string) string {
	return "/api/v1/leagues/" + url.PathEscape(leagueID) + "/" + strings.Join(parts, "/")
}

func fetchBudgets(ctx context.Context, leagueID, since, startBudget string) (*dto.BudgetReportResponse, error) {
	query := url.Values{}
	if since != "" {
		query.Set("since", since)
	}
	if startBudget != "" {
		query.Set("start_budget", startBudget)
	}

	var report dto.BudgetReportResponse
	if err := getJSON(ctx, leaguePath(leagueID, "budgets"), query, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func fetchMarket(ctx context.Context, leagueID string) (*domain.MarketTable, error) {
	var table domain.MarketTable
	if err := getJSON(ctx, leaguePath(leagueID, "recommendations", "market"), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func fetchSquad(ctx context.Context, leagueID string) (*domain.SquadTable, error) {
	var table domain.SquadTable
	if err := getJSON(ctx, leaguePath(leagueID, "recommendations", "squad"), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
