package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
	"github.com/iho/leaguebudget/internal/usecase"
)

// BudgetColumns is the column order of a budget table.
var BudgetColumns = []string{"User", "Budget", "Team Value", "Max Negative", "Available Budget"}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// BudgetRowResponse is one manager's row of the budget table.
type BudgetRowResponse struct {
	User            string              `json:"user"`
	Budget          decimal.Decimal     `json:"budget"`
	TeamValue       decimal.NullDecimal `json:"team_value"`
	MaxNegative     decimal.Decimal     `json:"max_negative"`
	AvailableBudget decimal.Decimal     `json:"available_budget"`
}

// WarningResponse is a degraded step of a budget pass.
type WarningResponse struct {
	Stage   string `json:"stage"`
	Subject string `json:"subject"`
	Reason  string `json:"reason"`
}

// BudgetReportResponse represents a budget pass in API responses.
type BudgetReportResponse struct {
	RunID          string              `json:"run_id"`
	LeagueID       string              `json:"league_id"`
	Columns        []string            `json:"columns"`
	Rows           []BudgetRowResponse `json:"rows"`
	Warnings       []WarningResponse   `json:"warnings"`
	Anchor         string              `json:"anchor,omitempty"`
	AnchorEstimate decimal.NullDecimal `json:"anchor_estimate"`
	Reconciled     bool                `json:"reconciled"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

// BudgetRowFromDomain converts a domain budget row to a response row.
func BudgetRowFromDomain(r domain.BudgetRow) BudgetRowResponse {
	return BudgetRowResponse{
		User:            r.User,
		Budget:          r.Budget,
		TeamValue:       r.TeamValue,
		MaxNegative:     r.MaxNegative,
		AvailableBudget: r.AvailableBudget,
	}
}

// BudgetReportFromUseCase converts a budget report to a response.
func BudgetReportFromUseCase(r *usecase.BudgetReport) *BudgetReportResponse {
	rows := make([]BudgetRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = BudgetRowFromDomain(row)
	}

	warnings := make([]WarningResponse, len(r.Warnings))
	for i, w := range r.Warnings {
		warnings[i] = WarningResponse{Stage: w.Stage, Subject: w.Subject, Reason: w.Reason}
	}

	return &BudgetReportResponse{
		RunID:          r.RunID,
		LeagueID:       r.LeagueID,
		Columns:        BudgetColumns,
		Rows:           rows,
		Warnings:       warnings,
		Anchor:         r.Anchor,
		AnchorEstimate: r.AnchorEstimate,
		Reconciled:     r.Reconciled,
		GeneratedAt:    r.GeneratedAt,
	}
}
