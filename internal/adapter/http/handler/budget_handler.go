package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/leaguebudget/internal/adapter/http/dto"
	"github.com/iho/leaguebudget/internal/usecase"
)

// BudgetService defines the behavior needed by BudgetHandler.
type BudgetService interface {
	CalculateForLeague(ctx context.Context, leagueID string) (*usecase.BudgetReport, error)
	CalculateBudgets(ctx context.Context, input usecase.CalculateBudgetsInput) (*usecase.BudgetReport, error)
}

// BudgetHandler handles budget requests.
type BudgetHandler struct {
	budgetUC BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetUC BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetUC: budgetUC}
}

// Get runs a budget pass for the league in the URL. The league profile can be
// overridden with the since and start_budget query parameters.
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if leagueID == "" {
		writeError(w, http.StatusBadRequest, "missing league ID", "")
		return
	}

	query, err := dto.ParseBudgetQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	var report *usecase.BudgetReport
	if query.HasOverride() {
		report, err = h.budgetUC.CalculateBudgets(r.Context(), query.ToUseCaseInput(leagueID))
	} else {
		report, err = h.budgetUC.CalculateForLeague(r.Context(), leagueID)
	}
	if err != nil {
		writeDomainError(w, "failed to calculate budgets", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BudgetReportFromUseCase(report))
}
