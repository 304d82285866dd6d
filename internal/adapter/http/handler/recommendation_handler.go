package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/leaguebudget/internal/domain"
)

// RecommendationService defines the behavior needed by RecommendationHandler.
type RecommendationService interface {
	Market(ctx context.Context, leagueID string) (*domain.MarketTable, error)
	Squad(ctx context.Context, leagueID string) (*domain.SquadTable, error)
}

// RecommendationHandler handles market and squad recommendation requests.
type RecommendationHandler struct {
	recommendationUC RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationUC RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationUC: recommendationUC}
}

// Market returns bid recommendations for players on the market.
func (h *RecommendationHandler) Market(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if leagueID == "" {
		writeError(w, http.StatusBadRequest, "missing league ID", "")
		return
	}

	table, err := h.recommendationUC.Market(r.Context(), leagueID)
	if err != nil {
		writeDomainError(w, "failed to build market recommendations", err)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// Squad returns predictions for the players the user owns.
func (h *RecommendationHandler) Squad(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if leagueID == "" {
		writeError(w, http.StatusBadRequest, "missing league ID", "")
		return
	}

	table, err := h.recommendationUC.Squad(r.Context(), leagueID)
	if err != nil {
		writeDomainError(w, "failed to build squad recommendations", err)
		return
	}

	writeJSON(w, http.StatusOK, table)
}
