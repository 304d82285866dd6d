package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/leaguebudget/internal/adapter/http/dto"
	"github.com/iho/leaguebudget/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message, Message: details})
}

// writeDomainError reports err under message with the status it maps to.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	writeError(w, mapDomainError(err), message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes. Schema errors
// describe upstream data and map to 502.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrLeagueNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidLeagueID):
		return http.StatusBadRequest
	case domain.IsSchemaError(err):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return 499
	default:
		return http.StatusInternalServerError
	}
}
