package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeagueProfile holds the per-league settings the budget pass starts from.
type LeagueProfile struct {
	ID          string
	Name        string
	StartBudget decimal.Decimal
	SeasonStart time.Time
}
