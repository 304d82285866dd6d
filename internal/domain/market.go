package domain

import "github.com/shopspring/decimal"

// MarketValueThreshold is the minimum predicted market value gain for a bid
// recommendation. Predictions at or below it are dropped.
var MarketValueThreshold = decimal.NewFromInt(5000)

// Prediction is the model output for one player on one day.
type Prediction struct {
	PlayerID          string
	LastName          string
	TeamName          string
	MarketValue       decimal.Decimal
	MarketValueChange decimal.Decimal
	PredictedMVTarget decimal.Decimal
	// Probability of starting; only available for premium accounts.
	S11Prob decimal.NullDecimal
}

// SquadRecommendation is a prediction joined with a player the user owns.
type SquadRecommendation struct {
	LastName          string              `json:"last_name"`
	TeamName          string              `json:"team_name"`
	MarketValue       decimal.Decimal     `json:"mv"`
	MVChangeYesterday decimal.Decimal     `json:"mv_change_yesterday"`
	PredictedMVTarget decimal.Decimal     `json:"predicted_mv_target"`
	S11Prob           decimal.NullDecimal `json:"s_11_prob"`
}

// MarketRecommendation is a prediction joined with a player on the transfer market.
type MarketRecommendation struct {
	SquadRecommendation

	HoursToExpiry decimal.NullDecimal `json:"hours_to_exp"`
	ExpiringToday bool                `json:"expiring_today"`
}

// SquadColumns is the column set of a squad recommendation table.
var SquadColumns = []string{
	"last_name",
	"team_name",
	"mv",
	"mv_change_yesterday",
	"predicted_mv_target",
	"s_11_prob",
}

// MarketColumns is the column set of a market recommendation table.
var MarketColumns = append(append([]string{}, SquadColumns...), "hours_to_exp", "expiring_today")

// SquadTable is the squad recommendation output. Columns are always present,
// even when Rows is empty.
type SquadTable struct {
	Columns []string              `json:"columns"`
	Rows    []SquadRecommendation `json:"rows"`
}

// MarketTable is the market recommendation output.
type MarketTable struct {
	Columns []string               `json:"columns"`
	Rows    []MarketRecommendation `json:"rows"`
}
