package domain

import "github.com/shopspring/decimal"

// Manager is a league member as listed by the league roster.
type Manager struct {
	Name string
	ID   string
}

// ManagerInfo is the subset of the manager dashboard the budget pass needs.
type ManagerInfo struct {
	TeamValue decimal.NullDecimal
}

// ManagerPerformance holds the scoring totals of one manager.
type ManagerPerformance struct {
	Name        string
	TotalPoints decimal.NullDecimal
	TeamValue   decimal.NullDecimal
}

// PointBonusFactor is the cash paid out per scored point.
var PointBonusFactor = decimal.NewFromInt(1000)

// PointBonus returns the points-based bonus. Missing points count as zero.
func (p ManagerPerformance) PointBonus() decimal.Decimal {
	if !p.TotalPoints.Valid {
		return decimal.Zero
	}
	return p.TotalPoints.Decimal.Mul(PointBonusFactor)
}

// RankingEntry is one row of the league ranking. Slices of RankingEntry are
// ordered by rank, index 0 holding the most points.
type RankingEntry struct {
	Name        string
	TotalPoints decimal.Decimal
}
