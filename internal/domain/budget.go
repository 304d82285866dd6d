package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MaxNegativeRatio is the share of total assets a manager may go into debt.
var MaxNegativeRatio = decimal.RequireFromString("-0.33")

// BudgetRow is one line of the budget table.
type BudgetRow struct {
	User            string
	Budget          decimal.Decimal
	TeamValue       decimal.NullDecimal
	MaxNegative     decimal.Decimal
	AvailableBudget decimal.Decimal
}

// MaxNegative returns the most negative budget allowed for the given assets:
// 33% of team value plus cash, sign-flipped. A missing team value counts as zero.
func MaxNegative(teamValue decimal.NullDecimal, budget decimal.Decimal) decimal.Decimal {
	tv := decimal.Zero
	if teamValue.Valid {
		tv = teamValue.Decimal
	}
	return tv.Add(budget).Mul(MaxNegativeRatio)
}

// AvailableBudget returns the headroom between budget and the negative floor.
func AvailableBudget(maxNegative, budget decimal.Decimal) decimal.Decimal {
	return maxNegative.Sub(budget).Neg()
}

// ApplyAvailability fills MaxNegative and AvailableBudget from Budget and TeamValue.
func (r *BudgetRow) ApplyAvailability() {
	r.MaxNegative = MaxNegative(r.TeamValue, r.Budget)
	r.AvailableBudget = AvailableBudget(r.MaxNegative, r.Budget)
}

// SortByAvailable orders rows by available budget, highest first.
// Equal rows keep a stable order by user name.
func SortByAvailable(rows []BudgetRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].AvailableBudget.Cmp(rows[j].AvailableBudget); c != 0 {
			return c > 0
		}
		return rows[i].User < rows[j].User
	})
}
