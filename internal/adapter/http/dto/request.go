package dto

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/usecase"
)

// DateLayout is the layout of the since query parameter.
const DateLayout = "2006-01-02"

// ErrPartialOverride is returned when only one of since and start_budget is given.
var ErrPartialOverride = errors.New("since and start_budget must be given together")

// BudgetQuery holds optional overrides of the league profile.
type BudgetQuery struct {
	Since       *time.Time
	StartBudget *decimal.Decimal
}

// ParseBudgetQuery reads since (YYYY-MM-DD) and start_budget from q.
func ParseBudgetQuery(q url.Values) (BudgetQuery, error) {
	var out BudgetQuery

	if v := q.Get("since"); v != "" {
		since, err := time.Parse(DateLayout, v)
		if err != nil {
			return BudgetQuery{}, fmt.Errorf("invalid since %q: %w", v, err)
		}
		out.Since = &since
	}

	if v := q.Get("start_budget"); v != "" {
		budget, err := decimal.NewFromString(v)
		if err != nil {
			return BudgetQuery{}, fmt.Errorf("invalid start_budget %q: %w", v, err)
		}
		out.StartBudget = &budget
	}

	if (out.Since == nil) != (out.StartBudget == nil) {
		return BudgetQuery{}, ErrPartialOverride
	}
	return out, nil
}

// HasOverride reports whether the profile is overridden.
func (q BudgetQuery) HasOverride() bool {
	return q.Since != nil && q.StartBudget != nil
}

// ToUseCaseInput converts to use case input.
func (q BudgetQuery) ToUseCaseInput(leagueID string) usecase.CalculateBudgetsInput {
	in := usecase.CalculateBudgetsInput{LeagueID: leagueID}
	if q.Since != nil {
		in.Since = *q.Since
	}
	if q.StartBudget != nil {
		in.StartBudget = *q.StartBudget
	}
	return in
}
