package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// outcome is the result of one per-item operation: either a value or a
// warning explaining why the item was skipped.
type outcome[T any] struct {
	value   T
	skipped *domain.Warning
}

func keep[T any](v T) outcome[T] {
	return outcome[T]{value: v}
}

func skip[T any](stage, subject string, err error) outcome[T] {
	return outcome[T]{skipped: &domain.Warning{Stage: stage, Subject: subject, Reason: err.Error()}}
}

// fold reduces the successful outcomes with step and collects the warnings.
func fold[T, A any](outcomes []outcome[T], init A, step func(A, T) A) (A, []domain.Warning) {
	acc := init
	var warnings []domain.Warning
	for _, o := range outcomes {
		if o.skipped != nil {
			warnings = append(warnings, *o.skipped)
			continue
		}
		acc = step(acc, o.value)
	}
	return acc, warnings
}

func sumDecimal(acc, v decimal.Decimal) decimal.Decimal {
	return acc.Add(v)
}

// SumLoginBonus adds up all login bonus amounts. Events without an amount count as zero.
func SumLoginBonus(events []domain.BonusEvent) decimal.Decimal {
	total := decimal.Zero
	for _, ev := range events {
		if ev.Amount.Valid {
			total = total.Add(ev.Amount.Decimal)
		}
	}
	return total
}

// SumAchievementBonus resolves every achievement event into amount*reward and
// adds them up. Events without a type are ignored; failed lookups are skipped
// and reported as warnings. Each type is resolved once per call: the amount
// grows over the season, so results are never kept beyond a single pass.
func SumAchievementBonus(
	ctx context.Context,
	resolver RewardResolver,
	leagueID string,
	events []domain.BonusEvent,
) (decimal.Decimal, []domain.Warning) {
	resolved := make(map[string]outcome[decimal.Decimal])
	outcomes := make([]outcome[decimal.Decimal], 0, len(events))
	for _, ev := range events {
		if ev.AchievementType == "" {
			continue
		}

		o, ok := resolved[ev.AchievementType]
		if !ok {
			amount, reward, err := resolver.ResolveAchievementReward(ctx, leagueID, ev.AchievementType)
			if err != nil {
				o = skip[decimal.Decimal](domain.StageAchievement, ev.AchievementType, err)
			} else {
				o = keep(amount.Mul(reward))
			}
			resolved[ev.AchievementType] = o
		}
		outcomes = append(outcomes, o)
	}

	return fold(outcomes, decimal.Zero, sumDecimal)
}
