package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// PerformanceJoin is the per-user point bonus and team value, keyed by user name.
type PerformanceJoin map[string]domain.ManagerPerformance

// PointBonus returns the user's point bonus, zero for unknown users.
func (j PerformanceJoin) PointBonus(user string) decimal.Decimal {
	p, ok := j[user]
	if !ok {
		return decimal.Zero
	}
	return p.PointBonus()
}

// TeamValue returns the user's team value, null for unknown users.
func (j PerformanceJoin) TeamValue(user string) decimal.NullDecimal {
	return j[user].TeamValue
}

// JoinPerformance fetches team value and total points for every manager of the
// league. Managers whose info or performance cannot be fetched are skipped
// with a warning.
func JoinPerformance(ctx context.Context, directory ManagerDirectory, leagueID string) (PerformanceJoin, []domain.Warning) {
	managers, err := directory.ListManagers(ctx, leagueID)
	if err != nil {
		return PerformanceJoin{}, []domain.Warning{{
			Stage:   domain.StageManager,
			Subject: leagueID,
			Reason:  fmt.Sprintf("list managers: %v", err),
		}}
	}

	outcomes := make([]outcome[domain.ManagerPerformance], 0, len(managers))
	for _, m := range managers {
		outcomes = append(outcomes, fetchPerformance(ctx, directory, leagueID, m))
	}

	return fold(outcomes, PerformanceJoin{}, func(acc PerformanceJoin, p domain.ManagerPerformance) PerformanceJoin {
		if _, dup := acc[p.Name]; !dup {
			acc[p.Name] = p
		}
		return acc
	})
}

func fetchPerformance(ctx context.Context, directory ManagerDirectory, leagueID string, m domain.Manager) outcome[domain.ManagerPerformance] {
	info, err := directory.FetchManagerInfo(ctx, leagueID, m.ID)
	if err != nil {
		return skip[domain.ManagerPerformance](domain.StageManager, m.Name, fmt.Errorf("manager info: %w", err))
	}

	perf, err := directory.FetchManagerPerformance(ctx, leagueID, m.ID, m.Name)
	if err != nil {
		return skip[domain.ManagerPerformance](domain.StageManager, m.Name, fmt.Errorf("manager performance: %w", err))
	}

	joined := domain.ManagerPerformance{Name: m.Name}
	if info != nil {
		joined.TeamValue = info.TeamValue
	}
	if perf != nil {
		joined.TotalPoints = perf.TotalPoints
	}
	return keep(joined)
}
