package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// Allocation strategy names.
const (
	AllocateByPointsName = "points"
	AllocateByRankName   = "rank"
)

var rankStep = decimal.RequireFromString("0.1")

// Allocator estimates a user's share of an achievement bonus that is only known
// for the anchor user.
type Allocator func(ranking []domain.RankingEntry, anchor, user string, aggregate decimal.Decimal) decimal.Decimal

// AllocatorByName returns the strategy registered under name.
func AllocatorByName(name string) (Allocator, error) {
	switch name {
	case AllocateByPointsName, "":
		return AllocateByPoints, nil
	case AllocateByRankName:
		return AllocateByRank, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAllocator, name)
	}
}

// rankOf returns the 1-based rank and the entry of name, or 0 when absent.
func rankOf(ranking []domain.RankingEntry, name string) (int, domain.RankingEntry) {
	for i, e := range ranking {
		if e.Name == name {
			return i + 1, e
		}
	}
	return 0, domain.RankingEntry{}
}

// AllocateByPoints scales the anchor's bonus by the user's points relative to
// the anchor's points. A zero-point anchor scales by 1.
func AllocateByPoints(ranking []domain.RankingEntry, anchor, user string, aggregate decimal.Decimal) decimal.Decimal {
	anchorRank, anchorEntry := rankOf(ranking, anchor)
	if anchorRank == 0 {
		return decimal.Zero
	}
	if user == anchor {
		return aggregate
	}

	userRank, userEntry := rankOf(ranking, user)
	if userRank == 0 {
		return decimal.Zero
	}

	if anchorEntry.TotalPoints.IsZero() {
		return aggregate
	}
	return aggregate.Mul(userEntry.TotalPoints).Div(anchorEntry.TotalPoints)
}

// AllocateByRank scales the anchor's bonus by 10% per rank of difference.
// The scale is not clamped: users far below the anchor get a negative share.
func AllocateByRank(ranking []domain.RankingEntry, anchor, user string, aggregate decimal.Decimal) decimal.Decimal {
	anchorRank, _ := rankOf(ranking, anchor)
	if anchorRank == 0 {
		return decimal.Zero
	}
	if user == anchor {
		return aggregate
	}

	userRank, _ := rankOf(ranking, user)
	if userRank == 0 {
		return decimal.Zero
	}

	scale := decimal.NewFromInt(1).Add(decimal.NewFromInt(int64(anchorRank - userRank)).Mul(rankStep))
	return aggregate.Mul(scale)
}
