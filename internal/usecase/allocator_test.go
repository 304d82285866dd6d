package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

func ranking(entries ...any) []domain.RankingEntry {
	out := make([]domain.RankingEntry, 0, len(entries)/2)
	for i := 0; i+1 < len(entries); i += 2 {
		out = append(out, domain.RankingEntry{
			Name:        entries[i].(string),
			TotalPoints: decimal.NewFromInt(int64(entries[i+1].(int))),
		})
	}
	return out
}

func TestAllocateByPoints(t *testing.T) {
	aggregate := decimal.NewFromInt(100000)
	table := ranking("top", 2000, "anchor", 1000, "low", 500)

	tests := []struct {
		name    string
		ranking []domain.RankingEntry
		anchor  string
		user    string
		want    decimal.Decimal
	}{
		{"anchor gets aggregate", table, "anchor", "anchor", aggregate},
		{"scaled up by points", table, "anchor", "top", decimal.NewFromInt(200000)},
		{"scaled down by points", table, "anchor", "low", decimal.NewFromInt(50000)},
		{"user missing from ranking", table, "anchor", "ghost", decimal.Zero},
		{"anchor missing from ranking", table, "nobody", "top", decimal.Zero},
		{"anchor missing, user is anchor", table, "nobody", "nobody", decimal.Zero},
		{"empty ranking", nil, "anchor", "top", decimal.Zero},
		{"empty ranking, user is anchor", nil, "anchor", "anchor", decimal.Zero},
		{"zero point anchor scales by one", ranking("top", 700, "anchor", 0), "anchor", "top", aggregate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateByPoints(tt.ranking, tt.anchor, tt.user, aggregate)
			if !got.Equal(tt.want) {
				t.Fatalf("AllocateByPoints(%s) = %s, want %s", tt.user, got, tt.want)
			}
		})
	}
}

func TestAllocateByPoints_AnchorIgnoresPoints(t *testing.T) {
	aggregate := decimal.RequireFromString("12345.67")
	for _, table := range [][]domain.RankingEntry{
		ranking("anchor", 0),
		ranking("x", 10, "anchor", 99999),
		ranking("anchor", 1, "y", 1000000),
	} {
		if got := AllocateByPoints(table, "anchor", "anchor", aggregate); !got.Equal(aggregate) {
			t.Fatalf("expected anchor share %s, got %s", aggregate, got)
		}
	}
}

func TestAllocateByRank(t *testing.T) {
	aggregate := decimal.NewFromInt(1000)
	table := ranking("r1", 900, "r2", 800, "anchor", 700, "r4", 600, "r5", 500)

	tests := []struct {
		user string
		want decimal.Decimal
	}{
		{"anchor", decimal.NewFromInt(1000)},
		{"r1", decimal.NewFromInt(1200)},
		{"r2", decimal.NewFromInt(1100)},
		{"r4", decimal.NewFromInt(900)},
		{"r5", decimal.NewFromInt(800)},
		{"ghost", decimal.Zero},
	}

	for _, tt := range tests {
		if got := AllocateByRank(table, "anchor", tt.user, aggregate); !got.Equal(tt.want) {
			t.Errorf("AllocateByRank(%s) = %s, want %s", tt.user, got, tt.want)
		}
	}
}

// The rank scale is unbounded. Users more than ten ranks below the anchor
// receive a negative share; this test pins that behavior until the intended
// semantics are confirmed.
func TestAllocateByRank_UnboundedScale(t *testing.T) {
	entries := []any{"anchor", 1000}
	for i := 0; i < 12; i++ {
		entries = append(entries, "u"+string(rune('a'+i)), 900-i)
	}
	table := ranking(entries...)

	// anchor rank 1, last user rank 13: scale = 1 + (1-13)*0.1 = -0.2
	got := AllocateByRank(table, "anchor", "ul", decimal.NewFromInt(1000))
	if !got.Equal(decimal.NewFromInt(-200)) {
		t.Fatalf("expected unclamped share -200, got %s", got)
	}
}

func TestAllocatorByName(t *testing.T) {
	if _, err := AllocatorByName("points"); err != nil {
		t.Fatalf("points: %v", err)
	}
	if _, err := AllocatorByName("rank"); err != nil {
		t.Fatalf("rank: %v", err)
	}
	if a, err := AllocatorByName(""); err != nil || a == nil {
		t.Fatalf("expected default allocator, got err %v", err)
	}
	if _, err := AllocatorByName("lottery"); !errors.Is(err, domain.ErrUnknownAllocator) {
		t.Fatalf("expected ErrUnknownAllocator, got %v", err)
	}
}
