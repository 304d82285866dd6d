package domain

import "github.com/shopspring/decimal"

// BonusKind tags a bonus event.
type BonusKind string

const (
	BonusKindLogin       BonusKind = "login"
	BonusKindAchievement BonusKind = "achievement"
)

// BonusEvent is a login or achievement bonus taken from the activity feed.
// Login events carry Amount directly; achievement events carry only the
// achievement type and need a reward lookup.
type BonusEvent struct {
	Kind            BonusKind
	Amount          decimal.NullDecimal
	AchievementType string
}

// LoginBonus creates a login bonus event.
func LoginBonus(amount decimal.Decimal) BonusEvent {
	return BonusEvent{Kind: BonusKindLogin, Amount: decimal.NewNullDecimal(amount)}
}

// AchievementBonus creates an achievement bonus event for the given type id.
func AchievementBonus(typeID string) BonusEvent {
	return BonusEvent{Kind: BonusKindAchievement, AchievementType: typeID}
}
