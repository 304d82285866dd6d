package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// Accepted activity field names, in priority order.
var (
	buyerFieldAliases  = []string{"byr", "usr"}
	sellerFieldAliases = []string{"slr"}
	priceFieldAliases  = []string{"trp"}
)

// LedgerSchema maps the logical ledger fields onto the field names one batch uses.
// Seller is empty when the batch has no seller field.
type LedgerSchema struct {
	Buyer  string
	Seller string
	Price  string
}

// ResolveSchema detects the buyer, seller and price fields of a batch.
// The batch must expose a buyer and a price field, otherwise a *domain.SchemaError
// naming the available fields is returned.
func ResolveSchema(records []domain.ActivityRecord) (LedgerSchema, error) {
	available := domain.FieldNames(records)

	schema := LedgerSchema{
		Buyer:  resolveAlias(available, buyerFieldAliases...),
		Seller: resolveAlias(available, sellerFieldAliases...),
		Price:  resolveAlias(available, priceFieldAliases...),
	}

	if schema.Buyer == "" || schema.Price == "" {
		return LedgerSchema{}, &domain.SchemaError{Kind: "buyer/price", Fields: available}
	}

	return schema, nil
}

// resolveAlias returns the first alias present in available, or "".
func resolveAlias(available []string, aliases ...string) string {
	present := make(map[string]struct{}, len(available))
	for _, f := range available {
		present[f] = struct{}{}
	}

	for _, alias := range aliases {
		if _, ok := present[alias]; ok {
			return alias
		}
	}
	return ""
}

func (s LedgerSchema) buyer(rec domain.ActivityRecord) (string, bool) {
	return rec.String(s.Buyer)
}

func (s LedgerSchema) seller(rec domain.ActivityRecord) (string, bool) {
	if s.Seller == "" {
		return "", false
	}
	return rec.String(s.Seller)
}

// price returns the transfer price; a missing price counts as zero.
func (s LedgerSchema) price(rec domain.ActivityRecord) decimal.Decimal {
	p, ok := rec.Decimal(s.Price)
	if !ok {
		return decimal.Zero
	}
	return p
}

// Users returns every distinct identity appearing as buyer or seller, sorted.
func (s LedgerSchema) Users(records []domain.ActivityRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if b, ok := s.buyer(rec); ok {
			seen[b] = struct{}{}
		}
		if sl, ok := s.seller(rec); ok {
			seen[sl] = struct{}{}
		}
	}

	users := make([]string, 0, len(seen))
	for u := range seen {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}

// Replay starts every user at startBudget and applies each record: the buyer
// is debited and the seller credited by the price. Missing parties are skipped.
func Replay(schema LedgerSchema, records []domain.ActivityRecord, users []string, startBudget decimal.Decimal) map[string]decimal.Decimal {
	budgets := make(map[string]decimal.Decimal, len(users))
	for _, u := range users {
		budgets[u] = startBudget
	}

	for _, rec := range records {
		price := schema.price(rec)

		if b, ok := schema.buyer(rec); ok {
			budgets[b] = budgetOf(budgets, b, startBudget).Sub(price)
		}
		if sl, ok := schema.seller(rec); ok {
			budgets[sl] = budgetOf(budgets, sl, startBudget).Add(price)
		}
	}

	return budgets
}

// budgetOf reads a balance, starting parties missing from the user set at startBudget.
func budgetOf(budgets map[string]decimal.Decimal, user string, startBudget decimal.Decimal) decimal.Decimal {
	if b, ok := budgets[user]; ok {
		return b
	}
	return startBudget
}
