package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is a loosely-typed object as delivered by the league API.
// Field names vary between API versions, so values are looked up by name.
type Record struct {
	Fields map[string]any
}

// NewRecord wraps a decoded JSON object.
func NewRecord(fields map[string]any) Record {
	return Record{Fields: fields}
}

// ActivityRecord is one ledger entry: buyer, seller, transfer price and payload.
type ActivityRecord = Record

// Listing is one player offered on the market or held in a squad.
type Listing = Record

// Has reports whether the record carries the field at all, even with a null value.
func (r Record) Has(field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// String returns the field as an identity string. Nil and empty values are absent.
func (r Record) String(field string) (string, bool) {
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return "", false
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}

	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// Decimal returns the field as a decimal amount.
func (r Record) Decimal(field string) (decimal.Decimal, bool) {
	v, ok := r.Fields[field]
	if !ok {
		return decimal.Zero, false
	}
	return ToDecimal(v)
}

// ToDecimal converts a JSON-decoded scalar into a decimal.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return t, true
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt32(t), true
	case int64:
		return decimal.NewFromInt(t), true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

// ActivityBatch is everything one activities fetch returns.
type ActivityBatch struct {
	Activities         []ActivityRecord
	LoginBonuses       []BonusEvent
	AchievementBonuses []BonusEvent
}

// FieldNames returns the union of field names across records, sorted.
func FieldNames(records []Record) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for k := range rec.Fields {
			seen[k] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
