package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecord_String(t *testing.T) {
	rec := NewRecord(map[string]any{
		"byr":   "alice",
		"slr":   nil,
		"empty": "  ",
		"num":   json.Number("42"),
	})

	tests := []struct {
		field  string
		want   string
		wantOK bool
	}{
		{"byr", "alice", true},
		{"slr", "", false},
		{"empty", "", false},
		{"num", "42", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		got, ok := rec.String(tt.field)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("String(%q) = (%q, %v), want (%q, %v)", tt.field, got, ok, tt.want, tt.wantOK)
		}
	}

	if !rec.Has("slr") {
		t.Error("expected Has to report a null field as present")
	}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   decimal.Decimal
		wantOK bool
	}{
		{"float", float64(1500.5), decimal.RequireFromString("1500.5"), true},
		{"int", 300, decimal.NewFromInt(300), true},
		{"int64", int64(-7), decimal.NewFromInt(-7), true},
		{"json number", json.Number("2500000"), decimal.NewFromInt(2500000), true},
		{"numeric string", " 12.25 ", decimal.RequireFromString("12.25"), true},
		{"garbage string", "abc", decimal.Zero, false},
		{"nil", nil, decimal.Zero, false},
		{"bool", true, decimal.Zero, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToDecimal(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ToDecimal(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("ToDecimal(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFieldNames(t *testing.T) {
	got := FieldNames([]Record{
		NewRecord(map[string]any{"trp": 1, "byr": "a"}),
		NewRecord(map[string]any{"slr": "b", "trp": 2}),
	})

	want := []string{"byr", "slr", "trp"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("FieldNames = %v, want %v", got, want)
	}
}

func TestSchemaError(t *testing.T) {
	err := fmt.Errorf("replay: %w", &SchemaError{Kind: "buyer/price", Fields: []string{"foo", "bar"}})

	if !IsSchemaError(err) {
		t.Fatal("expected wrapped schema error to be detected")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatal("expected errors.As to find *SchemaError")
	}
	if len(schemaErr.Fields) != 2 {
		t.Fatalf("expected field list to survive wrapping, got %v", schemaErr.Fields)
	}
	if want := "cannot determine buyer/price fields, available fields: [foo, bar]"; schemaErr.Error() != want {
		t.Fatalf("unexpected message %q", schemaErr.Error())
	}
}

func TestPointBonus(t *testing.T) {
	perf := ManagerPerformance{Name: "alice", TotalPoints: decimal.NewNullDecimal(decimal.NewFromInt(1234))}
	if got := perf.PointBonus(); !got.Equal(decimal.NewFromInt(1234000)) {
		t.Fatalf("expected 1234000, got %s", got)
	}

	if got := (ManagerPerformance{Name: "bob"}).PointBonus(); !got.IsZero() {
		t.Fatalf("expected missing points to yield zero bonus, got %s", got)
	}
}
