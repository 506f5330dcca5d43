package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -50}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:          "exp-1",
		Description: "coffee",
		Amount:      Money{Cents: 350},
		CategoryID:  "cat-1",
		Date:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Description: "", Amount: Money{Cents: 1}, CategoryID: "c", Date: good.Date},
		{Description: "   ", Amount: Money{Cents: 1}, CategoryID: "c", Date: good.Date},
		{Description: "a", Amount: Money{Cents: 0}, CategoryID: "c", Date: good.Date},
		{Description: "a", Amount: Money{Cents: 1}, CategoryID: "", Date: good.Date},
		{Description: "a", Amount: Money{Cents: 1}, CategoryID: "c", Date: time.Time{}},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}

	// These must be sentinels so callers can classify the rejection.
	long := good
	long.Description = strings.Repeat("x", 201)
	if err := long.Validate(); !errors.Is(err, ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}
	zeroDate := good
	zeroDate.Date = time.Time{}
	if err := zeroDate.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want Period
		ok   bool
	}{
		{"today", Today, true},
		{"7days", Last7Days, true},
		{"30days", Last30Days, true},
		{"", Last7Days, true}, // default selection
		{" 7DAYS ", Last7Days, true},
		{"week", "", false},
		{"7", "", false},
	}
	for _, tc := range cases {
		got, err := ParsePeriod(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.want, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		p    Period
		want time.Time
	}{
		{Today, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{Last7Days, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{Last30Days, time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := tc.p.Start(now); !got.Equal(tc.want) {
			t.Fatalf("%s expected start %v, got %v", tc.p, tc.want, got)
		}
	}
}

func TestBuiltInCategories(t *testing.T) {
	cats := BuiltInCategories()
	if len(cats) != 7 {
		t.Fatalf("expected 7 built-ins, got %d", len(cats))
	}
	if cats[6].ID != FallbackCategoryID || cats[6].Name != "Other" {
		t.Fatalf("expected cat-7 Other as fallback, got %+v", cats[6])
	}
	for _, c := range cats {
		if !IsBuiltIn(c.ID) {
			t.Fatalf("%s should be built-in", c.ID)
		}
		if IconFor(c.ID) != c.Icon {
			t.Fatalf("%s icon mismatch", c.ID)
		}
	}
	if IsBuiltIn("cat-123") {
		t.Fatal("cat-123 should not be built-in")
	}
	if IconFor("cat-123") != GenericIcon {
		t.Fatal("unknown id should resolve to the generic icon")
	}

	// Mutating the returned slice must not leak into the table.
	cats[0].Name = "changed"
	if BuiltInCategories()[0].Name != "Food" {
		t.Fatal("built-in table was mutated through the copy")
	}
}

func TestCategoryNameTaken(t *testing.T) {
	cats := []Category{{ID: "cat-1", Name: "Food"}, {ID: "cat-x", Name: "Vacation"}}
	cases := []struct {
		name string
		want bool
	}{
		{"Food", true},
		{"food", true},
		{"  FOOD  ", true},
		{"vacation", true},
		{"Groceries", false},
	}
	for _, tc := range cases {
		if got := CategoryNameTaken(cats, tc.name); got != tc.want {
			t.Fatalf("%q expected %v", tc.name, tc.want)
		}
	}
}
