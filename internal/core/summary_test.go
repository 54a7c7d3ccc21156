package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTotalAmount(t *testing.T) {
	if got := TotalAmount(nil); !got.IsZero() {
		t.Fatalf("empty input: expected 0, got %s", got)
	}
	if got := TotalAmount(fixtureExpenses()); !got.Equal(amt("7.50")) {
		t.Fatalf("expected 7.50, got %s", got)
	}
}

func TestFilteringNeverIncreasesTotal(t *testing.T) {
	expenses := fixtureExpenses()
	full := TotalAmount(expenses)
	cases := []struct{ category, term string }{
		{FilterAll, ""},
		{"Food & Dining", ""},
		{"Transportation", "bus"},
		{"Healthcare", ""},
		{FilterAll, "zzz"},
	}
	for _, tc := range cases {
		filtered := TotalAmount(Filter(expenses, tc.category, tc.term))
		if filtered.GreaterThan(full) {
			t.Fatalf("filter (%q,%q) increased total: %s > %s", tc.category, tc.term, filtered, full)
		}
	}
}

func TestWeekRange(t *testing.T) {
	// 2024-01-03 is a Wednesday; the week starts Sunday 2023-12-31.
	ref := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	want := []string{
		"2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03",
		"2024-01-04", "2024-01-05", "2024-01-06",
	}
	got := WeekRange(ref)
	if len(got) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("day %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestWeeklyTotal(t *testing.T) {
	ref := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	expenses := []Expense{
		{ID: "in1", Amount: amt("5.00"), Category: "Food & Dining", Date: "2024-01-01T09:00:00Z"},
		{ID: "in2", Amount: amt("2.50"), Category: "Transportation", Date: "2024-01-06T00:00:00Z"},
		{ID: "out", Amount: amt("99.99"), Category: "Travel", Date: "2024-01-08T00:00:00Z"},
	}
	if got := WeeklyTotal(expenses, ref); !got.Equal(amt("7.50")) {
		t.Fatalf("expected 7.50, got %s", got)
	}
	if got := WeeklyTotal(nil, ref); !got.IsZero() {
		t.Fatalf("empty input: expected 0, got %s", got)
	}
}

func TestBucketByDayAlwaysFullGrid(t *testing.T) {
	ref := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC) // Sunday

	for _, expenses := range [][]Expense{nil, fixtureExpenses()} {
		buckets := BucketByDay(expenses, 7, ref)
		if len(buckets) != 7 {
			t.Fatalf("expected exactly 7 buckets, got %d", len(buckets))
		}
	}

	buckets := BucketByDay(fixtureExpenses(), 7, ref)
	// Oldest first: the grid runs 2024-01-01 (Mon) through 2024-01-07 (Sun).
	if buckets[0].Date != "2024-01-01" || buckets[0].Name != "Mon" {
		t.Fatalf("unexpected first bucket: %+v", buckets[0])
	}
	if buckets[6].Date != "2024-01-07" || buckets[6].Name != "Sun" {
		t.Fatalf("unexpected last bucket: %+v", buckets[6])
	}
	if !buckets[0].Amount.Equal(amt("5.00")) {
		t.Fatalf("Jan 1 bucket: expected 5.00, got %s", buckets[0].Amount)
	}
	if !buckets[1].Amount.Equal(amt("2.50")) {
		t.Fatalf("Jan 2 bucket: expected 2.50, got %s", buckets[1].Amount)
	}
	for _, b := range buckets[2:] {
		if !b.Amount.IsZero() {
			t.Fatalf("empty day %s: expected 0, got %s", b.Date, b.Amount)
		}
	}
}

func TestBucketByMonth(t *testing.T) {
	if got := BucketByMonth(nil); len(got) != 0 {
		t.Fatalf("empty input: expected no buckets, got %d", len(got))
	}

	expenses := []Expense{
		{Amount: amt("10"), Date: "2024-03-01T00:00:00Z"},
		{Amount: amt("20"), Date: "2024-01-15T00:00:00Z"},
		{Amount: amt("5"), Date: "2024-03-20T00:00:00Z"},
	}
	got := BucketByMonth(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	// First-encounter order: Mar before Jan.
	if got[0].Name != "Mar" || !got[0].Amount.Equal(amt("15")) {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[1].Name != "Jan" || !got[1].Amount.Equal(amt("20")) {
		t.Fatalf("unexpected second bucket: %+v", got[1])
	}
}

func TestBucketByCategory(t *testing.T) {
	if got := BucketByCategory(nil); len(got) != 0 {
		t.Fatalf("empty input: expected no buckets, got %d", len(got))
	}

	got := BucketByCategory(fixtureExpenses())
	want := map[string]string{"Food & Dining": "5.00", "Transportation": "2.50"}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for _, b := range got {
		expected, ok := want[b.Name]
		if !ok {
			t.Fatalf("unexpected bucket %q", b.Name)
		}
		if !b.Amount.Equal(amt(expected)) {
			t.Fatalf("%s: expected %s, got %s", b.Name, expected, b.Amount)
		}
	}
}

func TestBucketByCategoryOpenContract(t *testing.T) {
	expenses := []Expense{
		{Amount: amt("1"), Category: "Crypto"},
		{Amount: amt("2"), Category: "Other"},
		{Amount: amt("3"), Category: "Crypto"},
	}
	got := BucketByCategory(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	// First-encounter order with the literal out-of-list value first.
	if got[0].Name != "Crypto" || !got[0].Amount.Equal(amt("4")) {
		t.Fatalf("unexpected first bucket: %+v", got[0])
	}
	if got[1].Name != "Other" || !got[1].Amount.Equal(amt("2")) {
		t.Fatalf("unexpected second bucket: %+v", got[1])
	}
}
