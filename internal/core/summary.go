package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Bucket is an amount aggregated under a chart label.
	Bucket struct {
		Name   string
		Amount decimal.Decimal
	}

	// DayBucket is a single day of the weekly chart grid.
	DayBucket struct {
		Name   string // short weekday name
		Date   string // YYYY-MM-DD
		Amount decimal.Decimal
	}
)

// TotalAmount sums the amounts of the given expenses. Empty input sums
// to zero.
func TotalAmount(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// WeekRange returns the seven calendar dates of the Sunday-start week
// containing ref, formatted YYYY-MM-DD.
func WeekRange(ref time.Time) []string {
	start := ref.AddDate(0, 0, -int(ref.Weekday()))
	days := make([]string, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	return days
}

// WeeklyTotal sums the expenses whose date falls inside the week
// containing ref. Callers pass the full collection, not a filtered view:
// the weekly figure reflects true weekly spend regardless of active
// filters.
func WeeklyTotal(expenses []Expense, ref time.Time) decimal.Decimal {
	week := make(map[string]struct{}, 7)
	for _, d := range WeekRange(ref) {
		week[d] = struct{}{}
	}
	total := decimal.Zero
	for _, e := range expenses {
		if _, ok := week[e.Day()]; ok {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// BucketByDay distributes expenses over a grid of consecutive calendar
// days ending at ref, oldest first. The grid is date-driven: it always
// holds exactly days buckets, zero-valued where nothing was spent.
func BucketByDay(expenses []Expense, days int, ref time.Time) []DayBucket {
	out := make([]DayBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		iso := day.Format("2006-01-02")
		total := decimal.Zero
		for _, e := range expenses {
			if e.Day() == iso {
				total = total.Add(e.Amount)
			}
		}
		out = append(out, DayBucket{Name: day.Format("Mon"), Date: iso, Amount: total})
	}
	return out
}

// BucketByMonth groups expenses by the short month name of their date.
// Only months present in the input appear, in first-encounter order.
// Records with an unparseable date are skipped.
func BucketByMonth(expenses []Expense) []Bucket {
	return bucketBy(expenses, func(e Expense) string {
		t, err := time.Parse("2006-01-02", e.Day())
		if err != nil {
			return ""
		}
		return t.Format("Jan")
	})
}

// BucketByCategory groups expenses by their literal category value,
// including values outside the fixed Categories list. First-encounter
// order.
func BucketByCategory(expenses []Expense) []Bucket {
	return bucketBy(expenses, func(e Expense) string { return e.Category })
}

func bucketBy(expenses []Expense, label func(Expense) string) []Bucket {
	idx := make(map[string]int)
	out := make([]Bucket, 0)
	for _, e := range expenses {
		name := label(e)
		if name == "" {
			continue
		}
		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, Bucket{Name: name, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	return out
}
