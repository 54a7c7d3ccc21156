// Package services orchestrates the store and the aggregation functions
// into the derived views the UI collaborator renders.
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

// TimeRange selects which chart series the view carries.
type TimeRange string

const (
	Weekly  TimeRange = "weekly"
	Monthly TimeRange = "monthly"
)

// Params are the active filter controls of the UI collaborator.
type Params struct {
	Category  string
	Search    string
	TimeRange TimeRange
}

// DefaultParams returns the controls in their initial state.
func DefaultParams() Params {
	return Params{Category: core.FilterAll, TimeRange: Monthly}
}

// View is everything the UI renders for one state of the controls.
type View struct {
	Expenses        []core.Expense
	Count           int
	Total           decimal.Decimal
	WeeklyTotal     decimal.Decimal
	DayBuckets      []core.DayBucket // populated for the weekly range
	MonthBuckets    []core.Bucket    // populated for the monthly range
	CategoryBuckets []core.Bucket
}

// ViewService recomputes the derived view after every mutation or
// control change. It holds no state of its own.
type ViewService struct {
	store *store.ExpenseStore
}

func NewViewService(s *store.ExpenseStore) *ViewService {
	return &ViewService{store: s}
}

// Derive computes the filtered list, totals and chart series for the
// given controls. The weekly total is always computed over the full
// collection so it reflects true weekly spend regardless of filters.
func (v *ViewService) Derive(params Params, ref time.Time) View {
	all := v.store.Expenses()
	filtered := core.Filter(all, params.Category, params.Search)

	view := View{
		Expenses:        filtered,
		Count:           len(filtered),
		Total:           core.TotalAmount(filtered),
		WeeklyTotal:     core.WeeklyTotal(all, ref),
		CategoryBuckets: core.BucketByCategory(filtered),
	}
	switch params.TimeRange {
	case Weekly:
		view.DayBuckets = core.BucketByDay(filtered, 7, ref)
	default:
		view.MonthBuckets = core.BucketByMonth(filtered)
	}
	return view
}
