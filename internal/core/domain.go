package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FilterAll matches every category when passed to Filter.
const FilterAll = "All"

// Categories is the fixed set offered at entry time. Aggregation treats
// the list as an open contract: a record carrying a category outside it
// is still grouped under its literal value.
var Categories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Travel",
	"Education",
	"Other",
}

type (
	// Expense is an immutable record owned by the store.
	Expense struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Date        string          `json:"date"` // RFC 3339; only the day component carries meaning
	}

	// Draft is the unvalidated input to the add operation.
	Draft struct {
		Description string
		Amount      decimal.Decimal
		Category    string
		Date        string
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrDescriptionTooLong = errors.New("description too long (max 200 bytes)")
	ErrInvalidDate        = errors.New("invalid date")
)

// Day returns the YYYY-MM-DD component of the expense date.
func (e Expense) Day() string {
	if len(e.Date) < 10 {
		return e.Date
	}
	return e.Date[:10]
}

func (d Draft) Validate() error {
	if len(strings.TrimSpace(d.Description)) == 0 {
		return ErrEmptyDescription
	}
	// The limit counts bytes, not characters.
	if len(d.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if !d.Amount.GreaterThan(decimal.Zero) {
		return ErrInvalidAmount
	}
	if _, err := NormalizeDate(d.Date); err != nil {
		return err
	}
	return nil
}

// NormalizeDate canonicalizes user date input to RFC 3339 UTC. It accepts
// a bare calendar date or a full timestamp.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidDate
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	return "", ErrInvalidDate
}
