// Package core holds the expense domain types and the pure aggregation
// functions that derive filtered views, totals and chart series.
//
// This file contains amount parsing and currency formatting. Amounts are
// decimal values rounded to cents; calculations never touch binary
// floats.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user amount input to a decimal rounded to cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// performs half-up rounding on the third decimal place. Only strictly
// positive amounts are accepted; signs, zero and malformed input return
// ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("12.34")  -> 12.34, nil
//	ParseAmount("12,34")  -> 12.34, nil
//	ParseAmount("12.345") -> 12.35, nil (rounds up)
//	ParseAmount("-1")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only positive values allowed
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	d = d.Round(2)
	if !d.GreaterThan(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatUSD renders an amount as a dollar string with thousands
// separators, e.g. $1,234.56. Display only; calculations stay decimal.
func FormatUSD(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + fracPart
}
