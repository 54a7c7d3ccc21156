package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Description: "Coffee",
		Amount:      decimal.RequireFromString("5.00"),
		Category:    "Food & Dining",
		Date:        "2024-01-01",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(Draft) Draft
		wantErr error
	}{
		{
			name:    "empty description",
			mutate:  func(d Draft) Draft { d.Description = ""; return d },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "whitespace description",
			mutate:  func(d Draft) Draft { d.Description = "   "; return d },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "over-length description",
			mutate:  func(d Draft) Draft { d.Description = strings.Repeat("x", 201); return d },
			wantErr: ErrDescriptionTooLong,
		},
		{
			name:    "zero amount",
			mutate:  func(d Draft) Draft { d.Amount = decimal.Zero; return d },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(d Draft) Draft { d.Amount = decimal.RequireFromString("-5"); return d },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "bad date",
			mutate:  func(d Draft) Draft { d.Date = "yesterday"; return d },
			wantErr: ErrInvalidDate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mutate(good).Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"2024-01-01", "2024-01-01T00:00:00Z", true},
		{"2024-01-02T15:04:05Z", "2024-01-02T15:04:05Z", true},
		{"2024-01-02T15:04:05+01:00", "2024-01-02T14:04:05Z", true},
		{"  2024-01-01  ", "2024-01-01T00:00:00Z", true},
		{"01/02/2024", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestExpenseDay(t *testing.T) {
	e := Expense{Date: "2024-01-02T15:04:05Z"}
	if got := e.Day(); got != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %q", got)
	}
	short := Expense{Date: "2024"}
	if got := short.Day(); got != "2024" {
		t.Fatalf("expected passthrough for short date, got %q", got)
	}
}

func TestCategoriesEndWithOther(t *testing.T) {
	if len(Categories) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(Categories))
	}
	if Categories[len(Categories)-1] != "Other" {
		t.Fatalf("expected Other last, got %q", Categories[len(Categories)-1])
	}
}
