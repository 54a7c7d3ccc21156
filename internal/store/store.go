// Package store owns the authoritative expense collection. All
// mutations go through it; readers get snapshot copies. Durability is
// delegated to the kv collaborator and is best-effort: a failed write is
// logged and the in-memory collection stays authoritative for the
// session.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/kv"
	applog "fintrack/internal/log"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type ExpenseStore struct {
	mu       sync.Mutex
	kv       kv.Store
	logger   *applog.Logger
	expenses []core.Expense
}

func New(store kv.Store, logger *applog.Logger) *ExpenseStore {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &ExpenseStore{
		kv:     store,
		logger: logger.WithComponent(applog.ComponentStore),
	}
}

// sampleExpenses seeds first runs so the UI is never empty.
func sampleExpenses(now time.Time) []core.Expense {
	return []core.Expense{
		{
			ID:          uuid.NewString(),
			Description: "Groceries",
			Amount:      decimal.RequireFromString("85.50"),
			Category:    "Food & Dining",
			Date:        now.UTC().Format(time.RFC3339),
		},
		{
			ID:          uuid.NewString(),
			Description: "Gas",
			Amount:      decimal.RequireFromString("45.00"),
			Category:    "Transportation",
			Date:        now.AddDate(0, 0, -1).UTC().Format(time.RFC3339),
		},
	}
}

// Load initializes the collection from the persisted payload. A missing
// payload seeds the sample expenses; an unreadable or corrupt payload
// degrades to an empty collection rather than failing startup.
func (s *ExpenseStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := s.kv.Get(ctx, kv.KeyExpenses)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to read persisted expenses, starting empty",
			applog.FieldError, err)
		s.expenses = nil
		return
	}
	if !found {
		s.expenses = sampleExpenses(time.Now())
		s.persistLocked(ctx)
		s.logger.InfoContext(ctx, "No persisted expenses, seeded samples",
			applog.FieldCount, len(s.expenses))
		return
	}

	var expenses []core.Expense
	if err := json.Unmarshal(raw, &expenses); err != nil {
		s.logger.WarnContext(ctx, "Corrupt expense payload, starting empty",
			applog.FieldError, err)
		s.expenses = nil
		return
	}
	s.expenses = expenses
}

// Add validates the draft, assigns a fresh id, normalizes the date and
// prepends the record so the collection stays newest-first.
func (s *ExpenseStore) Add(ctx context.Context, d core.Draft) (core.Expense, error) {
	if err := d.Validate(); err != nil {
		return core.Expense{}, fmt.Errorf("validate draft: %w", err)
	}
	date, err := core.NormalizeDate(d.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("normalize date: %w", err)
	}

	e := core.Expense{
		ID:          uuid.NewString(),
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append([]core.Expense{e}, s.expenses...)
	s.persistLocked(ctx)

	s.logger.InfoContext(ctx, "Expense added",
		applog.FieldExpenseID, e.ID,
		applog.FieldDescription, e.Description,
		applog.FieldAmount, e.Amount.StringFixed(2),
		applog.FieldCategory, e.Category)
	return e, nil
}

// Delete removes the expense with the given id. Missing ids are a no-op.
func (s *ExpenseStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]core.Expense, 0, len(s.expenses))
	removed := false
	for _, e := range s.expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return
	}
	s.expenses = kept
	s.persistLocked(ctx)
	s.logger.InfoContext(ctx, "Expense deleted", applog.FieldExpenseID, id)
}

// Clear drops every expense. Confirmation is the caller's job.
func (s *ExpenseStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = nil
	s.persistLocked(ctx)
	s.logger.InfoContext(ctx, "All expenses cleared")
}

// Expenses returns a snapshot copy, newest first.
func (s *ExpenseStore) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...)
}

func (s *ExpenseStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}

// Theme returns the persisted theme preference, defaulting to light.
func (s *ExpenseStore) Theme(ctx context.Context) string {
	raw, found, err := s.kv.Get(ctx, kv.KeyTheme)
	if err != nil || !found {
		return ThemeLight
	}
	if theme := string(raw); theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SetTheme persists the theme preference as a plain string literal.
func (s *ExpenseStore) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme: %q", theme)
	}
	if err := s.kv.Set(ctx, kv.KeyTheme, []byte(theme)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist theme", applog.FieldError, err)
	}
	return nil
}

// persistLocked serializes and writes the collection. Callers hold the
// mutex so the read-modify-write stays atomic.
func (s *ExpenseStore) persistLocked(ctx context.Context) {
	expenses := s.expenses
	if expenses == nil {
		expenses = []core.Expense{}
	}
	raw, err := json.Marshal(expenses)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to serialize expenses", applog.FieldError, err)
		return
	}
	if err := s.kv.Set(ctx, kv.KeyExpenses, raw); err != nil {
		// In-memory state stays authoritative for the session.
		s.logger.ErrorContext(ctx, "Failed to persist expenses",
			applog.FieldError, err,
			applog.FieldCount, len(expenses))
	}
}
