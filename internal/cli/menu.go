package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/services"
	"fintrack/internal/store"
)

// Session is the interactive terminal front-end. It owns presentation
// and confirmation prompts only; every domain decision lives in the
// store and the aggregation functions.
type Session struct {
	store  *store.ExpenseStore
	views  *services.ViewService
	in     *bufio.Reader
	out    io.Writer
	params services.Params
	now    func() time.Time
}

func NewSession(s *store.ExpenseStore) *Session {
	return &Session{
		store:  s,
		views:  services.NewViewService(s),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		params: services.DefaultParams(),
		now:    time.Now,
	}
}

var menuItems = []string{
	"Add expense",
	"List expenses",
	"Charts",
	"Filter by category",
	"Search",
	"Toggle weekly/monthly",
	"Delete expense",
	"Clear all",
	"Toggle theme",
	"Quit",
}

// Run drives the menu loop until the user quits or input ends.
func (s *Session) Run(ctx context.Context) {
	for {
		s.drawSummary(ctx)
		s.drawMenu()

		choice, ok := s.readLine(fmt.Sprintf("Choice (1..%d): ", len(menuItems)))
		if !ok {
			fmt.Fprintln(s.out, "Bye!")
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(menuItems) {
			fmt.Fprintln(s.out, "Invalid choice")
			continue
		}

		switch idx {
		case 1:
			s.addExpense(ctx)
		case 2:
			s.listExpenses()
		case 3:
			s.showCharts()
		case 4:
			s.chooseCategory()
		case 5:
			if term, ok := s.readLine("Search term (empty to reset): "); ok {
				s.params.Search = term
			}
		case 6:
			s.toggleTimeRange()
		case 7:
			s.deleteExpense(ctx)
		case 8:
			s.clearAll(ctx)
		case 9:
			s.toggleTheme(ctx)
		case 10:
			fmt.Fprintln(s.out, "Bye!")
			return
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Session) drawSummary(ctx context.Context) {
	view := s.views.Derive(s.params, s.now())
	fmt.Fprintf(s.out, "==== FinTrack (%s) ====\n", s.store.Theme(ctx))
	fmt.Fprintf(s.out, "Total: %s (%d transactions)  |  This week: %s\n",
		core.FormatUSD(view.Total), view.Count, core.FormatUSD(view.WeeklyTotal))
	fmt.Fprintf(s.out, "Category: %s  |  Search: %q  |  Range: %s\n",
		s.params.Category, s.params.Search, s.params.TimeRange)
}

func (s *Session) drawMenu() {
	for i, item := range menuItems {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, item)
	}
}

func (s *Session) addExpense(ctx context.Context) {
	description, ok := s.readLine("Description: ")
	if !ok {
		return
	}

	raw, ok := s.readLine("Amount ($): ")
	if !ok {
		return
	}
	amount, err := core.ParseAmount(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}

	fmt.Fprintln(s.out, "Categories:")
	for i, c := range core.Categories {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, c)
	}
	choice, ok := s.readLine(fmt.Sprintf("Category (1..%d): ", len(core.Categories)))
	if !ok {
		return
	}
	category := core.Categories[len(core.Categories)-1]
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(core.Categories) {
		category = core.Categories[n-1]
	}

	date, ok := s.readLine("Date (YYYY-MM-DD, empty for today): ")
	if !ok {
		return
	}
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	if _, err := s.store.Add(ctx, core.Draft{
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
	}); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, "Added.")
}

func (s *Session) listExpenses() {
	view := s.views.Derive(s.params, s.now())
	if len(view.Expenses) == 0 {
		fmt.Fprintln(s.out, "No expenses match the current filters.")
		return
	}
	for i, e := range view.Expenses {
		fmt.Fprintf(s.out, "%3d) %-10s  %-24s %-18s %s\n",
			i+1, e.Day(), truncate(e.Description, 24), e.Category, core.FormatUSD(e.Amount))
	}
	fmt.Fprintf(s.out, "     Total: %s\n", core.FormatUSD(view.Total))
}

func (s *Session) showCharts() {
	view := s.views.Derive(s.params, s.now())

	if view.DayBuckets != nil {
		fmt.Fprintln(s.out, "Daily spend (last 7 days):")
		for _, b := range view.DayBuckets {
			fmt.Fprintf(s.out, "  %s %s  %s\n", b.Name, b.Date, core.FormatUSD(b.Amount))
		}
	} else {
		fmt.Fprintln(s.out, "Monthly spend:")
		for _, b := range view.MonthBuckets {
			fmt.Fprintf(s.out, "  %-4s %s\n", b.Name, core.FormatUSD(b.Amount))
		}
	}

	fmt.Fprintln(s.out, "By category:")
	for _, b := range view.CategoryBuckets {
		fmt.Fprintf(s.out, "  %-18s %s\n", b.Name, core.FormatUSD(b.Amount))
	}
}

func (s *Session) chooseCategory() {
	options := append([]string{core.FilterAll}, core.Categories...)
	for i, c := range options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, c)
	}
	choice, ok := s.readLine(fmt.Sprintf("Category (1..%d): ", len(options)))
	if !ok {
		return
	}
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(options) {
		s.params.Category = options[n-1]
		return
	}
	fmt.Fprintln(s.out, "Invalid choice")
}

func (s *Session) toggleTimeRange() {
	if s.params.TimeRange == services.Monthly {
		s.params.TimeRange = services.Weekly
	} else {
		s.params.TimeRange = services.Monthly
	}
}

func (s *Session) deleteExpense(ctx context.Context) {
	view := s.views.Derive(s.params, s.now())
	if len(view.Expenses) == 0 {
		fmt.Fprintln(s.out, "Nothing to delete.")
		return
	}
	s.listExpenses()
	choice, ok := s.readLine(fmt.Sprintf("Delete which (1..%d): ", len(view.Expenses)))
	if !ok {
		return
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(view.Expenses) {
		fmt.Fprintln(s.out, "Invalid choice")
		return
	}
	s.store.Delete(ctx, view.Expenses[n-1].ID)
	fmt.Fprintln(s.out, "Deleted.")
}

// clearAll is the one destructive operation; the confirmation lives here
// because the store itself never asks.
func (s *Session) clearAll(ctx context.Context) {
	if s.store.Count() == 0 {
		fmt.Fprintln(s.out, "Nothing to clear.")
		return
	}
	answer, ok := s.readLine("Delete ALL expenses? This cannot be undone. (y/N): ")
	if !ok || strings.ToLower(answer) != "y" {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	s.store.Clear(ctx)
	fmt.Fprintln(s.out, "All expenses cleared.")
}

func (s *Session) toggleTheme(ctx context.Context) {
	next := store.ThemeDark
	if s.store.Theme(ctx) == store.ThemeDark {
		next = store.ThemeLight
	}
	if err := s.store.SetTheme(ctx, next); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintf(s.out, "Theme: %s\n", next)
}

// readLine prompts and reads one line. ok is false once input is
// exhausted and no data was read, so callers can stop prompting.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
