package core

import "strings"

// Filter returns the expenses matching both the category selection and
// the search term. FilterAll passes every category; an empty term passes
// every description. The match on description is a case-insensitive
// substring check. Input order is preserved and the input is never
// mutated.
func Filter(expenses []Expense, category, searchTerm string) []Expense {
	term := strings.ToLower(searchTerm)
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if category != FilterAll && e.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(e.Description), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}
