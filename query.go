package budgify

import (
	"strings"

	"golang.org/x/text/cases"
)

// Criteria selects transactions. Its zero value matches every transaction.
type Criteria struct {
	// Category restricts to one category. "" or AllCategories match all.
	Category Category
	// Search is matched, ignoring case, against the description, category
	// and tags. Empty matches all.
	Search string
	// Range restricts to transaction dates within bounds. Open ends are unbounded.
	Range Range
}

// Match reports whether t satisfies every criterion.
func (c Criteria) Match(t Transaction) bool {
	return c.matcher().match(t)
}

// Filter returns the transactions matching c, in their original order.
func Filter(transactions []Transaction, c Criteria) []Transaction {
	m := c.matcher()
	result := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if m.match(t) {
			result = append(result, t)
		}
	}
	return result
}

// matcher holds the criteria with the search text folded once.
type matcher struct {
	Criteria
	fold   cases.Caser
	search string
}

func (c Criteria) matcher() *matcher {
	m := &matcher{Criteria: c, fold: cases.Fold()}
	if c.Search != "" {
		m.search = m.fold.String(c.Search)
	}
	return m
}

func (m *matcher) match(t Transaction) bool {
	if m.Category != "" && m.Category != AllCategories && m.Category != t.category {
		return false
	}
	if !m.Range.Contains(t.date) {
		return false
	}
	if m.search == "" {
		return true
	}
	for _, field := range []string{t.description, string(t.category), t.tags} {
		if strings.Contains(m.fold.String(field), m.search) {
			return true
		}
	}
	return false
}
