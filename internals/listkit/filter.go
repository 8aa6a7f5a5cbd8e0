// Package listkit centralizes the list shaping the console pages used to
// reimplement per page: free-text + field filtering, pagination math,
// aggregate counts, and the in-memory collection cache they read from.
package listkit

import "strings"

/* ===============================
   Query & filtering
=================================*/

// Query combines a free-text search term with named field filters.
// An empty Text matches everything; a field mapped to "" is ignored
// (empty string means "no constraint", never a literal match).
type Query struct {
	Text   string
	Fields map[string]string
}

func (q Query) IsZero() bool {
	if strings.TrimSpace(q.Text) != "" {
		return false
	}
	for _, v := range q.Fields {
		if v != "" {
			return false
		}
	}
	return true
}

// Searchable is implemented by list elements. SearchValues returns the
// fields the free-text term is matched against (substring, case-fold).
// FilterValue resolves a named filter field; ok=false when the element
// has no value for it.
type Searchable interface {
	SearchValues() []string
	FilterValue(field string) (value string, ok bool)
}

// Filter returns the elements of all matching q. Pure: all is never
// mutated and the same inputs always produce the same output.
func Filter[T Searchable](all []T, q Query) []T {
	term := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]T, 0, len(all))
	for _, item := range all {
		if term != "" && !matchesText(item, term) {
			continue
		}
		if !matchesFields(item, q.Fields) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// any search field containing the term is a hit (OR across fields)
func matchesText(item Searchable, term string) bool {
	for _, v := range item.SearchValues() {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// every active field filter must match exactly (AND across fields)
func matchesFields(item Searchable, fields map[string]string) bool {
	for field, want := range fields {
		if want == "" {
			continue
		}
		got, ok := item.FilterValue(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}
