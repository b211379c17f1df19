package views

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Match is an exact-match filter on one field. An empty Value matches all.
type Match[T any] struct {
	Field Field[T]
	Value string
}

// Query combines a case-insensitive substring search over SearchFields with
// exact matches. All active filters must hold.
type Query[T any] struct {
	Search       string
	SearchFields []Field[T]
	Equals       []Match[T]
}

// Filter returns the items satisfying q, in their original order.
func Filter[T any](items []T, q Query[T]) []T {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, q, needle, fold) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, q Query[T], needle string, fold cases.Caser) bool {
	for _, m := range q.Equals {
		if m.Value != "" && m.Field.Value(item) != m.Value {
			return false
		}
	}
	if needle == "" {
		return true
	}
	for _, f := range q.SearchFields {
		if strings.Contains(fold.String(f.Value(item)), needle) {
			return true
		}
	}
	return false
}

// SortBy returns a stably sorted copy of items ordered by field.
func SortBy[T any](items []T, field Field[T], desc bool) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		c := strings.Compare(field.Value(a), field.Value(b))
		if desc {
			return -c
		}
		return c
	})
	return out
}
