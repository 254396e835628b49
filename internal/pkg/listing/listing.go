// Package listing is a generic filter/sort/paginate pipeline over in-memory
// collections. The upstream backend serves whole snapshots, so list views
// refine them locally: predicates compose with AND, sorting is stable, and
// pagination slices defensively. The pipeline is pure; callers own the
// policy of resetting to page 1 whenever a filter changes.
package listing

import (
	"sort"
	"strings"
)

// Predicate reports whether an item passes one active filter.
type Predicate[T any] func(T) bool

// Search matches when the lowercased term is a substring of any of the
// item's searchable fields. An empty term matches everything.
func Search[T any](term string, fields func(T) []string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return func(T) bool { return true }
	}
	return func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// Equals is an exact-match categorical filter. The empty string is the
// unset sentinel and matches everything.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	if value == "" {
		return func(T) bool { return true }
	}
	return func(item T) bool {
		return field(item) == value
	}
}

// DateRange matches items whose ANY nested date falls inside the inclusive
// [start, end] window ("exists" semantics, not "every"). Dates are
// YYYY-MM-DD strings, so lexicographic comparison is the date comparison.
// An empty bound is open on that side; both empty matches everything.
func DateRange[T any](start, end string, dates func(T) []string) Predicate[T] {
	if start == "" && end == "" {
		return func(T) bool { return true }
	}
	return func(item T) bool {
		for _, d := range dates(item) {
			if d == "" {
				continue
			}
			if start != "" && d < start {
				continue
			}
			if end != "" && d > end {
				continue
			}
			return true
		}
		return false
	}
}

// Filter keeps items passing every predicate, preserving collection order.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		pass := true
		for _, p := range preds {
			if p != nil && !p(item) {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, item)
		}
	}
	return out
}

// SortStable orders items by less, keeping the original order of equal
// keys. The input slice is sorted in place and returned for chaining.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	if less == nil {
		return items
	}
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
	return items
}

// Page is one window over a filtered collection.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate slices the page-th window of size pageSize. Validating the page
// number is the caller's job; the slice itself never faults, windows past
// the end of the collection are simply empty.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	end := start + pageSize

	var window []T
	if start < total {
		if end > total {
			end = total
		}
		window = items[start:end]
	} else {
		window = []T{}
	}

	return Page[T]{
		Items:      window,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
