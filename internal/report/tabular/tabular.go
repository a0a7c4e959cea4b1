// Package tabular is the shared query engine behind every report endpoint:
// a chain of AND-combined predicates over rows already loaded into memory,
// one active (key, direction) sort, and fixed-size pagination.
package tabular

import (
	"sort"
	"strings"
	"time"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort is the single active sort state. Selecting the active key again flips
// the direction; selecting a different key resets to ascending.
type Sort struct {
	Key       string
	Direction Direction
}

func (s Sort) Select(key string) Sort {
	if s.Key == key {
		if s.Direction == Ascending {
			return Sort{Key: key, Direction: Descending}
		}
		return Sort{Key: key, Direction: Ascending}
	}
	return Sort{Key: key, Direction: Ascending}
}

type Predicate[T any] func(T) bool

// Filter applies every predicate conjunctively. Nil predicates are treated as
// unconstrained so callers can pass "All X" sentinels straight through.
func Filter[T any](rows []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(rows))
rows:
	for _, row := range rows {
		for _, p := range preds {
			if p != nil && !p(row) {
				continue rows
			}
		}
		out = append(out, row)
	}
	return out
}

// Comparator reports the order of a before b: negative, zero, or positive.
type Comparator[T any] func(a, b T) int

// Order returns a sorted copy of rows. The sort is stable; ties keep their
// input order regardless of direction.
func Order[T any](rows []T, cmp Comparator[T], dir Direction) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

func ByFloat[T any](field func(T) float64) Comparator[T] {
	return func(a, b T) int {
		fa, fb := field(a), field(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
}

func ByTime[T any](field func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		return field(a).Compare(field(b))
	}
}

// TextSearch matches the query case-insensitively as a substring across the
// given fields. An empty query matches everything.
func TextSearch[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(row T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(row)), q) {
				return true
			}
		}
		return false
	}
}

// FieldEquals constrains a field to the selected value. Empty or "all"
// selections mean no constraint.
func FieldEquals[T any](want string, field func(T) string) Predicate[T] {
	if want == "" || strings.EqualFold(want, "all") {
		return nil
	}
	return func(row T) bool {
		return strings.EqualFold(field(row), want)
	}
}

// WithinDays keeps rows whose timestamp is on or after now minus the given
// number of days. Zero or negative days means no constraint.
func WithinDays[T any](now time.Time, days int, field func(T) time.Time) Predicate[T] {
	if days <= 0 {
		return nil
	}
	cutoff := now.AddDate(0, 0, -days)
	return func(row T) bool {
		return !field(row).Before(cutoff)
	}
}

type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices rows into the requested page. The page number is clamped to
// [1, totalPages]; an empty input yields a single empty page.
func Paginate[T any](rows []T, page, size int) Page[T] {
	if size <= 0 {
		size = 10
	}
	totalPages := (len(rows) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	first := (page - 1) * size
	last := first + size
	if last > len(rows) {
		last = len(rows)
	}
	items := make([]T, last-first)
	copy(items, rows[first:last])
	return Page[T]{
		Items:      items,
		Number:     page,
		Size:       size,
		TotalItems: len(rows),
		TotalPages: totalPages,
	}
}
