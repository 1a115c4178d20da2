package client

import "strings"

// Filter projects rows down to those whose searchable text contains term
// (case-insensitive) and that satisfy match. Both predicates are ANDed.
// The source slice is never mutated; an empty term matches everything, as
// does a nil match.
func Filter[T any](rows []T, term string, text func(T) []string, match func(T) bool) []T {
	term = strings.ToLower(term)
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if match != nil && !match(row) {
			continue
		}
		if term != "" && text != nil && !containsTerm(text(row), term) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func containsTerm(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
