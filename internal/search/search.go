package search

import "slices"

// Candidate is anything with a display name that can be ranked.
type Candidate interface {
	DisplayName() string
}

// Search ranks candidates by how well their display names match query.
//
// A blank query (empty or whitespace only) returns candidates itself, unfiltered and
// in input order. Otherwise the result is a new slice holding only matching
// candidates, best first; equal scores keep their input order. The input slice and
// its elements are never modified.
func Search[T Candidate](candidates []T, query string) []T {
	return SearchFunc(candidates, query, func(c T) string { return c.DisplayName() })
}

// SearchFunc is Search for records that do not implement Candidate; name returns
// the text to match.
func SearchFunc[T any](items []T, query string, name func(T) string) []T {
	if isBlank(query) {
		return items
	}

	q := Normalize(query)
	type scored struct {
		item  T
		score int
	}
	hits := make([]scored, 0, len(items))
	for _, item := range items {
		if s := Score(Normalize(name(item)), q); s > 0 {
			hits = append(hits, scored{item: item, score: s})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return b.score - a.score
	})

	out := make([]T, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}
