// Package search ranks app catalog entries against a query typed into the drawer.
//
// Ranking is a pure function of (candidates, query). Names and the query are first
// normalized (lowercase, ASCII letters and digits, single spaces), then each name is
// scored by the first matching strategy in a fixed order:
//
//	exact        1000
//	prefix        500
//	contains      250
//	subsequence   100
//	words         50 per word-prefix hit, 25 per word-substring hit
//	fuzzy         Levenshtein similarity percentage, only when above 60
//
// Zero-scored names are dropped and the rest are stably sorted by score, so equal
// scores keep the caller's order. A blank query returns the input untouched.
//
// Nothing is cached between calls and no state is shared, so Search may be called
// from any goroutine.
package search
