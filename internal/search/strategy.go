package search

import (
	"math"
	"strings"
)

// Tier scores. A higher tier always wins over a lower one for the same name, but
// the word tier accumulates and can exceed ScoreContains for long multi-word names.
const (
	ScoreExact       = 1000
	ScorePrefix      = 500
	ScoreContains    = 250
	ScoreSubsequence = 100

	WordPrefixPoints   = 50
	WordContainsPoints = 25

	// FuzzyThreshold is exclusive: a similarity of exactly 60 is not a match.
	FuzzyThreshold = 60
)

// Strategy is one ranking tier. Eval receives a normalized name and a normalized
// query and returns 0 when the tier does not apply.
type Strategy struct {
	Name string
	Eval func(name, query string) int
}

// DefaultStrategies lists the tiers in precedence order. Score stops at the first
// one that returns a non-zero value.
var DefaultStrategies = []Strategy{
	{Name: "exact", Eval: exactMatch},
	{Name: "prefix", Eval: prefixMatch},
	{Name: "contains", Eval: containsMatch},
	{Name: "subsequence", Eval: subsequenceMatch},
	{Name: "words", Eval: wordMatch},
	{Name: "fuzzy", Eval: fuzzyMatch},
}

// Score returns the ranking score of a normalized name for a normalized query.
// Zero means no match.
func Score(name, query string) int {
	_, score := evaluate(DefaultStrategies, name, query)
	return score
}

func evaluate(strategies []Strategy, name, query string) (string, int) {
	for _, s := range strategies {
		if score := s.Eval(name, query); score > 0 {
			return s.Name, score
		}
	}
	return "", 0
}

func exactMatch(name, query string) int {
	if name == query {
		return ScoreExact
	}
	return 0
}

func prefixMatch(name, query string) int {
	if strings.HasPrefix(name, query) {
		return ScorePrefix
	}
	return 0
}

func containsMatch(name, query string) int {
	if strings.Contains(name, query) {
		return ScoreContains
	}
	return 0
}

func subsequenceMatch(name, query string) int {
	if containsInOrder(name, query) {
		return ScoreSubsequence
	}
	return 0
}

// containsInOrder scans target once, advancing through query on each equal byte.
// It is greedy and never backtracks.
func containsInOrder(target, query string) bool {
	qi := 0
	for i := 0; i < len(target) && qi < len(query); i++ {
		if target[i] == query[qi] {
			qi++
		}
	}
	return qi == len(query)
}

// wordMatch sums points over every (query word, name word) pair.
func wordMatch(name, query string) int {
	nameWords := strings.Split(name, " ")
	total := 0
	for _, qw := range strings.Split(query, " ") {
		if qw == "" {
			continue
		}
		for _, nw := range nameWords {
			switch {
			case strings.HasPrefix(nw, qw):
				total += WordPrefixPoints
			case strings.Contains(nw, qw):
				total += WordContainsPoints
			}
		}
	}
	return total
}

func fuzzyMatch(name, query string) int {
	if sim := Similarity(name, query); sim > FuzzyThreshold {
		return sim
	}
	return 0
}

// Similarity is the Levenshtein similarity of a and b as a rounded percentage
// of the longer string's length. Either string being empty yields 0.
func Similarity(a, b string) int {
	la, lb := runeLen(a), runeLen(b)
	if la == 0 || lb == 0 {
		return 0
	}
	maxLen := max(la, lb)
	distance := Levenshtein(a, b)
	return int(math.Round(100 * float64(maxLen-distance) / float64(maxLen)))
}
