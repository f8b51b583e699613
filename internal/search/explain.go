package search

// StrategyNone is reported by Explain when no tier matched.
const StrategyNone = "none"

// Match describes how a single name was scored.
type Match struct {
	Name       string // display name as given
	Normalized string
	Query      string // normalized query
	Strategy   string
	Score      int
}

// Explain scores one display name against a raw query and reports which tier won.
// It follows the same rules as Search; a blank query yields StrategyNone.
func Explain(name, query string) Match {
	m := Match{Name: name, Normalized: Normalize(name), Strategy: StrategyNone}
	if isBlank(query) {
		return m
	}
	m.Query = Normalize(query)
	if strategy, score := evaluate(DefaultStrategies, m.Normalized, m.Query); score > 0 {
		m.Strategy = strategy
		m.Score = score
	}
	return m
}

// ExplainAll returns an explanation for every ranked result of Search, in result
// order. A blank query explains nothing.
func ExplainAll[T Candidate](candidates []T, query string) []Match {
	if isBlank(query) {
		return nil
	}
	ranked := Search(candidates, query)
	out := make([]Match, len(ranked))
	for i, c := range ranked {
		out[i] = Explain(c.DisplayName(), query)
	}
	return out
}
