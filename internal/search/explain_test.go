package search

import "testing"

func TestExplain(t *testing.T) {
	m := Explain("Google Maps", "  MAPS ")
	if m.Normalized != "google maps" || m.Query != "maps" {
		t.Fatalf("unexpected normalization: %+v", m)
	}
	if m.Strategy != "contains" || m.Score != ScoreContains {
		t.Fatalf("expected contains/%d, got %s/%d", ScoreContains, m.Strategy, m.Score)
	}

	none := Explain("Camera", "cal")
	if none.Strategy != StrategyNone || none.Score != 0 {
		t.Fatalf("expected no match, got %+v", none)
	}

	blank := Explain("Camera", "   ")
	if blank.Strategy != StrategyNone || blank.Query != "" {
		t.Fatalf("expected blank query to explain nothing, got %+v", blank)
	}
}

func TestExplainAll(t *testing.T) {
	got := ExplainAll(apps("Camera", "Calculator", "Calendar"), "cal")
	if len(got) != 2 {
		t.Fatalf("expected 2 explanations, got %d", len(got))
	}
	if got[0].Name != "Calculator" || got[1].Name != "Calendar" {
		t.Fatalf("unexpected order: %+v", got)
	}
	for _, m := range got {
		if m.Strategy != "prefix" {
			t.Fatalf("expected prefix, got %+v", m)
		}
	}
	if ExplainAll(apps("Camera"), "") != nil {
		t.Fatal("expected nil for blank query")
	}
}
