package search

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"photos", "fotos", 2},
		{"camera", "cal", 4},
		{"café", "cafe", 1},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinMetric(t *testing.T) {
	words := []string{"", "a", "maps", "mail", "photos", "fotos", "calendar", "calculator", "whatsapp"}

	for _, s := range words {
		if d := Levenshtein(s, s); d != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, d)
		}
	}
	for _, a := range words {
		for _, b := range words {
			ab, ba := Levenshtein(a, b), Levenshtein(b, a)
			if ab != ba {
				t.Errorf("not symmetric: d(%q,%q)=%d d(%q,%q)=%d", a, b, ab, b, a, ba)
			}
			for _, c := range words {
				if ac, cb := Levenshtein(a, c), Levenshtein(c, b); ab > ac+cb {
					t.Errorf("triangle inequality broken for %q %q %q: %d > %d+%d", a, b, c, ab, ac, cb)
				}
			}
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 0},
		{"abc", "", 0},
		{"abc", "abc", 100},
		{"photos", "fotos", 67},
		{"abc", "abd", 67}, // 66.67 rounds up
		{"hello", "hxxlo", 60},
	}
	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); got != tt.want {
			t.Errorf("Similarity(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
