package search

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Highlight returns the rune positions in name worth emphasizing for query.
// It is presentation only; ranking never consults it. Nil means nothing to mark.
func Highlight(name, query string) []int {
	pattern := strings.ReplaceAll(Normalize(query), " ", "")
	if pattern == "" || name == "" {
		return nil
	}

	matches := fuzzy.Find(pattern, []string{name})
	if len(matches) == 0 {
		return nil
	}
	return byteToRuneIndexes(name, matches[0].MatchedIndexes)
}

// byteToRuneIndexes converts byte offsets into name to rune positions.
func byteToRuneIndexes(name string, offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	want := make(map[int]struct{}, len(offsets))
	for _, off := range offsets {
		want[off] = struct{}{}
	}
	out := make([]int, 0, len(offsets))
	ri := 0
	for bi := 0; bi < len(name); {
		if _, ok := want[bi]; ok {
			out = append(out, ri)
		}
		_, size := utf8.DecodeRuneInString(name[bi:])
		bi += size
		ri++
	}
	return out
}
