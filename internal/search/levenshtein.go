package search

import "unicode/utf8"

// Levenshtein returns the unit-cost edit distance between a and b, counted in runes.
//
// The table is (len(a)+1) x (len(b)+1), stored flat and indexed row*width+col.
// Row 0 and column 0 hold 0..len and every other cell is the minimum of
// up+1, left+1 and diagonal+cost.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	rows, width := len(ra)+1, len(rb)+1

	d := make([]int, rows*width)
	for i := 0; i < rows; i++ {
		d[i*width] = i
	}
	for j := 0; j < width; j++ {
		d[j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < width; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i*width+j] = min(
				d[(i-1)*width+j]+1,
				d[i*width+j-1]+1,
				d[(i-1)*width+j-1]+cost,
			)
		}
	}
	return d[rows*width-1]
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
