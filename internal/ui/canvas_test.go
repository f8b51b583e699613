package ui

import (
	"strings"
	"testing"
)

func TestOverlayCenterReplacesMiddleCells(t *testing.T) {
	got := overlayCenter("aaaa\nbbbb\ncccc", "X", 4, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "aaaa") || !strings.Contains(lines[2], "cccc") {
		t.Fatalf("expected base rows untouched, got %q", got)
	}
	if !strings.Contains(lines[1], "bXbb") {
		t.Fatalf("expected overlay in the middle row, got %q", lines[1])
	}
}

func TestOverlayCenterCropsToFrame(t *testing.T) {
	got := overlayCenter("", "one\ntwo\nthree\nfour", 5, 2)
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Fatalf("expected overlay cropped to 2 rows, got %q", got)
	}
}

func TestOverlayCenterWithoutSize(t *testing.T) {
	if got := overlayCenter("base", "top", 0, 0); got != "top" {
		t.Fatalf("expected overlay alone when size unknown, got %q", got)
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth([]string{"ab", "\x1b[1mabcd\x1b[0m", "é"}); got != 4 {
		t.Fatalf("expected widest visible line 4, got %d", got)
	}
}
