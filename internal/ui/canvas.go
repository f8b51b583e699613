package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// canvas composes rendered strings into a cell buffer so an overlay can be
// drawn on top of the main view without disturbing the cells around it.
type canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	width = max(width, 1)
	height = max(height, 1)
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// drawAt writes a block of lines with its top-left corner at x,y, cropping
// anything that falls outside the canvas.
func (c *canvas) drawAt(x, y int, block string) {
	for i, line := range splitLines(block) {
		row := y + i
		if row >= c.height {
			break
		}
		if row < 0 || line == "" {
			continue
		}
		c.writer.PrintCropAt(max(x, 0), row, line, "")
	}
}

// center draws block in the middle of the canvas.
func (c *canvas) center(block string) {
	lines := splitLines(block)
	if len(lines) == 0 {
		return
	}
	w := min(maxLineWidth(lines), c.width)
	x := (c.width - w) / 2
	y := max((c.height-len(lines))/2, 0)
	c.drawAt(x, y, block)
}

// render returns the frame as newline-delimited text and releases the screen.
func (c *canvas) render() string {
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

// overlayCenter draws overlay centered over base in a width×height frame.
func overlayCenter(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		return overlay
	}
	c := newCanvas(width, height)
	c.drawAt(0, 0, base)
	c.center(overlay)
	return c.render()
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}
