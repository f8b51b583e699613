package ui

import (
	"strings"

	"drawer/internal/ui/theme"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// styles is rebuilt whenever the active theme changes.
type styles struct {
	header    lipgloss.Style
	count     lipgloss.Style
	prompt    lipgloss.Style
	name      lipgloss.Style
	selected  lipgloss.Style
	match     lipgloss.Style
	cursor    lipgloss.Style
	pkg       lipgloss.Style
	empty     lipgloss.Style
	pane      lipgloss.Style
	helpBox   lipgloss.Style
	helpTitle lipgloss.Style
	status    lipgloss.Style
	errorText lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	p := t.Palette
	return styles{
		header: lipgloss.NewStyle().
			Foreground(p.Selected).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),
		count:  lipgloss.NewStyle().Foreground(p.TextMuted).Padding(0, 1),
		prompt: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		name:   lipgloss.NewStyle().Foreground(p.Text),
		selected: lipgloss.NewStyle().
			Foreground(p.SelectedText).
			Background(p.Selected).
			Bold(true),
		match:  lipgloss.NewStyle().Foreground(p.Match).Bold(true).Underline(true),
		cursor: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		pkg:    lipgloss.NewStyle().Foreground(p.TextMuted),
		empty:  lipgloss.NewStyle().Foreground(p.TextMuted).Italic(true),
		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		helpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		helpTitle: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		status:    lipgloss.NewStyle().Foreground(p.Success),
		errorText: lipgloss.NewStyle().Foreground(p.Error).Bold(true),
	}
}

// buildMarkdownRenderer returns a markdown-to-terminal function for the
// configured output format. "plain" and renderer failures fall back to word wrap.
func buildMarkdownRenderer(format string, width int) func(string) string {
	if width < 1 {
		width = 1
	}
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
