// Package theme holds the color palettes for the drawer UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of semantic colors a theme provides.
// Every color is adaptive so light terminals get a readable variant.
type Palette struct {
	Accent       lipgloss.AdaptiveColor // search prompt, header, focused border
	Match        lipgloss.AdaptiveColor // highlighted query characters
	Text         lipgloss.AdaptiveColor
	TextMuted    lipgloss.AdaptiveColor // package names, hints, help
	Selected     lipgloss.AdaptiveColor // selected row background
	SelectedText lipgloss.AdaptiveColor
	Border       lipgloss.AdaptiveColor
	Error        lipgloss.AdaptiveColor
	Success      lipgloss.AdaptiveColor
}

// Theme is a named palette.
type Theme struct {
	Name string
	Palette
}
