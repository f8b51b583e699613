package theme

import "github.com/charmbracelet/lipgloss"

func init() {
	// tokyonight is registered first so it is active until config says otherwise.
	Register(Theme{Name: "tokyonight", Palette: tokyoNight})
	Register(Theme{Name: "nord", Palette: nordPalette})
	Register(Theme{Name: "gruvbox", Palette: gruvbox})
}

var tokyoNight = Palette{
	Accent:       lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
	Match:        lipgloss.AdaptiveColor{Dark: "#ff966c", Light: "#b15c00"},
	Text:         lipgloss.AdaptiveColor{Dark: "#c8d3f5", Light: "#3760bf"},
	TextMuted:    lipgloss.AdaptiveColor{Dark: "#636da6", Light: "#848cb5"},
	Selected:     lipgloss.AdaptiveColor{Dark: "#2f334d", Light: "#c8c9ce"},
	SelectedText: lipgloss.AdaptiveColor{Dark: "#ffc777", Light: "#8c6c3e"},
	Border:       lipgloss.AdaptiveColor{Dark: "#3b4261", Light: "#a8aecb"},
	Error:        lipgloss.AdaptiveColor{Dark: "#ff757f", Light: "#f52a65"},
	Success:      lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
}

// https://www.nordtheme.com/docs/colors-and-palettes
var nordPalette = Palette{
	Accent:       lipgloss.AdaptiveColor{Dark: "#88C0D0", Light: "#5E81AC"},
	Match:        lipgloss.AdaptiveColor{Dark: "#EBCB8B", Light: "#D08770"},
	Text:         lipgloss.AdaptiveColor{Dark: "#ECEFF4", Light: "#2E3440"},
	TextMuted:    lipgloss.AdaptiveColor{Dark: "#4C566A", Light: "#4C566A"},
	Selected:     lipgloss.AdaptiveColor{Dark: "#3B4252", Light: "#E5E9F0"},
	SelectedText: lipgloss.AdaptiveColor{Dark: "#8FBCBB", Light: "#5E81AC"},
	Border:       lipgloss.AdaptiveColor{Dark: "#434C5E", Light: "#D8DEE9"},
	Error:        lipgloss.AdaptiveColor{Dark: "#BF616A", Light: "#BF616A"},
	Success:      lipgloss.AdaptiveColor{Dark: "#A3BE8C", Light: "#A3BE8C"},
}

var gruvbox = Palette{
	Accent:       lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
	Match:        lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
	Text:         lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"},
	TextMuted:    lipgloss.AdaptiveColor{Dark: "#928374", Light: "#7c6f64"},
	Selected:     lipgloss.AdaptiveColor{Dark: "#3c3836", Light: "#ebdbb2"},
	SelectedText: lipgloss.AdaptiveColor{Dark: "#fe8019", Light: "#af3a03"},
	Border:       lipgloss.AdaptiveColor{Dark: "#504945", Light: "#d5c4a1"},
	Error:        lipgloss.AdaptiveColor{Dark: "#fb4934", Light: "#9d0006"},
	Success:      lipgloss.AdaptiveColor{Dark: "#b8bb26", Light: "#79740e"},
}
