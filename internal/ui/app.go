package ui

import (
	"errors"

	"drawer/internal/catalog"
	"drawer/internal/config"
	"drawer/internal/debug"
	"drawer/internal/launch"
	"drawer/internal/search"
	"drawer/internal/ui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// detailMinWidth is the narrowest terminal that still gets a detail pane.
	detailMinWidth = 72
)

// ErrNoApps is returned by NewApp when the catalog is empty.
var ErrNoApps = errors.New("no apps to show: the catalog is empty")

// Config holds the data and collaborators the drawer needs.
type Config struct {
	Apps          []catalog.App
	Launcher      launch.Launcher
	OutputFormat  string // detail pane style: rich, light or plain
	Version       string // shown in the header
	MaxCandidates int    // 0 means every app is searched
	InitialQuery  string
}

// App implements the Bubble Tea model for the drawer.
type App struct {
	apps    []catalog.App
	results []catalog.App
	query   string // the query results were computed for
	cursor  int
	offset  int

	input    textinput.Model
	help     help.Model
	keys     KeyMap
	showHelp bool

	// searchSeq increases on every query change; results carrying an older
	// sequence number are dropped.
	searchSeq     int
	maxCandidates int

	launcher launch.Launcher
	launched *catalog.App
	lastErr  error

	outputFormat   string
	renderMarkdown func(string) string
	rendererWidth  int
	styles         styles
	version        string

	status      string
	statusIsErr bool

	width  int
	height int

	copyFn      func(string) error
	saveThemeFn func(string) error
}

// NewApp builds the model. The search box starts focused and, when
// InitialQuery is set, already filtered.
func NewApp(cfg Config) (*App, error) {
	if len(cfg.Apps) == 0 {
		return nil, ErrNoApps
	}
	launcher := cfg.Launcher
	if launcher == nil {
		launcher = launch.NewExecLauncher()
	}

	app := &App{
		apps:          cfg.Apps,
		results:       cfg.Apps,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		maxCandidates: max(cfg.MaxCandidates, 0),
		launcher:      launcher,
		outputFormat:  cfg.OutputFormat,
		version:       cfg.Version,
		width:         defaultWidth,
		height:        defaultHeight,
		copyFn:        clipboard.WriteAll,
		saveThemeFn:   config.SaveTheme,
	}
	app.styles = newStyles(theme.Current())

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "Search apps"
	ti.PromptStyle = app.styles.prompt
	ti.Focus()
	app.input = ti

	if cfg.InitialQuery != "" {
		app.input.SetValue(cfg.InitialQuery)
		app.setResults(cfg.InitialQuery, search.Search(app.candidates(), cfg.InitialQuery))
	}
	debug.Logf("ui: drawer ready with %d apps", len(app.apps))
	return app, nil
}

func (m *App) Init() tea.Cmd {
	return textinput.Blink
}

// Launched returns the app started with Enter, if any.
func (m *App) Launched() (catalog.App, bool) {
	if m.launched == nil {
		return catalog.App{}, false
	}
	return *m.launched, true
}

// Err returns the most recent launch failure.
func (m *App) Err() error {
	return m.lastErr
}

// Results returns the currently displayed apps in ranked order.
func (m *App) Results() []catalog.App {
	return m.results
}

// Query returns the query the displayed results belong to.
func (m *App) Query() string {
	return m.query
}

// candidates is the slice handed to the engine, capped at maxCandidates.
func (m *App) candidates() []catalog.App {
	if m.maxCandidates > 0 && len(m.apps) > m.maxCandidates {
		return m.apps[:m.maxCandidates]
	}
	return m.apps
}

func (m *App) setResults(query string, results []catalog.App) {
	m.query = query
	m.results = results
	m.cursor = 0
	m.offset = 0
}

func (m *App) selected() (catalog.App, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return catalog.App{}, false
	}
	return m.results[m.cursor], true
}

func (m *App) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

func (m *App) clearStatus() {
	m.status = ""
	m.statusIsErr = false
}
