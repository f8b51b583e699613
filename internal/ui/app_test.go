package ui

import (
	"context"
	"errors"
	"testing"

	"drawer/internal/catalog"
	appErrors "drawer/internal/errors"
	"drawer/internal/launch"
	"drawer/internal/ui/theme"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func testApps() []catalog.App {
	return []catalog.App{
		{ID: "1", Package: "org.example.calculator", Name: "Calculator", Description: "Adds numbers."},
		{ID: "2", Package: "org.example.calendar", Name: "Calendar", Description: "Keeps dates."},
		{ID: "3", Package: "org.example.camera", Name: "Camera", Exec: "camera --fast"},
		{ID: "4", Package: "org.example.maps", Name: "Maps"},
		{ID: "5", Package: "org.example.mail", Name: "Mail"},
	}
}

func newTestApp(t *testing.T, cfg Config) (*App, *launch.MockLauncher) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	if cfg.Apps == nil {
		cfg.Apps = testApps()
	}
	mock := launch.NewMockLauncher()
	if cfg.Launcher == nil {
		cfg.Launcher = mock
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "plain"
	}
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.input.Cursor.SetMode(cursor.CursorStatic)
	app.copyFn = func(string) error { return nil }
	app.saveThemeFn = func(string) error { return nil }
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return app, mock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain runs cmd and any batched commands, returning the messages produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send delivers msg and feeds every resulting message back into the model.
func send(app *App, msg tea.Msg) []tea.Msg {
	_, cmd := app.Update(msg)
	var produced []tea.Msg
	for _, m := range drain(cmd) {
		produced = append(produced, m)
		_, next := app.Update(m)
		produced = append(produced, drain(next)...)
	}
	return produced
}

func resultNames(app *App) []string {
	names := make([]string, len(app.Results()))
	for i, a := range app.Results() {
		names[i] = a.Name
	}
	return names
}

func assertResultNames(t *testing.T, app *App, want ...string) {
	t.Helper()
	got := resultNames(app)
	if len(got) != len(want) {
		t.Fatalf("expected results %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected results %v, got %v", want, got)
		}
	}
}

func hasQuit(msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func TestNewAppRequiresApps(t *testing.T) {
	_, err := NewApp(Config{})
	if !errors.Is(err, ErrNoApps) {
		t.Fatalf("expected ErrNoApps, got %v", err)
	}
}

func TestNewAppShowsFullListInCatalogOrder(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	assertResultNames(t, app, "Calculator", "Calendar", "Camera", "Maps", "Mail")
	if app.Query() != "" {
		t.Fatalf("expected empty query, got %q", app.Query())
	}
}

func TestNewAppAppliesInitialQuery(t *testing.T) {
	app, _ := newTestApp(t, Config{InitialQuery: "ma"})
	assertResultNames(t, app, "Maps", "Mail", "Camera")
	if app.input.Value() != "ma" {
		t.Fatalf("expected search box to hold the initial query, got %q", app.input.Value())
	}
}

func TestTypingRanksResults(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	send(app, runes("cal"))
	assertResultNames(t, app, "Calculator", "Calendar")
	if app.Query() != "cal" {
		t.Fatalf("expected query cal, got %q", app.Query())
	}
}

func TestStaleSearchResultsAreDropped(t *testing.T) {
	app, _ := newTestApp(t, Config{})

	_, first := app.Update(runes("m"))
	_, second := app.Update(runes("a"))
	if app.input.Value() != "ma" {
		t.Fatalf("expected input ma, got %q", app.input.Value())
	}

	// Deliver the newer generation first, then the superseded one.
	for _, msg := range drain(second) {
		app.Update(msg)
	}
	for _, msg := range drain(first) {
		app.Update(msg)
	}

	if app.Query() != "ma" {
		t.Fatalf("expected results for ma to survive, got results for %q", app.Query())
	}
	assertResultNames(t, app, "Maps", "Mail", "Camera")
}

func TestEscapeRestoresFullList(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	send(app, runes("cal"))
	send(app, tea.KeyMsg{Type: tea.KeyEsc})

	if app.input.Value() != "" {
		t.Fatalf("expected search box cleared, got %q", app.input.Value())
	}
	assertResultNames(t, app, "Calculator", "Calendar", "Camera", "Maps", "Mail")
}

func TestDeletingQueryRestoresFullList(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	send(app, runes("ma"))
	send(app, tea.KeyMsg{Type: tea.KeyBackspace})
	send(app, tea.KeyMsg{Type: tea.KeyBackspace})

	assertResultNames(t, app, "Calculator", "Calendar", "Camera", "Maps", "Mail")
}

func TestNoMatchesShowsEmptyList(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	send(app, runes("zzzzqqq"))
	if len(app.Results()) != 0 {
		t.Fatalf("expected no results, got %v", resultNames(app))
	}
	msgs := send(app, tea.KeyMsg{Type: tea.KeyEnter})
	if len(msgs) != 0 {
		t.Fatalf("expected enter with no selection to do nothing, got %v", msgs)
	}
}

func TestMaxCandidatesCapsSearch(t *testing.T) {
	app, _ := newTestApp(t, Config{MaxCandidates: 2})
	send(app, runes("ma"))
	// Only Calculator and Calendar are searched; neither contains "ma".
	if len(app.Results()) != 0 {
		t.Fatalf("expected capped search to find nothing, got %v", resultNames(app))
	}

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	if len(app.Results()) != 5 {
		t.Fatalf("expected clearing to restore every app, got %v", resultNames(app))
	}
}

func TestCursorMovementClamps(t *testing.T) {
	app, _ := newTestApp(t, Config{})

	send(app, tea.KeyMsg{Type: tea.KeyUp})
	if app.cursor != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d", app.cursor)
	}
	for range 10 {
		send(app, tea.KeyMsg{Type: tea.KeyDown})
	}
	if app.cursor != 4 {
		t.Fatalf("expected cursor clamped to last row, got %d", app.cursor)
	}
	send(app, tea.KeyMsg{Type: tea.KeyCtrlP})
	if app.cursor != 3 {
		t.Fatalf("expected ctrl+p to move up, got %d", app.cursor)
	}
	send(app, tea.KeyMsg{Type: tea.KeyCtrlN})
	if app.cursor != 4 {
		t.Fatalf("expected ctrl+n to move down, got %d", app.cursor)
	}
}

func TestCursorResetsOnNewResults(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	send(app, tea.KeyMsg{Type: tea.KeyDown})
	send(app, runes("cal"))
	if app.cursor != 0 {
		t.Fatalf("expected cursor reset to top, got %d", app.cursor)
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	apps := make([]catalog.App, 30)
	for i := range apps {
		apps[i] = catalog.App{Package: "p", Name: "App"}
	}
	app, _ := newTestApp(t, Config{Apps: apps})
	app.Update(tea.WindowSizeMsg{Width: 60, Height: 8}) // 5 rows

	for range 7 {
		send(app, tea.KeyMsg{Type: tea.KeyDown})
	}
	if app.cursor != 7 || app.offset != 3 {
		t.Fatalf("expected cursor 7 offset 3, got cursor %d offset %d", app.cursor, app.offset)
	}
	for range 7 {
		send(app, tea.KeyMsg{Type: tea.KeyUp})
	}
	if app.offset != 0 {
		t.Fatalf("expected offset back at 0, got %d", app.offset)
	}
}

func TestEnterLaunchesSelectedAppAndQuits(t *testing.T) {
	app, mock := newTestApp(t, Config{})
	send(app, runes("cal"))
	send(app, tea.KeyMsg{Type: tea.KeyDown})
	msgs := send(app, tea.KeyMsg{Type: tea.KeyEnter})

	calls := mock.Calls()
	if len(calls) != 1 || calls[0].Name != "Calendar" {
		t.Fatalf("expected Calendar launched once, got %+v", calls)
	}
	if !hasQuit(msgs) {
		t.Fatalf("expected quit after launch, got %v", msgs)
	}
	launched, ok := app.Launched()
	if !ok || launched.Package != "org.example.calendar" {
		t.Fatalf("expected Launched to report calendar, got %+v %v", launched, ok)
	}
}

func TestLaunchFailureKeepsDrawerOpen(t *testing.T) {
	mock := launch.NewMockLauncher()
	mock.LaunchFn = func(context.Context, catalog.App) error {
		return appErrors.New(appErrors.CodeLaunchUnsupported, "org.example.calculator has no exec command", nil)
	}
	app, _ := newTestApp(t, Config{Launcher: mock})

	msgs := send(app, tea.KeyMsg{Type: tea.KeyEnter})
	if hasQuit(msgs) {
		t.Fatalf("expected drawer to stay open after a failed launch")
	}
	if !appErrors.IsCode(app.Err(), appErrors.CodeLaunchUnsupported) {
		t.Fatalf("expected launch_unsupported, got %v", app.Err())
	}
	if _, ok := app.Launched(); ok {
		t.Fatalf("expected no launched app")
	}
	if !app.statusIsErr || app.status == "" {
		t.Fatalf("expected error status, got %q", app.status)
	}
}

func TestCopyWritesPackageName(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	var copied string
	app.copyFn = func(s string) error {
		copied = s
		return nil
	}
	send(app, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "org.example.calculator" {
		t.Fatalf("expected package copied, got %q", copied)
	}
	if app.status != "Copied 'org.example.calculator' to clipboard." {
		t.Fatalf("unexpected status %q", app.status)
	}

	app.copyFn = func(string) error { return errors.New("no clipboard") }
	send(app, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !app.statusIsErr {
		t.Fatalf("expected copy failure to be reported")
	}
}

func TestThemeCycleSavesChoice(t *testing.T) {
	t.Cleanup(func() { theme.Set("tokyonight") })
	theme.Set("tokyonight")

	app, _ := newTestApp(t, Config{})
	var saved string
	app.saveThemeFn = func(name string) error {
		saved = name
		return nil
	}
	send(app, tea.KeyMsg{Type: tea.KeyCtrlT})

	if saved == "" || saved == "tokyonight" {
		t.Fatalf("expected a new theme to be saved, got %q", saved)
	}
	if theme.CurrentName() != saved {
		t.Fatalf("expected active theme %q, got %q", saved, theme.CurrentName())
	}
}

func TestHelpToggleSwallowsKeys(t *testing.T) {
	app, _ := newTestApp(t, Config{})
	send(app, runes("?"))
	if !app.showHelp {
		t.Fatalf("expected help to open")
	}
	send(app, runes("x"))
	if app.input.Value() != "" {
		t.Fatalf("expected keys to be ignored while help is open, got %q", app.input.Value())
	}
	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.showHelp {
		t.Fatalf("expected esc to close help")
	}
}

func TestCtrlCQuits(t *testing.T) {
	app, mock := newTestApp(t, Config{})
	msgs := send(app, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !hasQuit(msgs) {
		t.Fatalf("expected ctrl+c to quit")
	}
	if len(mock.Calls()) != 0 {
		t.Fatalf("expected nothing launched")
	}
}
