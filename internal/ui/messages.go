package ui

import (
	"context"
	"fmt"
	"strings"

	"drawer/internal/catalog"
	"drawer/internal/debug"
	"drawer/internal/launch"
	"drawer/internal/search"

	tea "github.com/charmbracelet/bubbletea"
)

type searchResultMsg struct {
	seq     int
	query   string
	results []catalog.App
}

type launchResultMsg struct {
	app catalog.App
	err error
}

// searchCmd ranks candidates off the UI goroutine.
func searchCmd(seq int, candidates []catalog.App, query string) tea.Cmd {
	return func() tea.Msg {
		done := debug.Timed(fmt.Sprintf("ui: search %q over %d apps", query, len(candidates)))
		results := search.Search(candidates, query)
		done()
		logTopMatch(query, results)
		return searchResultMsg{seq: seq, query: query, results: results}
	}
}

func logTopMatch(query string, results []catalog.App) {
	if !debug.Enabled() {
		return
	}
	if len(results) == 0 {
		debug.Logf("ui: %q matched nothing", query)
		return
	}
	top := search.Explain(results[0].Name, query)
	debug.Logf("ui: %q matched %d apps, top %q via %s (%d)",
		query, len(results), top.Name, top.Strategy, top.Score)
}

func launchCmd(l launch.Launcher, app catalog.App) tea.Cmd {
	return func() tea.Msg {
		return launchResultMsg{app: app, err: l.Launch(context.Background(), app)}
	}
}

// onQueryChanged starts a new search generation for the input's value.
// A blank query restores the full list at once.
func (m *App) onQueryChanged() tea.Cmd {
	m.searchSeq++
	m.clearStatus()
	query := m.input.Value()
	if strings.TrimSpace(query) == "" {
		m.setResults(query, m.apps)
		return nil
	}
	return searchCmd(m.searchSeq, m.candidates(), query)
}
