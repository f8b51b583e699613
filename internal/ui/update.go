package ui

import (
	"fmt"

	"drawer/internal/debug"
	"drawer/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-lenPrompt(m.input.Prompt)-1, 1)
		m.ensureCursorVisible()
		return m, nil

	case searchResultMsg:
		if msg.seq != m.searchSeq {
			debug.Logf("ui: dropping stale results for %q", msg.query)
			return m, nil
		}
		m.setResults(msg.query, msg.results)
		return m, nil

	case launchResultMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			m.setStatus(msg.err.Error(), true)
			debug.Logf("ui: launch of %s failed: %v", msg.app.Package, msg.err)
			return m, nil
		}
		app := msg.app
		m.launched = &app
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Clear) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Launch):
		app, ok := m.selected()
		if !ok {
			return m, nil
		}
		debug.Logf("ui: launching %s", app.Package)
		return m, launchCmd(m.launcher, app)
	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		if m.input.Value() == "" {
			return m, nil
		}
		m.input.SetValue("")
		return m, m.onQueryChanged()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.onQueryChanged())
	}
	return m, cmd
}

func (m *App) moveCursor(delta int) {
	if len(m.results) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.results)-1)
	m.ensureCursorVisible()
}

func (m *App) ensureCursorVisible() {
	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}

func (m *App) copySelected() {
	app, ok := m.selected()
	if !ok {
		return
	}
	if err := m.copyFn(app.Package); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("Copied '%s' to clipboard.", app.Package), false)
}

func (m *App) cycleTheme() {
	name := theme.Cycle()
	m.styles = newStyles(theme.Current())
	m.input.PromptStyle = m.styles.prompt
	if err := m.saveThemeFn(name); err != nil {
		m.setStatus(fmt.Sprintf("Theme %s (not saved: %v)", name, err), true)
		return
	}
	m.setStatus(fmt.Sprintf("Theme: %s", name), false)
}
