package ui

import (
	"fmt"
	"strings"

	"drawer/internal/catalog"
	"drawer/internal/search"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *App) View() string {
	base := strings.Join([]string{
		m.renderHeader(),
		m.input.View(),
		m.renderBody(),
		m.renderFooter(),
	}, "\n")
	if m.showHelp {
		return overlayCenter(base, m.renderHelp(), m.width, m.height)
	}
	return base
}

// listHeight is the number of result rows that fit between the search box
// and the footer.
func (m *App) listHeight() int {
	return max(m.height-3, 1)
}

func (m *App) renderHeader() string {
	title := "drawer"
	if m.version != "" {
		title += " " + m.version
	}
	count := fmt.Sprintf("%d/%d apps", len(m.results), len(m.apps))
	return ansi.Truncate(m.styles.header.Render(title)+m.styles.count.Render(count), m.width, "")
}

func (m *App) renderBody() string {
	height := m.listHeight()
	if m.width < detailMinWidth {
		return m.renderList(m.width, height)
	}
	listWidth := m.width / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(listWidth, height),
		m.renderDetail(m.width-listWidth, height),
	)
}

func (m *App) renderList(width, height int) string {
	block := lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height)
	if len(m.results) == 0 {
		return block.Render(m.styles.empty.Render(ansi.Truncate("No matching apps", width, "…")))
	}
	end := min(m.offset+height, len(m.results))
	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderRow(m.results[i], i == m.cursor, width))
	}
	return block.Render(strings.Join(rows, "\n"))
}

func (m *App) renderRow(app catalog.App, selected bool, width int) string {
	marker := "  "
	nameStyle := m.styles.name
	if selected {
		marker = m.styles.cursor.Render("› ")
		nameStyle = m.styles.selected
	}
	name := highlightName(app.Name, search.Highlight(app.Name, m.query), nameStyle, m.styles.match)
	line := marker + name + "  " + m.styles.pkg.Render(app.Package)
	return ansi.Truncate(line, width, "…")
}

// highlightName renders name with the runes at matched indexes in the match
// style and everything else in base.
func highlightName(name string, matched []int, base, match lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(name)
	}
	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}

	var (
		b          strings.Builder
		run        []rune
		runMatched bool
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		style := base
		if runMatched {
			style = match
		}
		b.WriteString(style.Render(string(run)))
		run = run[:0]
	}
	for i, r := range []rune(name) {
		if hits[i] != runMatched {
			flush()
			runMatched = hits[i]
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}

func (m *App) renderDetail(width, height int) string {
	app, ok := m.selected()
	content := ""
	if ok {
		inner := max(width-4, 1)
		if m.renderMarkdown == nil || m.rendererWidth != inner {
			m.renderMarkdown = buildMarkdownRenderer(m.outputFormat, inner)
			m.rendererWidth = inner
		}
		content = m.renderMarkdown(detailMarkdown(app))
	}
	return m.styles.pane.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(content)
}

func detailMarkdown(app catalog.App) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n`%s`\n\n", app.Name, app.Package)
	if desc := strings.TrimSpace(app.Description); desc != "" {
		b.WriteString(desc)
	} else {
		b.WriteString("_No description._")
	}
	if exec := strings.TrimSpace(app.Exec); exec != "" {
		fmt.Fprintf(&b, "\n\nRuns `%s`", exec)
	}
	return b.String()
}

func (m *App) renderFooter() string {
	if m.status != "" {
		style := m.styles.status
		if m.statusIsErr {
			style = m.styles.errorText
		}
		return ansi.Truncate(style.Render(m.status), m.width, "…")
	}
	return m.help.View(m.keys)
}

func (m *App) renderHelp() string {
	full := m.help
	full.ShowAll = true
	full.Width = 0
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.helpTitle.Render("drawer help"),
		"",
		full.View(m.keys),
		"",
		m.styles.pkg.Render("Press ? or esc to close"),
	)
	return m.styles.helpBox.Render(body)
}

func lenPrompt(prompt string) int {
	return ansi.StringWidth(prompt)
}
