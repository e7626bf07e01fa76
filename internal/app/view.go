package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

const (
	appTitle = "🐒 Monkey Registry"
	// headerLines is title plus filter bar; footerLines is total plus help.
	headerLines = 2
	footerLines = 2
)

func (m Model) tableHeight() int {
	return max(m.height-headerLines-footerLines-1, 1)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilterBar(),
		"",
		m.renderBody(),
	)
	view = lipgloss.Place(m.width, m.height-footerLines, lipgloss.Left, lipgloss.Top, view)
	view = lipgloss.JoinVertical(lipgloss.Left, view, m.renderFooter())

	switch {
	case m.showHelp:
		view = m.help.Overlay(view)
	case m.form != nil:
		view = m.form.Overlay(view)
	case m.confirm != nil:
		view = m.confirm.Overlay(view)
	case m.details.Visible():
		view = m.details.Overlay(view)
	}

	view = m.toaster.Overlay(view, m.width, m.height)
	return zone.Scan(view)
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render(appTitle)
	if m.opts.Endpoint == "" {
		return title
	}
	endpoint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render(styles.TruncateString(m.opts.Endpoint, max(m.width-lipgloss.Width(title)-2, 0)))
	return title + "  " + endpoint
}

func (m Model) renderFilterBar() string {
	search := m.search.View()
	if !m.searchFocused && m.search.Value() == "" {
		search = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor).Render("/ search")
	}

	species := m.state.Filter.SpeciesLabel()
	speciesStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	if m.state.Filter.Species != "" {
		speciesStyle = speciesStyle.Foreground(styles.TextPrimaryColor).Bold(true)
	}
	bar := search + "   " + speciesStyle.Render("Species: "+species+" (f)")
	if m.state.Loading() && m.state.Loaded() {
		bar += "  " + m.spinner.View()
	}
	return bar
}

func (m Model) renderBody() string {
	switch {
	case !m.state.Loaded():
		return m.spinner.View() + " Loading monkeys..."
	case m.state.Empty():
		var b strings.Builder
		b.WriteString(styles.EmptyTitleStyle.Render("No monkeys found"))
		if hint := m.state.EmptyHint(); hint != "" {
			b.WriteString("\n")
			b.WriteString(styles.EmptyHintStyle.Render(hint))
		}
		return b.String()
	}
	return m.table.View()
}

func (m Model) renderFooter() string {
	total := styles.StatusBarStyle.Render(fmt.Sprintf("Total monkeys: %d", len(m.state.Records)))
	return total + "\n" + m.shortHelp.View(m.keys)
}
