// Package help contains the help overlay component.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/monkeyreg/internal/keys"
	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/ui/markdown"
	"github.com/zjrosen/monkeyreg/internal/ui/overlay"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

const contentWidth = 60

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	body   string
	width  int
	height int
}

// New builds the help overlay for the given keymaps. The markdown body is
// rendered once; if glamour fails the raw markdown is shown instead.
func New(km keys.KeyMap, skm keys.SearchKeyMap) Model {
	md := Markdown(km, skm)
	body := md
	if r, err := markdown.New(contentWidth); err != nil {
		log.ErrorErr(log.CatUI, "help renderer", err)
	} else if out, err := r.Render(md); err != nil {
		log.ErrorErr(log.CatUI, "help render", err)
	} else {
		body = out
	}
	return Model{body: body}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Markdown is the help document source.
func Markdown(km keys.KeyMap, skm keys.SearchKeyMap) string {
	var b strings.Builder

	section := func(title string, bindings ...key.Binding) {
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, kb := range bindings {
			h := kb.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	section("Records", km.Add, km.Edit, km.Delete, km.Details, km.Refresh)
	section("Filters", km.Search, km.NextSpecies, km.PrevSpecies, km.ClearFilters, km.ToggleIDs)
	section("Search box", skm.Apply, skm.Clear, skm.Blur)
	section("Navigation", km.Up, km.Down, km.PageUp, km.PageDown)
	section("General", km.Help, km.Escape, km.Quit)

	b.WriteString("## Field rules\n\n")
	fmt.Fprintf(&b, "- **Name**: %d-%d characters\n", monkey.MinNameLength, monkey.MaxNameLength)
	names := make([]string, 0, len(monkey.AllSpecies))
	for _, sp := range monkey.AllSpecies {
		names = append(names, string(sp))
	}
	fmt.Fprintf(&b, "- **Species**: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "- **Age**: %d-%d years (marmosets rarely past %d)\n", monkey.MinAge, monkey.MaxAge, monkey.MarmosetAgeHint)
	b.WriteString("- **Favourite fruit**: required\n")
	b.WriteString("- **Last checkup**: optional, e.g. `2024-01-15T10:30`\n")
	return b.String()
}

// View renders the help overlay on an empty screen.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderContent()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.PlaceCenter(m.width, m.height, box, background)
}

func (m Model) renderContent() string {
	body := contentStyle.Render(m.body + "\n" + footerStyle.Render("Press ? or Esc to close"))
	boxWidth := lipgloss.Width(body)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(dividerStyle.Render(strings.Repeat("─", boxWidth)))
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}
