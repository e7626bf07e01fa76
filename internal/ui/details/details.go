// Package details renders a single monkey record as an overlay.
package details

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/ui/overlay"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

const (
	boxWidth   = 56
	labelWidth = 16
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(labelWidth)

	valueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model shows one record, or a loading placeholder while it is fetched.
type Model struct {
	record  *monkey.Monkey
	loading bool
	width   int
	height  int
	now     func() time.Time
}

// New creates an empty details view.
func New() Model {
	return Model{now: time.Now}
}

// SetRecord shows rec. A nil rec with loading true renders a placeholder.
func (m Model) SetRecord(rec *monkey.Monkey, loading bool) Model {
	m.record = rec
	m.loading = loading
	return m
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Visible reports whether there is anything to show.
func (m Model) Visible() bool {
	return m.record != nil || m.loading
}

// View renders the details box.
func (m Model) View() string {
	inner := boxWidth - 4

	var body string
	switch {
	case m.record != nil:
		body = m.renderRecord(*m.record, inner)
	case m.loading:
		body = valueStyle.Render("Loading...")
	default:
		return ""
	}

	title := "Monkey"
	if m.record != nil {
		title = m.record.Name
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", boxWidth)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(body + "\n" + footerStyle.Render("e edit · d delete · esc close")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(b.String())
}

func (m Model) renderRecord(rec monkey.Monkey, width int) string {
	valueWidth := width - labelWidth
	rows := []struct{ label, value string }{
		{"Species", styles.SpeciesStyle(rec.Species).Render(rec.Species.Label())},
		{"Age", fmt.Sprintf("%d years", rec.AgeYears)},
		{"Favourite Fruit", rec.FavouriteFruit},
		{"Last Checkup", rec.LastCheckupLabel()},
		{"ID", styles.TableIDStyle.Render(rec.ID)},
		{"Created", m.timestamp(rec.CreatedAt)},
		{"Updated", m.timestamp(rec.UpdatedAt)},
	}

	var lines []string
	for _, r := range rows {
		value := wordwrap.String(r.value, valueWidth)
		parts := strings.Split(value, "\n")
		lines = append(lines, labelStyle.Render(r.label)+valueStyle.Render(parts[0]))
		for _, cont := range parts[1:] {
			lines = append(lines, labelStyle.Render("")+valueStyle.Render(cont))
		}
	}
	return strings.Join(lines, "\n")
}

// timestamp formats a server timestamp with a relative age.
func (m Model) timestamp(raw string) string {
	t, ok := monkey.ParseTimestamp(raw)
	if !ok {
		if raw == "" {
			return "-"
		}
		return raw
	}
	return t.Format("Jan 2, 2006 15:04") + " (" + relative(m.now().Sub(t)) + ")"
}

func relative(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Overlay renders the details box centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.Visible() {
		return bg
	}
	return overlay.PlaceCenter(m.width, m.height, m.View(), bg)
}
