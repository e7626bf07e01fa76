// Package toaster renders notifications as a short-lived toast at the bottom
// of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/monkeyreg/internal/notify"
	"github.com/zjrosen/monkeyreg/internal/ui/overlay"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up when no duration is configured.
const DefaultDuration = 3 * time.Second

// maxWidth caps the description width; longer server messages wrap.
const maxWidth = 60

// Model holds the toaster state. A new toast replaces the current one.
type Model struct {
	current notify.Notification
	visible bool
	// gen counts Show calls so a dismiss timer for an older toast cannot hide
	// a newer one.
	gen uint64
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays n and returns the command that dismisses it after d.
func (m Model) Show(n notify.Notification, d time.Duration) (Model, tea.Cmd) {
	if d <= 0 {
		d = DefaultDuration
	}
	m.current = n
	m.visible = true
	m.gen++
	return m, ScheduleDismiss(m.gen, d)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.current = notify.Notification{}
	return m
}

// Visible returns whether a toast is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Current returns the notification on screen.
func (m Model) Current() notify.Notification {
	return m.current
}

// Update handles dismiss timers.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Gen == m.gen {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.current.Description == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.current.Kind {
	case notify.KindError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		icon = "❌ "
	default:
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		icon = "✅ "
	}

	title := lipgloss.NewStyle().Bold(true).Render(icon + m.current.Title)
	return style.Render(title + "\n" + wordwrap.String(m.current.Description, maxWidth))
}

// Overlay renders the toast bottom-center over bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.current.Description == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast if Gen still identifies it.
type DismissMsg struct{ Gen uint64 }

// ScheduleDismiss returns a command that dismisses toast gen after d.
func ScheduleDismiss(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{Gen: gen}
	})
}
