// Package modal provides a blocking yes/no confirmation dialog.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/monkeyreg/internal/ui/overlay"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota // Blue (default)
	ButtonDanger                       // Red (for destructive actions)
)

// Config controls modal appearance.
type Config struct {
	Title          string
	Message        string
	Detail         string // optional secondary line, e.g. the record being acted on
	ConfirmLabel   string // default "Confirm"
	ConfirmVariant ButtonVariant
	MinWidth       int // 0 = default 40
}

const (
	defaultContentWidth = 40
	maxContentWidth     = 60 // longer messages wrap
)

// ConfirmMsg is sent when the user answers yes.
type ConfirmMsg struct{}

// CancelMsg is sent when the user answers no or dismisses the modal.
type CancelMsg struct{}

// Field identifies the focused button.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

// Model is the modal state.
type Model struct {
	config  Config
	focused Field
	width   int
	height  int
}

// New creates a modal focused on the cancel button, so a stray enter never
// confirms a destructive action.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	return Model{config: cfg, focused: FieldCancel}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "left", "right", "h", "l":
			if m.focused == FieldConfirm {
				m.focused = FieldCancel
			} else {
				m.focused = FieldConfirm
			}
			return m, nil
		case "y", "Y":
			return m, confirm
		case "n", "N", "esc", "q":
			return m, cancel
		case "enter":
			if m.focused == FieldConfirm {
				return m, confirm
			}
			return m, cancel
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func confirm() tea.Msg { return ConfirmMsg{} }
func cancel() tea.Msg  { return CancelMsg{} }

// View renders the modal box.
func (m Model) View() string {
	contentWidth := max(defaultContentWidth, m.config.MinWidth, lipgloss.Width(m.config.Title),
		min(lipgloss.Width(m.config.Message), maxContentWidth))
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		content.WriteString(lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth).
			Render(m.config.Message))
		content.WriteString("\n\n")
	}
	if m.config.Detail != "" {
		content.WriteString(styles.FormHintStyle.Width(contentWidth).Render(m.config.Detail))
		content.WriteString("\n\n")
	}
	content.WriteString(m.renderButtons())

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.config.Title))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(content.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(b.String())
}

func (m Model) renderButtons() string {
	var confirmStyle lipgloss.Style
	switch m.config.ConfirmVariant {
	case ButtonDanger:
		confirmStyle = styles.DangerButtonStyle
		if m.focused == FieldConfirm {
			confirmStyle = styles.DangerButtonFocusedStyle
		}
	default:
		confirmStyle = styles.PrimaryButtonStyle
		if m.focused == FieldConfirm {
			confirmStyle = styles.PrimaryButtonFocusedStyle
		}
	}

	cancelStyle := styles.SecondaryButtonStyle
	if m.focused == FieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}
	return confirmStyle.Render(m.config.ConfirmLabel) + "  " + cancelStyle.Render("Cancel")
}

// Overlay renders the modal centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.PlaceCenter(m.width, m.height, m.View(), bg)
}

// SetSize records the viewport size used for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the focused button.
func (m Model) Focused() Field {
	return m.focused
}
