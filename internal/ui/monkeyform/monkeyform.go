// Package monkeyform is the create/edit dialog for a monkey record.
//
// The form only collects raw text. Validation happens when the parent hands
// the submitted values to the controller; any violations come back through
// SetViolations and render under the offending fields. A Model is built for
// one opening of the dialog and thrown away when it closes.
package monkeyform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/ui/overlay"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

// SubmitMsg carries the raw form values when the user saves.
type SubmitMsg struct {
	Key  uint64
	Form monkey.Form
}

// CancelMsg is sent when the user closes the form without saving.
type CancelMsg struct{ Key uint64 }

// Field identifies a focusable element.
type Field int

const (
	FieldName Field = iota
	FieldSpecies
	FieldAge
	FieldFruit
	FieldCheckup
	FieldSave
	FieldCancel
)

const fieldCount = int(FieldCancel) + 1

const (
	minWidth   = 48
	inputWidth = 40
)

// Config describes one opening of the dialog.
type Config struct {
	// Key identifies the opening. Messages carry it so a parent can drop
	// results meant for a dialog that has since been replaced.
	Key     uint64
	Title   string
	Initial monkey.Form
}

// Model is the form state.
type Model struct {
	key        uint64
	title      string
	name       textinput.Model
	age        textinput.Model
	fruit      textinput.Model
	checkup    textinput.Model
	species    int // index into speciesOptions; 0 means none selected
	focused    Field
	violations *monkey.ValidationError
	submitting bool
	width      int
	height     int
}

// speciesOptions is the selector order. The empty entry is the unselected
// state of a fresh create form.
var speciesOptions = append([]monkey.Species{""}, monkey.AllSpecies...)

// New builds a form seeded from cfg.Initial.
func New(cfg Config) Model {
	m := Model{
		key:     cfg.Key,
		title:   cfg.Title,
		name:    newInput("Enter name", monkey.MaxNameLength*4),
		age:     newInput("0-45", 7),
		fruit:   newInput("e.g. banana", 0),
		checkup: newInput("YYYY-MM-DD or YYYY-MM-DDTHH:MM", 32),
	}
	m.name.SetValue(cfg.Initial.Name)
	m.age.SetValue(cfg.Initial.AgeYears)
	m.fruit.SetValue(cfg.Initial.FavouriteFruit)
	m.checkup.SetValue(cfg.Initial.LastCheckupAt)
	if sp, ok := monkey.ParseSpecies(cfg.Initial.Species); ok {
		for i, opt := range speciesOptions {
			if opt == sp {
				m.species = i
			}
		}
	}
	m.focus(FieldName)
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = inputWidth - 4
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	if limit > 0 {
		ti.CharLimit = limit
	}
	return ti
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Key returns the dialog opening this form belongs to.
func (m Model) Key() uint64 { return m.key }

// Focused returns the focused element.
func (m Model) Focused() Field { return m.focused }

// Values returns the current raw values.
func (m Model) Values() monkey.Form {
	return monkey.Form{
		Name:           m.name.Value(),
		Species:        string(speciesOptions[m.species]),
		AgeYears:       m.age.Value(),
		FavouriteFruit: m.fruit.Value(),
		LastCheckupAt:  m.checkup.Value(),
	}
}

// SetViolations shows field errors from a rejected submit. Focus moves to the
// first invalid field.
func (m Model) SetViolations(v *monkey.ValidationError) Model {
	m.violations = v
	if v != nil && len(v.Violations) > 0 {
		m.focus(fieldFor(v.Violations[0].Field))
	}
	return m
}

// SetSubmitting disables saving while a request is in flight.
func (m Model) SetSubmitting(submitting bool) Model {
	m.submitting = submitting
	return m
}

// SetSize records the viewport size used for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func fieldFor(name string) Field {
	switch name {
	case monkey.FieldSpecies:
		return FieldSpecies
	case monkey.FieldAgeYears:
		return FieldAge
	case monkey.FieldFavouriteFruit:
		return FieldFruit
	case monkey.FieldLastCheckupAt:
		return FieldCheckup
	default:
		return FieldName
	}
}

func (m *Model) input(f Field) *textinput.Model {
	switch f {
	case FieldName:
		return &m.name
	case FieldAge:
		return &m.age
	case FieldFruit:
		return &m.fruit
	case FieldCheckup:
		return &m.checkup
	}
	return nil
}

func (m *Model) focus(f Field) {
	if in := m.input(m.focused); in != nil {
		in.Blur()
	}
	m.focused = f
	if in := m.input(f); in != nil {
		in.Focus()
	}
}

// Update handles key input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, m.cancel()
		case "ctrl+s":
			return m, m.submit()
		case "tab", "down":
			m.focus(Field((int(m.focused) + 1) % fieldCount))
			return m, nil
		case "shift+tab", "up":
			m.focus(Field((int(m.focused) + fieldCount - 1) % fieldCount))
			return m, nil
		case "enter":
			switch m.focused {
			case FieldSave:
				return m, m.submit()
			case FieldCancel:
				return m, m.cancel()
			default:
				m.focus(m.focused + 1)
				return m, nil
			}
		}

		switch m.focused {
		case FieldSpecies:
			return m.updateSpecies(msg), nil
		case FieldSave, FieldCancel:
			switch msg.String() {
			case "left", "right", "h", "l":
				if m.focused == FieldSave {
					m.focus(FieldCancel)
				} else {
					m.focus(FieldSave)
				}
			}
			return m, nil
		}
	}

	if in := m.input(m.focused); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSpecies(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "right", "l", " ":
		m.species = (m.species + 1) % len(speciesOptions)
		if m.species == 0 {
			m.species = 1
		}
	case "left", "h":
		m.species--
		if m.species <= 0 {
			m.species = len(speciesOptions) - 1
		}
	case "1", "2", "3", "4":
		m.species = int(msg.Runes[0] - '0')
	}
	return m
}

func (m Model) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	msg := SubmitMsg{Key: m.key, Form: m.Values()}
	return func() tea.Msg { return msg }
}

func (m Model) cancel() tea.Cmd {
	key := m.key
	return func() tea.Msg { return CancelMsg{Key: key} }
}

func (m Model) errorFor(field string) string {
	if v, ok := m.violations.For(field); ok {
		return v.Message
	}
	return ""
}

// View renders the dialog box.
func (m Model) View() string {
	contentWidth := max(minWidth, lipgloss.Width(m.title))
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	sections := []string{
		m.renderInput(FieldName, "Name", monkey.FieldName, &m.name, contentWidth),
		m.renderSpecies(contentWidth),
		m.renderAge(contentWidth),
		m.renderInput(FieldFruit, "Favourite Fruit", monkey.FieldFavouriteFruit, &m.fruit, contentWidth),
		m.renderInput(FieldCheckup, "Last Checkup", monkey.FieldLastCheckupAt, &m.checkup, contentWidth),
		m.renderButtons(),
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(strings.Join(sections, "\n")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(b.String())
}

func (m Model) renderInput(f Field, title, wireField string, in *textinput.Model, width int) string {
	return styles.RenderFieldSection([]string{" " + in.View()}, title, m.errorFor(wireField), width, m.focused == f)
}

func (m Model) renderAge(width int) string {
	content := []string{" " + m.age.View()}
	if speciesOptions[m.species] == monkey.Marmoset {
		content = append(content, styles.FormWarningStyle.Render(fmt.Sprintf(" Marmosets rarely live past %d years", monkey.MarmosetAgeHint)))
	}
	return styles.RenderFieldSection(content, "Age (years)", m.errorFor(monkey.FieldAgeYears), width, m.focused == FieldAge)
}

func (m Model) renderSpecies(width int) string {
	var opts []string
	for i, sp := range speciesOptions[1:] {
		label := sp.Label()
		if i+1 == m.species {
			opts = append(opts, styles.SelectionIndicatorStyle.Render(">")+styles.SpeciesStyle(sp).Bold(true).Render(label))
		} else {
			opts = append(opts, " "+lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(label))
		}
	}
	line := " " + strings.Join(opts, " ")
	if m.species == 0 {
		line = " " + lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor).Render("Select species (←/→)")
	}
	return styles.RenderFieldSection([]string{line}, "Species", m.errorFor(monkey.FieldSpecies), width, m.focused == FieldSpecies)
}

func (m Model) renderButtons() string {
	var save string
	switch {
	case m.submitting:
		save = styles.DisabledButtonStyle.Render("Saving...")
	case m.focused == FieldSave:
		save = styles.PrimaryButtonFocusedStyle.Render("Save")
	default:
		save = styles.PrimaryButtonStyle.Render("Save")
	}

	cancelStyle := styles.SecondaryButtonStyle
	if m.focused == FieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}
	return save + "  " + cancelStyle.Render("Cancel")
}

// Overlay renders the dialog centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.PlaceCenter(m.width, m.height, m.View(), bg)
}
