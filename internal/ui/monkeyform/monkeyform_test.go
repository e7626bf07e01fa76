package monkeyform

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyMsg(k))
	}
	return m, cmd
}

func TestNew_BlankCreateForm(t *testing.T) {
	m := New(Config{Key: 1, Title: "Add New Monkey"})

	require.Equal(t, monkey.Form{}, m.Values())
	require.Equal(t, FieldName, m.Focused())
	require.Equal(t, uint64(1), m.Key())
	require.Contains(t, m.View(), "Add New Monkey")
	require.Contains(t, m.View(), "Select species")
}

func TestNew_SeededEditForm(t *testing.T) {
	coco := monkey.Monkey{ID: "m-1", Name: "Coco", Species: monkey.Macaque, AgeYears: 5, FavouriteFruit: "fig", LastCheckupAt: "2024-01-15T10:00"}
	m := New(Config{Key: 2, Title: "Edit Monkey", Initial: coco.Form()})

	require.Equal(t, coco.Form(), m.Values())
	require.Contains(t, m.View(), "Edit Monkey")
}

func TestFillAndSubmit(t *testing.T) {
	m := New(Config{Key: 3, Title: "Add New Monkey"})

	m = typeText(m, "Jo")
	m, _ = press(m, "tab")
	require.Equal(t, FieldSpecies, m.Focused())
	m, _ = press(m, "4")
	m, _ = press(m, "tab")
	m = typeText(m, "7")
	m, _ = press(m, "enter")
	m = typeText(m, "mango")

	m, cmd := press(m, "ctrl+s")
	require.NotNil(t, cmd)
	require.Equal(t, SubmitMsg{Key: 3, Form: monkey.Form{
		Name: "Jo", Species: "howler", AgeYears: "7", FavouriteFruit: "mango",
	}}, cmd())
}

func TestSpeciesSelector_Cycles(t *testing.T) {
	m := New(Config{})
	m, _ = press(m, "tab")

	var got []string
	for range 5 {
		m, _ = press(m, "right")
		got = append(got, m.Values().Species)
	}
	require.Equal(t, []string{"capuchin", "macaque", "marmoset", "howler", "capuchin"}, got)

	m, _ = press(m, "left")
	require.Equal(t, "howler", m.Values().Species)
}

func TestMarmosetShowsAgeHint(t *testing.T) {
	m := New(Config{Initial: monkey.Form{Species: "marmoset"}})
	require.Contains(t, m.View(), "Marmosets rarely live past 22 years")

	m = New(Config{Initial: monkey.Form{Species: "howler"}})
	require.NotContains(t, m.View(), "Marmosets rarely")
}

func TestFocusCycle(t *testing.T) {
	m := New(Config{})
	m, _ = press(m, "shift+tab")
	require.Equal(t, FieldCancel, m.Focused())
	m, _ = press(m, "tab")
	require.Equal(t, FieldName, m.Focused())
}

func TestButtons(t *testing.T) {
	m := New(Config{Key: 9})
	m, _ = press(m, "shift+tab", "shift+tab")
	require.Equal(t, FieldSave, m.Focused())

	_, cmd := press(m, "enter")
	require.IsType(t, SubmitMsg{}, cmd())

	m, _ = press(m, "right")
	require.Equal(t, FieldCancel, m.Focused())
	_, cmd = press(m, "enter")
	require.Equal(t, CancelMsg{Key: 9}, cmd())
}

func TestEscCancels(t *testing.T) {
	m := New(Config{Key: 4})
	m = typeText(m, "half typed")
	_, cmd := press(m, "esc")
	require.Equal(t, CancelMsg{Key: 4}, cmd())
}

func TestSubmitting_BlocksSave(t *testing.T) {
	m := New(Config{}).SetSubmitting(true)
	require.Contains(t, m.View(), "Saving...")

	_, cmd := press(m, "ctrl+s")
	require.Nil(t, cmd)
}

func TestSetViolations(t *testing.T) {
	m := New(Config{})
	_, err := monkey.Validate(monkey.Form{Name: "Jo", Species: "howler", AgeYears: "99", FavouriteFruit: ""})
	var verr *monkey.ValidationError
	require.ErrorAs(t, err, &verr)

	m = m.SetViolations(verr)

	require.Equal(t, FieldAge, m.Focused(), "focus jumps to the first invalid field")
	view := m.View()
	age, _ := verr.For(monkey.FieldAgeYears)
	require.Contains(t, view, age.Message)
	fruit, _ := verr.For(monkey.FieldFavouriteFruit)
	require.Contains(t, view, fruit.Message)
}

// formHost runs the form as a program so teatest can type into it.
type formHost struct {
	form   Model
	result tea.Msg
}

func (h formHost) Init() tea.Cmd { return h.form.Init() }

func (h formHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case SubmitMsg, CancelMsg:
		h.result = msg
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.form, cmd = h.form.Update(msg)
	return h, cmd
}

func (h formHost) View() string { return h.form.View() }

func TestForm_Teatest(t *testing.T) {
	tm := teatest.NewTestModel(t, formHost{form: New(Config{Key: 5, Title: "Add New Monkey"})},
		teatest.WithInitialTermSize(100, 40))

	tm.Type("Pip")
	tm.Send(keyMsg("tab"))
	tm.Send(keyMsg("3"))
	tm.Send(keyMsg("tab"))
	tm.Type("2")
	tm.Send(keyMsg("tab"))
	tm.Type("grape")
	tm.Send(keyMsg("ctrl+s"))

	final := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(formHost)
	require.Equal(t, SubmitMsg{Key: 5, Form: monkey.Form{
		Name: "Pip", Species: "marmoset", AgeYears: "2", FavouriteFruit: "grape",
	}}, final.result)
}
