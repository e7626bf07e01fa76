// Package app contains the root application model.
//
// The model owns no registry logic of its own. Key presses and network
// results are turned into controller events, controller.Reduce produces the
// next state plus effects, and the effects are run here as tea.Cmds whose
// results come back as further events. The UI components are then brought in
// line with the new state.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/monkeyreg/internal/controller"
	"github.com/zjrosen/monkeyreg/internal/keys"
	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/notify"
	"github.com/zjrosen/monkeyreg/internal/pubsub"
	"github.com/zjrosen/monkeyreg/internal/registry"
	"github.com/zjrosen/monkeyreg/internal/ui/details"
	helpview "github.com/zjrosen/monkeyreg/internal/ui/help"
	"github.com/zjrosen/monkeyreg/internal/ui/modal"
	"github.com/zjrosen/monkeyreg/internal/ui/monkeyform"
	"github.com/zjrosen/monkeyreg/internal/ui/recordtable"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
	"github.com/zjrosen/monkeyreg/internal/ui/toaster"
)

// Options configures the application model.
type Options struct {
	// Endpoint is shown in the header. Optional.
	Endpoint string
	// ToastDuration is how long notifications stay on screen.
	ToastDuration time.Duration
	// ShowIDs shows the id column initially.
	ShowIDs bool
	// Mouse enables row selection by click.
	Mouse bool
	// Broker carries notifications to the toaster. One is created when nil.
	Broker *pubsub.Broker[notify.Notification]
	// Sink, when set, also receives every notification.
	Sink notify.Sink
}

// Model is the root application state.
type Model struct {
	client   registry.Client
	state    controller.State
	opts     Options
	keys     keys.KeyMap
	sink     notify.Sink
	broker   *pubsub.Broker[notify.Notification]
	listener *pubsub.ContinuousListener[notify.Notification]
	ctx      context.Context
	cancel   context.CancelFunc

	table         recordtable.Model
	search        textinput.Model
	spinner       spinner.Model
	shortHelp     help.Model
	toaster       toaster.Model
	details       details.Model
	help          helpview.Model
	form          *monkeyform.Model
	confirm       *modal.Model
	showHelp      bool
	searchFocused bool

	width  int
	height int
}

// New creates the application model around client.
func New(client registry.Client, opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	broker := opts.Broker
	if broker == nil {
		broker = pubsub.NewBroker[notify.Notification]()
	}
	// Subscribe before anything can publish so no notification is missed.
	listener := pubsub.NewContinuousListener(ctx, broker)

	search := textinput.New()
	search.Placeholder = "Search monkeys..."
	search.Prompt = "/ "
	search.Width = 30
	search.CharLimit = 100
	search.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	km := keys.Registry
	return Model{
		client:    client,
		opts:      opts,
		keys:      km,
		sink:      notify.Multi{notify.NewBrokerSink(broker), opts.Sink},
		broker:    broker,
		listener:  listener,
		ctx:       ctx,
		cancel:    cancel,
		table:     recordtable.New(opts.ShowIDs),
		search:    search,
		spinner:   spin,
		shortHelp: help.New(),
		toaster:   toaster.New(),
		details:   details.New(),
		help:      helpview.New(km, keys.Search),
	}
}

// Init issues the first list request and starts the background listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return controller.Mounted{} },
		m.listener.Listen(),
		m.spinner.Tick,
	)
}

// State returns the controller state.
func (m Model) State() controller.State { return m.state }

// Close cancels in-flight requests and stops the notification listener.
func (m *Model) Close() error {
	m.cancel()
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case controller.Event:
		return m.dispatch(msg)

	case pubsub.Event[notify.Notification]:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Payload, m.opts.ToastDuration)
		return m, tea.Batch(cmd, m.listener.Listen())

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case monkeyform.SubmitMsg:
		if m.form == nil || msg.Key != m.state.Dialog.Key {
			return m, nil
		}
		return m.dispatch(controller.Submitted{Form: msg.Form})

	case monkeyform.CancelMsg:
		if m.form == nil || msg.Key != m.state.Dialog.Key {
			return m, nil
		}
		return m.dispatch(controller.DialogDismissed{})

	case modal.ConfirmMsg:
		return m.dispatch(controller.DeleteConfirmed{})

	case modal.CancelMsg:
		return m.dispatch(controller.DeleteDeclined{})

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages.
	return m.forward(msg)
}

// dispatch feeds ev to the reducer, syncs the components and runs the
// resulting effects.
func (m Model) dispatch(ev controller.Event) (Model, tea.Cmd) {
	prev := m.state
	var effects []controller.Effect
	m.state, effects = controller.Reduce(m.state, ev)
	log.Debug(log.CatController, "event", "type", eventName(ev), "phase", m.state.Phase().String())

	cmds := []tea.Cmd{m.sync(prev)}
	for _, e := range effects {
		cmds = append(cmds, m.runEffect(e))
	}
	return m, tea.Batch(cmds...)
}

// sync brings the components in line with the controller state.
func (m *Model) sync(prev controller.State) tea.Cmd {
	var cmd tea.Cmd

	switch {
	case !m.state.Dialog.Open():
		m.form = nil
	case m.form == nil || m.form.Key() != m.state.Dialog.Key:
		var initial monkey.Form
		if m.state.Dialog.Mode == controller.DialogEdit {
			initial = m.state.Dialog.Target.Form()
		}
		f := monkeyform.New(monkeyform.Config{
			Key:     m.state.Dialog.Key,
			Title:   m.state.Dialog.Title(),
			Initial: initial,
		})
		f.SetSize(m.width, m.height)
		m.form = &f
		cmd = f.Init()
	}
	if m.form != nil {
		f := *m.form
		if m.state.Dialog.Violations != prev.Dialog.Violations {
			f = f.SetViolations(m.state.Dialog.Violations)
		}
		f = f.SetSubmitting(m.state.Submitting())
		m.form = &f
	}

	switch {
	case m.state.Confirm == nil:
		m.confirm = nil
	case m.confirm == nil:
		target := *m.state.Confirm
		c := modal.New(modal.Config{
			Title:          "Delete Monkey",
			Message:        controller.ConfirmDeletePrompt,
			Detail:         target.Name + " (" + target.Species.Label() + ")",
			ConfirmLabel:   "Delete",
			ConfirmVariant: modal.ButtonDanger,
		})
		c.SetSize(m.width, m.height)
		m.confirm = &c
	}

	m.details = m.details.SetRecord(m.state.Details, m.state.DetailsLoading())
	m.table = m.table.SetRows(m.state.Records)
	return cmd
}

func (m *Model) resize() {
	m.table = m.table.SetSize(m.width, m.tableHeight())
	m.details = m.details.SetSize(m.width, m.height)
	m.help = m.help.SetSize(m.width, m.height)
	m.shortHelp.Width = m.width
	if m.form != nil {
		m.form.SetSize(m.width, m.height)
	}
	if m.confirm != nil {
		m.confirm.SetSize(m.width, m.height)
	}
}

// overlayOpen reports whether something is drawn over the list.
func (m Model) overlayOpen() bool {
	return m.showHelp || m.form != nil || m.confirm != nil || m.details.Visible()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Escape, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil

	case m.form != nil:
		f, cmd := m.form.Update(msg)
		m.form = &f
		return m, cmd

	case m.confirm != nil:
		c, cmd := m.confirm.Update(msg)
		m.confirm = &c
		return m, cmd

	case m.details.Visible():
		return m.handleDetailsKey(msg)

	case m.searchFocused:
		return m.handleSearchKey(msg)
	}

	return m.handleListKey(msg)
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rec := m.state.Details
	switch {
	case key.Matches(msg, m.keys.Edit) && rec != nil:
		return m.dispatch(controller.EditOpened{Target: *rec})
	case key.Matches(msg, m.keys.Delete) && rec != nil:
		return m.dispatch(controller.DeleteRequested{Target: *rec})
	case key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Details):
		return m.dispatch(controller.DetailsClosed{})
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Search.Blur, keys.Search.Apply):
		m.searchFocused = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, keys.Search.Clear):
		m.search.SetValue("")
		return m.dispatch(controller.SearchChanged{Term: ""})
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.state.Filter.SearchTerm {
		var dcmd tea.Cmd
		m, dcmd = m.dispatch(controller.SearchChanged{Term: v})
		cmd = tea.Batch(cmd, dcmd)
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected, hasSelection := m.table.Selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.table = m.table.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.table = m.table.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.table = m.table.Page(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.table = m.table.Page(1)
	case key.Matches(msg, m.keys.Add):
		return m.dispatch(controller.CreateOpened{})
	case key.Matches(msg, m.keys.Edit) && hasSelection:
		return m.dispatch(controller.EditOpened{Target: selected})
	case key.Matches(msg, m.keys.Delete) && hasSelection:
		return m.dispatch(controller.DeleteRequested{Target: selected})
	case key.Matches(msg, m.keys.Details) && hasSelection:
		return m.dispatch(controller.DetailsRequested{ID: selected.ID})
	case key.Matches(msg, m.keys.Refresh):
		return m.dispatch(controller.RefreshRequested{})
	case key.Matches(msg, m.keys.Search):
		m.searchFocused = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.NextSpecies):
		return m.dispatch(controller.SpeciesChanged{Species: m.state.Filter.NextSpecies()})
	case key.Matches(msg, m.keys.PrevSpecies):
		return m.dispatch(controller.SpeciesChanged{Species: m.state.Filter.PrevSpecies()})
	case key.Matches(msg, m.keys.ClearFilters):
		m.search.SetValue("")
		var searchCmd, speciesCmd tea.Cmd
		m, searchCmd = m.dispatch(controller.SearchChanged{Term: ""})
		m, speciesCmd = m.dispatch(controller.SpeciesChanged{Species: ""})
		return m, tea.Batch(searchCmd, speciesCmd)
	case key.Matches(msg, m.keys.ToggleIDs):
		m.table = m.table.ToggleIDs()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse || m.overlayOpen() {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.table = m.table.Move(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.table = m.table.Move(1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		idx, ok := m.table.RowAt(msg)
		if !ok {
			return m, nil
		}
		if idx == m.table.Cursor() {
			if rec, ok := m.table.Selected(); ok {
				return m.dispatch(controller.DetailsRequested{ID: rec.ID})
			}
		}
		m.table = m.table.Select(idx)
	}
	return m, nil
}

// forward passes non-key messages to the focused text input.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.form != nil:
		f, c := m.form.Update(msg)
		m.form = &f
		cmd = c
	case m.searchFocused:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}
