// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the registry list keymap.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Records
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Details key.Binding
	Refresh key.Binding

	// Filters
	Search       key.Binding
	NextSpecies  key.Binding
	PrevSpecies  key.Binding
	ClearFilters key.Binding
	ToggleIDs    key.Binding

	// General
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// SearchKeyMap is active while the search box has focus.
type SearchKeyMap struct {
	Apply key.Binding
	Clear key.Binding
	Blur  key.Binding
}

// Registry is the default keymap for the list view.
var Registry = DefaultKeyMap()

// Search is the default keymap for the search box.
var Search = SearchKeyMap{
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "back to list"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear search"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave search"),
	),
}

// DefaultKeyMap returns the default list keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "page down"),
		),

		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add monkey"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit monkey"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete monkey"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view details"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextSpecies: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f", "next species"),
		),
		PrevSpecies: key.NewBinding(
			key.WithKeys("F", "shift+tab"),
			key.WithHelp("F", "previous species"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		ToggleIDs: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle ids"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Search, k.NextSpecies, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Add, k.Edit, k.Delete, k.Details, k.Refresh},
		{k.Search, k.NextSpecies, k.PrevSpecies, k.ClearFilters, k.ToggleIDs},
		{k.Help, k.Escape, k.Quit},
	}
}

// ShortHelp implements help.KeyMap.
func (k SearchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Clear, k.Blur}
}

// FullHelp implements help.KeyMap.
func (k SearchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
