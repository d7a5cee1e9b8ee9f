package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the page key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Escape    key.Binding

	// Scrolling
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Top         key.Binding

	// Page actions
	ToggleTheme key.Binding
	NextFilter  key.Binding
	Filter      key.Binding
	NextCard    key.Binding
	PrevCard    key.Binding
	Contact     key.Binding

	// Contact form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave form"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Top: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "back to top"),
		),

		ToggleTheme: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "light/dark"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next filter"),
		),
		Filter: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "filter projects"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next project"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev project"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "write a message"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
	}
}

// PageHelp returns the bindings shown in the footer while browsing.
func (k KeyMap) PageHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextSection, k.NextFilter, k.NextCard, k.Contact, k.ToggleTheme, k.Quit}
}

// FormHelp returns the bindings shown in the footer while editing the form.
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Escape, k.ForceQuit}
}
