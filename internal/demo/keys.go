package demo

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the demo.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Enter    key.Binding
	Compose  key.Binding
	Hide     key.Binding
	HideAll  key.Binding
	Activity key.Binding
	Export   key.Binding

	// Toggles
	Position key.Binding
	Theme    key.Binding
	Queue    key.Binding
	Sound    key.Binding
	Mirror   key.Binding

	// Global
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Compose, k.Hide, k.HideAll, k.Help, k.Quit}
}

// FullHelp returns the bindings shown on the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Compose},
		{k.Hide, k.HideAll, k.Activity, k.Export},
		{k.Position, k.Theme, k.Queue, k.Sound},
		{k.Mirror, k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run scenario"),
		),
		Compose: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "compose toast"),
		),
		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hide oldest"),
		),
		HideAll: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "hide all"),
		),
		Activity: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle activity"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export events"),
		),
		Position: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle position"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Queue: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle queueing"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sound"),
		),
		Mirror: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle desktop mirror"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
