package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings for both modes.
type KeyMap struct {
	// Normal mode
	Quit    key.Binding
	Command key.Binding
	Down    key.Binding
	Up      key.Binding

	// Command mode
	Execute key.Binding
	Cancel  key.Binding
	Erase   key.Binding
}

// DefaultKeyMap returns the vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next section"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous section"),
		),
		Execute: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
	}
}

// ForMode returns the bindings active in m, for the help line.
func (k KeyMap) ForMode(m Mode) help.KeyMap {
	if m == Command {
		return modeHelp{k.Execute, k.Cancel, k.Erase}
	}
	return modeHelp{k.Down, k.Up, k.Command, k.Quit}
}

type modeHelp []key.Binding

func (h modeHelp) ShortHelp() []key.Binding {
	return h
}

func (h modeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}
