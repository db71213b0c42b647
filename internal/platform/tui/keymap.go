package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the live simulation view.
// It implements help.KeyMap so the help bubble can render it.
type keyMap struct {
	Pause    key.Binding
	StepOnce key.Binding
	Restart  key.Binding
	Strategy key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		StepOnce: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step once (paused)"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart with new seed"),
		),
		Strategy: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch strategy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings for the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.StepOnce, k.Restart},
		{k.Strategy, k.Help, k.Quit},
	}
}
