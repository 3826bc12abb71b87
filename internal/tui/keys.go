package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reset key.Binding
	Pause key.Binding
	Next  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Reset: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Pause: key.NewBinding(key.WithKeys("ctrl+p", "esc"), key.WithHelp("ctrl+p", "pause")),
		Next:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next text")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Pause, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
