package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Deal key.Binding
	Next key.Binding
	Help key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Deal, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Deal}, {k.Help, k.Quit}}
}

func defaultKeys() keyMap {
	return keyMap{
		Deal: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "new hand"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", " ", "enter"),
			key.WithHelp("n/space", "next street"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
