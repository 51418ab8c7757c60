package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	AddWater key.Binding
	SubWater key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddWater: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add glass"),
		),
		SubWater: key.NewBinding(
			key.WithKeys("s", "-"),
			key.WithHelp("s", "remove glass"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle probiotic"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddWater, k.SubWater, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.AddWater, k.SubWater}, {k.Toggle, k.Quit}}
}
