package controller

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the inspector panel.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Search       key.Binding
	Blur         key.Binding
	Toggle       key.Binding
	ToggleFilter key.Binding
	ToggleAll    key.Binding
	Behavior     key.Binding
	Quit         key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Toggle, k.ToggleFilter, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search, k.Blur},
		{k.Toggle, k.ToggleFilter, k.ToggleAll, k.Behavior, k.Quit},
	}
}

// DefaultKeyMap returns the panel's default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
		Toggle:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle highlight")),
		ToggleFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle type filter")),
		ToggleAll:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all filters")),
		Behavior:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "highlight behavior")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
