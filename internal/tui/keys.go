package tui

import "github.com/charmbracelet/bubbles/key"

// counterKeyMap holds the counter program key bindings.
type counterKeyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Quit     key.Binding
}

func newCounterKeyMap() counterKeyMap {
	return counterKeyMap{
		Increase: key.NewBinding(
			key.WithKeys("+", "=", "up", "k", "right", "l"),
			key.WithHelp("+/↑", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_", "down", "j", "left", "h"),
			key.WithHelp("-/↓", "decrease"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k counterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k counterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// advisorKeyMap holds the advisor program key bindings.
type advisorKeyMap struct {
	Submit      key.Binding
	Newline     key.Binding
	Reset       key.Binding
	SwitchFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	Quit        key.Binding
}

func newAdvisorKeyMap() advisorKeyMap {
	return advisorKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "get suggestions"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "newline"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "try again"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "examples"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k advisorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.SwitchFocus, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k advisorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Newline, k.Reset},
		{k.SwitchFocus, k.Up, k.Down, k.Quit},
	}
}
