package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the client's keybindings. Navigation keys apply while the
// sidebar has focus; the composer swallows everything except the globals.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	NextServer key.Binding
	PrevServer key.Binding
	Compose    key.Binding
	Members    key.Binding
	Mute       key.Binding
	Deafen     key.Binding
	LeaveVoice key.Binding
	React      key.Binding
	Pin        key.Binding
	Quit       key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	NextServer: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next server"),
	),
	PrevServer: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev server"),
	),
	Compose: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "compose/browse"),
	),
	Members: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "members"),
	),
	Mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute"),
	),
	Deafen: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "deafen"),
	),
	LeaveVoice: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "leave voice"),
	),
	React: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "react 👍"),
	),
	Pin: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pin"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
