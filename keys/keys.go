package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global key bindings for the studio and gallery views.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Blur      key.Binding
	Toggle    key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/stop"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear canvas"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Clear, k.NextField, k.Blur, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Clear},
		{k.NextField, k.PrevField, k.Blur},
		{k.Quit},
	}
}
