package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the overlay.
type keyMap struct {
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	TogglePanel  key.Binding
	ToggleBlink  key.Binding
	GrowWindow   key.Binding
	ShrinkWindow key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Toggle panel"),
		),
		ToggleBlink: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Toggle cursor blink"),
		),
		GrowWindow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More lines"),
		),
		ShrinkWindow: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Fewer lines"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.TogglePanel, k.Quit}
}

// FullHelp returns key bindings for the help modal.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.GrowWindow, k.ShrinkWindow, k.TogglePanel, k.ToggleBlink},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
