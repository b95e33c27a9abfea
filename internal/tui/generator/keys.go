package generator

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/passgen/internal/tui/slider"
)

// KeyMap defines the panel bindings. Slider keys live in the slider package
// and are consulted first while the slider is focused.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Generate key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
	slider   []key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle/press")),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		slider:   slider.DefaultKeyMap().Bindings(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Generate, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate},
		{k.Generate, k.Copy},
		k.slider,
		{k.Help, k.Quit},
	}
}
