package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the keys the slider reacts to while focused.
type KeyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns the standard slider bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(key.WithKeys("right", "up"), key.WithHelp("→/↑", "longer")),
		Decrease: key.NewBinding(key.WithKeys("left", "down"), key.WithHelp("←/↓", "shorter")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "minimum")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "maximum")),
	}
}

// Bindings returns the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Home, k.End}
}
