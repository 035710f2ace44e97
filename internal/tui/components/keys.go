package components

import "github.com/charmbracelet/bubbles/key"

// InputKeyMap defines the keys that end typing in a filter or count input
type InputKeyMap struct {
	Accept key.Binding
	Cancel key.Binding
}

// DefaultInputKeyMap returns the default input key bindings
func DefaultInputKeyMap() InputKeyMap {
	return InputKeyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// InputKeys is the global input key map instance
var InputKeys = DefaultInputKeyMap()
