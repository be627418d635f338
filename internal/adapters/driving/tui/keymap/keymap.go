// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI. Printable keys always go
// to the query input, so every binding uses a control or arrow key.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up moves focus to the previous row.
	Up key.Binding

	// Down moves focus to the next row.
	Down key.Binding

	// Activate opens the focused row, or the raw query.
	Activate key.Binding

	// Stricter lowers the fuzziness.
	Stricter key.Binding

	// Looser raises the fuzziness.
	Looser key.Binding

	// Copy copies the focused row's URL.
	Copy key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "shift+tab"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "tab"),
			key.WithHelp("↓", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Stricter: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("^f", "stricter"),
		),
		Looser: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("^g", "looser"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^y", "copy url"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Up, k.Down, k.Copy, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate},
		{k.Stricter, k.Looser, k.Copy},
		{k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
