package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the editor bindings.
type KeyMap struct {
	Bold      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	SelectAll key.Binding
	Copy      key.Binding
	Export    key.Binding
	Focus     key.Binding
	Close     key.Binding
}

// DefaultKeyMap returns the standard bindings. Terminals do not deliver the
// Cmd modifier, so only the Ctrl forms are bound; ctrl+shift+z is listed for
// terminals that report it.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bold:      key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Copy:      key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy")),
		Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "subject/body")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bold, k.Undo, k.Redo, k.Copy, k.Export, k.Focus, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.SelectAll}}
}
