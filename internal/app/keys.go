package app

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the application shortcuts. Keys the focused editor consumes
// never reach the bindings below except the ones checked before dispatch.
type keyMap struct {
	Quit      key.Binding
	Dialog    key.Binding
	Navigate  key.Binding
	Preview   key.Binding
	NextField key.Binding
	PrevField key.Binding
	Close     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Dialog:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "dialog")),
		Navigate:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next page")),
		Preview:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next editor")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous editor")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Dialog, k.Navigate, k.Preview, k.Quit}
}
