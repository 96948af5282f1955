package ui

import (
	"github.com/atomicstack/slashpad/internal/settings"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what the router asks the session to do with a key.
type Action int

const (
	ActionNone Action = iota
	ActionHide
	ActionNext
	ActionPrev
	ActionExecute
)

func (a Action) String() string {
	switch a {
	case ActionHide:
		return "hide"
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionExecute:
		return "execute"
	default:
		return "none"
	}
}

// KeyMap holds the bindings the router reacts to while the popup is open.
type KeyMap struct {
	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
	Execute key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(k settings.Keys) KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(key.WithKeys(k.Escape), key.WithHelp(k.Escape, "close")),
		Next:    key.NewBinding(key.WithKeys(k.ArrowDown, k.Tab), key.WithHelp(k.ArrowDown, "next")),
		Prev:    key.NewBinding(key.WithKeys(k.ArrowUp), key.WithHelp(k.ArrowUp, "previous")),
		Execute: key.NewBinding(key.WithKeys(k.Enter), key.WithHelp(k.Enter, "insert")),
	}
}

// ShortHelp lists the bindings in display order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Execute, k.Dismiss}
}

// Router translates key presses into popup actions. It is either closed,
// passing every key through, or open.
type Router struct {
	keys KeyMap
}

// NewRouter returns a router using keys.
func NewRouter(keys KeyMap) *Router {
	return &Router{keys: keys}
}

// Keys returns the active bindings.
func (r *Router) Keys() KeyMap { return r.keys }

// Route maps msg to an action. A closed router, and any key without a
// binding, yields ActionNone.
func (r *Router) Route(open bool, msg tea.KeyMsg) Action {
	if !open {
		return ActionNone
	}
	switch {
	case key.Matches(msg, r.keys.Dismiss):
		return ActionHide
	case key.Matches(msg, r.keys.Next):
		return ActionNext
	case key.Matches(msg, r.keys.Prev):
		return ActionPrev
	case key.Matches(msg, r.keys.Execute):
		return ActionExecute
	default:
		return ActionNone
	}
}
