// Package host models the page an editor lives on: elements that carry an
// editor once they finish initialising, the sibling controls next to them,
// and the lifecycle messages announcing when elements appear.
package host

import (
	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/layout"
)

// ElementOptions is configuration read when the element builds its editor.
type ElementOptions struct {
	Placeholder string
}

// Element is an editor-bearing widget. Its editor is nil until Initialize.
type Element struct {
	id        string
	tag       string
	container layout.Container
	controls  map[string]editor.Control
	content   []*editor.Block
	options   ElementOptions
	ed        *editor.Editor
	bound     bool
}

// NewElement returns an uninitialised element tagged tag and rendered on
// container.
func NewElement(id, tag string, container layout.Container, content ...*editor.Block) *Element {
	return &Element{
		id:        id,
		tag:       tag,
		container: container,
		controls:  make(map[string]editor.Control),
		content:   content,
	}
}

func (e *Element) ID() string { return e.id }

func (e *Element) Tag() string { return e.tag }

// Options exposes the configuration consumed by Initialize.
func (e *Element) Options() *ElementOptions { return &e.options }

// Editor returns the element's editor, or nil before initialisation.
func (e *Element) Editor() *editor.Editor { return e.ed }

// Ready reports whether the editor exists.
func (e *Element) Ready() bool { return e.ed != nil }

// Bound reports whether the slash menu has been attached.
func (e *Element) Bound() bool { return e.bound }

// MarkBound records that the slash menu is attached.
func (e *Element) MarkBound() { e.bound = true }

// Initialize builds the editor from the current options. Calling it again
// returns the existing editor.
func (e *Element) Initialize() *editor.Editor {
	if e.ed != nil {
		return e.ed
	}
	e.ed = editor.New(editor.Options{
		ID:          e.id,
		Placeholder: e.options.Placeholder,
		Host:        e,
		Content:     e.content,
	})
	return e.ed
}

// AddControl registers a sibling control under selector.
func (e *Element) AddControl(selector string, c editor.Control) {
	e.controls[selector] = c
}

// Query finds a sibling control.
func (e *Element) Query(selector string) (editor.Control, bool) {
	c, ok := e.controls[selector]
	return c, ok
}

// Container is the surface the element is drawn on.
func (e *Element) Container() layout.Container { return e.container }
