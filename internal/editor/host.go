package editor

import "github.com/atomicstack/slashpad/internal/layout"

// Control is a sibling widget of the editor inside its host element, such as
// a hidden file input.
type Control interface {
	Click()
}

// Host is the element an editor is mounted in.
type Host interface {
	// Query finds a sibling control by selector.
	Query(selector string) (Control, bool)
	// Container is the surface the host is rendered on.
	Container() layout.Container
}
