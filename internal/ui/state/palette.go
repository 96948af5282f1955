package state

import "github.com/atomicstack/slashpad/internal/menu"

// NoHighlight marks a palette with nothing highlighted.
const NoHighlight = -1

// Palette holds the matched commands shown by the popup, the highlighted
// row and the scroll window over them.
type Palette struct {
	Items          []menu.Command
	Highlight      int
	ViewportOffset int
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{Highlight: NoHighlight}
}

// Reset replaces the items wholesale. The first item is highlighted when
// there is one.
func (p *Palette) Reset(items []menu.Command) {
	p.Items = CloneCommands(items)
	p.ViewportOffset = 0
	if len(p.Items) == 0 {
		p.Highlight = NoHighlight
		return
	}
	p.Highlight = 0
}

// Clear drops every item.
func (p *Palette) Clear() {
	p.Items = nil
	p.Highlight = NoHighlight
	p.ViewportOffset = 0
}

// Len reports the number of items.
func (p *Palette) Len() int {
	return len(p.Items)
}
