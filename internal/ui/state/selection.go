package state

import "github.com/atomicstack/slashpad/internal/menu"

// Selected returns the highlighted command.
func (p *Palette) Selected() (menu.Command, bool) {
	if p.Highlight < 0 || p.Highlight >= len(p.Items) {
		return menu.Command{}, false
	}
	return p.Items[p.Highlight], true
}

// IndexOf returns the position of the first item titled title.
func (p *Palette) IndexOf(title string) int {
	for i, item := range p.Items {
		if item.Title == title {
			return i
		}
	}
	return -1
}
