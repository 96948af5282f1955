package state

// SetHighlight highlights index. Indexes outside the items are ignored.
func (p *Palette) SetHighlight(index int, maxVisible int) bool {
	if index < 0 || index >= len(p.Items) {
		return false
	}
	old := p.Highlight
	p.Highlight = index
	p.EnsureHighlightVisible(maxVisible)
	return old != index
}

// Next advances the highlight, wrapping to the first item.
func (p *Palette) Next(maxVisible int) bool {
	n := len(p.Items)
	if n == 0 {
		return false
	}
	if p.Highlight < 0 {
		return p.SetHighlight(0, maxVisible)
	}
	return p.SetHighlight((p.Highlight+1)%n, maxVisible)
}

// Prev retreats the highlight, wrapping to the last item.
func (p *Palette) Prev(maxVisible int) bool {
	n := len(p.Items)
	if n == 0 {
		return false
	}
	if p.Highlight < 0 {
		return p.SetHighlight(n-1, maxVisible)
	}
	return p.SetHighlight((p.Highlight-1+n)%n, maxVisible)
}

// EnsureHighlightVisible scrolls the window by the least amount that keeps
// the highlighted row on screen.
func (p *Palette) EnsureHighlightVisible(maxVisible int) {
	if len(p.Items) == 0 || maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Highlight < 0 {
		return
	}
	if p.Highlight < p.ViewportOffset {
		p.ViewportOffset = p.Highlight
	}
	upper := p.ViewportOffset + maxVisible - 1
	if p.Highlight > upper {
		p.ViewportOffset = p.Highlight - maxVisible + 1
	}
}

// Visible returns the start and end of the rows inside the window.
func (p *Palette) Visible(maxVisible int) (int, int) {
	n := len(p.Items)
	if maxVisible <= 0 || maxVisible > n {
		maxVisible = n
	}
	start := p.ViewportOffset
	if start > n-maxVisible {
		start = n - maxVisible
	}
	if start < 0 {
		start = 0
	}
	return start, start + maxVisible
}
