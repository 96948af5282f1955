package editor

import (
	"strconv"
	"strings"

	"github.com/atomicstack/slashpad/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

var styles = theme.Default()

// Coords is a screen cell span for a document position.
type Coords struct {
	Left   int
	Top    int
	Bottom int
}

func (e *Editor) prefix(i int) string {
	switch e.blocks[i].Kind {
	case KindBulletItem:
		return "• "
	case KindOrderedItem:
		n := 1
		for j := i - 1; j >= 0 && e.blocks[j].Kind == KindOrderedItem; j-- {
			n++
		}
		return strconv.Itoa(n) + ". "
	case KindBlockquote:
		return "│ "
	case KindCodeBlock:
		return "▏ "
	default:
		return ""
	}
}

// CoordsAtPos maps a document position to the screen cell of the caret
// standing there.
func (e *Editor) CoordsAtPos(pos int) Coords {
	block, offset := e.resolve(e.clamp(pos))
	b := e.blocks[block]
	x := e.bounds.X + runewidth.StringWidth(e.prefix(block)) + runewidth.StringWidth(string(b.text[:offset]))
	if e.bounds.Width > 0 {
		if right := e.bounds.X + e.bounds.Width - 1; x > right {
			x = right
		}
	}
	top := e.bounds.Y + block - e.scroll
	return Coords{Left: x, Top: top, Bottom: top + 1}
}

// ClickAt places the caret at the screen cell x,y and focuses the editor. It
// reports false when the cell is outside the text area.
func (e *Editor) ClickAt(x, y int) bool {
	if !e.Contains(x, y) {
		return false
	}
	block := e.scroll + y - e.bounds.Y
	if block >= len(e.blocks) {
		block = len(e.blocks) - 1
	}
	b := e.blocks[block]
	col := e.bounds.X + runewidth.StringWidth(e.prefix(block))
	offset := 0
	for offset < b.Len() {
		w := runewidth.RuneWidth(b.text[offset])
		if col+w > x {
			break
		}
		col += w
		offset++
	}
	pos := e.blockStart(block) + offset
	tr := Transaction{}
	if !e.focused {
		e.focused = true
		tr.FocusChanged = true
	}
	if e.sel != (Selection{Anchor: pos, Head: pos}) {
		e.collapse(pos)
		e.stored = 0
		tr.SelectionChanged = true
	}
	if tr.FocusChanged || tr.SelectionChanged {
		e.ensureVisible()
		e.notify(tr)
	}
	return true
}

// View renders the visible blocks, one line each, clipped to the bounds.
func (e *Editor) View() string {
	height := e.bounds.Height
	if height <= 0 {
		height = len(e.blocks)
	}
	lines := make([]string, 0, height)
	for i := e.scroll; i < len(e.blocks) && len(lines) < height; i++ {
		lines = append(lines, e.renderBlock(i))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (e *Editor) renderBlock(i int) string {
	b := e.blocks[i]
	width := e.bounds.Width
	if b.Kind == KindRule {
		n := width
		if n <= 0 {
			n = 3
		}
		return styles.Rule.Render(strings.Repeat("─", n))
	}
	start := e.blockStart(i)
	from, to := e.sel.From(), e.sel.To()
	caretAt := -1
	if e.focused && e.sel.Empty() {
		if cb, off := e.resolve(e.sel.Head); cb == i {
			caretAt = off
		}
	}
	var sb strings.Builder
	if p := e.prefix(i); p != "" {
		sb.WriteString(styles.ListMarker.Render(p))
	}
	base := blockStyle(b.Kind)
	for j, r := range b.text {
		ch := string(r)
		if j == caretAt {
			e.caret.SetChar(ch)
			sb.WriteString(e.caret.View())
			continue
		}
		style := markStyle(base, b.marks[j])
		pos := start + j
		if !e.sel.Empty() && pos >= from && pos < to {
			style = style.Inherit(*styles.Selection)
		}
		sb.WriteString(style.Render(ch))
	}
	if caretAt == b.Len() {
		e.caret.SetChar(" ")
		sb.WriteString(e.caret.View())
	}
	if b.Len() == 0 && b.HasClass(e.emptyClass) && e.placeholder != "" && (caretAt == 0 || len(e.blocks) == 1) {
		sb.WriteString(styles.Placeholder.Render(e.placeholder))
	}
	line := sb.String()
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return line
}

func blockStyle(k Kind) lipgloss.Style {
	switch k {
	case KindHeading1:
		return *styles.Heading1
	case KindHeading2:
		return *styles.Heading2
	case KindBlockquote:
		return *styles.Quote
	case KindCodeBlock:
		return *styles.Code
	default:
		return lipgloss.NewStyle()
	}
}

func markStyle(base lipgloss.Style, m Mark) lipgloss.Style {
	if m == 0 {
		return base
	}
	style := base
	if m.Has(MarkBold) {
		style = style.Bold(true)
	}
	if m.Has(MarkItalic) {
		style = style.Italic(true)
	}
	if m.Has(MarkStrike) {
		style = style.Strikethrough(true)
	}
	if m.Has(MarkCode) {
		style = style.Inherit(*styles.Code)
	}
	return style
}
