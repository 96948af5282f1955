package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/slashpad/internal/format/table"
	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
	"github.com/atomicstack/slashpad/internal/settings"
	uistate "github.com/atomicstack/slashpad/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const maxTitleWidth = 32

// Popup is the single dropdown shared by every session. It is mounted on at
// most one container at a time and bound to at most one session.
type Popup struct {
	cfg     settings.Dropdown
	root    layout.Container
	parent  layout.Container
	bound   string
	palette *uistate.Palette
	offset  layout.Point
	visible bool
}

// NewPopup returns a hidden popup that mounts on root unless the editor it
// serves lives in a modal container.
func NewPopup(root layout.Container, cfg settings.Dropdown) *Popup {
	return &Popup{cfg: cfg, root: root, palette: uistate.NewPalette()}
}

func (p *Popup) Visible() bool { return p.visible }

// BoundTo returns the id of the session that owns the popup, or "".
func (p *Popup) BoundTo() string { return p.bound }

// Parent returns the container the popup is mounted on.
func (p *Popup) Parent() layout.Container { return p.parent }

// Items returns the rendered commands.
func (p *Popup) Items() []menu.Command { return uistate.CloneCommands(p.palette.Items) }

// Highlight returns the highlighted index or -1.
func (p *Popup) Highlight() int { return p.palette.Highlight }

// Selected returns the highlighted command.
func (p *Popup) Selected() (menu.Command, bool) { return p.palette.Selected() }

// Render replaces the item list and binds the popup to sessionID. An empty
// list hides the popup instead.
func (p *Popup) Render(matched []menu.Command, sessionID string) {
	if len(matched) == 0 {
		p.Hide()
		return
	}
	if p.bound != "" && p.bound != sessionID {
		events.Popup.Rebind(p.bound, sessionID)
	}
	p.bound = sessionID
	p.palette.Reset(matched)
	p.palette.EnsureHighlightVisible(p.cfg.MaxVisible)
}

// SetHighlight marks index as highlighted and scrolls it into view.
// Indexes outside the list are ignored.
func (p *Popup) SetHighlight(index int) {
	if p.palette.SetHighlight(index, p.cfg.MaxVisible) {
		events.Popup.Highlight(p.bound, index)
	}
}

// Next moves the highlight down, wrapping at the end.
func (p *Popup) Next() {
	if p.palette.Next(p.cfg.MaxVisible) {
		events.Popup.Highlight(p.bound, p.palette.Highlight)
	}
}

// Prev moves the highlight up, wrapping at the start.
func (p *Popup) Prev() {
	if p.palette.Prev(p.cfg.MaxVisible) {
		events.Popup.Highlight(p.bound, p.palette.Highlight)
	}
}

// Show places the popup below the screen cell anchor. When host is modal the
// popup is mounted on it and positioned relative to its origin; otherwise it
// goes on the root container.
func (p *Popup) Show(anchor layout.Point, host layout.Container) {
	if p.palette.Len() == 0 {
		return
	}
	target := p.root
	if host != nil && host.Modal() {
		target = host
	}
	if target == nil {
		return
	}
	if p.parent != nil && p.parent != target {
		p.parent.Unmount(p)
	}
	target.Mount(p)
	p.parent = target
	p.offset = anchor.Sub(target.Bounds().Origin()).Add(layout.Point{Y: p.cfg.OffsetY})
	p.visible = true
	events.Popup.Show(p.bound, target.Name(), p.offset.X, p.offset.Y, p.palette.Len())
}

// Hide unmounts the popup and releases its session. Hiding a hidden popup
// does nothing.
func (p *Popup) Hide() {
	if !p.visible && p.parent == nil && p.bound == "" && p.palette.Len() == 0 {
		return
	}
	if p.parent != nil {
		p.parent.Unmount(p)
	}
	events.Popup.Hide(p.bound)
	p.parent = nil
	p.bound = ""
	p.visible = false
	p.palette.Clear()
}

// Offset is the popup position relative to its parent.
func (p *Popup) Offset() layout.Point { return p.offset }

// Bounds is the screen rectangle covered by the popup.
func (p *Popup) Bounds() layout.Rect {
	if !p.visible || p.parent == nil {
		return layout.Rect{}
	}
	view := p.View()
	origin := p.parent.Bounds().Origin().Add(p.offset)
	return layout.Rect{X: origin.X, Y: origin.Y, Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
}

// Contains reports whether the screen cell lies on the popup.
func (p *Popup) Contains(x, y int) bool {
	return p.Bounds().Contains(x, y)
}

// ItemAt maps a screen cell to the index of the item drawn there.
func (p *Popup) ItemAt(x, y int) (int, bool) {
	if !p.Contains(x, y) {
		return -1, false
	}
	b := p.Bounds()
	start, end := p.palette.Visible(p.cfg.MaxVisible)
	row := y - b.Y - 1
	if row < 0 || start+row >= end {
		return -1, false
	}
	return start + row, true
}

// View renders the visible window of items inside a border.
func (p *Popup) View() string {
	if !p.visible || p.palette.Len() == 0 {
		return ""
	}
	start, end := p.palette.Visible(p.cfg.MaxVisible)
	rows := make([][]string, 0, end-start)
	for _, cmd := range p.palette.Items[start:end] {
		title := truncate.StringWithTail(cmd.Title, maxTitleWidth, "…")
		rows = append(rows, []string{cmd.Icon, title})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft})
	width := max(table.Width(lines), p.cfg.MinWidth-2)
	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		line += strings.Repeat(" ", max(width-table.Width([]string{line}), 0))
		style := styles.PopupItem
		if start+i == p.palette.Highlight {
			style = styles.PopupChosen
		}
		out = append(out, style.Render(line))
	}
	if p.palette.Len() > end-start {
		hint := fmt.Sprintf("%d/%d", p.palette.Highlight+1, p.palette.Len())
		out = append(out, styles.PopupScroll.Render(lipgloss.PlaceHorizontal(width+2, lipgloss.Right, hint)))
	}
	return styles.Popup.Render(strings.Join(out, "\n"))
}
