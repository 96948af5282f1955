package app

import (
	"fmt"
	"strings"

	"github.com/atomicstack/slashpad/internal/host"
	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerRows     = 1
	minEditorRows  = 3
	dialogMaxWidth = 60
	dialogRows     = 16
)

func (m *Model) footerRows() int {
	if m.cfg.ShowFooter || m.errMsg != "" || m.infoMsg != "" {
		return 1
	}
	return 0
}

func (m *Model) bodyRect() layout.Rect {
	h := max(m.height-headerRows-m.footerRows(), 0)
	return layout.Rect{X: 0, Y: headerRows, Width: m.width, Height: h}
}

// editorBoxes splits the body between the page's editors.
func (m *Model) editorBoxes() map[*host.Element]layout.Rect {
	els := m.bodyElements()
	boxes := make(map[*host.Element]layout.Rect, len(els))
	if len(els) == 0 {
		return boxes
	}
	body := m.bodyRect()
	h := max(body.Height/len(els), minEditorRows)
	for i, el := range els {
		boxes[el] = layout.Rect{X: body.X, Y: body.Y + i*h, Width: body.Width, Height: h}
	}
	return boxes
}

func (m *Model) dialogRect() layout.Rect {
	w := min(dialogMaxWidth, max(m.width-4, 10))
	h := min(dialogRows, max(m.height-2, minEditorRows+3))
	return layout.Rect{X: (m.width - w) / 2, Y: (m.height - h) / 2, Width: w, Height: h}
}

// layout positions the surfaces and every editor's text area. Editors that
// are not on screen get an empty rectangle so pointer hits miss them.
func (m *Model) layout() {
	m.root.SetBounds(layout.Rect{Width: m.width, Height: m.height})
	for _, ed := range m.allEditors() {
		ed.SetBounds(layout.Rect{})
	}
	if !m.previewOpen {
		for el, box := range m.editorBoxes() {
			if ed := el.Editor(); ed != nil {
				ed.SetBounds(layout.Rect{X: box.X + 2, Y: box.Y + 1, Width: max(box.Width-4, 1), Height: max(box.Height-2, 1)})
			}
		}
	}
	d := m.dialogRect()
	m.dialog.SetBounds(d)
	if m.dialogOpen {
		m.dialogEl.Editor().SetBounds(layout.Rect{X: d.X + 2, Y: d.Y + 2, Width: max(d.Width-4, 1), Height: max(d.Height-3, 1)})
	}
	body := m.bodyRect()
	m.preview.Width = max(body.Width-2, 1)
	m.preview.Height = max(body.Height-2, 1)
}

// View renders the page, then the root popup, then the dialog with its own
// popup on top.
func (m *Model) View() string {
	lines := []string{m.headerView()}
	lines = append(lines, m.bodyView())
	if m.footerRows() > 0 {
		lines = append(lines, m.footerView())
	}
	base := strings.Join(lines, "\n")
	base = m.root.Composite(base)
	if m.dialogOpen {
		d := m.dialog.Bounds()
		box := m.dialog.Composite(m.dialogView(d))
		base = layout.PlaceOverlay(d.X, d.Y, box, base, m.width, m.height)
	}
	if m.pickerOpen {
		box := m.pickerView()
		x := max((m.width-lipgloss.Width(box))/2, 0)
		y := max((m.height-lipgloss.Height(box))/2, 0)
		base = layout.PlaceOverlay(x, y, box, base, m.width, m.height)
	}
	return base
}

func (m *Model) headerView() string {
	title := fmt.Sprintf("slashpad / %s", m.Page().Name())
	if m.previewOpen {
		title += " (preview)"
	}
	return styles.Header.Render(title)
}

func (m *Model) bodyView() string {
	body := m.bodyRect()
	if m.previewOpen {
		return styles.PreviewFrame.Width(body.Width - 2).Height(body.Height - 2).Render(m.preview.View())
	}
	boxes := m.editorBoxes()
	var parts []string
	for _, el := range m.bodyElements() {
		parts = append(parts, m.editorBox(el, boxes[el]))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if pad := body.Height - lipgloss.Height(out); pad > 0 && out != "" {
		out += strings.Repeat("\n", pad)
	}
	return out
}

func (m *Model) editorBox(el *host.Element, box layout.Rect) string {
	style := *styles.EditorFrame
	if ed := el.Editor(); ed != nil && ed == m.focused {
		style = *styles.EditorFocus
	}
	style = style.Width(max(box.Width-2, 1)).Height(max(box.Height-2, 1))
	ed := el.Editor()
	if ed == nil {
		return style.Render(styles.Placeholder.Render("loading editor…"))
	}
	return style.Render(ed.View())
}

func (m *Model) dialogView(d layout.Rect) string {
	ed := m.dialogEl.Editor()
	content := styles.DialogTitle.Render("Dialog (esc to close)") + "\n" + ed.View()
	style := styles.Dialog.Width(max(d.Width-2, 1)).Height(max(d.Height-2, 1))
	return style.Render(content)
}

func (m *Model) pickerView() string {
	title := styles.DialogTitle.Render("Attach a file (enter to choose, esc to cancel)")
	return styles.Dialog.Render(title + "\n" + m.picker.View())
}

func (m *Model) footerView() string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render(m.errMsg)
	case m.infoMsg != "":
		return styles.Info.Render(m.infoMsg)
	}
	bindings := m.keys.ShortHelp()
	if m.ctrl.Popup().Visible() {
		bindings = m.ctrl.Keys().ShortHelp()
	}
	return styles.Footer.Render(helpLine(bindings))
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
