package app

import (
	"time"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/host"
	"github.com/atomicstack/slashpad/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// elementReadyMsg marks the moment an element finishes building its editor.
type elementReadyMsg struct {
	element *host.Element
}

// bodyElements returns the elements drawn in the page body, dialog excluded.
func (m *Model) bodyElements() []*host.Element {
	var out []*host.Element
	for _, el := range m.Page().QuerySelectorAll(editorTag) {
		if el.Container() == m.dialog {
			continue
		}
		out = append(out, el)
	}
	return out
}

// focusable lists the editors that may take focus right now.
func (m *Model) focusable() []*editor.Editor {
	if m.dialogOpen {
		return []*editor.Editor{m.dialogEl.Editor()}
	}
	var out []*editor.Editor
	for _, el := range m.bodyElements() {
		if el.Ready() {
			out = append(out, el.Editor())
		}
	}
	return out
}

// allEditors lists every built editor, visible or not.
func (m *Model) allEditors() []*editor.Editor {
	seen := map[*editor.Editor]bool{}
	var out []*editor.Editor
	for _, p := range m.pages {
		for _, el := range p.Elements() {
			if ed := el.Editor(); ed != nil && !seen[ed] {
				seen[ed] = true
				out = append(out, ed)
			}
		}
	}
	return out
}

// focusEditor blurs every other editor before focusing ed, so a popup owned
// by the previous editor closes before ed gets a chance to open one.
func (m *Model) focusEditor(ed *editor.Editor) {
	for _, other := range m.allEditors() {
		if other != ed {
			other.Blur()
		}
	}
	m.focused = ed
	if ed == nil {
		return
	}
	ed.Focus()
	events.App.Focus(ed.ID())
}

func (m *Model) cycleFocus(delta int) {
	eds := m.focusable()
	if len(eds) == 0 {
		return
	}
	idx := -1
	for i, ed := range eds {
		if ed == m.focused {
			idx = i
			break
		}
	}
	next := 0
	if idx >= 0 {
		next = (idx + delta + len(eds)) % len(eds)
	}
	m.focusEditor(eds[next])
}

func (m *Model) toggleDialog() {
	m.dialogOpen = !m.dialogOpen
	events.App.Dialog(m.dialogOpen)
	m.layout()
	if m.dialogOpen {
		m.focusEditor(m.dialogEl.Editor())
		return
	}
	m.focusEditor(firstOf(m.focusable()))
}

// navigate moves to the next page, building the notes page on first visit.
// Its editors initialise after a delay, announced through the same lifecycle
// messages a real host would send.
func (m *Model) navigate() tea.Cmd {
	if m.dialogOpen {
		m.toggleDialog()
	}
	var cmds []tea.Cmd
	if len(m.pages) == 1 {
		page, build := m.buildNotesPage()
		m.pages = append(m.pages, page)
		cmds = append(cmds, build...)
	}
	m.pageIdx = (m.pageIdx + 1) % len(m.pages)
	page := m.Page()
	events.App.Navigate(page.Name())
	m.layout()
	m.focusEditor(firstOf(m.focusable()))
	cmds = append(cmds, emit(host.NavigateMsg{Page: page}))
	return tea.Batch(cmds...)
}

func (m *Model) buildNotesPage() (*host.Page, []tea.Cmd) {
	page := host.NewPage("notes")
	timing := m.cfg.Settings.Timing
	quick := m.newElement("notes-1", m.root,
		editor.NewBlock(editor.KindHeading2, "Notes"),
		editor.NewBlock(editor.KindParagraph, ""),
	)
	slow := m.newElement("notes-2", m.root)
	page.Add(quick, slow, m.dialogEl)

	var cmds []tea.Cmd
	delays := map[*host.Element]time.Duration{
		quick: timing.InitialDelay.Duration() / 2,
		slow:  timing.InitialDelay.Duration() + 2*timing.RetryInterval.Duration(),
	}
	for _, el := range []*host.Element{quick, slow} {
		cmds = append(cmds,
			emit(host.BeforeInitializeMsg{Element: el}),
			emit(host.InitializeMsg{Element: el}),
			tea.Tick(delays[el], func(time.Time) tea.Msg { return elementReadyMsg{element: el} }),
		)
	}
	return page, cmds
}

func (m *Model) handleElementReadyMsg(msg tea.Msg) tea.Cmd {
	el := msg.(elementReadyMsg).element
	el.Initialize()
	m.layout()
	if m.focused == nil && !m.dialogOpen {
		if eds := m.focusable(); len(eds) > 0 {
			m.focusEditor(eds[0])
		}
	}
	return nil
}

func firstOf(eds []*editor.Editor) *editor.Editor {
	if len(eds) == 0 {
		return nil
	}
	return eds[0]
}
