// Package app hosts the slashpad Bubble Tea program: pages of editors, a
// modal dialog with its own editor, a markdown preview and the file picker
// behind the Attach Files command. The slash menu itself lives in
// internal/ui; this package only feeds it host lifecycle messages, keys and
// pointer events.
package app

import (
	"reflect"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/host"
	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/atomicstack/slashpad/internal/settings"
	"github.com/atomicstack/slashpad/internal/theme"
	"github.com/atomicstack/slashpad/internal/ui"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	editorTag     = "slash-editor"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for slashpad.
type Model struct {
	cfg         Config
	keys        keyMap
	ctrl        *ui.Controller
	root        *layout.Surface
	dialog      *layout.Surface
	dialogEl    *host.Element
	dialogOpen  bool
	pages       []*host.Page
	pageIdx     int
	focused     *editor.Editor
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	errMsg      string
	infoMsg     string

	preview     viewport.Model
	previewOpen bool
	renderer    *glamour.TermRenderer
	rendererW   int

	picker       filepicker.Model
	pickerOpen   bool
	pickerTarget *editor.Editor

	pending  []tea.Cmd
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the main page with two editors and the dialog editor. They
// are ready immediately and get attached when Init runs.
func NewModel(cfg Config) *Model {
	if cfg.Settings.Selectors.Editor == "" {
		cfg.Settings = settings.Default()
	}
	cfg.Settings.Selectors.Editor = editorTag
	m := &Model{
		cfg:     cfg,
		keys:    newKeyMap(),
		root:    layout.NewSurface("root", false),
		dialog:  layout.NewSurface("dialog", true),
		width:   defaultWidth,
		height:  defaultHeight,
		preview: viewport.New(0, 0),
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	home := host.NewPage("main")
	m.pages = []*host.Page{home}
	m.ctrl = ui.New(ui.Options{
		Placeholder: cfg.Placeholder,
		Settings:    &m.cfg.Settings,
		Root:        m.root,
		Page:        home,
	})

	first := m.newElement("main-1", m.root,
		editor.NewBlock(editor.KindHeading1, "Welcome to slashpad"),
		editor.NewBlock(editor.KindParagraph, "Type / for commands. Tab switches editors, ctrl+d opens a dialog."),
		editor.NewBlock(editor.KindParagraph, ""),
	)
	second := m.newElement("main-2", m.root)
	m.dialogEl = m.newElement("dialog", m.dialog)
	for _, el := range []*host.Element{first, second, m.dialogEl} {
		el.Options().Placeholder = m.ctrl.Placeholder()
		el.Initialize()
	}
	home.Add(first, second, m.dialogEl)
	m.layout()
	m.focusEditor(first.Editor())
	m.registerHandlers()
	return m
}

// newElement creates an editor element wired to the file picker.
func (m *Model) newElement(id string, container layout.Container, content ...*editor.Block) *host.Element {
	el := host.NewElement(id, editorTag, container, content...)
	el.AddControl(m.cfg.Settings.Selectors.FileInput, &fileInput{model: m, element: el})
	return el
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Init()
	return emit(host.ContentLoadedMsg{})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd, handled := m.ctrl.Update(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.layout()
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if m.pickerOpen {
		if cmd := m.updatePicker(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(elementReadyMsg{}):   m.handleElementReadyMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate batches cmds with anything queued by controls during the
// update.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.layout()
	if m.previewOpen {
		m.refreshPreview()
	}
	return nil
}

// Controller exposes the slash menu controller.
func (m *Model) Controller() *ui.Controller { return m.ctrl }

// Page returns the page on screen.
func (m *Model) Page() *host.Page { return m.pages[m.pageIdx] }

// Focused returns the editor receiving keys.
func (m *Model) Focused() *editor.Editor { return m.focused }

// DialogEditor returns the editor inside the modal dialog.
func (m *Model) DialogEditor() *editor.Editor { return m.dialogEl.Editor() }

func (m *Model) DialogOpen() bool { return m.dialogOpen }

func (m *Model) PreviewOpen() bool { return m.previewOpen }

func (m *Model) PickerOpen() bool { return m.pickerOpen }

// Err returns the message on the status line, if any.
func (m *Model) Err() string { return m.errMsg }

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
