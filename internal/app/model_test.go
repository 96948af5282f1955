package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "app.log"))
	s := settings.Default()
	s.Timing.RetryInterval = 1
	s.Timing.MaxRetries = 2
	s.Timing.InitialDelay = 1
	s.Timing.TurboDelay = 1
	return NewHarness(NewModel(Config{
		Width:     80,
		Height:    24,
		AttachDir: t.TempDir(),
		Settings:  s,
	}))
}

func typeKeys(h *Harness, text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func sendKey(h *Harness, k tea.KeyType) {
	h.Send(tea.KeyMsg{Type: k})
}

func editorByID(t *testing.T, m *Model, id string) *editor.Editor {
	t.Helper()
	for _, p := range m.pages {
		if el, ok := p.Find(id); ok {
			require.NotNil(t, el.Editor(), "editor %s not built", id)
			return el.Editor()
		}
	}
	t.Fatalf("no element %s", id)
	return nil
}

func TestStartupAttachesEveryEditor(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	require.True(t, m.Controller().Initialized())
	require.Len(t, m.Controller().Sessions(), 3)
	require.Same(t, editorByID(t, m, "main-1"), m.Focused())
	require.Equal(t, "Write something or type / for options", m.DialogEditor().Placeholder())
	require.Contains(t, h.View(), "Welcome to slashpad")
}

func TestSlashCommandFromKeyboard(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()

	sendKey(h, tea.KeyTab)
	second := editorByID(t, m, "main-2")
	require.Same(t, second, m.Focused())

	typeKeys(h, "/")
	require.True(t, m.Controller().Popup().Visible())
	require.Contains(t, h.View(), "Heading 1")

	sendKey(h, tea.KeyTab)
	require.Same(t, second, m.Focused(), "tab moves the highlight while the popup is open")
	require.Equal(t, 1, m.Controller().Popup().Highlight())

	sendKey(h, tea.KeyEnter)
	require.False(t, m.Controller().Popup().Visible())
	require.Equal(t, editor.KindHeading2, second.Block(0).Kind)
	require.Equal(t, "", second.Text())
}

func TestDialogHostsPopup(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()

	sendKey(h, tea.KeyCtrlD)
	require.True(t, m.DialogOpen())
	require.Same(t, m.DialogEditor(), m.Focused())

	typeKeys(h, "/")
	p := m.Controller().Popup()
	require.True(t, p.Visible())
	require.Same(t, m.dialog, p.Parent())
	require.Equal(t, 3, p.Offset().X)
	require.Equal(t, 3, p.Offset().Y)
	require.Contains(t, h.View(), "Dialog")

	sendKey(h, tea.KeyEsc)
	require.False(t, p.Visible())
	require.True(t, m.DialogOpen())

	sendKey(h, tea.KeyEsc)
	require.False(t, m.DialogOpen())
	require.Same(t, editorByID(t, m, "main-1"), m.Focused())
}

func TestClickingAnotherEditorClosesPopup(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	first := editorByID(t, m, "main-1")
	second := editorByID(t, m, "main-2")

	typeKeys(h, "/")
	p := m.Controller().Popup()
	require.True(t, p.Visible())

	b := second.Bounds()
	x, y := b.X+b.Width-2, b.Y+1
	require.False(t, p.Contains(x, y))
	h.Send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	require.False(t, p.Visible())
	require.Same(t, second, m.Focused())
	require.False(t, first.Focused())
	require.True(t, second.Focused())
}

func TestNavigationBindsLateEditors(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()

	sendKey(h, tea.KeyCtrlN)
	require.Equal(t, "notes", m.Page().Name())
	quick := editorByID(t, m, "notes-1")
	slow := editorByID(t, m, "notes-2")
	require.Len(t, m.Controller().Sessions(), 5)
	_, ok := m.Controller().Session(slow)
	require.True(t, ok)
	require.Same(t, quick, m.Focused())

	typeKeys(h, "/")
	require.True(t, m.Controller().Popup().Visible())

	sendKey(h, tea.KeyCtrlN)
	require.Equal(t, "main", m.Page().Name())
	require.False(t, m.Controller().Popup().Visible())
	require.Len(t, m.Controller().Sessions(), 5)
	require.Same(t, editorByID(t, m, "main-1"), m.Focused())
}

func TestPreviewToggle(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()

	sendKey(h, tea.KeyCtrlP)
	require.True(t, m.PreviewOpen())
	require.Contains(t, h.View(), "(preview)")

	typeKeys(h, "x")
	require.Equal(t, "Welcome to slashpad", editorByID(t, m, "main-1").Block(0).Text())

	sendKey(h, tea.KeyCtrlP)
	require.False(t, m.PreviewOpen())
}

func TestAttachFilesOpensPicker(t *testing.T) {
	h := newTestHarness(t)
	m := h.Model()
	require.NoError(t, os.WriteFile(filepath.Join(m.cfg.AttachDir, "report.pdf"), []byte("x"), 0o644))

	sendKey(h, tea.KeyTab)
	typeKeys(h, "/attach")
	require.Equal(t, "Attach Files", m.Controller().Popup().Items()[0].Title)
	sendKey(h, tea.KeyEnter)

	second := editorByID(t, m, "main-2")
	require.True(t, m.PickerOpen())
	require.Equal(t, "", second.Text())
	require.Contains(t, h.View(), "Attach a file")

	sendKey(h, tea.KeyEsc)
	require.False(t, m.PickerOpen())

	require.NoError(t, m.insertAttachment(second, filepath.Join(m.cfg.AttachDir, "report.pdf")))
	require.Equal(t, "[attachment] report.pdf", second.Text())
}

func TestQuit(t *testing.T) {
	h := newTestHarness(t)
	_, cmd := h.Model().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestWindowResizeRelayouts(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "app.log"))
	m := NewModel(Config{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	first := editorByID(t, m, "main-1")
	require.Equal(t, 96, first.Bounds().Width)
	require.Equal(t, 100, m.root.Bounds().Width)
}
