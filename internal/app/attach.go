package app

import (
	"fmt"
	"path/filepath"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/host"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// fileInput is the control registered next to every editor under the file
// input selector. Clicking it opens the file picker for that editor.
type fileInput struct {
	model   *Model
	element *host.Element
}

func (f *fileInput) Click() {
	f.model.openPicker(f.element.Editor())
}

func (m *Model) openPicker(target *editor.Editor) {
	if target == nil {
		return
	}
	fp := filepicker.New()
	fp.CurrentDirectory = m.cfg.AttachDir
	if fp.CurrentDirectory == "" {
		fp.CurrentDirectory = "."
	}
	fp.Height = max(m.height-8, 3)
	m.picker = fp
	m.pickerOpen = true
	m.pickerTarget = target
	m.pending = append(m.pending, m.picker.Init())
}

func (m *Model) closePicker() {
	m.pickerOpen = false
	m.pickerTarget = nil
	m.picker = filepicker.New()
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		m.closePicker()
		return nil
	}
	return m.updatePicker(msg)
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		if err := m.insertAttachment(m.pickerTarget, path); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
		m.closePicker()
		return cmd
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.errMsg = fmt.Sprintf("file %s is not allowed", path)
	}
	return cmd
}

// insertAttachment writes a line naming path at the caret of ed.
func (m *Model) insertAttachment(ed *editor.Editor, path string) error {
	if ed == nil {
		return nil
	}
	line := "[attachment] " + filepath.Base(path)
	if ed.Cursor().BlockText != "" {
		line = "\n" + line
	}
	if err := ed.Chain().Focus().InsertContent(line).Run(); err != nil {
		return fmt.Errorf("attach %s: %w", path, err)
	}
	events.App.Attachment(ed.ID(), path)
	if m.cfg.Verbose {
		m.infoMsg = "attached " + filepath.Base(path)
	}
	return nil
}
