package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if m.pickerOpen {
		return m.handlePickerKey(keyMsg)
	}
	if m.previewOpen {
		return m.handlePreviewKey(keyMsg)
	}
	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, m.keys.Dialog):
		m.toggleDialog()
		return nil
	case key.Matches(keyMsg, m.keys.Navigate):
		return m.navigate()
	case key.Matches(keyMsg, m.keys.Preview):
		m.openPreview()
		return nil
	}
	if ed := m.focused; ed != nil && ed.HandleKey(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.NextField):
		m.cycleFocus(1)
	case key.Matches(keyMsg, m.keys.PrevField):
		m.cycleFocus(-1)
	case key.Matches(keyMsg, m.keys.Close):
		if m.dialogOpen {
			m.toggleDialog()
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if m.pickerOpen {
		return nil
	}
	if m.previewOpen {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(mouse)
		return cmd
	}
	if m.ctrl.HandleMouse(mouse) {
		return nil
	}
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	for _, ed := range m.focusable() {
		if ed.Contains(mouse.X, mouse.Y) {
			if ed != m.focused {
				m.focusEditor(ed)
			}
			ed.ClickAt(mouse.X, mouse.Y)
			return nil
		}
	}
	return nil
}
