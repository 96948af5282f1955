package app

import (
	"fmt"

	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func (m *Model) openPreview() {
	if m.focused == nil {
		return
	}
	m.previewOpen = true
	m.refreshPreview()
}

func (m *Model) closePreview() {
	m.previewOpen = false
	m.preview.SetContent("")
	m.layout()
}

// refreshPreview renders the focused document as markdown into the viewport.
func (m *Model) refreshPreview() {
	m.layout()
	if m.focused == nil {
		return
	}
	out, err := m.renderMarkdown(m.focused.Markdown())
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		out = m.focused.Markdown()
	}
	m.preview.SetContent(out)
	m.preview.GotoTop()
}

func (m *Model) renderMarkdown(md string) (string, error) {
	wrap := max(m.preview.Width-2, 20)
	if m.renderer == nil || m.rendererW != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return "", fmt.Errorf("preview renderer: %w", err)
		}
		m.renderer = r
		m.rendererW = wrap
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Preview) || key.Matches(msg, m.keys.Close) {
		m.closePreview()
		return nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return cmd
}
