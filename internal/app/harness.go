package app

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the model programmatically for integration tests. Commands
// run synchronously and batches are expanded in order, so timers fire one
// after another rather than concurrently.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model and runs its Init
// command.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		h.processCmd(model.Init())
	}
	return h
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		return
	default:
		h.Send(msg)
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
