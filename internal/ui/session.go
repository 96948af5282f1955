package ui

import (
	"strings"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/ui/command"
	uistate "github.com/atomicstack/slashpad/internal/ui/state"
	"github.com/google/uuid"
)

// Session binds the slash menu to one editor.
type Session struct {
	id      string
	ed      *editor.Editor
	ctrl    *Controller
	trigger uistate.Trigger
}

func newSession(ctrl *Controller, ed *editor.Editor) *Session {
	s := &Session{id: uuid.NewString(), ed: ed, ctrl: ctrl}
	ed.SetEmptyClass(ctrl.cfg.Classes.Empty)
	ed.OnUpdate(s.onUpdate)
	ed.AddKeyListener(s.onKey, true)
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Editor() *editor.Editor { return s.ed }

// Trigger returns the trigger state computed on the last update.
func (s *Session) Trigger() uistate.Trigger { return s.trigger }

func (s *Session) bus() *command.Bus { return s.ctrl.bus }

func (s *Session) popup() *Popup { return s.ctrl.popup }

func (s *Session) ownsPopup() bool {
	p := s.popup()
	return p.Visible() && p.BoundTo() == s.id
}

func (s *Session) onUpdate(_ *editor.Editor, tr editor.Transaction) {
	s.bus().Safe("editor update", func() error {
		s.refreshEmpty()
		if tr.FocusChanged && !s.ed.Focused() {
			events.Session.Blur(s.id)
			s.trigger = uistate.Trigger{}
			if s.ownsPopup() {
				s.popup().Hide()
			}
			return nil
		}
		s.check()
		return nil
	})
}

// refreshEmpty flags blank paragraphs so the editor draws the placeholder.
// It only runs while the selection is collapsed.
func (s *Session) refreshEmpty() {
	if !s.ed.Selection().Empty() {
		return
	}
	cfg := s.ctrl.cfg
	matching := map[int]bool{}
	for _, i := range s.ed.QueryBlocks(cfg.Selectors.Paragraph) {
		matching[i] = true
	}
	empty := 0
	for i, b := range s.ed.Blocks() {
		blank := matching[i] && strings.TrimSpace(b.Text()) == ""
		if blank {
			empty++
		}
		s.ed.SetBlockClass(i, cfg.Classes.Empty, blank)
	}
	events.Session.EmptyBlocks(s.id, empty)
}

// check recomputes the trigger and shows, refreshes or hides the popup.
func (s *Session) check() {
	cur := s.ed.Cursor()
	if !cur.Empty {
		s.deactivate()
		return
	}
	t := uistate.DetectAt(cur.BlockText, cur.ParentOffset, cur.Pos-cur.ParentOffset)
	s.trigger = t
	if !t.Active {
		s.deactivate()
		return
	}
	events.Trigger.Active(s.id, t.Query, t.Slash)
	matched := uistate.FilterCommands(s.ctrl.registry.Commands(), t.Query)
	p := s.popup()
	if len(matched) == 0 {
		p.Hide()
		return
	}
	coords := s.ed.CoordsAtPos(cur.Pos)
	p.Render(matched, s.id)
	var container layout.Container
	if host := s.ed.Host(); host != nil {
		container = host.Container()
	}
	p.Show(layout.Point{X: coords.Left, Y: coords.Bottom}, container)
}

func (s *Session) deactivate() {
	s.trigger = uistate.Trigger{}
	events.Trigger.Inactive(s.id)
	if s.ownsPopup() {
		s.popup().Hide()
	}
}

func (s *Session) onKey(ev *editor.KeyEvent) {
	handled := false
	s.bus().Safe("key", func() error {
		action := s.ctrl.router.Route(s.ownsPopup(), ev.Msg)
		if action == ActionNone {
			return nil
		}
		handled = true
		events.Router.Key(s.id, ev.Msg.String(), action.String())
		switch action {
		case ActionHide:
			s.popup().Hide()
		case ActionNext:
			s.popup().Next()
		case ActionPrev:
			s.popup().Prev()
		case ActionExecute:
			s.executeSelected()
		}
		return nil
	})
	if handled {
		ev.PreventDefault()
		ev.StopPropagation()
	}
}

// executeSelected runs the highlighted command. The popup is hidden before
// the document changes. The trigger text is located again from the live
// selection and removed when found; the action runs either way.
func (s *Session) executeSelected() {
	p := s.popup()
	cmd, ok := p.Selected()
	if !ok {
		return
	}
	p.Hide()
	s.bus().Safe("remove trigger", s.removeTrigger)
	s.bus().Execute(s.ed, command.Request{ID: s.id, Label: cmd.Title, Handler: cmd.Action})
}

func (s *Session) removeTrigger() error {
	cur := s.ed.Cursor()
	t := uistate.DetectAt(cur.BlockText, cur.ParentOffset, cur.Pos-cur.ParentOffset)
	if !t.Active {
		return nil
	}
	return s.ed.Chain().Focus().DeleteRange(t.Anchor, cur.Pos).Run()
}
