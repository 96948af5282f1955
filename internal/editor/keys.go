package editor

import tea "github.com/charmbracelet/bubbletea"

// KeyEvent wraps a key press on its way to the editor. Listeners can stop it
// from reaching later listeners and from the default editing behaviour.
type KeyEvent struct {
	Msg       tea.KeyMsg
	prevented bool
	stopped   bool
}

// PreventDefault suppresses the editor's own handling of the key.
func (ev *KeyEvent) PreventDefault() { ev.prevented = true }

// StopPropagation keeps later listeners from seeing the key.
func (ev *KeyEvent) StopPropagation() { ev.stopped = true }

func (ev *KeyEvent) DefaultPrevented() bool { return ev.prevented }

// KeyListener observes key events before the editor handles them.
type KeyListener func(*KeyEvent)

type keySub struct {
	id      int
	fn      KeyListener
	capture bool
}

// AddKeyListener registers fn. Capture listeners run before bubble
// listeners. The returned function removes the listener.
func (e *Editor) AddKeyListener(fn KeyListener, capture bool) func() {
	e.nextSub++
	id := e.nextSub
	e.keys = append(e.keys, keySub{id: id, fn: fn, capture: capture})
	return func() {
		for i, sub := range e.keys {
			if sub.id == id {
				e.keys = append(e.keys[:i:i], e.keys[i+1:]...)
				return
			}
		}
	}
}

// HandleKey dispatches msg through the listeners and then applies the
// default editing behaviour. It reports whether the key was consumed.
func (e *Editor) HandleKey(msg tea.KeyMsg) bool {
	ev := &KeyEvent{Msg: msg}
	subs := append([]keySub(nil), e.keys...)
	for _, phase := range []bool{true, false} {
		for _, sub := range subs {
			if ev.stopped {
				break
			}
			if sub.capture == phase {
				sub.fn(ev)
			}
		}
	}
	if ev.prevented {
		return true
	}
	return e.defaultKey(msg)
}

func (e *Editor) defaultKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		return e.commit(e.insertText(msg.Runes))
	case tea.KeySpace:
		return e.commit(e.insertText([]rune{' '}))
	case tea.KeyEnter:
		return e.commit(e.splitBlock())
	case tea.KeyBackspace:
		e.commit(e.backspace())
		return true
	case tea.KeyDelete:
		e.commit(e.forwardDelete())
		return true
	case tea.KeyLeft:
		e.moveHorizontal(-1, false)
	case tea.KeyRight:
		e.moveHorizontal(1, false)
	case tea.KeyShiftLeft:
		e.moveHorizontal(-1, true)
	case tea.KeyShiftRight:
		e.moveHorizontal(1, true)
	case tea.KeyUp:
		e.moveVertical(-1, false)
	case tea.KeyDown:
		e.moveVertical(1, false)
	case tea.KeyShiftUp:
		e.moveVertical(-1, true)
	case tea.KeyShiftDown:
		e.moveVertical(1, true)
	case tea.KeyHome:
		e.moveLineEdge(false, false)
	case tea.KeyEnd:
		e.moveLineEdge(true, false)
	case tea.KeyShiftHome:
		e.moveLineEdge(false, true)
	case tea.KeyShiftEnd:
		e.moveLineEdge(true, true)
	default:
		return false
	}
	return true
}

// commit notifies listeners about a document change made by a key.
func (e *Editor) commit(changed bool) bool {
	if !changed {
		return true
	}
	e.ensureVisible()
	e.notify(Transaction{DocChanged: true, SelectionChanged: true})
	return true
}

func (e *Editor) moveTo(head int, extend bool) {
	anchor := head
	if extend {
		anchor = e.sel.Anchor
	}
	e.SetSelection(anchor, head)
}

func (e *Editor) moveHorizontal(delta int, extend bool) {
	if !extend && !e.sel.Empty() {
		if delta < 0 {
			e.moveTo(e.sel.From(), false)
		} else {
			e.moveTo(e.sel.To(), false)
		}
		return
	}
	e.moveTo(e.clamp(e.sel.Head+delta), extend)
}

func (e *Editor) moveVertical(delta int, extend bool) {
	block, offset := e.resolve(e.sel.Head)
	target := block + delta
	if target < 0 {
		e.moveTo(0, extend)
		return
	}
	if target >= len(e.blocks) {
		e.moveTo(e.DocSize(), extend)
		return
	}
	if n := e.blocks[target].Len(); offset > n {
		offset = n
	}
	e.moveTo(e.blockStart(target)+offset, extend)
}

func (e *Editor) moveLineEdge(end bool, extend bool) {
	block, _ := e.resolve(e.sel.Head)
	pos := e.blockStart(block)
	if end {
		pos += e.blocks[block].Len()
	}
	e.moveTo(pos, extend)
}
