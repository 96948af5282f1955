package editor

import "fmt"

type step struct {
	name string
	fn   func(*Editor) (bool, error)
}

// Chain collects commands and applies them as one transaction.
type Chain struct {
	e     *Editor
	steps []step
	focus bool
}

// Chain starts a command chain.
func (e *Editor) Chain() *Chain {
	return &Chain{e: e}
}

func (c *Chain) add(name string, fn func(*Editor) (bool, error)) *Chain {
	c.steps = append(c.steps, step{name: name, fn: fn})
	return c
}

func (c *Chain) toggle(name string, kind Kind) *Chain {
	return c.add(name, func(e *Editor) (bool, error) {
		return e.toggleKind(kind), nil
	})
}

func (c *Chain) mark(name string, m Mark) *Chain {
	return c.add(name, func(e *Editor) (bool, error) {
		return e.toggleMark(m), nil
	})
}

// Focus gives the editor focus when the chain runs.
func (c *Chain) Focus() *Chain {
	c.focus = true
	return c
}

// ToggleHeading switches the selected blocks between a heading of the given
// level and a paragraph. Levels 1 and 2 are supported.
func (c *Chain) ToggleHeading(level int) *Chain {
	return c.add("heading", func(e *Editor) (bool, error) {
		switch level {
		case 1:
			return e.toggleKind(KindHeading1), nil
		case 2:
			return e.toggleKind(KindHeading2), nil
		default:
			return false, fmt.Errorf("unsupported heading level %d", level)
		}
	})
}

func (c *Chain) ToggleBold() *Chain        { return c.mark("bold", MarkBold) }
func (c *Chain) ToggleItalic() *Chain      { return c.mark("italic", MarkItalic) }
func (c *Chain) ToggleStrike() *Chain      { return c.mark("strike", MarkStrike) }
func (c *Chain) ToggleCode() *Chain        { return c.mark("code", MarkCode) }
func (c *Chain) ToggleBulletList() *Chain  { return c.toggle("bulletList", KindBulletItem) }
func (c *Chain) ToggleOrderedList() *Chain { return c.toggle("orderedList", KindOrderedItem) }
func (c *Chain) ToggleBlockquote() *Chain  { return c.toggle("blockquote", KindBlockquote) }
func (c *Chain) ToggleCodeBlock() *Chain   { return c.toggle("codeBlock", KindCodeBlock) }
func (c *Chain) SetHorizontalRule() *Chain { return c.add("horizontalRule", ruleStep) }

// SetTextSelection collapses the selection at pos.
func (c *Chain) SetTextSelection(pos int) *Chain {
	return c.add("setTextSelection", func(e *Editor) (bool, error) {
		if pos < 0 || pos > e.DocSize() {
			return false, ErrRange{From: pos, To: pos, Size: e.DocSize()}
		}
		e.collapse(pos)
		return false, nil
	})
}

func ruleStep(e *Editor) (bool, error) {
	return e.insertRule(), nil
}

// DeleteRange removes the document content in [from, to).
func (c *Chain) DeleteRange(from, to int) *Chain {
	return c.add("deleteRange", func(e *Editor) (bool, error) {
		return e.deleteRange(from, to)
	})
}

// InsertContent inserts text at the selection. Newlines split blocks.
func (c *Chain) InsertContent(text string) *Chain {
	return c.add("insertContent", func(e *Editor) (bool, error) {
		changed := false
		line := make([]rune, 0, len(text))
		for _, r := range text {
			if r == '\n' {
				changed = e.insertText(line) || changed
				changed = e.splitBlock() || changed
				line = line[:0]
				continue
			}
			line = append(line, r)
		}
		changed = e.insertText(line) || changed
		return changed, nil
	})
}

// Run applies every queued command. When one fails the document, selection
// and focus are restored and no listener is notified.
func (c *Chain) Run() error {
	e := c.e
	before := e.snapshot()
	var tr Transaction
	if c.focus && !e.focused {
		e.focused = true
		tr.FocusChanged = true
	}
	for _, s := range c.steps {
		changed, err := s.fn(e)
		if err != nil {
			e.restore(before)
			return fmt.Errorf("%s: %w", s.name, err)
		}
		tr.DocChanged = tr.DocChanged || changed
	}
	tr.SelectionChanged = e.sel != before.sel
	if !tr.DocChanged && !tr.SelectionChanged && !tr.FocusChanged {
		return nil
	}
	e.ensureVisible()
	e.notify(tr)
	return nil
}
