package editor

import "fmt"

// ErrRange reports a position outside the document.
type ErrRange struct {
	From, To, Size int
}

func (e ErrRange) Error() string {
	return fmt.Sprintf("range [%d,%d) outside document of size %d", e.From, e.To, e.Size)
}

func (e *Editor) deleteRange(from, to int) (bool, error) {
	size := e.DocSize()
	if from < 0 || to > size || from > to {
		return false, ErrRange{From: from, To: to, Size: size}
	}
	if from == to {
		e.collapse(from)
		return false, nil
	}
	fb, fo := e.resolve(from)
	tb, toff := e.resolve(to)
	if fb == tb {
		e.blocks[fb].delete(fo, toff)
		e.collapse(from)
		return true, nil
	}
	first := e.blocks[fb]
	last := e.blocks[tb]
	if first.Kind == KindRule {
		first.Kind = last.Kind
	}
	first.text = append(first.text[:fo:fo], last.text[toff:]...)
	first.marks = append(first.marks[:fo:fo], last.marks[toff:]...)
	e.blocks = append(e.blocks[:fb+1:fb+1], e.blocks[tb+1:]...)
	e.collapse(from)
	return true, nil
}

func (e *Editor) deleteSelection() bool {
	if e.sel.Empty() {
		return false
	}
	changed, _ := e.deleteRange(e.sel.From(), e.sel.To())
	return changed
}

func (e *Editor) insertText(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	e.deleteSelection()
	block, offset := e.resolve(e.sel.Head)
	if e.blocks[block].Kind == KindRule {
		e.insertBlockAfter(block, NewBlock(KindParagraph, ""))
		block, offset = block+1, 0
	}
	mark := e.stored
	if mark == 0 && offset > 0 {
		mark = e.blocks[block].MarksAt(offset - 1)
	}
	e.blocks[block].insert(offset, runes, mark)
	e.collapse(e.blockStart(block) + offset + len(runes))
	return true
}

func (e *Editor) insertBlockAfter(index int, b *Block) {
	e.blocks = append(e.blocks, nil)
	copy(e.blocks[index+2:], e.blocks[index+1:])
	e.blocks[index+1] = b
}

func continues(k Kind) bool {
	switch k {
	case KindBulletItem, KindOrderedItem, KindBlockquote, KindCodeBlock:
		return true
	}
	return false
}

func (e *Editor) splitBlock() bool {
	e.deleteSelection()
	block, offset := e.resolve(e.sel.Head)
	b := e.blocks[block]
	if (b.Kind == KindBulletItem || b.Kind == KindOrderedItem) && b.Len() == 0 {
		b.Kind = KindParagraph
		return true
	}
	kind := KindParagraph
	if continues(b.Kind) {
		kind = b.Kind
	}
	if b.Kind == KindRule {
		e.insertBlockAfter(block, NewBlock(KindParagraph, ""))
	} else {
		e.insertBlockAfter(block, b.split(offset, kind))
	}
	e.collapse(e.blockStart(block + 1))
	return true
}

func (e *Editor) backspace() bool {
	if e.deleteSelection() {
		return true
	}
	pos := e.sel.Head
	block, offset := e.resolve(pos)
	if offset > 0 {
		changed, _ := e.deleteRange(pos-1, pos)
		return changed
	}
	b := e.blocks[block]
	if b.Kind != KindParagraph && b.Kind != KindRule {
		b.Kind = KindParagraph
		return true
	}
	if block == 0 {
		return false
	}
	changed, _ := e.deleteRange(pos-1, pos)
	return changed
}

func (e *Editor) forwardDelete() bool {
	if e.deleteSelection() {
		return true
	}
	pos := e.sel.Head
	if pos >= e.DocSize() {
		return false
	}
	changed, _ := e.deleteRange(pos, pos+1)
	return changed
}

// blockRange returns the first and last block indexes touched by the
// selection.
func (e *Editor) blockRange() (int, int) {
	first, _ := e.resolve(e.sel.From())
	last, _ := e.resolve(e.sel.To())
	return first, last
}

func (e *Editor) toggleKind(kind Kind) bool {
	first, last := e.blockRange()
	all := true
	for i := first; i <= last; i++ {
		if e.blocks[i].Kind != kind && e.blocks[i].Kind != KindRule {
			all = false
			break
		}
	}
	target := kind
	if all {
		target = KindParagraph
	}
	changed := false
	for i := first; i <= last; i++ {
		b := e.blocks[i]
		if b.Kind == KindRule || b.Kind == target {
			continue
		}
		b.Kind = target
		changed = true
	}
	return changed
}

func (e *Editor) toggleMark(m Mark) bool {
	if e.sel.Empty() {
		e.stored ^= m
		return false
	}
	from, to := e.sel.From(), e.sel.To()
	all := true
	e.eachInRange(from, to, func(b *Block, i int) {
		if !b.marks[i].Has(m) {
			all = false
		}
	})
	changed := false
	e.eachInRange(from, to, func(b *Block, i int) {
		next := b.marks[i] | m
		if all {
			next = b.marks[i] &^ m
		}
		if next != b.marks[i] {
			b.marks[i] = next
			changed = true
		}
	})
	return changed
}

func (e *Editor) eachInRange(from, to int, fn func(*Block, int)) {
	fb, fo := e.resolve(from)
	tb, toff := e.resolve(to)
	for bi := fb; bi <= tb; bi++ {
		b := e.blocks[bi]
		start, end := 0, b.Len()
		if bi == fb {
			start = fo
		}
		if bi == tb {
			end = toff
		}
		for i := start; i < end; i++ {
			fn(b, i)
		}
	}
}

func (e *Editor) insertRule() bool {
	e.deleteSelection()
	block, _ := e.resolve(e.sel.Head)
	b := e.blocks[block]
	if b.Kind == KindParagraph && b.Len() == 0 {
		b.Kind = KindRule
		e.insertBlockAfter(block, NewBlock(KindParagraph, ""))
		e.collapse(e.blockStart(block + 1))
		return true
	}
	e.insertBlockAfter(block, NewBlock(KindRule, ""))
	e.insertBlockAfter(block+1, NewBlock(KindParagraph, ""))
	e.collapse(e.blockStart(block + 2))
	return true
}
