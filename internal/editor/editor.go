// Package editor is a small block-structured rich-text engine. It owns the
// document, the selection, a chainable command API and capture-phase key
// listeners, and maps document positions to screen cells for anything that
// needs to float next to the caret.
package editor

import (
	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/charmbracelet/bubbles/cursor"
)

// Transaction summarises what changed in a single update.
type Transaction struct {
	DocChanged       bool
	SelectionChanged bool
	FocusChanged     bool
}

// UpdateFunc receives every committed transaction.
type UpdateFunc func(*Editor, Transaction)

type updateSub struct {
	id int
	fn UpdateFunc
}

// DefaultEmptyClass is the block class rendered with the placeholder.
const DefaultEmptyClass = "is-empty"

// Options configures a new editor.
type Options struct {
	ID          string
	Placeholder string
	Host        Host
	Content     []*Block
}

// Editor is one editable document.
type Editor struct {
	id          string
	blocks      []*Block
	sel         Selection
	stored      Mark
	focused     bool
	placeholder string
	emptyClass  string
	host        Host
	bounds      layout.Rect
	scroll      int
	caret       cursor.Model

	updates []updateSub
	keys    []keySub
	nextSub int
}

// New builds an editor holding opts.Content, or a single empty paragraph.
func New(opts Options) *Editor {
	blocks := make([]*Block, 0, len(opts.Content))
	for _, b := range opts.Content {
		if b != nil {
			blocks = append(blocks, b.clone())
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, NewBlock(KindParagraph, ""))
	}
	c := cursor.New()
	c.Focus()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	return &Editor{
		id:          opts.ID,
		blocks:      blocks,
		placeholder: opts.Placeholder,
		emptyClass:  DefaultEmptyClass,
		host:        opts.Host,
		caret:       c,
	}
}

func (e *Editor) ID() string { return e.id }

// Host returns the element the editor is mounted in, if any.
func (e *Editor) Host() Host { return e.host }

// SetHost attaches the editor to its host element.
func (e *Editor) SetHost(h Host) { e.host = h }

func (e *Editor) Placeholder() string { return e.placeholder }

// SetPlaceholder changes the text shown in empty blocks.
func (e *Editor) SetPlaceholder(text string) { e.placeholder = text }

// SetEmptyClass names the block class that marks a block as showing the
// placeholder.
func (e *Editor) SetEmptyClass(class string) { e.emptyClass = class }

// Blocks returns the live block list. Callers must not mutate it.
func (e *Editor) Blocks() []*Block { return e.blocks }

// Block returns the block at index i or nil.
func (e *Editor) Block(i int) *Block {
	if i < 0 || i >= len(e.blocks) {
		return nil
	}
	return e.blocks[i]
}

// Text returns the document as plain text, one line per block.
func (e *Editor) Text() string {
	out := make([]rune, 0, e.DocSize())
	for i, b := range e.blocks {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, b.text...)
	}
	return string(out)
}

// DocSize is the largest valid position.
func (e *Editor) DocSize() int {
	size := 0
	for i, b := range e.blocks {
		if i > 0 {
			size++
		}
		size += b.Len()
	}
	return size
}

func (e *Editor) Selection() Selection { return e.sel }

// SetSelection moves the selection and notifies listeners.
func (e *Editor) SetSelection(anchor, head int) {
	next := Selection{Anchor: e.clamp(anchor), Head: e.clamp(head)}
	if next == e.sel {
		return
	}
	e.sel = next
	e.stored = 0
	e.ensureVisible()
	e.notify(Transaction{SelectionChanged: true})
}

// Cursor describes the selection head.
func (e *Editor) Cursor() Cursor {
	block, offset := e.resolve(e.sel.Head)
	return Cursor{
		Pos:          e.sel.Head,
		Block:        block,
		ParentOffset: offset,
		BlockText:    e.blocks[block].Text(),
		Empty:        e.sel.Empty(),
	}
}

func (e *Editor) Focused() bool { return e.focused }

// Focus gives the editor keyboard focus.
func (e *Editor) Focus() {
	if e.focused {
		return
	}
	e.focused = true
	e.notify(Transaction{FocusChanged: true})
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	if !e.focused {
		return
	}
	e.focused = false
	e.notify(Transaction{FocusChanged: true})
}

func (e *Editor) Bounds() layout.Rect { return e.bounds }

// SetBounds places the text area on screen.
func (e *Editor) SetBounds(r layout.Rect) {
	e.bounds = r
	e.ensureVisible()
}

// Contains reports whether the screen cell belongs to the text area.
func (e *Editor) Contains(x, y int) bool {
	return e.bounds.Contains(x, y)
}

// OnUpdate registers fn for every committed transaction and returns a
// function that removes it.
func (e *Editor) OnUpdate(fn UpdateFunc) func() {
	e.nextSub++
	id := e.nextSub
	e.updates = append(e.updates, updateSub{id: id, fn: fn})
	return func() {
		for i, sub := range e.updates {
			if sub.id == id {
				e.updates = append(e.updates[:i:i], e.updates[i+1:]...)
				return
			}
		}
	}
}

func (e *Editor) notify(tr Transaction) {
	subs := append([]updateSub(nil), e.updates...)
	for _, sub := range subs {
		sub.fn(e, tr)
	}
}

// SetBlockClass toggles a presentation class on block i. Class changes are
// not transactions and do not notify.
func (e *Editor) SetBlockClass(i int, class string, on bool) bool {
	b := e.Block(i)
	if b == nil {
		return false
	}
	return b.setClass(class, on)
}

// QueryBlocks returns the indexes of blocks whose tag matches selector.
func (e *Editor) QueryBlocks(selector string) []int {
	var out []int
	for i, b := range e.blocks {
		if b.Kind.Tag() == selector {
			out = append(out, i)
		}
	}
	return out
}

func (e *Editor) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if size := e.DocSize(); pos > size {
		return size
	}
	return pos
}

// resolve maps a document position to a block index and offset.
func (e *Editor) resolve(pos int) (int, int) {
	if pos < 0 {
		return 0, 0
	}
	start := 0
	for i, b := range e.blocks {
		end := start + b.Len()
		if pos <= end {
			return i, pos - start
		}
		start = end + 1
	}
	last := len(e.blocks) - 1
	return last, e.blocks[last].Len()
}

func (e *Editor) blockStart(index int) int {
	start := 0
	for i := 0; i < index && i < len(e.blocks); i++ {
		start += e.blocks[i].Len() + 1
	}
	return start
}

func (e *Editor) collapse(pos int) {
	e.sel = Selection{Anchor: pos, Head: pos}
}

func (e *Editor) ensureVisible() {
	height := e.bounds.Height
	if height <= 0 {
		e.scroll = 0
		return
	}
	block, _ := e.resolve(e.sel.Head)
	if block < e.scroll {
		e.scroll = block
	}
	if block >= e.scroll+height {
		e.scroll = block - height + 1
	}
	if limit := len(e.blocks) - height; e.scroll > limit {
		e.scroll = limit
	}
	if e.scroll < 0 {
		e.scroll = 0
	}
}

type snapshot struct {
	blocks  []*Block
	sel     Selection
	stored  Mark
	focused bool
}

func (e *Editor) snapshot() snapshot {
	blocks := make([]*Block, len(e.blocks))
	for i, b := range e.blocks {
		blocks[i] = b.clone()
	}
	return snapshot{blocks: blocks, sel: e.sel, stored: e.stored, focused: e.focused}
}

func (e *Editor) restore(s snapshot) {
	e.blocks = s.blocks
	e.sel = s.sel
	e.stored = s.stored
	e.focused = s.focused
}
