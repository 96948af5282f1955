package editor

// Kind identifies the structural type of a block.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading1
	KindHeading2
	KindBulletItem
	KindOrderedItem
	KindBlockquote
	KindCodeBlock
	KindRule
)

var kindTags = map[Kind]string{
	KindParagraph:   "p",
	KindHeading1:    "h1",
	KindHeading2:    "h2",
	KindBulletItem:  "li",
	KindOrderedItem: "ol",
	KindBlockquote:  "blockquote",
	KindCodeBlock:   "pre",
	KindRule:        "hr",
}

// Tag returns the selector name used to query blocks of this kind.
func (k Kind) Tag() string {
	return kindTags[k]
}

// Mark is a bit set of inline formatting.
type Mark uint8

const (
	MarkBold Mark = 1 << iota
	MarkItalic
	MarkStrike
	MarkCode
)

// Has reports whether every bit of o is set in m.
func (m Mark) Has(o Mark) bool {
	return m&o == o
}

// Block is a leaf text container, the unit the cursor lives in.
type Block struct {
	Kind    Kind
	text    []rune
	marks   []Mark
	classes map[string]struct{}
}

// NewBlock returns an unformatted block holding text.
func NewBlock(kind Kind, text string) *Block {
	runes := []rune(text)
	if kind == KindRule {
		runes = nil
	}
	return &Block{Kind: kind, text: runes, marks: make([]Mark, len(runes))}
}

// Text returns the plain text of the block.
func (b *Block) Text() string {
	return string(b.text)
}

// Len returns the block length in runes.
func (b *Block) Len() int {
	return len(b.text)
}

// MarksAt returns the marks applied to the rune at i.
func (b *Block) MarksAt(i int) Mark {
	if i < 0 || i >= len(b.marks) {
		return 0
	}
	return b.marks[i]
}

// HasClass reports whether the presentation class is set on the block.
func (b *Block) HasClass(name string) bool {
	_, ok := b.classes[name]
	return ok
}

func (b *Block) setClass(name string, on bool) bool {
	if on == b.HasClass(name) {
		return false
	}
	if on {
		if b.classes == nil {
			b.classes = make(map[string]struct{})
		}
		b.classes[name] = struct{}{}
	} else {
		delete(b.classes, name)
	}
	return true
}

func (b *Block) clone() *Block {
	dup := &Block{
		Kind:  b.Kind,
		text:  append([]rune(nil), b.text...),
		marks: append([]Mark(nil), b.marks...),
	}
	if len(b.classes) > 0 {
		dup.classes = make(map[string]struct{}, len(b.classes))
		for k := range b.classes {
			dup.classes[k] = struct{}{}
		}
	}
	return dup
}

func (b *Block) insert(offset int, runes []rune, mark Mark) {
	text := make([]rune, 0, len(b.text)+len(runes))
	text = append(text, b.text[:offset]...)
	text = append(text, runes...)
	text = append(text, b.text[offset:]...)
	marks := make([]Mark, 0, len(b.marks)+len(runes))
	marks = append(marks, b.marks[:offset]...)
	for range runes {
		marks = append(marks, mark)
	}
	marks = append(marks, b.marks[offset:]...)
	b.text = text
	b.marks = marks
}

func (b *Block) delete(from, to int) {
	b.text = append(b.text[:from:from], b.text[to:]...)
	b.marks = append(b.marks[:from:from], b.marks[to:]...)
}

// split cuts the block at offset and returns the tail as a new block.
func (b *Block) split(offset int, kind Kind) *Block {
	tail := &Block{
		Kind:  kind,
		text:  append([]rune(nil), b.text[offset:]...),
		marks: append([]Mark(nil), b.marks[offset:]...),
	}
	b.text = b.text[:offset:offset]
	b.marks = b.marks[:offset:offset]
	return tail
}

// Selection is an anchor/head pair of document positions.
type Selection struct {
	Anchor int
	Head   int
}

// Empty reports whether the selection is a collapsed point.
func (s Selection) Empty() bool {
	return s.Anchor == s.Head
}

// From returns the smaller end.
func (s Selection) From() int {
	if s.Anchor < s.Head {
		return s.Anchor
	}
	return s.Head
}

// To returns the larger end.
func (s Selection) To() int {
	if s.Anchor > s.Head {
		return s.Anchor
	}
	return s.Head
}

// Cursor describes the selection head relative to its containing block.
type Cursor struct {
	Pos          int
	Block        int
	ParentOffset int
	BlockText    string
	Empty        bool
}
