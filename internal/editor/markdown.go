package editor

import (
	"strconv"
	"strings"
)

// Markdown serialises the document as CommonMark.
func (e *Editor) Markdown() string {
	var sb strings.Builder
	ordinal := 0
	for i, b := range e.blocks {
		if i > 0 {
			prev := e.blocks[i-1].Kind
			switch {
			case prev == b.Kind && (b.Kind == KindBulletItem || b.Kind == KindOrderedItem || b.Kind == KindCodeBlock):
				sb.WriteString("\n")
			default:
				sb.WriteString("\n\n")
			}
		}
		if b.Kind == KindOrderedItem {
			ordinal++
		} else {
			ordinal = 0
		}
		switch b.Kind {
		case KindHeading1:
			sb.WriteString("# " + inline(b))
		case KindHeading2:
			sb.WriteString("## " + inline(b))
		case KindBulletItem:
			sb.WriteString("- " + inline(b))
		case KindOrderedItem:
			sb.WriteString(strconv.Itoa(ordinal) + ". " + inline(b))
		case KindBlockquote:
			sb.WriteString("> " + inline(b))
		case KindCodeBlock:
			if i == 0 || e.blocks[i-1].Kind != KindCodeBlock {
				sb.WriteString("```\n")
			}
			sb.WriteString(b.Text())
			if i == len(e.blocks)-1 || e.blocks[i+1].Kind != KindCodeBlock {
				sb.WriteString("\n```")
			}
		case KindRule:
			sb.WriteString("---")
		default:
			sb.WriteString(inline(b))
		}
	}
	return sb.String()
}

// inline renders runs of identically marked text with their delimiters.
func inline(b *Block) string {
	var sb strings.Builder
	start := 0
	for start < b.Len() {
		mark := b.marks[start]
		end := start + 1
		for end < b.Len() && b.marks[end] == mark {
			end++
		}
		sb.WriteString(wrap(string(b.text[start:end]), mark))
		start = end
	}
	return sb.String()
}

func wrap(s string, m Mark) string {
	if m.Has(MarkCode) {
		s = "`" + s + "`"
	}
	if m.Has(MarkStrike) {
		s = "~~" + s + "~~"
	}
	if m.Has(MarkItalic) {
		s = "_" + s + "_"
	}
	if m.Has(MarkBold) {
		s = "**" + s + "**"
	}
	return s
}
