package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each column.
// Widths are measured in terminal cells so wide glyphs line up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			width := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", max(width, 0)))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", max(width, 0)))
			}
		}
		out[i] = b.String()
	}
	return out
}

// Width reports the widest formatted row.
func Width(rows []string) int {
	w := 0
	for _, row := range rows {
		w = max(w, cellWidth(row))
	}
	return w
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}
