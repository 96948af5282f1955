package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Surface is a Container backed by a screen rectangle.
type Surface struct {
	name   string
	modal  bool
	bounds Rect
	child  Overlay
}

// NewSurface returns an empty surface. Modal surfaces stand in for dialogs.
func NewSurface(name string, modal bool) *Surface {
	return &Surface{name: name, modal: modal}
}

func (s *Surface) Name() string { return s.name }

func (s *Surface) Modal() bool { return s.modal }

func (s *Surface) Bounds() Rect { return s.bounds }

// SetBounds places the surface on screen.
func (s *Surface) SetBounds(r Rect) {
	s.bounds = r
}

// Mount makes o the surface's only child, replacing any previous one.
func (s *Surface) Mount(o Overlay) {
	s.child = o
}

// Unmount detaches o. Detaching an overlay that is not mounted is a no-op.
func (s *Surface) Unmount(o Overlay) {
	if s.child == o {
		s.child = nil
	}
}

func (s *Surface) Child() Overlay { return s.child }

// Composite draws the mounted overlay, if any, over base.
func (s *Surface) Composite(base string) string {
	if s.child == nil {
		return base
	}
	view := s.child.View()
	if view == "" {
		return base
	}
	off := s.child.Offset()
	return PlaceOverlay(off.X, off.Y, view, base, s.bounds.Width, s.bounds.Height)
}

// PlaceOverlay renders fg on top of bg with its top-left corner at x,y. When
// width or height are positive the result is clipped to that area, the way a
// container clips its children.
func PlaceOverlay(x, y int, fg, bg string, width, height int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for len(bgLines) < y+len(fgLines) {
		if height > 0 && len(bgLines) >= height {
			break
		}
		bgLines = append(bgLines, "")
	}
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		under := bgLines[row]
		lineWidth := ansi.StringWidth(line)
		if width > 0 {
			if x >= width {
				break
			}
			if x+lineWidth > width {
				line = ansi.Truncate(line, width-x, "")
				lineWidth = ansi.StringWidth(line)
			}
		}
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(under, x+lineWidth, "")
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
