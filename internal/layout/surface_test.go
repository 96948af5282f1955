package layout

import (
	"strings"
	"testing"
)

type stubOverlay struct {
	view   string
	offset Point
}

func (s *stubOverlay) View() string  { return s.view }
func (s *stubOverlay) Offset() Point { return s.offset }

func TestPlaceOverlaySplicesLines(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	got := PlaceOverlay(2, 1, "XY\nZW", bg, 0, 0)
	want := "aaaaaa\nbbXYbb\nccZWcc"
	if got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestPlaceOverlayPadsShortBackground(t *testing.T) {
	got := PlaceOverlay(3, 2, "ok", "a", 0, 0)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected background extended to 3 lines, got %d", len(lines))
	}
	if lines[2] != "   ok" {
		t.Fatalf("expected padded overlay row, got %q", lines[2])
	}
}

func TestPlaceOverlayClipsToWidth(t *testing.T) {
	got := PlaceOverlay(4, 0, "abcdef", "......", 6, 1)
	if got != "....ab" {
		t.Fatalf("expected clipped overlay, got %q", got)
	}
}

func TestSurfaceMountReplacesAndUnmountIgnoresStrangers(t *testing.T) {
	s := NewSurface("root", false)
	first := &stubOverlay{view: "1"}
	second := &stubOverlay{view: "2"}
	s.Mount(first)
	s.Mount(second)
	if s.Child() != second {
		t.Fatalf("expected second overlay mounted")
	}
	s.Unmount(first)
	if s.Child() != second {
		t.Fatalf("unmounting a detached overlay must not affect the mounted one")
	}
	s.Unmount(second)
	if s.Child() != nil {
		t.Fatalf("expected no child after unmount")
	}
}

func TestSurfaceCompositeUsesChildOffset(t *testing.T) {
	s := NewSurface("dialog", true)
	s.SetBounds(Rect{X: 10, Y: 5, Width: 4, Height: 2})
	s.Mount(&stubOverlay{view: "#", offset: Point{X: 1, Y: 1}})
	got := s.Composite("....\n....")
	if got != "....\n.#.." {
		t.Fatalf("unexpected composite %q", got)
	}
	if !s.Modal() {
		t.Fatalf("expected modal surface")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 2, Height: 2}
	if !r.Contains(2, 3) || !r.Contains(3, 4) {
		t.Fatalf("expected corners inside")
	}
	if r.Contains(4, 3) || r.Contains(2, 5) {
		t.Fatalf("expected far edges outside")
	}
}
