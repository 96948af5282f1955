package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/atomicstack/slashpad/internal/menu"
	"github.com/atomicstack/slashpad/internal/settings"
	"github.com/stretchr/testify/require"
)

func manyCommands(n int) []menu.Command {
	out := make([]menu.Command, n)
	for i := range out {
		out[i] = menu.Command{Title: fmt.Sprintf("Item %02d", i), Icon: "*"}
	}
	return out
}

func shownPopup(t *testing.T, cmds []menu.Command) (*Popup, *layout.Surface) {
	t.Helper()
	root := layout.NewSurface("root", false)
	root.SetBounds(layout.Rect{Width: 80, Height: 24})
	cfg := settings.Default().Dropdown
	cfg.MaxVisible = 4
	p := NewPopup(root, cfg)
	p.Render(cmds, "s1")
	p.Show(layout.Point{X: 5, Y: 2}, nil)
	return p, root
}

func TestRenderEmptyHides(t *testing.T) {
	p, root := shownPopup(t, manyCommands(3))
	require.True(t, p.Visible())
	p.Render(nil, "s1")
	require.False(t, p.Visible())
	require.Nil(t, root.Child())
}

func TestRenderRebindResetsHighlight(t *testing.T) {
	p, _ := shownPopup(t, manyCommands(3))
	p.Next()
	require.Equal(t, 1, p.Highlight())
	p.Render(manyCommands(2), "s2")
	require.Equal(t, "s2", p.BoundTo())
	require.Equal(t, 0, p.Highlight())
}

func TestSetHighlightIgnoresOutOfRange(t *testing.T) {
	p, _ := shownPopup(t, manyCommands(3))
	p.SetHighlight(2)
	p.SetHighlight(3)
	p.SetHighlight(-1)
	require.Equal(t, 2, p.Highlight())
}

func TestHighlightScrollsNearest(t *testing.T) {
	p, _ := shownPopup(t, manyCommands(10))
	p.SetHighlight(6)
	view := p.View()
	require.Contains(t, view, "Item 06")
	require.Contains(t, view, "Item 03")
	require.NotContains(t, view, "Item 02")
	require.Contains(t, view, "7/10")

	p.SetHighlight(1)
	view = p.View()
	require.Contains(t, view, "Item 01")
	require.Contains(t, view, "Item 04")
	require.NotContains(t, view, "Item 05")
}

func TestShowOffsetIncludesConfiguredGap(t *testing.T) {
	root := layout.NewSurface("root", false)
	root.SetBounds(layout.Rect{X: 1, Y: 1, Width: 80, Height: 24})
	cfg := settings.Default().Dropdown
	cfg.OffsetY = 1
	p := NewPopup(root, cfg)
	p.Render(manyCommands(1), "s1")
	p.Show(layout.Point{X: 5, Y: 2}, nil)
	require.Equal(t, layout.Point{X: 4, Y: 2}, p.Offset())
}

func TestCompositeDrawsPopupOnRoot(t *testing.T) {
	p, root := shownPopup(t, manyCommands(2))
	base := strings.Repeat(strings.Repeat(".", 40)+"\n", 10)
	out := root.Composite(base)
	require.Contains(t, out, "Item 00")
	lines := strings.Split(out, "\n")
	require.True(t, strings.HasPrefix(lines[0], "....."))
	require.Equal(t, p.Bounds().Y, 2)
}
