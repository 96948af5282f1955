package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/host"
	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctrl   *Controller
	root   *layout.Surface
	dialog *layout.Surface
	page   *host.Page
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	root := layout.NewSurface("root", false)
	root.SetBounds(layout.Rect{Width: 80, Height: 24})
	dialog := layout.NewSurface("dialog", true)
	dialog.SetBounds(layout.Rect{X: 10, Y: 5, Width: 50, Height: 12})
	page := host.NewPage("home")
	ctrl := New(Options{Root: root, Page: page})
	return &fixture{ctrl: ctrl, root: root, dialog: dialog, page: page}
}

// editorOn creates, places and attaches an editor rendered on container.
func (f *fixture) editorOn(t *testing.T, id string, container layout.Container, bounds layout.Rect) *editor.Editor {
	t.Helper()
	el := host.NewElement(id, "slash-editor", container)
	el.Options().Placeholder = f.ctrl.Placeholder()
	ed := el.Initialize()
	ed.SetBounds(bounds)
	f.page.Add(el)
	require.True(t, f.ctrl.Attach(ed))
	el.MarkBound()
	return ed
}

func typeText(ed *editor.Editor, text string) {
	for _, r := range text {
		if r == ' ' {
			ed.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		ed.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(ed *editor.Editor, k tea.KeyType) bool {
	return ed.HandleKey(tea.KeyMsg{Type: k})
}

func titles(cmds []menu.Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Title
	}
	return out
}

func TestTypingQueryShowsMatchesBelowCaret(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{X: 2, Y: 3, Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "Hello /bul")

	p := f.ctrl.Popup()
	s, _ := f.ctrl.Session(ed)
	require.True(t, p.Visible())
	require.Equal(t, s.ID(), p.BoundTo())
	require.Equal(t, []string{"Bullet List"}, titles(p.Items()))
	require.Equal(t, 0, p.Highlight())
	require.Same(t, f.root, p.Parent())
	require.Equal(t, layout.Point{X: 12, Y: 4}, p.Offset())
	require.Equal(t, "bul", s.Trigger().Query)
	require.Same(t, p, f.root.Child())
}

func TestEnterOnBareSlashRunsFirstCommand(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "/")

	p := f.ctrl.Popup()
	require.Len(t, p.Items(), len(menu.DefaultCommands()))
	require.True(t, press(ed, tea.KeyEnter))

	require.False(t, p.Visible())
	require.Equal(t, -1, p.Highlight())
	require.Len(t, ed.Blocks(), 1)
	require.Equal(t, editor.KindHeading1, ed.Block(0).Kind)
	require.Equal(t, "", ed.Text())
}

func TestQueryWithSpacesKeepsFiltering(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "/inline c")

	p := f.ctrl.Popup()
	require.True(t, p.Visible())
	require.Equal(t, []string{"Inline Code"}, titles(p.Items()))

	require.True(t, press(ed, tea.KeyEnter))
	require.Equal(t, "", ed.Text())
	require.False(t, p.Visible())
}

func TestNoMatchesHidesPopup(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "/zzz")
	require.False(t, f.ctrl.Popup().Visible())
	require.Nil(t, f.root.Child())
}

func TestArrowKeysWrap(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "/")

	p := f.ctrl.Popup()
	n := len(p.Items())
	require.True(t, press(ed, tea.KeyUp))
	require.Equal(t, n-1, p.Highlight())
	require.True(t, press(ed, tea.KeyDown))
	require.Equal(t, 0, p.Highlight())
	require.True(t, press(ed, tea.KeyTab))
	require.Equal(t, 1, p.Highlight())

	require.Equal(t, "/", ed.Text())
	require.Equal(t, 1, ed.Cursor().Pos)
}

func TestEscapeHidesAndKeysPassThroughAfterwards(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "/")

	require.True(t, press(ed, tea.KeyEsc))
	require.False(t, f.ctrl.Popup().Visible())

	require.False(t, press(ed, tea.KeyEsc))
	require.True(t, press(ed, tea.KeyLeft))
	require.Equal(t, 0, ed.Cursor().Pos)
}

func TestModalContainerHostsPopup(t *testing.T) {
	f := newFixture(t)
	inDialog := f.editorOn(t, "d", f.dialog, layout.Rect{X: 12, Y: 7, Width: 30, Height: 3})
	onRoot := f.editorOn(t, "r", f.root, layout.Rect{X: 0, Y: 0, Width: 40, Height: 3})

	inDialog.Focus()
	typeText(inDialog, "/")
	p := f.ctrl.Popup()
	require.Same(t, f.dialog, p.Parent())
	require.Equal(t, layout.Point{X: 3, Y: 3}, p.Offset())
	require.Same(t, p, f.dialog.Child())
	require.Nil(t, f.root.Child())

	inDialog.Blur()
	onRoot.Focus()
	typeText(onRoot, "/")
	require.Same(t, f.root, p.Parent())
	require.Nil(t, f.dialog.Child())
	require.Same(t, p, f.root.Child())
}

func TestBlurHidesOnlyOwnedPopup(t *testing.T) {
	f := newFixture(t)
	a := f.editorOn(t, "a", f.root, layout.Rect{Y: 0, Width: 40, Height: 3})
	b := f.editorOn(t, "b", f.root, layout.Rect{Y: 4, Width: 40, Height: 3})
	p := f.ctrl.Popup()

	a.Focus()
	typeText(a, "/")
	require.True(t, p.Visible())
	a.Blur()
	require.False(t, p.Visible())

	a.Focus()
	sa, _ := f.ctrl.Session(a)
	require.Equal(t, sa.ID(), p.BoundTo(), "refocusing after a slash reopens the popup")
	press(a, tea.KeyBackspace)
	require.False(t, p.Visible())

	b.Focus()
	typeText(b, "/h")
	sb, _ := f.ctrl.Session(b)
	require.Equal(t, sb.ID(), p.BoundTo())

	typeText(a, "plain")
	require.True(t, p.Visible(), "inactive session must not hide a popup it does not own")
	require.Equal(t, sb.ID(), p.BoundTo())

	b.Blur()
	require.False(t, p.Visible())
}

func TestRangeSelectionDeactivates(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "ab /")
	require.True(t, f.ctrl.Popup().Visible())

	ed.SetSelection(0, 4)
	require.False(t, f.ctrl.Popup().Visible())
}

func TestHideIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "/")

	p := f.ctrl.Popup()
	p.Hide()
	p.Hide()
	require.False(t, p.Visible())
	require.Equal(t, "", p.BoundTo())
	require.Equal(t, -1, p.Highlight())
	require.Empty(t, p.Items())
	require.Nil(t, p.Parent())
	require.Equal(t, "", p.View())
}

func TestFailingCommandIsContained(t *testing.T) {
	f := newFixture(t)
	f.ctrl.AddCommand(menu.Command{Title: "Explode", Action: func(*editor.Editor) error { panic("boom") }})
	f.ctrl.AddCommand(menu.Command{Title: "Refuse", Action: func(*editor.Editor) error { return errors.New("no") }})
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()

	typeText(ed, "/explode")
	require.True(t, press(ed, tea.KeyEnter))
	require.False(t, f.ctrl.Popup().Visible())
	require.Equal(t, "", ed.Text())

	typeText(ed, "/refuse")
	require.True(t, press(ed, tea.KeyEnter))
	require.Equal(t, "", ed.Text())

	typeText(ed, "ok")
	require.Equal(t, "ok", ed.Text())
}

func TestExecuteWithoutTriggerRunsActionAndKeepsText(t *testing.T) {
	f := newFixture(t)
	ran := 0
	stamp := menu.Command{Title: "Stamp", Action: func(*editor.Editor) error {
		ran++
		return nil
	}}
	f.ctrl.AddCommand(stamp)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "ab /stamp")

	p := f.ctrl.Popup()
	require.True(t, p.Visible())
	require.Equal(t, []string{"Stamp"}, titles(p.Items()))

	ed.SetSelection(1, 1)
	require.False(t, p.Visible())

	s, ok := f.ctrl.Session(ed)
	require.True(t, ok)
	p.Render([]menu.Command{stamp}, s.ID())
	s.executeSelected()

	require.Equal(t, 1, ran)
	require.Equal(t, "ab /stamp", ed.Text())
	require.False(t, p.Visible())
}

func TestKeyCallbackFaultIsContained(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()
	typeText(ed, "/")
	require.True(t, f.ctrl.Popup().Visible())

	f.ctrl.router = nil
	require.NotPanics(t, func() { typeText(ed, "b") })
	require.Equal(t, "/b", ed.Text())
}

func TestAddAndRemoveCommand(t *testing.T) {
	f := newFixture(t)
	called := 0
	f.ctrl.AddCommand(menu.Command{Title: "Callout", Icon: "!", Action: func(*editor.Editor) error {
		called++
		return nil
	}})
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	ed.Focus()

	typeText(ed, "/call")
	require.Equal(t, []string{"Callout"}, titles(f.ctrl.Popup().Items()))
	press(ed, tea.KeyEnter)
	require.Equal(t, 1, called)

	require.Equal(t, 1, f.ctrl.RemoveCommand("Callout"))
	typeText(ed, "/call")
	require.False(t, f.ctrl.Popup().Visible())
}

func TestAttachIsOncePerEditor(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	require.False(t, f.ctrl.Attach(ed))
	require.False(t, f.ctrl.Attach(nil))
	require.Len(t, f.ctrl.Sessions(), 1)

	ed.Focus()
	typeText(ed, "x")
	require.Equal(t, "x", ed.Text())
}

func TestInitScansPageOnce(t *testing.T) {
	f := newFixture(t)
	el := host.NewElement("a", "slash-editor", f.root)
	el.Initialize()
	f.page.Add(el)

	_, handled := f.ctrl.Update(host.ContentLoadedMsg{})
	require.False(t, handled, "messages are ignored before Init")

	f.ctrl.Init()
	require.True(t, el.Bound())
	f.ctrl.Init()
	require.Len(t, f.ctrl.Sessions(), 1)

	_, handled = f.ctrl.Update(host.ContentLoadedMsg{})
	require.True(t, handled)
	require.Len(t, f.ctrl.Sessions(), 1)
}

func TestEmptyParagraphClass(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 5})
	empty := f.ctrl.Settings().Classes.Empty
	require.True(t, ed.Block(0).HasClass(empty))

	ed.Focus()
	typeText(ed, "hi")
	require.False(t, ed.Block(0).HasClass(empty))

	press(ed, tea.KeyEnter)
	require.False(t, ed.Block(0).HasClass(empty))
	require.True(t, ed.Block(1).HasClass(empty))
}

func TestMouseHoverHighlightsAndClickExecutes(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 3})
	ed.Focus()
	typeText(ed, "/")

	p := f.ctrl.Popup()
	b := p.Bounds()
	require.Positive(t, b.Width)
	x, row2 := b.X+2, b.Y+1+2

	require.True(t, f.ctrl.HandleMouse(tea.MouseMsg{X: x, Y: row2, Action: tea.MouseActionMotion}))
	require.Equal(t, 2, p.Highlight())
	require.Equal(t, "Bold", p.Items()[2].Title)

	require.True(t, f.ctrl.HandleMouse(tea.MouseMsg{X: x, Y: row2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	require.False(t, p.Visible())
	require.Equal(t, "", ed.Text())
}

func TestMousePressOutsideHides(t *testing.T) {
	f := newFixture(t)
	ed := f.editorOn(t, "a", f.root, layout.Rect{Width: 40, Height: 3})
	ed.Focus()
	typeText(ed, "/")
	p := f.ctrl.Popup()

	inEditor := tea.MouseMsg{X: 30, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	require.False(t, p.Contains(inEditor.X, inEditor.Y))
	require.False(t, f.ctrl.HandleMouse(inEditor))
	require.True(t, p.Visible())

	outside := tea.MouseMsg{X: 70, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	require.False(t, f.ctrl.HandleMouse(outside))
	require.False(t, p.Visible())

	require.False(t, f.ctrl.HandleMouse(outside))
}
