package menu

import (
	"testing"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/layout"
)

type fakeInput struct{ clicks int }

func (f *fakeInput) Click() { f.clicks++ }

type fakeHost struct {
	controls map[string]editor.Control
}

func (h *fakeHost) Query(selector string) (editor.Control, bool) {
	c, ok := h.controls[selector]
	return c, ok
}

func (h *fakeHost) Container() layout.Container { return nil }

func TestDefaultCommandsOrder(t *testing.T) {
	want := []string{
		"Heading 1", "Heading 2", "Bold", "Italic", "Strikethrough", "Inline Code",
		"Bullet List", "Numbered List", "Blockquote", "Code Block", "Horizontal Rule", "Attach Files",
	}
	cmds := DefaultCommands()
	if len(cmds) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(cmds))
	}
	for i, title := range want {
		if cmds[i].Title != title {
			t.Fatalf("command %d: expected %q, got %q", i, title, cmds[i].Title)
		}
		if cmds[i].Action == nil {
			t.Fatalf("command %q has no action", title)
		}
	}
}

func TestHeadingCommandFormatsCurrentBlock(t *testing.T) {
	ed := editor.New(editor.Options{})
	cmd, _ := NewRegistry(DefaultCommands()).Find("Heading 2")
	if err := cmd.Action(ed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ed.Block(0).Kind != editor.KindHeading2 {
		t.Fatalf("expected heading 2, got %v", ed.Block(0).Kind)
	}
	if !ed.Focused() {
		t.Fatalf("expected command to focus the editor")
	}
}

func TestAttachFilesClicksHostInput(t *testing.T) {
	input := &fakeInput{}
	ed := editor.New(editor.Options{Host: &fakeHost{controls: map[string]editor.Control{DefaultFileInput: input}}})
	if err := AttachFiles(DefaultFileInput)(ed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.clicks != 1 {
		t.Fatalf("expected one click, got %d", input.clicks)
	}
}

func TestAttachFilesWithoutInputIsNoOp(t *testing.T) {
	ed := editor.New(editor.Options{Host: &fakeHost{}})
	if err := AttachFiles(DefaultFileInput)(ed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bare := editor.New(editor.Options{})
	if err := AttachFiles(DefaultFileInput)(bare); err != nil {
		t.Fatalf("unexpected error without host: %v", err)
	}
}
