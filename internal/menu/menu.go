package menu

import "github.com/atomicstack/slashpad/internal/editor"

// Action runs a command against the editor the menu was opened in.
type Action func(*editor.Editor) error

// Command is a single entry of the slash menu.
type Command struct {
	Title  string
	Icon   string
	Action Action
}

// DefaultFileInput locates the attachment control inside an editor's host.
const DefaultFileInput = "#file-input"

// DefaultCommands returns the built-in command list in display order.
func DefaultCommands() []Command {
	return DefaultCommandsFor(DefaultFileInput)
}

// DefaultCommandsFor is DefaultCommands with Attach Files looking for the
// file input under fileInput.
func DefaultCommandsFor(fileInput string) []Command {
	return []Command{
		{Title: "Heading 1", Icon: "H1", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleHeading(1).Run()
		}},
		{Title: "Heading 2", Icon: "H2", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleHeading(2).Run()
		}},
		{Title: "Bold", Icon: "B", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleBold().Run()
		}},
		{Title: "Italic", Icon: "I", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleItalic().Run()
		}},
		{Title: "Strikethrough", Icon: "S", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleStrike().Run()
		}},
		{Title: "Inline Code", Icon: "<>", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleCode().Run()
		}},
		{Title: "Bullet List", Icon: "•", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleBulletList().Run()
		}},
		{Title: "Numbered List", Icon: "1.", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleOrderedList().Run()
		}},
		{Title: "Blockquote", Icon: "\"", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleBlockquote().Run()
		}},
		{Title: "Code Block", Icon: "{}", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().ToggleCodeBlock().Run()
		}},
		{Title: "Horizontal Rule", Icon: "─", Action: func(e *editor.Editor) error {
			return e.Chain().Focus().SetHorizontalRule().Run()
		}},
		{Title: "Attach Files", Icon: "@", Action: AttachFiles(fileInput)},
	}
}

// AttachFiles returns an action that clicks the host control matching
// selector. Editors without one are left alone.
func AttachFiles(selector string) Action {
	return func(e *editor.Editor) error {
		host := e.Host()
		if host == nil {
			return nil
		}
		input, ok := host.Query(selector)
		if !ok {
			return nil
		}
		input.Click()
		return nil
	}
}
