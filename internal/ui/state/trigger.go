package state

// TriggerChar opens the slash menu.
const TriggerChar = '/'

// Trigger describes whether the text before the caret is a slash command.
// Slash and Cursor are rune offsets inside the block; Anchor is the document
// position of the slash.
type Trigger struct {
	Active bool
	Query  string
	Slash  int
	Cursor int
	Anchor int
}

// Len is the number of runes the trigger occupies, slash included.
func (t Trigger) Len() int {
	if !t.Active {
		return 0
	}
	return t.Cursor - t.Slash
}

// Detect finds the rightmost slash at or before cursor in blockText. The
// query is everything between that slash and the cursor, whitespace
// included. The rune under the cursor is searched too, so a slash sitting
// right after the caret shadows earlier ones and leaves the trigger
// inactive.
func Detect(blockText string, cursor int) Trigger {
	runes := []rune(blockText)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	from := cursor
	if from >= len(runes) {
		from = len(runes) - 1
	}
	slash := -1
	for i := from; i >= 0; i-- {
		if runes[i] == TriggerChar {
			slash = i
			break
		}
	}
	if slash < 0 || slash == cursor {
		return Trigger{}
	}
	return Trigger{
		Active: true,
		Query:  string(runes[slash+1 : cursor]),
		Slash:  slash,
		Cursor: cursor,
	}
}

// DetectAt is Detect with Anchor filled in from the block's document start.
func DetectAt(blockText string, cursor, blockStart int) Trigger {
	t := Detect(blockText, cursor)
	if t.Active {
		t.Anchor = blockStart + t.Slash
	}
	return t
}
