package state

import (
	"strings"

	"github.com/atomicstack/slashpad/internal/menu"
)

// FilterCommands keeps the commands whose title contains query, or has a
// word starting with it, ignoring case. A blank query keeps everything.
// Registry order is preserved.
func FilterCommands(cmds []menu.Command, query string) []menu.Command {
	if strings.TrimSpace(query) == "" {
		return CloneCommands(cmds)
	}
	needle := strings.ToLower(query)
	out := make([]menu.Command, 0, len(cmds))
	for _, cmd := range cmds {
		if matches(cmd.Title, needle) {
			out = append(out, cmd)
		}
	}
	return out
}

func matches(title, needle string) bool {
	lower := strings.ToLower(title)
	if strings.Contains(lower, needle) {
		return true
	}
	for _, word := range strings.Fields(lower) {
		if strings.HasPrefix(word, needle) {
			return true
		}
	}
	return false
}
