package state

import "github.com/atomicstack/slashpad/internal/menu"

// CloneCommands produces a shallow copy of the provided commands.
func CloneCommands(cmds []menu.Command) []menu.Command {
	dup := make([]menu.Command, len(cmds))
	copy(dup, cmds)
	return dup
}
