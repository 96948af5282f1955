package menu

// Registry is the ordered list of commands offered by the slash menu.
type Registry struct {
	commands []Command
}

// NewRegistry builds a registry seeded with cmds in order.
func NewRegistry(cmds []Command) *Registry {
	r := &Registry{commands: make([]Command, 0, len(cmds))}
	r.commands = append(r.commands, cmds...)
	return r
}

// Add appends cmd after every existing command.
func (r *Registry) Add(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Remove deletes every command titled title and reports how many were
// removed.
func (r *Registry) Remove(title string) int {
	kept := r.commands[:0]
	removed := 0
	for _, cmd := range r.commands {
		if cmd.Title == title {
			removed++
			continue
		}
		kept = append(kept, cmd)
	}
	for i := len(kept); i < len(r.commands); i++ {
		r.commands[i] = Command{}
	}
	r.commands = kept
	return removed
}

// Commands returns a copy of the registered commands.
func (r *Registry) Commands() []Command {
	dup := make([]Command, len(r.commands))
	copy(dup, r.commands)
	return dup
}

// Find returns the first command titled title.
func (r *Registry) Find(title string) (Command, bool) {
	for _, cmd := range r.commands {
		if cmd.Title == title {
			return cmd, true
		}
	}
	return Command{}, false
}

// Len reports the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
