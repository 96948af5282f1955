package command

import (
	"fmt"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
}

// Bus runs slash command actions and every other callback that touches an
// editor, keeping faults inside the callback that raised them.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request against ed while emitting trace logs. Errors and
// panics are logged and reported as false.
func (b *Bus) Execute(ed *editor.Editor, req Request) bool {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return false
	}
	ok := b.Safe(req.Label, func() error {
		return req.Handler(ed)
	})
	if ok {
		events.Command.Result(req.ID, req.Label)
	}
	return ok
}

// Safe calls fn, logging its error or recovered panic under context. It
// reports whether fn completed cleanly.
func (b *Bus) Safe(context string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			events.Command.Error(context, err)
			logging.Warn(context, err)
			ok = false
		}
	}()
	if err := fn(); err != nil {
		events.Command.Error(context, err)
		logging.Warn(context, err)
		return false
	}
	return true
}
