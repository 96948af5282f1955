package events

import "github.com/atomicstack/slashpad/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Attach(sessionID, editorID string) {
	logging.Trace("session.attach", map[string]interface{}{"session": sessionID, "editor": editorID})
}

func (SessionTracer) AlreadyAttached(editorID string) {
	logging.Trace("session.attach.skip", map[string]interface{}{"editor": editorID})
}

func (SessionTracer) EmptyBlocks(sessionID string, empty int) {
	logging.Trace("session.empty-blocks", map[string]interface{}{"session": sessionID, "empty": empty})
}

func (SessionTracer) Blur(sessionID string) {
	logging.Trace("session.blur", map[string]interface{}{"session": sessionID})
}
