package events

import "github.com/atomicstack/slashpad/internal/logging"

type PopupTracer struct{}

type TriggerTracer struct{}

type RouterTracer struct{}

type CommandTracer struct{}

var (
	Popup   = PopupTracer{}
	Trigger = TriggerTracer{}
	Router  = RouterTracer{}
	Command = CommandTracer{}
)

func (PopupTracer) Show(sessionID, parent string, x, y, items int) {
	logging.Trace("popup.show", map[string]interface{}{
		"session": sessionID,
		"parent":  parent,
		"x":       x,
		"y":       y,
		"items":   items,
	})
}

func (PopupTracer) Hide(sessionID string) {
	logging.Trace("popup.hide", map[string]interface{}{"session": sessionID})
}

func (PopupTracer) Rebind(from, to string) {
	logging.Trace("popup.rebind", map[string]interface{}{"from": from, "to": to})
}

func (PopupTracer) Highlight(sessionID string, index int) {
	logging.Trace("popup.highlight", map[string]interface{}{"session": sessionID, "index": index})
}

func (TriggerTracer) Active(sessionID, query string, slash int) {
	logging.Trace("trigger.active", map[string]interface{}{"session": sessionID, "query": query, "slash": slash})
}

func (TriggerTracer) Inactive(sessionID string) {
	logging.Trace("trigger.inactive", map[string]interface{}{"session": sessionID})
}

func (RouterTracer) Key(sessionID, key, action string) {
	logging.Trace("router.key", map[string]interface{}{"session": sessionID, "key": key, "action": action})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Error(context string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"context": context, "error": err.Error()})
}
