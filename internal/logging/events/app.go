package events

import "github.com/atomicstack/slashpad/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Navigate(page string) {
	logging.Trace("app.navigate", map[string]interface{}{"page": page})
}

func (AppTracer) Dialog(open bool) {
	logging.Trace("app.dialog", map[string]interface{}{"open": open})
}

func (AppTracer) Focus(editorID string) {
	logging.Trace("app.focus", map[string]interface{}{"editor": editorID})
}

func (AppTracer) Attachment(editorID, path string) {
	logging.Trace("app.attachment", map[string]interface{}{"editor": editorID, "path": path})
}
