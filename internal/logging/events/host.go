package events

import (
	"time"

	"github.com/atomicstack/slashpad/internal/logging"
)

type HostTracer struct{}

var Host = HostTracer{}

func (HostTracer) Configure(elementID, placeholder string) {
	logging.Trace("host.configure", map[string]interface{}{"element": elementID, "placeholder": placeholder})
}

func (HostTracer) Scan(found, bound int) {
	logging.Trace("host.scan", map[string]interface{}{"found": found, "bound": bound})
}

func (HostTracer) Bind(elementID string) {
	logging.Trace("host.bind", map[string]interface{}{"element": elementID})
}

func (HostTracer) Retry(elementID string, attempt int) {
	logging.Trace("host.retry", map[string]interface{}{"element": elementID, "attempt": attempt})
}

func (HostTracer) Exhausted(elementID string, attempts int) {
	logging.Trace("host.retry.exhausted", map[string]interface{}{"element": elementID, "attempts": attempts})
}

func (HostTracer) Rescan(delay time.Duration) {
	logging.Trace("host.rescan", map[string]interface{}{"delay": delay.String()})
}
