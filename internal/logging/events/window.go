package events

import "github.com/atomicstack/mergechat/internal/logging"

type WindowTracer struct{}

type windowReason string

const (
	ReasonUnknown   windowReason = "unknown"
	ReasonDuplicate windowReason = "duplicate"
)

var Window = WindowTracer{}

func (WindowTracer) OpenRequest(purpose string, options map[string]interface{}) {
	logging.Trace("window.open.request", map[string]interface{}{"purpose": purpose, "options": options})
}

func (WindowTracer) Opened(id, purpose, title string) {
	logging.Trace("window.opened", map[string]interface{}{"id": id, "purpose": purpose, "title": title})
}

func (WindowTracer) OpenFailed(purpose string, err error) {
	payload := map[string]interface{}{"purpose": purpose}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("window.open.failed", payload)
}

func (WindowTracer) Closed(id string, remaining int) {
	logging.Trace("window.closed", map[string]interface{}{"id": id, "remaining": remaining})
}

func (WindowTracer) CloseRequest(id string) {
	logging.Trace("window.close.request", map[string]interface{}{"id": id})
}

func (WindowTracer) Ignored(id string, reason windowReason) {
	logging.Trace("window.ignored", map[string]interface{}{"id": id, "reason": string(reason)})
}

func (WindowTracer) Focus(id string) {
	logging.Trace("window.focus", map[string]interface{}{"id": id})
}
