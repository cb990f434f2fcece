package events

import "github.com/atomicstack/mergechat/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(windows int) {
	logging.Trace("app.exit", map[string]interface{}{"windows": windows})
}
