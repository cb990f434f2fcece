package events

import "github.com/atomicstack/mergechat/internal/logging"

type ViewTracer struct{}

type FieldTracer struct{}

type ScreenTracer struct{}

var (
	View   = ViewTracer{}
	Field  = FieldTracer{}
	Screen = ScreenTracer{}
)

func (ViewTracer) Navigate(id, from, to string) {
	logging.Trace("view.navigate", map[string]interface{}{"id": id, "from": from, "to": to})
}

func (ViewTracer) Back(id, from, to string) {
	logging.Trace("view.back", map[string]interface{}{"id": id, "from": from, "to": to})
}

func (ViewTracer) BackMiss(from string) {
	logging.Trace("view.back.miss", map[string]interface{}{"from": from})
}

func (FieldTracer) Set(name string, length int) {
	logging.Trace("field.set", map[string]interface{}{"field": name, "length": length})
}

func (ScreenTracer) Message(screen, msg string) {
	logging.Trace("screen.message", map[string]interface{}{"screen": screen, "msg": msg})
}
