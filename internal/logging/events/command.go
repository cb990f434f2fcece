package events

import "github.com/atomicstack/mergechat/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(kind, target string) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind, "target": target})
}

func (CommandTracer) Skip(kind string) {
	logging.Trace("command.skip", map[string]interface{}{"kind": kind})
}

func (CommandTracer) Result(kind, target, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"kind": kind, "target": target, "msg": msgType})
}
