package dispatcher

import (
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/window"
)

// Request is a side effect the dispatcher asks its caller to perform.
type Request interface {
	isRequest()
}

// OpenRequest asks the window host for a new window.
type OpenRequest struct {
	Purpose message.Purpose
	Options window.Options
}

// CloseRequest asks the window host to close a window.
type CloseRequest struct {
	ID window.ID
}

// ExitRequest asks the process to terminate successfully.
type ExitRequest struct{}

// DispatchRequest feeds a follow-up message back into the dispatcher.
type DispatchRequest struct {
	Msg message.Msg
}

func (OpenRequest) isRequest()     {}
func (CloseRequest) isRequest()    {}
func (ExitRequest) isRequest()     {}
func (DispatchRequest) isRequest() {}

// Presets are the window options used per open purpose.
type Presets struct {
	Initial  window.Options
	Main     window.Options
	Settings window.Options
}

// DefaultPresets mirrors the stock window setup: a transparent first window
// with the icon, plain icon-bearing windows afterwards, and a 400x300
// settings panel.
func DefaultPresets(icon string) Presets {
	return Presets{
		Initial:  window.Options{Icon: icon, Transparent: true},
		Main:     window.Options{Icon: icon},
		Settings: window.Options{}.WithSize(400, 300),
	}
}

func (p Presets) options(purpose message.Purpose, initial bool) window.Options {
	if purpose == message.PurposeSettings {
		return p.Settings
	}
	if initial {
		return p.Initial
	}
	return p.Main
}
