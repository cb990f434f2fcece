// Package message defines the closed set of messages the session dispatcher
// accepts. Every type implements Msg; nothing outside this package can.
package message

import (
	"fmt"

	"github.com/atomicstack/mergechat/internal/screen/about"
	"github.com/atomicstack/mergechat/internal/screen/chat"
	"github.com/atomicstack/mergechat/internal/screen/settings"
	"github.com/atomicstack/mergechat/internal/state"
	"github.com/atomicstack/mergechat/internal/view"
	"github.com/atomicstack/mergechat/internal/window"
)

// Msg is any message the dispatcher understands.
type Msg interface {
	isMsg()
}

// Purpose says what a window is being opened for.
type Purpose int

const (
	PurposeMain Purpose = iota
	PurposeSettings
)

func (p Purpose) String() string {
	switch p {
	case PurposeMain:
		return "main"
	case PurposeSettings:
		return "settings"
	default:
		return fmt.Sprintf("purpose(%d)", int(p))
	}
}

// RequestOpen asks the host for a new window. Initial marks the window opened
// at startup.
type RequestOpen struct {
	Purpose Purpose
	Initial bool
}

// Opened reports a window the host created.
type Opened struct {
	ID      window.ID
	Purpose Purpose
}

// OpenFailed reports that the host could not create a window.
type OpenFailed struct {
	Purpose Purpose
	Err     error
}

// Closed reports a window the host closed.
type Closed struct {
	ID window.ID
}

// NavigateTo switches one window to a view.
type NavigateTo struct {
	ID   window.ID
	View view.View
}

// About wraps a message from the about screen.
type About struct {
	Msg about.Msg
}

// Chat wraps a message from the chat screen.
type Chat struct {
	Msg chat.Msg
}

// Settings wraps a message from the settings panel.
type Settings struct {
	Msg settings.Msg
}

// SetField overwrites a global field.
type SetField struct {
	Field state.Field
	Value string
}

func (RequestOpen) isMsg() {}
func (Opened) isMsg()      {}
func (OpenFailed) isMsg()  {}
func (Closed) isMsg()      {}
func (NavigateTo) isMsg()  {}
func (About) isMsg()       {}
func (Chat) isMsg()        {}
func (Settings) isMsg()    {}
func (SetField) isMsg()    {}

// WrapAbout, WrapChat and WrapSettings lift sub-screen messages for screen.Map.
func WrapAbout(m about.Msg) Msg       { return About{Msg: m} }
func WrapChat(m chat.Msg) Msg         { return Chat{Msg: m} }
func WrapSettings(m settings.Msg) Msg { return Settings{Msg: m} }
