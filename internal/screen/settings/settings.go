package settings

import (
	"fmt"

	"github.com/atomicstack/mergechat/internal/logging/events"
	"github.com/atomicstack/mergechat/internal/screen"
	"github.com/atomicstack/mergechat/internal/window"
)

// Msg is a message produced by the settings panel.
type Msg interface {
	isSettingsMsg()
}

// Close is the panel's inert close button.
type Close struct{}

// CloseSettingsWindow asks the session to drop the panel's window and close
// it at the host.
type CloseSettingsWindow struct {
	ID window.ID
}

func (Close) isSettingsMsg()               {}
func (CloseSettingsWindow) isSettingsMsg() {}

// Screen renders the settings panel hosted in Window.
type Screen struct {
	Window window.ID
}

func (s Screen) Render() screen.Tree[Msg] {
	closeWindow := CloseSettingsWindow{ID: s.Window}
	return screen.Tree[Msg]{
		Title:   "Settings",
		Heading: "Settings dialog",
		Buttons: []screen.Button[Msg]{
			{Label: "Close", Msg: Close{}},
			{Label: "Close Settings", Msg: closeWindow},
		},
		Escape: screen.Ptr[Msg](closeWindow),
	}
}

func (Screen) Update(msg Msg) []Msg {
	switch m := msg.(type) {
	case Close:
		events.Screen.Message("settings", "close")
	case CloseSettingsWindow:
		events.Screen.Message("settings", fmt.Sprintf("close-window %s", m.ID))
	}
	return nil
}
