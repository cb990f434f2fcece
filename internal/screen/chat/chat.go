package chat

import (
	"github.com/atomicstack/mergechat/internal/logging/events"
	"github.com/atomicstack/mergechat/internal/screen"
)

// Msg is a message produced by the chat screen.
type Msg int

const (
	Test Msg = iota
	Back
)

func (m Msg) String() string {
	switch m {
	case Test:
		return "test"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

type Screen struct{}

func (Screen) Render() screen.Tree[Msg] {
	return screen.Tree[Msg]{
		Title:   "Chat",
		Heading: "Chat dialog",
		Buttons: []screen.Button[Msg]{
			{Label: "Close", Msg: Test},
			{Label: "Back", Msg: Back},
		},
		Escape: screen.Ptr(Back),
	}
}

func (Screen) Update(msg Msg) []Msg {
	events.Screen.Message("chat", msg.String())
	return nil
}
