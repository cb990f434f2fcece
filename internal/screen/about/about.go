package about

import (
	"github.com/atomicstack/mergechat/internal/logging/events"
	"github.com/atomicstack/mergechat/internal/screen"
)

// Msg is a message produced by the about screen.
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

// Screen is the about dialog. It keeps no state of its own.
type Screen struct{}

func (Screen) Render() screen.Tree[Msg] {
	return screen.Tree[Msg]{
		Title:   "About",
		Heading: "About dialog",
		Lines: []string{
			"mergechat merges chat streams from several services",
			"into one place.",
		},
		Buttons: []screen.Button[Msg]{
			{Label: "Close", Msg: Test},
			{Label: "Back", Msg: Back},
		},
		Escape: screen.Ptr(Back),
	}
}

// Update handles the messages the session does not intercept. Back is
// resolved by the session itself and is a no-op here.
func (Screen) Update(msg Msg) []Msg {
	events.Screen.Message("about", msg.String())
	return nil
}
