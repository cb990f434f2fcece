package ui

import (
	"github.com/atomicstack/mergechat/internal/backend"
	"github.com/atomicstack/mergechat/internal/message"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForHostEvent(events <-chan backend.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-events
		if !ok {
			return hostDoneMsg{}
		}
		return hostEventMsg{event: evt}
	}
}

type hostEventMsg struct {
	event backend.Event
}

type hostDoneMsg struct{}

// handleHostEventMsg turns a host close notification into a Closed message
// and re-arms the listener.
func (m *Model) handleHostEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(hostEventMsg)
	if !ok {
		return nil
	}
	cmd := m.dispatch(message.Closed{ID: eventMsg.event.ID})
	if m.events != nil {
		waitCmd := waitForHostEvent(m.events)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleHostDoneMsg(tea.Msg) tea.Cmd {
	m.events = nil
	return nil
}
