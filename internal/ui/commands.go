package ui

import (
	"fmt"

	"github.com/atomicstack/mergechat/internal/logging/events"
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/view"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleSessionMsg(msg tea.Msg) tea.Cmd {
	sessionMsg, ok := msg.(message.Msg)
	if !ok {
		return nil
	}
	return m.dispatch(sessionMsg)
}

// dispatch applies msg to the session and schedules the resulting requests.
func (m *Model) dispatch(msg message.Msg) tea.Cmd {
	before, hadFocus := m.focusedView()
	res := m.dispatcher.Apply(msg)

	switch typed := msg.(type) {
	case message.Opened:
		if res.WindowsChanged {
			m.errMsg = ""
			m.setFocus(typed.ID)
			m.setInfo(fmt.Sprintf("opened %s window %s", typed.Purpose, typed.ID))
		}
	case message.OpenFailed:
		if typed.Err != nil {
			m.errMsg = typed.Err.Error()
		}
	}

	if res.WindowsChanged {
		m.syncWindows()
		if after, ok := m.focusedView(); ok && (!hadFocus || after != before) {
			m.cursor = 0
			m.syncInputFocus()
		}
	}
	if res.FieldsChanged {
		m.syncInputs()
	}
	return m.bus.Run(res.Requests)
}

func (m *Model) focusedView() (view.View, bool) {
	rec, ok := m.dispatcher.Window(m.focused)
	if !ok {
		return view.Main, false
	}
	return rec.Nav.Current(), true
}

// closeFocused asks the host to close the focused window. The session learns
// about it from the host's close notification.
func (m *Model) closeFocused() tea.Cmd {
	id := m.focused
	if m.host == nil || !id.Valid() {
		return nil
	}
	events.Window.CloseRequest(id.String())
	host := m.host
	return func() tea.Msg {
		host.RequestClose(id)
		return nil
	}
}
