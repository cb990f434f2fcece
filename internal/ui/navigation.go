package ui

import (
	"fmt"

	"github.com/atomicstack/mergechat/internal/logging/events"
	"github.com/atomicstack/mergechat/internal/message"
	uistate "github.com/atomicstack/mergechat/internal/ui/state"
	"github.com/atomicstack/mergechat/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.picker != nil {
		return m.handlePickerKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+n":
		return m.dispatch(message.RequestOpen{Purpose: message.PurposeMain})
	case "ctrl+w":
		return m.closeFocused()
	case "ctrl+right":
		m.cycleFocus(1)
		return nil
	case "ctrl+left":
		m.cycleFocus(-1)
		return nil
	case "ctrl+g":
		m.openPicker()
		return nil
	case "up", "shift+tab":
		m.moveCursor(-1)
		return nil
	case "down", "tab":
		m.moveCursor(1)
		return nil
	case "enter":
		return m.activate()
	case "esc":
		return m.escape()
	}
	return m.handleInputKey(keyMsg)
}

// elementCount is the number of focusable elements in the focused window:
// form inputs first, then buttons.
func (m *Model) elementCount() int {
	tree := m.windowTree(m.focused)
	return len(tree.Form) + len(tree.Buttons)
}

func (m *Model) moveCursor(delta int) {
	n := m.elementCount()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
	m.syncInputFocus()
}

func (m *Model) clampCursor() {
	n := m.elementCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// activate presses the button under the cursor. Inputs ignore enter.
func (m *Model) activate() tea.Cmd {
	tree := m.windowTree(m.focused)
	idx := m.cursor - len(tree.Form)
	if idx < 0 || idx >= len(tree.Buttons) {
		return nil
	}
	return m.dispatch(tree.Buttons[idx].Msg)
}

func (m *Model) escape() tea.Cmd {
	tree := m.windowTree(m.focused)
	if tree.Escape == nil {
		return nil
	}
	return m.dispatch(*tree.Escape)
}

func (m *Model) setFocus(id window.ID) {
	if id == m.focused {
		return
	}
	m.focused = id
	m.cursor = 0
	events.Window.Focus(id.String())
	m.syncInputFocus()
}

// syncWindows keeps focus on an open window after the registry changed,
// falling back to the nearest surviving window in key order.
func (m *Model) syncWindows() {
	ids := m.dispatcher.WindowIDs()
	if len(ids) == 0 {
		m.focused = 0
		m.cursor = 0
		m.picker = nil
		return
	}
	if _, ok := m.dispatcher.Window(m.focused); !ok {
		next := ids[len(ids)-1]
		for _, id := range ids {
			if id > m.focused {
				next = id
				break
			}
		}
		m.setFocus(next)
	}
	m.clampCursor()
	if m.picker != nil {
		m.picker.SetItems(m.pickerItems())
	}
}

func (m *Model) cycleFocus(delta int) {
	ids := m.dispatcher.WindowIDs()
	if len(ids) < 2 {
		return
	}
	pos := 0
	for i, id := range ids {
		if id == m.focused {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(ids)) % len(ids)
	m.setFocus(ids[pos])
}

func (m *Model) pickerItems() []uistate.Item {
	ids := m.dispatcher.WindowIDs()
	items := make([]uistate.Item, 0, len(ids))
	for _, id := range ids {
		rec, _ := m.dispatcher.Window(id)
		items = append(items, uistate.Item{
			ID:    id,
			Title: rec.Title,
			View:  rec.Nav.Current(),
			Theme: rec.Theme,
		})
	}
	return items
}

func (m *Model) openPicker() {
	if len(m.dispatcher.WindowIDs()) == 0 {
		return
	}
	m.picker = uistate.NewPicker(pickerTitle, m.pickerItems(), m.focused)
	m.syncViewport()
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	p := m.picker
	switch msg.String() {
	case "esc", "ctrl+g":
		m.picker = nil
		return nil
	case "enter":
		if item, ok := p.Selected(); ok {
			m.setFocus(item.ID)
			m.setInfo(fmt.Sprintf("focused window %s", item.ID))
		}
		m.picker = nil
		return nil
	case "up":
		p.Move(-1)
	case "down":
		p.Move(1)
	case "pgup":
		p.Page(-1, m.maxVisibleItems())
	case "pgdown":
		p.Page(1, m.maxVisibleItems())
	case "home":
		p.Home()
	case "end":
		p.End()
	case "ctrl+u":
		p.Clear()
	default:
		switch msg.Type {
		case tea.KeyBackspace:
			p.Backspace()
		case tea.KeySpace:
			p.Type(" ")
		case tea.KeyRunes:
			if !msg.Alt {
				p.Type(string(msg.Runes))
			}
		}
	}
	m.syncViewport()
	return nil
}

func (m *Model) syncViewport() {
	if m.picker == nil {
		return
	}
	m.picker.Scroll(m.maxVisibleItems())
}
