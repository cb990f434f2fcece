package ui

import (
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var fieldOrder = []state.Field{state.FieldTwitch, state.FieldYoutube}

var fieldPlaceholders = map[state.Field]string{
	state.FieldTwitch:  "Twitch ID",
	state.FieldYoutube: "YouTube ID",
}

func newFieldInputs() map[state.Field]*textinput.Model {
	inputs := make(map[state.Field]*textinput.Model, len(fieldOrder))
	for _, name := range fieldOrder {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[name]
		ti.Prompt = ""
		ti.Cursor.SetMode(cursor.CursorStatic)
		inputs[name] = &ti
	}
	return inputs
}

// activeInput returns the field whose input sits under the cursor.
func (m *Model) activeInput() (state.Field, bool) {
	tree := m.windowTree(m.focused)
	if m.cursor < 0 || m.cursor >= len(tree.Form) {
		return "", false
	}
	return tree.Form[m.cursor].Field, true
}

func (m *Model) syncInputFocus() {
	active, ok := m.activeInput()
	for name, input := range m.inputs {
		if ok && name == active {
			input.Focus()
			continue
		}
		input.Blur()
	}
}

// syncInputs copies the session's field values into the inputs.
func (m *Model) syncInputs() {
	for name, input := range m.inputs {
		if value := m.dispatcher.Field(name); input.Value() != value {
			input.SetValue(value)
		}
	}
}

// handleInputKey feeds an editing key to the active input and publishes the
// new value as a SetField message.
func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	name, ok := m.activeInput()
	if !ok {
		return nil
	}
	input := m.inputs[name]
	input.Focus()
	before := input.Value()
	updated, cmd := input.Update(msg)
	*input = updated
	if value := input.Value(); value != before {
		if next := m.dispatch(message.SetField{Field: name, Value: value}); next != nil {
			return tea.Batch(cmd, next)
		}
	}
	return cmd
}
