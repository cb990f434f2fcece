// Package view holds the logical screens a window can show and the per-window
// navigation state machine.
package view

// View is one logical screen.
type View int

const (
	Main View = iota
	About
	Settings
	Chat
)

var names = [...]string{
	Main:     "main",
	About:    "about",
	Settings: "settings",
	Chat:     "chat",
}

func (v View) String() string {
	if v < 0 || int(v) >= len(names) {
		return "unknown"
	}
	return names[v]
}

// All lists every view in declaration order.
func All() []View {
	return []View{Main, About, Settings, Chat}
}

// Machine tracks the current view of a window and at most one previous view.
type Machine struct {
	current     View
	previous    View
	hasPrevious bool
}

// NewMachine starts a machine on the initial view with no history.
func NewMachine(initial View) Machine {
	return Machine{current: initial}
}

// Current returns the view being shown.
func (m Machine) Current() View {
	return m.current
}

// Previous returns the remembered view, if any.
func (m Machine) Previous() (View, bool) {
	return m.previous, m.hasPrevious
}

// NavigateTo switches to target. History holds a single level anchored at
// the view the window first left from: further hops keep that anchor, and
// reaching Main or the anchor itself forgets it.
func (m *Machine) NavigateTo(target View) bool {
	if target == m.current {
		return false
	}
	switch {
	case target == Main || (m.hasPrevious && target == m.previous):
		m.forget()
	case !m.hasPrevious:
		m.previous = m.current
		m.hasPrevious = true
	}
	m.current = target
	return true
}

// Back restores the remembered view and forgets it. Without history it does
// nothing and reports false.
func (m *Machine) Back() bool {
	if !m.hasPrevious {
		return false
	}
	m.current = m.previous
	m.forget()
	return true
}

func (m *Machine) forget() {
	m.previous = Main
	m.hasPrevious = false
}
