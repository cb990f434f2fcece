// Package ui contains the Bubble Tea program that hosts the session's windows
// in a terminal. The terminal shows one focused window at a time, with a tab
// bar listing every open window.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry keyed by message type.
//   - Key presses are translated into session messages (package message):
//     buttons carry the message they emit, esc fires the screen's escape
//     message, and edits to the global fields become SetField.
//   - Session messages go to dispatcher.Dispatcher.Apply, the only place the
//     window registry and the global fields change. The requests it returns
//     are executed by internal/ui/command and resolve into later messages
//     (Opened, OpenFailed) or tea.Quit.
//
// Host interactions:
//   - backend.Host mints window handles and publishes close notifications.
//     waitForHostEvent drains one notification at a time and is re-armed after
//     each, so closes reach the dispatcher in order as Closed messages.
//
// Rendering:
//   - windowTree is the pure boundary between session state and the display:
//     it maps a window's current view to a screen.Tree. The primary window
//     showing Main also gets the global configuration form.
//   - View draws the focused tree inside a frame styled by the window's theme,
//     or the fuzzy window picker (internal/ui/state) when it is open.
package ui
