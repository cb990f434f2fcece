package dispatcher

import (
	"github.com/atomicstack/mergechat/internal/logging/events"
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/screen/about"
	"github.com/atomicstack/mergechat/internal/screen/chat"
	"github.com/atomicstack/mergechat/internal/screen/settings"
	"github.com/atomicstack/mergechat/internal/state"
	"github.com/atomicstack/mergechat/internal/theme"
	"github.com/atomicstack/mergechat/internal/view"
	"github.com/atomicstack/mergechat/internal/window"
)

const (
	mainTitle     = "new"
	settingsTitle = "Settings"
)

// Result reports what a message changed and which requests it produced.
type Result struct {
	Requests       []Request
	WindowsChanged bool
	FieldsChanged  bool
}

func (r *Result) add(req Request) {
	r.Requests = append(r.Requests, req)
}

// Dispatcher owns the window registry and the global fields. Apply is the
// only way to change either and must be called from one goroutine.
type Dispatcher struct {
	windows state.Registry
	fields  state.Fields
	presets Presets
	lastErr error

	about about.Screen
	chat  chat.Screen
}

func New(w state.Registry, f state.Fields, presets Presets) *Dispatcher {
	if w == nil {
		w = state.NewRegistry()
	}
	if f == nil {
		f = state.NewFields()
	}
	return &Dispatcher{windows: w, fields: f, presets: presets}
}

// Apply consumes one message. Messages naming windows that are gone, or
// asking for transitions that cannot happen, change nothing.
func (d *Dispatcher) Apply(msg message.Msg) Result {
	var res Result
	switch m := msg.(type) {
	case message.RequestOpen:
		opts := d.presets.options(m.Purpose, m.Initial)
		events.Window.OpenRequest(m.Purpose.String(), opts.Payload())
		res.add(OpenRequest{Purpose: m.Purpose, Options: opts})
	case message.Opened:
		d.handleOpened(m, &res)
	case message.OpenFailed:
		d.lastErr = m.Err
		events.Window.OpenFailed(m.Purpose.String(), m.Err)
		if d.windows.Len() == 0 {
			res.add(ExitRequest{})
		}
	case message.Closed:
		d.removeWindow(m.ID, &res, nil)
	case message.NavigateTo:
		d.handleNavigate(m, &res)
	case message.About:
		if m.Msg == about.Back {
			d.backFrom(view.About, &res)
			break
		}
		for _, follow := range d.about.Update(m.Msg) {
			res.add(DispatchRequest{Msg: message.WrapAbout(follow)})
		}
	case message.Chat:
		if m.Msg == chat.Back {
			d.backFrom(view.Chat, &res)
			break
		}
		for _, follow := range d.chat.Update(m.Msg) {
			res.add(DispatchRequest{Msg: message.WrapChat(follow)})
		}
	case message.Settings:
		d.handleSettings(m, &res)
	case message.SetField:
		d.fields.Set(m.Field, m.Value)
		events.Field.Set(string(m.Field), len(m.Value))
		res.FieldsChanged = true
	}
	return res
}

func (d *Dispatcher) handleOpened(m message.Opened, res *Result) {
	title, initial := mainTitle, view.Main
	if m.Purpose == message.PurposeSettings {
		title, initial = settingsTitle, view.Settings
	}
	if !d.windows.Insert(m.ID, title, initial) {
		events.Window.Ignored(m.ID.String(), events.ReasonDuplicate)
		return
	}
	d.lastErr = nil
	events.Window.Opened(m.ID.String(), m.Purpose.String(), title)
	res.WindowsChanged = true
}

// removeWindow drops id and requests exit once the last window is gone.
// onRemoved runs after removal and before any exit request is queued.
func (d *Dispatcher) removeWindow(id window.ID, res *Result, onRemoved func()) {
	if _, known := d.windows.Get(id); !known {
		events.Window.Ignored(id.String(), events.ReasonUnknown)
		return
	}
	empty := d.windows.Remove(id)
	events.Window.Closed(id.String(), d.windows.Len())
	res.WindowsChanged = true
	if onRemoved != nil {
		onRemoved()
	}
	if empty {
		events.App.Exit(0)
		res.add(ExitRequest{})
	}
}

func (d *Dispatcher) handleNavigate(m message.NavigateTo, res *Result) {
	var from view.View
	moved := false
	d.windows.Update(m.ID, func(rec *state.Record) {
		from = rec.Nav.Current()
		moved = rec.Nav.NavigateTo(m.View)
	})
	if moved {
		events.View.Navigate(m.ID.String(), from.String(), m.View.String())
		res.WindowsChanged = true
	}
}

// backFrom applies Back to the first window, in key order, currently showing
// v. When several windows show v only the first one moves.
func (d *Dispatcher) backFrom(v view.View, res *Result) {
	id, ok := d.windows.Find(func(_ window.ID, rec state.Record) bool {
		return rec.Nav.Current() == v
	})
	if !ok {
		events.View.BackMiss(v.String())
		return
	}
	var to view.View
	moved := false
	d.windows.Update(id, func(rec *state.Record) {
		moved = rec.Nav.Back()
		to = rec.Nav.Current()
	})
	if !moved {
		events.View.BackMiss(v.String())
		return
	}
	events.View.Back(id.String(), v.String(), to.String())
	res.WindowsChanged = true
}

func (d *Dispatcher) handleSettings(m message.Settings, res *Result) {
	if closeMsg, ok := m.Msg.(settings.CloseSettingsWindow); ok {
		d.removeWindow(closeMsg.ID, res, func() {
			events.Window.CloseRequest(closeMsg.ID.String())
			res.add(CloseRequest{ID: closeMsg.ID})
		})
		return
	}
	panel := settings.Screen{}
	for _, follow := range panel.Update(m.Msg) {
		res.add(DispatchRequest{Msg: message.WrapSettings(follow)})
	}
}

// Window returns a copy of the record for id.
func (d *Dispatcher) Window(id window.ID) (state.Record, bool) {
	return d.windows.Get(id)
}

// WindowIDs lists open windows in key order.
func (d *Dispatcher) WindowIDs() []window.ID {
	return d.windows.IDs()
}

// Primary returns the window that hosts the global configuration form.
func (d *Dispatcher) Primary() (window.ID, bool) {
	return d.windows.Primary()
}

// Field returns the current value of a global field.
func (d *Dispatcher) Field(name state.Field) string {
	return d.fields.Get(name)
}

// LastError returns the most recent open failure, cleared by the next
// successful open.
func (d *Dispatcher) LastError() error {
	return d.lastErr
}

// Title returns the window title, or "" for unknown windows.
func (d *Dispatcher) Title(id window.ID) string {
	if rec, ok := d.windows.Get(id); ok {
		return rec.Title
	}
	return ""
}

// Theme returns the window theme, or the default theme for unknown windows.
func (d *Dispatcher) Theme(id window.ID) theme.Name {
	if rec, ok := d.windows.Get(id); ok {
		return rec.Theme
	}
	return theme.Default()
}

// Scale returns the window scale factor, or 1 for unknown windows.
func (d *Dispatcher) Scale(id window.ID) float64 {
	if rec, ok := d.windows.Get(id); ok {
		return rec.Scale
	}
	return 1.0
}
