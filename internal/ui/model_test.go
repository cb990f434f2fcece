package ui

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/mergechat/internal/backend"
	"github.com/atomicstack/mergechat/internal/data/dispatcher"
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/state"
	"github.com/atomicstack/mergechat/internal/view"
	"github.com/atomicstack/mergechat/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeHost struct {
	next      window.ID
	fail      error
	opened    []window.Options
	closed    []window.ID
	requested []window.ID
}

func (f *fakeHost) Open(_ context.Context, opts window.Options) (window.ID, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	f.next++
	f.opened = append(f.opened, opts)
	return f.next, nil
}

func (f *fakeHost) Close(id window.ID) bool {
	f.closed = append(f.closed, id)
	return true
}

func (f *fakeHost) RequestClose(id window.ID) bool {
	f.requested = append(f.requested, id)
	return true
}

func (f *fakeHost) Events() <-chan backend.Event {
	return nil
}

func newTestHarness(t *testing.T, host *fakeHost) *Harness {
	t.Helper()
	m := NewModel(host, Config{Width: 100, Height: 40, Presets: dispatcher.DefaultPresets("icon.png")})
	h := NewHarness(m)
	h.Send(message.RequestOpen{Purpose: message.PurposeMain, Initial: true})
	return h
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func currentView(t *testing.T, h *Harness, id window.ID) view.View {
	t.Helper()
	rec, ok := h.Model().dispatcher.Window(id)
	if !ok {
		t.Fatalf("expected window %s to exist", id)
	}
	return rec.Nav.Current()
}

func TestInitialWindowOpensAndFocuses(t *testing.T) {
	host := &fakeHost{}
	h := newTestHarness(t, host)

	if got := h.Model().Focused(); got != 1 {
		t.Fatalf("expected window 1 focused, got %s", got)
	}
	if len(host.opened) != 1 || !host.opened[0].Transparent || host.opened[0].Icon != "icon.png" {
		t.Fatalf("expected transparent initial window with icon, got %#v", host.opened)
	}
	out := h.View()
	for _, want := range []string{"1:new", "Global configuration", "Twitch ID", "YouTube ID", "About", "Continue..."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestGlobalFieldsVisibleOnPrimaryOnly(t *testing.T) {
	h := newTestHarness(t, &fakeHost{})
	h.Send(key(tea.KeyCtrlN))
	if h.Model().Focused() != 2 {
		t.Fatalf("expected new window to take focus")
	}
	h.Send(message.SetField{Field: state.FieldTwitch, Value: "abc"})

	primary := h.Model().windowTree(1)
	if len(primary.Form) != 2 || primary.Form[0].Value != "abc" {
		t.Fatalf("expected primary form to show abc, got %#v", primary.Form)
	}
	if other := h.Model().windowTree(2); len(other.Form) != 0 {
		t.Fatalf("expected no form on secondary window, got %#v", other.Form)
	}
	if out := h.View(); strings.Contains(out, "Global configuration") {
		t.Fatalf("expected secondary window view without global form:\n%s", out)
	}

	h.Send(message.NavigateTo{ID: 1, View: view.About})
	if tree := h.Model().windowTree(1); len(tree.Form) != 0 {
		t.Fatalf("expected no form while primary shows about")
	}
	h.Send(message.Closed{ID: 1})
	if tree := h.Model().windowTree(2); len(tree.Form) != 2 || tree.Form[0].Value != "abc" {
		t.Fatalf("expected window 2 to become primary with the form, got %#v", tree.Form)
	}
}

func TestTypingIntoFieldPublishesSetField(t *testing.T) {
	h := newTestHarness(t, &fakeHost{})

	h.Send(runes("xyz"))
	if got := h.Model().dispatcher.Field(state.FieldTwitch); got != "xyz" {
		t.Fatalf("expected twitch field xyz, got %q", got)
	}
	h.Send(key(tea.KeyBackspace))
	if got := h.Model().dispatcher.Field(state.FieldTwitch); got != "xy" {
		t.Fatalf("expected twitch field xy, got %q", got)
	}

	h.Send(key(tea.KeyDown))
	h.Send(runes("yt"))
	if got := h.Model().dispatcher.Field(state.FieldYoutube); got != "yt" {
		t.Fatalf("expected youtube field yt, got %q", got)
	}
	if got := h.Model().dispatcher.Field(state.FieldTwitch); got != "xy" {
		t.Fatalf("expected twitch untouched, got %q", got)
	}
}

func TestInitialFieldsFromConfig(t *testing.T) {
	m := NewModel(&fakeHost{}, Config{Fields: map[state.Field]string{state.FieldYoutube: "chan"}})
	if got := m.dispatcher.Field(state.FieldYoutube); got != "chan" {
		t.Fatalf("expected preset youtube value, got %q", got)
	}
	if got := m.inputs[state.FieldYoutube].Value(); got != "chan" {
		t.Fatalf("expected input synced, got %q", got)
	}
}

func TestButtonsNavigateAndEscapeGoesBack(t *testing.T) {
	h := newTestHarness(t, &fakeHost{})

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnter))
	if currentView(t, h, 1) != view.About {
		t.Fatalf("expected about view")
	}
	if out := h.View(); !strings.Contains(out, "About dialog") {
		t.Fatalf("expected about dialog rendered:\n%s", out)
	}
	h.Send(key(tea.KeyEsc))
	if currentView(t, h, 1) != view.Main {
		t.Fatalf("expected esc to go back to main")
	}

	for i := 0; i < 4; i++ {
		h.Send(key(tea.KeyDown))
	}
	h.Send(key(tea.KeyEnter))
	if currentView(t, h, 1) != view.Chat {
		t.Fatalf("expected chat view")
	}
	// Back is the second chat button.
	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnter))
	if currentView(t, h, 1) != view.Main {
		t.Fatalf("expected back button to return to main")
	}
}

func TestSettingsWindowOpenAndClose(t *testing.T) {
	host := &fakeHost{}
	h := newTestHarness(t, host)

	for i := 0; i < 3; i++ {
		h.Send(key(tea.KeyDown))
	}
	h.Send(key(tea.KeyEnter))
	if h.Model().Focused() != 2 || currentView(t, h, 2) != view.Settings {
		t.Fatalf("expected settings window 2 focused")
	}
	if opts := host.opened[1]; opts.Size == nil || opts.Size.Width != 400 {
		t.Fatalf("expected settings size preset, got %#v", opts)
	}

	h.Send(key(tea.KeyDown))
	h.Send(key(tea.KeyEnter))
	if !reflect.DeepEqual(host.closed, []window.ID{2}) {
		t.Fatalf("expected host close of 2, got %v", host.closed)
	}
	if got := h.Model().dispatcher.WindowIDs(); !reflect.DeepEqual(got, []window.ID{1}) {
		t.Fatalf("unexpected windows %v", got)
	}
	if h.Model().Focused() != 1 {
		t.Fatalf("expected focus back on window 1")
	}

	h.Send(hostEventMsg{event: backend.Event{ID: 2}})
	if h.Quit() || len(h.Model().dispatcher.WindowIDs()) != 1 {
		t.Fatalf("expected stale close confirmation to be ignored")
	}
}

func TestSettingsCloseOfLastWindowClosesThenQuits(t *testing.T) {
	host := &fakeHost{}
	h := newTestHarness(t, host)
	h.Send(message.RequestOpen{Purpose: message.PurposeSettings})
	h.Send(message.Closed{ID: 1})
	if h.Quit() {
		t.Fatalf("expected settings window to keep the session alive")
	}

	h.Send(key(tea.KeyEsc))
	if !reflect.DeepEqual(host.closed, []window.ID{2}) {
		t.Fatalf("expected host close of 2, got %v", host.closed)
	}
	if !h.Quit() {
		t.Fatalf("expected quit once the last window is gone")
	}
}

func TestCloseFocusedWindowQuitsWhenLast(t *testing.T) {
	host := &fakeHost{}
	h := newTestHarness(t, host)

	h.Send(key(tea.KeyCtrlW))
	if !reflect.DeepEqual(host.requested, []window.ID{1}) {
		t.Fatalf("expected close request for 1, got %v", host.requested)
	}
	if h.Quit() {
		t.Fatalf("expected no quit before the host confirms")
	}
	h.Send(hostEventMsg{event: backend.Event{ID: 1, External: true}})
	if !h.Quit() {
		t.Fatalf("expected quit after last window closed")
	}
	if out := h.View(); !strings.Contains(out, "(no windows)") {
		t.Fatalf("expected empty view:\n%s", out)
	}
}

func TestCloseMovesFocusToNextWindow(t *testing.T) {
	h := newTestHarness(t, &fakeHost{})
	h.Send(key(tea.KeyCtrlN))
	h.Send(key(tea.KeyCtrlN))
	h.Send(key(tea.KeyCtrlLeft))
	if h.Model().Focused() != 2 {
		t.Fatalf("expected focus 2, got %s", h.Model().Focused())
	}
	h.Send(hostEventMsg{event: backend.Event{ID: 2, External: true}})
	if h.Model().Focused() != 3 {
		t.Fatalf("expected focus to move to 3, got %s", h.Model().Focused())
	}
	h.Send(hostEventMsg{event: backend.Event{ID: 3, External: true}})
	if h.Model().Focused() != 1 {
		t.Fatalf("expected focus to fall back to 1, got %s", h.Model().Focused())
	}
}

func TestFocusCycleWraps(t *testing.T) {
	h := newTestHarness(t, &fakeHost{})
	h.Send(key(tea.KeyCtrlN))
	h.Send(key(tea.KeyCtrlN))

	h.Send(key(tea.KeyCtrlRight))
	if h.Model().Focused() != 1 {
		t.Fatalf("expected wrap to 1, got %s", h.Model().Focused())
	}
	h.Send(key(tea.KeyCtrlLeft))
	if h.Model().Focused() != 3 {
		t.Fatalf("expected wrap to 3, got %s", h.Model().Focused())
	}
}

func TestOpenFailureWithoutWindowsQuits(t *testing.T) {
	host := &fakeHost{fail: errors.New("no display")}
	h := newTestHarness(t, host)
	if !h.Quit() {
		t.Fatalf("expected quit when the initial window cannot open")
	}
	if out := h.View(); !strings.Contains(out, "Error:") || !strings.Contains(out, "no display") {
		t.Fatalf("expected error in status line:\n%s", out)
	}
}

func TestOpenFailureWithWindowsKeepsRunning(t *testing.T) {
	host := &fakeHost{}
	h := newTestHarness(t, host)
	host.fail = backend.ErrWindowLimit

	h.Send(key(tea.KeyCtrlN))
	if h.Quit() {
		t.Fatalf("expected session to keep running")
	}
	if !errors.Is(h.Model().dispatcher.LastError(), backend.ErrWindowLimit) {
		t.Fatalf("expected window limit error recorded, got %v", h.Model().dispatcher.LastError())
	}
	if h.Model().errMsg == "" {
		t.Fatalf("expected error shown")
	}

	host.fail = nil
	h.Send(key(tea.KeyCtrlN))
	if h.Model().errMsg != "" {
		t.Fatalf("expected successful open to clear the error")
	}
}

func TestCtrlCQuits(t *testing.T) {
	h := newTestHarness(t, &fakeHost{})
	h.Send(key(tea.KeyCtrlC))
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestWindowTreeForUnknownWindowIsEmpty(t *testing.T) {
	m := NewModel(nil, Config{})
	tree := m.windowTree(42)
	if tree.Title != "" || len(tree.Buttons) != 0 || tree.Escape != nil {
		t.Fatalf("expected empty tree, got %#v", tree)
	}
}

func TestNilHostFailsOpen(t *testing.T) {
	m := NewModel(nil, Config{})
	h := NewHarness(m)
	h.Send(message.RequestOpen{Purpose: message.PurposeMain, Initial: true})
	if !h.Quit() {
		t.Fatalf("expected quit without a window host")
	}
}
