package view

import "testing"

func TestBackRestoresPreviousAndClearsHistory(t *testing.T) {
	for _, target := range []View{About, Settings, Chat} {
		m := NewMachine(Main)
		if !m.NavigateTo(target) {
			t.Fatalf("expected navigation to %s", target)
		}
		if prev, ok := m.Previous(); !ok || prev != Main {
			t.Fatalf("expected previous main, got %s/%v", prev, ok)
		}
		if !m.Back() {
			t.Fatalf("expected back to succeed from %s", target)
		}
		if m.Current() != Main {
			t.Fatalf("expected main after back, got %s", m.Current())
		}
		if _, ok := m.Previous(); ok {
			t.Fatalf("expected history cleared after back from %s", target)
		}
	}
}

func TestBackWithoutHistoryIsNoOp(t *testing.T) {
	m := NewMachine(Settings)
	before := m
	if m.Back() {
		t.Fatalf("expected back without history to report false")
	}
	if m != before {
		t.Fatalf("expected machine unchanged, got %#v", m)
	}
}

func TestSingleLevelHistory(t *testing.T) {
	m := NewMachine(Main)
	m.NavigateTo(About)
	m.NavigateTo(Chat)
	if m.Current() != Chat {
		t.Fatalf("expected chat, got %s", m.Current())
	}
	m.Back()
	if m.Current() != Main {
		t.Fatalf("expected main after back, got %s", m.Current())
	}
	if m.Back() {
		t.Fatalf("expected only one level of history")
	}
}

func TestNavigateToCurrentViewIsNoOp(t *testing.T) {
	m := NewMachine(Main)
	if m.NavigateTo(Main) {
		t.Fatalf("expected no transition to the current view")
	}
	if _, ok := m.Previous(); ok {
		t.Fatalf("expected no history after no-op navigation")
	}
}

func TestViewString(t *testing.T) {
	cases := map[View]string{Main: "main", About: "about", Settings: "settings", Chat: "chat", View(42): "unknown"}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestReturningToAnchorClearsHistory(t *testing.T) {
	cases := []struct {
		name    string
		initial View
		hops    []View
	}{
		{"main to about and back to main", Main, []View{About, Main}},
		{"main through chat and about to main", Main, []View{Chat, About, Main}},
		{"settings panel to main", Settings, []View{Main}},
		{"settings panel to about and back to settings", Settings, []View{About, Settings}},
	}
	for _, tc := range cases {
		m := NewMachine(tc.initial)
		for _, hop := range tc.hops {
			m.NavigateTo(hop)
		}
		if m.Current() != tc.hops[len(tc.hops)-1] {
			t.Fatalf("%s: unexpected current %s", tc.name, m.Current())
		}
		if prev, ok := m.Previous(); ok {
			t.Fatalf("%s: expected no history, got previous %s", tc.name, prev)
		}
		if m.Back() {
			t.Fatalf("%s: expected back to be a no-op", tc.name)
		}
	}
}

func TestHistoryOnlyWhileAwayFromMain(t *testing.T) {
	m := NewMachine(Main)
	for _, hop := range []View{About, Chat, Main, Settings, About, Main} {
		m.NavigateTo(hop)
		_, ok := m.Previous()
		if m.Current() == Main && ok {
			t.Fatalf("history held while on main after hop to %s", hop)
		}
		if m.Current() != Main && !ok {
			t.Fatalf("expected history while on %s", m.Current())
		}
	}
}
