package state

import (
	"testing"

	"github.com/atomicstack/mergechat/internal/theme"
	"github.com/atomicstack/mergechat/internal/view"
)

func TestItemMatchesTitleViewThemeAndID(t *testing.T) {
	item := Item{ID: 12, Title: "Settings", View: view.Settings, Theme: theme.Nord}
	cases := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"sett", true},
		{"SETTINGS", true},
		{"nord", true},
		{"12", true},
		{"stg nrd", true},
		{"chat", false},
		{"sett chat", false},
	}
	for _, tc := range cases {
		if got := item.Matches(tc.query); got != tc.want {
			t.Fatalf("Matches(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestFilterKeepsWindowOrder(t *testing.T) {
	items := []Item{
		{ID: 1, Title: "new", View: view.Chat, Theme: theme.Dark},
		{ID: 2, Title: "Settings", View: view.Settings, Theme: theme.Dark},
		{ID: 5, Title: "new", View: view.Chat, Theme: theme.Dracula},
	}
	got := Filter(items, "chat")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 5 {
		t.Fatalf("expected chat windows 1 and 5, got %#v", got)
	}
	if got := Filter(items, "dracula"); len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("expected theme match on window 5, got %#v", got)
	}
	if got := Filter(items, "about"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestItemLabel(t *testing.T) {
	item := Item{ID: 3, Title: "new", View: view.About}
	if got := item.Label(); got != "new about" {
		t.Fatalf("expected %q, got %q", "new about", got)
	}
}
