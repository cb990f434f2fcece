package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1", "new main", "dark"},
		{"12", "Settings settings", "nord"},
	}
	got := Format(rows, []Column{{Align: AlignRight}, {}, {}})
	want := []string{
		" 1  new main           dark",
		"12  Settings settings  nord",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatTruncatesAndPadsShortRows(t *testing.T) {
	rows := [][]string{
		{"id", "title"},
		{"3"},
		{"4", "a very long title"},
	}
	got := Format(rows, []Column{{}, {MaxWidth: 6}})
	if got[1] != "3" {
		t.Fatalf("expected short row padded then trimmed, got %q", got[1])
	}
	if got[2] != "4   a ver…" {
		t.Fatalf("expected truncated cell, got %q", got[2])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
