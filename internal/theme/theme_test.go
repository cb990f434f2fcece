package theme

import "testing"

func TestDefaultIsSecondPaletteEntry(t *testing.T) {
	if got := Default(); got != Dark {
		t.Fatalf("expected %q, got %q", Dark, got)
	}
	if Default() != Default() {
		t.Fatalf("expected default theme to be deterministic")
	}
}

func TestForFallsBackToDefault(t *testing.T) {
	if For("no-such-theme") != For(Default()) {
		t.Fatalf("expected unknown theme to resolve to default styles")
	}
	for _, name := range Palette {
		if !Known(name) {
			t.Fatalf("expected palette entry %q to have colors", name)
		}
		if For(name).Title == nil {
			t.Fatalf("expected title style for %q", name)
		}
	}
}
