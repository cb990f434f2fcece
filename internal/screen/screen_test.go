package screen

import (
	"fmt"
	"testing"
)

func TestMapWrapsButtonsAndEscape(t *testing.T) {
	tree := Tree[int]{
		Title:   "numbers",
		Lines:   []string{"one"},
		Buttons: []Button[int]{{Label: "a", Msg: 1}, {Label: "b", Msg: 2}},
		Escape:  Ptr(2),
	}
	mapped := Map(tree, func(n int) string { return fmt.Sprintf("n%d", n) })
	if mapped.Title != "numbers" || len(mapped.Lines) != 1 {
		t.Fatalf("unexpected mapped tree %#v", mapped)
	}
	if len(mapped.Buttons) != 2 || mapped.Buttons[1].Msg != "n2" || mapped.Buttons[0].Label != "a" {
		t.Fatalf("unexpected buttons %#v", mapped.Buttons)
	}
	if mapped.Escape == nil || *mapped.Escape != "n2" {
		t.Fatalf("expected escape mapped, got %v", mapped.Escape)
	}
}

func TestMapWithoutEscape(t *testing.T) {
	mapped := Map(Tree[int]{}, func(n int) int { return n })
	if mapped.Escape != nil || mapped.Buttons != nil {
		t.Fatalf("expected empty mapped tree, got %#v", mapped)
	}
}
