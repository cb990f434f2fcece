// Package state holds the window picker: the listed windows, the filter query,
// the selected row and the scroll offset.
package state

import "github.com/atomicstack/mergechat/internal/window"

// Picker lists the open windows. Items holds the rows matching Query.
type Picker struct {
	Title  string
	Query  string
	Items  []Item
	Cursor int
	Offset int

	all []Item
}

// NewPicker lists items with the cursor on focus when it is present.
func NewPicker(title string, items []Item, focus window.ID) *Picker {
	p := &Picker{Title: title}
	p.SetItems(items)
	p.Select(focus)
	return p
}

// SetItems replaces the window list. The selected window stays selected while
// it is still listed.
func (p *Picker) SetItems(items []Item) {
	p.all = append([]Item(nil), items...)
	p.refilter()
}

// Selected returns the window under the cursor.
func (p *Picker) Selected() (Item, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Item{}, false
	}
	return p.Items[p.Cursor], true
}

// Select moves the cursor onto id. It reports false when id is not listed.
func (p *Picker) Select(id window.ID) bool {
	for i, item := range p.Items {
		if item.ID == id {
			p.Cursor = i
			return true
		}
	}
	return false
}

// Type appends text to the query.
func (p *Picker) Type(text string) bool {
	if text == "" {
		return false
	}
	p.Query += text
	p.refilter()
	return true
}

// Backspace drops the last rune of the query.
func (p *Picker) Backspace() bool {
	runes := []rune(p.Query)
	if len(runes) == 0 {
		return false
	}
	p.Query = string(runes[:len(runes)-1])
	p.refilter()
	return true
}

// Clear empties the query.
func (p *Picker) Clear() bool {
	if p.Query == "" {
		return false
	}
	p.Query = ""
	p.refilter()
	return true
}

func (p *Picker) refilter() {
	selected, ok := p.Selected()
	p.Items = Filter(p.all, p.Query)
	p.Cursor = 0
	if ok {
		p.Select(selected.ID)
	}
}

// Move shifts the cursor by delta rows, stopping at either end.
func (p *Picker) Move(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = min(max(p.Cursor+delta, 0), len(p.Items)-1)
	return p.Cursor != old
}

// Page moves by whole pages of maxVisible rows.
func (p *Picker) Page(pages, maxVisible int) bool {
	if maxVisible <= 0 {
		maxVisible = len(p.Items)
	}
	return p.Move(pages * maxVisible)
}

// Home selects the first row.
func (p *Picker) Home() bool {
	return p.Move(-len(p.Items))
}

// End selects the last row.
func (p *Picker) End() bool {
	return p.Move(len(p.Items))
}

// Scroll adjusts Offset so the cursor row is among the maxVisible shown.
func (p *Picker) Scroll(maxVisible int) {
	if maxVisible <= 0 || len(p.Items) <= maxVisible {
		p.Offset = 0
		return
	}
	if p.Cursor < p.Offset {
		p.Offset = p.Cursor
	}
	if p.Cursor >= p.Offset+maxVisible {
		p.Offset = p.Cursor - maxVisible + 1
	}
	p.Offset = min(max(p.Offset, 0), len(p.Items)-maxVisible)
}
