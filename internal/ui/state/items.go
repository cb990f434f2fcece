package state

import (
	"fmt"

	"github.com/atomicstack/mergechat/internal/theme"
	"github.com/atomicstack/mergechat/internal/view"
	"github.com/atomicstack/mergechat/internal/window"
)

// Item is one window row in the picker.
type Item struct {
	ID    window.ID
	Title string
	View  view.View
	Theme theme.Name
}

// Label is the row text shown next to the window id.
func (i Item) Label() string {
	return fmt.Sprintf("%s %s", i.Title, i.View)
}

func (i Item) terms() []string {
	return []string{i.Title, i.View.String(), string(i.Theme), i.ID.String()}
}
