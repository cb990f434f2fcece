// Package screen defines the display tree a window renders to and the
// render/update pair every sub-screen provides.
package screen

import "github.com/atomicstack/mergechat/internal/state"

// Button is an interactive element that emits Msg when activated.
type Button[M any] struct {
	Label string
	Msg   M
}

// Input is an editable global field shown in the configuration form.
type Input struct {
	Field       state.Field
	Placeholder string
	Value       string
}

// Tree is the displayable output of rendering one window. The host never
// inspects it beyond drawing and wiring the buttons.
type Tree[M any] struct {
	Title   string
	Heading string
	Lines   []string
	Form    []Input
	Buttons []Button[M]
	Escape  *M
}

// Screen is the capability pair a sub-screen exposes.
type Screen[M any] interface {
	Render() Tree[M]
	Update(M) []M
}

// Map lifts a tree emitting M into one emitting N.
func Map[M, N any](t Tree[M], wrap func(M) N) Tree[N] {
	out := Tree[N]{
		Title:   t.Title,
		Heading: t.Heading,
		Lines:   append([]string(nil), t.Lines...),
		Form:    append([]Input(nil), t.Form...),
	}
	if len(t.Buttons) > 0 {
		out.Buttons = make([]Button[N], len(t.Buttons))
		for i, b := range t.Buttons {
			out.Buttons[i] = Button[N]{Label: b.Label, Msg: wrap(b.Msg)}
		}
	}
	if t.Escape != nil {
		esc := wrap(*t.Escape)
		out.Escape = &esc
	}
	return out
}

// Ptr is a small helper for setting Tree.Escape.
func Ptr[M any](m M) *M {
	return &m
}
