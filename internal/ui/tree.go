package ui

import (
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/screen"
	"github.com/atomicstack/mergechat/internal/screen/about"
	"github.com/atomicstack/mergechat/internal/screen/chat"
	"github.com/atomicstack/mergechat/internal/screen/settings"
	"github.com/atomicstack/mergechat/internal/view"
	"github.com/atomicstack/mergechat/internal/window"
)

const globalFormHeading = "Global configuration"

// windowTree renders one window. Only the primary window showing Main gets
// the global configuration form; unknown windows render empty.
func (m *Model) windowTree(id window.ID) screen.Tree[message.Msg] {
	rec, ok := m.dispatcher.Window(id)
	if !ok {
		return screen.Tree[message.Msg]{}
	}
	var tree screen.Tree[message.Msg]
	switch rec.Nav.Current() {
	case view.Main:
		tree = mainTree(id)
	case view.About:
		tree = screen.Map(about.Screen{}.Render(), message.WrapAbout)
	case view.Chat:
		tree = screen.Map(chat.Screen{}.Render(), message.WrapChat)
	case view.Settings:
		tree = screen.Map(settings.Screen{Window: id}.Render(), message.WrapSettings)
	}
	primary, _ := m.dispatcher.Primary()
	if id == primary && rec.Nav.Current() == view.Main {
		tree.Form = m.globalForm()
	}
	return tree
}

func mainTree(id window.ID) screen.Tree[message.Msg] {
	return screen.Tree[message.Msg]{
		Title: "Main",
		Buttons: []screen.Button[message.Msg]{
			{Label: "About", Msg: message.NavigateTo{ID: id, View: view.About}},
			{Label: "Settings", Msg: message.RequestOpen{Purpose: message.PurposeSettings}},
			{Label: "Continue...", Msg: message.NavigateTo{ID: id, View: view.Chat}},
		},
	}
}

func (m *Model) globalForm() []screen.Input {
	form := make([]screen.Input, 0, len(fieldOrder))
	for _, name := range fieldOrder {
		form = append(form, screen.Input{
			Field:       name,
			Placeholder: fieldPlaceholders[name],
			Value:       m.dispatcher.Field(name),
		})
	}
	return form
}
