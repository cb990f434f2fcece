package theme

import "github.com/charmbracelet/lipgloss"

// Name identifies a palette entry. Windows store the name, not the styles.
type Name string

const (
	Light         Name = "light"
	Dark          Name = "dark"
	Dracula       Name = "dracula"
	Nord          Name = "nord"
	SolarizedDark Name = "solarized-dark"
	GruvboxDark   Name = "gruvbox-dark"
)

// Palette is the fixed, ordered set of themes a window can carry.
var Palette = []Name{Light, Dark, Dracula, Nord, SolarizedDark, GruvboxDark}

// Default is the theme new windows receive: palette index 1, wrapped to the
// palette size.
func Default() Name {
	return Palette[1%len(Palette)]
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Frame          *lipgloss.Style
	Title          *lipgloss.Style
	Text           *lipgloss.Style
	Button         *lipgloss.Style
	SelectedButton *lipgloss.Style
	Label          *lipgloss.Style
	Input          *lipgloss.Style
	Tab            *lipgloss.Style
	ActiveTab      *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Footer         *lipgloss.Style
}

type colors struct {
	fg, muted, accent, selFg, selBg, border, err string
}

var colorSets = map[Name]colors{
	Light:         {fg: "235", muted: "244", accent: "25", selFg: "231", selBg: "25", border: "250", err: "160"},
	Dark:          {fg: "249", muted: "241", accent: "33", selFg: "255", selBg: "238", border: "240", err: "196"},
	Dracula:       {fg: "253", muted: "61", accent: "141", selFg: "236", selBg: "141", border: "61", err: "203"},
	Nord:          {fg: "254", muted: "60", accent: "110", selFg: "236", selBg: "110", border: "60", err: "167"},
	SolarizedDark: {fg: "246", muted: "240", accent: "37", selFg: "230", selBg: "24", border: "239", err: "160"},
	GruvboxDark:   {fg: "223", muted: "245", accent: "214", selFg: "235", selBg: "214", border: "239", err: "167"},
}

var built = func() map[Name]*Styles {
	out := make(map[Name]*Styles, len(colorSets))
	for name, set := range colorSets {
		out[name] = build(set)
	}
	return out
}()

// For returns the style set for name, falling back to the default theme for
// unknown names.
func For(name Name) *Styles {
	if styles, ok := built[name]; ok {
		return styles
	}
	return built[Default()]
}

// Known reports whether name is in the palette.
func Known(name Name) bool {
	_, ok := colorSets[name]
	return ok
}

func build(c colors) *Styles {
	return &Styles{
		Frame: ptr(
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.border)),
		),
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.accent)).Bold(true),
		),
		Text: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.fg)),
		),
		Button: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.fg)).Padding(0, 1),
		),
		SelectedButton: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.selFg)).Background(lipgloss.Color(c.selBg)).Bold(true).Padding(0, 1),
		),
		Label: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.muted)),
		),
		Input: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.fg)),
		),
		Tab: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.muted)).Padding(0, 1),
		),
		ActiveTab: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.selFg)).Background(lipgloss.Color(c.selBg)).Padding(0, 1),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.err)).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.muted)).Italic(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(c.muted)),
		),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
