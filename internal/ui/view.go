package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atomicstack/mergechat/internal/format/table"
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/screen"
	"github.com/atomicstack/mergechat/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	footerText    = "↑/↓ move  enter press  esc back  ctrl+n new  ctrl+w close  ctrl+←/→ switch  ctrl+g windows  ctrl+c quit"
	pickerFooter  = "↑/↓ move  enter focus  type to filter  esc cancel"
	frameChrome   = 2 // top and bottom border rows
	pickerTitleCW = 32
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	styles := theme.For(m.dispatcher.Theme(m.focused))
	sections := []string{m.tabBar(styles)}

	var body []styledLine
	switch {
	case m.picker != nil:
		body = m.pickerLines(styles)
	case !m.focused.Valid():
		body = []styledLine{{text: "(no windows)", style: styles.Info}}
	default:
		body = m.treeLines(m.windowTree(m.focused), styles)
	}
	innerWidth := m.frameInnerWidth()
	body = limitHeight(body, m.bodyHeight(), innerWidth)
	body = applyWidth(body, innerWidth)

	frame := styles.Frame.Padding(0, scalePadding(m.dispatcher.Scale(m.focused)))
	if m.width > 0 {
		frame = frame.Width(m.width - frameChrome)
	}
	sections = append(sections, frame.Render(renderLines(body)))

	var bottom []styledLine
	if m.errMsg != "" {
		bottom = append(bottom, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error})
	} else if info := m.currentInfo(); info != "" {
		bottom = append(bottom, styledLine{text: info, style: styles.Info})
	} else {
		bottom = append(bottom, styledLine{})
	}
	if m.showFooter {
		text := footerText
		if m.picker != nil {
			text = pickerFooter
		}
		bottom = append(bottom, styledLine{text: text, style: styles.Footer})
	}
	sections = append(sections, renderLines(applyWidth(bottom, m.width)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// tabBar lists every open window, highlighting the focused one.
func (m *Model) tabBar(styles *theme.Styles) string {
	ids := m.dispatcher.WindowIDs()
	if len(ids) == 0 {
		return styles.Tab.Render("mergechat")
	}
	tabs := make([]string, 0, len(ids))
	for _, id := range ids {
		label := fmt.Sprintf("%s:%s", id, m.dispatcher.Title(id))
		if id == m.focused {
			tabs = append(tabs, styles.ActiveTab.Render(label))
			continue
		}
		tabs = append(tabs, styles.Tab.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 && lipgloss.Width(bar) > m.width {
		bar = truncate.StringWithTail(bar, uint(m.width-1), "…")
	}
	return bar
}

func (m *Model) treeLines(tree screen.Tree[message.Msg], styles *theme.Styles) []styledLine {
	lines := make([]styledLine, 0, 16)
	if len(tree.Form) > 0 {
		lines = append(lines, styledLine{text: globalFormHeading, style: styles.Title})
		for i, input := range tree.Form {
			lines = append(lines, m.inputLine(input, i == m.cursor, styles))
		}
		lines = append(lines, styledLine{})
	}
	lines = append(lines, styledLine{text: tree.Title, style: styles.Title})
	if tree.Heading != "" {
		lines = append(lines, styledLine{text: tree.Heading, style: styles.Text})
	}
	for _, line := range tree.Lines {
		lines = append(lines, styledLine{text: line, style: styles.Text})
	}
	if len(tree.Buttons) > 0 {
		lines = append(lines, styledLine{})
		for i, button := range tree.Buttons {
			lines = append(lines, buttonLine(button.Label, len(tree.Form)+i == m.cursor, styles))
		}
	}
	return lines
}

func (m *Model) inputLine(input screen.Input, selected bool, styles *theme.Styles) styledLine {
	label := input.Placeholder + ": "
	if selected {
		if ti, ok := m.inputs[input.Field]; ok {
			return styledLine{
				text: styles.SelectedButton.Render("▌") + " " + styles.Label.Render(label) + ti.View(),
				raw:  true,
			}
		}
	}
	value := input.Value
	if value == "" {
		value = "-"
	}
	return styledLine{
		text:          "  " + label + value,
		style:         styles.Input,
		prefixStyle:   styles.Label,
		highlightFrom: 2 + len([]rune(label)),
	}
}

func buttonLine(label string, selected bool, styles *theme.Styles) styledLine {
	if selected {
		return styledLine{
			text:          "▌" + "[ " + label + " ]",
			style:         styles.SelectedButton,
			prefixStyle:   styles.SelectedButton,
			highlightFrom: 1,
		}
	}
	return styledLine{text: " [ " + label + " ]", style: styles.Button}
}

func (m *Model) pickerLines(styles *theme.Styles) []styledLine {
	p := m.picker
	lines := []styledLine{
		{text: p.Title, style: styles.Title},
		{text: "filter: " + p.Query, style: styles.Label},
	}
	if len(p.Items) == 0 {
		msg := "(no windows)"
		if p.Query != "" {
			msg = fmt.Sprintf("No matches for %q", p.Query)
		}
		return append(lines, styledLine{text: msg, style: styles.Info})
	}
	rows := make([][]string, 0, len(p.Items))
	for _, item := range p.Items {
		rows = append(rows, []string{item.ID.String(), item.Label(), string(item.Theme)})
	}
	formatted := table.Format(rows, []table.Column{{Align: table.AlignRight}, {MaxWidth: pickerTitleCW}, {}})

	m.syncViewport()
	start, end := 0, len(formatted)
	if maxItems := m.maxVisibleItems(); maxItems > 0 && end > maxItems {
		start = p.Offset
		if start+maxItems > end {
			start = end - maxItems
		}
		end = start + maxItems
	}
	for idx := start; idx < end; idx++ {
		if idx == p.Cursor {
			lines = append(lines, styledLine{text: "▌ " + formatted[idx], style: styles.SelectedButton})
			continue
		}
		lines = append(lines, styledLine{text: "  " + formatted[idx], style: styles.Text})
	}
	return lines
}

// scalePadding maps a window's scale factor to horizontal frame padding.
func scalePadding(scale float64) int {
	if scale <= 0 || math.IsNaN(scale) {
		return 1
	}
	return int(math.Round(scale))
}

func (m *Model) frameInnerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - frameChrome - 2*scalePadding(m.dispatcher.Scale(m.focused))
	if w < 1 {
		return 1
	}
	return w
}

// bodyHeight is the number of rows available inside the frame.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := 1 + frameChrome + 1 // tab bar, borders, status line
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) maxVisibleItems() int {
	body := m.bodyHeight()
	if body <= 0 {
		return -1
	}
	remain := body - 2 // picker title and filter line
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
