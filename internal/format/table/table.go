// Package table lays out picker rows in aligned columns.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes how one column is laid out. MaxWidth of zero means the
// column grows to its widest cell.
type Column struct {
	Align    Alignment
	MaxWidth int
}

const gap = "  "

// Format returns the rows padded according to the widest entry in each
// column, truncating cells wider than the column's MaxWidth. Rows shorter than
// the first row are padded with empty cells.
func Format(rows [][]string, columns []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, colCount)
		for c := 0; c < colCount; c++ {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			if c < len(columns) && columns[c].MaxWidth > 0 && lipgloss.Width(cell) > columns[c].MaxWidth {
				cell = truncate.StringWithTail(cell, uint(columns[c].MaxWidth), "…")
			}
			cells[r][c] = cell
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(gap)
			}
			pad := widths[c] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(columns) && columns[c].Align == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
