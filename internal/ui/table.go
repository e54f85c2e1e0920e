package ui

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	cellMaxWidth = 50
	cellTail     = "..."
	columnGap    = "  "
)

var cellFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Table lays out cells in left-aligned columns. Cells are flattened to one
// line and cut to cellMaxWidth columns; ANSI styling does not count toward
// width.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable returns a table with the given column headings.
func NewTable(header ...string) *Table {
	return &Table{header: fitCells(header)}
}

// Row appends a row. Missing trailing cells render empty.
func (t *Table) Row(cells ...string) {
	t.rows = append(t.rows, fitCells(cells))
}

// String renders the header and rows, one line each.
func (t *Table) String() string {
	widths := columnWidths(t.header)
	for _, row := range t.rows {
		for i, w := range columnWidths(row) {
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}

	var out strings.Builder
	for _, line := range append([][]string{t.header}, t.rows...) {
		last := len(line) - 1
		for last > 0 && line[last] == "" {
			last--
		}
		for i := 0; i <= last; i++ {
			out.WriteString(line[i])
			if i < last {
				out.WriteString(strings.Repeat(" ", widths[i]-ansi.PrintableRuneWidth(line[i])))
				out.WriteString(columnGap)
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func fitCells(cells []string) []string {
	fitted := make([]string, len(cells))
	for i, cell := range cells {
		fitted[i] = fitCell(cell)
	}
	return fitted
}

func fitCell(cell string) string {
	cell = cellFlattener.Replace(cell)
	if ansi.PrintableRuneWidth(cell) <= cellMaxWidth {
		return cell
	}
	return truncate.StringWithTail(cell, cellMaxWidth, cellTail)
}

func columnWidths(cells []string) []int {
	widths := make([]int, len(cells))
	for i, cell := range cells {
		widths[i] = ansi.PrintableRuneWidth(cell)
	}
	return widths
}
