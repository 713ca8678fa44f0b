// Package table renders formatted tables in the terminal. Content is
// measured in display cells, so rows holding multibyte spinner glyphs line
// up with their headers.
package table

import (
	"fmt"
	"io"
	"strings"

	"swirl/internal/tape"
)

// Column represents a table column with its configuration.
type Column struct {
	Header   string
	MinWidth int
	Align    Alignment
}

// Alignment specifies how content is aligned within a column.
type Alignment int

const (
	// AlignLeft aligns content to the left.
	AlignLeft Alignment = iota
	// AlignRight aligns content to the right.
	AlignRight
)

// Table represents a table with columns and rows.
type Table struct {
	columns []Column
	rows    [][]string
	widths  []int
}

// New creates a new table with the specified columns.
func New(columns ...Column) *Table {
	t := &Table{
		columns: columns,
		widths:  make([]int, len(columns)),
	}

	for i, col := range columns {
		t.widths[i] = max(tape.Width(col.Header), col.MinWidth)
	}

	return t
}

// AddRow adds a row of values to the table. Missing values render empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range t.columns {
		if i < len(values) {
			row[i] = values[i]
		}
	}

	for i, val := range row {
		t.widths[i] = max(t.widths[i], tape.Width(val))
	}

	t.rows = append(t.rows, row)
}

// formatCell pads a cell value to the column width and alignment.
func formatCell(value string, width int, align Alignment) string {
	if align == AlignRight {
		pad := width - tape.Width(value)
		if pad > 0 {
			return strings.Repeat(" ", pad) + value
		}
		return tape.Fit(value, width)
	}
	return tape.Fit(value, width)
}

// RenderHeader returns the formatted header row.
func (t *Table) RenderHeader() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = formatCell(col.Header, t.widths[i], col.Align)
	}
	return "\033[1m" + strings.Join(parts, " │ ") + "\033[0m"
}

// RenderSeparator returns the separator line between header and rows.
func (t *Table) RenderSeparator() string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w)
	}
	return strings.Join(parts, "─┼─")
}

// RenderRow returns the formatted row at the specified index.
func (t *Table) RenderRow(index int) string {
	if index < 0 || index >= len(t.rows) {
		return ""
	}

	parts := make([]string, len(t.columns))
	for i := range t.columns {
		parts[i] = formatCell(t.rows[index][i], t.widths[i], t.columns[i].Align)
	}
	return strings.Join(parts, " │ ")
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Render writes the complete table to w.
func (t *Table) Render(w io.Writer) {
	fmt.Fprintln(w, t.RenderHeader())
	fmt.Fprintln(w, t.RenderSeparator())
	for i := range t.rows {
		fmt.Fprintln(w, t.RenderRow(i))
	}
}
