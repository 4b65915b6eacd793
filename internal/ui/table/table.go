package table

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a result set the way the shop's reports have always looked:
// a header line of column names followed by one line per row, every cell
// followed by a tab. Nothing at all is written for an empty result.
func Render(w io.Writer, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder

	// Header
	writeLine(&sb, columns, len(columns))

	// Rows
	for _, row := range rows {
		writeLine(&sb, row, len(columns))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeLine pads short rows with empty cells so every line has width cells.
func writeLine(sb *strings.Builder, cells []string, width int) {
	if width < len(cells) {
		width = len(cells)
	}
	for i := 0; i < width; i++ {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(cell)
		sb.WriteString("\t")
	}
	sb.WriteString("\n")
}

// Count prints the trailing "Total row(s): N" summary used after every report.
func Count(w io.Writer, n int) {
	fmt.Fprintf(w, "Total row(s): %d\n", n)
}
