// Package table renders rows of text cells as a fixed-width, space separated
// block with a dashed rule under the header and above the footer.
//
// The package knows nothing about the meaning of the cells. The number of
// columns is taken from the alignment list: missing cells render empty and
// surplus cells are dropped, so Render never fails.
package table

import (
	"strings"
	"unicode/utf8"

	"github.com/angelmondragon/cart-receipt/pkg/enums"
)

const (
	cellSeparator = " "
	ruleChar      = "-"
)

// Render lays out header, body and footer using one alignment per column.
//
// Every cell is followed by a single separator space, including the last
// cell of a row. The dashed rule is one character shorter than a row.
// The footer line carries no trailing newline.
func Render(header []string, body [][]string, footer []string, align []enums.Alignment) string {
	widths := ColumnWidths(len(align), append([][]string{header, footer}, body...)...)

	ruleLength := len(widths) - 1
	for _, w := range widths {
		ruleLength += w
	}

	var sb strings.Builder
	writeRow(&sb, header, align, widths)
	sb.WriteString("\n")
	writeRule(&sb, ruleLength)

	for _, row := range body {
		writeRow(&sb, row, align, widths)
		sb.WriteString("\n")
	}

	if len(body) > 0 {
		writeRule(&sb, ruleLength)
	}
	writeRow(&sb, footer, align, widths)

	return sb.String()
}

// ColumnWidths returns, for each of the first columns, the longest cell
// length found in that column across rows.
func ColumnWidths(columns int, rows ...[]string) []int {
	if columns < 0 {
		columns = 0
	}
	widths := make([]int, columns)
	for _, row := range rows {
		for i := 0; i < columns && i < len(row); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// FormatCell truncates value to width, pads it according to align and
// appends the separator space.
func FormatCell(value string, align enums.Alignment, width int) string {
	var sb strings.Builder
	writeCell(&sb, value, align, width)
	return sb.String()
}

func writeCell(sb *strings.Builder, value string, align enums.Alignment, width int) {
	if width < 0 {
		width = 0
	}
	length := utf8.RuneCountInString(value)
	if length > width {
		value = string([]rune(value)[:width])
		length = width
	}

	free := width - length
	before := 0
	switch align {
	case enums.AlignmentRight:
		before = free
	case enums.AlignmentCenter:
		before = free / 2
	}

	sb.WriteString(strings.Repeat(" ", before))
	sb.WriteString(value)
	sb.WriteString(strings.Repeat(" ", free-before))
	sb.WriteString(cellSeparator)
}

func writeRow(sb *strings.Builder, row []string, align []enums.Alignment, widths []int) {
	for i, width := range widths {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		writeCell(sb, value, align[i], width)
	}
}

func writeRule(sb *strings.Builder, length int) {
	if length > 0 {
		sb.WriteString(strings.Repeat(ruleChar, length))
	}
	sb.WriteString("\n")
}
