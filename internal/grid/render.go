package grid

import (
	"strings"

	"github.com/scirin/tabled/internal/width"
)

// Render draws the records as a bordered ASCII grid using the given column
// widths. Cell content is left aligned and space-filled to the column's
// content area; a multiline cell stretches its row. Widths must include
// padding, as ColumnWidths produces them.
func Render(rec *Records, cfg *Config, widths []int) string {
	rows, cols := rec.Shape()
	if rows == 0 || cols == 0 {
		return ""
	}

	b := acquireBuilder()
	defer releaseBuilder(b)

	sep := separator(widths)
	b.WriteString(sep)

	for row := 0; row < rows; row++ {
		height := 1
		for col := 0; col < cols; col++ {
			if n := rec.CountLines(Position{Row: row, Col: col}); n > height {
				height = n
			}
		}

		for i := 0; i < height; i++ {
			b.WriteByte('\n')
			b.WriteByte('|')
			for col := 0; col < cols; col++ {
				writeCellLine(b, rec.Line(Position{Row: row, Col: col}, i), widths[col], cfg)
				b.WriteByte('|')
			}
		}

		b.WriteByte('\n')
		b.WriteString(sep)
	}

	return b.String()
}

// writeCellLine writes one text line of a cell padded to the column width.
func writeCellLine(b *strings.Builder, line string, colWidth int, cfg *Config) {
	content := colWidth - cfg.PaddingLeft - cfg.PaddingRight
	if content < 0 {
		content = 0
	}

	writeSpaces(b, cfg.PaddingLeft)
	b.WriteString(line)
	writeSpaces(b, content-width.StringWidth(line))
	writeSpaces(b, cfg.PaddingRight)
}

func separator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		for i := 0; i < w; i++ {
			b.WriteByte('-')
		}
		b.WriteByte('+')
	}
	return b.String()
}

func writeSpaces(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(' ')
	}
}
