package grid

import (
	"strings"

	"github.com/scirin/tabled/internal/width"
)

// cell keeps raw text together with its derived line split and rendered
// width. The derived fields are rebuilt whenever the text changes.
type cell struct {
	text  string
	lines []string
	width int
}

func newCell(text string) cell {
	return cell{
		text:  text,
		lines: strings.Split(text, "\n"),
		width: width.StringWidthMultiline(text),
	}
}

// Records is a rectangular store of cell text. Rows shorter than the
// widest input row are padded with empty cells.
type Records struct {
	cells [][]cell
	cols  int
}

// NewRecords builds a store from row-major input.
func NewRecords(rows [][]string) *Records {
	var cols int
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	cells := make([][]cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]cell, cols)
		for j := range cells[i] {
			if j < len(row) {
				cells[i][j] = newCell(row[j])
			} else {
				cells[i][j] = newCell("")
			}
		}
	}
	return &Records{cells: cells, cols: cols}
}

// Shape returns the store's row and column counts.
func (r *Records) Shape() (rows, cols int) {
	return len(r.cells), r.cols
}

// Text returns the cell's raw text.
func (r *Records) Text(pos Position) string {
	return r.cells[pos.Row][pos.Col].text
}

// Width returns the cached rendered width of the cell's widest line.
func (r *Records) Width(pos Position) int {
	return r.cells[pos.Row][pos.Col].width
}

// CountLines returns how many text lines the cell holds.
func (r *Records) CountLines(pos Position) int {
	return len(r.cells[pos.Row][pos.Col].lines)
}

// Line returns the cell's i'th text line, or "" past the last line.
func (r *Records) Line(pos Position, i int) string {
	lines := r.cells[pos.Row][pos.Col].lines
	if i >= len(lines) {
		return ""
	}
	return lines[i]
}

// SetText replaces the cell's content, rebuilding its cached line split
// and width.
func (r *Records) SetText(pos Position, text string) {
	r.cells[pos.Row][pos.Col] = newCell(text)
}
