package tabled

import "github.com/scirin/tabled/internal/grid"

// Entity names the table region a cell option applies to.
type Entity struct {
	kind entityKind
	row  int
	col  int
}

type entityKind int

const (
	entityAll entityKind = iota
	entityRow
	entityCol
	entityCell
)

// All targets every cell.
func All() Entity { return Entity{kind: entityAll} }

// Rows targets every cell in row i.
func Rows(i int) Entity { return Entity{kind: entityRow, row: i} }

// Cols targets every cell in column i.
func Cols(i int) Entity { return Entity{kind: entityCol, col: i} }

// CellAt targets the single cell at (row, col).
func CellAt(row, col int) Entity { return Entity{kind: entityCell, row: row, col: col} }

// each calls fn for every targeted cell of a rows-by-cols table, in row-major
// order. Targets outside the table yield no cells.
func (e Entity) each(rows, cols int, fn func(grid.Position)) {
	switch e.kind {
	case entityAll:
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				fn(grid.Position{Row: r, Col: c})
			}
		}
	case entityRow:
		if e.row < 0 || e.row >= rows {
			return
		}
		for c := 0; c < cols; c++ {
			fn(grid.Position{Row: e.row, Col: c})
		}
	case entityCol:
		if e.col < 0 || e.col >= cols {
			return
		}
		for r := 0; r < rows; r++ {
			fn(grid.Position{Row: r, Col: e.col})
		}
	case entityCell:
		if e.row < 0 || e.row >= rows || e.col < 0 || e.col >= cols {
			return
		}
		fn(grid.Position{Row: e.row, Col: e.col})
	}
}
