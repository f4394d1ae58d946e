// Package tabled renders text tables with fixed-width ASCII borders and
// reshapes them to fit a total width budget.
//
// A Table is built from rows of strings and rendered with String. Two kinds
// of options mutate it: table options applied with With treat their width as
// a budget for the whole rendered table, shrinking column widths through a
// priority policy and re-flowing the text of every cell that no longer fits;
// cell options applied with Modify rework individual cells to a direct
// content width.
//
// Cell text may contain multi-byte runes, wide glyphs, ANSI SGR styling and
// OSC 8 hyperlinks; widths are measured in terminal cells and styling
// survives re-flow.
//
// Example:
//
//	t := tabled.New([][]string{
//	    {"id", "description"},
//	    {"1", "a rather long description that will not fit"},
//	})
//	t.With(tabled.Wrap(30).KeepWords())
//	fmt.Println(t.String())
package tabled

import (
	"io"
	"os"

	"github.com/scirin/tabled/internal/debug"
	"github.com/scirin/tabled/internal/grid"
)

// Table is a mutable table of text cells. The zero value is not usable;
// construct with New. A Table is not safe for concurrent use.
type Table struct {
	rec  *grid.Records
	cfg  *grid.Config
	sink debug.Sink

	// Cached dimensions, nil when stale. Options invalidate them after
	// mutating cell text and store widths they have allocated themselves.
	widths  []int
	heights []int
}

// New creates a table from rows of cell text. Short rows are padded with
// empty cells to the widest row.
func New(rows [][]string) *Table {
	return &Table{
		rec: grid.NewRecords(rows),
		cfg: grid.DefaultConfig(),
	}
}

// With applies table options in order.
func (t *Table) With(opts ...TableOption) *Table {
	for _, opt := range opts {
		opt.applyTable(t)
	}
	return t
}

// Modify applies cell options to every cell targeted by target.
func (t *Table) Modify(target Entity, opts ...CellOption) *Table {
	rows, cols := t.rec.Shape()
	for _, opt := range opts {
		target.each(rows, cols, func(pos grid.Position) {
			opt.applyCell(t, pos)
		})
	}
	return t
}

// TabWidth sets how many spaces replace a tab when cell text is reworked.
// The default is 4.
func (t *Table) TabWidth(n int) *Table {
	t.cfg.TabWidth = n
	return t
}

// Padding sets the spaces added on each side of cell content. The default
// is one on each side.
func (t *Table) Padding(left, right int) *Table {
	t.cfg.PaddingLeft = left
	t.cfg.PaddingRight = right
	t.invalidateWidths()
	return t
}

// DebugTo routes this table's debug tracing to w, as JSON Lines or in the
// pretty format. Events are only produced while tracing is enabled globally
// (TABLED_DEBUG=1 with the CLI, or the --debug flag).
func (t *Table) DebugTo(w io.Writer, pretty bool) *Table {
	if pretty {
		t.sink = debug.NewPrettySink(w)
	} else {
		t.sink = debug.NewJSONSink(w)
	}
	return t
}

// Shape returns the table's row and column counts.
func (t *Table) Shape() (rows, cols int) {
	return t.rec.Shape()
}

// TotalWidth returns the rendered width of the table in terminal cells.
func (t *Table) TotalWidth() int {
	return grid.TotalWidth(t.columnWidths())
}

// TotalHeight returns the rendered height of the table in lines.
func (t *Table) TotalHeight() int {
	heights := t.rowHeights()
	if len(heights) == 0 {
		return 0
	}
	total := len(heights) + 1 // separator lines
	for _, h := range heights {
		total += h
	}
	return total
}

// String renders the table with ASCII borders.
func (t *Table) String() string {
	return grid.Render(t.rec, t.cfg, t.columnWidths())
}

// TableOption reworks the table as a whole.
type TableOption interface {
	applyTable(t *Table)
}

// CellOption reworks a single cell.
type CellOption interface {
	applyCell(t *Table, pos grid.Position)
}

// columnWidths returns the cached column widths, measuring the current
// contents when the cache is stale.
func (t *Table) columnWidths() []int {
	if t.widths == nil {
		t.widths = grid.ColumnWidths(t.rec, t.cfg)
	}
	return t.widths
}

// rowHeights returns the cached per-row line counts, measuring the current
// contents when the cache is stale.
func (t *Table) rowHeights() []int {
	if t.heights == nil {
		rows, cols := t.rec.Shape()
		heights := make([]int, rows)
		for r := 0; r < rows; r++ {
			h := 1
			for c := 0; c < cols; c++ {
				if n := t.rec.CountLines(grid.Position{Row: r, Col: c}); n > h {
					h = n
				}
			}
			heights[r] = h
		}
		t.heights = heights
	}
	return t.heights
}

func (t *Table) invalidateWidths() { t.widths = nil }

func (t *Table) invalidateHeights() { t.heights = nil }

func (t *Table) storeWidths(widths []int) { t.widths = widths }

// session opens a per-operation debug session, or nil when tracing is off.
// The table's sink is used when one was configured, stderr JSON otherwise.
func (t *Table) session() *debug.Session {
	if !debug.Enabled() {
		return nil
	}
	sink := t.sink
	if sink == nil {
		sink = debug.NewJSONSink(os.Stderr)
	}
	return debug.NewSession(sink)
}
