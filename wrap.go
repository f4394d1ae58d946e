package tabled

import (
	"fmt"
	"strings"

	"github.com/scirin/tabled/internal/debug"
	"github.com/scirin/tabled/internal/grid"
	"github.com/scirin/tabled/internal/width"
)

// WrapOption re-flows cell text onto multiple lines so it fits a width
// budget.
//
// Applied with Modify it is a cell option: each targeted cell is wrapped to
// the measured width. Applied with With it is a table option: the measured
// width is a budget for the whole rendered table, column widths are shrunk
// by the priority policy and every cell that no longer fits its column is
// re-wrapped.
type WrapOption struct {
	m         Measurement
	keepWords bool
	newPeaker func() Peaker
}

// Wrap creates a wrapping option with a fixed width.
func Wrap(width int) *WrapOption {
	return WrapWith(Fixed(width))
}

// WrapWith creates a wrapping option whose width is computed by m at
// application time.
func WrapWith(m Measurement) *WrapOption {
	return &WrapOption{m: m, newPeaker: PriorityNone}
}

// KeepWords prefers breaking lines at spaces over mid-word cuts. Words wider
// than the budget are still cut.
func (o *WrapOption) KeepWords() *WrapOption {
	o.keepWords = true
	return o
}

// Priority sets the column-shrink policy for table mode. newPeaker is called
// once per application so every run gets fresh policy state. The default is
// PriorityNone.
func (o *WrapOption) Priority(newPeaker func() Peaker) *WrapOption {
	o.newPeaker = newPeaker
	return o
}

func (o *WrapOption) applyCell(t *Table, pos grid.Position) {
	budget := o.m.measure(t.rec, t.cfg)
	if wrapCellAt(t, pos, budget, o.keepWords, nil) {
		t.invalidateWidths()
		t.invalidateHeights()
	}
}

func (o *WrapOption) applyTable(t *Table) {
	target := o.m.measure(t.rec, t.cfg)
	shrinkTable(t, target, o.newPeaker(), "wrap", o.keepWords,
		func(pos grid.Position, budget int, ses *debug.Session) bool {
			return wrapCellAt(t, pos, budget, o.keepWords, ses)
		})
}

// wrapCellAt rewraps one cell to a content budget, expanding tabs first.
// Cells already narrow enough are left alone. Reports whether the cell
// changed.
func wrapCellAt(t *Table, pos grid.Position, budget int, keepWords bool, ses *debug.Session) bool {
	text := width.ReplaceTab(t.rec.Text(pos), t.cfg.TabWidth)
	oldWidth := width.StringWidthMultiline(text)
	if oldWidth <= budget {
		return false
	}
	wrapped := width.WrapText(text, budget, keepWords)
	if debug.Enabled() {
		assertLineWidths(wrapped, budget, pos)
	}
	t.rec.SetText(pos, wrapped)
	if ses != nil {
		ses.Emit("wrap", "Cell", debug.CellData{
			Row:      pos.Row,
			Col:      pos.Col,
			Width:    budget,
			OldWidth: oldWidth,
			Lines:    t.rec.CountLines(pos),
		})
	}
	return true
}

// assertLineWidths panics when a produced line exceeds its budget. Active
// only while debug tracing is enabled.
func assertLineWidths(text string, budget int, pos grid.Position) {
	for _, line := range strings.Split(text, "\n") {
		if got := width.StringWidth(line); got > budget {
			panic(fmt.Sprintf("tabled: line %q at row %d col %d has width %d over budget %d",
				line, pos.Row, pos.Col, got, budget))
		}
	}
}
