package tabled

import (
	"github.com/scirin/tabled/internal/debug"
	"github.com/scirin/tabled/internal/grid"
	"github.com/scirin/tabled/internal/width"
)

// TruncateOption cuts cell text down to a width budget instead of wrapping
// it, optionally marking the cut with a suffix such as "...".
//
// Applied with Modify it cuts each targeted cell to the measured width.
// Applied with With it mirrors WrapOption's table mode: column widths are
// shrunk by the priority policy and every cell that no longer fits its
// column is cut.
type TruncateOption struct {
	m         Measurement
	suffix    string
	newPeaker func() Peaker
}

// Truncate creates a truncating option with a fixed width.
func Truncate(width int) *TruncateOption {
	return TruncateWith(Fixed(width))
}

// TruncateWith creates a truncating option whose width is computed by m at
// application time.
func TruncateWith(m Measurement) *TruncateOption {
	return &TruncateOption{m: m, newPeaker: PriorityNone}
}

// Suffix marks cut text with s. The suffix's width is reserved out of the
// budget; a suffix wider than the whole budget is itself cut and replaces
// the content.
func (o *TruncateOption) Suffix(s string) *TruncateOption {
	o.suffix = s
	return o
}

// Priority sets the column-shrink policy for table mode. newPeaker is called
// once per application so every run gets fresh policy state. The default is
// PriorityNone.
func (o *TruncateOption) Priority(newPeaker func() Peaker) *TruncateOption {
	o.newPeaker = newPeaker
	return o
}

func (o *TruncateOption) applyCell(t *Table, pos grid.Position) {
	budget := o.m.measure(t.rec, t.cfg)
	if truncateCellAt(t, pos, budget, o.suffix, nil) {
		t.invalidateWidths()
		t.invalidateHeights()
	}
}

func (o *TruncateOption) applyTable(t *Table) {
	target := o.m.measure(t.rec, t.cfg)
	shrinkTable(t, target, o.newPeaker(), "truncate", false,
		func(pos grid.Position, budget int, ses *debug.Session) bool {
			return truncateCellAt(t, pos, budget, o.suffix, ses)
		})
}

// truncateCellAt cuts one cell to a content budget, expanding tabs first.
// The cut runs over the cell's whole text, so a multi-line cell keeps its
// leading lines and loses its tail. Cells already narrow enough are left
// alone. Reports whether the cell changed.
func truncateCellAt(t *Table, pos grid.Position, budget int, suffix string, ses *debug.Session) bool {
	text := width.ReplaceTab(t.rec.Text(pos), t.cfg.TabWidth)
	oldWidth := width.StringWidthMultiline(text)
	if oldWidth <= budget {
		return false
	}
	var cut string
	if sw := width.StringWidth(suffix); budget > sw {
		cut = width.CutStr(text, budget-sw) + suffix
	} else {
		cut = width.CutStr(suffix, budget)
	}
	if debug.Enabled() {
		assertLineWidths(cut, budget, pos)
	}
	t.rec.SetText(pos, cut)
	if ses != nil {
		ses.Emit("truncate", "Cell", debug.CellData{
			Row:      pos.Row,
			Col:      pos.Col,
			Width:    budget,
			OldWidth: oldWidth,
			Lines:    t.rec.CountLines(pos),
		})
	}
	return true
}
