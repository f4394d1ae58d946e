package tabled

import (
	"slices"
	"time"

	"github.com/scirin/tabled/internal/debug"
	"github.com/scirin/tabled/internal/grid"
)

// shrinkTable is the table-mode flow shared by Wrap and Truncate: measure,
// allocate column widths, collect the cells that no longer fit, rework each
// through fn. A target at or above the current rendered width is a no-op.
// The allocated widths are stored on the table afterwards.
func shrinkTable(t *Table, target int, p Peaker, mode string, keepWords bool, fn func(pos grid.Position, budget int, ses *debug.Session) bool) {
	widths := grid.ColumnWidths(t.rec, t.cfg)
	total := grid.TotalWidth(widths)
	if total <= target {
		return
	}

	ses := t.session()
	defer ses.Close()

	var start time.Time
	if ses != nil {
		start = time.Now()
		rows, cols := t.rec.Shape()
		ses.Emit("table", "Start", debug.TableStartData{
			Rows:       rows,
			Cols:       cols,
			TotalWidth: total,
			Target:     target,
			Mode:       mode,
			KeepWords:  keepWords,
			Priority:   priorityName(p),
		})
	}

	mins := grid.MinWidths(t.rec, t.cfg)
	var before []int
	if ses != nil {
		before = slices.Clone(widths)
	}
	decreaseWidths(widths, mins, total, target, p, ses)
	if ses != nil {
		ses.Emit("allocate", "Done", debug.AllocateData{
			Before: before,
			After:  slices.Clone(widths),
			Mins:   mins,
			Target: target,
			Steps:  total - grid.TotalWidth(widths),
		})
	}

	reworked := 0
	for _, item := range decreaseCellList(t.rec, t.cfg, widths) {
		if ses != nil {
			ses.Emit("select", "Item", debug.SelectData{
				Row:   item.pos.Row,
				Col:   item.pos.Col,
				Width: item.width,
			})
		}
		if fn(item.pos, item.width, ses) {
			reworked++
		}
	}

	if ses != nil {
		ses.Emit("table", "End", debug.TableEndData{
			Widths:        slices.Clone(widths),
			ReworkedCells: reworked,
			ElapsedMs:     time.Since(start).Milliseconds(),
		})
	}

	t.invalidateHeights()
	t.storeWidths(widths)
}

// decreaseWidths shrinks widths in place, one unit at a time, until total
// reaches target or the policy runs out of eligible columns. total is the
// rendered width that widths currently produce, so borders stay accounted
// for. Widths never drop below their per-column minimum.
//
// When the minimums alone exceed the target the loop stops early and the
// caller renders wider than asked.
func decreaseWidths(widths, mins []int, total, target int, p Peaker, ses *debug.Session) {
	for total > target {
		col, ok := p.Peak(mins, widths)
		if !ok {
			break
		}
		widths[col]--
		total--
		if ses != nil {
			ses.Emit("allocate", "Pick", debug.PickData{Col: col, Width: widths[col]})
		}
	}
}

// cellWidth is one shrink work item: a cell whose text must be reworked to a
// content budget.
type cellWidth struct {
	pos   grid.Position
	width int
}

// decreaseCellList collects every cell whose rendered width exceeds its
// column's content budget. The budget is the allocated column width minus
// padding, clamped at zero. Cells are emitted column-major.
func decreaseCellList(rec *grid.Records, cfg *grid.Config, widths []int) []cellWidth {
	rows, cols := rec.Shape()
	var list []cellWidth
	for col := 0; col < cols; col++ {
		budget := widths[col] - cfg.PaddingLeft - cfg.PaddingRight
		if budget < 0 {
			budget = 0
		}
		for row := 0; row < rows; row++ {
			pos := grid.Position{Row: row, Col: col}
			if rec.Width(pos) > budget {
				list = append(list, cellWidth{pos: pos, width: budget})
			}
		}
	}
	return list
}
