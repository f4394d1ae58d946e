package tabled

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/scirin/tabled/internal/debug"
	"github.com/scirin/tabled/internal/grid"
)

func sampleRows() [][]string {
	return [][]string{
		{"id", "description"},
		{"1", "a long description here"},
	}
}

func cellPos(row, col int) grid.Position {
	return grid.Position{Row: row, Col: col}
}

func TestNewShape(t *testing.T) {
	tb := New(sampleRows())
	rows, cols := tb.Shape()
	if rows != 2 || cols != 2 {
		t.Errorf("Shape = (%d, %d), want (2, 2)", rows, cols)
	}
}

func TestNewPadsShortRows(t *testing.T) {
	tb := New([][]string{{"a", "b", "c"}, {"d"}})
	rows, cols := tb.Shape()
	if rows != 2 || cols != 3 {
		t.Errorf("Shape = (%d, %d), want (2, 3)", rows, cols)
	}
}

func TestStringNatural(t *testing.T) {
	got := New(sampleRows()).String()
	want := strings.Join([]string{
		"+----+-------------------------+",
		"| id | description             |",
		"+----+-------------------------+",
		"| 1  | a long description here |",
		"+----+-------------------------+",
	}, "\n")
	if got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestStringEmpty(t *testing.T) {
	if got := New(nil).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestTotalWidthAndHeight(t *testing.T) {
	tb := New(sampleRows())
	if got := tb.TotalWidth(); got != 32 {
		t.Errorf("TotalWidth = %d, want 32", got)
	}
	if got := tb.TotalHeight(); got != 5 {
		t.Errorf("TotalHeight = %d, want 5", got)
	}

	tb.With(Wrap(25).Priority(PriorityMax))
	if got := tb.TotalWidth(); got != 25 {
		t.Errorf("TotalWidth after wrap = %d, want 25", got)
	}
	if got := tb.TotalHeight(); got != 6 {
		t.Errorf("TotalHeight after wrap = %d, want 6", got)
	}
}

func TestTotalDimensionsEmpty(t *testing.T) {
	tb := New(nil)
	if got := tb.TotalWidth(); got != 0 {
		t.Errorf("TotalWidth = %d, want 0", got)
	}
	if got := tb.TotalHeight(); got != 0 {
		t.Errorf("TotalHeight = %d, want 0", got)
	}
}

func TestTableModeStoresWidths(t *testing.T) {
	tb := New(sampleRows())
	tb.With(Wrap(25).Priority(PriorityMax))

	if tb.widths == nil {
		t.Fatal("table mode should store the allocated widths")
	}
	want := []int{4, 18}
	for i := range want {
		if tb.widths[i] != want[i] {
			t.Fatalf("stored widths = %v, want %v", tb.widths, want)
		}
	}
}

func TestCellModeInvalidatesWidths(t *testing.T) {
	tb := New(sampleRows())
	tb.With(Wrap(25).Priority(PriorityMax))
	tb.Modify(CellAt(1, 1), Wrap(5))

	if tb.widths != nil {
		t.Fatal("cell rewrap should invalidate the width cache")
	}
	// Column 1 reverts to its natural width, now set by the header.
	if got := tb.TotalWidth(); got != 20 {
		t.Errorf("TotalWidth = %d, want 20", got)
	}
}

func TestWithNoopWhenTableFits(t *testing.T) {
	before := New(sampleRows()).String()
	tb := New(sampleRows())
	tb.With(Wrap(100))
	if got := tb.String(); got != before {
		t.Errorf("wrap with a loose budget changed the render:\n%s\nwant:\n%s", got, before)
	}
}

func TestWithOnEmptyTable(t *testing.T) {
	tb := New(nil)
	tb.With(Wrap(5))
	if got := tb.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestDebugTrace(t *testing.T) {
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	var buf bytes.Buffer
	tb := New(sampleRows()).DebugTo(&buf, false)
	tb.With(Wrap(25).Priority(PriorityMax))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 5 {
		t.Fatalf("expected a full event stream, got %d lines", len(lines))
	}

	phases := map[string]int{}
	for _, line := range lines {
		var evt debug.Event
		if err := json.Unmarshal([]byte(line), &evt); err != nil {
			t.Fatalf("bad event line %q: %v", line, err)
		}
		phases[evt.Phase]++
	}

	for _, phase := range []string{"session", "table", "allocate", "select", "wrap"} {
		if phases[phase] == 0 {
			t.Errorf("no events for phase %q (got %v)", phase, phases)
		}
	}
	// Seven units of width are shed, one pick each.
	if phases["allocate"] != 8 {
		t.Errorf("allocate events = %d, want 8 (7 picks and a summary)", phases["allocate"])
	}
}

func TestDebugDisabledEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	tb := New(sampleRows()).DebugTo(&buf, false)
	tb.With(Wrap(25).Priority(PriorityMax))

	if buf.Len() > 0 {
		t.Errorf("events emitted while debug disabled: %q", buf.String())
	}
}
