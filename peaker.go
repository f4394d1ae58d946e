package tabled

// Peaker selects which column gives up the next unit of width while the
// table is being shrunk to a budget. Peak is called once per unit; mins and
// widths always have the same length and widths reflects earlier decrements.
//
// A column is eligible only while its width is above its minimum. Peak
// reports ok=false when no column is eligible, which stops the shrink loop
// short of the target.
type Peaker interface {
	Peak(mins, widths []int) (col int, ok bool)
}

// PriorityNone spreads decrements across columns: a cyclic scan that resumes
// after the last picked column.
func PriorityNone() Peaker { return &priorityNone{} }

// PriorityMax shrinks the widest column first, preferring the lowest index
// on ties.
func PriorityMax() Peaker { return priorityMax{} }

// PriorityMin shrinks the narrowest still-eligible column first, preferring
// the lowest index on ties.
func PriorityMin() Peaker { return priorityMin{} }

type priorityNone struct {
	next int
}

func (p *priorityNone) Peak(mins, widths []int) (int, bool) {
	n := len(widths)
	if n == 0 {
		return 0, false
	}
	for k := 0; k < n; k++ {
		col := (p.next + k) % n
		if widths[col] > mins[col] {
			p.next = (col + 1) % n
			return col, true
		}
	}
	return 0, false
}

type priorityMax struct{}

func (priorityMax) Peak(mins, widths []int) (int, bool) {
	col, best := 0, 0
	found := false
	for i, w := range widths {
		if w <= mins[i] {
			continue
		}
		if !found || w > best {
			col, best = i, w
			found = true
		}
	}
	return col, found
}

type priorityMin struct{}

func (priorityMin) Peak(mins, widths []int) (int, bool) {
	col, best := 0, 0
	found := false
	for i, w := range widths {
		if w <= mins[i] {
			continue
		}
		if !found || w < best {
			col, best = i, w
			found = true
		}
	}
	return col, found
}

// priorityName labels a policy for debug traces.
func priorityName(p Peaker) string {
	switch p.(type) {
	case *priorityNone:
		return "none"
	case priorityMax:
		return "max"
	case priorityMin:
		return "min"
	default:
		return "custom"
	}
}
