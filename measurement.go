package tabled

import "github.com/scirin/tabled/internal/grid"

// Measurement computes a width target from the current table contents.
// Fixed and Percent are the provided implementations.
type Measurement interface {
	measure(rec *grid.Records, cfg *grid.Config) int
}

// Fixed is an absolute width in terminal cells.
type Fixed int

func (f Fixed) measure(*grid.Records, *grid.Config) int { return int(f) }

// Percent is a width relative to the table's current rendered width:
// Percent(50) halves it, Percent(150) grows the target past it.
type Percent int

func (p Percent) measure(rec *grid.Records, cfg *grid.Config) int {
	total := grid.TotalWidth(grid.ColumnWidths(rec, cfg))
	return total * int(p) / 100
}
