// Package grid stores table cell text and renders it as a bordered ASCII
// grid. Every cell keeps cached measurements; the caches are recomputed
// whenever a cell's text changes.
package grid

// Position addresses a single cell by zero-based row and column.
type Position struct {
	Row int
	Col int
}

// Config carries the layout settings every width computation shares.
type Config struct {
	TabWidth     int
	PaddingLeft  int
	PaddingRight int
}

// DefaultConfig returns the standard layout: four-space tabs and one cell
// of padding on either side of cell content.
func DefaultConfig() *Config {
	return &Config{
		TabWidth:     4,
		PaddingLeft:  1,
		PaddingRight: 1,
	}
}
