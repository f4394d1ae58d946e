package grid

// ColumnWidths returns each column's natural rendered width: the widest
// cell content in the column plus horizontal padding.
func ColumnWidths(rec *Records, cfg *Config) []int {
	rows, cols := rec.Shape()
	pad := cfg.PaddingLeft + cfg.PaddingRight

	widths := make([]int, cols)
	for col := 0; col < cols; col++ {
		var w int
		for row := 0; row < rows; row++ {
			if cw := rec.Width(Position{Row: row, Col: col}); cw > w {
				w = cw
			}
		}
		widths[col] = w + pad
	}
	return widths
}

// MinWidths returns the narrowest width each column can shrink to, the
// width of a cell with no content: padding alone.
func MinWidths(rec *Records, cfg *Config) []int {
	_, cols := rec.Shape()
	pad := cfg.PaddingLeft + cfg.PaddingRight

	widths := make([]int, cols)
	for i := range widths {
		widths[i] = pad
	}
	return widths
}

// TotalWidth returns the full rendered table width for the given column
// widths: the columns plus one vertical border per column and the closing
// border.
func TotalWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	total := len(widths) + 1
	for _, w := range widths {
		total += w
	}
	return total
}
