package width

import (
	"strings"
	"unicode/utf8"

	"github.com/scirin/tabled/internal/ansi"
)

// CutStr truncates s to at most width rendered cells. Escape sequences are
// kept: styles open at the cut point are closed there, and text beyond the
// cut is discarded together with its styling. A wide rune straddling the
// cut is dropped and the cells it would have started are filled with
// replacement marks, appended after any closing escapes. Newlines measure
// zero wide, so a multiline string is cut by its cumulative text width.
func CutStr(s string, width int) string {
	if strings.IndexByte(s, esc) < 0 {
		length, unknowns, _ := splitAtWidth(s, width)
		if unknowns == 0 {
			return s[:length]
		}
		var b strings.Builder
		b.Grow(length + unknowns*utf8.RuneLen(replacement))
		b.WriteString(s[:length])
		for ; unknowns > 0; unknowns-- {
			b.WriteRune(replacement)
		}
		return b.String()
	}

	blocks := ansi.Segment(s)
	var stripped strings.Builder
	for _, blk := range blocks {
		stripped.WriteString(blk.Text)
	}
	length, unknowns, _ := splitAtWidth(stripped.String(), width)

	var b strings.Builder
	budget := length
	for _, blk := range blocks {
		if budget == 0 {
			break
		}
		n := min(budget, len(blk.Text))
		b.WriteString(blk.Start)
		b.WriteString(blk.Text[:n])
		b.WriteString(blk.End)
		budget -= n
	}
	for ; unknowns > 0; unknowns-- {
		b.WriteRune(replacement)
	}
	return b.String()
}
