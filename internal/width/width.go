// Package width measures and re-flows terminal text by rendered cell width.
//
// All measurement is per rune: a string's width is the sum of its runes'
// widths with escape sequences stripped. Wide glyphs count 2, control and
// zero-width runes count 0. Grapheme clusters are not combined; every rune
// is an atomic glyph, so measurement and line breaking always agree.
package width

import (
	"strings"
	"unicode/utf8"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const esc = '\x1b'

// replacement fills cells left over when a wide rune straddles a cut point.
const replacement = '�'

// cond measures ambiguous-width runes as narrow regardless of the caller's
// locale, keeping output stable across environments.
var cond = &runewidth.Condition{}

// RuneWidth returns the number of terminal cells r occupies.
func RuneWidth(r rune) int {
	return cond.RuneWidth(r)
}

// StringWidth returns the rendered width of s in terminal cells. Escape
// sequences contribute nothing. Newlines also count zero; use
// StringWidthMultiline for the widest-line measure of multiline text.
func StringWidth(s string) int {
	if strings.IndexByte(s, esc) >= 0 {
		s = xansi.Strip(s)
	}
	return textWidth(s)
}

// StringWidthMultiline returns the width of the widest line in s.
func StringWidthMultiline(s string) int {
	var widest int
	for _, line := range strings.Split(s, "\n") {
		if w := StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// textWidth sums rune widths without stripping escapes first.
func textWidth(s string) int {
	var w int
	for _, c := range s {
		w += RuneWidth(c)
	}
	return w
}

// ReplaceTab expands every tab in s to tabWidth spaces. A tabWidth of zero
// removes tabs.
func ReplaceTab(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// splitAtWidth finds the byte position where s must be cut so the leading
// part renders at most `at` cells wide. When a rune straddles the boundary
// it cannot be kept: unknowns reports how many cells are left to fill with
// replacement marks and splitSize the byte length of the straddling rune,
// which the caller skips over. Otherwise unknowns and splitSize are zero.
func splitAtWidth(s string, at int) (length, unknowns, splitSize int) {
	var w int
	for i := 0; i < len(s); {
		if w == at {
			return i, 0, 0
		}
		c, size := utf8.DecodeRuneInString(s[i:])
		cw := RuneWidth(c)
		if w+cw > at {
			return i, at - w, size
		}
		w += cw
		i += size
	}
	return len(s), 0, 0
}
