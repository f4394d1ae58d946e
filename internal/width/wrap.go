package width

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/scirin/tabled/internal/ansi"
)

// WrapText breaks text into newline-separated lines rendering at most width
// cells each. A width of zero produces an empty string.
//
// Text without escape sequences takes the plain path: each original line is
// broken independently and already-fitting lines pass through unchanged, so
// wrapping is idempotent. In word mode every produced line is space-padded
// to exactly width cells.
//
// Text with escape sequences is segmented into style runs first. A break
// closes the active style before the newline and reopens it after, and when
// the text carries an OSC 8 hyperlink every produced line is rewrapped in
// the link's open and close sequences. Styled word mode pads only the final
// line.
func WrapText(text string, width int, keepWords bool) string {
	if width == 0 {
		return ""
	}
	if strings.IndexByte(text, esc) < 0 {
		return wrapPlain(text, width, keepWords)
	}

	stripped, url := ansi.ExtractHyperlink(text)
	prefix, suffix := ansi.LinkWrappers(url)
	if keepWords {
		return splitKeepingWordsStyled(stripped, width, prefix, suffix)
	}
	return strings.Join(chunksStyled(stripped, width, prefix, suffix), "\n")
}

func wrapPlain(text string, width int, keepWords bool) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if keepWords {
			lines[i] = splitKeepingWords(line, width)
		} else {
			lines[i] = strings.Join(chunks(line, width), "\n")
		}
	}
	return strings.Join(lines, "\n")
}

// chunks cuts s into width-sized pieces. A wide rune straddling a cut is
// dropped and the cells it would have started are filled with replacement
// marks. The final piece may be narrower than width.
func chunks(s string, width int) []string {
	if width == 0 {
		return nil
	}

	var list []string
	var buf strings.Builder
	var w int
	for _, c := range s {
		cw := RuneWidth(c)
		if w+cw > width {
			for n := width - w; n > 0; n-- {
				buf.WriteRune(replacement)
				w++
			}
		} else {
			buf.WriteRune(c)
			w += cw
		}

		if w == width {
			list = append(list, buf.String())
			buf.Reset()
			w = 0
		}
	}

	if buf.Len() > 0 {
		list = append(list, buf.String())
	}
	return list
}

// splitKeepingWords breaks s at word boundaries where possible, falling
// back to hard cuts for words wider than a whole line. Every produced line
// is padded to exactly width cells.
func splitKeepingWords(s string, width int) string {
	var lines []string
	var line strings.Builder
	var lineWidth int
	firstWord := true

	pushLine := func() {
		for lineWidth < width {
			line.WriteByte(' ')
			lineWidth++
		}
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Split(s, " ") {
		if !firstWord && lineWidth < width {
			line.WriteByte(' ')
			lineWidth++
		}
		firstWord = false

		wordWidth := textWidth(word)
		if lineWidth+wordWidth <= width {
			line.WriteString(word)
			lineWidth += wordWidth
			continue
		}

		if wordWidth <= width {
			// the word fits on a line of its own, move it there whole
			pushLine()
			line.WriteString(word)
			lineWidth = wordWidth
			continue
		}

		// wider than any line could be, hard-cut it
		for part := word; part != ""; {
			length, unknowns, splitSize := splitAtWidth(part, width-lineWidth)
			line.WriteString(part[:length])
			lineWidth += textWidth(part[:length])
			for ; unknowns > 0; unknowns-- {
				line.WriteRune(replacement)
				lineWidth++
			}
			part = part[length+splitSize:]

			if lineWidth == width {
				pushLine()
				firstWord = true
			}
		}
	}

	if lineWidth > 0 {
		pushLine()
	}
	return strings.Join(lines, "\n")
}

// chunksStyled is the escape-aware counterpart of chunks. Every produced
// line reopens the style active at its start and closes the style open at
// its end; prefix and suffix additionally wrap each line.
func chunksStyled(s string, width int, prefix, suffix string) []string {
	if width == 0 {
		return nil
	}

	var list []string
	var line strings.Builder
	var lineWidth int

	for _, b := range ansi.Segment(s) {
		line.WriteString(prefix)
		line.WriteString(b.Start)

		part := b.Text
		for part != "" {
			avail := width - lineWidth

			if pw := textWidth(part); pw <= avail {
				line.WriteString(part)
				lineWidth += pw

				if avail == 0 {
					line.WriteString(b.End)
					line.WriteString(suffix)
					list = append(list, line.String())
					line.Reset()
					line.WriteString(prefix)
					line.WriteString(b.Start)
					lineWidth = 0
				}
				break
			}

			length, unknowns, splitSize := splitAtWidth(part, avail)
			line.WriteString(part[:length])
			lineWidth += textWidth(part[:length])
			for ; unknowns > 0; unknowns-- {
				line.WriteRune(replacement)
				lineWidth++
			}
			part = part[length+splitSize:]

			if lineWidth == width {
				line.WriteString(b.End)
				line.WriteString(suffix)
				list = append(list, line.String())
				line.Reset()
				line.WriteString(prefix)
				line.WriteString(b.Start)
				lineWidth = 0
			}
		}

		if lineWidth > 0 {
			line.WriteString(b.End)
		}
	}

	if lineWidth > 0 {
		line.WriteString(suffix)
		list = append(list, line.String())
	}
	return list
}

// splitKeepingWordsStyled is the escape-aware counterpart of
// splitKeepingWords. The line is built rune by rune; when a word overflows
// and still fits on a line of its own, a break is inserted into the buffer
// right before the word's first rune. Only the final line is padded.
func splitKeepingWordsStyled(text string, width int, prefix, suffix string) string {
	if text == "" || width == 0 {
		return ""
	}

	buf := make([]byte, 0, len(text))
	var lineWidth int
	var wordBegin int
	var wordLength int
	emptyBuf := true

	// split breaks the line at the buffer's end, closing and reopening
	// the styling of the block being walked.
	split := func(b ansi.Block) {
		buf = append(buf, b.End...)
		buf = append(buf, suffix...)
		buf = append(buf, '\n')
		buf = append(buf, prefix...)
		buf = append(buf, b.Start...)
	}

	buf = append(buf, prefix...)

	for _, b := range ansi.Segment(text) {
		buf = append(buf, b.Start...)

		for _, c := range b.Text {
			cw := RuneWidth(c)
			fits := lineWidth+cw <= width

			if c == ' ' {
				wordLength = 0
				wordBegin = 0

				if !fits {
					split(b)
					lineWidth = 0
				}

				buf = append(buf, ' ')
				lineWidth++
				emptyBuf = false
				continue
			}

			if wordLength == 0 {
				wordBegin = len(buf)
			}

			if fits {
				buf = utf8.AppendRune(buf, c)
				wordLength += cw
				lineWidth += cw
				emptyBuf = false
				continue
			}

			// The whole word may not be on hand yet; judge by what is.
			partial := wordLength + cw
			if partial <= width {
				// move the word down to the next line
				if !emptyBuf {
					sep := b.End + suffix + "\n" + prefix + b.Start
					buf = slices.Insert(buf, wordBegin, []byte(sep)...)
				}

				buf = utf8.AppendRune(buf, c)
				lineWidth = partial
				wordLength += cw
				emptyBuf = false
				continue
			}

			// too wide to ever fit whole, cut it here
			if !emptyBuf {
				split(b)
			}

			if cw > width {
				for n := 0; n < width; n++ {
					buf = utf8.AppendRune(buf, replacement)
				}
				lineWidth = width
				wordLength = width
			} else {
				buf = utf8.AppendRune(buf, c)
				lineWidth = cw
				wordLength += cw
			}
			emptyBuf = false
		}

		buf = append(buf, b.End...)
	}

	if lineWidth > 0 {
		buf = append(buf, suffix...)
	}
	for ; lineWidth < width; lineWidth++ {
		buf = append(buf, ' ')
	}
	return string(buf)
}
