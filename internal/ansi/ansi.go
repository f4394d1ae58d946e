// Package ansi segments styled terminal text into runs of visible text and
// the escape sequences needed to restore styling around inserted line breaks.
//
// Only SGR (Select Graphic Rendition) sequences contribute styling state.
// Other CSI sequences, OSC sequences, and bare escapes end the current run
// and are dropped. OSC 8 hyperlinks are handled separately, see
// ExtractHyperlink.
package ansi

import (
	"strconv"
	"strings"
)

const (
	escByte = '\x1b'
	belByte = '\x07'
)

// Block is a run of visible text over which styling is constant.
//
// Start holds the escape sequences that reproduce the active style at the
// beginning of the run, one canonical sequence per attribute, in the order
// the attributes were applied. End holds the minimal sequences that reset
// every active attribute, in canonical attribute order (intensity, italic,
// underline, blink, inverse, hidden, strikethrough, foreground, background).
type Block struct {
	Text  string
	Start string
	End   string
}

// Segment splits s into style-constant runs of visible text. Runs with no
// visible text are skipped. A string without escape bytes becomes a single
// unstyled block.
func Segment(s string) []Block {
	if !strings.ContainsRune(s, escByte) {
		if s == "" {
			return nil
		}
		return []Block{{Text: s}}
	}

	var blocks []Block
	var st style
	runStart := 0
	i := 0
	for i < len(s) {
		if s[i] != escByte {
			i++
			continue
		}
		if i > runStart {
			blocks = append(blocks, Block{
				Text:  s[runStart:i],
				Start: st.opening(),
				End:   st.closing(),
			})
		}
		i += st.consume(s[i:])
		runStart = i
	}
	if len(s) > runStart {
		blocks = append(blocks, Block{
			Text:  s[runStart:],
			Start: st.opening(),
			End:   st.closing(),
		})
	}
	return blocks
}

type attrKind uint8

const (
	attrBold attrKind = iota
	attrFaint
	attrItalic
	attrUnderline
	attrBlink
	attrInverse
	attrHidden
	attrStrike
	attrFg
	attrBg
)

// closers holds the minimal reset sequence per attribute. Indexed by
// attrKind; the index order doubles as the canonical closing order.
var closers = [...]string{
	attrBold:      "\x1b[22m",
	attrFaint:     "\x1b[22m",
	attrItalic:    "\x1b[23m",
	attrUnderline: "\x1b[24m",
	attrBlink:     "\x1b[25m",
	attrInverse:   "\x1b[27m",
	attrHidden:    "\x1b[28m",
	attrStrike:    "\x1b[29m",
	attrFg:        "\x1b[39m",
	attrBg:        "\x1b[49m",
}

type styleAttr struct {
	kind attrKind
	seq  string
}

// style tracks active SGR attributes in application order. Re-applying an
// attribute replaces its sequence in place so the original position is kept.
type style struct {
	attrs []styleAttr
}

func (st *style) set(k attrKind, seq string) {
	for i := range st.attrs {
		if st.attrs[i].kind == k {
			st.attrs[i].seq = seq
			return
		}
	}
	st.attrs = append(st.attrs, styleAttr{kind: k, seq: seq})
}

func (st *style) clear(kinds ...attrKind) {
	kept := st.attrs[:0]
	for _, a := range st.attrs {
		drop := false
		for _, k := range kinds {
			if a.kind == k {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, a)
		}
	}
	st.attrs = kept
}

func (st *style) reset() {
	st.attrs = st.attrs[:0]
}

// opening renders the sequences that re-enter the current style.
func (st *style) opening() string {
	if len(st.attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range st.attrs {
		b.WriteString(a.seq)
	}
	return b.String()
}

// closing renders the minimal reset for the current style. Bold and faint
// share the one intensity reset, emitted once.
func (st *style) closing() string {
	if len(st.attrs) == 0 {
		return ""
	}
	var seen [attrBg + 1]bool
	for _, a := range st.attrs {
		seen[a.kind] = true
	}
	var b strings.Builder
	for k := range closers {
		kind := attrKind(k)
		if !seen[kind] {
			continue
		}
		if kind == attrFaint && seen[attrBold] {
			continue
		}
		b.WriteString(closers[kind])
	}
	return b.String()
}

// consume parses one escape sequence at the start of s, updating the style
// for SGR sequences, and returns the number of bytes consumed. s starts
// with an escape byte.
func (st *style) consume(s string) int {
	if len(s) == 1 {
		return 1
	}
	switch s[1] {
	case '[':
		return st.consumeCSI(s)
	case ']':
		return consumeOSC(s)
	case '(', ')':
		// charset designation carries one selector byte
		if len(s) > 2 {
			return 3
		}
		return 2
	default:
		return 2
	}
}

// consumeCSI scans a CSI sequence. Only a final byte of 'm' (SGR) affects
// the style; every other final byte is consumed and ignored.
func (st *style) consumeCSI(s string) int {
	for i := 2; i < len(s); i++ {
		b := s[i]
		if b >= 0x40 && b <= 0x7e {
			if b == 'm' {
				st.applySGR(s[2:i])
			}
			return i + 1
		}
	}
	return len(s)
}

// consumeOSC scans to the BEL or ESC-backslash terminator.
func consumeOSC(s string) int {
	for i := 2; i < len(s); i++ {
		switch s[i] {
		case belByte:
			return i + 1
		case escByte:
			if i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
	}
	return len(s)
}

func (st *style) applySGR(params string) {
	codes, ok := parseParams(params)
	if !ok {
		return
	}
	for i := 0; i < len(codes); i++ {
		c := codes[i]
		switch {
		case c == 0:
			st.reset()
		case c == 1:
			st.set(attrBold, "\x1b[1m")
		case c == 2:
			st.set(attrFaint, "\x1b[2m")
		case c == 3:
			st.set(attrItalic, "\x1b[3m")
		case c == 4:
			st.set(attrUnderline, "\x1b[4m")
		case c == 5:
			st.set(attrBlink, "\x1b[5m")
		case c == 6:
			st.set(attrBlink, "\x1b[6m")
		case c == 7:
			st.set(attrInverse, "\x1b[7m")
		case c == 8:
			st.set(attrHidden, "\x1b[8m")
		case c == 9:
			st.set(attrStrike, "\x1b[9m")
		case c == 21, c == 22:
			st.clear(attrBold, attrFaint)
		case c == 23:
			st.clear(attrItalic)
		case c == 24:
			st.clear(attrUnderline)
		case c == 25:
			st.clear(attrBlink)
		case c == 27:
			st.clear(attrInverse)
		case c == 28:
			st.clear(attrHidden)
		case c == 29:
			st.clear(attrStrike)
		case c >= 30 && c <= 37, c >= 90 && c <= 97:
			st.set(attrFg, sgrSeq(c))
		case c == 38:
			seq, skip := extendedColor(codes[i:])
			if skip == 0 {
				return
			}
			st.set(attrFg, seq)
			i += skip
		case c == 39:
			st.clear(attrFg)
		case c >= 40 && c <= 47, c >= 100 && c <= 107:
			st.set(attrBg, sgrSeq(c))
		case c == 48:
			seq, skip := extendedColor(codes[i:])
			if skip == 0 {
				return
			}
			st.set(attrBg, seq)
			i += skip
		case c == 49:
			st.clear(attrBg)
		}
	}
}

// extendedColor renders an extended color introducer (38/48 followed by
// 5;n or 2;r;g;b) as one canonical sequence. Returns skip == 0 when the
// arguments are malformed; the caller drops the rest of the sequence.
func extendedColor(codes []int) (string, int) {
	if len(codes) >= 3 && codes[1] == 5 {
		return "\x1b[" + strconv.Itoa(codes[0]) + ";5;" + strconv.Itoa(codes[2]) + "m", 2
	}
	if len(codes) >= 5 && codes[1] == 2 {
		return "\x1b[" + strconv.Itoa(codes[0]) +
			";2;" + strconv.Itoa(codes[2]) +
			";" + strconv.Itoa(codes[3]) +
			";" + strconv.Itoa(codes[4]) + "m", 4
	}
	return "", 0
}

func sgrSeq(code int) string {
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// parseParams splits a CSI parameter string on semicolons. An empty
// parameter means zero. A non-numeric parameter invalidates the whole
// sequence.
func parseParams(params string) ([]int, bool) {
	if params == "" {
		return []int{0}, true
	}
	parts := strings.Split(params, ";")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			codes = append(codes, 0)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, false
		}
		codes = append(codes, n)
	}
	return codes, true
}
