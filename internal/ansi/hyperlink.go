package ansi

import "strings"

const osc8Open = "\x1b]8;"

// ExtractHyperlink removes every OSC 8 hyperlink wrapper from s and returns
// the remaining text together with the first non-empty link target. The
// target is "" when s carries no hyperlink. An unterminated wrapper swallows
// the rest of the string, matching how a terminal would treat it.
func ExtractHyperlink(s string) (text, url string) {
	if !strings.Contains(s, osc8Open) {
		return s, ""
	}
	var out strings.Builder
	for {
		j := strings.Index(s, osc8Open)
		if j < 0 {
			out.WriteString(s)
			break
		}
		out.WriteString(s[:j])
		rest := s[j+len(osc8Open):]
		end, term := oscTerminator(rest)
		if end < 0 {
			break
		}
		body := rest[:end] // params;target
		if semi := strings.IndexByte(body, ';'); semi >= 0 {
			if target := body[semi+1:]; target != "" && url == "" {
				url = target
			}
		}
		s = rest[end+term:]
	}
	return out.String(), url
}

// oscTerminator locates the BEL or ESC-backslash terminator, returning its
// offset and length, or (-1, 0) when the sequence is unterminated.
func oscTerminator(s string) (int, int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case belByte:
			return i, 1
		case escByte:
			if i+1 < len(s) && s[i+1] == '\\' {
				return i, 2
			}
		}
	}
	return -1, 0
}

// LinkWrappers builds the OSC 8 open and close sequences that must wrap
// every emitted line of a hyperlinked cell. Both are empty when url is "".
func LinkWrappers(url string) (prefix, suffix string) {
	if url == "" {
		return "", ""
	}
	return "\x1b]8;;" + url + "\x1b\\", "\x1b]8;;\x1b\\"
}
