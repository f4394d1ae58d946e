package width

import (
	"strings"
	"testing"
)

func TestCutStr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"zero width", "123456", 0, ""},
		{"plain cut", "123456", 3, "123"},
		{"plain fits", "abc", 10, "abc"},
		{"wide glyph straddles", "😳😳", 3, "😳�"},
		{"wide glyph over budget", "😳", 1, "�"},
		{"newline is free", "ab\ncd", 3, "ab\nc"},
		{
			name:  "styled keeps and closes",
			input: "\x1b[5m\x1b[48;2;12;200;100m\x1b[33mCollored string\x1b[0m",
			width: 1,
			want:  "\x1b[5m\x1b[48;2;12;200;100m\x1b[33mC\x1b[25m\x1b[39m\x1b[49m",
		},
		{
			name:  "cut spans styled runs",
			input: "\x1b[31mab\x1b[32mcd\x1b[0m",
			width: 3,
			want:  "\x1b[31mab\x1b[39m\x1b[32mc\x1b[39m",
		},
		{
			name:  "runs past the cut are dropped",
			input: "\x1b[31mab\x1b[0m\x1b[44mcd\x1b[0m",
			width: 2,
			want:  "\x1b[31mab\x1b[39m",
		},
		{
			name:  "styled wide glyph straddles",
			input: "\x1b[31m😳😳\x1b[0m",
			width: 3,
			want:  "\x1b[31m😳\x1b[39m�",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CutStr(tt.input, tt.width); got != tt.want {
				t.Errorf("CutStr(%q, %d) = %q, want %q",
					tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestCutStrWidthBound(t *testing.T) {
	inputs := []string{
		"123456",
		"😳😳😳😳😳",
		"🚵🏻🚵🏻",
		"\x1b[31mred text here\x1b[0m",
		"\x1b[31m😳😳\x1b[42m😳😳\x1b[0m",
	}

	for _, input := range inputs {
		for width := 0; width <= 10; width++ {
			cut := CutStr(input, width)
			if w := StringWidth(cut); w > width {
				t.Errorf("CutStr(%q, %d) = %q renders %d wide",
					input, width, cut, w)
			}
		}
	}
}

func BenchmarkCutStr(b *testing.B) {
	text := strings.Repeat("\x1b[31mDebian\x1b[0m", 10)
	b.Run("styled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			CutStr(text, 30)
		}
	})
	b.Run("plain", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			CutStr("The quick brown fox jumps over the lazy dog", 30)
		}
	})
}
