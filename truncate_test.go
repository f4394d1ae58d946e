package tabled

import (
	"strings"
	"testing"
)

func TestTruncateTableMode(t *testing.T) {
	tb := New(sampleRows())
	tb.With(Truncate(25).Priority(PriorityMax).Suffix("..."))

	want := strings.Join([]string{
		"+----+------------------+",
		"| id | description      |",
		"+----+------------------+",
		"| 1  | a long descri... |",
		"+----+------------------+",
	}, "\n")
	if got := tb.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
	if got := tb.TotalWidth(); got != 25 {
		t.Errorf("TotalWidth = %d, want 25", got)
	}
}

func TestTruncateTableModeNoSuffix(t *testing.T) {
	tb := New(sampleRows())
	tb.With(Truncate(25).Priority(PriorityMax))

	want := strings.Join([]string{
		"+----+------------------+",
		"| id | description      |",
		"+----+------------------+",
		"| 1  | a long descripti |",
		"+----+------------------+",
	}, "\n")
	if got := tb.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTruncateCellMode(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		suffix string
		want   string
	}{
		{
			name:  "plain cut",
			text:  "abcdef",
			width: 4,
			want:  "abcd",
		},
		{
			name:   "suffix reserved from budget",
			text:   "abcdef",
			width:  4,
			suffix: "..",
			want:   "ab..",
		},
		{
			name:   "suffix wider than budget",
			text:   "abcdef",
			width:  2,
			suffix: "...",
			want:   "..",
		},
		{
			name:  "multiline cut runs over the whole text",
			text:  "abcd\nef",
			width: 3,
			want:  "abc",
		},
		{
			name:  "straddled wide glyph becomes a marker",
			text:  "😳😳",
			width: 3,
			want:  "😳�",
		},
		{
			name:  "styled cut closes the run",
			text:  "\x1b[31mabcdef\x1b[0m",
			width: 3,
			want:  "\x1b[31mabc\x1b[39m",
		},
		{
			name:   "styled cut with suffix",
			text:   "\x1b[31mabcdef\x1b[0m",
			width:  3,
			suffix: "..",
			want:   "\x1b[31ma\x1b[39m..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := New([][]string{{tt.text}})
			opt := Truncate(tt.width)
			if tt.suffix != "" {
				opt = opt.Suffix(tt.suffix)
			}
			tb.Modify(CellAt(0, 0), opt)
			if got := tb.rec.Text(cellPos(0, 0)); got != tt.want {
				t.Errorf("cell text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateSkipsFittingCell(t *testing.T) {
	tb := New([][]string{{"ab"}})
	tb.Modify(CellAt(0, 0), Truncate(5).Suffix("..."))

	// Fitting cells keep their text and gain no suffix.
	if got := tb.rec.Text(cellPos(0, 0)); got != "ab" {
		t.Errorf("cell text = %q, want %q", got, "ab")
	}
}
