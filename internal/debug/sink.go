package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	// Format: [timestamp] [phase/event]
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	// Pretty print data based on type
	switch d := event.Data.(type) {
	case TableStartData:
		s.writeTableStart(d)
	case TableEndData:
		s.writeTableEnd(d)
	case AllocateData:
		s.writeAllocate(d)
	case PickData:
		s.writePick(d)
	case SelectData:
		s.writeSelect(d)
	case CellData:
		s.writeCell(d)
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		s.writeMapInt64(d)
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writeTableStart(d TableStartData) {
	fmt.Fprintf(s.w, "  shape: %dx%d, total_width: %d, target: %d\n", d.Rows, d.Cols, d.TotalWidth, d.Target)
	fmt.Fprintf(s.w, "  mode: %s", d.Mode)
	if d.Mode == "wrap" {
		fmt.Fprintf(s.w, ", keep_words: %t", d.KeepWords)
	}
	if d.Priority != "" {
		fmt.Fprintf(s.w, ", priority: %s", d.Priority)
	}
	fmt.Fprintf(s.w, "\n")
}

func (s *PrettySink) writeTableEnd(d TableEndData) {
	fmt.Fprintf(s.w, "  widths: %s\n", widthsStr(d.Widths))
	fmt.Fprintf(s.w, "  reworked_cells: %d, elapsed_ms: %d\n", d.ReworkedCells, d.ElapsedMs)
}

func (s *PrettySink) writeAllocate(d AllocateData) {
	fmt.Fprintf(s.w, "  before: %s\n", widthsStr(d.Before))
	fmt.Fprintf(s.w, "  after: %s\n", widthsStr(d.After))
	fmt.Fprintf(s.w, "  mins: %s\n", widthsStr(d.Mins))
	fmt.Fprintf(s.w, "  target: %d, steps: %d\n", d.Target, d.Steps)
}

func (s *PrettySink) writePick(d PickData) {
	fmt.Fprintf(s.w, "  col: %d, width: %d\n", d.Col, d.Width)
}

func (s *PrettySink) writeSelect(d SelectData) {
	fmt.Fprintf(s.w, "  position: row=%d, col=%d, width: %d\n", d.Row, d.Col, d.Width)
}

func (s *PrettySink) writeCell(d CellData) {
	fmt.Fprintf(s.w, "  position: row=%d, col=%d\n", d.Row, d.Col)
	fmt.Fprintf(s.w, "  width: %d → %d, lines: %d\n", d.OldWidth, d.Width, d.Lines)
}

func (s *PrettySink) writeMap(d map[string]interface{}) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %v\n", k, v)
	}
}

func (s *PrettySink) writeMapInt64(d map[string]int64) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %d\n", k, v)
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}

// widthsStr formats a width vector for display: [3 5 8] (sum 16).
func widthsStr(ws []int) string {
	total := 0
	for _, w := range ws {
		total += w
	}
	return fmt.Sprintf("%v (sum %d)", ws, total)
}
