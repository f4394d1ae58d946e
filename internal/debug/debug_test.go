package debug

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestDebugDisabled(t *testing.T) {
	// Ensure debug is disabled
	SetEnabled(false)
	defer SetEnabled(false)

	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	session := NewSession(sink)

	// Should return nil when disabled
	if session != nil {
		t.Error("NewSession should return nil when disabled")
	}

	// Emit should be no-op on nil session
	session.Emit("test", "Event", nil)

	if buf.Len() > 0 {
		t.Error("Events emitted when debug disabled")
	}
}

func TestDebugEnabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	session := NewSession(sink)

	if session == nil {
		t.Fatal("NewSession should return non-nil when enabled")
	}

	// Emit test event
	session.Emit("test", "TestEvent", map[string]string{
		"key": "value",
	})

	if err := session.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Parse and verify JSON lines
	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	if len(lines) < 3 { // Start, TestEvent, End
		t.Fatalf("Expected at least 3 lines, got %d", len(lines))
	}

	// Verify first event is session start
	var startEvent Event
	if err := json.Unmarshal([]byte(lines[0]), &startEvent); err != nil {
		t.Fatalf("Failed to parse start event: %v", err)
	}
	if startEvent.Phase != "session" || startEvent.Event != "Start" {
		t.Errorf("Expected session/Start, got %s/%s", startEvent.Phase, startEvent.Event)
	}

	// Verify test event
	var testEvent Event
	if err := json.Unmarshal([]byte(lines[1]), &testEvent); err != nil {
		t.Fatalf("Failed to parse test event: %v", err)
	}
	if testEvent.Phase != "test" || testEvent.Event != "TestEvent" {
		t.Errorf("Expected test/TestEvent, got %s/%s", testEvent.Phase, testEvent.Event)
	}
	if testEvent.SessionID == "" {
		t.Error("Session ID should not be empty")
	}

	// Verify last event is session end
	var endEvent Event
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &endEvent); err != nil {
		t.Fatalf("Failed to parse end event: %v", err)
	}
	if endEvent.Phase != "session" || endEvent.Event != "End" {
		t.Errorf("Expected session/End, got %s/%s", endEvent.Phase, endEvent.Event)
	}
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONSink(&buf)

	event := Event{
		Timestamp: "2025-01-01T00:00:00Z",
		SessionID: "abc123",
		Phase:     "allocate",
		Event:     "Pick",
		Data:      PickData{Col: 2, Width: 7},
	}

	if err := sink.Write(event); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var parsed Event
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if parsed.Phase != "allocate" || parsed.Event != "Pick" {
		t.Errorf("Unexpected event: %+v", parsed)
	}
}

func TestPrettySink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPrettySink(&buf)

	event := Event{
		Timestamp: "2025-01-01T00:00:00Z",
		SessionID: "abc123",
		Phase:     "allocate",
		Event:     "Done",
		Data: AllocateData{
			Before: []int{10, 10, 10},
			After:  []int{5, 5, 5},
			Mins:   []int{2, 2, 2},
			Target: 19,
			Steps:  15,
		},
	}

	if err := sink.Write(event); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "[10 10 10] (sum 30)") {
		t.Errorf("Pretty output should show widths with sum, got: %s", output)
	}
	if !strings.Contains(output, "target: 19, steps: 15") {
		t.Errorf("Pretty output should show target and steps, got: %s", output)
	}
}

func TestPrettySinkCell(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPrettySink(&buf)

	event := Event{
		Timestamp: "2025-01-01T00:00:00Z",
		SessionID: "abc123",
		Phase:     "wrap",
		Event:     "Cell",
		Data: CellData{
			Row:      1,
			Col:      3,
			Width:    6,
			OldWidth: 14,
			Lines:    3,
		},
	}

	if err := sink.Write(event); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "row=1, col=3") {
		t.Errorf("Pretty output should show position, got: %s", output)
	}
	if !strings.Contains(output, "lines: 3") {
		t.Errorf("Pretty output should show line count, got: %s", output)
	}
}

func TestSessionID(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	session := NewSession(sink)

	if session == nil {
		t.Fatal("NewSession should return non-nil when enabled")
	}

	id := session.SessionID()
	if id == "" {
		t.Error("SessionID should not be empty")
	}
	if len(id) != 8 { // 4 bytes hex encoded = 8 characters
		t.Errorf("SessionID should be 8 characters, got %d", len(id))
	}

	session.Close()
}

func TestNilSessionSafety(t *testing.T) {
	// All operations on nil session should be safe
	var session *Session

	// Should not panic
	session.Emit("test", "Event", nil)

	if err := session.Close(); err != nil {
		t.Errorf("Close on nil session should return nil, got %v", err)
	}

	if id := session.SessionID(); id != "" {
		t.Errorf("SessionID on nil session should return empty, got %v", id)
	}
}

// BenchmarkEmitDisabled verifies zero overhead when debug is disabled.
func BenchmarkEmitDisabled(b *testing.B) {
	SetEnabled(false)

	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	session := NewSession(sink)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session.Emit("test", "Event", nil)
	}

	if buf.Len() > 0 {
		b.Error("Buffer should be empty when disabled")
	}
}

// BenchmarkEmitEnabled measures overhead when debug is enabled.
func BenchmarkEmitEnabled(b *testing.B) {
	SetEnabled(true)
	defer SetEnabled(false)

	var buf bytes.Buffer
	sink := NewJSONSink(&buf)
	session := NewSession(sink)

	data := CellData{
		Row:      0,
		Col:      1,
		Width:    8,
		OldWidth: 20,
		Lines:    3,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session.Emit("wrap", "Cell", data)
	}
}
