package event

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNDJSONEmitterWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewNDJSONEmitterTo(&buf)

	idx := 0
	emitter.Emit(Event{
		Timestamp: time.Now(),
		RequestID: "req-1",
		Language:  "python",
		Stage:     StageTest,
		State:     StateCompleted,
		TestIndex: &idx,
	})
	emitter.Emit(Event{
		Timestamp: time.Now(),
		RequestID: "req-1",
		Stage:     StageVerdict,
		State:     StateCompleted,
		Message:   "accepted",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var first Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if first.Stage != StageTest || first.TestIndex == nil || *first.TestIndex != 0 {
		t.Errorf("unexpected first event: %+v", first)
	}
}

func TestNDJSONEmitterOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewNDJSONEmitterTo(&buf)

	emitter.Emit(Event{
		Timestamp: time.Now(),
		RequestID: "req-2",
		Stage:     StageCompile,
		State:     StateStarted,
	})

	line := buf.String()
	for _, absent := range []string{"test_index", "message", "duration_ms", "language"} {
		if strings.Contains(line, absent) {
			t.Errorf("empty field %q should be omitted: %s", absent, line)
		}
	}
}
