package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestMemoryCollectsFormattedWarnings(t *testing.T) {
	var m Memory
	m.Warnf("No records found for type %s", "click")
	m.Warnf("Record with id %s not found for type %s", "abc", "view")
	got := m.Warnings()
	if len(got) != 2 {
		t.Fatalf("expected 2 warnings got %d", len(got))
	}
	if got[0] != "No records found for type click" {
		t.Fatalf("unexpected warning: %q", got[0])
	}
	if got[1] != "Record with id abc not found for type view" {
		t.Fatalf("unexpected warning: %q", got[1])
	}
}

func TestMemoryWarningsReturnsCopy(t *testing.T) {
	var m Memory
	m.Warnf("one")
	out := m.Warnings()
	out[0] = "mutated"
	if m.Warnings()[0] != "one" {
		t.Fatalf("internal slice mutated through returned copy")
	}
}

func TestZerologSinkPreservesMessageText(t *testing.T) {
	var buf bytes.Buffer
	s := NewZerolog(zerolog.New(&buf))
	s.Warnf("No records found for type %s", "neverCreated")
	line := buf.String()
	if !strings.Contains(line, "No records found for type neverCreated") {
		t.Fatalf("warning text missing from log line: %q", line)
	}
	if !strings.Contains(line, `"level":"warn"`) {
		t.Fatalf("expected warn level, got: %q", line)
	}
}
