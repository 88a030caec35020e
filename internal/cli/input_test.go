package cli

import (
	"strings"
	"testing"
)

func TestLoadProcesses(t *testing.T) {
	csv := "1,0,7,3\n2,2,4,1\n"

	ps, err := LoadProcesses(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadProcesses: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(ps))
	}
	if ps[0].PID != 1 || ps[0].Burst != 7 || ps[1].Priority != 1 {
		t.Errorf("unexpected processes: %+v", ps)
	}
}

func TestLoadProcesses_priorityOptional(t *testing.T) {
	ps, err := LoadProcesses(strings.NewReader("1,0,5\n"))
	if err != nil {
		t.Fatalf("LoadProcesses: %v", err)
	}
	if ps[0].Priority != 0 {
		t.Errorf("missing priority should default to 0, got %d", ps[0].Priority)
	}
}

func TestLoadProcesses_wrongFieldCount(t *testing.T) {
	_, err := LoadProcesses(strings.NewReader("1,0\n"))
	if err == nil || !strings.Contains(err.Error(), "expected pid,arrival,burst") {
		t.Errorf("expected field count error, got %v", err)
	}
}

func TestLoadProcesses_badNumber(t *testing.T) {
	_, err := LoadProcesses(strings.NewReader("1,zero,5\n"))
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadProcesses_invalidProcessRejected(t *testing.T) {
	_, err := LoadProcesses(strings.NewReader("1,0,0\n"))
	if err == nil || !strings.Contains(err.Error(), "burst_time") {
		t.Errorf("expected validation error for zero burst, got %v", err)
	}
}
