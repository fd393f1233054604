package models

import "testing"

func TestPhaseConstants(t *testing.T) {
	if PhaseIdle != "idle" {
		t.Fatalf("PhaseIdle = %q", PhaseIdle)
	}
	if PhaseFocus != "focus" {
		t.Fatalf("PhaseFocus = %q", PhaseFocus)
	}
	if PhaseBreak != "break" {
		t.Fatalf("PhaseBreak = %q", PhaseBreak)
	}
}

func TestSessionZeroValues(t *testing.T) {
	var s FocusSession
	if s.EndedAt != nil {
		t.Fatalf("expected nil EndedAt by default")
	}
	if s.Status != "" || s.Phase != "" || s.Preset != "" {
		t.Fatalf("expected empty enum fields by default")
	}
}
