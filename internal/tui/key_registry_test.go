package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryDispatch(t *testing.T) {
	_, m := setupTestTimer(t)

	called := false
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "z", Description: "test", Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
		called = true
		return m, nil, true
	}})

	if _, _, handled := r.Handle(m, "z"); !handled || !called {
		t.Error("Expected the registered handler to run")
	}
	if _, _, handled := r.Handle(m, "y"); handled {
		t.Error("Expected unknown keys to pass through")
	}
}

func TestRegistryModeFiltering(t *testing.T) {
	_, m := setupTestTimer(t)

	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "z", Description: "stats only", Modes: []int{ModeStats}, Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
		return m, nil, true
	}})

	m.mode = ModeTimer
	if _, _, handled := r.Handle(m, "z"); handled {
		t.Error("Expected the binding to be inert outside its mode")
	}
	m.mode = ModeStats
	if _, _, handled := r.Handle(m, "z"); !handled {
		t.Error("Expected the binding to fire in its mode")
	}
}

func TestRegistryPriorityOrder(t *testing.T) {
	_, m := setupTestTimer(t)

	var winner string
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "z", Description: "low", Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
		winner = "low"
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "z", Description: "high", Priority: 10, Handler: func(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
		winner = "high"
		return m, nil, true
	}})

	r.Handle(m, "z")
	if winner != "high" {
		t.Errorf("Expected the high-priority binding to win, got %q", winner)
	}
}

func TestHelpForMode(t *testing.T) {
	r := newKeyRegistry()

	help := r.HelpForMode(ModeTimer)
	if !strings.Contains(help, "[space]pause/resume") {
		t.Errorf("Expected the space binding labelled, got %q", help)
	}
	if !strings.Contains(help, "[q]quit") {
		t.Errorf("Expected the quit hint, got %q", help)
	}

	statsHelp := r.HelpForMode(ModeStats)
	if strings.Contains(statsHelp, "[s]start") {
		t.Errorf("Expected timer-only bindings hidden in stats, got %q", statsHelp)
	}
	if strings.Contains(statsHelp, "esc") {
		t.Errorf("Expected undescribed bindings hidden, got %q", statsHelp)
	}
}
