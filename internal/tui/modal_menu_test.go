package tui

import (
	"strings"
	"testing"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
)

func TestMenuOpensAndNavigates(t *testing.T) {
	_, m := setupTestTimer(t)

	updated, _ := m.Update(keyPress("m"))
	m = updated.(TimerModel)
	if !m.modal.menuOpen {
		t.Fatal("Expected the menu to open")
	}
	if m.modal.menuCursor != 0 {
		t.Errorf("Expected cursor on Timer, got %d", m.modal.menuCursor)
	}

	updated, _ = m.Update(keyPress("j"))
	m = updated.(TimerModel)
	if m.modal.menuCursor != 1 {
		t.Errorf("Expected cursor 1, got %d", m.modal.menuCursor)
	}

	for i := 0; i < 5; i++ {
		updated, _ = m.Update(keyPress("j"))
		m = updated.(TimerModel)
	}
	if m.modal.menuCursor != len(menuItems)-1 {
		t.Errorf("Expected cursor pinned at the last entry, got %d", m.modal.menuCursor)
	}
}

func TestMenuStatisticsEntry(t *testing.T) {
	_, m := setupTestTimer(t)

	updated, _ := m.Update(keyPress("m"))
	m = updated.(TimerModel)
	updated, _ = m.Update(keyPress("j"))
	m = updated.(TimerModel)
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(TimerModel)

	if m.modal.IsOpen() {
		t.Fatal("Expected the menu to close on select")
	}
	if m.mode != ModeStats {
		t.Errorf("Expected stats mode, got %d", m.mode)
	}
}

func TestMenuTimerEntryReturnsFromStats(t *testing.T) {
	_, m := setupTestTimer(t)
	m.mode = ModeStats

	updated, _ := m.Update(keyPress("m"))
	m = updated.(TimerModel)
	if m.modal.menuCursor != 1 {
		t.Fatalf("Expected the menu to open on Statistics, got cursor %d", m.modal.menuCursor)
	}

	updated, _ = m.Update(keyPress("k"))
	m = updated.(TimerModel)
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(TimerModel)

	if m.mode != ModeTimer {
		t.Errorf("Expected timer mode, got %d", m.mode)
	}
}

func TestMenuSettingsPlaceholder(t *testing.T) {
	_, m := setupTestTimer(t)

	updated, _ := m.Update(keyPress("m"))
	m = updated.(TimerModel)
	for i := 0; i < 2; i++ {
		updated, _ = m.Update(keyPress("j"))
		m = updated.(TimerModel)
	}
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(TimerModel)

	if m.modal.IsOpen() {
		t.Fatal("Expected the menu to close")
	}
	if !strings.Contains(m.Message, "not yet available") {
		t.Errorf("Expected a placeholder message, got %q", m.Message)
	}
}

func TestMenuAboutShowsVersion(t *testing.T) {
	_, m := setupTestTimer(t)

	updated, _ := m.Update(keyPress("m"))
	m = updated.(TimerModel)
	for i := 0; i < 3; i++ {
		updated, _ = m.Update(keyPress("j"))
		m = updated.(TimerModel)
	}
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(TimerModel)

	if !strings.Contains(m.Message, config.AppName) {
		t.Errorf("Expected the app name in the about line, got %q", m.Message)
	}
	if !strings.Contains(m.Message, AppVersion) {
		t.Errorf("Expected the version in the about line, got %q", m.Message)
	}
}
