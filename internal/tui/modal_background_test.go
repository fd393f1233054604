package tui

import (
	"testing"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
)

func TestBackgroundPickerApply(t *testing.T) {
	_, m := setupTestTimer(t)

	updated, _ := m.Update(keyPress("b"))
	m = updated.(TimerModel)
	if !m.modal.backgroundPicking {
		t.Fatal("Expected the background picker to open")
	}

	updated, _ = m.Update(keyPress("j"))
	m = updated.(TimerModel)
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(TimerModel)

	if m.modal.IsOpen() {
		t.Fatal("Expected the picker to close on apply")
	}
	if m.theme.Name != "Forest" {
		t.Errorf("Expected the Forest theme, got %q", m.theme.Name)
	}
	if got := m.db.GetSettingDefault(config.KeySelectedBackground, ""); got != "forest" {
		t.Errorf("Expected persisted background forest, got %q", got)
	}
}

func TestBackgroundPickerOpensOnCurrentSelection(t *testing.T) {
	_, m := setupTestTimer(t)
	m.theme = ResolveTheme("ocean")

	updated, _ := m.Update(keyPress("b"))
	m = updated.(TimerModel)
	if m.modal.backgroundCursor != 2 {
		t.Errorf("Expected cursor on ocean, got %d", m.modal.backgroundCursor)
	}
}

func TestEscClosesBackgroundPicker(t *testing.T) {
	_, m := setupTestTimer(t)
	before := m.theme.Name

	updated, _ := m.Update(keyPress("b"))
	m = updated.(TimerModel)
	updated, _ = m.Update(keyPress("esc"))
	m = updated.(TimerModel)

	if m.modal.IsOpen() {
		t.Fatal("Expected esc to close the picker")
	}
	if m.theme.Name != before {
		t.Errorf("Expected theme unchanged, got %q", m.theme.Name)
	}
}
