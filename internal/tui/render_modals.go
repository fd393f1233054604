package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/timer"
)

// renderModalOverlay draws the open modal centered on a cleared screen.
// The leading escape wipes the previous frame so the box never bleeds
// into stale content.
func (m TimerModel) renderModalOverlay() string {
	var box string
	switch {
	case m.modal.menuOpen:
		box = m.renderMenuModal()
	case m.modal.presetPicking:
		box = m.renderPresetModal()
	case m.modal.customActive:
		box = m.renderCustomModal()
	case m.modal.backgroundPicking:
		box = m.renderBackgroundModal()
	case m.modal.exportingBackup:
		box = m.modalFrame("Export backup",
			m.theme.Input.Render(m.inputs.passphrase.View()),
			"Blank passphrase writes a plain archive. Enter to confirm, esc to cancel.")
	case m.modal.importingBackup:
		box = m.modalFrame("Import backup",
			m.theme.Input.Render(m.inputs.passphrase.View()),
			"The latest archive is encrypted. Enter its passphrase, esc to cancel.")
	}
	return "\x1b[H\x1b[2J" + lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m TimerModel) modalFrame(title, body, hint string) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)
	content := m.theme.Header.Render(title) + "\n\n" + body
	if hint != "" {
		content += "\n\n" + m.theme.Dim.Render(hint)
	}
	return frame.Render(content)
}

func (m TimerModel) renderMenuModal() string {
	var rows []string
	for i, item := range menuItems {
		if i == m.modal.menuCursor {
			rows = append(rows, m.theme.Focused.Render("> "+item))
			continue
		}
		rows = append(rows, "  "+item)
	}
	return m.modalFrame("Menu", strings.Join(rows, "\n"), "Enter to select, esc to close.")
}

func (m TimerModel) renderPresetModal() string {
	var rows []string
	for i, opt := range timer.Presets {
		if i == m.modal.presetCursor {
			rows = append(rows, m.theme.Focused.Render("> "+opt.Label))
			continue
		}
		rows = append(rows, "  "+opt.Label)
	}
	return m.modalFrame("Timer preset", strings.Join(rows, "\n"), "Enter to apply, esc to cancel.")
}

func (m TimerModel) renderCustomModal() string {
	prompt := fmt.Sprintf("Focus minutes (%d-%d)", config.CustomWorkMinMinutes, config.CustomWorkMaxMinutes)
	if m.modal.customStage == 1 {
		prompt = fmt.Sprintf("Break minutes (%d-%d)", config.CustomBreakMinMinutes, config.CustomBreakMaxMinutes)
	}
	body := prompt + "\n" + m.theme.Input.Render(m.inputs.minutes.View())
	if m.modal.customStage == 1 {
		body = m.theme.Dim.Render(fmt.Sprintf("Focus: %d min", m.modal.customWork)) + "\n" + body
	}
	return m.modalFrame("Custom timer", body, "Enter to confirm, esc to cancel.")
}

func (m TimerModel) renderBackgroundModal() string {
	var rows []string
	for i, key := range m.modal.backgroundNames {
		name := Themes[key].Name
		if i == m.modal.backgroundCursor {
			rows = append(rows, m.theme.Focused.Render("> "+name))
			continue
		}
		rows = append(rows, "  "+name)
	}
	return m.modalFrame("Background", strings.Join(rows, "\n"), "Enter to apply, esc to cancel.")
}
