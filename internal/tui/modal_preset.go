package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/timer"
)

func (m TimerModel) handleModalInputPreset(msg tea.Msg) (TimerModel, tea.Cmd, bool) {
	if !m.modal.presetPicking {
		return m, nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch key.String() {
	case "up", "k":
		if m.modal.presetCursor > 0 {
			m.modal.presetCursor--
		}
	case "down", "j":
		if m.modal.presetCursor < len(timer.Presets)-1 {
			m.modal.presetCursor++
		}
	}
	return m, nil, true
}

func (m TimerModel) handleModalConfirmPreset() (TimerModel, tea.Cmd, bool) {
	if !m.modal.presetPicking {
		return m, nil, false
	}
	opt := timer.Presets[m.modal.presetCursor]
	if opt.ID == models.PresetCustom {
		// Hand off to the two-stage minutes entry, prefilled with the
		// last custom pair.
		work, _ := m.engine.CustomPair()
		m.modal.presetPicking = false
		m.modal.customActive = true
		m.modal.customStage = 0
		m.modal.customWork = work
		m.inputs.minutes.SetValue(strconv.Itoa(work))
		m.inputs.minutes.CursorEnd()
		m.inputs.minutes.Focus()
		return m, nil, true
	}
	m.engine.ApplyPreset(opt.ID, 0, 0)
	m = m.closeModals()
	m.Message = fmt.Sprintf("Preset applied: %s", opt.Label)
	return m, nil, true
}

func (m TimerModel) handleModalInputCustom(msg tea.Msg) (TimerModel, tea.Cmd, bool) {
	if !m.modal.customActive {
		return m, nil, false
	}
	var cmd tea.Cmd
	m.inputs.minutes, cmd = m.inputs.minutes.Update(msg)
	return m, cmd, true
}

func (m TimerModel) handleModalConfirmCustom() (TimerModel, tea.Cmd, bool) {
	if !m.modal.customActive {
		return m, nil, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(m.inputs.minutes.Value()))
	if err != nil {
		m.Message = "Enter minutes as a number."
		return m, nil, true
	}
	if m.modal.customStage == 0 {
		m.modal.customWork = value
		m.modal.customStage = 1
		_, brk := m.engine.CustomPair()
		m.inputs.minutes.SetValue(strconv.Itoa(brk))
		m.inputs.minutes.CursorEnd()
		return m, nil, true
	}
	m.engine.ApplyPreset(models.PresetCustom, m.modal.customWork, value)
	m = m.closeModals()
	m.Message = fmt.Sprintf("Custom timer set: %d min focus, %d min break",
		m.engine.WorkMinutes(), m.engine.BreakMinutes())
	return m, nil, true
}
