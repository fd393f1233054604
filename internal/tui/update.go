package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
)

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear error on keypress
	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.err = nil
			return m, nil
		}
	}
	// Transient status lines clear on the next keypress, which still acts.
	if m.Message != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Message = ""
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			target := config.TargetDialWidth
			if m.width < config.CompactModeThreshold {
				target = m.width / 2
			}
			if target < config.MinDialWidth {
				target = config.MinDialWidth
			}
			m.progress.Width = target
		}
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if next, cmd, handled := m.handleModalKey(msg); handled {
			return next, cmd
		}
		if next, cmd, handled := m.registry.Handle(m, msg.String()); handled {
			return next, cmd
		}
	default:
		if next, cmd, handled := m.handleModalKey(msg); handled {
			return next, cmd
		}
	}

	return m, nil
}

// handleTick advances the engine by one second. When the running phase
// hits zero the engine flips to the opposite phase, paused at full
// length; the finished phase goes into history.
func (m TimerModel) handleTick(_ TickMsg) (TimerModel, tea.Cmd) {
	prevPhase := m.engine.Phase()
	prevRunning := m.engine.Running()
	planned := m.engine.Duration()

	m.engine.Tick()

	if prevRunning && m.engine.Phase() != prevPhase {
		m.recordSession(prevPhase, planned, planned, models.SessionCompleted)
		if m.mode == ModeStats {
			m.refreshStats()
		}
		m.Message = nextPhasePrompt(m.engine.Phase())
	}
	return m, tickCmd()
}

func nextPhasePrompt(next models.Phase) string {
	if next == models.PhaseBreak {
		return "Focus complete. Press space to start the break."
	}
	return "Break over. Press space to start focusing."
}

// handleModalKey feeds input to whichever modal is open. The bool
// reports whether the message was consumed.
func (m TimerModel) handleModalKey(msg tea.Msg) (TimerModel, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.Type == tea.KeyEsc && m.modal.IsOpen() {
			return m.closeModals(), nil, true
		}
		if key.Type == tea.KeyEnter {
			if next, cmd, handled := m.handleModalConfirmMenu(); handled {
				return next, cmd, true
			}
			if next, cmd, handled := m.handleModalConfirmPreset(); handled {
				return next, cmd, true
			}
			if next, cmd, handled := m.handleModalConfirmCustom(); handled {
				return next, cmd, true
			}
			if next, cmd, handled := m.handleModalConfirmBackground(); handled {
				return next, cmd, true
			}
			if next, cmd, handled := m.handleModalConfirmBackup(); handled {
				return next, cmd, true
			}
		}
	}
	if next, cmd, handled := m.handleModalInputMenu(msg); handled {
		return next, cmd, true
	}
	if next, cmd, handled := m.handleModalInputPreset(msg); handled {
		return next, cmd, true
	}
	if next, cmd, handled := m.handleModalInputCustom(msg); handled {
		return next, cmd, true
	}
	if next, cmd, handled := m.handleModalInputBackground(msg); handled {
		return next, cmd, true
	}
	if next, cmd, handled := m.handleModalInputBackup(msg); handled {
		return next, cmd, true
	}
	return m, nil, false
}

func (m TimerModel) closeModals() TimerModel {
	m.modal.menuOpen = false
	m.modal.presetPicking = false
	m.modal.customActive = false
	m.modal.customStage = 0
	m.modal.backgroundPicking = false
	m.modal.exportingBackup = false
	m.modal.importingBackup = false
	m.inputs.minutes.Reset()
	m.inputs.passphrase.Reset()
	return m
}
