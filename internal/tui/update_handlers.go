package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/timer"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/util"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "s", Description: "start", Modes: []int{ModeTimer}, Handler: handleStartKey})
	r.Register(KeyBinding{Key: " ", Description: "pause/resume", Modes: []int{ModeTimer}, Handler: handlePauseResumeKey})
	r.Register(KeyBinding{Key: "x", Description: "stop", Modes: []int{ModeTimer}, Handler: handleStopKey})
	r.Register(KeyBinding{Key: "p", Description: "preset", Modes: []int{ModeTimer}, Handler: handlePresetKey})
	r.Register(KeyBinding{Key: "b", Description: "background", Modes: []int{ModeTimer}, Handler: handleBackgroundKey})
	r.Register(KeyBinding{Key: "e", Description: "export", Modes: []int{ModeTimer}, Handler: handleExportKey})
	r.Register(KeyBinding{Key: "i", Description: "import", Modes: []int{ModeTimer}, Handler: handleImportKey})
	r.Register(KeyBinding{Key: "r", Description: "report", Handler: handleReportKey})
	r.Register(KeyBinding{Key: "g", Description: "stats", Handler: handleStatsKey})
	r.Register(KeyBinding{Key: "m", Description: "menu", Handler: handleMenuKey})
	r.Register(KeyBinding{Key: "f", Description: "fullscreen", Handler: handleFullscreenKey})
	r.Register(KeyBinding{Key: "q", Description: "quit", Handler: handleQuitKey})
	r.Register(KeyBinding{Key: "esc", Modes: []int{ModeStats}, Handler: handleStatsCloseKey})
	return r
}

func handleStartKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	m.cancelInFlight()
	m.engine.Start()
	return m, nil, true
}

func handlePauseResumeKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	switch {
	case m.engine.Running():
		m.engine.Pause()
	case m.engine.Phase() != models.PhaseIdle:
		m.engine.Resume()
	default:
		m.engine.Start()
	}
	return m, nil, true
}

func handleStopKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	if m.engine.Phase() == models.PhaseIdle {
		return m, nil, true
	}
	m.cancelInFlight()
	m.engine.Stop()
	m.Message = "Session stopped."
	return m, nil, true
}

func handlePresetKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	m.modal.presetPicking = true
	m.modal.presetCursor = presetIndex(m.engine.Preset())
	return m, nil, true
}

func handleBackgroundKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	m.modal.backgroundPicking = true
	m.modal.backgroundCursor = backgroundIndex(m.theme.Name, m.modal.backgroundNames)
	return m, nil, true
}

func handleExportKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	m.modal.exportingBackup = true
	m.inputs.passphrase.Reset()
	m.inputs.passphrase.Focus()
	return m, nil, true
}

func handleImportKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	return m.importBackup("")
}

func handleReportKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	path, err := GenerateDailyReport(m.ctx, m.db, util.ReportsDir(config.AppName), time.Now())
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error generating report: %v", err))
		return m, nil, true
	}
	m.Message = "Report written to " + path
	return m, nil, true
}

func handleStatsKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	if m.mode == ModeStats {
		m.mode = ModeTimer
		return m, nil, true
	}
	m.refreshStats()
	m.mode = ModeStats
	return m, nil, true
}

func handleStatsCloseKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	m.mode = ModeTimer
	return m, nil, true
}

func handleMenuKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	m.modal.menuOpen = true
	m.modal.menuCursor = 0
	if m.mode == ModeStats {
		m.modal.menuCursor = 1
	}
	return m, nil, true
}

func handleFullscreenKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	m.fullscreen = !m.fullscreen
	if m.fullscreen {
		return m, tea.EnterAltScreen, true
	}
	return m, tea.ExitAltScreen, true
}

func handleQuitKey(m TimerModel, _ string) (TimerModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

// cancelInFlight records the current phase as cancelled when any of it
// has actually elapsed. Stopping an untouched timer leaves no trace.
func (m *TimerModel) cancelInFlight() {
	phase := m.engine.Phase()
	if phase == models.PhaseIdle {
		return
	}
	planned := m.engine.Duration()
	elapsed := planned - m.engine.Remaining()
	if elapsed <= 0 {
		return
	}
	m.recordSession(phase, planned, elapsed, models.SessionCancelled)
}

func presetIndex(id models.Preset) int {
	for i, opt := range timer.Presets {
		if opt.ID == id {
			return i
		}
	}
	return 0
}

// backgroundIndex matches the theme's display name against the stored
// picker keys, which differ only in case.
func backgroundIndex(name string, names []string) int {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return 0
}
