package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
)

// Navigation menu entries. Timer and Statistics switch views; the rest
// are placeholders until those screens exist.
var menuItems = []string{"Timer", "Statistics", "Settings", "About"}

func (m TimerModel) handleModalInputMenu(msg tea.Msg) (TimerModel, tea.Cmd, bool) {
	if !m.modal.menuOpen {
		return m, nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch key.String() {
	case "up", "k":
		if m.modal.menuCursor > 0 {
			m.modal.menuCursor--
		}
	case "down", "j":
		if m.modal.menuCursor < len(menuItems)-1 {
			m.modal.menuCursor++
		}
	}
	return m, nil, true
}

func (m TimerModel) handleModalConfirmMenu() (TimerModel, tea.Cmd, bool) {
	if !m.modal.menuOpen {
		return m, nil, false
	}
	cursor := m.modal.menuCursor
	m = m.closeModals()
	switch menuItems[cursor] {
	case "Timer":
		m.mode = ModeTimer
	case "Statistics":
		m.refreshStats()
		m.mode = ModeStats
	case "About":
		m.Message = config.AppName + " " + versionLabel()
	default:
		m.Message = menuItems[cursor] + " is not yet available."
	}
	return m, nil, true
}
