package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
)

func (m TimerModel) handleModalInputBackground(msg tea.Msg) (TimerModel, tea.Cmd, bool) {
	if !m.modal.backgroundPicking {
		return m, nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch key.String() {
	case "up", "k":
		if m.modal.backgroundCursor > 0 {
			m.modal.backgroundCursor--
		}
	case "down", "j":
		if m.modal.backgroundCursor < len(m.modal.backgroundNames)-1 {
			m.modal.backgroundCursor++
		}
	}
	return m, nil, true
}

func (m TimerModel) handleModalConfirmBackground() (TimerModel, tea.Cmd, bool) {
	if !m.modal.backgroundPicking {
		return m, nil, false
	}
	name := m.modal.backgroundNames[m.modal.backgroundCursor]
	if err := m.db.SetSetting(config.KeySelectedBackground, name); err != nil {
		m = m.closeModals()
		m.setStatusError(fmt.Sprintf("Error saving background: %v", err))
		return m, nil, true
	}
	m.theme = ResolveTheme(name)
	m = m.closeModals()
	m.Message = "Background: " + name
	return m, nil, true
}
