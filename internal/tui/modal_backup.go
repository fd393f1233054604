package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/database"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/util"
)

func (m TimerModel) handleModalInputBackup(msg tea.Msg) (TimerModel, tea.Cmd, bool) {
	if !m.modal.exportingBackup && !m.modal.importingBackup {
		return m, nil, false
	}
	var cmd tea.Cmd
	m.inputs.passphrase, cmd = m.inputs.passphrase.Update(msg)
	return m, cmd, true
}

func (m TimerModel) handleModalConfirmBackup() (TimerModel, tea.Cmd, bool) {
	switch {
	case m.modal.exportingBackup:
		passphrase := m.inputs.passphrase.Value()
		m = m.closeModals()
		path, err := WriteBackupFile(m.ctx, m.db, util.ExportsDir(config.AppName), passphrase)
		if err != nil {
			m.setStatusError(fmt.Sprintf("Error exporting backup: %v", err))
			return m, nil, true
		}
		m.Message = "Backup written to " + path
		return m, nil, true
	case m.modal.importingBackup:
		passphrase := m.inputs.passphrase.Value()
		m = m.closeModals()
		return m.importBackup(passphrase)
	}
	return m, nil, false
}

// importBackup restores the newest archive in the exports directory.
// Encrypted archives bounce once through the passphrase prompt.
func (m TimerModel) importBackup(passphrase string) (TimerModel, tea.Cmd, bool) {
	path, err := ImportLatestBackup(m.ctx, m.db, util.ExportsDir(config.AppName), passphrase)
	if errors.Is(err, database.ErrBackupEncrypted) {
		m.modal.importingBackup = true
		m.inputs.passphrase.Reset()
		m.inputs.passphrase.Focus()
		return m, nil, true
	}
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error importing backup: %v", err))
		return m, nil, true
	}
	m.engine.Reload()
	m.theme = ResolveTheme(m.db.GetSettingDefault(config.KeySelectedBackground, config.DefaultBackground))
	if m.mode == ModeStats {
		m.refreshStats()
	}
	m.Message = "Backup restored from " + path
	return m, nil, true
}
