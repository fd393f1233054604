package tui

import (
	"context"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/database"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
)

// Database defines the persistence methods the TUI requires.
type Database interface {
	GetSetting(key string) (string, bool)
	GetSettingDefault(key, fallback string) string
	SetSetting(key, value string) error

	RecordSession(ctx context.Context, session models.FocusSession) (string, error)
	GetSessionsForDay(ctx context.Context, date string) ([]models.FocusSession, error)
	GetRecentSessions(ctx context.Context, limit int) ([]models.FocusSession, error)
	GetDailySummary(ctx context.Context, date string) (models.DailySummary, error)

	ExportBackup(ctx context.Context, opts database.ExportOptions) ([]byte, error)
	ImportBackup(ctx context.Context, payload []byte, passphrase string) error
}

var _ Database = (*database.Database)(nil)
