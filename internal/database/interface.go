package database

import (
	"context"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
)

// SettingsRepository defines key-value settings operations.
type SettingsRepository interface {
	GetSetting(key string) (string, bool)
	GetSettingDefault(key, fallback string) string
	SetSetting(key, value string) error
}

// SessionRepository defines session-history database operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, session models.FocusSession) (string, error)
	GetSessionsForDay(ctx context.Context, date string) ([]models.FocusSession, error)
	GetRecentSessions(ctx context.Context, limit int) ([]models.FocusSession, error)
	GetDailySummary(ctx context.Context, date string) (models.DailySummary, error)
}

// BackupRepository defines archive export/import operations.
type BackupRepository interface {
	ExportBackup(ctx context.Context, opts ExportOptions) ([]byte, error)
	ImportBackup(ctx context.Context, payload []byte, passphrase string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=database
type Repository interface {
	SettingsRepository
	SessionRepository
	BackupRepository
}

var _ Repository = (*Database)(nil)
