package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type ExportSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ExportSession struct {
	ID             string  `json:"id"`
	Phase          string  `json:"phase"`
	Preset         string  `json:"preset"`
	PlannedSeconds int     `json:"planned_seconds"`
	ActualSeconds  int     `json:"actual_seconds"`
	Status         string  `json:"status"`
	Day            string  `json:"day"`
	StartedAt      string  `json:"started_at"`
	EndedAt        *string `json:"ended_at,omitempty"`
}

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

type BackupArchive struct {
	Settings []ExportSetting `json:"settings"`
	Sessions []ExportSession `json:"sessions"`
}

func (d *Database) GetAllSettings(ctx context.Context) ([]ExportSetting, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	rows, err := d.DB.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExportSetting
	for rows.Next() {
		var s ExportSetting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *Database) GetAllSessionsExport(ctx context.Context) ([]ExportSession, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, phase, preset, planned_seconds, actual_seconds, status, day, started_at, ended_at
		FROM sessions ORDER BY started_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExportSession
	for rows.Next() {
		var s ExportSession
		var started time.Time
		var ended *time.Time
		if err := rows.Scan(&s.ID, &s.Phase, &s.Preset, &s.PlannedSeconds, &s.ActualSeconds, &s.Status, &s.Day, &started, &ended); err != nil {
			return nil, err
		}
		s.StartedAt = started.Format(time.RFC3339)
		if ended != nil {
			val := ended.Format(time.RFC3339)
			s.EndedAt = &val
		}
		out = append(out, s)
	}
	return out, nil
}

// ExportBackup serializes all settings and sessions to JSON, optionally
// sealed with a passphrase.
func (d *Database) ExportBackup(ctx context.Context, opts ExportOptions) ([]byte, error) {
	settings, err := d.GetAllSettings(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := d.GetAllSessionsExport(ctx)
	if err != nil {
		return nil, err
	}

	archive := BackupArchive{
		Settings: settings,
		Sessions: sessions,
	}
	jsonData, err := json.Marshal(archive)
	if err != nil {
		return nil, err
	}
	if opts.EncryptOutput && opts.Passphrase != "" {
		return encryptData(jsonData, opts.Passphrase)
	}
	return jsonData, nil
}

// ImportBackup loads an exported archive into the database. Encrypted
// payloads need the passphrase they were sealed with; plain payloads
// ignore it.
func (d *Database) ImportBackup(ctx context.Context, payload []byte, passphrase string) error {
	var probe struct {
		Encrypted bool `json:"encrypted"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return fmt.Errorf("import backup: %w", ErrBackupCorrupted)
	}
	if probe.Encrypted {
		if passphrase == "" {
			return ErrBackupEncrypted
		}
		decrypted, err := decryptData(payload, passphrase)
		if err != nil {
			return err
		}
		payload = decrypted
	}

	var archive BackupArchive
	if err := json.Unmarshal(payload, &archive); err != nil {
		return fmt.Errorf("import backup: %w", ErrBackupCorrupted)
	}

	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("import backup begin: %w", err)
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()

	for _, setting := range archive.Settings {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			setting.Key, setting.Value,
		); err != nil {
			return fmt.Errorf("import setting %s: %w", setting.Key, err)
		}
	}

	for _, session := range archive.Sessions {
		day := session.Day
		if day == "" && len(session.StartedAt) >= 10 {
			day = session.StartedAt[:10]
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO sessions
			(id, phase, preset, planned_seconds, actual_seconds, status, day, started_at, ended_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			session.ID, session.Phase, session.Preset, session.PlannedSeconds,
			session.ActualSeconds, session.Status, day, session.StartedAt, session.EndedAt,
		); err != nil {
			return fmt.Errorf("import session %s: %w", session.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import backup commit: %w", err)
	}
	commit = true
	return nil
}
