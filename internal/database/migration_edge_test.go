package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
)

func TestIsIgnorableMigrationErr(t *testing.T) {
	if !isIgnorableMigrationErr(errors.New("duplicate column name: preset")) {
		t.Fatalf("expected duplicate column error to be ignorable")
	}
	if isIgnorableMigrationErr(errors.New("no such table: sessions")) {
		t.Fatalf("expected non-duplicate error to be non-ignorable")
	}
}

func TestMigrateUpgradesOldSchema(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "old.db")

	raw, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open raw db failed: %v", err)
	}
	if _, err := raw.ExecContext(ctx, `CREATE TABLE sessions (
		id TEXT PRIMARY KEY,
		phase TEXT NOT NULL,
		planned_seconds INTEGER NOT NULL,
		status TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME
	)`); err != nil {
		t.Fatalf("create old schema failed: %v", err)
	}
	if err := raw.Close(); err != nil {
		t.Fatalf("close raw db failed: %v", err)
	}

	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open on old schema failed: %v", err)
	}
	defer db.Close()

	started := time.Now()
	if _, err := db.RecordSession(ctx, models.FocusSession{
		Phase:          models.PhaseFocus,
		Preset:         models.PresetClassic,
		PlannedSeconds: 1500,
		ActualSeconds:  1500,
		Status:         models.SessionCompleted,
		StartedAt:      started,
	}); err != nil {
		t.Fatalf("RecordSession after migration failed: %v", err)
	}

	sessions, err := db.GetSessionsForDay(ctx, started.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("GetSessionsForDay failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session after migration, got %d", len(sessions))
	}
}
