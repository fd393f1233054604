// Package database persists timer settings and focus-session history
// in a local SQLite file.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/util"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite handle used by the app.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (or creates) the database at dbFile and brings the schema
// up to date.
func Open(ctx context.Context, dbFile string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbFile)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbFile, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database %s: %w", dbFile, err)
	}

	d := &Database{DB: sqlDB, dbFile: dbFile}
	if err := d.createTables(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			phase TEXT NOT NULL,
			preset TEXT NOT NULL DEFAULT 'custom',
			planned_seconds INTEGER NOT NULL,
			actual_seconds INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			day TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// migrate upgrades databases created before the columns below existed.
// Re-running an applied step yields a duplicate-column error, which is
// expected and skipped.
func (d *Database) migrate(ctx context.Context) {
	steps := []string{
		"ALTER TABLE sessions ADD COLUMN preset TEXT DEFAULT 'custom'",
		"ALTER TABLE sessions ADD COLUMN actual_seconds INTEGER DEFAULT 0",
		"ALTER TABLE sessions ADD COLUMN day TEXT",
	}
	for _, step := range steps {
		if _, err := d.DB.ExecContext(ctx, step); err != nil && !isIgnorableMigrationErr(err) {
			util.LogError("migrate", err)
		}
	}

	// The index lands after the ALTERs so that databases predating the
	// day column can still be upgraded.
	if _, err := d.DB.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_sessions_day ON sessions(day)"); err != nil {
		util.LogError("migrate index", err)
	}
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}
