package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/database"
)

const backupFilePrefix = "focus-backup-"

// WriteBackupFile exports the full archive into dir, encrypting when a
// passphrase is given. Returns the path of the written file.
func WriteBackupFile(ctx context.Context, db Database, dir, passphrase string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	opts := database.ExportOptions{
		EncryptOutput: passphrase != "",
		Passphrase:    passphrase,
	}
	payload, err := db.ExportBackup(ctx, opts)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s%s.json", backupFilePrefix, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("write backup file: %w", err)
	}
	return path, nil
}

// ImportLatestBackup restores the newest backup archive found in dir.
// Returns the path of the archive that was applied.
func ImportLatestBackup(ctx context.Context, db Database, dir, passphrase string) (string, error) {
	path, err := latestBackupPath(dir)
	if err != nil {
		return "", err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read backup file: %w", err)
	}
	if err := db.ImportBackup(ctx, payload, passphrase); err != nil {
		return "", err
	}
	return path, nil
}

// Backup names embed a sortable timestamp, so the lexicographically
// greatest name is the newest archive.
func latestBackupPath(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read export directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, backupFilePrefix) && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no backup archives in %s", dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}
