package database

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpenMigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	if _, err := Open(ctx, db.dbFile); err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting("work_minutes"); ok {
		t.Fatalf("expected absent key to report not found")
	}
	if err := db.SetSetting("work_minutes", "25"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	value, ok := db.GetSetting("work_minutes")
	if !ok || value != "25" {
		t.Fatalf("GetSetting = (%q, %v), want (\"25\", true)", value, ok)
	}

	if err := db.SetSetting("work_minutes", "45"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	value, ok = db.GetSetting("work_minutes")
	if !ok || value != "45" {
		t.Fatalf("GetSetting after overwrite = (%q, %v), want (\"45\", true)", value, ok)
	}
}

func TestGetSettingDefault(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if got := db.GetSettingDefault("selected_background", "tomato"); got != "tomato" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if err := db.SetSetting("selected_background", "forest"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got := db.GetSettingDefault("selected_background", "tomato"); got != "forest" {
		t.Fatalf("expected stored value, got %q", got)
	}
}

func TestConcurrentSettingWrites(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := db.SetSetting("work_minutes", fmt.Sprintf("%d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent write failed: %v", err)
	}
	if _, ok := db.GetSetting("work_minutes"); !ok {
		t.Fatalf("expected a value to survive concurrent writes")
	}
}
