package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/testutil"
)

func TestGenerateDailyReport(t *testing.T) {
	ctx, m := setupTestTimer(t)
	dir := t.TempDir()
	now := time.Now()

	sessions := []models.FocusSession{
		testutil.NewSession().WithID("").WithStartedAt(now.Add(-2 * time.Hour)).Build(),
		testutil.NewSession().WithID("").WithPhase(models.PhaseBreak).
			WithDurations(300, 300).WithStartedAt(now.Add(-90 * time.Minute)).Build(),
		testutil.NewSession().WithID("").WithStatus(models.SessionCancelled).
			WithDurations(1500, 600).WithStartedAt(now.Add(-time.Hour)).Build(),
	}
	for _, s := range sessions {
		if _, err := m.db.RecordSession(ctx, s); err != nil {
			t.Fatalf("Failed to seed session: %v", err)
		}
	}

	path, err := GenerateDailyReport(ctx, m.db, dir, now)
	if err != nil {
		t.Fatalf("Failed to generate report: %v", err)
	}

	want := fmt.Sprintf("focus-report-%s.pdf", now.Format("2006-01-02"))
	if filepath.Base(path) != want {
		t.Errorf("Expected report named %s, got %s", want, filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("Expected a PDF document")
	}
	if len(data) == 0 {
		t.Error("Expected a non-empty report")
	}
}

func TestGenerateDailyReportEmptyDay(t *testing.T) {
	ctx, m := setupTestTimer(t)
	dir := t.TempDir()

	path, err := GenerateDailyReport(ctx, m.db, dir, time.Now())
	if err != nil {
		t.Fatalf("Failed to generate empty report: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected the report on disk: %v", err)
	}
}
