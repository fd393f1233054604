package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// GenerateDailyReport renders one day's summary and session list as a
// PDF in dir. Returns the path of the written file.
func GenerateDailyReport(ctx context.Context, db Database, dir string, date time.Time) (string, error) {
	day := date.Format("2006-01-02")
	summary, err := db.GetDailySummary(ctx, day)
	if err != nil {
		return "", err
	}
	sessions, err := db.GetSessionsForDay(ctx, day)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Focus Report "+day, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Focus Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, day)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Focus time: "+FormatDuration(time.Duration(summary.FocusSeconds)*time.Second))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Break time: "+FormatDuration(time.Duration(summary.BreakSeconds)*time.Second))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Sessions completed: %d", summary.Completed))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Sessions cancelled: %d", summary.Cancelled))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Sessions")
	pdf.Ln(8)
	if len(sessions) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 6, "No sessions recorded.")
		pdf.Ln(6)
	} else {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(25, 7, "Start", "B", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, "Phase", "B", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, "Preset", "B", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, "Length", "B", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, "Status", "B", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, s := range sessions {
			pdf.CellFormat(25, 6, s.StartedAt.Format("15:04"), "", 0, "", false, 0, "")
			pdf.CellFormat(25, 6, string(s.Phase), "", 0, "", false, 0, "")
			pdf.CellFormat(30, 6, string(s.Preset), "", 0, "", false, 0, "")
			pdf.CellFormat(30, 6, FormatDuration(time.Duration(s.ActualSeconds)*time.Second), "", 0, "", false, 0, "")
			pdf.CellFormat(30, 6, string(s.Status), "", 1, "", false, 0, "")
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("focus-report-%s.pdf", day))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
