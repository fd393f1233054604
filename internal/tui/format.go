package tui

import (
	"fmt"
	"time"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
)

// FormatClock renders a second count as a countdown clock ("24:59",
// or "1:05:00" past the hour).
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatPhase returns the caption shown above the dial.
func FormatPhase(phase models.Phase, running bool) string {
	switch phase {
	case models.PhaseFocus:
		if running {
			return "FOCUS"
		}
		return "FOCUS (paused)"
	case models.PhaseBreak:
		if running {
			return "BREAK"
		}
		return "BREAK (paused)"
	default:
		return "READY"
	}
}

// FormatSessionRow renders one history line for the stats pane.
func FormatSessionRow(s models.FocusSession) string {
	mark := "x"
	if s.Status == models.SessionCompleted {
		mark = "ok"
	}
	length := FormatDuration(time.Duration(s.ActualSeconds) * time.Second)
	return fmt.Sprintf("%s  %-5s %-6s %6s  [%s]", s.StartedAt.Format("15:04"), s.Phase, s.Preset, length, mark)
}
