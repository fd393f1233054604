package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/timer"
)

func (m TimerModel) renderHeader() string {
	logo := m.theme.FocusAccent.Render("Focus") + " " + m.theme.Header.Render("to-do")
	meta := m.theme.Dim.Render(versionLabel() + "  " + time.Now().Format("Mon 2 Jan"))
	return logo + "\n" + meta
}

func (m TimerModel) renderDial() string {
	accent := m.theme.FocusAccent
	if m.engine.Phase() == models.PhaseBreak {
		accent = m.theme.BreakAccent
	}
	caption := accent.Render(FormatPhase(m.engine.Phase(), m.engine.Running()))
	clock := m.theme.Dial.Render(FormatClock(m.engine.Remaining()))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 4).
		Align(lipgloss.Center)
	return box.Render(caption + "\n\n" + clock + "\n\n" + m.renderSegments())
}

// renderProgress shows the gradient bar under the dial. Narrow windows
// skip it; the segment strip inside the dial already covers them.
func (m TimerModel) renderProgress() string {
	if m.width < config.CompactModeThreshold {
		return ""
	}
	return m.progress.ViewAs(m.engine.Progress())
}

func (m TimerModel) renderSegments() string {
	filled := int(m.engine.Progress()*float64(config.DialSegments) + 0.5)
	if filled > config.DialSegments {
		filled = config.DialSegments
	}
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", config.DialSegments-filled)
	return m.theme.Highlight.Render(bar)
}

func (m TimerModel) renderStatusLine() string {
	return m.theme.Dim.Render(fmt.Sprintf("%s  %d min focus / %d min break",
		presetLabel(m.engine.Preset()), m.engine.WorkMinutes(), m.engine.BreakMinutes()))
}

func (m TimerModel) renderStats() string {
	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	title := center.Render(m.theme.Header.Render("Today"))

	if m.stats.Err != nil {
		body := center.Render(m.theme.Dim.Render("Error loading stats: " + m.stats.Err.Error()))
		return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
	}

	s := m.stats.Summary
	summary := strings.Join([]string{
		"Focus    " + FormatDuration(time.Duration(s.FocusSeconds)*time.Second),
		"Break    " + FormatDuration(time.Duration(s.BreakSeconds)*time.Second),
		fmt.Sprintf("Done     %d", s.Completed),
		fmt.Sprintf("Stopped  %d", s.Cancelled),
	}, "\n")

	sections := []string{
		title,
		"",
		center.Render(summary),
		"",
		center.Render(m.theme.Header.Render("Recent")),
		"",
		center.Render(m.renderHistoryPane()),
		"",
		center.Render(m.theme.Dim.Render(m.registry.HelpForMode(m.mode))),
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m TimerModel) renderHistoryPane() string {
	if len(m.stats.Recent) == 0 {
		return m.theme.Dim.Render("No sessions recorded yet.")
	}
	maxWidth := m.width - 8
	if maxWidth < config.MinDialWidth {
		maxWidth = config.MinDialWidth
	}
	var rows []string
	for _, s := range m.stats.Recent {
		rows = append(rows, truncateLabel(FormatSessionRow(s), maxWidth))
	}
	return strings.Join(rows, "\n")
}

func truncateLabel(label string, maxWidth int) string {
	if maxWidth <= 0 || ansi.StringWidth(label) <= maxWidth {
		return label
	}
	return ansi.Truncate(label, maxWidth, config.TruncationSuffix)
}

func presetLabel(id models.Preset) string {
	for _, opt := range timer.Presets {
		if opt.ID == id {
			return opt.Label
		}
	}
	return string(id)
}
