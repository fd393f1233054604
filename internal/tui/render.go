package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m TimerModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return m.renderError()
	}
	if m.modal.IsOpen() {
		return m.renderModalOverlay()
	}
	if m.mode == ModeStats {
		return m.renderStats()
	}
	if m.fullscreen {
		return m.renderFullscreen()
	}
	return m.renderTimer()
}

// renderFullscreen shows only the dial, centered in the window.
func (m TimerModel) renderFullscreen() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderDial())
}

func (m TimerModel) renderTimer() string {
	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)

	sections := []string{
		center.Render(m.renderHeader()),
		"",
		center.Render(m.renderDial()),
		center.Render(m.renderProgress()),
		center.Render(m.renderStatusLine()),
	}
	if m.Message != "" {
		sections = append(sections, "", center.Render(m.theme.Highlight.Render(m.Message)))
	}
	sections = append(sections, "", center.Render(m.theme.Dim.Render(m.registry.HelpForMode(m.mode))))
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m TimerModel) renderError() string {
	body := m.theme.FocusAccent.Render("Error: "+m.err.Error()) +
		"\n\n" + m.theme.Dim.Render("press any key to continue")
	return m.theme.Base.Render(body)
}
