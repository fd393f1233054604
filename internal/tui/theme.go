package tui

import "github.com/charmbracelet/lipgloss"

// Theme is one selectable background: the palette the timer screen is
// drawn with.
type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	Header      lipgloss.Style
	Dial        lipgloss.Style
	FocusAccent lipgloss.Style
	BreakAccent lipgloss.Style
	Input       lipgloss.Style
	Focused     lipgloss.Style
	Dim         lipgloss.Style
	Highlight   lipgloss.Style
}

var Themes = map[string]Theme{
	"tomato": {
		Name:        "Tomato",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("203"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Align(lipgloss.Center),
		Dial:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		FocusAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		BreakAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("203")).Padding(0, 1).Width(30),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	},
	"forest": {
		Name:        "Forest",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("71"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true).Align(lipgloss.Center),
		Dial:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		FocusAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		BreakAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("71")).Padding(0, 1).Width(30),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("151")),
	},
	"ocean": {
		Name:        "Ocean",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("39"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true).Align(lipgloss.Center),
		Dial:        lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		FocusAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
		BreakAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1).Width(30),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	},
	"midnight": {
		Name:        "Midnight",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("60"),
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true).Align(lipgloss.Center),
		Dial:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		FocusAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		BreakAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1).Width(30),
		Focused:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("104")),
	},
}

// backgroundOrder fixes the picker order; map iteration would shuffle it.
var backgroundOrder = []string{"tomato", "forest", "ocean", "midnight"}

// BackgroundNames returns the selectable backgrounds in display order.
func BackgroundNames() []string {
	out := make([]string, len(backgroundOrder))
	copy(out, backgroundOrder)
	return out
}

// ResolveTheme maps a stored background name to its theme, falling back
// to the default when the name is unknown.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["tomato"]
}
