package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m TimerModel, key string) (TimerModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []int
	Priority    int
}

func (b KeyBinding) AppliesToMode(mode int) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m TimerModel, key string) (TimerModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToMode(m.mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsForMode(mode int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToMode(mode) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForMode builds the footer hint line for the given mode.
func (r *HandlerRegistry) HelpForMode(mode int) string {
	bindings := r.BindingsForMode(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		label := b.Key
		if label == " " {
			label = "space"
		}
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, "  ")
}
