package models

import "time"

// Phase enumerates which interval is active. Idle means no session has been
// started, or the previous one was explicitly stopped.
type Phase string

const (
	PhaseIdle  Phase = "idle"
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Preset identifies a named (workMinutes, breakMinutes) pair. The set is
// closed; Custom carries a user-supplied pair persisted separately.
type Preset string

const (
	PresetClassic  Preset = "25/5"
	PresetDeep     Preset = "45/10"
	PresetExtended Preset = "50/10"
	PresetCustom   Preset = "custom"
)

// SessionStatus enumerates the terminal states of a recorded interval.
type SessionStatus string

const (
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// FocusSession is one recorded run of a phase, written when the countdown
// completes or the user stops mid-interval.
type FocusSession struct {
	ID             string
	Phase          Phase
	Preset         Preset
	PlannedSeconds int
	ActualSeconds  int
	Status         SessionStatus
	StartedAt      time.Time
	EndedAt        *time.Time
}

// DailySummary aggregates one day's recorded sessions for the stats pane
// and the PDF report.
type DailySummary struct {
	Date         string
	FocusSeconds int
	BreakSeconds int
	Completed    int
	Cancelled    int
}
