package config

// Default countdown pair (the classic 25/5 preset).
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
)

// Custom preset bounds. Values outside these ranges are clamped at the
// preset-selection entry point, never inside the countdown itself.
const (
	CustomWorkMinMinutes  = 0
	CustomWorkMaxMinutes  = 25
	CustomBreakMinMinutes = 1
	CustomBreakMaxMinutes = 15
)

// Persisted settings keys.
const (
	KeyWorkMinutes        = "work_minutes"
	KeyBreakMinutes       = "break_minutes"
	KeySelectedPreset     = "selected_preset"
	KeySelectedBackground = "selected_background"
	KeyCustomWorkMinutes  = "custom_work_minutes"
	KeyCustomBreakMinutes = "custom_break_minutes"
)

// Database/application settings.
const (
	AppName    = "focus-to-do"
	DBFileName = "focus.db"

	// DefaultBackground is used until the user picks one.
	DefaultBackground = "tomato"
)
