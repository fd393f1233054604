package config

// Layout constants.
const (
	// TargetDialWidth is the preferred width for the countdown dial.
	TargetDialWidth = 40

	// MinDialWidth is the smallest dial the timer view will render.
	MinDialWidth = 16

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// DialSegments is the number of segments in the compact progress strip.
	DialSegments = 24
)

// Display limits.
const (
	// MaxHistoryRows limits sessions shown in the statistics pane.
	MaxHistoryRows = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxMinutesInputLength bounds the custom minutes text field.
	MaxMinutesInputLength = 3
)
