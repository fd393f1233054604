package timer

import (
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/util"
)

// PresetOption describes one member of the closed preset set.
type PresetOption struct {
	ID           models.Preset
	Label        string
	WorkMinutes  int
	BreakMinutes int
}

// Presets lists the closed set in picker order. The Custom entry carries
// the default pair only as a placeholder; its real durations are
// user-supplied and persisted separately.
var Presets = []PresetOption{
	{ID: models.PresetClassic, Label: "25 min / 5 min", WorkMinutes: 25, BreakMinutes: 5},
	{ID: models.PresetDeep, Label: "45 min / 10 min", WorkMinutes: 45, BreakMinutes: 10},
	{ID: models.PresetExtended, Label: "50 min / 10 min", WorkMinutes: 50, BreakMinutes: 10},
	{ID: models.PresetCustom, Label: "Custom", WorkMinutes: config.DefaultWorkMinutes, BreakMinutes: config.DefaultBreakMinutes},
}

// FixedPair returns the fixed durations for preset. The second return is
// false for Custom (user-supplied pair) and for unknown identifiers.
func FixedPair(preset models.Preset) (PresetOption, bool) {
	for _, opt := range Presets {
		if opt.ID == preset && opt.ID != models.PresetCustom {
			return opt, true
		}
	}
	return PresetOption{}, false
}

// ParsePreset maps a stored identifier back to a member of the closed set.
func ParsePreset(raw string) (models.Preset, bool) {
	for _, opt := range Presets {
		if string(opt.ID) == raw {
			return opt.ID, true
		}
	}
	return "", false
}

func clampWork(minutes int) int {
	return util.Clamp(minutes, config.CustomWorkMinMinutes, config.CustomWorkMaxMinutes)
}

func clampBreak(minutes int) int {
	return util.Clamp(minutes, config.CustomBreakMinMinutes, config.CustomBreakMaxMinutes)
}
