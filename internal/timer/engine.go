// Package timer implements the focus/break countdown core: a phase state
// machine, a tick-driven countdown, and the preset-to-duration mapping.
// The engine owns its state exclusively; the presentation layer issues
// commands and reads projections on the same event stream, so no locking
// is involved anywhere in this package.
package timer

import (
	"strconv"
	"strings"
	"time"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/util"
)

// Engine holds the session state and the active durations. None of its
// operations can fail; out-of-range custom durations are clamped at the
// preset-selection entry point and store write failures are logged, never
// propagated.
type Engine struct {
	store    SettingsStore
	notifier Notifier

	phase     models.Phase
	remaining int
	running   bool
	startedAt time.Time

	workMinutes  int
	breakMinutes int
	preset       models.Preset
}

// New builds an engine over the given store, restores the persisted
// durations and preset selection, and leaves the engine Idle with a full
// work countdown. notifier may be nil.
func New(store SettingsStore, notifier Notifier) *Engine {
	e := &Engine{
		store:        store,
		notifier:     notifier,
		workMinutes:  config.DefaultWorkMinutes,
		breakMinutes: config.DefaultBreakMinutes,
		preset:       models.PresetClassic,
	}
	e.loadSettings()
	e.Configure(models.PhaseIdle)
	return e
}

func (e *Engine) loadSettings() {
	if raw, ok := e.store.GetSetting(config.KeySelectedPreset); ok {
		if p, valid := ParsePreset(raw); valid {
			e.preset = p
		}
	}
	if opt, fixed := FixedPair(e.preset); fixed {
		e.workMinutes, e.breakMinutes = opt.WorkMinutes, opt.BreakMinutes
		return
	}
	e.workMinutes = clampWork(e.settingInt(config.KeyWorkMinutes, config.DefaultWorkMinutes))
	e.breakMinutes = clampBreak(e.settingInt(config.KeyBreakMinutes, config.DefaultBreakMinutes))
}

// Reload re-reads the persisted durations and preset selection, then
// resets to Idle. Used after a backup restore replaces the settings.
func (e *Engine) Reload() {
	e.loadSettings()
	e.Configure(models.PhaseIdle)
}

// Configure enters phase with a full countdown, not running. Used both to
// initialize a phase and to reset it without starting the clock.
func (e *Engine) Configure(phase models.Phase) {
	e.phase = phase
	e.running = false
	e.remaining = e.durationFor(phase)
}

// Start always (re)enters Focus at full duration, discarding any partial
// progress, and begins counting down.
func (e *Engine) Start() {
	e.Configure(models.PhaseFocus)
	e.running = true
	e.startedAt = time.Now()
}

// Pause halts the countdown in place. Idempotent.
func (e *Engine) Pause() {
	e.running = false
}

// Resume continues the countdown from the current remainder. No-op while
// Idle.
func (e *Engine) Resume() {
	if e.phase != models.PhaseIdle {
		e.running = true
	}
}

// Stop abandons the session: Idle, not running, remainder reset to the
// current work duration regardless of which phase was active.
func (e *Engine) Stop() {
	e.Configure(models.PhaseIdle)
}

// Tick advances the countdown by one second. Silent no-op while paused or
// Idle. The tick that exhausts the countdown is the completion edge: the
// engine stops, signals the notifier once (which observes the finished
// phase at progress 1.0), then rolls over — Focus into a fresh Break,
// anything else into a fresh Focus.
func (e *Engine) Tick() {
	if !e.running {
		return
	}
	if e.remaining > 0 {
		e.remaining--
		if e.remaining > 0 {
			return
		}
	}
	finished := e.phase
	e.running = false
	if e.notifier != nil {
		e.notifier.SessionComplete(finished)
	}
	if finished == models.PhaseFocus {
		e.Configure(models.PhaseBreak)
	} else {
		e.Configure(models.PhaseFocus)
	}
}

// ApplyPreset switches the active durations to the preset's pair, or to
// the clamped custom pair when preset is Custom, persists the selection,
// and resets into a fresh Focus countdown. An in-progress session is
// discarded.
func (e *Engine) ApplyPreset(preset models.Preset, customWork, customBreak int) {
	if opt, fixed := FixedPair(preset); fixed {
		e.preset = preset
		e.workMinutes, e.breakMinutes = opt.WorkMinutes, opt.BreakMinutes
	} else {
		e.preset = models.PresetCustom
		e.workMinutes = clampWork(customWork)
		e.breakMinutes = clampBreak(customBreak)
		e.persist(config.KeyCustomWorkMinutes, strconv.Itoa(e.workMinutes))
		e.persist(config.KeyCustomBreakMinutes, strconv.Itoa(e.breakMinutes))
	}
	e.persist(config.KeyWorkMinutes, strconv.Itoa(e.workMinutes))
	e.persist(config.KeyBreakMinutes, strconv.Itoa(e.breakMinutes))
	e.persist(config.KeySelectedPreset, string(e.preset))
	e.Configure(models.PhaseFocus)
}

// CustomPair returns the persisted custom durations, clamped, falling back
// to the defaults when unset. Used to prefill the custom entry flow.
func (e *Engine) CustomPair() (workMinutes, breakMinutes int) {
	work := clampWork(e.settingInt(config.KeyCustomWorkMinutes, config.DefaultWorkMinutes))
	brk := clampBreak(e.settingInt(config.KeyCustomBreakMinutes, config.DefaultBreakMinutes))
	return work, brk
}

// Phase reports which interval is active.
func (e *Engine) Phase() models.Phase { return e.phase }

// Remaining reports the seconds left on the current countdown.
func (e *Engine) Remaining() int { return e.remaining }

// Running reports whether the countdown is advancing.
func (e *Engine) Running() bool { return e.running }

// Preset reports the selected preset identifier.
func (e *Engine) Preset() models.Preset { return e.preset }

// WorkMinutes reports the active focus duration in minutes.
func (e *Engine) WorkMinutes() int { return e.workMinutes }

// BreakMinutes reports the active break duration in minutes.
func (e *Engine) BreakMinutes() int { return e.breakMinutes }

// StartedAt reports when the session was last started. Informational; no
// logic consumes it.
func (e *Engine) StartedAt() time.Time { return e.startedAt }

// Duration reports the full countdown length for the active phase in
// seconds.
func (e *Engine) Duration() int { return e.durationFor(e.phase) }

// Progress reports countdown completion in [0,1]: 0 right after Configure,
// 1.0 exactly at the completion edge. Zero-length countdowns report 0.
func (e *Engine) Progress() float64 {
	d := e.durationFor(e.phase)
	if d == 0 {
		return 0
	}
	return float64(d-e.remaining) / float64(d)
}

// durationFor sizes a phase's countdown. Idle sizes to the work interval
// so that Stop leaves the dial showing a full focus countdown.
func (e *Engine) durationFor(phase models.Phase) int {
	if phase == models.PhaseBreak {
		return e.breakMinutes * 60
	}
	return e.workMinutes * 60
}

func (e *Engine) settingInt(key string, fallback int) int {
	raw, ok := e.store.GetSetting(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

func (e *Engine) persist(key, value string) {
	util.LogError("persist "+key, e.store.SetSetting(key, value))
}
