package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/config"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/timer"
)

// UI modes.
const (
	ModeTimer = 0
	ModeStats = 1
)

// ModalManager tracks modal-related UI state and selections.
type ModalManager struct {
	menuOpen   bool
	menuCursor int

	presetPicking bool
	presetCursor  int

	customActive bool
	customStage  int
	customWork   int

	backgroundPicking bool
	backgroundCursor  int
	backgroundNames   []string

	exportingBackup bool
	importingBackup bool
}

func newModalManager() *ModalManager {
	return &ModalManager{backgroundNames: BackgroundNames()}
}

func (mm *ModalManager) IsOpen() bool {
	return mm.menuOpen || mm.presetPicking || mm.customActive || mm.backgroundPicking ||
		mm.exportingBackup || mm.importingBackup
}

// inputManager groups the text fields the modals type into.
type inputManager struct {
	minutes    textinput.Model
	passphrase textinput.Model
}

// StatsState holds the data behind the statistics pane.
type StatsState struct {
	Summary models.DailySummary
	Recent  []models.FocusSession
	Err     error
}

// TimerModel is the root bubbletea model: a single timer screen with
// modal pickers layered on top.
type TimerModel struct {
	ctx    context.Context
	db     Database
	engine *timer.Engine

	theme    Theme
	progress progress.Model
	registry *HandlerRegistry

	mode       int
	fullscreen bool

	modal  *ModalManager
	inputs inputManager
	stats  StatsState

	err           error
	Message       string
	width, height int
}

func NewTimerModel(ctx context.Context, db Database, engine *timer.Engine) TimerModel {
	mi := textinput.New()
	mi.Placeholder = "minutes"
	mi.CharLimit = config.MaxMinutesInputLength
	mi.Width = 10

	pi := textinput.New()
	pi.Placeholder = "passphrase (blank = plain)"
	pi.EchoMode = textinput.EchoPassword
	pi.EchoCharacter = '*'
	pi.Width = 30

	m := TimerModel{
		ctx:      ctx,
		db:       db,
		engine:   engine,
		theme:    ResolveTheme(db.GetSettingDefault(config.KeySelectedBackground, config.DefaultBackground)),
		progress: progress.New(progress.WithDefaultGradient()),
		registry: newKeyRegistry(),
		modal:    newModalManager(),
		inputs:   inputManager{minutes: mi, passphrase: pi},
	}
	m.progress.Width = config.TargetDialWidth
	return m
}

func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// refreshStats reloads today's summary and the recent history rows.
func (m *TimerModel) refreshStats() {
	today := time.Now().Format("2006-01-02")
	summary, err := m.db.GetDailySummary(m.ctx, today)
	if err != nil {
		m.stats.Err = err
		return
	}
	recent, err := m.db.GetRecentSessions(m.ctx, config.MaxHistoryRows)
	if err != nil {
		m.stats.Err = err
		return
	}
	m.stats = StatsState{Summary: summary, Recent: recent}
}

// recordSession writes one finished or cancelled phase into history.
// The start timestamp is reconstructed from the end so that pauses do
// not inflate the recorded length.
func (m *TimerModel) recordSession(phase models.Phase, planned, actual int, status models.SessionStatus) {
	ended := time.Now()
	started := ended.Add(-time.Duration(actual) * time.Second)
	session := models.FocusSession{
		Phase:          phase,
		Preset:         m.engine.Preset(),
		PlannedSeconds: planned,
		ActualSeconds:  actual,
		Status:         status,
		StartedAt:      started,
		EndedAt:        &ended,
	}
	if _, err := m.db.RecordSession(m.ctx, session); err != nil {
		m.setStatusError(fmt.Sprintf("Error recording session: %v", err))
	}
}

func (m *TimerModel) setStatusError(msg string) {
	m.Message = msg
}
