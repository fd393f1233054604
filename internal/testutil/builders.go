package testutil

import (
	"time"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
	"github.com/mahsaveysi0808-star/Focus-to-do/internal/util"
)

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.FocusSession
}

func NewSession() *SessionBuilder {
	started := time.Now().Add(-25 * time.Minute)
	return &SessionBuilder{
		session: models.FocusSession{
			ID:             "test-session",
			Phase:          models.PhaseFocus,
			Preset:         models.PresetClassic,
			PlannedSeconds: 1500,
			ActualSeconds:  1500,
			Status:         models.SessionCompleted,
			StartedAt:      started,
			EndedAt:        util.Ptr(started.Add(25 * time.Minute)),
		},
	}
}

func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

func (b *SessionBuilder) WithPhase(p models.Phase) *SessionBuilder {
	b.session.Phase = p
	return b
}

func (b *SessionBuilder) WithPreset(p models.Preset) *SessionBuilder {
	b.session.Preset = p
	return b
}

func (b *SessionBuilder) WithStatus(s models.SessionStatus) *SessionBuilder {
	b.session.Status = s
	return b
}

// WithDurations sets the planned and actual lengths and moves the end
// timestamp to match.
func (b *SessionBuilder) WithDurations(planned, actual int) *SessionBuilder {
	b.session.PlannedSeconds = planned
	b.session.ActualSeconds = actual
	b.session.EndedAt = util.Ptr(b.session.StartedAt.Add(time.Duration(actual) * time.Second))
	return b
}

func (b *SessionBuilder) WithStartedAt(t time.Time) *SessionBuilder {
	b.session.StartedAt = t
	b.session.EndedAt = util.Ptr(t.Add(time.Duration(b.session.ActualSeconds) * time.Second))
	return b
}

func (b *SessionBuilder) Build() models.FocusSession {
	return b.session
}

// SummaryBuilder provides fluent API for creating test daily summaries.
type SummaryBuilder struct {
	summary models.DailySummary
}

func NewSummary() *SummaryBuilder {
	return &SummaryBuilder{
		summary: models.DailySummary{
			Date:         time.Now().Format("2006-01-02"),
			FocusSeconds: 1500,
			BreakSeconds: 300,
			Completed:    1,
		},
	}
}

func (b *SummaryBuilder) WithDate(date string) *SummaryBuilder {
	b.summary.Date = date
	return b
}

func (b *SummaryBuilder) WithFocusSeconds(s int) *SummaryBuilder {
	b.summary.FocusSeconds = s
	return b
}

func (b *SummaryBuilder) WithBreakSeconds(s int) *SummaryBuilder {
	b.summary.BreakSeconds = s
	return b
}

func (b *SummaryBuilder) WithCounts(completed, cancelled int) *SummaryBuilder {
	b.summary.Completed = completed
	b.summary.Cancelled = cancelled
	return b
}

func (b *SummaryBuilder) Build() models.DailySummary {
	return b.summary
}
