package database

import (
	"context"

	"github.com/google/uuid"

	"github.com/mahsaveysi0808-star/Focus-to-do/internal/models"
)

// RecordSession persists a finished or cancelled session and returns
// its ID. A blank ID gets a generated UUID.
func (d *Database) RecordSession(ctx context.Context, session models.FocusSession) (string, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Preset == "" {
		session.Preset = models.PresetCustom
	}
	day := session.StartedAt.Format("2006-01-02")

	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO sessions (id, phase, preset, planned_seconds, actual_seconds, status, day, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.Phase, session.Preset, session.PlannedSeconds,
		session.ActualSeconds, session.Status, day, session.StartedAt, session.EndedAt,
	)
	if err != nil {
		return "", wrapSessionErr("record", session.ID, err)
	}
	return session.ID, nil
}

// GetSessionsForDay retrieves every session started on the given local
// day (formatted 2006-01-02), oldest first.
func (d *Database) GetSessionsForDay(ctx context.Context, date string) ([]models.FocusSession, error) {
	query, args := NewSessionQuery().WhereDay(date).OrderBy("started_at ASC").Build()
	return d.querySessions(ctx, "list day", query, args...)
}

// GetRecentSessions retrieves the most recently started sessions,
// newest first.
func (d *Database) GetRecentSessions(ctx context.Context, limit int) ([]models.FocusSession, error) {
	query, args := NewSessionQuery().OrderBy("started_at DESC").Limit(limit).Build()
	return d.querySessions(ctx, "list recent", query, args...)
}

// GetDailySummary aggregates one day of history. Completed and
// Cancelled count focus sessions only; breaks contribute seconds but
// not pomodoro counts.
func (d *Database) GetDailySummary(ctx context.Context, date string) (models.DailySummary, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	summary := models.DailySummary{Date: date}
	err := d.DB.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN phase = 'focus' THEN actual_seconds ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN phase = 'break' THEN actual_seconds ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN phase = 'focus' AND status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN phase = 'focus' AND status = 'cancelled' THEN 1 ELSE 0 END), 0)
		FROM sessions WHERE day = ?`, date).
		Scan(&summary.FocusSeconds, &summary.BreakSeconds, &summary.Completed, &summary.Cancelled)
	if err != nil {
		return summary, wrapSessionErr("summarize", date, err)
	}
	return summary, nil
}

func (d *Database) querySessions(ctx context.Context, op string, query string, args ...interface{}) ([]models.FocusSession, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSessionErr(op, "", err)
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		var s models.FocusSession
		if err := rows.Scan(&s.ID, &s.Phase, &s.Preset, &s.PlannedSeconds, &s.ActualSeconds, &s.Status, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, wrapSessionErr(op, s.ID, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
