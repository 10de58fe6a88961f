// Package models defines the documents werk persists.
package models

import "time"

// Status is the lifecycle status of a work session.
type Status string

const (
	StatusInactive Status = "inactive"
	StatusActive   Status = "active"
)

// SessionState is the singleton document describing the running session.
// Its absence means no session is active.
type SessionState struct {
	StartTime   time.Time `json:"start_time"`
	LastUpdated time.Time `json:"last_updated"`
	ID          string    `json:"id"`
	Status      Status    `json:"status"`
	Goal        string    `json:"goal,omitempty"`
	// PausedDuration is in seconds. Nothing pauses a session yet, so it is
	// carried through unchanged.
	PausedDuration int64 `json:"paused_duration"`
	// WorkDuration is the configured session length (seconds) when the
	// session started.
	WorkDuration int64 `json:"work_duration"`
}

// Active reports whether s describes a running session.
func (s *SessionState) Active() bool {
	return s != nil && s.Status == StatusActive
}

// Elapsed returns the raw wall-clock time since the session started.
func (s *SessionState) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// Worked returns the elapsed time minus any paused time.
func (s *SessionState) Worked(now time.Time) time.Duration {
	return s.Elapsed(now) - time.Duration(s.PausedDuration)*time.Second
}

// Matches reports whether s is the session identified by id and start.
func (s *SessionState) Matches(id string, start time.Time) bool {
	return s.Active() && s.ID == id && s.StartTime.Equal(start)
}

// ArchiveRecord summarises one completed session. Records are appended to
// the monthly archive and never modified.
type ArchiveRecord struct {
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	SessionID         string    `json:"session_id"`
	Goal              string    `json:"goal,omitempty"`
	TerminationReason string    `json:"termination_reason,omitempty"`
	Project           string    `json:"project,omitempty"`
	DurationSeconds   int64     `json:"duration_seconds"`
	PomodoroCount     int       `json:"pomodoro_count"`
	Violations        int       `json:"violations"`
	EarlyStop         bool      `json:"early_stop"`
}

// Duration returns the recorded session length.
func (r *ArchiveRecord) Duration() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}

// TimerHandle identifies the background scheduler serving a session.
type TimerHandle struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	SessionID   string    `json:"session_id"`
	PID         int       `json:"pid"`
}
