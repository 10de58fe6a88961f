package session

import (
	"time"

	"github.com/ayoisaiah/werk/internal/models"
)

// StatusResult reports whether a session is running and, if so, its
// progress.
type StatusResult struct {
	StartTime        *time.Time       `json:"start_time,omitempty"`
	Status           models.Status    `json:"status"`
	SessionID        string           `json:"session_id,omitempty"`
	Goal             string           `json:"goal,omitempty"`
	Project          string           `json:"project,omitempty"`
	BreakType        models.BreakType `json:"break_type_required,omitempty"`
	ElapsedSeconds   int64            `json:"elapsed_seconds"`
	RemainingSeconds int64            `json:"remaining_seconds"`
	Violations       int              `json:"violations"`
	BreakRequired    bool             `json:"break_required"`
}

// Active reports whether the result describes a running session.
func (r *StatusResult) Active() bool {
	return r.Status == models.StatusActive
}

// Elapsed returns the raw elapsed time as a duration.
func (r *StatusResult) Elapsed() time.Duration {
	return time.Duration(r.ElapsedSeconds) * time.Second
}

// Remaining returns the time left in the session as a duration.
func (r *StatusResult) Remaining() time.Duration {
	return time.Duration(r.RemainingSeconds) * time.Second
}

// ScoreResult is the focus score of the running session.
type ScoreResult struct {
	SessionID      string `json:"session_id,omitempty"`
	Score          int    `json:"score"`
	ElapsedMinutes int    `json:"elapsed_minutes"`
}

// active returns the running session. A state that was already archived by
// an interrupted stop is purged and reported as absent.
func (c *Controller) active() (*models.SessionState, error) {
	state, err := c.state()
	if err != nil || !state.Active() {
		return nil, err
	}

	running, err := c.reconcile(state)
	if err != nil || !running {
		return nil, err
	}

	return state, nil
}

// Status reports the current session. An inactive result is not an error.
// Elapsed time is raw wall-clock time: paused time is not subtracted.
func (c *Controller) Status() (*StatusResult, error) {
	state, err := c.active()
	if err != nil {
		return nil, err
	}

	enfState, err := c.engine.State()
	if err != nil {
		return nil, err
	}

	if state == nil {
		return &StatusResult{
			Status:        models.StatusInactive,
			BreakRequired: enfState.BreakRequired,
			BreakType:     enfState.BreakTypeRequired,
		}, nil
	}

	now := c.clock.Now()
	remaining := max(c.workDuration(state)-state.Worked(now), 0)
	start := state.StartTime

	return &StatusResult{
		StartTime:        &start,
		Status:           models.StatusActive,
		SessionID:        state.ID,
		Goal:             state.Goal,
		Project:          enfState.Project,
		ElapsedSeconds:   int64(max(state.Elapsed(now), 0) / time.Second),
		RemainingSeconds: int64(remaining / time.Second),
		Violations:       enfState.Violations,
	}, nil
}

// FocusScore scores the running session by the whole minutes worked so
// far. Without a session the score is 0 and ErrNotActive is returned.
func (c *Controller) FocusScore() (*ScoreResult, error) {
	state, err := c.active()
	if err != nil {
		return nil, err
	}

	if state == nil {
		return &ScoreResult{}, ErrNotActive
	}

	mins := int(max(state.Worked(c.clock.Now()), 0) / time.Minute)

	return &ScoreResult{
		SessionID:      state.ID,
		Score:          c.score.Score(mins),
		ElapsedMinutes: mins,
	}, nil
}
