package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/prompt"
	"github.com/ayoisaiah/werk/internal/statefile"
	"github.com/ayoisaiah/werk/internal/timeutil"
)

// StopResult describes a completed session.
type StopResult struct {
	StartTime       time.Time        `json:"start_time"`
	EndTime         time.Time        `json:"end_time"`
	SessionID       string           `json:"session_id"`
	Goal            string           `json:"goal,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	Project         string           `json:"project,omitempty"`
	BreakType       models.BreakType `json:"break_type"`
	DurationSeconds int64            `json:"duration_seconds"`
	BreakSeconds    int64            `json:"break_seconds"`
	PomodoroCount   int              `json:"pomodoro_count"`
	Violations      int              `json:"violations"`
	EarlyStop       bool             `json:"early_stop"`
	BreakRequired   bool             `json:"break_required"`
}

// IsEarly reports whether a session that ran for worked out of the planned
// duration stopped early. A session stopped exactly at the threshold is not
// early.
func IsEarly(worked, planned time.Duration, ratio float64) bool {
	return worked.Seconds() < ratio*planned.Seconds()
}

// Stop ends the active session, archives it and suggests the next break.
// Declining the early stop confirmation returns ErrStopCancelled and leaves
// the session running.
func (c *Controller) Stop(ctx context.Context) (*StopResult, error) {
	state, err := c.state()
	if err != nil {
		return nil, err
	}

	if !state.Active() {
		return nil, ErrNotActive
	}

	now := c.clock.Now()
	worked := max(state.Worked(now), 0)
	planned := c.workDuration(state)
	early := IsEarly(worked, planned, c.cfg.Settings.EarlyStopRatio)

	var reason string

	if early {
		reason, err = c.confirmEarlyStop(worked, planned)
		if err != nil {
			return nil, err
		}
	}

	enfState, err := c.engine.State()
	if err != nil {
		return nil, err
	}

	rec, err := c.archive.Find(state.ID, state.StartTime)
	if err != nil {
		return nil, err
	}

	if rec != nil {
		slog.Warn("session was already archived: reusing record",
			slog.String("session_id", state.ID),
		)
	} else {
		rec, err = c.record(state, now, worked, early, reason, enfState)
		if err != nil {
			return nil, err
		}
	}

	if err := c.commitCount(rec); err != nil {
		return nil, err
	}

	// the timer stays armed until the session is safely on disk
	c.cancelTimer(state.ID)

	if err := statefile.Remove(c.statePath); err != nil {
		return nil, err
	}

	breakType := models.BreakTypeFor(
		rec.PomodoroCount,
		c.cfg.Settings.LongBreakInterval,
	)
	breakDuration := c.cfg.BreakDuration(breakType)
	breakRequired := c.cfg.Strict() && c.cfg.Enforcement.RequireBreak

	if breakRequired {
		err = c.engine.RequireBreak(breakType, now)
	} else {
		err = c.engine.Clear()
	}

	if err != nil {
		slog.Warn("unable to update enforcement state", slog.Any("error", err))
	}

	slog.Info("session stopped",
		slog.String("session_id", state.ID),
		slog.Int("pomodoro_count", rec.PomodoroCount),
		slog.Bool("early_stop", early),
	)

	c.notify("Work session complete", stopMessage(rec, breakType, breakDuration))

	if err := c.runSessionCmd(ctx); err != nil {
		slog.Warn("session_cmd failed", slog.Any("error", err))
	}

	if c.cfg.Settings.AutoStartBreak && c.breaks != nil {
		err := c.breaks.StartBreak(ctx, true, breakDuration, breakType)
		if err != nil {
			slog.Warn("unable to start break", slog.Any("error", err))
		}
	}

	return &StopResult{
		StartTime:       state.StartTime,
		EndTime:         rec.EndTime,
		SessionID:       state.ID,
		Goal:            state.Goal,
		Reason:          rec.TerminationReason,
		Project:         rec.Project,
		BreakType:       breakType,
		DurationSeconds: rec.DurationSeconds,
		BreakSeconds:    int64(breakDuration / time.Second),
		PomodoroCount:   rec.PomodoroCount,
		Violations:      rec.Violations,
		EarlyStop:       rec.EarlyStop,
		BreakRequired:   breakRequired,
	}, nil
}

// confirmEarlyStop asks the operator to confirm an early stop and give an
// optional reason. Without a prompter the stop is confirmed.
func (c *Controller) confirmEarlyStop(worked, planned time.Duration) (string, error) {
	if !c.cfg.Settings.ConfirmEarlyStop || c.prompter == nil {
		return "", nil
	}

	outcome, err := c.prompter.Confirm(
		fmt.Sprintf(
			"Only %s of %s worked. Stop the session early?",
			timeutil.HumanDuration(worked),
			timeutil.HumanDuration(planned),
		),
		false,
	)
	if err != nil {
		return "", err
	}

	if outcome != prompt.Confirmed {
		slog.Debug("early stop not confirmed", slog.String("outcome", outcome.String()))
		return "", ErrStopCancelled
	}

	reason, err := c.prompter.Input("Reason for stopping early (optional)")
	if err != nil {
		slog.Debug("no early stop reason", slog.Any("error", err))
		return "", nil
	}

	return reason, nil
}

// record appends the session to the archive under the next pomodoro
// number. The counter itself is only advanced by commitCount.
func (c *Controller) record(
	state *models.SessionState,
	now time.Time,
	worked time.Duration,
	early bool,
	reason string,
	enfState *models.EnforcementState,
) (*models.ArchiveRecord, error) {
	count, err := c.db.Pomodoros()
	if err != nil {
		return nil, err
	}

	rec := &models.ArchiveRecord{
		StartTime:         state.StartTime,
		EndTime:           now,
		SessionID:         state.ID,
		Goal:              state.Goal,
		TerminationReason: reason,
		Project:           enfState.Project,
		DurationSeconds:   int64(worked / time.Second),
		PomodoroCount:     count + 1,
		Violations:        enfState.Violations,
		EarlyStop:         early,
	}

	if err := c.archive.Append(rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// commitCount advances the pomodoro counter to the number stored in rec.
// It is a no-op when the counter already moved past rec.PomodoroCount-1,
// so a stop retried after a failed commit counts the session once.
func (c *Controller) commitCount(rec *models.ArchiveRecord) error {
	count, err := c.db.Pomodoros()
	if err != nil {
		return err
	}

	if count != rec.PomodoroCount-1 {
		return nil
	}

	count, err = c.db.IncrementPomodoros()
	if err != nil {
		return err
	}

	if count != rec.PomodoroCount {
		slog.Warn("pomodoro counter moved while stopping",
			slog.Int("counter", count),
			slog.Int("archived", rec.PomodoroCount),
		)
	}

	return nil
}

// runSessionCmd runs the configured session_cmd after a session ends.
func (c *Controller) runSessionCmd(ctx context.Context) error {
	if c.cfg.Settings.SessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(c.cfg.Settings.SessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	// stdout carries the command result
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func stopMessage(
	rec *models.ArchiveRecord,
	breakType models.BreakType,
	breakDuration time.Duration,
) string {
	return fmt.Sprintf(
		"Pomodoro #%d done. Take a %s break (%s).",
		rec.PomodoroCount,
		breakType,
		timeutil.HumanDuration(breakDuration),
	)
}
