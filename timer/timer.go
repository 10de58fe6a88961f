// Package timer runs the background scheduler that serves a work session:
// a one-shot session-end alert and optional periodic reminders
package timer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/notify"
	"github.com/ayoisaiah/werk/internal/statefile"
)

// Job is the snapshot of a session taken when its timers are scheduled.
type Job struct {
	StartTime time.Time
	SessionID string
	// After is the delay from StartTime to the session-end alert.
	After time.Duration
	// Every is the reminder interval. Zero disables reminders.
	Every time.Duration
}

// Source returns the live session state, or nil when no session exists.
type Source func() (*models.SessionState, error)

// FileSource reads the session state from the file at path.
func FileSource(path string) Source {
	return func() (*models.SessionState, error) {
		var s models.SessionState

		found, err := statefile.Read(path, &s)
		if err != nil || !found {
			return nil, err
		}

		return &s, nil
	}
}

// Run blocks until the session described by job ends or ctx is cancelled.
// Before each alert the live state is compared against the job so that a
// stopped or replaced session never receives a stale notification.
// Reminders continue after the session-end alert while the session exists.
func Run(ctx context.Context, job Job, source Source, n notify.Notifier) {
	logger := slog.With(slog.String("session_id", job.SessionID))

	end := time.NewTimer(time.Until(job.StartTime.Add(job.After)))
	defer end.Stop()

	var (
		remind  *time.Timer
		remindC <-chan time.Time
	)

	if job.Every > 0 {
		remind = time.NewTimer(time.Until(nextReminder(job, time.Now())))
		defer remind.Stop()

		remindC = remind.C
	}

	endC := end.C

	for {
		select {
		case <-ctx.Done():
			logger.Debug("timer cancelled")
			return

		case <-endC:
			state, ok := live(job, source, logger)
			if !ok {
				return
			}

			deliver(logger, n, "Work session complete", endMessage(state))

			if remindC == nil {
				return
			}

			endC = nil

		case now := <-remindC:
			state, ok := live(job, source, logger)
			if !ok {
				return
			}

			mins := int(state.Elapsed(now).Minutes())

			deliver(logger, n, "Still on it?", reminderMessage(state, mins))

			remind.Reset(time.Until(nextReminder(job, now)))
		}
	}
}

// nextReminder returns the first reminder instant after now. Reminders are
// anchored to the session start so a late scheduler does not drift.
func nextReminder(job Job, now time.Time) time.Time {
	elapsed := now.Sub(job.StartTime)
	if elapsed < 0 {
		return job.StartTime.Add(job.Every)
	}

	k := elapsed/job.Every + 1

	return job.StartTime.Add(k * job.Every)
}

// live reports whether the session served by job is still running.
func live(
	job Job,
	source Source,
	logger *slog.Logger,
) (*models.SessionState, bool) {
	state, err := source()
	if err != nil {
		logger.Warn("unable to read session state", slog.Any("error", err))
		return nil, false
	}

	if !state.Matches(job.SessionID, job.StartTime) {
		logger.Debug("session no longer active: timer exiting")
		return nil, false
	}

	return state, true
}

func deliver(logger *slog.Logger, n notify.Notifier, title, body string) {
	if err := n.Notify(title, body); err != nil {
		logger.Warn(
			"notification failed",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}

func endMessage(s *models.SessionState) string {
	if s.Goal != "" {
		return fmt.Sprintf(
			"Time is up on %q. Run 'werk stop' to log it and take a break.",
			s.Goal,
		)
	}

	return "Run 'werk stop' to log the session and take a break."
}

func reminderMessage(s *models.SessionState, mins int) string {
	if s.Goal != "" {
		return fmt.Sprintf("%d minutes into %q.", mins, s.Goal)
	}

	return fmt.Sprintf("%d minutes into your work session.", mins)
}
