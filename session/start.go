package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/statefile"
	"github.com/ayoisaiah/werk/timer"
)

// StartResult describes a newly started session.
type StartResult struct {
	StartTime       time.Time `json:"start_time"`
	SessionID       string    `json:"session_id"`
	Goal            string    `json:"goal,omitempty"`
	Project         string    `json:"project,omitempty"`
	DurationSeconds int64     `json:"duration_seconds"`
	ReminderMinutes int       `json:"reminder_minutes"`
}

// Start begins a work session. It fails without touching any state when a
// break is still owed, when strict mode forbids starting from the current
// project, or when a session is already running.
func (c *Controller) Start(ctx context.Context, goal string) (*StartResult, error) {
	enf := c.cfg.Enforcement

	if enf.RequireBreak {
		if err := c.engine.CheckBreak(); err != nil {
			return nil, err
		}
	}

	project := c.currentProject()

	enfState, err := c.engine.State()
	if err != nil {
		return nil, err
	}

	if c.cfg.Strict() && enf.BlockProjectSwitch &&
		enfState.Project != "" && enfState.Project != project {
		return nil, enforce.ErrProjectBlocked.Fmt(enfState.Project, project)
	}

	existing, err := c.state()
	if err != nil {
		return nil, err
	}

	if existing.Active() {
		running, err := c.reconcile(existing)
		if err != nil {
			return nil, err
		}

		if running {
			return nil, ErrAlreadyActive.Fmt(
				existing.StartTime.Local().Format(time.Kitchen),
			)
		}
	}

	now := c.clock.Now()

	state := &models.SessionState{
		ID:           uuid.NewString(),
		Status:       models.StatusActive,
		StartTime:    now,
		LastUpdated:  now,
		Goal:         goal,
		WorkDuration: int64(c.cfg.Work.Duration / time.Second),
	}

	if err := statefile.Write(c.statePath, state); err != nil {
		return nil, err
	}

	if err := c.schedule(ctx, state); err != nil {
		if rerr := statefile.Remove(c.statePath); rerr != nil {
			slog.Error("unable to roll back session state", slog.Any("error", rerr))
		}

		return nil, err
	}

	slog.Info("session started",
		slog.String("session_id", state.ID),
		slog.String("goal", goal),
		slog.Duration("duration", c.cfg.Work.Duration),
	)

	c.notify("Work session started", startMessage(goal, c.cfg.Work.Message))

	return &StartResult{
		StartTime:       state.StartTime,
		SessionID:       state.ID,
		Goal:            goal,
		Project:         enfState.Project,
		DurationSeconds: state.WorkDuration,
		ReminderMinutes: c.cfg.Work.ReminderInterval,
	}, nil
}

// reconcile reports whether s is still running. A state left behind by a
// stop that archived the session but crashed before deleting the state is
// purged.
func (c *Controller) reconcile(s *models.SessionState) (bool, error) {
	rec, err := c.archive.Find(s.ID, s.StartTime)
	if err != nil {
		return false, err
	}

	if rec == nil {
		return true, nil
	}

	slog.Warn("removing session state that was already archived",
		slog.String("session_id", s.ID),
	)

	if err := c.commitCount(rec); err != nil {
		return false, err
	}

	c.cancelTimer(s.ID)

	return false, statefile.Remove(c.statePath)
}

func (c *Controller) schedule(ctx context.Context, s *models.SessionState) error {
	job := timer.Job{
		SessionID: s.ID,
		StartTime: s.StartTime,
		After:     c.cfg.Work.Duration,
		Every:     c.cfg.ReminderInterval(),
	}

	h, err := c.scheduler.Schedule(ctx, job)
	if err != nil {
		return err
	}

	if err := c.db.SaveTimer(h); err != nil {
		slog.Warn("unable to record timer handle",
			slog.String("session_id", s.ID),
			slog.Any("error", err),
		)
	}

	return nil
}

// cancelTimer stops the timer serving a session. Failures are logged only:
// a timer that survives checks the session before firing.
func (c *Controller) cancelTimer(sessionID string) {
	h, err := c.db.GetTimer(sessionID)
	if err != nil {
		slog.Warn("unable to look up timer", slog.Any("error", err))
		return
	}

	if h == nil {
		return
	}

	if err := c.scheduler.Cancel(h); err != nil {
		slog.Debug("timer cancellation failed", slog.Any("error", err))
	}

	if err := c.db.DeleteTimer(sessionID); err != nil {
		slog.Debug("unable to delete timer handle", slog.Any("error", err))
	}
}

func (c *Controller) notify(title, body string) {
	if err := c.notifier.Notify(title, body); err != nil {
		slog.Debug("notification failed",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
}

func startMessage(goal, fallback string) string {
	if goal == "" {
		return fallback
	}

	return fmt.Sprintf("%s: %s", fallback, goal)
}
