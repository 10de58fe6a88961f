// Package breaks runs the break that follows a work session, either as a
// terminal countdown or as a detached background wait
package breaks

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/werk/internal/apperr"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/notify"
	"github.com/ayoisaiah/werk/timer"
)

var errBreakInterrupted = &apperr.Error{
	Message: "break interrupted before it was over: the requirement is still pending",
}

// Starter starts a break of the given type and length.
type Starter interface {
	StartBreak(
		ctx context.Context,
		background bool,
		d time.Duration,
		t models.BreakType,
	) error
}

// Completer marks the pending break as taken.
type Completer interface {
	CompleteBreak() error
}

// Runner is the default Starter.
type Runner struct {
	Completer Completer
	Notifier  notify.Notifier
	// Executable is re-executed for background breaks. Defaults to the
	// running binary.
	Executable     string
	Message        string
	TwentyFourHour bool
}

// Args returns the command-line arguments that run a break in the
// background process.
func Args(d time.Duration, t models.BreakType) []string {
	return []string{
		"break",
		"--wait",
		"--type", string(t),
		"--duration", d.String(),
	}
}

// StartBreak runs the break. A background break returns as soon as the
// detached process has started.
func (r *Runner) StartBreak(
	ctx context.Context,
	background bool,
	d time.Duration,
	t models.BreakType,
) error {
	if background {
		pid, err := timer.Spawn(r.Executable, Args(d, t)...)
		if err != nil {
			return err
		}

		slog.Debug("background break started",
			slog.Int("pid", pid),
			slog.String("type", string(t)),
			slog.Duration("duration", d),
		)

		return nil
	}

	return r.countdown(ctx, d, t)
}

// Wait blocks for the length of the break without any terminal output and
// completes it unless ctx is cancelled first.
func (r *Runner) Wait(ctx context.Context, d time.Duration, t models.BreakType) error {
	wait := time.NewTimer(d)
	defer wait.Stop()

	select {
	case <-ctx.Done():
		return errBreakInterrupted
	case <-wait.C:
	}

	return r.complete(t)
}

func (r *Runner) countdown(
	ctx context.Context,
	d time.Duration,
	t models.BreakType,
) error {
	m := newModel(d, t, r.Message, r.TwentyFourHour)

	p := tea.NewProgram(m, tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(*model); !ok || !fm.completed {
		return errBreakInterrupted
	}

	return r.complete(t)
}

func (r *Runner) complete(t models.BreakType) error {
	if err := r.Completer.CompleteBreak(); err != nil {
		return err
	}

	n := r.Notifier
	if n == nil {
		n = notify.Discard
	}

	title := "Short break over"
	if t == models.LongBreak {
		title = "Long break over"
	}

	err := n.Notify(title, "It's time to refocus and get back to work!")
	if err != nil {
		slog.Warn("break notification failed", slog.Any("error", err))
	}

	return nil
}
