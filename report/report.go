// Package report renders command results either as JSON documents or as
// human-readable terminal output
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/werk/internal/apperr"
	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/timeutil"
	"github.com/ayoisaiah/werk/internal/ui"
	"github.com/ayoisaiah/werk/session"
)

// Reported wraps an error whose outcome has already been printed, so that
// only its exit code is left to report.
type Reported struct {
	Err error
}

func (r *Reported) Error() string {
	return r.Err.Error()
}

func (r *Reported) Unwrap() error {
	return r.Err
}

// Printer writes command results to w and errors to errW.
type Printer struct {
	w          io.Writer
	errW       io.Writer
	timeFormat string
	json       bool
}

// NewPrinter returns a Printer. In JSON mode every result is a single JSON
// document on w, errors included.
func NewPrinter(w io.Writer, jsonMode bool) *Printer {
	return &Printer{
		w:          w,
		errW:       w,
		json:       jsonMode,
		timeFormat: "03:04 PM",
	}
}

// WithStderr sets a separate writer for errors in human mode.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// With24HourClock switches human-readable times to the 24-hour clock.
func (p *Printer) With24HourClock(enabled bool) *Printer {
	if enabled {
		p.timeFormat = "15:04"
	}

	return p
}

// IsJSON reports whether the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

func (p *Printer) clock(t time.Time) string {
	return t.Local().Format(p.timeFormat)
}

func (p *Printer) success(format string, args ...any) {
	pterm.Success.WithWriter(p.w).Printfln(format, args...)
}

func (p *Printer) info(format string, args ...any) {
	pterm.Info.WithWriter(p.w).Printfln(format, args...)
}

func (p *Printer) warn(format string, args ...any) {
	pterm.Warning.WithWriter(p.w).Printfln(format, args...)
}

func (p *Printer) field(name string, value any) {
	fmt.Fprintf(p.w, "  %-11s %v\n", name+":", value)
}

// Error prints err. JSON mode emits {"error": "...", "code": N}.
func (p *Printer) Error(err error) {
	var rep *Reported
	if errors.As(err, &rep) {
		return
	}

	if p.json {
		_ = p.writeJSON(map[string]any{
			"error": err.Error(),
			"code":  apperr.ExitCode(err),
		})

		return
	}

	pterm.Error.WithWriter(p.errW).Println(err)
}

// Started prints the result of starting a session.
func (p *Printer) Started(r *session.StartResult) error {
	if p.json {
		return p.writeJSON(r)
	}

	d := time.Duration(r.DurationSeconds) * time.Second

	p.success(
		"Work session started at %s for %s",
		p.clock(r.StartTime),
		timeutil.HumanDuration(d),
	)

	if r.Goal != "" {
		p.field("Goal", ui.Highlight(r.Goal))
	}

	if r.Project != "" {
		p.field("Project", ui.Cyan(r.Project))
	}

	if r.ReminderMinutes > 0 {
		p.field("Reminders", fmt.Sprintf("every %dm", r.ReminderMinutes))
	}

	return nil
}

// Stopped prints the result of stopping a session.
func (p *Printer) Stopped(r *session.StopResult) error {
	if p.json {
		return p.writeJSON(r)
	}

	worked := time.Duration(r.DurationSeconds) * time.Second

	p.success(
		"Session complete: %s worked. Pomodoro #%d",
		timeutil.HumanDuration(worked),
		r.PomodoroCount,
	)

	if r.Goal != "" {
		p.field("Goal", ui.Highlight(r.Goal))
	}

	if r.EarlyStop {
		reason := r.Reason
		if reason == "" {
			reason = "no reason given"
		}

		p.field("Stopped", ui.Red("early ("+reason+")"))
	}

	if r.Violations > 0 {
		p.field("Violations", ui.Red(r.Violations))
	}

	brk := timeutil.HumanDuration(time.Duration(r.BreakSeconds) * time.Second)

	if r.BreakRequired {
		p.warn(
			"A %s break (%s) is required before the next session: run 'werk break'",
			r.BreakType,
			brk,
		)

		return nil
	}

	p.info("Take a %s break (%s)", r.BreakType, brk)

	return nil
}

// Cancelled prints that an early stop was declined.
func (p *Printer) Cancelled() error {
	if p.json {
		return p.writeJSON(map[string]any{
			"status":    "cancelled",
			"cancelled": true,
		})
	}

	p.info("Stop cancelled: the session is still running")

	return nil
}

// Status prints the current session status.
func (p *Printer) Status(r *session.StatusResult) error {
	if p.json {
		return p.writeJSON(r)
	}

	if !r.Active() {
		p.info("No active work session")

		if r.BreakRequired {
			p.warn("A %s break is required before the next session", r.BreakType)
		}

		return nil
	}

	fmt.Fprintln(p.w, ui.Green("● Work session active"))

	p.field("Started", p.clock(*r.StartTime))
	p.field("Elapsed", timeutil.HumanDuration(r.Elapsed()))
	p.field("Remaining", timeutil.HumanDuration(r.Remaining()))

	if r.Goal != "" {
		p.field("Goal", ui.Highlight(r.Goal))
	}

	if r.Project != "" {
		p.field("Project", ui.Cyan(r.Project))
	}

	p.field("Violations", r.Violations)

	return nil
}

// Score prints the focus score.
func (p *Printer) Score(r *session.ScoreResult) error {
	if p.json {
		return p.writeJSON(r)
	}

	p.info("Focus score: %s/100 after %dm", ui.Highlight(r.Score), r.ElapsedMinutes)

	return nil
}

// Verdict prints the outcome of a directory change. Allowed changes are
// silent in human mode unless they bound the session.
func (p *Printer) Verdict(v *enforce.Verdict, threshold int) error {
	if p.json {
		return p.writeJSON(v)
	}

	switch v.Decision {
	case enforce.Allow:
		if v.Bind {
			p.info("Session bound to project %s", ui.Cyan(v.Project))
		}

	case enforce.Warn:
		p.warn(
			"Switched from %s to %s: distraction %d/%d",
			v.Bound,
			v.Project,
			v.Violations,
			threshold,
		)

		if v.Escalated {
			pterm.Error.WithWriter(p.w).Printfln(
				"Distraction threshold reached. Refocus on %s",
				v.Bound,
			)
		}

	case enforce.Block:
		// Reported through the returned error.
	}

	return nil
}

// ModeChanged prints a new enforcement mode.
func (p *Printer) ModeChanged(r *session.ModeResult) error {
	if p.json {
		return p.writeJSON(r)
	}

	p.success("Enforcement mode set to %s (was %s)", r.Mode, r.Previous)

	return nil
}

// Bound prints a project binding.
func (p *Printer) Bound(r *session.BindResult) error {
	if p.json {
		return p.writeJSON(r)
	}

	p.success("Session bound to project %s", ui.Cyan(r.Project))

	return nil
}

// ViolationsReset prints the number of cleared violations.
func (p *Printer) ViolationsReset(r *session.ResetResult) error {
	if p.json {
		return p.writeJSON(r)
	}

	p.success("Cleared %d violation(s)", r.Cleared)

	return nil
}

// BreakStarted prints that a break is running in the background.
func (p *Printer) BreakStarted(t models.BreakType, d time.Duration) error {
	if p.json {
		return p.writeJSON(map[string]any{
			"break_type":    t,
			"break_seconds": int64(d / time.Second),
			"background":    true,
		})
	}

	p.info(
		"The %s break (%s) is running in the background",
		t,
		timeutil.HumanDuration(d),
	)

	return nil
}

// BreakCompleted prints that a foreground break finished.
func (p *Printer) BreakCompleted(t models.BreakType) error {
	if p.json {
		return p.writeJSON(map[string]any{
			"break_type": t,
			"completed":  true,
		})
	}

	p.success("Break over. Ready for the next session")

	return nil
}

// Message prints a plain informational message.
func (p *Printer) Message(msg string) error {
	if p.json {
		return p.writeJSON(map[string]string{"message": msg})
	}

	p.info("%s", msg)

	return nil
}
