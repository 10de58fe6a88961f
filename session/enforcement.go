package session

import (
	"log/slog"

	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
)

// ModeResult reports an enforcement mode change.
type ModeResult struct {
	Mode     models.Mode `json:"mode"`
	Previous models.Mode `json:"previous"`
}

// BindResult reports the project a session is bound to.
type BindResult struct {
	Project string `json:"project"`
}

// ResetResult reports how many violations were cleared.
type ResetResult struct {
	Cleared int `json:"cleared"`
}

// CheckSwitch evaluates a working directory change from one directory to
// another. Outside a session every change is allowed and nothing is
// recorded. A blocked change returns the verdict together with
// ErrProjectBlocked so that callers can revert the directory.
func (c *Controller) CheckSwitch(from, to string) (*enforce.Verdict, error) {
	state, err := c.state()
	if err != nil {
		return nil, err
	}

	if !state.Active() {
		return &enforce.Verdict{
			Decision: enforce.Allow,
			From:     enforce.ProjectOf(from),
			To:       to,
			Project:  enforce.ProjectOf(to),
		}, nil
	}

	v, err := c.engine.OnSwitch(from, to, c.cfg.Policy())
	if err != nil {
		return nil, err
	}

	if v.Revert() {
		return &v, enforce.ErrProjectBlocked.Fmt(v.Bound, v.Project)
	}

	return &v, nil
}

// Bind binds the session to project, or to the project of the working
// directory when project is empty.
func (c *Controller) Bind(project string) (*BindResult, error) {
	if project == "" {
		project = c.currentProject()
	}

	if project == "" {
		return nil, errNoProject
	}

	var goal string

	state, err := c.state()
	if err != nil {
		return nil, err
	}

	if state.Active() {
		goal = state.Goal
	}

	if err := c.engine.Bind(project, goal); err != nil {
		return nil, err
	}

	return &BindResult{Project: project}, nil
}

// ResetViolations zeroes the violation counter.
func (c *Controller) ResetViolations() (*ResetResult, error) {
	n, err := c.engine.Violations()
	if err != nil {
		return nil, err
	}

	if err := c.engine.ResetViolations(); err != nil {
		return nil, err
	}

	return &ResetResult{Cleared: n}, nil
}

// SetEnforcement switches the enforcement mode and persists it. Leaving
// strict mode drops any enforcement state, including a pending break.
func (c *Controller) SetEnforcement(mode models.Mode) (*ModeResult, error) {
	if !mode.Valid() {
		return nil, enforce.ErrInvalidMode.Fmt(mode)
	}

	prev := c.cfg.Enforcement.Mode

	if c.saveMode != nil {
		if err := c.saveMode(mode); err != nil {
			return nil, err
		}
	}

	c.cfg.Enforcement.Mode = mode

	if prev == models.ModeStrict && mode != models.ModeStrict {
		if err := c.engine.Clear(); err != nil {
			slog.Warn("unable to clear enforcement state", slog.Any("error", err))
		}
	}

	slog.Info("enforcement mode changed",
		slog.String("from", string(prev)),
		slog.String("to", string(mode)),
	)

	return &ModeResult{Mode: mode, Previous: prev}, nil
}
