// Package enforce implements the discipline rules applied during a work
// session: counting or blocking project switches and requiring breaks.
package enforce

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/werk/internal/clock"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/statefile"
)

// Engine reads and writes the enforcement state document. Each werk command
// may run in a fresh process, so the state is loaded from disk rather than
// kept in memory between invocations.
type Engine struct {
	clock      clock.Clock
	path       string
	violations int
}

// NewEngine returns an Engine backed by the document at path.
func NewEngine(path string, clk clock.Clock) *Engine {
	if clk == nil {
		clk = clock.Real{}
	}

	return &Engine{path: path, clock: clk}
}

// State loads the enforcement state. A missing or corrupt document yields
// the zero state.
func (e *Engine) State() (*models.EnforcementState, error) {
	var state models.EnforcementState

	if _, err := statefile.Load(e.path, &state); err != nil {
		return nil, err
	}

	e.violations = state.Violations

	return &state, nil
}

func (e *Engine) save(state *models.EnforcementState) error {
	state.Updated = e.clock.Now()
	e.violations = state.Violations

	return statefile.Write(e.path, state)
}

// OnSwitch evaluates a directory change and persists any resulting change
// to the enforcement state.
func (e *Engine) OnSwitch(from, to string, p Policy) (Verdict, error) {
	state, err := e.State()
	if err != nil {
		return Verdict{}, err
	}

	v, changed := Evaluate(state, from, to, p, e.clock.Now())

	if changed {
		if err := e.save(state); err != nil {
			return v, err
		}
	}

	switch v.Decision {
	case Block:
		slog.Info("project switch blocked",
			slog.String("bound", v.Bound),
			slog.String("project", v.Project),
		)
	case Warn:
		slog.Info("project switch counted as violation",
			slog.String("bound", v.Bound),
			slog.String("project", v.Project),
			slog.Int("violations", v.Violations),
		)
	case Allow:
	}

	return v, nil
}

// Bind sets the project for the current session, replacing any previous
// binding.
func (e *Engine) Bind(project, goal string) error {
	state, err := e.State()
	if err != nil {
		return err
	}

	state.Project = project

	if goal != "" {
		state.Goal = goal
	}

	return e.save(state)
}

// Violations returns the violation count, reading it from disk when the
// in-memory value is still zero.
func (e *Engine) Violations() (int, error) {
	if e.violations != 0 {
		return e.violations, nil
	}

	state, err := e.State()
	if err != nil {
		return 0, err
	}

	return state.Violations, nil
}

// ResetViolations zeroes the violation counter.
func (e *Engine) ResetViolations() error {
	state, err := e.State()
	if err != nil {
		return err
	}

	state.Violations = 0

	return e.save(state)
}

// CheckBreak returns ErrBreakRequired if a break must be taken before the
// next session.
func (e *Engine) CheckBreak() error {
	state, err := e.State()
	if err != nil {
		return err
	}

	if state.BreakRequired {
		breakType := state.BreakTypeRequired
		if breakType == "" {
			breakType = models.ShortBreak
		}

		return ErrBreakRequired.Fmt(breakType)
	}

	return nil
}

// RequireBreak replaces the enforcement state with one that blocks the next
// session until a break of the given type is completed. The project binding
// and violations belong to the finished session and are dropped.
func (e *Engine) RequireBreak(breakType models.BreakType, sessionEnd time.Time) error {
	end := sessionEnd

	return e.save(&models.EnforcementState{
		BreakRequired:     true,
		BreakTypeRequired: breakType,
		LastSessionEnd:    &end,
	})
}

// CompleteBreak lifts a break requirement.
func (e *Engine) CompleteBreak() error {
	state, err := e.State()
	if err != nil {
		return err
	}

	if !state.BreakRequired {
		return nil
	}

	return e.Clear()
}

// Clear removes the enforcement state entirely.
func (e *Engine) Clear() error {
	e.violations = 0

	return statefile.Remove(e.path)
}
