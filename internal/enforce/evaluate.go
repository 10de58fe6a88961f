package enforce

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/werk/internal/models"
)

// Decision is the outcome of evaluating a project switch.
type Decision string

const (
	Allow Decision = "allow"
	Warn  Decision = "warn"
	Block Decision = "block"
)

// Policy holds the enforcement options that affect switch evaluation.
type Policy struct {
	Mode                 models.Mode
	DistractionThreshold int
	BlockProjectSwitch   bool
}

// Verdict tells the caller what to do with a working directory change.
type Verdict struct {
	Decision   Decision `json:"decision"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Project    string   `json:"project"`
	Bound      string   `json:"bound_project,omitempty"`
	Violations int      `json:"violations"`
	// Escalated is set once violations reach the distraction threshold.
	Escalated bool `json:"escalated,omitempty"`
	// Bind is set when this switch bound the session to Project.
	Bind bool `json:"bind,omitempty"`
}

// Revert reports whether the caller must return to the previous directory.
func (v Verdict) Revert() bool {
	return v.Decision == Block
}

// Evaluate decides what happens when the working directory changes from
// one directory to another during an active session. It updates state in
// place and reports whether state changed.
func Evaluate(
	state *models.EnforcementState,
	from, to string,
	p Policy,
	now time.Time,
) (Verdict, bool) {
	v := Verdict{
		Decision:   Allow,
		From:       ProjectOf(from),
		To:         to,
		Project:    ProjectOf(to),
		Bound:      state.Project,
		Violations: state.Violations,
	}

	if p.Mode == models.ModeOff || v.Project == "" {
		return v, false
	}

	if state.Project == "" {
		state.Project = v.Project
		state.Updated = now
		v.Bound = v.Project
		v.Bind = true

		return v, true
	}

	if v.Project == state.Project {
		return v, false
	}

	if p.Mode == models.ModeStrict && p.BlockProjectSwitch {
		v.Decision = Block
		return v, false
	}

	state.Violations++
	state.Updated = now

	v.Decision = Warn
	v.Violations = state.Violations
	v.Escalated = p.DistractionThreshold > 0 &&
		state.Violations >= p.DistractionThreshold

	return v, true
}

// ProjectOf names the project a directory belongs to: the base name of the
// nearest enclosing git repository, or of the directory itself.
func ProjectOf(dir string) string {
	if dir == "" {
		return ""
	}

	dir = filepath.Clean(dir)

	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, ".git")); err == nil {
			return filepath.Base(d)
		}

		parent := filepath.Dir(d)
		if parent == d {
			break
		}

		d = parent
	}

	base := filepath.Base(dir)
	if base == string(filepath.Separator) || base == "." {
		return ""
	}

	return base
}
