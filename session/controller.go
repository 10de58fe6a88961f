// Package session drives the work session lifecycle: starting and stopping
// sessions, reporting their status and applying enforcement along the way
package session

import (
	"os"
	"time"

	"github.com/ayoisaiah/werk/internal/archive"
	"github.com/ayoisaiah/werk/internal/breaks"
	"github.com/ayoisaiah/werk/internal/clock"
	"github.com/ayoisaiah/werk/internal/config"
	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/notify"
	"github.com/ayoisaiah/werk/internal/prompt"
	"github.com/ayoisaiah/werk/internal/statefile"
	"github.com/ayoisaiah/werk/store"
	"github.com/ayoisaiah/werk/timer"
)

// Options holds the collaborators of a Controller. Prompter and Breaks are
// optional: a nil Prompter means the session is not interactive.
type Options struct {
	Config    *config.Config
	DB        store.DB
	Scheduler timer.Scheduler
	Engine    *enforce.Engine
	Archive   *archive.Archive
	Notifier  notify.Notifier
	Prompter  prompt.Prompter
	Breaks    breaks.Starter
	Clock     clock.Clock
	// Workdir returns the current working directory. Defaults to os.Getwd.
	Workdir func() (string, error)
	// SaveMode persists a new enforcement mode.
	SaveMode  func(models.Mode) error
	Score     *ScorePolicy
	StatePath string
}

// Controller implements the session commands.
type Controller struct {
	cfg       *config.Config
	db        store.DB
	scheduler timer.Scheduler
	engine    *enforce.Engine
	archive   *archive.Archive
	notifier  notify.Notifier
	prompter  prompt.Prompter
	breaks    breaks.Starter
	clock     clock.Clock
	workdir   func() (string, error)
	saveMode  func(models.Mode) error
	score     ScorePolicy
	statePath string
}

// New returns a Controller wired with opts.
func New(opts *Options) *Controller {
	c := &Controller{
		cfg:       opts.Config,
		db:        opts.DB,
		scheduler: opts.Scheduler,
		engine:    opts.Engine,
		archive:   opts.Archive,
		notifier:  opts.Notifier,
		prompter:  opts.Prompter,
		breaks:    opts.Breaks,
		clock:     opts.Clock,
		workdir:   opts.Workdir,
		saveMode:  opts.SaveMode,
		score:     DefaultScorePolicy,
		statePath: opts.StatePath,
	}

	if opts.Score != nil {
		c.score = *opts.Score
	}

	if c.clock == nil {
		c.clock = clock.Real{}
	}

	if c.notifier == nil {
		c.notifier = notify.Discard
	}

	if c.workdir == nil {
		c.workdir = os.Getwd
	}

	return c
}

// state loads the session state, purging a corrupt document.
func (c *Controller) state() (*models.SessionState, error) {
	var s models.SessionState

	found, err := statefile.Load(c.statePath, &s)
	if err != nil || !found {
		return nil, err
	}

	return &s, nil
}

// workDuration returns the length the session was started with.
func (c *Controller) workDuration(s *models.SessionState) time.Duration {
	if s.WorkDuration > 0 {
		return time.Duration(s.WorkDuration) * time.Second
	}

	return c.cfg.Work.Duration
}

// currentProject returns the project of the working directory, or an empty
// string when it cannot be determined.
func (c *Controller) currentProject() string {
	dir, err := c.workdir()
	if err != nil {
		return ""
	}

	return enforce.ProjectOf(dir)
}
