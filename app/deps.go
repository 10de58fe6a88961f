package app

import (
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/werk/internal/archive"
	"github.com/ayoisaiah/werk/internal/breaks"
	"github.com/ayoisaiah/werk/internal/config"
	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/notify"
	"github.com/ayoisaiah/werk/internal/osutil"
	"github.com/ayoisaiah/werk/internal/pathutil"
	"github.com/ayoisaiah/werk/internal/prompt"
	"github.com/ayoisaiah/werk/internal/ui"
	"github.com/ayoisaiah/werk/report"
	"github.com/ayoisaiah/werk/session"
	"github.com/ayoisaiah/werk/store"
	"github.com/ayoisaiah/werk/timer"
)

const promptTimeout = 2 * time.Minute

// deps holds the collaborators shared by the commands of a single run.
type deps struct {
	cfg      *config.Config
	db       *store.Client
	engine   *enforce.Engine
	archive  *archive.Archive
	notifier notify.Notifier
	breaks   *breaks.Runner
	printer  *report.Printer
}

// interactive reports whether prompts can be shown.
func interactive(ctx *cli.Context) bool {
	return !ctx.Bool("json") && osutil.IsTerminal(os.Stdin)
}

// loadConfig reads the config file and applies the flag overrides. The
// first-run form is shown only in an interactive terminal.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	opts := make([]config.Option, 0, 3)

	if interactive(ctx) {
		opts = append(opts, config.WithPromptConfig(path, false))
	}

	opts = append(opts,
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	dumpConfig(cfg)

	ui.DarkTheme = cfg.Display.DarkTheme

	printer.With24HourClock(cfg.Display.TwentyFourHour)

	return cfg, nil
}

func newDeps(ctx *cli.Context) (*deps, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, errOpenStore.Wrap(err)
	}

	engine := enforce.NewEngine(pathutil.EnforcementFilePath(), nil)

	n := &notify.Desktop{
		Sound:   cfg.Notifications.Sound,
		Enabled: cfg.Notifications.Enabled,
	}

	return &deps{
		cfg:      cfg,
		db:       db,
		engine:   engine,
		archive:  archive.New(pathutil.ArchiveDir()),
		notifier: n,
		printer:  printer,
		breaks: &breaks.Runner{
			Completer:      engine,
			Notifier:       n,
			TwentyFourHour: cfg.Display.TwentyFourHour,
		},
	}, nil
}

// controller returns a session controller wired to the real filesystem,
// database and timer processes.
func (d *deps) controller(ctx *cli.Context) *session.Controller {
	var p prompt.Prompter
	if interactive(ctx) {
		p = &prompt.Huh{Timeout: promptTimeout}
	}

	configPath := d.cfg.System.ConfigPath

	return session.New(&session.Options{
		Config:    d.cfg,
		DB:        d.db,
		Scheduler: &timer.ProcessScheduler{},
		Engine:    d.engine,
		Archive:   d.archive,
		Notifier:  d.notifier,
		Prompter:  p,
		Breaks:    d.breaks,
		StatePath: pathutil.SessionFilePath(),
		SaveMode: func(m models.Mode) error {
			return config.SaveEnforcementMode(configPath, m)
		},
	})
}
