package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/werk/internal/config"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/notify"
	"github.com/ayoisaiah/werk/internal/osutil"
	"github.com/ayoisaiah/werk/internal/pathutil"
	"github.com/ayoisaiah/werk/report"
	"github.com/ayoisaiah/werk/session"
	"github.com/ayoisaiah/werk/timer"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// startAction handles the start command which begins a work session.
func startAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	goal := strings.Join(ctx.Args().Slice(), " ")

	res, err := d.controller(ctx).Start(ctx.Context, goal)
	if err != nil {
		return err
	}

	return d.printer.Started(res)
}

// stopAction handles the stop command. Declining the early stop prompt
// leaves the session running and is not an error.
func stopAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	res, err := d.controller(ctx).Stop(ctx.Context)
	if errors.Is(err, session.ErrStopCancelled) {
		return d.printer.Cancelled()
	}

	if err != nil {
		return err
	}

	return d.printer.Stopped(res)
}

func statusAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	res, err := d.controller(ctx).Status()
	if err != nil {
		return err
	}

	return d.printer.Status(res)
}

func focusScoreAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	res, err := d.controller(ctx).FocusScore()
	if err != nil {
		return err
	}

	return d.printer.Score(res)
}

func resetViolationsAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	res, err := d.controller(ctx).ResetViolations()
	if err != nil {
		return err
	}

	return d.printer.ViolationsReset(res)
}

func setEnforcementAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	mode := models.Mode(strings.ToLower(ctx.Args().First()))

	res, err := d.controller(ctx).SetEnforcement(mode)
	if err != nil {
		return err
	}

	return d.printer.ModeChanged(res)
}

// checkSwitchAction is called by the shell hook whenever the working
// directory changes. A blocked switch exits with the project-blocked code
// so the hook can return to the previous directory.
func checkSwitchAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	from := firstNonEmptyString(ctx.String("from"), os.Getenv("OLDPWD"))

	v, err := d.controller(ctx).CheckSwitch(from, ctx.String("to"))
	if v == nil {
		return err
	}

	if perr := d.printer.Verdict(v, d.cfg.Enforcement.DistractionThreshold); perr != nil {
		return perr
	}

	if err != nil && d.printer.IsJSON() {
		return &report.Reported{Err: err}
	}

	return err
}

func bindAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	res, err := d.controller(ctx).Bind(ctx.Args().First())
	if err != nil {
		return err
	}

	return d.printer.Bound(res)
}

// breakAction handles the break command. Without --type the pending break
// is taken, or the one due after the last completed session.
func breakAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	t, dur, err := d.pendingBreak(ctx.String("type"), ctx.String("duration"))
	if err != nil {
		return err
	}

	d.breaks.Message = d.cfg.BreakMessage(t)

	switch {
	case ctx.Bool("wait"):
		sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return d.breaks.Wait(sigCtx, dur, t)

	case ctx.Bool("background"):
		if err := d.breaks.StartBreak(ctx.Context, true, dur, t); err != nil {
			return err
		}

		return d.printer.BreakStarted(t, dur)

	case !interactive(ctx):
		if err := d.breaks.Wait(ctx.Context, dur, t); err != nil {
			return err
		}

	default:
		if err := d.breaks.StartBreak(ctx.Context, false, dur, t); err != nil {
			return err
		}
	}

	return d.printer.BreakCompleted(t)
}

func (d *deps) pendingBreak(
	typeArg, durationArg string,
) (models.BreakType, time.Duration, error) {
	var t models.BreakType

	switch typeArg {
	case string(models.ShortBreak), string(models.LongBreak):
		t = models.BreakType(typeArg)

	case "":
		state, err := d.engine.State()
		if err != nil {
			return t, 0, err
		}

		if state.BreakRequired && state.BreakTypeRequired != "" {
			t = state.BreakTypeRequired
			break
		}

		count, err := d.db.Pomodoros()
		if err != nil {
			return t, 0, err
		}

		t = models.BreakTypeFor(count, d.cfg.Settings.LongBreakInterval)

	default:
		return t, 0, errInvalidBreakType.Fmt(typeArg)
	}

	if durationArg == "" {
		return t, d.cfg.BreakDuration(t), nil
	}

	dur, err := time.ParseDuration(durationArg)
	if err != nil || dur <= 0 {
		return t, 0, errInvalidBreakDuration.Fmt(durationArg)
	}

	return t, dur, nil
}

// configureAction re-runs the first-run configuration form.
func configureAction(_ *cli.Context) error {
	path := pathutil.ConfigFilePath()

	_, err := config.New(
		config.WithPromptConfig(path, true),
		config.WithViperConfig(path),
	)
	if err != nil {
		return err
	}

	return printer.Message(fmt.Sprintf("Configuration saved to %s", path))
}

// editConfigAction handles the edit-config command which opens the werk
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// timerAction runs in the detached process spawned when a session starts.
// It delivers the end alert and reminders until the session ends or the
// process is terminated.
func timerAction(ctx *cli.Context) error {
	cfg, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := timer.Job{
		SessionID: ctx.String("session-id"),
		StartTime: *ctx.Timestamp("start"),
		After:     ctx.Duration("after"),
		Every:     ctx.Duration("every"),
	}

	n := &notify.Desktop{
		Sound:   cfg.Notifications.Sound,
		Enabled: cfg.Notifications.Enabled,
	}

	timer.Run(sigCtx, job, timer.FileSource(pathutil.SessionFilePath()), n)

	return nil
}
