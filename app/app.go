// Package app defines the werk command-line interface.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/werk/internal/config"
	"github.com/ayoisaiah/werk/internal/pathutil"
	"github.com/ayoisaiah/werk/report"
)

const (
	envNoColor     = "NO_COLOR"
	envWerkNoColor = "WERK_NO_COLOR"
	envDebug       = "WERK_DEBUG"
)

var (
	printer = report.NewPrinter(os.Stdout, false).WithStderr(os.Stderr)
	logFile io.Closer
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// PrintError reports an error returned by the app in the output format the
// command asked for.
func PrintError(err error) {
	printer.Error(err)
}

// Get retrieves the werk app instance.
func Get() *cli.App {
	flags := append([]cli.Flag{jsonFlag, noColorFlag, debugFlag}, configFlags()...)

	return &cli.App{
		Name: "werk",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Werk is a work-session timer for the command line. It tracks Pomodoro
		sessions and enforces breaks and project discipline while you work.`,
		UsageText:            "[OPTIONS] [COMMAND]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Flags:                flags,
		Commands:             commands(),
		Before:               beforeAction,
		After:                afterAction,
		// errors are printed and mapped to exit codes by the caller
		ExitErrHandler: func(_ *cli.Context, _ error) {},
	}
}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "start",
			Usage:     "Start a work session",
			ArgsUsage: "[goal]",
			Action:    startAction,
		},
		{
			Name:   "stop",
			Usage:  "Stop the active work session",
			Action: stopAction,
		},
		{
			Name:   "status",
			Usage:  "Print the status of the current session",
			Action: statusAction,
		},
		{
			Name:   "focus-score",
			Usage:  "Print the focus score of the active session",
			Action: focusScoreAction,
		},
		{
			Name:   "reset-violations",
			Usage:  "Clear the distraction counter",
			Action: resetViolationsAction,
		},
		{
			Name:      "set-enforcement",
			Usage:     "Set the enforcement mode: off, coaching, moderate or strict",
			ArgsUsage: "<mode>",
			Action:    setEnforcementAction,
		},
		{
			Name:   "check-switch",
			Usage:  "Evaluate a change of working directory against the session project",
			Flags:  []cli.Flag{fromFlag, toFlag},
			Action: checkSwitchAction,
		},
		{
			Name:      "bind",
			Usage:     "Bind the session to a project. Defaults to the current directory",
			ArgsUsage: "[project]",
			Action:    bindAction,
		},
		{
			Name:  "break",
			Usage: "Take the pending break",
			Flags: []cli.Flag{
				backgroundFlag,
				waitFlag,
				breakTypeFlag,
				breakDurationFlag,
			},
			Action: breakAction,
		},
		{
			Name:   "history",
			Usage:  "List completed sessions. Defaults to a reporting period of 7 days",
			Flags:  []cli.Flag{sinceFlag, untilFlag, periodFlag},
			Action: historyAction,
		},
		{
			Name:      "hook",
			Usage:     "Print the shell integration snippet for bash or zsh",
			ArgsUsage: "<bash|zsh>",
			Action:    hookAction,
		},
		{
			Name:   "configure",
			Usage:  "Run the interactive configuration form",
			Action: configureAction,
		},
		{
			Name:   "edit-config",
			Usage:  "Edit the configuration file",
			Action: editConfigAction,
		},
		{
			Name:   "timer",
			Hidden: true,
			Flags:  timerFlags(),
			Action: timerAction,
		},
	}
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	printer = report.NewPrinter(os.Stdout, ctx.Bool("json")).WithStderr(os.Stderr)

	_, noColor := os.LookupEnv(envNoColor)
	_, werkNoColor := os.LookupEnv(envWerkNoColor)

	if noColor || werkNoColor || ctx.Bool("no-color") || ctx.Bool("json") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return errInitPaths.Wrap(err)
	}

	logFile = setupLogging(pathutil.LogFilePath(), ctx.Bool("debug"))

	slog.Debug("werk invoked", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(_ *cli.Context) error {
	if logFile != nil {
		return logFile.Close()
	}

	return nil
}
