package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print results as JSON documents",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Write debug messages to the log file",
		EnvVars: []string{envDebug},
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notifications sent during and after a session",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed session",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to a wav, mp3, ogg or flac file played with session alerts. Disable sound by setting to 'off'",
	}

	reminderFlag = &cli.IntFlag{
		Name:    "reminder",
		Aliases: []string{"r"},
		Usage:   "Send a reminder every N minutes of an active session. 0 disables reminders",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of work sessions before a long break (default: 4)",
	}

	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work duration in minutes (default: 25)",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions started after this date (e.g. '2 weeks ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions started before this date",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: all-time, today, yesterday, 7days, 14days, 30days, 90days, 180days or 365days",
	}

	fromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "The directory being left",
	}

	toFlag = &cli.StringFlag{
		Name:     "to",
		Usage:    "The directory being entered",
		Required: true,
	}

	backgroundFlag = &cli.BoolFlag{
		Name:    "background",
		Aliases: []string{"b"},
		Usage:   "Run the break in a detached process without a countdown",
	}

	waitFlag = &cli.BoolFlag{
		Name:   "wait",
		Hidden: true,
	}

	breakTypeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "The type of break to take: short or long",
	}

	breakDurationFlag = &cli.StringFlag{
		Name:  "duration",
		Usage: "Override the configured break duration (e.g. 10m)",
	}
)

// configFlags override values from the config file for a single run.
func configFlags() []cli.Flag {
	return []cli.Flag{
		workFlag,
		shortBreakFlag,
		longBreakFlag,
		longBreakIntervalFlag,
		reminderFlag,
		sessionCmdFlag,
		soundFlag,
		disableNotificationFlag,
	}
}

// timerFlags are passed to the hidden timer command by the scheduler.
func timerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "session-id", Required: true},
		&cli.TimestampFlag{
			Name:     "start",
			Layout:   time.RFC3339Nano,
			Required: true,
		},
		&cli.DurationFlag{Name: "after"},
		&cli.DurationFlag{Name: "every"},
	}
}
