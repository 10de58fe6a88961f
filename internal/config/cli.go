package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Work              string
	ShortBreak        string
	LongBreak         string
	SessionCmd        string
	Sound             string
	Reminder          int
	LongBreakInterval uint
	DisableNotify     bool
	reminderSet       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags set explicitly override the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:              ctx.String("work"),
			ShortBreak:        ctx.String("short-break"),
			LongBreak:         ctx.String("long-break"),
			LongBreakInterval: ctx.Uint("long-break-interval"),
			Reminder:          ctx.Int("reminder"),
			reminderSet:       ctx.IsSet("reminder"),
			SessionCmd:        ctx.String("session-cmd"),
			Sound:             ctx.String("sound"),
			DisableNotify:     ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.reminderSet {
		c.Work.ReminderInterval = opts.Reminder
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	switch opts.Sound {
	case "":
	case "off":
		c.Notifications.Sound = ""
	default:
		c.Notifications.Sound = opts.Sound
	}

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	durations := []struct {
		target *time.Duration
		name   string
		value  string
	}{
		{&c.Work.Duration, "work", opts.Work},
		{&c.ShortBreak.Duration, "short break", opts.ShortBreak},
		{&c.LongBreak.Duration, "long break", opts.LongBreak},
	}

	for _, d := range durations {
		if d.value == "" {
			continue
		}

		dur, err := parseDuration(d.value)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.name).Wrap(err)
		}

		*d.target = dur
	}

	if opts.LongBreakInterval > 0 {
		c.Settings.LongBreakInterval = int(opts.LongBreakInterval)
	}

	return nil
}
