package config

import (
	"strings"
	"time"

	"github.com/ayoisaiah/werk/internal/enforce"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	minLongBreakInterval = 1
	maxLongBreakInterval = 12
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateSession(c.Work.Duration, c.Work.Message, "work"); err != nil {
		return err
	}

	if err := validateSession(c.ShortBreak.Duration, c.ShortBreak.Message, "short break"); err != nil {
		return err
	}

	if err := validateSession(c.LongBreak.Duration, c.LongBreak.Message, "long break"); err != nil {
		return err
	}

	if err := c.validateSessionRelationships(); err != nil {
		return err
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	return c.validateEnforcement()
}

func validateSession(d time.Duration, msg, sessionType string) error {
	if d < minSessionDuration || d > maxSessionDuration {
		return errInvalidDuration.Fmt(
			sessionType,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(msg) == "" {
		return errEmptyMsg.Fmt(sessionType)
	}

	return nil
}

// validateSessionRelationships validates logical relationships between sessions.
func (c *Config) validateSessionRelationships() error {
	if c.ShortBreak.Duration >= c.Work.Duration {
		return errShortBreakTooLong.Fmt(c.ShortBreak.Duration, c.Work.Duration)
	}

	if c.LongBreak.Duration < c.ShortBreak.Duration {
		return errLongBreakTooShort.Fmt(
			c.LongBreak.Duration,
			c.ShortBreak.Duration,
		)
	}

	return nil
}

func (c *Config) validateSettings() error {
	maxReminder := int(maxSessionDuration.Minutes())

	if c.Work.ReminderInterval < 0 || c.Work.ReminderInterval > maxReminder {
		return errInvalidReminder.Fmt(maxReminder)
	}

	if c.Settings.LongBreakInterval < minLongBreakInterval ||
		c.Settings.LongBreakInterval > maxLongBreakInterval {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
		)
	}

	if c.Settings.EarlyStopRatio <= 0 || c.Settings.EarlyStopRatio > 1 {
		return errInvalidRatio.Fmt(c.Settings.EarlyStopRatio)
	}

	return nil
}

func (c *Config) validateEnforcement() error {
	if !c.Enforcement.Mode.Valid() {
		return enforce.ErrInvalidMode.Fmt(c.Enforcement.Mode)
	}

	if c.Enforcement.DistractionThreshold < 1 {
		return errInvalidThreshold.Fmt(c.Enforcement.DistractionThreshold)
	}

	return nil
}

// Policy returns the switch evaluation policy for the configured mode.
func (c *Config) Policy() enforce.Policy {
	return enforce.Policy{
		Mode:                 c.Enforcement.Mode,
		DistractionThreshold: c.Enforcement.DistractionThreshold,
		BlockProjectSwitch:   c.Enforcement.BlockProjectSwitch,
	}
}
