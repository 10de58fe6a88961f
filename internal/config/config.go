// Package config loads werk's settings from the config file and command-line
// flags
package config

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/werk/internal/models"
)

type (
	// Config holds all configuration settings
	Config struct {
		Work          WorkConfig         `mapstructure:"work"`
		ShortBreak    BreakConfig        `mapstructure:"short_break"`
		LongBreak     BreakConfig        `mapstructure:"long_break"`
		Enforcement   EnforcementConfig  `mapstructure:"enforcement"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		System        SystemConfig       `mapstructure:"-"`
		prompted      *PromptOptions
	}

	// WorkConfig holds work session settings
	WorkConfig struct {
		Message  string        `mapstructure:"message"`
		Duration time.Duration `mapstructure:"duration"`
		// ReminderInterval is in minutes. Zero disables reminders.
		ReminderInterval int `mapstructure:"reminder_interval"`
	}

	// BreakConfig holds short or long break settings
	BreakConfig struct {
		Message  string        `mapstructure:"message"`
		Duration time.Duration `mapstructure:"duration"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		SessionCmd        string  `mapstructure:"session_cmd"`
		EarlyStopRatio    float64 `mapstructure:"early_stop_ratio"`
		LongBreakInterval int     `mapstructure:"long_break_interval"`
		AutoStartBreak    bool    `mapstructure:"auto_start_break"`
		ConfirmEarlyStop  bool    `mapstructure:"confirm_early_stop"`
	}

	// EnforcementConfig holds the discipline rules applied during sessions
	EnforcementConfig struct {
		Mode                 models.Mode `mapstructure:"mode"`
		DistractionThreshold int         `mapstructure:"distraction_threshold"`
		BlockProjectSwitch   bool        `mapstructure:"block_project_switch"`
		RequireBreak         bool        `mapstructure:"require_break"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// SystemConfig holds settings that are not read from the config file
	SystemConfig struct {
		ConfigPath string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// BreakDuration returns the configured length of a break.
func (c *Config) BreakDuration(t models.BreakType) time.Duration {
	if t == models.LongBreak {
		return c.LongBreak.Duration
	}

	return c.ShortBreak.Duration
}

// BreakMessage returns the notification message for a break.
func (c *Config) BreakMessage(t models.BreakType) string {
	if t == models.LongBreak {
		return c.LongBreak.Message
	}

	return c.ShortBreak.Message
}

// ReminderInterval returns the reminder interval as a duration.
func (c *Config) ReminderInterval() time.Duration {
	return time.Duration(c.Work.ReminderInterval) * time.Minute
}

// Strict reports whether strict enforcement is configured.
func (c *Config) Strict() bool {
	return c.Enforcement.Mode == models.ModeStrict
}

// New creates a new Config and applies options in order
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}
