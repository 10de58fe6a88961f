package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/werk/internal/models"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyWorkDuration          = "work.duration"
	keyWorkMessage           = "work.message"
	keyReminderInterval      = "work.reminder_interval"
	keyShortBreakDuration    = "short_break.duration"
	keyShortBreakMessage     = "short_break.message"
	keyLongBreakDuration     = "long_break.duration"
	keyLongBreakMessage      = "long_break.message"
	keyLongBreakInterval     = "settings.long_break_interval"
	keyAutoStartBreak        = "settings.auto_start_break"
	keyConfirmEarlyStop      = "settings.confirm_early_stop"
	keyEarlyStopRatio        = "settings.early_stop_ratio"
	keySessionCmd            = "settings.session_cmd"
	keyEnforcementMode       = "enforcement.mode"
	keyDistractionThreshold  = "enforcement.distraction_threshold"
	keyBlockProjectSwitch    = "enforcement.block_project_switch"
	keyRequireBreak          = "enforcement.require_break"
	keyNotificationsEnabled  = "notifications.enabled"
	keyNotificationSound     = "notifications.sound"
	keyDarkTheme             = "display.dark_theme"
	keyTwentyFourHour        = "display.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A missing config file is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		c.System.ConfigPath = configPath

		v := newViper(configPath)

		err := v.ReadInConfig()
		if err != nil && !isNotExist(err) {
			return errReadConfig.Wrap(err)
		}

		prompted := applyPromptValues(v, c)

		if err != nil || prompted {
			if werr := v.WriteConfig(); werr != nil {
				return errWriteConfig.Wrap(werr)
			}
		}

		return loadViperConfig(v, c)
	}
}

// SaveEnforcementMode persists the enforcement mode to the config file
// without touching any other setting.
func SaveEnforcementMode(configPath string, mode models.Mode) error {
	v := newViper(configPath)

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return errReadConfig.Wrap(err)
	}

	v.Set(keyEnforcementMode, string(mode))

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	return v
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

// setDefaults registers the default value of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, "25m")
	v.SetDefault(keyWorkMessage, "Focus on your task")
	v.SetDefault(keyReminderInterval, 0)
	v.SetDefault(keyShortBreakDuration, "5m")
	v.SetDefault(keyShortBreakMessage, "Take a breather")
	v.SetDefault(keyLongBreakDuration, "15m")
	v.SetDefault(keyLongBreakMessage, "Take a long break")
	v.SetDefault(keyLongBreakInterval, 4)
	v.SetDefault(keyAutoStartBreak, false)
	v.SetDefault(keyConfirmEarlyStop, true)
	v.SetDefault(keyEarlyStopRatio, 0.8)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyEnforcementMode, string(models.ModeCoaching))
	v.SetDefault(keyDistractionThreshold, 3)
	v.SetDefault(keyBlockProjectSwitch, false)
	v.SetDefault(keyRequireBreak, false)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationSound, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
}

// applyPromptValues copies answers from the configuration prompt into v.
// It reports whether there was anything to copy.
func applyPromptValues(v *viper.Viper, c *Config) bool {
	p := c.prompted
	if p == nil {
		return false
	}

	v.Set(keyWorkDuration, minutes(p.WorkDuration))
	v.Set(keyShortBreakDuration, minutes(p.ShortBreakDuration))
	v.Set(keyLongBreakDuration, minutes(p.LongBreakDuration))
	v.Set(keyLongBreakInterval, p.LongBreakInterval)
	v.Set(keyEnforcementMode, string(p.Mode))

	return true
}

func minutes(n int) string {
	return (time.Duration(n) * time.Minute).String()
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config failed: %w", err)
	}

	return nil
}

// parseDuration parses duration strings. A bare number is read as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}
