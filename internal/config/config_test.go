package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
)

func defaultConfig() *Config {
	return &Config{
		Work: WorkConfig{
			Message:  "Focus on your task",
			Duration: 25 * time.Minute,
		},
		ShortBreak: BreakConfig{
			Message:  "Take a breather",
			Duration: 5 * time.Minute,
		},
		LongBreak: BreakConfig{
			Message:  "Take a long break",
			Duration: 15 * time.Minute,
		},
		Settings: SettingsConfig{
			LongBreakInterval: 4,
			EarlyStopRatio:    0.8,
			ConfirmEarlyStop:  true,
		},
		Enforcement: EnforcementConfig{
			Mode:                 models.ModeCoaching,
			DistractionThreshold: 3,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestWithViperConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.FileExists(t, path)

	want := defaultConfig()
	want.System.ConfigPath = path

	assert.Equal(t, want, cfg)
}

func TestWithViperConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	contents := `work:
  duration: 50m
  reminder_interval: 10
short_break:
  duration: 10m
enforcement:
  mode: strict
  distraction_threshold: 5
  block_project_switch: true
  require_break: true
settings:
  long_break_interval: 3
  early_stop_ratio: 0.5
  session_cmd: notify-send hello
`

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 50*time.Minute, cfg.Work.Duration)
	assert.Equal(t, 10*time.Minute, cfg.ReminderInterval())
	assert.Equal(t, 10*time.Minute, cfg.ShortBreak.Duration)
	assert.Equal(t, 15*time.Minute, cfg.LongBreak.Duration)
	assert.Equal(t, models.ModeStrict, cfg.Enforcement.Mode)
	assert.True(t, cfg.Strict())
	assert.True(t, cfg.Enforcement.RequireBreak)
	assert.Equal(t, 3, cfg.Settings.LongBreakInterval)
	assert.InDelta(t, 0.5, cfg.Settings.EarlyStopRatio, 1e-9)
	assert.Equal(t, "notify-send hello", cfg.Settings.SessionCmd)

	assert.Equal(t, enforce.Policy{
		Mode:                 models.ModeStrict,
		DistractionThreshold: 5,
		BlockProjectSwitch:   true,
	}, cfg.Policy())
}

func TestWithViperConfigInvalidMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(
		t,
		os.WriteFile(path, []byte("enforcement:\n  mode: lenient\n"), 0o600),
	)

	_, err := New(WithViperConfig(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, enforce.ErrInvalidMode)
}

func TestSaveEnforcementMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(
		t,
		os.WriteFile(path, []byte("work:\n  duration: 40m\n"), 0o600),
	)

	require.NoError(t, SaveEnforcementMode(path, models.ModeModerate))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, models.ModeModerate, cfg.Enforcement.Mode)
	assert.Equal(t, 40*time.Minute, cfg.Work.Duration)
}

func TestPromptValuesArePersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := &Config{
		prompted: &PromptOptions{
			Mode:               models.ModeStrict,
			WorkDuration:       50,
			ShortBreakDuration: 10,
			LongBreakDuration:  30,
			LongBreakInterval:  6,
		},
	}

	require.NoError(t, WithViperConfig(path)(cfg))

	reloaded, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 50*time.Minute, reloaded.Work.Duration)
	assert.Equal(t, 10*time.Minute, reloaded.ShortBreak.Duration)
	assert.Equal(t, 30*time.Minute, reloaded.LongBreak.Duration)
	assert.Equal(t, 6, reloaded.Settings.LongBreakInterval)
	assert.Equal(t, models.ModeStrict, reloaded.Enforcement.Mode)
}

func TestApplyCLIOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Notifications.Sound = "bell.wav"

	err := applyCLIOptions(cfg, CLIOptions{
		Work:          "45",
		ShortBreak:    "7m",
		SessionCmd:    "echo hi",
		Sound:         "off",
		Reminder:      5,
		reminderSet:   true,
		DisableNotify: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 45*time.Minute, cfg.Work.Duration)
	assert.Equal(t, 7*time.Minute, cfg.ShortBreak.Duration)
	assert.Equal(t, 15*time.Minute, cfg.LongBreak.Duration)
	assert.Equal(t, 5, cfg.Work.ReminderInterval)
	assert.Equal(t, "echo hi", cfg.Settings.SessionCmd)
	assert.Empty(t, cfg.Notifications.Sound)
	assert.False(t, cfg.Notifications.Enabled)
}

func TestApplyCLIOptionsInvalidDuration(t *testing.T) {
	err := applyCLIOptions(defaultConfig(), CLIOptions{LongBreak: "soon"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidCLIDuration)
}
