package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/werk/internal/enforce"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(_ *Config) {},
		},
		{
			name: "work too long",
			mutate: func(c *Config) {
				c.Work.Duration = 13 * time.Hour
			},
			wantErr: errInvalidDuration,
		},
		{
			name: "short break longer than work",
			mutate: func(c *Config) {
				c.ShortBreak.Duration = 30 * time.Minute
			},
			wantErr: errShortBreakTooLong,
		},
		{
			name: "long break shorter than short break",
			mutate: func(c *Config) {
				c.LongBreak.Duration = 2 * time.Minute
			},
			wantErr: errLongBreakTooShort,
		},
		{
			name: "empty message",
			mutate: func(c *Config) {
				c.Work.Message = "  "
			},
			wantErr: errEmptyMsg,
		},
		{
			name: "negative reminder",
			mutate: func(c *Config) {
				c.Work.ReminderInterval = -1
			},
			wantErr: errInvalidReminder,
		},
		{
			name: "zero long break interval",
			mutate: func(c *Config) {
				c.Settings.LongBreakInterval = 0
			},
			wantErr: errInvalidLongBreakInterval,
		},
		{
			name: "ratio above one",
			mutate: func(c *Config) {
				c.Settings.EarlyStopRatio = 1.5
			},
			wantErr: errInvalidRatio,
		},
		{
			name: "unknown mode",
			mutate: func(c *Config) {
				c.Enforcement.Mode = "lenient"
			},
			wantErr: enforce.ErrInvalidMode,
		},
		{
			name: "zero threshold",
			mutate: func(c *Config) {
				c.Enforcement.DistractionThreshold = 0
			},
			wantErr: errInvalidThreshold,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
