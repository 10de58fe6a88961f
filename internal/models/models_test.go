package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakTypeFor(t *testing.T) {
	cases := []struct {
		Count    int
		Interval int
		Want     BreakType
	}{
		{Count: 1, Interval: 4, Want: ShortBreak},
		{Count: 3, Interval: 4, Want: ShortBreak},
		{Count: 4, Interval: 4, Want: LongBreak},
		{Count: 8, Interval: 4, Want: LongBreak},
		{Count: 12, Interval: 4, Want: LongBreak},
		{Count: 13, Interval: 4, Want: ShortBreak},
		{Count: 3, Interval: 3, Want: LongBreak},
		{Count: 5, Interval: 1, Want: LongBreak},
		{Count: 0, Interval: 4, Want: ShortBreak},
		{Count: 4, Interval: 0, Want: ShortBreak},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.Want, BreakTypeFor(tc.Count, tc.Interval), "count=%d interval=%d", tc.Count, tc.Interval)
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range Modes {
		assert.True(t, m.Valid())
	}

	assert.False(t, Mode("lenient").Valid())
	assert.False(t, Mode("").Valid())
}

func TestSessionStateMatches(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &SessionState{ID: "a", Status: StatusActive, StartTime: start}

	assert.True(t, s.Matches("a", start))
	assert.False(t, s.Matches("b", start))
	assert.False(t, s.Matches("a", start.Add(time.Second)))

	s.Status = StatusInactive
	assert.False(t, s.Matches("a", start))

	var nilState *SessionState
	assert.False(t, nilState.Matches("a", start))
}

func TestSessionStateWorked(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &SessionState{Status: StatusActive, StartTime: start, PausedDuration: 60}
	now := start.Add(10 * time.Minute)

	assert.Equal(t, 10*time.Minute, s.Elapsed(now))
	assert.Equal(t, 9*time.Minute, s.Worked(now))
}
