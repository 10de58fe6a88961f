package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/session"
)

func init() {
	pterm.DisableStyling()
}

var start = time.Date(2024, time.April, 15, 9, 0, 0, 0, time.UTC)

func decode(t *testing.T, b *bytes.Buffer) map[string]any {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &doc))

	return doc
}

func TestStartedJSON(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, true)

	require.NoError(t, p.Started(&session.StartResult{
		StartTime:       start,
		SessionID:       "abc",
		Goal:            "docs",
		DurationSeconds: 1500,
	}))

	want := map[string]any{
		"start_time":       "2024-04-15T09:00:00Z",
		"session_id":       "abc",
		"goal":             "docs",
		"duration_seconds": float64(1500),
		"reminder_minutes": float64(0),
	}

	if diff := cmp.Diff(want, decode(t, &buf)); diff != "" {
		t.Fatalf("Started() mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorJSON(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, true)
	p.Error(fmt.Errorf("starting: %w", session.ErrNotActive))

	doc := decode(t, &buf)
	assert.Equal(t, float64(4), doc["code"])
	assert.Equal(t, "starting: no active work session", doc["error"])
}

func TestReportedErrorsAreSilent(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, true)
	p.Error(&Reported{Err: enforce.ErrProjectBlocked})

	assert.Empty(t, buf.String())
}

func TestErrorHumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer

	p := NewPrinter(&out, false).WithStderr(&errOut)
	p.Error(errors.New("boom"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
}

func TestStoppedHuman(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, false)

	require.NoError(t, p.Stopped(&session.StopResult{
		StartTime:       start,
		EndTime:         start.Add(10 * time.Minute),
		Goal:            "docs",
		Reason:          "meeting",
		BreakType:       models.LongBreak,
		DurationSeconds: 600,
		BreakSeconds:    900,
		PomodoroCount:   4,
		EarlyStop:       true,
		BreakRequired:   true,
	}))

	out := buf.String()
	assert.Contains(t, out, "10m worked")
	assert.Contains(t, out, "Pomodoro #4")
	assert.Contains(t, out, "early (meeting)")
	assert.Contains(t, out, "long break (15m) is required")
}

func TestStatusHuman(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, false)

	require.NoError(t, p.Status(&session.StatusResult{
		Status:        models.StatusInactive,
		BreakRequired: true,
		BreakType:     models.ShortBreak,
	}))

	assert.Contains(t, buf.String(), "No active work session")
	assert.Contains(t, buf.String(), "short break is required")

	buf.Reset()

	s := start

	require.NoError(t, p.Status(&session.StatusResult{
		StartTime:        &s,
		Status:           models.StatusActive,
		Goal:             "docs",
		Project:          "werk",
		ElapsedSeconds:   65 * 60,
		RemainingSeconds: 0,
		Violations:       2,
	}))

	out := buf.String()
	assert.Contains(t, out, "Work session active")
	assert.Contains(t, out, "1h 5m")
	assert.Contains(t, out, "werk")
}

func TestVerdictHuman(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, false)

	require.NoError(t, p.Verdict(&enforce.Verdict{Decision: enforce.Allow}, 3))
	assert.Empty(t, buf.String())

	require.NoError(t, p.Verdict(&enforce.Verdict{
		Decision:   enforce.Warn,
		Bound:      "alpha",
		Project:    "beta",
		Violations: 3,
		Escalated:  true,
	}, 3))

	assert.Contains(t, buf.String(), "distraction 3/3")
	assert.Contains(t, buf.String(), "Refocus on alpha")
}

func TestHistoryJSON(t *testing.T) {
	var buf bytes.Buffer

	p := NewPrinter(&buf, true)

	require.NoError(t, p.History([]models.ArchiveRecord{
		{StartTime: start, DurationSeconds: 1500, PomodoroCount: 1},
		{StartTime: start.Add(time.Hour), DurationSeconds: 600, PomodoroCount: 2, EarlyStop: true},
	}))

	doc := decode(t, &buf)
	assert.Equal(t, float64(2), doc["count"])
	assert.Equal(t, float64(2100), doc["total_seconds"])
	assert.Equal(t, float64(1), doc["early_stops"])
	assert.Len(t, doc["sessions"], 2)
}

func TestHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf, true).History(nil))
	assert.Equal(t, []any{}, decode(t, &buf)["sessions"])

	buf.Reset()

	require.NoError(t, NewPrinter(&buf, false).History(nil))
	assert.Contains(t, buf.String(), noSessionsMsg)
}

func TestHistoryTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf, false).With24HourClock(true).History(
		[]models.ArchiveRecord{
			{
				StartTime:       start,
				DurationSeconds: 1500,
				Goal:            "write docs",
				Project:         "werk",
				PomodoroCount:   3,
			},
		},
	))

	out := buf.String()
	assert.Contains(t, out, "write docs")
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "1 session(s), 25m in total")
}
