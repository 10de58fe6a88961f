package enforce

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/werk/internal/clock"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/statefile"
)

func newTestEngine(t *testing.T) (*Engine, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "enforcement.json")

	return NewEngine(path, clock.NewFake(now)), path
}

func TestStrictBlockingScenario(t *testing.T) {
	e, path := newTestEngine(t)
	p := Policy{Mode: models.ModeStrict, BlockProjectSwitch: true, DistractionThreshold: 3}

	v, err := e.OnSwitch("/nonexistent/home", "/nonexistent/code/A", p)
	require.NoError(t, err)
	assert.True(t, v.Bind)

	v, err = e.OnSwitch("/nonexistent/code/A", "/nonexistent/code/B", p)
	require.NoError(t, err)
	assert.Equal(t, Block, v.Decision)
	assert.True(t, v.Revert())

	count, err := NewEngine(path, nil).Violations()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNonBlockingScenario(t *testing.T) {
	policies := []Policy{
		{Mode: models.ModeStrict, DistractionThreshold: 3},
		{Mode: models.ModeModerate, DistractionThreshold: 3},
	}

	for _, p := range policies {
		t.Run(string(p.Mode), func(t *testing.T) {
			e, path := newTestEngine(t)

			_, err := e.OnSwitch("/nonexistent/home", "/nonexistent/code/A", p)
			require.NoError(t, err)

			v, err := e.OnSwitch("/nonexistent/code/A", "/nonexistent/code/B", p)
			require.NoError(t, err)
			assert.Equal(t, Warn, v.Decision)
			assert.False(t, v.Revert())

			// a fresh engine inherits the persisted count
			count, err := NewEngine(path, nil).Violations()
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestResetViolations(t *testing.T) {
	e, path := newTestEngine(t)
	require.NoError(t, statefile.Write(path, &models.EnforcementState{
		Project:    "A",
		Violations: 4,
	}))

	count, err := e.Violations()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	require.NoError(t, e.ResetViolations())

	state, err := NewEngine(path, nil).State()
	require.NoError(t, err)
	assert.Equal(t, 0, state.Violations)
	assert.Equal(t, "A", state.Project)
}

func TestBreakGate(t *testing.T) {
	e, path := newTestEngine(t)

	require.NoError(t, e.CheckBreak())

	require.NoError(t, e.RequireBreak(models.LongBreak, now))

	err := e.CheckBreak()
	require.ErrorIs(t, err, ErrBreakRequired)
	assert.Contains(t, err.Error(), "long break")

	state, err := e.State()
	require.NoError(t, err)
	assert.True(t, state.BreakRequired)
	require.NotNil(t, state.LastSessionEnd)
	assert.True(t, state.LastSessionEnd.Equal(now))

	require.NoError(t, e.CompleteBreak())
	require.NoError(t, e.CheckBreak())
	assert.False(t, statefile.Exists(path))
}

func TestCompleteBreakKeepsUnrelatedState(t *testing.T) {
	e, path := newTestEngine(t)
	require.NoError(t, e.Bind("A", "ship it"))

	require.NoError(t, e.CompleteBreak())
	assert.True(t, statefile.Exists(path))
}

func TestCorruptStateIsPurged(t *testing.T) {
	e, path := newTestEngine(t)
	require.NoError(t, os.WriteFile(path, []byte("]]"), 0o600))

	state, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, models.EnforcementState{}, *state)
	assert.False(t, statefile.Exists(path))
}

func TestBindReplacesProject(t *testing.T) {
	e, _ := newTestEngine(t)
	p := Policy{Mode: models.ModeModerate, DistractionThreshold: 3}

	require.NoError(t, e.Bind("A", ""))
	require.NoError(t, e.Bind("B", "refactor"))

	v, err := e.OnSwitch("/nonexistent/x", "/nonexistent/B", p)
	require.NoError(t, err)
	assert.Equal(t, Allow, v.Decision)

	state, err := e.State()
	require.NoError(t, err)
	assert.Equal(t, "refactor", state.Goal)
	assert.Equal(t, time.Duration(0), state.Updated.Sub(now))
}
