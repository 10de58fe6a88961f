package store

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/werk/internal/apperr"
	"github.com/ayoisaiah/werk/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "werk.db"))
	require.NoError(t, err)

	return c
}

func TestPomodoroCounter(t *testing.T) {
	c := newTestClient(t)

	count, err := c.Pomodoros()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for want := 1; want <= 5; want++ {
		got, err := c.IncrementPomodoros()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	count, err = c.Pomodoros()
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestCounterSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "werk.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	_, err = c.IncrementPomodoros()
	require.NoError(t, err)

	reopened, err := NewClient(path)
	require.NoError(t, err)

	count, err := reopened.Pomodoros()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestConcurrentIncrements(t *testing.T) {
	c := newTestClient(t)
	c.timeout = 10 * time.Second

	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := c.IncrementPomodoros()
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	count, err := c.Pomodoros()
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestTimerRegistry(t *testing.T) {
	c := newTestClient(t)

	h := &models.TimerHandle{
		SessionID:   "abc",
		PID:         4242,
		ScheduledAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, c.SaveTimer(h))

	got, err := c.GetTimer("abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4242, got.PID)
	assert.True(t, h.ScheduledAt.Equal(got.ScheduledAt))

	require.NoError(t, c.DeleteTimer("abc"))

	got, err = c.GetTimer("abc")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting an unknown key is not an error
	require.NoError(t, c.DeleteTimer("missing"))
}

func TestLockedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "werk.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	held, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	defer held.Close()

	c.timeout = 50 * time.Millisecond

	_, err = c.Pomodoros()
	require.ErrorIs(t, err, errDBLocked)
	assert.Equal(t, apperr.ExitSystemError, apperr.ExitCode(err))
}
