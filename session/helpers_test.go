package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/werk/internal/archive"
	"github.com/ayoisaiah/werk/internal/clock"
	"github.com/ayoisaiah/werk/internal/config"
	"github.com/ayoisaiah/werk/internal/enforce"
	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/prompt"
	"github.com/ayoisaiah/werk/timer"
)

var epoch = time.Date(2024, time.April, 15, 9, 0, 0, 0, time.UTC)

const (
	homeDir  = "/nonexistent/home/user"
	alphaDir = "/nonexistent/code/alpha"
	betaDir  = "/nonexistent/code/beta"
)

type fakeDB struct {
	incErr error
	timers map[string]*models.TimerHandle
	count  int
}

func newFakeDB() *fakeDB {
	return &fakeDB{timers: make(map[string]*models.TimerHandle)}
}

func (f *fakeDB) IncrementPomodoros() (int, error) {
	if f.incErr != nil {
		return 0, f.incErr
	}

	f.count++
	return f.count, nil
}

func (f *fakeDB) Pomodoros() (int, error) {
	return f.count, nil
}

func (f *fakeDB) SaveTimer(h *models.TimerHandle) error {
	f.timers[h.SessionID] = h
	return nil
}

func (f *fakeDB) GetTimer(sessionID string) (*models.TimerHandle, error) {
	return f.timers[sessionID], nil
}

func (f *fakeDB) DeleteTimer(sessionID string) error {
	delete(f.timers, sessionID)
	return nil
}

type fakeScheduler struct {
	err       error
	jobs      []timer.Job
	cancelled []*models.TimerHandle
}

func (f *fakeScheduler) Schedule(
	_ context.Context,
	job timer.Job,
) (*models.TimerHandle, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.jobs = append(f.jobs, job)

	return &models.TimerHandle{
		SessionID: job.SessionID,
		PID:       4242,
	}, nil
}

func (f *fakeScheduler) Cancel(h *models.TimerHandle) error {
	f.cancelled = append(f.cancelled, h)
	return errors.New("no such process")
}

type recorder struct {
	titles []string
	mu     sync.Mutex
}

func (r *recorder) Notify(title, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.titles = append(r.titles, title)

	return errors.New("notification service unavailable")
}

type scriptedPrompter struct {
	outcome prompt.Outcome
	reason  string
	asked   int
}

func (s *scriptedPrompter) Confirm(_ string, _ bool) (prompt.Outcome, error) {
	s.asked++
	return s.outcome, nil
}

func (s *scriptedPrompter) Input(_ string) (string, error) {
	return s.reason, nil
}

type breakCall struct {
	breakType  models.BreakType
	duration   time.Duration
	background bool
}

type fakeBreaks struct {
	calls []breakCall
}

func (f *fakeBreaks) StartBreak(
	_ context.Context,
	background bool,
	d time.Duration,
	t models.BreakType,
) error {
	f.calls = append(f.calls, breakCall{t, d, background})
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Work: config.WorkConfig{
			Message:  "Focus on your task",
			Duration: 25 * time.Minute,
		},
		ShortBreak: config.BreakConfig{
			Message:  "Take a breather",
			Duration: 5 * time.Minute,
		},
		LongBreak: config.BreakConfig{
			Message:  "Take a long break",
			Duration: 15 * time.Minute,
		},
		Settings: config.SettingsConfig{
			LongBreakInterval: 4,
			EarlyStopRatio:    0.8,
			ConfirmEarlyStop:  true,
		},
		Enforcement: config.EnforcementConfig{
			Mode:                 models.ModeCoaching,
			DistractionThreshold: 3,
		},
	}
}

type harness struct {
	ctrl      *Controller
	cfg       *config.Config
	clock     *clock.Fake
	db        *fakeDB
	sched     *fakeScheduler
	notes     *recorder
	engine    *enforce.Engine
	archive   *archive.Archive
	dataDir   string
	statePath string
	enfPath   string
	workdir   string
	savedMode models.Mode
}

func newHarness(t *testing.T, setup func(h *harness, opts *Options)) *harness {
	t.Helper()

	dir := t.TempDir()

	h := &harness{
		cfg:       testConfig(),
		clock:     clock.NewFake(epoch),
		db:        newFakeDB(),
		sched:     &fakeScheduler{},
		notes:     &recorder{},
		dataDir:   dir,
		statePath: filepath.Join(dir, "session.json"),
		enfPath:   filepath.Join(dir, "enforcement.json"),
		workdir:   alphaDir,
	}

	h.engine = enforce.NewEngine(h.enfPath, h.clock)
	h.archive = archive.New(filepath.Join(dir, "archive"))

	opts := &Options{
		Config:    h.cfg,
		DB:        h.db,
		Scheduler: h.sched,
		Engine:    h.engine,
		Archive:   h.archive,
		Notifier:  h.notes,
		Clock:     h.clock,
		StatePath: h.statePath,
		Workdir: func() (string, error) {
			return h.workdir, nil
		},
		SaveMode: func(m models.Mode) error {
			h.savedMode = m
			return nil
		},
	}

	if setup != nil {
		setup(h, opts)
	}

	h.ctrl = New(opts)

	return h
}

// cycle runs one full session of the configured length.
func (h *harness) cycle(t *testing.T) *StopResult {
	t.Helper()

	_, err := h.ctrl.Start(context.Background(), "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	h.clock.Advance(h.cfg.Work.Duration)

	res, err := h.ctrl.Stop(context.Background())
	if err != nil {
		t.Fatalf("stop: %v", err)
	}

	h.clock.Advance(time.Minute)

	return res
}

// bindBySwitch binds the running session to alpha through its first
// directory change.
func bindBySwitch(t *testing.T, h *harness) {
	t.Helper()

	v, err := h.ctrl.CheckSwitch(homeDir, alphaDir)
	require.NoError(t, err)
	require.True(t, v.Bind)
}
