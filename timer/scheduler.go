package timer

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/notify"
)

// Scheduler starts and cancels the timers serving a session.
type Scheduler interface {
	Schedule(ctx context.Context, job Job) (*models.TimerHandle, error)
	Cancel(h *models.TimerHandle) error
}

// ProcessScheduler runs each job in a detached `werk timer` process so that
// alerts outlive the command that started the session.
type ProcessScheduler struct {
	// Executable defaults to the running binary.
	Executable string
}

// Args returns the command-line arguments that reproduce job in a timer
// process.
func (j Job) Args() []string {
	return []string{
		"timer",
		"--session-id", j.SessionID,
		"--start", j.StartTime.Format(time.RFC3339Nano),
		"--after", j.After.String(),
		"--every", j.Every.String(),
	}
}

// Schedule spawns the timer process and returns its handle.
func (p *ProcessScheduler) Schedule(
	_ context.Context,
	job Job,
) (*models.TimerHandle, error) {
	pid, err := Spawn(p.Executable, job.Args()...)
	if err != nil {
		return nil, err
	}

	return &models.TimerHandle{
		ScheduledAt: time.Now().UTC(),
		SessionID:   job.SessionID,
		PID:         pid,
	}, nil
}

// Spawn starts exe with args as a detached background process and returns
// its PID. An empty exe re-executes the running binary.
func Spawn(exe string, args ...string) (int, error) {
	if exe == "" {
		var err error

		exe, err = os.Executable()
		if err != nil {
			return 0, errSpawn.Wrap(err)
		}
	}

	// The child must not die with the calling command, so no context.
	cmd := exec.Command(exe, args...)
	cmd.SysProcAttr = detached()

	if err := cmd.Start(); err != nil {
		return 0, errSpawn.Wrap(err)
	}

	pid := cmd.Process.Pid

	_ = cmd.Process.Release()

	return pid, nil
}

// Cancel terminates the timer process. A process that has already exited
// yields an error which callers are expected to log and ignore.
func (p *ProcessScheduler) Cancel(h *models.TimerHandle) error {
	if h == nil || h.PID <= 0 {
		return nil
	}

	if err := terminate(h.PID); err != nil {
		return errCancelTimer.Fmt(strconv.Itoa(h.PID)).Wrap(err)
	}

	return nil
}

// LocalScheduler runs each job on a goroutine of the current process.
type LocalScheduler struct {
	source   Source
	notifier notify.Notifier
	jobs     map[string]*localJob
	wg       sync.WaitGroup
	mu       sync.Mutex
}

type localJob struct {
	cancel context.CancelFunc
}

// NewLocalScheduler returns a scheduler whose jobs read the session from
// source and alert through n.
func NewLocalScheduler(source Source, n notify.Notifier) *LocalScheduler {
	return &LocalScheduler{
		source:   source,
		notifier: n,
		jobs:     make(map[string]*localJob),
	}
}

// Schedule starts job on a new goroutine. A job already running for the
// same session is replaced.
func (l *LocalScheduler) Schedule(
	ctx context.Context,
	job Job,
) (*models.TimerHandle, error) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	j := &localJob{cancel: cancel}

	l.mu.Lock()
	if prev, ok := l.jobs[job.SessionID]; ok {
		prev.cancel()
	}

	l.jobs[job.SessionID] = j
	l.mu.Unlock()

	l.wg.Add(1)

	go func() {
		defer l.wg.Done()

		Run(ctx, job, l.source, l.notifier)

		l.release(job.SessionID, j)
	}()

	return &models.TimerHandle{
		ScheduledAt: time.Now().UTC(),
		SessionID:   job.SessionID,
	}, nil
}

// Cancel stops the goroutine serving h.
func (l *LocalScheduler) Cancel(h *models.TimerHandle) error {
	if h == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	j, ok := l.jobs[h.SessionID]
	if !ok {
		return errTimerNotFound.Fmt(h.SessionID)
	}

	j.cancel()
	delete(l.jobs, h.SessionID)

	return nil
}

// release forgets a job that returned on its own. A replacement scheduled
// for the same session is left in place.
func (l *LocalScheduler) release(sessionID string, j *localJob) {
	l.mu.Lock()
	defer l.mu.Unlock()

	j.cancel()

	if l.jobs[sessionID] == j {
		delete(l.jobs, sessionID)
	}
}

// Wait blocks until every job has returned.
func (l *LocalScheduler) Wait() {
	l.wg.Wait()
}
