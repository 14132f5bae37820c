// Package scheduler runs periodic background jobs using robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is a scheduled unit of work. The context is cancelled when the job
// exceeds its timeout or the scheduler stops.
type JobFunc func(ctx context.Context) error

// Scheduler manages named cron jobs.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	names map[cron.EntryID]string
}

// New creates a scheduler. Specs use the standard 5-field format plus
// descriptors such as "@hourly" or "@every 10m". A zero timeout means jobs
// run until the scheduler stops.
func New(logger *slog.Logger, timeout time.Duration) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    c,
		logger:  logger,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
		names:   make(map[cron.EntryID]string),
	}
}

// AddJob registers fn under name on the given schedule.
func (s *Scheduler) AddJob(spec, name string, fn JobFunc) error {
	id, err := s.cron.AddFunc(spec, func() { s.run(name, fn) })
	if err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, spec, err)
	}
	s.mu.Lock()
	s.names[id] = name
	s.mu.Unlock()
	s.logger.Debug("scheduler.job.added", "job", name, "spec", spec)
	return nil
}

// RunNow triggers a registered-style job immediately on the caller's goroutine.
func (s *Scheduler) RunNow(name string, fn JobFunc) {
	s.run(name, fn)
}

func (s *Scheduler) run(name string, fn JobFunc) {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := fn(ctx); err != nil {
		s.logger.Warn("scheduler.job.failed", "job", name, "err", err, "elapsed_ms", time.Since(start).Milliseconds())
		return
	}
	s.logger.Info("scheduler.job.ok", "job", name, "elapsed_ms", time.Since(start).Milliseconds())
}

// Jobs returns the names of registered jobs with their next run time.
func (s *Scheduler) Jobs() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]time.Time, len(s.names))
	for _, e := range s.cron.Entries() {
		out[s.names[e.ID]] = e.Next
	}
	return out
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler.started", "jobs", len(s.cron.Entries()))
}

// Stop halts scheduling, cancels running jobs and waits for them to return
// or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.logger.Info("scheduler.stopping")
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
