// Package async runs ingestion jobs in the background, one at a time.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/paystubs-tracker/internal/ingest"
)

// ErrQueueClosed is returned by Enqueue after Shutdown.
var ErrQueueClosed = errors.New("queue is shutting down")

// Job asks for one source file to be ingested.
type Job struct {
	ID          uuid.UUID
	Path        string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// ResultFunc observes finished jobs. report is nil when err is set.
type ResultFunc func(job Job, report *ingest.RunReport, err error)

// IngestQueue feeds jobs to a single worker so runs against one store never
// overlap.
type IngestQueue struct {
	ingestor ingest.Ingestor
	logger   *slog.Logger
	timeout  time.Duration
	onResult ResultFunc

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

var _ Queue = (*IngestQueue)(nil)

type Option func(*IngestQueue)

func WithQueueSize(n int) Option {
	return func(q *IngestQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *IngestQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func WithResultFunc(f ResultFunc) Option {
	return func(q *IngestQueue) {
		q.onResult = f
	}
}

func NewIngestQueue(ingestor ingest.Ingestor, logger *slog.Logger, opts ...Option) *IngestQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &IngestQueue{
		ingestor: ingestor,
		logger:   logger,
		timeout:  5 * time.Minute,
		ch:       make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *IngestQueue) start() {
	q.once.Do(func() {
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			q.logger.Info("ingest worker started")
			for job := range q.ch {
				q.run(job)
			}
			q.logger.Info("ingest worker stopped")
		}()
	})
}

func (q *IngestQueue) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	report, err := q.ingestor.IngestPath(ctx, job.Path)
	if err != nil {
		q.logger.Error("ingest job failed", "job_id", job.ID, "path", job.Path, "error", err)
	} else {
		q.logger.Info("ingest job done",
			"job_id", job.ID,
			"path", job.Path,
			"run_id", report.RunID,
			"summary", report.Summary(),
			"waited", time.Since(job.SubmittedAt).Round(time.Millisecond),
		)
	}
	if q.onResult != nil {
		q.onResult(job, report, err)
	}
}

// Enqueue blocks while the queue is full, until ctx is done.
func (q *IngestQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "path", job.Path)
		return ErrQueueClosed
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued file for ingestion", "job_id", job.ID, "path", job.Path)
		return nil
	default:
	}
	q.logger.Warn("queue full, applying backpressure", "path", job.Path)
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting jobs and waits for queued ones to finish or ctx to end.
func (q *IngestQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
