package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/paystubs-tracker/internal/ingest"
)

type fakeIngestor struct {
	mu      sync.Mutex
	paths   []string
	active  atomic.Int32
	overlap atomic.Bool
	delay   time.Duration
}

func (f *fakeIngestor) IngestPath(_ context.Context, path string) (*ingest.RunReport, error) {
	if f.active.Add(1) > 1 {
		f.overlap.Store(true)
	}
	defer f.active.Add(-1)
	time.Sleep(f.delay)

	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
	if path == "bad.pdf" {
		return nil, errors.New("malformed")
	}
	return &ingest.RunReport{TotalPages: 1, Inserted: []string{path}}, nil
}

func (f *fakeIngestor) IngestDirectory(context.Context, string, bool) ([]ingest.FileResult, ingest.DirStats, error) {
	return nil, ingest.DirStats{}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIngestQueue_SerializesInOrder(t *testing.T) {
	fake := &fakeIngestor{delay: 5 * time.Millisecond}
	var failures atomic.Int32
	q := NewIngestQueue(fake, quietLogger(),
		WithQueueSize(1),
		WithResultFunc(func(_ Job, report *ingest.RunReport, err error) {
			if err != nil {
				assert.Nil(t, report)
				failures.Add(1)
			}
		}),
	)

	ctx := context.Background()
	for _, p := range []string{"a.pdf", "bad.pdf", "b.pdf", "c.pdf"} {
		require.NoError(t, q.Enqueue(ctx, Job{Path: p}))
	}
	q.Shutdown(ctx)

	assert.Equal(t, []string{"a.pdf", "bad.pdf", "b.pdf", "c.pdf"}, fake.paths)
	assert.False(t, fake.overlap.Load(), "runs overlapped")
	assert.EqualValues(t, 1, failures.Load())
}

func TestIngestQueue_RejectsAfterShutdown(t *testing.T) {
	q := NewIngestQueue(&fakeIngestor{}, quietLogger())
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{Path: "a.pdf"})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestIngestQueue_EnqueueHonorsContextWhenFull(t *testing.T) {
	fake := &fakeIngestor{delay: 200 * time.Millisecond}
	q := NewIngestQueue(fake, quietLogger(), WithQueueSize(1))
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "1.pdf"}))
	// let the worker pick up the first job so the buffer holds the second
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, q.Enqueue(context.Background(), Job{Path: "2.pdf"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, Job{Path: "3.pdf"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
