package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/internal/common"
)

type MatchQueue struct {
	runner  MatchRunner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool

	// separate lock so workers can release a claim while Enqueue is
	// blocked on a full channel
	imu      sync.Mutex
	inflight map[uuid.UUID]bool
}

type Option func(*MatchQueue)

func WithWorkers(n int) Option {
	return func(q *MatchQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *MatchQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithTaskTimeout(d time.Duration) Option {
	return func(q *MatchQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewMatchQueue(runner MatchRunner, logger *slog.Logger, opts ...Option) *MatchQueue {
	q := &MatchQueue{
		runner:   runner,
		logger:   logger,
		workers:  4,
		timeout:  3 * time.Minute,
		ch:       make(chan Job, 256),
		inflight: make(map[uuid.UUID]bool),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *MatchQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("match worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					ctx = common.WithSessionID(ctx, job.SessionID)
					err := q.runner.RunMatching(ctx, job.SessionID)
					cancel()
					q.release(job.SessionID)

					if err != nil {
						q.logger.Error("matching failed", "worker_id", workerID, "session_id", job.SessionID, "error", err)
					} else {
						q.logger.Info("matching completed", "worker_id", workerID, "session_id", job.SessionID)
					}
				}

				q.logger.Info("match worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue claims the session before queueing so at most one matching run
// is active or pending per session. A duplicate request while the first is
// in flight is coalesced into it, never run concurrently.
func (q *MatchQueue) Enqueue(_ context.Context, job Job) error {
	if !q.claim(job.SessionID) {
		q.logger.Info("matching already in flight, coalescing", "session_id", job.SessionID)
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.release(job.SessionID)
		q.logger.Warn("cannot enqueue: queue is shutting down", "session_id", job.SessionID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued session for matching", "session_id", job.SessionID)
	default:
		q.logger.Warn("queue full, applying backpressure", "session_id", job.SessionID)
		q.ch <- job
	}
	return nil
}

func (q *MatchQueue) claim(sessionID uuid.UUID) bool {
	q.imu.Lock()
	defer q.imu.Unlock()
	if q.inflight[sessionID] {
		return false
	}
	q.inflight[sessionID] = true
	return true
}

func (q *MatchQueue) release(sessionID uuid.UUID) {
	q.imu.Lock()
	delete(q.inflight, sessionID)
	q.imu.Unlock()
}

func (q *MatchQueue) Shutdown(ctx context.Context) {
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
