package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu    sync.Mutex
	runs  map[uuid.UUID]int
	block chan struct{} // closed to unblock in-flight runs
}

func newFakeRunner(blocking bool) *fakeRunner {
	r := &fakeRunner{runs: make(map[uuid.UUID]int)}
	if blocking {
		r.block = make(chan struct{})
	}
	return r
}

func (r *fakeRunner) RunMatching(ctx context.Context, sessionID uuid.UUID) error {
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	r.runs[sessionID]++
	r.mu.Unlock()
	return nil
}

func (r *fakeRunner) count(sessionID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[sessionID]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMatchQueueRunsEnqueuedSessions(t *testing.T) {
	runner := newFakeRunner(false)
	q := NewMatchQueue(runner, testLogger(), WithWorkers(2), WithQueueSize(8))

	a, b := uuid.New(), uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: a, SubmittedAt: time.Now()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: b, SubmittedAt: time.Now()}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 1, runner.count(a))
	assert.Equal(t, 1, runner.count(b))
}

func TestMatchQueueCoalescesInFlightSession(t *testing.T) {
	runner := newFakeRunner(true)
	q := NewMatchQueue(runner, testLogger(), WithWorkers(1), WithQueueSize(8))

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: id}))
	// second request while the first is claimed must coalesce, not stack
	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: id}))
	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: id}))

	close(runner.block)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, 1, runner.count(id))
}

func TestMatchQueueEnqueueAfterShutdown(t *testing.T) {
	runner := newFakeRunner(false)
	q := NewMatchQueue(runner, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: id}))
	assert.Equal(t, 0, runner.count(id))
}

func TestMatchQueueSessionCanRequeueAfterCompletion(t *testing.T) {
	runner := newFakeRunner(false)
	q := NewMatchQueue(runner, testLogger(), WithWorkers(1), WithQueueSize(8))

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: id}))

	// wait for the first run to finish and release the claim
	deadline := time.Now().Add(5 * time.Second)
	for runner.count(id) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, runner.count(id))

	// claim may release a beat after the run is recorded
	for time.Now().Before(deadline) {
		q.imu.Lock()
		busy := q.inflight[id]
		q.imu.Unlock()
		if !busy {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.NoError(t, q.Enqueue(context.Background(), Job{SessionID: id}))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	assert.Equal(t, 2, runner.count(id))
}
