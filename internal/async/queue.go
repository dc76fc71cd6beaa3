// Package async runs the matching stage in a background worker pool. A
// task carries only the session identifier; workers reload transactions
// and receipts from the record store, never file bytes.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job asks the pool to run matching for one session.
type Job struct {
	SessionID   uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// MatchRunner is the matching entrypoint the pool drives; implemented by
// the session orchestrator.
type MatchRunner interface {
	RunMatching(ctx context.Context, sessionID uuid.UUID) error
}
