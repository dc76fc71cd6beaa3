package common

import (
	"context"
	"time"
)

// Retry runs fn up to attempts times, sleeping backoff*n between tries.
// Used around record-store writes so transient failures do not flip a
// session to FAILED. Context cancellation aborts the wait.
func Retry(ctx context.Context, attempts int, backoff time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff * time.Duration(i+1)):
		}
	}
	return WrapError(err, "retries exhausted")
}
