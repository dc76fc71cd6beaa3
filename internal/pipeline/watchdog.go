package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finops-tools/expense-recon/internal/common"
	"github.com/finops-tools/expense-recon/internal/repository"
)

// Watchdog forces sessions stuck in a non-terminal state past the timeout
// to FAILED, and sweeps sessions past their retention window. A session is
// never silently left in an intermediate state.
type Watchdog struct {
	sessions repository.SessionRepository
	cfg      common.WatchdogConfig
	log      *slog.Logger
}

func NewWatchdog(sessions repository.SessionRepository, cfg common.WatchdogConfig, log *slog.Logger) *Watchdog {
	if log == nil {
		log = slog.Default()
	}
	return &Watchdog{sessions: sessions, cfg: cfg, log: log}
}

// Run loops until ctx is cancelled, sweeping on every interval tick.
func (w *Watchdog) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()
	w.log.Info("watchdog.started", "timeout", w.cfg.Timeout, "interval", w.cfg.Interval)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("watchdog.stopped")
			return ctx.Err()
		case <-ticker.C:
			if n, err := w.SweepStuck(ctx, time.Now()); err != nil {
				w.log.Error("watchdog.sweep_stuck.failed", "err", err)
			} else if n > 0 {
				w.log.Warn("watchdog.sweep_stuck", "failed_sessions", n)
			}
			if n, err := w.SweepExpired(ctx, time.Now()); err != nil {
				w.log.Error("watchdog.sweep_expired.failed", "err", err)
			} else if n > 0 {
				w.log.Info("watchdog.sweep_expired", "deleted_sessions", n)
			}
		}
	}
}

// SweepStuck fails every non-terminal session whose status has not
// advanced within the timeout, recording a synthetic timeout error that
// names the stage it was stuck in.
func (w *Watchdog) SweepStuck(ctx context.Context, now time.Time) (int, error) {
	stuck, err := w.sessions.ListStuck(ctx, now.Add(-w.cfg.Timeout))
	if err != nil {
		return 0, err
	}
	failed := 0
	for _, sess := range stuck {
		msg := fmt.Sprintf("%v: stuck in %s since %s",
			common.ErrWatchdogTimeout, sess.Status, sess.UpdatedAt.UTC().Format(time.RFC3339))
		if err := w.sessions.MarkFailed(ctx, sess.ID, msg); err != nil {
			w.log.Error("watchdog.mark_failed.failed", "session_id", sess.ID, "err", err)
			continue
		}
		w.log.Warn("watchdog.session_failed",
			"session_id", sess.ID,
			"stuck_in", string(sess.Status),
			"last_update", sess.UpdatedAt)
		failed++
	}
	return failed, nil
}

// SweepExpired deletes sessions (and their records) past retention.
func (w *Watchdog) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return w.sessions.DeleteExpired(ctx, now)
}
