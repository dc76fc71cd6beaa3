// recond is the reconciliation daemon: it watches an inbox directory for
// statement batches, runs extraction inline, and matches sessions on a
// background worker queue until signalled to stop.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finops-tools/expense-recon/internal/async"
	"github.com/finops-tools/expense-recon/internal/common"
	"github.com/finops-tools/expense-recon/internal/extract"
	"github.com/finops-tools/expense-recon/internal/ingest"
	"github.com/finops-tools/expense-recon/internal/match"
	"github.com/finops-tools/expense-recon/internal/parse"
	"github.com/finops-tools/expense-recon/internal/pipeline"
	"github.com/finops-tools/expense-recon/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Ingest.InboxDir == "" {
		logger.Error("INBOX_DIR is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	store := repository.NewStore(entc, logger)

	orch := pipeline.NewOrchestrator(
		store,
		extract.NewPDFExtractor(logger),
		parse.NewParser(cfg.Pipeline.StrictRegionCodes, logger),
		match.NewEngine(cfg.Matching.DateToleranceDays, logger),
		cfg,
		logger,
	)

	var queue *async.MatchQueue
	if !cfg.Pipeline.InlineMatching {
		queue = async.NewMatchQueue(orch, logger,
			async.WithWorkers(cfg.Matching.Workers),
			async.WithQueueSize(cfg.Matching.QueueSize),
			async.WithTaskTimeout(cfg.Matching.TaskTimeout),
		)
		orch.SetQueue(queue)
	}

	watchdog := pipeline.NewWatchdog(store.Sessions, cfg.Watchdog, logger)
	inbox := ingest.NewInbox(orch, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return inbox.Run(gctx, cfg.Ingest.InboxDir, cfg.Ingest.Debounce)
	})
	g.Go(func() error {
		return watchdog.Run(gctx)
	})

	logger.Info("recond started",
		"inbox", cfg.Ingest.InboxDir,
		"inline_matching", cfg.Pipeline.InlineMatching,
		"match_workers", cfg.Matching.Workers,
	)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("supervised task failed", "error", err)
	}

	if queue != nil {
		drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		queue.Shutdown(drainCtx)
	}
	logger.Info("recond stopped")
}
