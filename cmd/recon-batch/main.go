// recon-batch runs one reconciliation session over a directory of statement
// PDFs and writes the match report to a file. It defaults to a private
// in-memory SQLite database so it needs no infrastructure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/internal/common"
	"github.com/finops-tools/expense-recon/internal/export"
	"github.com/finops-tools/expense-recon/internal/extract"
	"github.com/finops-tools/expense-recon/internal/ingest"
	"github.com/finops-tools/expense-recon/internal/match"
	"github.com/finops-tools/expense-recon/internal/parse"
	"github.com/finops-tools/expense-recon/internal/pipeline"
	"github.com/finops-tools/expense-recon/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem  = flag.Bool("inmem", true, "use in-memory SQLite instead of DB_URL")
		dir    = flag.String("dir", "", "directory of statement PDFs to reconcile (required)")
		out    = flag.String("out", "", "output file path (defaults next to --dir)")
		format = flag.String("format", "xlsx", "output format: xlsx, csv or json")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	switch *format {
	case "xlsx", "csv", "json":
	default:
		printError("Error: --format must be xlsx, csv or json\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "matches."+*format)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	// one-shot run, so the matching stage executes in the caller's goroutine
	cfg.Pipeline.InlineMatching = true
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, cleanup, err := openStore(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	orch := pipeline.NewOrchestrator(
		store,
		extract.NewPDFExtractor(logger),
		parse.NewParser(cfg.Pipeline.StrictRegionCodes, logger),
		match.NewEngine(cfg.Matching.DateToleranceDays, logger),
		cfg,
		logger,
	)

	files, err := ingest.ReadBatchDir(*dir)
	if err != nil {
		logger.Error("failed to read batch directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		printError("Error: no statement PDFs found in %s\n", *dir)
		os.Exit(1)
	}

	sess, err := orch.CreateSession(ctx)
	if err != nil {
		logger.Error("failed to create session", "error", err)
		os.Exit(1)
	}

	logger.Info("processing batch", "session_id", sess.ID, "dir", *dir, "files", len(files))
	if err := orch.ProcessBatch(ctx, sess.ID, files); err != nil {
		logger.Error("batch processing failed", "session_id", sess.ID, "error", err)
		os.Exit(1)
	}

	report, err := renderReport(ctx, orch, sess.ID, *format, logger)
	if err != nil {
		logger.Error("failed to render report", "session_id", sess.ID, "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, report, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	final, err := store.Sessions.GetByID(ctx, sess.ID)
	if err != nil {
		logger.Error("failed to reload session", "session_id", sess.ID, "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete",
		"session_id", final.ID,
		"status", final.Status,
		"files", final.FileCount,
		"transactions", final.TxCount,
		"receipts", final.ReceiptCount,
		"matched", final.MatchedCount,
		"output_file", *out,
	)

	fmt.Printf("Reconciliation complete (%s)\n", final.Status)
	fmt.Printf("- Files: %d\n", final.FileCount)
	fmt.Printf("- Transactions: %d\n", final.TxCount)
	fmt.Printf("- Receipts: %d\n", final.ReceiptCount)
	fmt.Printf("- Matched: %d\n", final.MatchedCount)
	fmt.Printf("- Output: %s\n", *out)
}

func openStore(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*repository.Store, func(), error) {
	if inmem || cfg.Database.DSN == "" {
		entc, err := repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = entc.Close() }
		return repository.NewStore(entc, logger), cleanup, nil
	}

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { repository.Close(entc, pool, logger) }
	return repository.NewStore(entc, logger), cleanup, nil
}

func renderReport(ctx context.Context, orch *pipeline.Orchestrator, sessionID uuid.UUID, format string, logger *slog.Logger) ([]byte, error) {
	svc := export.NewService(orch, logger)
	switch format {
	case "csv":
		return svc.ExportMatchesCSV(ctx, sessionID)
	case "json":
		return svc.ExportSummaryJSON(ctx, sessionID)
	default:
		return svc.ExportMatchesXLSX(ctx, sessionID)
	}
}
