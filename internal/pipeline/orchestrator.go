// Package pipeline contains the session orchestrator: the state machine
// that drives extraction, parsing, employee resolution, persistence and
// matching for one upload batch, and the watchdog that keeps sessions from
// getting stuck in a non-terminal state.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/async"
	"github.com/finops-tools/expense-recon/internal/common"
	"github.com/finops-tools/expense-recon/internal/entity"
	"github.com/finops-tools/expense-recon/internal/extract"
	"github.com/finops-tools/expense-recon/internal/match"
	"github.com/finops-tools/expense-recon/internal/parse"
	"github.com/finops-tools/expense-recon/internal/repository"
	"github.com/finops-tools/expense-recon/internal/resolver"
)

// UploadFile is one validated (filename, bytes, declared size) tuple from
// the ingress layer.
type UploadFile struct {
	Filename     string
	Data         []byte
	DeclaredSize int64
}

// Orchestrator owns session status transitions. Every transition is
// persisted before the next stage starts and logged with the prior and new
// state, so a stuck session always has a trail.
type Orchestrator struct {
	store     *repository.Store
	extractor extract.TextExtractor
	parser    *parse.Parser
	engine    *match.Engine
	cfg       *common.Config
	log       *slog.Logger

	// queue is nil when matching runs inline in the ingress goroutine
	queue async.Queue
	sf    singleflight.Group
}

func NewOrchestrator(
	store *repository.Store,
	extractor extract.TextExtractor,
	parser *parse.Parser,
	engine *match.Engine,
	cfg *common.Config,
	log *slog.Logger,
) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		store:     store,
		extractor: extractor,
		parser:    parser,
		engine:    engine,
		cfg:       cfg,
		log:       log,
	}
}

// SetQueue wires the background match queue. Without one, RunMatching is
// invoked inline at the end of ProcessBatch.
func (o *Orchestrator) SetQueue(q async.Queue) { o.queue = q }

// CreateSession opens a new upload batch in UPLOADING with the retention
// clock already running.
func (o *Orchestrator) CreateSession(ctx context.Context) (*entity.Session, error) {
	sess, err := o.store.Sessions.Create(ctx, time.Now().Add(o.cfg.Pipeline.SessionRetention))
	if err != nil {
		return nil, common.WrapError(err, "create session")
	}
	o.log.Info("session.created", "session_id", sess.ID, "expires_at", sess.ExpiresAt)
	return sess, nil
}

// ProcessBatch runs extraction for every file in the batch and hands the
// session to the matching stage. File-level failures are collected, not
// fatal; the session fails only when no forward progress is possible
// (every file unreadable, or the store rejects writes after retries).
func (o *Orchestrator) ProcessBatch(ctx context.Context, sessionID uuid.UUID, files []UploadFile) error {
	ctx = common.WithSessionID(ctx, sessionID)
	if err := o.transition(ctx, sessionID, constants.StatusUploading, constants.StatusExtracting); err != nil {
		return err
	}

	res := resolver.NewResolver(o.store.Employees, o.log)
	var (
		fileErrors []string
		warnings   []string
		unreadable int
		txTotal    int
		rcptTotal  int
	)

	for _, f := range files {
		if o.cfg.Pipeline.MaxUploadBytes > 0 && int64(len(f.Data)) > o.cfg.Pipeline.MaxUploadBytes {
			fileErrors = append(fileErrors, fmt.Sprintf("%s: exceeds upload limit", f.Filename))
			continue
		}

		txCount, rcptCount, fileWarnings, err := o.processFile(ctx, sessionID, res, f)
		warnings = append(warnings, fileWarnings...)
		if err != nil {
			if errors.Is(err, common.ErrUnreadablePDF) {
				unreadable++
				fileErrors = append(fileErrors, err.Error())
				continue
			}
			// store failure after retries, or context cancellation:
			// no forward progress possible
			msg := fmt.Sprintf("extraction: %s: %v", f.Filename, err)
			o.fail(ctx, sessionID, msg)
			return common.WrapError(err, msg)
		}
		txTotal += txCount
		rcptTotal += rcptCount
	}

	warnings = append(warnings, res.Warnings()...)
	warnings = append(warnings, fileErrors...)
	if len(warnings) > 0 {
		if err := o.store.Sessions.AddWarnings(ctx, sessionID, warnings); err != nil {
			o.log.Error("session.warnings.persist_failed", "session_id", sessionID, "err", err)
		}
	}

	if len(files) > 0 && unreadable == len(files) {
		msg := fmt.Sprintf("extraction: all %d files unreadable (no text layer)", len(files))
		o.fail(ctx, sessionID, msg)
		return common.WrapError(common.ErrUnreadablePDF, msg)
	}

	if err := o.setCounts(ctx, sessionID, len(files), txTotal, rcptTotal, 0); err != nil {
		msg := fmt.Sprintf("extraction: persist counts: %v", err)
		o.fail(ctx, sessionID, msg)
		return common.WrapError(err, msg)
	}

	if err := o.transition(ctx, sessionID, constants.StatusExtracting, constants.StatusMatching); err != nil {
		return err
	}

	if o.queue != nil && !o.cfg.Pipeline.InlineMatching {
		return o.queue.Enqueue(ctx, async.Job{SessionID: sessionID, SubmittedAt: time.Now()})
	}
	return o.RunMatching(ctx, sessionID)
}

// processFile is the per-file path: extract text, parse records, resolve
// the employee, replace this file's rows in the store. ReplaceForFile makes
// a retried run idempotent.
func (o *Orchestrator) processFile(ctx context.Context, sessionID uuid.UUID, res *resolver.Resolver, f UploadFile) (int, int, []string, error) {
	extracted, err := o.extractor.Extract(ctx, f.Filename, f.Data)
	if err != nil {
		return 0, 0, nil, err
	}
	warnings := extracted.Warnings

	parsed := o.parser.Parse(f.Filename, extracted.Text)
	warnings = append(warnings, parsed.Warnings...)

	var employeeID *uuid.UUID
	if parsed.EmployeeName != "" {
		emp, err := res.Resolve(ctx, parsed.EmployeeName)
		if err != nil {
			return 0, 0, warnings, common.WrapError(err, "resolve employee")
		}
		employeeID = &emp.ID
	} else if len(parsed.Records) > 0 {
		warnings = append(warnings, fmt.Sprintf("%s: no employee name found, records left unassigned", f.Filename))
	}

	txs, rcpts := splitRecords(sessionID, employeeID, f.Filename, parsed.Records)

	retries, backoff := o.cfg.Pipeline.StoreRetries, o.cfg.Pipeline.StoreBackoff
	if err := common.Retry(ctx, retries, backoff, func() error {
		return o.store.Transactions.ReplaceForFile(ctx, sessionID, f.Filename, txs)
	}); err != nil {
		return 0, 0, warnings, common.WrapError(common.ErrStoreWrite, err.Error())
	}
	if err := common.Retry(ctx, retries, backoff, func() error {
		return o.store.Receipts.ReplaceForFile(ctx, sessionID, f.Filename, rcpts)
	}); err != nil {
		return 0, 0, warnings, common.WrapError(common.ErrStoreWrite, err.Error())
	}

	o.log.Info("pipeline.file.ok",
		"session_id", sessionID,
		"file", f.Filename,
		"tier", string(parsed.Tier),
		"transactions", len(txs),
		"receipts", len(rcpts))
	return len(txs), len(rcpts), warnings, nil
}

// RunMatching is the background task entrypoint: payload is the session id
// alone, records are reloaded from the store. singleflight collapses
// concurrent calls for the same session into one run.
func (o *Orchestrator) RunMatching(ctx context.Context, sessionID uuid.UUID) error {
	_, err, _ := o.sf.Do(sessionID.String(), func() (interface{}, error) {
		return nil, o.runMatching(ctx, sessionID)
	})
	return err
}

func (o *Orchestrator) runMatching(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := o.store.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return common.WrapError(err, "load session")
	}
	if sess.Status != constants.StatusMatching {
		// failed by the watchdog, already completed, or not yet handed
		// over: abandon without writing anything
		o.log.Warn("match.skipped", "session_id", sessionID, "status", string(sess.Status))
		return nil
	}

	txs, err := o.store.Transactions.ListBySession(ctx, sessionID)
	if err != nil {
		return o.failMatching(ctx, sessionID, err)
	}
	rcpts, err := o.store.Receipts.ListBySession(ctx, sessionID)
	if err != nil {
		return o.failMatching(ctx, sessionID, err)
	}

	results := o.engine.Match(sessionID, txs, rcpts)

	if err := common.Retry(ctx, o.cfg.Pipeline.StoreRetries, o.cfg.Pipeline.StoreBackoff, func() error {
		return o.store.Matches.ReplaceForSession(ctx, sessionID, results)
	}); err != nil {
		return o.failMatching(ctx, sessionID, common.WrapError(common.ErrStoreWrite, err.Error()))
	}

	matched := 0
	for _, m := range results {
		if m.Basis.IsMatched() {
			matched++
		}
	}
	if err := o.setCounts(ctx, sessionID, sess.FileCount, len(txs), len(rcpts), matched); err != nil {
		return o.failMatching(ctx, sessionID, err)
	}

	return o.transition(ctx, sessionID, constants.StatusMatching, constants.StatusCompleted)
}

// GetSessionSummary is the read contract for the report renderer. It is
// served for terminal sessions only; a failed session still renders its
// partial state and error.
func (o *Orchestrator) GetSessionSummary(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSummary, error) {
	sess, err := o.store.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Status.IsTerminal() {
		return nil, common.WrapError(common.ErrInvalidInput,
			fmt.Sprintf("session %s is %s, summary requires a terminal status", sessionID, sess.Status))
	}

	txs, err := o.store.Transactions.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rcpts, err := o.store.Receipts.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	matches, err := o.store.Matches.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	empIDs := collectEmployeeIDs(txs, rcpts)
	emps, err := o.store.Employees.GetByIDs(ctx, empIDs)
	if err != nil {
		return nil, err
	}

	summary := &entity.SessionSummary{
		Session:      *sess,
		FileWarnings: sess.Warnings,
	}
	for _, e := range emps {
		summary.Employees = append(summary.Employees, *e)
	}
	for _, t := range txs {
		summary.Transactions = append(summary.Transactions, *t)
	}
	for _, rc := range rcpts {
		summary.Receipts = append(summary.Receipts, *rc)
	}
	for _, m := range matches {
		summary.Matches = append(summary.Matches, *m)
	}
	return summary, nil
}

func (o *Orchestrator) transition(ctx context.Context, sessionID uuid.UUID, from, to constants.SessionStatus) error {
	if err := o.store.Sessions.Transition(ctx, sessionID, from, to); err != nil {
		o.log.Error("session.transition.failed",
			"session_id", sessionID,
			"from", string(from),
			"to", string(to),
			"err", err)
		return common.WrapError(err, fmt.Sprintf("transition %s -> %s", from, to))
	}
	o.log.Info("session.transition",
		"session_id", sessionID,
		"from", string(from),
		"to", string(to))
	return nil
}

func (o *Orchestrator) setCounts(ctx context.Context, sessionID uuid.UUID, files, txs, rcpts, matched int) error {
	return common.Retry(ctx, o.cfg.Pipeline.StoreRetries, o.cfg.Pipeline.StoreBackoff, func() error {
		return o.store.Sessions.SetCounts(ctx, sessionID, files, txs, rcpts, matched)
	})
}

func (o *Orchestrator) fail(ctx context.Context, sessionID uuid.UUID, message string) {
	if err := o.store.Sessions.MarkFailed(ctx, sessionID, message); err != nil {
		o.log.Error("session.fail.persist_failed", "session_id", sessionID, "err", err)
		return
	}
	o.log.Error("session.failed", "session_id", sessionID, "cause", message)
}

func (o *Orchestrator) failMatching(ctx context.Context, sessionID uuid.UUID, err error) error {
	msg := fmt.Sprintf("matching: %v", err)
	o.fail(ctx, sessionID, msg)
	return common.WrapError(err, msg)
}

func splitRecords(sessionID uuid.UUID, employeeID *uuid.UUID, filename string, records []*entity.RawRecord) ([]*entity.Transaction, []*entity.Receipt) {
	var (
		txs   []*entity.Transaction
		rcpts []*entity.Receipt
	)
	for _, rec := range records {
		switch rec.Kind {
		case constants.KindReceipt:
			rcpts = append(rcpts, &entity.Receipt{
				SessionID:  sessionID,
				EmployeeID: employeeID,
				TxDate:     rec.TxDate,
				Merchant:   rec.Merchant,
				Amount:     rec.Amount,
				IsCredit:   rec.IsCredit,
				Incomplete: rec.Incomplete,
				SourceFile: filename,
				SourceLine: rec.SourceLine,
			})
		default:
			var group *string
			if rec.Group != nil {
				g := parse.NormalizeGroup(*rec.Group)
				group = &g
			}
			txs = append(txs, &entity.Transaction{
				SessionID:  sessionID,
				EmployeeID: employeeID,
				TxDate:     rec.TxDate,
				PostedDate: rec.PostedDate,
				Merchant:   rec.Merchant,
				Group:      group,
				Amount:     rec.Amount,
				IsCredit:   rec.IsCredit,
				Incomplete: rec.Incomplete,
				SourceFile: filename,
				SourceLine: rec.SourceLine,
			})
		}
	}
	return txs, rcpts
}

func collectEmployeeIDs(txs []*entity.Transaction, rcpts []*entity.Receipt) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, t := range txs {
		if t.EmployeeID != nil && !seen[*t.EmployeeID] {
			seen[*t.EmployeeID] = true
			ids = append(ids, *t.EmployeeID)
		}
	}
	for _, rc := range rcpts {
		if rc.EmployeeID != nil && !seen[*rc.EmployeeID] {
			seen[*rc.EmployeeID] = true
			ids = append(ids, *rc.EmployeeID)
		}
	}
	return ids
}
