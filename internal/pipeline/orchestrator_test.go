package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/common"
	"github.com/finops-tools/expense-recon/internal/extract"
	"github.com/finops-tools/expense-recon/internal/match"
	"github.com/finops-tools/expense-recon/internal/parse"
	"github.com/finops-tools/expense-recon/internal/repository/inmemory"
)

// stubExtractor serves canned page text per filename; unknown files behave
// like scanned PDFs with no text layer.
type stubExtractor struct {
	texts map[string]string
}

func (s *stubExtractor) Extract(_ context.Context, filename string, _ []byte) (extract.Result, error) {
	if text, ok := s.texts[filename]; ok {
		return extract.Result{Text: text, Pages: 1, Method: "pdf-text"}, nil
	}
	return extract.Result{}, common.WrapError(common.ErrUnreadablePDF, fmt.Sprintf("%s: no text layer", filename))
}

const activityText = `Corporate Card Activity Statement
Cardholder: JANE DOE
01/15/2024 01/16/2024 01 TXN4415-22 ACME SUPPLY CO, CA TRAVEL Office chairs $1,234.56
01/17/2024 01/18/2024 01 TXN4415-23 DELTA AIR, GA AIRFARE Flight home $420.00
01/20/2024 01/21/2024 01 TXN4415-24 STARBUCKS, WA MEALS Team coffee (15.00)
`

const receiptText = `EXPENSE RECEIPT REPORT
Employee: JANE DOE
01/15/2024 ACME SUPPLY CO $1,234.56
01/17/2024 DELTA AIR $420.00
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *common.Config {
	return &common.Config{
		Pipeline: common.PipelineConfig{
			MaxUploadBytes:   1 << 20,
			SessionRetention: time.Hour,
			StoreRetries:     2,
			StoreBackoff:     time.Millisecond,
		},
		Matching: common.MatchingConfig{DateToleranceDays: 3},
		Watchdog: common.WatchdogConfig{Timeout: 5 * time.Minute, Interval: 30 * time.Second},
	}
}

func newTestOrchestrator(t *testing.T, texts map[string]string) (*Orchestrator, *inmemory.Store) {
	t.Helper()
	raw, store := inmemory.NewStore()
	log := testLogger()
	o := NewOrchestrator(
		store,
		&stubExtractor{texts: texts},
		parse.NewParser(false, log),
		match.NewEngine(3, log),
		testConfig(),
		log,
	)
	return o, raw
}

func file(name string) UploadFile {
	return UploadFile{Filename: name, Data: []byte("%PDF-stub"), DeclaredSize: 9}
}

func TestProcessBatchMatchesActivityAgainstReceipts(t *testing.T) {
	o, _ := newTestOrchestrator(t, map[string]string{
		"activity.pdf": activityText,
		"receipts.pdf": receiptText,
	})
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	err = o.ProcessBatch(ctx, sess.ID, []UploadFile{file("activity.pdf"), file("receipts.pdf")})
	require.NoError(t, err)

	summary, err := o.GetSessionSummary(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, summary.Session.Status)
	assert.Equal(t, 2, summary.Session.FileCount)
	assert.Equal(t, 3, summary.Session.TxCount)
	assert.Equal(t, 2, summary.Session.ReceiptCount)
	assert.Equal(t, 2, summary.Session.MatchedCount)

	require.Len(t, summary.Employees, 1)
	assert.Equal(t, "JANE DOE", summary.Employees[0].Name)

	matchedPairs, unmatched := 0, 0
	for _, m := range summary.Matches {
		if m.Basis.IsMatched() {
			matchedPairs++
		} else {
			unmatched++
		}
	}
	assert.Equal(t, 2, matchedPairs)
	assert.Equal(t, 1, unmatched)

	// matched + unmatched transactions account for every transaction
	txRows := 0
	for _, m := range summary.Matches {
		if m.TransactionID != nil {
			txRows++
		}
	}
	assert.Equal(t, len(summary.Transactions), txRows)
}

func TestProcessBatchAllFilesUnreadableFailsSession(t *testing.T) {
	o, _ := newTestOrchestrator(t, nil)
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	err = o.ProcessBatch(ctx, sess.ID, []UploadFile{file("scan.pdf")})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnreadablePDF)

	got, err := o.store.Sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusFailed, got.Status)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "extraction")
	assert.Contains(t, *got.LastError, "unreadable")
}

func TestProcessBatchPartialUnreadableStillCompletes(t *testing.T) {
	o, _ := newTestOrchestrator(t, map[string]string{"activity.pdf": activityText})
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	err = o.ProcessBatch(ctx, sess.ID, []UploadFile{file("activity.pdf"), file("scan.pdf")})
	require.NoError(t, err)

	summary, err := o.GetSessionSummary(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, summary.Session.Status)
	assert.Equal(t, 3, summary.Session.TxCount)

	// the unreadable file is reported on the summary, not fatal
	found := false
	for _, w := range summary.FileWarnings {
		if strings.Contains(w, "scan.pdf") {
			found = true
		}
	}
	assert.True(t, found, "file-level error should surface in warnings: %v", summary.FileWarnings)
}

func TestProcessBatchZeroFilesCompletes(t *testing.T) {
	o, _ := newTestOrchestrator(t, nil)
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, o.ProcessBatch(ctx, sess.ID, nil))

	summary, err := o.GetSessionSummary(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, summary.Session.Status)
	assert.Zero(t, summary.Session.TxCount)
	assert.Zero(t, summary.Session.ReceiptCount)
	assert.Empty(t, summary.Matches)
}

func TestProcessBatchParseMissCompletesWithWarning(t *testing.T) {
	o, _ := newTestOrchestrator(t, map[string]string{"odd.pdf": "nothing statement-like here\n"})
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, o.ProcessBatch(ctx, sess.ID, []UploadFile{file("odd.pdf")}))

	summary, err := o.GetSessionSummary(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, summary.Session.Status)
	assert.Zero(t, summary.Session.TxCount)
	assert.NotEmpty(t, summary.FileWarnings)
}

func TestRunMatchingIsIdempotent(t *testing.T) {
	o, _ := newTestOrchestrator(t, map[string]string{
		"activity.pdf": activityText,
		"receipts.pdf": receiptText,
	})
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, o.ProcessBatch(ctx, sess.ID, []UploadFile{file("activity.pdf"), file("receipts.pdf")}))

	// session is already COMPLETED; a stray retry must not duplicate or
	// disturb results
	require.NoError(t, o.RunMatching(ctx, sess.ID))

	summary, err := o.GetSessionSummary(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Matches, 3)
	assert.Equal(t, constants.StatusCompleted, summary.Session.Status)
}

func TestTerminalStatesAreSinks(t *testing.T) {
	o, _ := newTestOrchestrator(t, map[string]string{"activity.pdf": activityText})
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, o.ProcessBatch(ctx, sess.ID, []UploadFile{file("activity.pdf")}))

	// completed -> anything is rejected
	err = o.store.Sessions.Transition(ctx, sess.ID, constants.StatusCompleted, constants.StatusMatching)
	assert.ErrorIs(t, err, common.ErrIllegalTransition)

	// MarkFailed leaves terminal sessions untouched
	require.NoError(t, o.store.Sessions.MarkFailed(ctx, sess.ID, "too late"))
	got, err := o.store.Sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusCompleted, got.Status)
	assert.Nil(t, got.LastError)
}

func TestWatchdogFailsStuckSession(t *testing.T) {
	o, raw := newTestOrchestrator(t, nil)
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, o.store.Sessions.Transition(ctx, sess.ID, constants.StatusUploading, constants.StatusExtracting))
	require.NoError(t, o.store.Sessions.Transition(ctx, sess.ID, constants.StatusExtracting, constants.StatusMatching))

	// session last advanced well past the watchdog bound
	raw.TouchUpdatedAt(sess.ID, time.Now().Add(-time.Hour))

	w := NewWatchdog(o.store.Sessions, common.WatchdogConfig{Timeout: 5 * time.Minute, Interval: time.Second}, testLogger())
	n, err := w.SweepStuck(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := o.store.Sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusFailed, got.Status)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "watchdog timeout")
	assert.Contains(t, *got.LastError, "MATCHING")
}

func TestWatchdogIgnoresHealthySessions(t *testing.T) {
	o, _ := newTestOrchestrator(t, nil)
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	w := NewWatchdog(o.store.Sessions, common.WatchdogConfig{Timeout: 5 * time.Minute, Interval: time.Second}, testLogger())
	n, err := w.SweepStuck(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := o.store.Sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusUploading, got.Status)
}

func TestWatchdogSweepsExpiredSessions(t *testing.T) {
	o, _ := newTestOrchestrator(t, nil)
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	w := NewWatchdog(o.store.Sessions, testConfig().Watchdog, testLogger())
	n, err := w.SweepExpired(ctx, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = o.store.Sessions.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetSessionSummaryRequiresTerminalStatus(t *testing.T) {
	o, _ := newTestOrchestrator(t, nil)
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)

	_, err = o.GetSessionSummary(ctx, sess.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestProcessBatchReentryDoesNotDuplicateRecords(t *testing.T) {
	o, _ := newTestOrchestrator(t, map[string]string{"activity.pdf": activityText})
	ctx := context.Background()

	sess, err := o.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, o.ProcessBatch(ctx, sess.ID, []UploadFile{file("activity.pdf")}))

	// a retried worker re-persisting the same file must replace, not append
	res2 := o.parser.Parse("activity.pdf", activityText)
	require.NotEmpty(t, res2.Records)
	txs, err := o.store.Transactions.ListBySession(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	require.NoError(t, o.store.Transactions.ReplaceForFile(ctx, sess.ID, "activity.pdf", txs))
	again, err := o.store.Transactions.ListBySession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, again, 3)
}
