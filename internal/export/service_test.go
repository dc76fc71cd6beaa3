package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/entity"
)

type fakeSummaries struct {
	summary *entity.SessionSummary
}

func (f *fakeSummaries) GetSessionSummary(_ context.Context, _ uuid.UUID) (*entity.SessionSummary, error) {
	return f.summary, nil
}

func testService(summary *entity.SessionSummary) *Service {
	return NewService(&fakeSummaries{summary: summary}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fixtureSummary() *entity.SessionSummary {
	empID := uuid.New()
	sessID := uuid.New()
	txID, rcID := uuid.New(), uuid.New()
	orphanTxID := uuid.New()
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	return &entity.SessionSummary{
		Session: entity.Session{
			ID:           sessID,
			Status:       constants.StatusCompleted,
			FileCount:    2,
			TxCount:      2,
			ReceiptCount: 1,
			MatchedCount: 1,
		},
		Employees: []entity.Employee{{ID: empID, Name: "Jane Doe"}},
		Transactions: []entity.Transaction{
			{ID: txID, SessionID: sessID, EmployeeID: &empID, TxDate: day, Merchant: "ACME SUPPLY CO", Amount: decimal.RequireFromString("1234.56")},
			{ID: orphanTxID, SessionID: sessID, EmployeeID: &empID, TxDate: day.AddDate(0, 0, 5), Merchant: "STARBUCKS", Amount: decimal.RequireFromString("15.00"), IsCredit: true, Incomplete: true},
		},
		Receipts: []entity.Receipt{
			{ID: rcID, SessionID: sessID, EmployeeID: &empID, TxDate: day, Merchant: "ACME SUPPLY CO", Amount: decimal.RequireFromString("1234.56")},
		},
		Matches: []entity.MatchResult{
			{ID: uuid.New(), SessionID: sessID, EmployeeID: &empID, TransactionID: &txID, ReceiptID: &rcID, Basis: constants.BasisExactAmountDate},
			{ID: uuid.New(), SessionID: sessID, EmployeeID: &empID, TransactionID: &orphanTxID, Basis: constants.BasisUnmatched},
		},
		FileWarnings: []string{"scan.pdf: no text layer"},
	}
}

func TestExportMatchesCSV(t *testing.T) {
	svc := testService(fixtureSummary())
	out, err := svc.ExportMatchesCSV(context.Background(), uuid.New())
	require.NoError(t, err)

	text := string(out)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 3, "header plus one row per match result")
	assert.Contains(t, lines[0], "employee")
	assert.Contains(t, lines[0], "basis")
	assert.Contains(t, text, "EXACT_AMOUNT_DATE")
	assert.Contains(t, text, "UNMATCHED")
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "1234.56")
	assert.Contains(t, text, "2024-01-15")
}

func TestExportMatchesXLSX(t *testing.T) {
	svc := testService(fixtureSummary())
	out, err := svc.ExportMatchesXLSX(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Matches")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee", rows[0][0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "EXACT_AMOUNT_DATE", rows[1][1])
	assert.Equal(t, "UNMATCHED", rows[2][1])
}

func TestExportSummaryJSONEmptySession(t *testing.T) {
	// zero-file boundary: a terminal session with no records at all must
	// still render a schema-valid summary with empty arrays
	svc := testService(&entity.SessionSummary{
		Session: entity.Session{ID: uuid.New(), Status: constants.StatusCompleted},
	})
	out, err := svc.ExportSummaryJSON(context.Background(), uuid.New())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, []any{}, decoded["transactions"])
	assert.Equal(t, []any{}, decoded["receipts"])
	assert.Equal(t, []any{}, decoded["matches"])
}

func TestExportSummaryJSONValidatesAgainstSchema(t *testing.T) {
	svc := testService(fixtureSummary())
	out, err := svc.ExportSummaryJSON(context.Background(), uuid.New())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	session, ok := decoded["session"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "COMPLETED", session["status"])
	assert.Len(t, decoded["matches"], 2)
}
