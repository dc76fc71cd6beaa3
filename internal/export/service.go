// Package export renders a completed session's reconciliation results as
// XLSX, CSV or a schema-validated JSON summary for download.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/finops-tools/expense-recon/internal/entity"
)

// SummaryReader is the read contract served by the session orchestrator
// once a session is terminal.
type SummaryReader interface {
	GetSessionSummary(ctx context.Context, sessionID uuid.UUID) (*entity.SessionSummary, error)
}

// Service is a tiny façade over the summary reader that produces report
// bytes for exports.
type Service struct {
	summaries SummaryReader
	logger    *slog.Logger
}

func NewService(summaries SummaryReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{summaries: summaries, logger: logger}
}

// ExportMatchesXLSX returns an XLSX workbook (as bytes) with one row per
// match result, matched and unmatched alike.
func (s *Service) ExportMatchesXLSX(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	start := time.Now()

	summary, err := s.summaries.GetSessionSummary(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load summary: %w", err)
	}
	rows := buildRows(summary)

	f := excelize.NewFile()
	const sheet = "Matches"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Employee",
		"Basis",
		"Transaction Date",
		"Merchant",
		"Amount",
		"Credit",
		"Receipt Date",
		"Receipt Merchant",
		"Incomplete",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		rowNum := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Employee)
		write(2, r.Basis)
		write(3, r.TxDate)
		write(4, truncate(r.Merchant, 80))
		write(5, r.Amount)
		write(6, r.Credit)
		write(7, r.ReceiptDate)
		write(8, truncate(r.ReceiptMerchant, 80))
		write(9, r.Incomplete)
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // employee
	_ = f.SetColWidth(sheet, "B", "B", 20) // basis
	_ = f.SetColWidth(sheet, "C", "C", 14) // date
	_ = f.SetColWidth(sheet, "D", "D", 32) // merchant
	_ = f.SetColWidth(sheet, "E", "F", 12) // amount, credit
	_ = f.SetColWidth(sheet, "G", "G", 14) // receipt date
	_ = f.SetColWidth(sheet, "H", "H", 32) // receipt merchant

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"session_id", sessionID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
