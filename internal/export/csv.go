package export

import (
	"context"
	"fmt"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/internal/dateutils"
	"github.com/finops-tools/expense-recon/internal/entity"
)

// MatchRow is one CSV/XLSX line of the reconciliation report.
type MatchRow struct {
	Employee        string `csv:"employee"`
	Basis           string `csv:"basis"`
	TxDate          string `csv:"transaction_date"`
	Merchant        string `csv:"merchant"`
	Amount          string `csv:"amount"`
	Credit          bool   `csv:"credit"`
	Incomplete      bool   `csv:"incomplete"`
	ReceiptDate     string `csv:"receipt_date"`
	ReceiptMerchant string `csv:"receipt_merchant"`
}

// ExportMatchesCSV returns the match report as CSV bytes.
func (s *Service) ExportMatchesCSV(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	start := time.Now()

	summary, err := s.summaries.GetSessionSummary(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load summary: %w", err)
	}
	rows := buildRows(summary)

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"session_id", sessionID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return []byte(out), nil
}

// buildRows flattens a summary into report rows, one per match result.
func buildRows(summary *entity.SessionSummary) []MatchRow {
	empByID := make(map[uuid.UUID]string, len(summary.Employees))
	for _, e := range summary.Employees {
		empByID[e.ID] = e.Name
	}
	txByID := make(map[uuid.UUID]*entity.Transaction, len(summary.Transactions))
	for i := range summary.Transactions {
		txByID[summary.Transactions[i].ID] = &summary.Transactions[i]
	}
	rcByID := make(map[uuid.UUID]*entity.Receipt, len(summary.Receipts))
	for i := range summary.Receipts {
		rcByID[summary.Receipts[i].ID] = &summary.Receipts[i]
	}

	rows := make([]MatchRow, 0, len(summary.Matches))
	for _, m := range summary.Matches {
		row := MatchRow{Basis: string(m.Basis)}
		if m.EmployeeID != nil {
			row.Employee = empByID[*m.EmployeeID]
		}
		if m.TransactionID != nil {
			if t := txByID[*m.TransactionID]; t != nil {
				row.TxDate = dateutils.ToISODate(t.TxDate)
				row.Merchant = t.Merchant
				row.Amount = t.Amount.StringFixed(2)
				row.Credit = t.IsCredit
				row.Incomplete = t.Incomplete
			}
		}
		if m.ReceiptID != nil {
			if rc := rcByID[*m.ReceiptID]; rc != nil {
				row.ReceiptDate = dateutils.ToISODate(rc.TxDate)
				row.ReceiptMerchant = rc.Merchant
				if m.TransactionID == nil {
					// unmatched receipt rows carry the receipt's own figures
					row.Amount = rc.Amount.StringFixed(2)
					row.Credit = rc.IsCredit
					row.Incomplete = rc.Incomplete
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
