package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/gen/ent"
	"github.com/finops-tools/expense-recon/gen/ent/receipt"
	"github.com/finops-tools/expense-recon/internal/entity"
)

type receiptRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReceiptRepository(entc *ent.Client, log *slog.Logger) ReceiptRepository {
	return &receiptRepo{ent: entc, log: log}
}

func (r *receiptRepo) ReplaceForFile(ctx context.Context, sessionID uuid.UUID, sourceFile string, rcpts []*entity.Receipt) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Receipt.
		Delete().
		Where(
			receipt.SessionIDEQ(sessionID),
			receipt.SourceFileEQ(sourceFile),
		).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	builders := make([]*ent.ReceiptCreate, 0, len(rcpts))
	for _, rc := range rcpts {
		builders = append(builders, tx.Receipt.
			Create().
			SetSessionID(sessionID).
			SetNillableEmployeeID(rc.EmployeeID).
			SetTxDate(rc.TxDate).
			SetMerchant(rc.Merchant).
			SetAmount(rc.Amount).
			SetIsCredit(rc.IsCredit).
			SetIncomplete(rc.Incomplete).
			SetNillableImageRef(rc.ImageRef).
			SetSourceFile(sourceFile).
			SetSourceLine(rc.SourceLine))
	}
	if len(builders) > 0 {
		if _, err := tx.Receipt.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			r.log.Error("receipt bulk insert failed", "session_id", sessionID, "file", sourceFile, "err", err)
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.log.Info("receipts replaced", "session_id", sessionID, "file", sourceFile, "count", len(rcpts))
	return nil
}

func (r *receiptRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Receipt, error) {
	rows, err := r.ent.Receipt.
		Query().
		Where(receipt.SessionIDEQ(sessionID)).
		Order(ent.Asc(receipt.FieldTxDate), ent.Asc(receipt.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Receipt, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReceipt(row))
	}
	return out, nil
}

func toReceipt(row *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:         row.ID,
		SessionID:  row.SessionID,
		EmployeeID: row.EmployeeID,
		TxDate:     row.TxDate,
		Merchant:   row.Merchant,
		Amount:     row.Amount,
		IsCredit:   row.IsCredit,
		Incomplete: row.Incomplete,
		ImageRef:   row.ImageRef,
		SourceFile: row.SourceFile,
		SourceLine: row.SourceLine,
		CreatedAt:  row.CreatedAt,
	}
}
