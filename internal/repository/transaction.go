package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/gen/ent"
	"github.com/finops-tools/expense-recon/gen/ent/transaction"
	"github.com/finops-tools/expense-recon/internal/entity"
)

type transactionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTransactionRepository(entc *ent.Client, log *slog.Logger) TransactionRepository {
	return &transactionRepo{ent: entc, log: log}
}

func (r *transactionRepo) ReplaceForFile(ctx context.Context, sessionID uuid.UUID, sourceFile string, txs []*entity.Transaction) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.Transaction.
		Delete().
		Where(
			transaction.SessionIDEQ(sessionID),
			transaction.SourceFileEQ(sourceFile),
		).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	builders := make([]*ent.TransactionCreate, 0, len(txs))
	for _, t := range txs {
		builders = append(builders, tx.Transaction.
			Create().
			SetSessionID(sessionID).
			SetNillableEmployeeID(t.EmployeeID).
			SetTxDate(t.TxDate).
			SetNillablePostedDate(t.PostedDate).
			SetMerchant(t.Merchant).
			SetNillableGroup(t.Group).
			SetAmount(t.Amount).
			SetIsCredit(t.IsCredit).
			SetIncomplete(t.Incomplete).
			SetSourceFile(sourceFile).
			SetSourceLine(t.SourceLine))
	}
	if len(builders) > 0 {
		if _, err := tx.Transaction.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			r.log.Error("transaction bulk insert failed", "session_id", sessionID, "file", sourceFile, "err", err)
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.log.Info("transactions replaced", "session_id", sessionID, "file", sourceFile, "count", len(txs))
	return nil
}

func (r *transactionRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Transaction, error) {
	rows, err := r.ent.Transaction.
		Query().
		Where(transaction.SessionIDEQ(sessionID)).
		Order(ent.Asc(transaction.FieldTxDate), ent.Asc(transaction.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTransaction(row))
	}
	return out, nil
}

func toTransaction(row *ent.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:         row.ID,
		SessionID:  row.SessionID,
		EmployeeID: row.EmployeeID,
		TxDate:     row.TxDate,
		PostedDate: row.PostedDate,
		Merchant:   row.Merchant,
		Group:      row.Group,
		Amount:     row.Amount,
		IsCredit:   row.IsCredit,
		Incomplete: row.Incomplete,
		SourceFile: row.SourceFile,
		SourceLine: row.SourceLine,
		CreatedAt:  row.CreatedAt,
	}
}
