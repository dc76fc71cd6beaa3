package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/gen/ent"
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/internal/entity"
)

type matchResultRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewMatchResultRepository(entc *ent.Client, log *slog.Logger) MatchResultRepository {
	return &matchResultRepo{ent: entc, log: log}
}

func (r *matchResultRepo) ReplaceForSession(ctx context.Context, sessionID uuid.UUID, results []*entity.MatchResult) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.MatchResult.
		Delete().
		Where(matchresult.SessionIDEQ(sessionID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	builders := make([]*ent.MatchResultCreate, 0, len(results))
	for _, m := range results {
		builders = append(builders, tx.MatchResult.
			Create().
			SetSessionID(sessionID).
			SetNillableEmployeeID(m.EmployeeID).
			SetNillableTransactionID(m.TransactionID).
			SetNillableReceiptID(m.ReceiptID).
			SetBasis(string(m.Basis)))
	}
	if len(builders) > 0 {
		if _, err := tx.MatchResult.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			r.log.Error("match result bulk insert failed", "session_id", sessionID, "err", err)
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.log.Info("match results replaced", "session_id", sessionID, "count", len(results))
	return nil
}

func (r *matchResultRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.MatchResult, error) {
	rows, err := r.ent.MatchResult.
		Query().
		Where(matchresult.SessionIDEQ(sessionID)).
		Order(ent.Asc(matchresult.FieldCreatedAt), ent.Asc(matchresult.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.MatchResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.MatchResult{
			ID:            row.ID,
			SessionID:     row.SessionID,
			EmployeeID:    row.EmployeeID,
			TransactionID: row.TransactionID,
			ReceiptID:     row.ReceiptID,
			Basis:         constants.MatchBasis(row.Basis),
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, nil
}
