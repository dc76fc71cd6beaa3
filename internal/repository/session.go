package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/gen/ent"
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/gen/ent/receipt"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/finops-tools/expense-recon/gen/ent/transaction"
	"github.com/finops-tools/expense-recon/internal/common"
	"github.com/finops-tools/expense-recon/internal/entity"
)

type sessionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSessionRepository(entc *ent.Client, log *slog.Logger) SessionRepository {
	return &sessionRepo{ent: entc, log: log}
}

func (r *sessionRepo) Create(ctx context.Context, expiresAt time.Time) (*entity.Session, error) {
	row, err := r.ent.Session.
		Create().
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		r.log.Error("session create failed", "err", err)
		return nil, err
	}
	r.log.Info("session created", "session_id", row.ID, "expires_at", expiresAt)
	return toSession(row), nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	row, err := r.ent.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toSession(row), nil
}

func (r *sessionRepo) Transition(ctx context.Context, id uuid.UUID, from, to constants.SessionStatus) error {
	if !constants.CanTransition(from, to) {
		return common.ErrIllegalTransition
	}
	// Compare-and-set on the stored status so a concurrent writer cannot
	// skip a required predecessor.
	n, err := r.ent.Session.
		Update().
		Where(session.ID(id), session.StatusEQ(string(from))).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		r.log.Error("session transition failed", "session_id", id, "from", from, "to", to, "err", err)
		return err
	}
	if n == 0 {
		return common.ErrIllegalTransition
	}
	r.log.Info("session transition", "session_id", id, "from", from, "to", to)
	return nil
}

func (r *sessionRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	n, err := r.ent.Session.
		Update().
		Where(
			session.ID(id),
			session.StatusNotIn(string(constants.StatusCompleted), string(constants.StatusFailed)),
		).
		SetStatus(string(constants.StatusFailed)).
		SetLastError(message).
		Save(ctx)
	if err != nil {
		r.log.Error("session mark-failed failed", "session_id", id, "err", err)
		return err
	}
	if n == 0 {
		// already terminal; nothing to record
		return nil
	}
	r.log.Warn("session failed", "session_id", id, "error", message)
	return nil
}

func (r *sessionRepo) AddWarnings(ctx context.Context, id uuid.UUID, warnings []string) error {
	if len(warnings) == 0 {
		return nil
	}
	row, err := r.ent.Session.Get(ctx, id)
	if err != nil {
		return err
	}
	merged := append(append([]string{}, row.Warnings...), warnings...)
	_, err = r.ent.Session.
		UpdateOneID(id).
		SetWarnings(merged).
		Save(ctx)
	if err != nil {
		r.log.Error("session add-warnings failed", "session_id", id, "err", err)
	}
	return err
}

func (r *sessionRepo) SetCounts(ctx context.Context, id uuid.UUID, files, txs, receipts, matched int) error {
	_, err := r.ent.Session.
		UpdateOneID(id).
		SetFileCount(files).
		SetTxCount(txs).
		SetReceiptCount(receipts).
		SetMatchedCount(matched).
		Save(ctx)
	if err != nil {
		r.log.Error("session set-counts failed", "session_id", id, "err", err)
	}
	return err
}

func (r *sessionRepo) ListStuck(ctx context.Context, cutoff time.Time) ([]*entity.Session, error) {
	rows, err := r.ent.Session.
		Query().
		Where(
			session.StatusNotIn(string(constants.StatusCompleted), string(constants.StatusFailed)),
			session.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSession(row))
	}
	return out, nil
}

func (r *sessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := r.ent.Session.
		Query().
		Where(session.ExpiresAtLT(now)).
		IDs(ctx)
	if err != nil || len(expired) == 0 {
		return 0, err
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := tx.MatchResult.Delete().Where(matchresult.SessionIDIn(expired...)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if _, err := tx.Transaction.Delete().Where(transaction.SessionIDIn(expired...)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if _, err := tx.Receipt.Delete().Where(receipt.SessionIDIn(expired...)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	n, err := tx.Session.Delete().Where(session.IDIn(expired...)).Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	r.log.Info("expired sessions removed", "count", n)
	return n, nil
}

func toSession(row *ent.Session) *entity.Session {
	return &entity.Session{
		ID:           row.ID,
		Status:       constants.SessionStatus(row.Status),
		FileCount:    row.FileCount,
		TxCount:      row.TxCount,
		ReceiptCount: row.ReceiptCount,
		MatchedCount: row.MatchedCount,
		LastError:    row.LastError,
		Warnings:     row.Warnings,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		ExpiresAt:    row.ExpiresAt,
	}
}
