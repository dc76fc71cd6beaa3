// Package repository is the persistence boundary. Interfaces are defined
// here; the ent-backed implementations live alongside them and an in-memory
// implementation for tests and single-process runs lives in ./inmemory.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/entity"
)

// SessionRepository owns session rows and the status state machine's
// durability: every transition is persisted before the next stage runs.
type SessionRepository interface {
	Create(ctx context.Context, expiresAt time.Time) (*entity.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Transition performs a compare-and-set status change and fails with
	// common.ErrIllegalTransition when the edge is not in the graph or the
	// stored status no longer equals from.
	Transition(ctx context.Context, id uuid.UUID, from, to constants.SessionStatus) error
	// MarkFailed forces a non-terminal session to FAILED and records the
	// causal message. Terminal sessions are left untouched.
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	AddWarnings(ctx context.Context, id uuid.UUID, warnings []string) error
	SetCounts(ctx context.Context, id uuid.UUID, files, txs, receipts, matched int) error
	// ListStuck returns non-terminal sessions not updated since cutoff.
	ListStuck(ctx context.Context, cutoff time.Time) ([]*entity.Session, error)
	// DeleteExpired removes sessions (and their records) past retention.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// EmployeeRepository owns employees and the alias table.
type EmployeeRepository interface {
	// FindByAlias looks up a normalized alias; returns (nil, nil) on miss.
	FindByAlias(ctx context.Context, alias string) (*entity.Employee, error)
	// Create inserts an employee with name as canonical name and alias as
	// its sole alias.
	Create(ctx context.Context, name, alias string) (*entity.Employee, error)
	// ConfirmAlias upserts the alias -> employee mapping and refreshes its
	// confirmed_at timestamp. Re-pointing an existing alias is how the
	// most-recently-confirmed mapping wins a resolver conflict.
	ConfirmAlias(ctx context.Context, employeeID uuid.UUID, alias string) error
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Employee, error)
}

// TransactionRepository owns parsed card-activity lines.
type TransactionRepository interface {
	// ReplaceForFile atomically swaps all transactions parsed from one
	// source file, which is what makes worker re-entry idempotent.
	ReplaceForFile(ctx context.Context, sessionID uuid.UUID, sourceFile string, txs []*entity.Transaction) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Transaction, error)
}

// ReceiptRepository owns parsed receipt lines.
type ReceiptRepository interface {
	ReplaceForFile(ctx context.Context, sessionID uuid.UUID, sourceFile string, rcpts []*entity.Receipt) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.Receipt, error)
}

// MatchResultRepository owns match results. Results are only ever written
// wholesale per session; re-matching regenerates the full set.
type MatchResultRepository interface {
	ReplaceForSession(ctx context.Context, sessionID uuid.UUID, results []*entity.MatchResult) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*entity.MatchResult, error)
}

// Store bundles the five repositories the orchestrator needs.
type Store struct {
	Sessions     SessionRepository
	Employees    EmployeeRepository
	Transactions TransactionRepository
	Receipts     ReceiptRepository
	Matches      MatchResultRepository
}
