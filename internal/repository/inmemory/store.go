// Package inmemory provides a map-backed implementation of the repository
// interfaces. It is safe for concurrent use and is intended for tests and
// single-process runs; multi-instance deployments use the ent/Postgres
// implementation.
package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/common"
	"github.com/finops-tools/expense-recon/internal/entity"
	"github.com/finops-tools/expense-recon/internal/repository"
)

// Store keeps every table in process memory behind one mutex. The
// per-repository views returned by NewStore all share it.
type Store struct {
	mu sync.RWMutex

	sessions  map[uuid.UUID]*entity.Session
	employees map[uuid.UUID]*entity.Employee
	aliases   map[string]aliasRow // normalized alias -> employee
	txs       map[uuid.UUID]*entity.Transaction
	rcpts     map[uuid.UUID]*entity.Receipt
	matches   map[uuid.UUID][]*entity.MatchResult // by session
}

type aliasRow struct {
	employeeID  uuid.UUID
	confirmedAt time.Time
}

// NewStore creates an empty in-memory store plus the repository bundle the
// orchestrator consumes. The raw *Store is returned alongside for test
// hooks.
func NewStore() (*Store, *repository.Store) {
	s := &Store{
		sessions:  make(map[uuid.UUID]*entity.Session),
		employees: make(map[uuid.UUID]*entity.Employee),
		aliases:   make(map[string]aliasRow),
		txs:       make(map[uuid.UUID]*entity.Transaction),
		rcpts:     make(map[uuid.UUID]*entity.Receipt),
		matches:   make(map[uuid.UUID][]*entity.MatchResult),
	}
	return s, &repository.Store{
		Sessions:     &sessionStore{s},
		Employees:    &employeeStore{s},
		Transactions: &transactionStore{s},
		Receipts:     &receiptStore{s},
		Matches:      &matchStore{s},
	}
}

// TouchUpdatedAt backdates a session's updated_at; test hook for watchdog
// scenarios.
func (s *Store) TouchUpdatedAt(id uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.sessions[id]; ok {
		row.UpdatedAt = at
	}
}

// --- sessions ---

type sessionStore struct{ *Store }

var _ repository.SessionRepository = (*sessionStore)(nil)

func (s *sessionStore) Create(_ context.Context, expiresAt time.Time) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	row := &entity.Session{
		ID:        uuid.New(),
		Status:    constants.StatusUploading,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: expiresAt,
	}
	s.sessions[row.ID] = row
	return cloneSession(row), nil
}

func (s *sessionStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.sessions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneSession(row), nil
}

func (s *sessionStore) Transition(_ context.Context, id uuid.UUID, from, to constants.SessionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.sessions[id]
	if !ok {
		return common.ErrNotFound
	}
	if row.Status != from || !constants.CanTransition(from, to) {
		return common.ErrIllegalTransition
	}
	row.Status = to
	row.UpdatedAt = time.Now()
	return nil
}

func (s *sessionStore) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.sessions[id]
	if !ok {
		return common.ErrNotFound
	}
	if row.Status.IsTerminal() {
		return nil
	}
	row.Status = constants.StatusFailed
	row.LastError = &message
	row.UpdatedAt = time.Now()
	return nil
}

func (s *sessionStore) AddWarnings(_ context.Context, id uuid.UUID, warnings []string) error {
	if len(warnings) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.sessions[id]
	if !ok {
		return common.ErrNotFound
	}
	row.Warnings = append(row.Warnings, warnings...)
	row.UpdatedAt = time.Now()
	return nil
}

func (s *sessionStore) SetCounts(_ context.Context, id uuid.UUID, files, txs, receipts, matched int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.sessions[id]
	if !ok {
		return common.ErrNotFound
	}
	row.FileCount = files
	row.TxCount = txs
	row.ReceiptCount = receipts
	row.MatchedCount = matched
	row.UpdatedAt = time.Now()
	return nil
}

func (s *sessionStore) ListStuck(_ context.Context, cutoff time.Time) ([]*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Session
	for _, row := range s.sessions {
		if !row.Status.IsTerminal() && row.UpdatedAt.Before(cutoff) {
			out = append(out, cloneSession(row))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return out, nil
}

func (s *sessionStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, row := range s.sessions {
		if row.ExpiresAt.Before(now) {
			delete(s.sessions, id)
			delete(s.matches, id)
			for txID, t := range s.txs {
				if t.SessionID == id {
					delete(s.txs, txID)
				}
			}
			for rcID, rc := range s.rcpts {
				if rc.SessionID == id {
					delete(s.rcpts, rcID)
				}
			}
			n++
		}
	}
	return n, nil
}

// --- employees ---

type employeeStore struct{ *Store }

var _ repository.EmployeeRepository = (*employeeStore)(nil)

func (s *employeeStore) FindByAlias(_ context.Context, alias string) (*entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.aliases[alias]
	if !ok {
		return nil, nil
	}
	emp, ok := s.employees[row.employeeID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneEmployee(emp), nil
}

func (s *employeeStore) Create(_ context.Context, name, alias string) (*entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	emp := &entity.Employee{
		ID:        uuid.New(),
		Name:      name,
		Aliases:   []string{alias},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.employees[emp.ID] = emp
	s.aliases[alias] = aliasRow{employeeID: emp.ID, confirmedAt: now}
	return cloneEmployee(emp), nil
}

func (s *employeeStore) ConfirmAlias(_ context.Context, employeeID uuid.UUID, alias string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.employees[employeeID]
	if !ok {
		return common.ErrNotFound
	}
	s.aliases[alias] = aliasRow{employeeID: employeeID, confirmedAt: time.Now()}
	for _, a := range emp.Aliases {
		if strings.EqualFold(a, alias) {
			return nil
		}
	}
	emp.Aliases = append(emp.Aliases, alias)
	return nil
}

func (s *employeeStore) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Employee, 0, len(ids))
	for _, id := range ids {
		if emp, ok := s.employees[id]; ok {
			out = append(out, cloneEmployee(emp))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// --- transactions ---

type transactionStore struct{ *Store }

var _ repository.TransactionRepository = (*transactionStore)(nil)

func (s *transactionStore) ReplaceForFile(_ context.Context, sessionID uuid.UUID, sourceFile string, txs []*entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.txs {
		if t.SessionID == sessionID && t.SourceFile == sourceFile {
			delete(s.txs, id)
		}
	}
	now := time.Now()
	for _, t := range txs {
		cp := *t
		cp.ID = uuid.New()
		cp.SessionID = sessionID
		cp.SourceFile = sourceFile
		cp.CreatedAt = now
		s.txs[cp.ID] = &cp
	}
	return nil
}

func (s *transactionStore) ListBySession(_ context.Context, sessionID uuid.UUID) ([]*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Transaction
	for _, t := range s.txs {
		if t.SessionID == sessionID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TxDate.Equal(out[j].TxDate) {
			return out[i].TxDate.Before(out[j].TxDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// --- receipts ---

type receiptStore struct{ *Store }

var _ repository.ReceiptRepository = (*receiptStore)(nil)

func (s *receiptStore) ReplaceForFile(_ context.Context, sessionID uuid.UUID, sourceFile string, rcpts []*entity.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rc := range s.rcpts {
		if rc.SessionID == sessionID && rc.SourceFile == sourceFile {
			delete(s.rcpts, id)
		}
	}
	now := time.Now()
	for _, rc := range rcpts {
		cp := *rc
		cp.ID = uuid.New()
		cp.SessionID = sessionID
		cp.SourceFile = sourceFile
		cp.CreatedAt = now
		s.rcpts[cp.ID] = &cp
	}
	return nil
}

func (s *receiptStore) ListBySession(_ context.Context, sessionID uuid.UUID) ([]*entity.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.Receipt
	for _, rc := range s.rcpts {
		if rc.SessionID == sessionID {
			cp := *rc
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TxDate.Equal(out[j].TxDate) {
			return out[i].TxDate.Before(out[j].TxDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// --- match results ---

type matchStore struct{ *Store }

var _ repository.MatchResultRepository = (*matchStore)(nil)

func (s *matchStore) ReplaceForSession(_ context.Context, sessionID uuid.UUID, results []*entity.MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	rows := make([]*entity.MatchResult, 0, len(results))
	for _, m := range results {
		cp := *m
		cp.ID = uuid.New()
		cp.SessionID = sessionID
		cp.CreatedAt = now
		rows = append(rows, &cp)
	}
	s.matches[sessionID] = rows
	return nil
}

func (s *matchStore) ListBySession(_ context.Context, sessionID uuid.UUID) ([]*entity.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.matches[sessionID]
	out := make([]*entity.MatchResult, 0, len(rows))
	for _, m := range rows {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func cloneSession(row *entity.Session) *entity.Session {
	cp := *row
	cp.Warnings = append([]string(nil), row.Warnings...)
	return &cp
}

func cloneEmployee(row *entity.Employee) *entity.Employee {
	cp := *row
	cp.Aliases = append([]string(nil), row.Aliases...)
	return &cp
}
