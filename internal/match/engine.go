// Package match pairs transactions with receipts per employee. The engine
// is a pure function over its inputs: given the same record set it always
// produces the same pairing, so re-matching a session is safe and
// regenerates results wholesale.
package match

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/dateutils"
	"github.com/finops-tools/expense-recon/internal/entity"
)

type Engine struct {
	toleranceDays int
	log           *slog.Logger
}

func NewEngine(toleranceDays int, log *slog.Logger) *Engine {
	return &Engine{toleranceDays: toleranceDays, log: log}
}

// Match pairs each transaction with an unused receipt belonging to the
// same employee, trying exact amount+date first, then exact amount within
// the tolerance window, then amount alone. A consumed receipt leaves the
// pool. Everything left unpaired is emitted as an explicit unmatched row
// so matched + unmatched always equals the persisted total.
func (e *Engine) Match(sessionID uuid.UUID, txs []*entity.Transaction, rcpts []*entity.Receipt) []*entity.MatchResult {
	txsByEmp := make(map[uuid.UUID][]*entity.Transaction)
	for _, t := range txs {
		txsByEmp[keyOf(t.EmployeeID)] = append(txsByEmp[keyOf(t.EmployeeID)], t)
	}
	rcptsByEmp := make(map[uuid.UUID][]*entity.Receipt)
	for _, rc := range rcpts {
		rcptsByEmp[keyOf(rc.EmployeeID)] = append(rcptsByEmp[keyOf(rc.EmployeeID)], rc)
	}

	keys := make([]uuid.UUID, 0, len(txsByEmp)+len(rcptsByEmp))
	seen := make(map[uuid.UUID]bool)
	for k := range txsByEmp {
		keys = append(keys, k)
		seen[k] = true
	}
	for k := range rcptsByEmp {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	var results []*entity.MatchResult
	matched := 0
	for _, key := range keys {
		empResults := e.matchEmployee(sessionID, txsByEmp[key], rcptsByEmp[key])
		for _, m := range empResults {
			if m.Basis.IsMatched() {
				matched++
			}
		}
		results = append(results, empResults...)
	}

	e.log.Info("match.done",
		"session_id", sessionID,
		"transactions", len(txs),
		"receipts", len(rcpts),
		"matched_pairs", matched,
		"results", len(results))
	return results
}

func (e *Engine) matchEmployee(sessionID uuid.UUID, txs []*entity.Transaction, rcpts []*entity.Receipt) []*entity.MatchResult {
	// stable input order: earliest transaction date first, id as tie-break
	txs = append([]*entity.Transaction(nil), txs...)
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].TxDate.Equal(txs[j].TxDate) {
			return txs[i].TxDate.Before(txs[j].TxDate)
		}
		return txs[i].ID.String() < txs[j].ID.String()
	})
	rcpts = append([]*entity.Receipt(nil), rcpts...)
	sort.Slice(rcpts, func(i, j int) bool {
		if !rcpts[i].TxDate.Equal(rcpts[j].TxDate) {
			return rcpts[i].TxDate.Before(rcpts[j].TxDate)
		}
		return rcpts[i].ID.String() < rcpts[j].ID.String()
	})

	used := make(map[uuid.UUID]bool, len(rcpts))
	var results []*entity.MatchResult

	for _, t := range txs {
		rc, basis := e.pick(t, rcpts, used)
		if rc == nil {
			results = append(results, unmatchedTx(sessionID, t))
			continue
		}
		used[rc.ID] = true
		txID, rcID := t.ID, rc.ID
		results = append(results, &entity.MatchResult{
			SessionID:     sessionID,
			EmployeeID:    t.EmployeeID,
			TransactionID: &txID,
			ReceiptID:     &rcID,
			Basis:         basis,
		})
	}

	for _, rc := range rcpts {
		if !used[rc.ID] {
			results = append(results, unmatchedReceipt(sessionID, rc))
		}
	}
	return results
}

// pick applies the tie-break cascade for one transaction. Credits only
// pair with credits; the flag carries the sign, so comparing it alongside
// the unsigned amount is a signed comparison.
func (e *Engine) pick(t *entity.Transaction, rcpts []*entity.Receipt, used map[uuid.UUID]bool) (*entity.Receipt, constants.MatchBasis) {
	// tier 1: exact amount, exact date
	for _, rc := range rcpts {
		if used[rc.ID] || !amountEqual(t, rc) {
			continue
		}
		if dateutils.DaysBetween(t.TxDate, rc.TxDate) == 0 {
			return rc, constants.BasisExactAmountDate
		}
	}
	// tier 2: exact amount, nearest date within the tolerance window
	var (
		best     *entity.Receipt
		bestDays int
	)
	for _, rc := range rcpts {
		if used[rc.ID] || !amountEqual(t, rc) {
			continue
		}
		days := dateutils.DaysBetween(t.TxDate, rc.TxDate)
		if days > e.toleranceDays {
			continue
		}
		if best == nil || days < bestDays {
			best, bestDays = rc, days
		}
	}
	if best != nil {
		return best, constants.BasisAmountDateNear
	}
	// tier 3: amount alone, any date
	for _, rc := range rcpts {
		if used[rc.ID] || !amountEqual(t, rc) {
			continue
		}
		return rc, constants.BasisAmountOnly
	}
	return nil, constants.BasisUnmatched
}

func amountEqual(t *entity.Transaction, rc *entity.Receipt) bool {
	return t.IsCredit == rc.IsCredit && t.Amount.Equal(rc.Amount)
}

func unmatchedTx(sessionID uuid.UUID, t *entity.Transaction) *entity.MatchResult {
	id := t.ID
	return &entity.MatchResult{
		SessionID:     sessionID,
		EmployeeID:    t.EmployeeID,
		TransactionID: &id,
		Basis:         constants.BasisUnmatched,
	}
}

func unmatchedReceipt(sessionID uuid.UUID, rc *entity.Receipt) *entity.MatchResult {
	id := rc.ID
	return &entity.MatchResult{
		SessionID:  sessionID,
		EmployeeID: rc.EmployeeID,
		Basis:      constants.BasisUnmatched,
		ReceiptID:  &id,
	}
}

func keyOf(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
