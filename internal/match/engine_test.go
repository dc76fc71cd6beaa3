package match

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/expense-recon/constants"
	"github.com/finops-tools/expense-recon/internal/entity"
)

func testEngine(tolerance int) *Engine {
	return NewEngine(tolerance, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func tx(emp uuid.UUID, d int, amount string, credit bool) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		EmployeeID: &emp,
		TxDate:     day(d),
		Amount:     decimal.RequireFromString(amount),
		IsCredit:   credit,
	}
}

func rcpt(emp uuid.UUID, d int, amount string, credit bool) *entity.Receipt {
	return &entity.Receipt{
		ID:         uuid.New(),
		EmployeeID: &emp,
		TxDate:     day(d),
		Amount:     decimal.RequireFromString(amount),
		IsCredit:   credit,
	}
}

func countBasis(results []*entity.MatchResult, basis constants.MatchBasis) int {
	n := 0
	for _, m := range results {
		if m.Basis == basis {
			n++
		}
	}
	return n
}

func TestMatchExactAmountAndDate(t *testing.T) {
	emp := uuid.New()
	sessionID := uuid.New()
	txs := []*entity.Transaction{tx(emp, 15, "100.00", false)}
	rcpts := []*entity.Receipt{rcpt(emp, 15, "100.00", false)}

	results := testEngine(3).Match(sessionID, txs, rcpts)
	require.Len(t, results, 1)
	assert.Equal(t, constants.BasisExactAmountDate, results[0].Basis)
	assert.Equal(t, txs[0].ID, *results[0].TransactionID)
	assert.Equal(t, rcpts[0].ID, *results[0].ReceiptID)
}

func TestMatchDateToleranceWindow(t *testing.T) {
	emp := uuid.New()
	txs := []*entity.Transaction{tx(emp, 15, "100.00", false)}

	near := testEngine(3).Match(uuid.New(), txs, []*entity.Receipt{rcpt(emp, 17, "100.00", false)})
	require.Len(t, near, 1)
	assert.Equal(t, constants.BasisAmountDateNear, near[0].Basis)

	far := testEngine(3).Match(uuid.New(), txs, []*entity.Receipt{rcpt(emp, 25, "100.00", false)})
	require.Len(t, far, 1)
	assert.Equal(t, constants.BasisAmountOnly, far[0].Basis)
}

func TestMatchPrefersNearestDateInWindow(t *testing.T) {
	emp := uuid.New()
	txs := []*entity.Transaction{tx(emp, 15, "100.00", false)}
	closer := rcpt(emp, 16, "100.00", false)
	farther := rcpt(emp, 18, "100.00", false)

	results := testEngine(3).Match(uuid.New(), txs, []*entity.Receipt{farther, closer})
	require.Len(t, results, 2)
	assert.Equal(t, closer.ID, *results[0].ReceiptID)
}

func TestMatchCreditsOnlyPairWithCredits(t *testing.T) {
	emp := uuid.New()
	txs := []*entity.Transaction{tx(emp, 15, "50.00", true)}
	rcpts := []*entity.Receipt{rcpt(emp, 15, "50.00", false)}

	results := testEngine(3).Match(uuid.New(), txs, rcpts)
	require.Len(t, results, 2)
	assert.Equal(t, 0, countBasis(results, constants.BasisExactAmountDate))
	assert.Equal(t, 2, countBasis(results, constants.BasisUnmatched))
}

func TestMatchReceiptConsumedOnce(t *testing.T) {
	emp := uuid.New()
	txs := []*entity.Transaction{
		tx(emp, 15, "100.00", false),
		tx(emp, 15, "100.00", false),
	}
	rcpts := []*entity.Receipt{rcpt(emp, 15, "100.00", false)}

	results := testEngine(3).Match(uuid.New(), txs, rcpts)
	require.Len(t, results, 2)
	assert.Equal(t, 1, countBasis(results, constants.BasisExactAmountDate))
	assert.Equal(t, 1, countBasis(results, constants.BasisUnmatched))
}

func TestMatchEmployeesDoNotCrossMatch(t *testing.T) {
	empA, empB := uuid.New(), uuid.New()
	txs := []*entity.Transaction{tx(empA, 15, "100.00", false)}
	rcpts := []*entity.Receipt{rcpt(empB, 15, "100.00", false)}

	results := testEngine(3).Match(uuid.New(), txs, rcpts)
	require.Len(t, results, 2)
	assert.Equal(t, 2, countBasis(results, constants.BasisUnmatched))
}

// two matched pairs and one unmatched transaction out of 3 transactions
// and 2 receipts for one employee
func TestMatchActivityAgainstReceiptReport(t *testing.T) {
	emp := uuid.New()
	sessionID := uuid.New()
	txs := []*entity.Transaction{
		tx(emp, 15, "1234.56", false),
		tx(emp, 17, "420.00", false),
		tx(emp, 20, "15.00", false),
	}
	rcpts := []*entity.Receipt{
		rcpt(emp, 15, "1234.56", false),
		rcpt(emp, 17, "420.00", false),
	}

	results := testEngine(3).Match(sessionID, txs, rcpts)
	assert.Equal(t, 2, countBasis(results, constants.BasisExactAmountDate))
	assert.Equal(t, 1, countBasis(results, constants.BasisUnmatched))
	require.Len(t, results, 3)

	// matched + unmatched transactions account for every transaction
	txRows := 0
	for _, m := range results {
		if m.TransactionID != nil {
			txRows++
		}
	}
	assert.Equal(t, len(txs), txRows)
}

func TestMatchDeterministic(t *testing.T) {
	emp := uuid.New()
	sessionID := uuid.New()
	txs := []*entity.Transaction{
		tx(emp, 15, "100.00", false),
		tx(emp, 16, "100.00", false),
		tx(emp, 20, "42.50", false),
	}
	rcpts := []*entity.Receipt{
		rcpt(emp, 16, "100.00", false),
		rcpt(emp, 15, "100.00", false),
		rcpt(emp, 28, "42.50", false),
	}

	first := testEngine(3).Match(sessionID, txs, rcpts)
	second := testEngine(3).Match(sessionID, txs, rcpts)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Basis, second[i].Basis)
		assert.Equal(t, first[i].TransactionID, second[i].TransactionID)
		assert.Equal(t, first[i].ReceiptID, second[i].ReceiptID)
	}
}

func TestMatchUnresolvedRecordsStayUnmatched(t *testing.T) {
	sessionID := uuid.New()
	orphan := &entity.Transaction{
		ID:     uuid.New(),
		TxDate: day(15),
		Amount: decimal.RequireFromString("9.99"),
	}
	results := testEngine(3).Match(sessionID, []*entity.Transaction{orphan}, nil)
	require.Len(t, results, 1)
	assert.Equal(t, constants.BasisUnmatched, results[0].Basis)
	assert.Nil(t, results[0].EmployeeID)
}

func TestMatchEmptyInputs(t *testing.T) {
	results := testEngine(3).Match(uuid.New(), nil, nil)
	assert.Empty(t, results)
}
