package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
)

// MatchResult represents a decided pairing (or explicit non-pairing) between
// a transaction and a receipt for one employee.
type MatchResult struct {
	ID            uuid.UUID            `json:"id"`
	SessionID     uuid.UUID            `json:"session_id"`
	EmployeeID    *uuid.UUID           `json:"employee_id,omitempty"`
	TransactionID *uuid.UUID           `json:"transaction_id,omitempty"`
	ReceiptID     *uuid.UUID           `json:"receipt_id,omitempty"`
	Basis         constants.MatchBasis `json:"basis"`
	CreatedAt     time.Time            `json:"created_at"`
}
