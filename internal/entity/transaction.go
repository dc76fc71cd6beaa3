package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents one parsed spend line for data transfer between layers.
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	SessionID  uuid.UUID       `json:"session_id"`
	EmployeeID *uuid.UUID      `json:"employee_id,omitempty"`
	TxDate     time.Time       `json:"tx_date"`
	PostedDate *time.Time      `json:"posted_date,omitempty"`
	Merchant   string          `json:"merchant"`
	Group      *string         `json:"group,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	IsCredit   bool            `json:"is_credit"`
	Incomplete bool            `json:"incomplete"`
	SourceFile string          `json:"source_file"`
	SourceLine string          `json:"source_line"`
	CreatedAt  time.Time       `json:"created_at"`
}
