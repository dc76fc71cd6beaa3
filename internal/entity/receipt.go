package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt represents one parsed receipt line for data transfer between layers.
type Receipt struct {
	ID         uuid.UUID       `json:"id"`
	SessionID  uuid.UUID       `json:"session_id"`
	EmployeeID *uuid.UUID      `json:"employee_id,omitempty"`
	TxDate     time.Time       `json:"tx_date"`
	Merchant   string          `json:"merchant"`
	Amount     decimal.Decimal `json:"amount"`
	IsCredit   bool            `json:"is_credit"`
	Incomplete bool            `json:"incomplete"`
	ImageRef   *string         `json:"image_ref,omitempty"`
	SourceFile string          `json:"source_file"`
	SourceLine string          `json:"source_line"`
	CreatedAt  time.Time       `json:"created_at"`
}
