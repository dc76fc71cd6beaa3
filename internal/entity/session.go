package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/constants"
)

// Session represents one upload batch for data transfer between layers.
type Session struct {
	ID           uuid.UUID                `json:"id"`
	Status       constants.SessionStatus  `json:"status"`
	FileCount    int                      `json:"file_count"`
	TxCount      int                      `json:"tx_count"`
	ReceiptCount int                      `json:"receipt_count"`
	MatchedCount int                      `json:"matched_count"`
	LastError    *string                  `json:"last_error,omitempty"`
	Warnings     []string                 `json:"warnings,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	ExpiresAt    time.Time                `json:"expires_at"`
}
