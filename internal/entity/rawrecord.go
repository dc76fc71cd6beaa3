package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finops-tools/expense-recon/constants"
)

// RawRecord is an intermediate parsed line: classified as transaction or
// receipt but not yet attached to an employee or persisted. Optional fields
// are pointers so an absent value is distinguishable from a zero one;
// Incomplete is set whenever a lower-confidence pattern left any of them
// unpopulated.
type RawRecord struct {
	Kind       constants.RecordKind
	TxDate     time.Time
	PostedDate *time.Time
	Merchant   string
	Region     *string
	Group      *string
	Amount     decimal.Decimal
	IsCredit   bool
	Incomplete bool
	SourceLine string
}
