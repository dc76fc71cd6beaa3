// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSessionID, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldEmployeeID, v))
}

// TxDate applies equality check predicate on the "tx_date" field. It's identical to TxDateEQ.
func TxDate(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTxDate, v))
}

// PostedDate applies equality check predicate on the "posted_date" field. It's identical to PostedDateEQ.
func PostedDate(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPostedDate, v))
}

// Merchant applies equality check predicate on the "merchant" field. It's identical to MerchantEQ.
func Merchant(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldMerchant, v))
}

// Group applies equality check predicate on the "group" field. It's identical to GroupEQ.
func Group(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldGroup, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAmount, v))
}

// IsCredit applies equality check predicate on the "is_credit" field. It's identical to IsCreditEQ.
func IsCredit(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldIsCredit, v))
}

// Incomplete applies equality check predicate on the "incomplete" field. It's identical to IncompleteEQ.
func Incomplete(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldIncomplete, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSourceFile, v))
}

// SourceLine applies equality check predicate on the "source_line" field. It's identical to SourceLineEQ.
func SourceLine(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSourceLine, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSessionID, vs...))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDIsNil applies the IsNil predicate on the "employee_id" field.
func EmployeeIDIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldEmployeeID))
}

// EmployeeIDNotNil applies the NotNil predicate on the "employee_id" field.
func EmployeeIDNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldEmployeeID))
}

// TxDateEQ applies the EQ predicate on the "tx_date" field.
func TxDateEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldTxDate, v))
}

// TxDateNEQ applies the NEQ predicate on the "tx_date" field.
func TxDateNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldTxDate, v))
}

// TxDateIn applies the In predicate on the "tx_date" field.
func TxDateIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldTxDate, vs...))
}

// TxDateNotIn applies the NotIn predicate on the "tx_date" field.
func TxDateNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldTxDate, vs...))
}

// TxDateGT applies the GT predicate on the "tx_date" field.
func TxDateGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldTxDate, v))
}

// TxDateGTE applies the GTE predicate on the "tx_date" field.
func TxDateGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldTxDate, v))
}

// TxDateLT applies the LT predicate on the "tx_date" field.
func TxDateLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldTxDate, v))
}

// TxDateLTE applies the LTE predicate on the "tx_date" field.
func TxDateLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldTxDate, v))
}

// PostedDateEQ applies the EQ predicate on the "posted_date" field.
func PostedDateEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldPostedDate, v))
}

// PostedDateNEQ applies the NEQ predicate on the "posted_date" field.
func PostedDateNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldPostedDate, v))
}

// PostedDateIn applies the In predicate on the "posted_date" field.
func PostedDateIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldPostedDate, vs...))
}

// PostedDateNotIn applies the NotIn predicate on the "posted_date" field.
func PostedDateNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldPostedDate, vs...))
}

// PostedDateGT applies the GT predicate on the "posted_date" field.
func PostedDateGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldPostedDate, v))
}

// PostedDateGTE applies the GTE predicate on the "posted_date" field.
func PostedDateGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldPostedDate, v))
}

// PostedDateLT applies the LT predicate on the "posted_date" field.
func PostedDateLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldPostedDate, v))
}

// PostedDateLTE applies the LTE predicate on the "posted_date" field.
func PostedDateLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldPostedDate, v))
}

// PostedDateIsNil applies the IsNil predicate on the "posted_date" field.
func PostedDateIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldPostedDate))
}

// PostedDateNotNil applies the NotNil predicate on the "posted_date" field.
func PostedDateNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldPostedDate))
}

// MerchantEQ applies the EQ predicate on the "merchant" field.
func MerchantEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldMerchant, v))
}

// MerchantNEQ applies the NEQ predicate on the "merchant" field.
func MerchantNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldMerchant, v))
}

// MerchantIn applies the In predicate on the "merchant" field.
func MerchantIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldMerchant, vs...))
}

// MerchantNotIn applies the NotIn predicate on the "merchant" field.
func MerchantNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldMerchant, vs...))
}

// MerchantGT applies the GT predicate on the "merchant" field.
func MerchantGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldMerchant, v))
}

// MerchantGTE applies the GTE predicate on the "merchant" field.
func MerchantGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldMerchant, v))
}

// MerchantLT applies the LT predicate on the "merchant" field.
func MerchantLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldMerchant, v))
}

// MerchantLTE applies the LTE predicate on the "merchant" field.
func MerchantLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldMerchant, v))
}

// MerchantContains applies the Contains predicate on the "merchant" field.
func MerchantContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldMerchant, v))
}

// MerchantHasPrefix applies the HasPrefix predicate on the "merchant" field.
func MerchantHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldMerchant, v))
}

// MerchantHasSuffix applies the HasSuffix predicate on the "merchant" field.
func MerchantHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldMerchant, v))
}

// MerchantEqualFold applies the EqualFold predicate on the "merchant" field.
func MerchantEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldMerchant, v))
}

// MerchantContainsFold applies the ContainsFold predicate on the "merchant" field.
func MerchantContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldMerchant, v))
}

// GroupEQ applies the EQ predicate on the "group" field.
func GroupEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldGroup, v))
}

// GroupNEQ applies the NEQ predicate on the "group" field.
func GroupNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldGroup, v))
}

// GroupIn applies the In predicate on the "group" field.
func GroupIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldGroup, vs...))
}

// GroupNotIn applies the NotIn predicate on the "group" field.
func GroupNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldGroup, vs...))
}

// GroupGT applies the GT predicate on the "group" field.
func GroupGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldGroup, v))
}

// GroupGTE applies the GTE predicate on the "group" field.
func GroupGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldGroup, v))
}

// GroupLT applies the LT predicate on the "group" field.
func GroupLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldGroup, v))
}

// GroupLTE applies the LTE predicate on the "group" field.
func GroupLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldGroup, v))
}

// GroupContains applies the Contains predicate on the "group" field.
func GroupContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldGroup, v))
}

// GroupHasPrefix applies the HasPrefix predicate on the "group" field.
func GroupHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldGroup, v))
}

// GroupHasSuffix applies the HasSuffix predicate on the "group" field.
func GroupHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldGroup, v))
}

// GroupIsNil applies the IsNil predicate on the "group" field.
func GroupIsNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldIsNull(FieldGroup))
}

// GroupNotNil applies the NotNil predicate on the "group" field.
func GroupNotNil() predicate.Transaction {
	return predicate.Transaction(sql.FieldNotNull(FieldGroup))
}

// GroupEqualFold applies the EqualFold predicate on the "group" field.
func GroupEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldGroup, v))
}

// GroupContainsFold applies the ContainsFold predicate on the "group" field.
func GroupContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldGroup, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldAmount, v))
}

// IsCreditEQ applies the EQ predicate on the "is_credit" field.
func IsCreditEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldIsCredit, v))
}

// IsCreditNEQ applies the NEQ predicate on the "is_credit" field.
func IsCreditNEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldIsCredit, v))
}

// IncompleteEQ applies the EQ predicate on the "incomplete" field.
func IncompleteEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldIncomplete, v))
}

// IncompleteNEQ applies the NEQ predicate on the "incomplete" field.
func IncompleteNEQ(v bool) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldIncomplete, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldSourceFile, v))
}

// SourceLineEQ applies the EQ predicate on the "source_line" field.
func SourceLineEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldSourceLine, v))
}

// SourceLineNEQ applies the NEQ predicate on the "source_line" field.
func SourceLineNEQ(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldSourceLine, v))
}

// SourceLineIn applies the In predicate on the "source_line" field.
func SourceLineIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldSourceLine, vs...))
}

// SourceLineNotIn applies the NotIn predicate on the "source_line" field.
func SourceLineNotIn(vs ...string) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldSourceLine, vs...))
}

// SourceLineGT applies the GT predicate on the "source_line" field.
func SourceLineGT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldSourceLine, v))
}

// SourceLineGTE applies the GTE predicate on the "source_line" field.
func SourceLineGTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldSourceLine, v))
}

// SourceLineLT applies the LT predicate on the "source_line" field.
func SourceLineLT(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldSourceLine, v))
}

// SourceLineLTE applies the LTE predicate on the "source_line" field.
func SourceLineLTE(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldSourceLine, v))
}

// SourceLineContains applies the Contains predicate on the "source_line" field.
func SourceLineContains(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContains(FieldSourceLine, v))
}

// SourceLineHasPrefix applies the HasPrefix predicate on the "source_line" field.
func SourceLineHasPrefix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasPrefix(FieldSourceLine, v))
}

// SourceLineHasSuffix applies the HasSuffix predicate on the "source_line" field.
func SourceLineHasSuffix(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldHasSuffix(FieldSourceLine, v))
}

// SourceLineEqualFold applies the EqualFold predicate on the "source_line" field.
func SourceLineEqualFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldEqualFold(FieldSourceLine, v))
}

// SourceLineContainsFold applies the ContainsFold predicate on the "source_line" field.
func SourceLineContainsFold(v string) predicate.Transaction {
	return predicate.Transaction(sql.FieldContainsFold(FieldSourceLine, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transaction {
	return predicate.Transaction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEmployee applies the HasEdge predicate on the "employee" edge.
func HasEmployee() predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmployeeTable, EmployeeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmployeeWith applies the HasEdge predicate on the "employee" edge with a given conditions (other predicates).
func HasEmployeeWith(preds ...predicate.Employee) predicate.Transaction {
	return predicate.Transaction(func(s *sql.Selector) {
		step := newEmployeeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transaction) predicate.Transaction {
	return predicate.Transaction(sql.NotPredicates(p))
}
