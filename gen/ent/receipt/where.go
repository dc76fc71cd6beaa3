// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSessionID, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldEmployeeID, v))
}

// TxDate applies equality check predicate on the "tx_date" field. It's identical to TxDateEQ.
func TxDate(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTxDate, v))
}

// Merchant applies equality check predicate on the "merchant" field. It's identical to MerchantEQ.
func Merchant(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldMerchant, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAmount, v))
}

// IsCredit applies equality check predicate on the "is_credit" field. It's identical to IsCreditEQ.
func IsCredit(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIsCredit, v))
}

// Incomplete applies equality check predicate on the "incomplete" field. It's identical to IncompleteEQ.
func Incomplete(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIncomplete, v))
}

// ImageRef applies equality check predicate on the "image_ref" field. It's identical to ImageRefEQ.
func ImageRef(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldImageRef, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSourceFile, v))
}

// SourceLine applies equality check predicate on the "source_line" field. It's identical to SourceLineEQ.
func SourceLine(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSourceLine, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldSessionID, vs...))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDIsNil applies the IsNil predicate on the "employee_id" field.
func EmployeeIDIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldEmployeeID))
}

// EmployeeIDNotNil applies the NotNil predicate on the "employee_id" field.
func EmployeeIDNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldEmployeeID))
}

// TxDateEQ applies the EQ predicate on the "tx_date" field.
func TxDateEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTxDate, v))
}

// TxDateNEQ applies the NEQ predicate on the "tx_date" field.
func TxDateNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTxDate, v))
}

// TxDateIn applies the In predicate on the "tx_date" field.
func TxDateIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTxDate, vs...))
}

// TxDateNotIn applies the NotIn predicate on the "tx_date" field.
func TxDateNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTxDate, vs...))
}

// TxDateGT applies the GT predicate on the "tx_date" field.
func TxDateGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTxDate, v))
}

// TxDateGTE applies the GTE predicate on the "tx_date" field.
func TxDateGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTxDate, v))
}

// TxDateLT applies the LT predicate on the "tx_date" field.
func TxDateLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTxDate, v))
}

// TxDateLTE applies the LTE predicate on the "tx_date" field.
func TxDateLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTxDate, v))
}

// MerchantEQ applies the EQ predicate on the "merchant" field.
func MerchantEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldMerchant, v))
}

// MerchantNEQ applies the NEQ predicate on the "merchant" field.
func MerchantNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldMerchant, v))
}

// MerchantIn applies the In predicate on the "merchant" field.
func MerchantIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldMerchant, vs...))
}

// MerchantNotIn applies the NotIn predicate on the "merchant" field.
func MerchantNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldMerchant, vs...))
}

// MerchantGT applies the GT predicate on the "merchant" field.
func MerchantGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldMerchant, v))
}

// MerchantGTE applies the GTE predicate on the "merchant" field.
func MerchantGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldMerchant, v))
}

// MerchantLT applies the LT predicate on the "merchant" field.
func MerchantLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldMerchant, v))
}

// MerchantLTE applies the LTE predicate on the "merchant" field.
func MerchantLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldMerchant, v))
}

// MerchantContains applies the Contains predicate on the "merchant" field.
func MerchantContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldMerchant, v))
}

// MerchantHasPrefix applies the HasPrefix predicate on the "merchant" field.
func MerchantHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldMerchant, v))
}

// MerchantHasSuffix applies the HasSuffix predicate on the "merchant" field.
func MerchantHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldMerchant, v))
}

// MerchantEqualFold applies the EqualFold predicate on the "merchant" field.
func MerchantEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldMerchant, v))
}

// MerchantContainsFold applies the ContainsFold predicate on the "merchant" field.
func MerchantContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldMerchant, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldAmount, v))
}

// IsCreditEQ applies the EQ predicate on the "is_credit" field.
func IsCreditEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIsCredit, v))
}

// IsCreditNEQ applies the NEQ predicate on the "is_credit" field.
func IsCreditNEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldIsCredit, v))
}

// IncompleteEQ applies the EQ predicate on the "incomplete" field.
func IncompleteEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIncomplete, v))
}

// IncompleteNEQ applies the NEQ predicate on the "incomplete" field.
func IncompleteNEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldIncomplete, v))
}

// ImageRefEQ applies the EQ predicate on the "image_ref" field.
func ImageRefEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldImageRef, v))
}

// ImageRefNEQ applies the NEQ predicate on the "image_ref" field.
func ImageRefNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldImageRef, v))
}

// ImageRefIn applies the In predicate on the "image_ref" field.
func ImageRefIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldImageRef, vs...))
}

// ImageRefNotIn applies the NotIn predicate on the "image_ref" field.
func ImageRefNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldImageRef, vs...))
}

// ImageRefGT applies the GT predicate on the "image_ref" field.
func ImageRefGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldImageRef, v))
}

// ImageRefGTE applies the GTE predicate on the "image_ref" field.
func ImageRefGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldImageRef, v))
}

// ImageRefLT applies the LT predicate on the "image_ref" field.
func ImageRefLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldImageRef, v))
}

// ImageRefLTE applies the LTE predicate on the "image_ref" field.
func ImageRefLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldImageRef, v))
}

// ImageRefContains applies the Contains predicate on the "image_ref" field.
func ImageRefContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldImageRef, v))
}

// ImageRefHasPrefix applies the HasPrefix predicate on the "image_ref" field.
func ImageRefHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldImageRef, v))
}

// ImageRefHasSuffix applies the HasSuffix predicate on the "image_ref" field.
func ImageRefHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldImageRef, v))
}

// ImageRefIsNil applies the IsNil predicate on the "image_ref" field.
func ImageRefIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldImageRef))
}

// ImageRefNotNil applies the NotNil predicate on the "image_ref" field.
func ImageRefNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldImageRef))
}

// ImageRefEqualFold applies the EqualFold predicate on the "image_ref" field.
func ImageRefEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldImageRef, v))
}

// ImageRefContainsFold applies the ContainsFold predicate on the "image_ref" field.
func ImageRefContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldImageRef, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldSourceFile, v))
}

// SourceLineEQ applies the EQ predicate on the "source_line" field.
func SourceLineEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSourceLine, v))
}

// SourceLineNEQ applies the NEQ predicate on the "source_line" field.
func SourceLineNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldSourceLine, v))
}

// SourceLineIn applies the In predicate on the "source_line" field.
func SourceLineIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldSourceLine, vs...))
}

// SourceLineNotIn applies the NotIn predicate on the "source_line" field.
func SourceLineNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldSourceLine, vs...))
}

// SourceLineGT applies the GT predicate on the "source_line" field.
func SourceLineGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldSourceLine, v))
}

// SourceLineGTE applies the GTE predicate on the "source_line" field.
func SourceLineGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldSourceLine, v))
}

// SourceLineLT applies the LT predicate on the "source_line" field.
func SourceLineLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldSourceLine, v))
}

// SourceLineLTE applies the LTE predicate on the "source_line" field.
func SourceLineLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldSourceLine, v))
}

// SourceLineContains applies the Contains predicate on the "source_line" field.
func SourceLineContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldSourceLine, v))
}

// SourceLineHasPrefix applies the HasPrefix predicate on the "source_line" field.
func SourceLineHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldSourceLine, v))
}

// SourceLineHasSuffix applies the HasSuffix predicate on the "source_line" field.
func SourceLineHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldSourceLine, v))
}

// SourceLineEqualFold applies the EqualFold predicate on the "source_line" field.
func SourceLineEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldSourceLine, v))
}

// SourceLineContainsFold applies the ContainsFold predicate on the "source_line" field.
func SourceLineContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldSourceLine, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEmployee applies the HasEdge predicate on the "employee" edge.
func HasEmployee() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmployeeTable, EmployeeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmployeeWith applies the HasEdge predicate on the "employee" edge with a given conditions (other predicates).
func HasEmployeeWith(preds ...predicate.Employee) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newEmployeeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.NotPredicates(p))
}
