// Code generated by ent, DO NOT EDIT.

package matchresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldSessionID, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldEmployeeID, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldTransactionID, v))
}

// ReceiptID applies equality check predicate on the "receipt_id" field. It's identical to ReceiptIDEQ.
func ReceiptID(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldReceiptID, v))
}

// Basis applies equality check predicate on the "basis" field. It's identical to BasisEQ.
func Basis(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldBasis, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDIsNil applies the IsNil predicate on the "employee_id" field.
func EmployeeIDIsNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIsNull(FieldEmployeeID))
}

// EmployeeIDNotNil applies the NotNil predicate on the "employee_id" field.
func EmployeeIDNotNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotNull(FieldEmployeeID))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDIsNil applies the IsNil predicate on the "transaction_id" field.
func TransactionIDIsNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIsNull(FieldTransactionID))
}

// TransactionIDNotNil applies the NotNil predicate on the "transaction_id" field.
func TransactionIDNotNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotNull(FieldTransactionID))
}

// ReceiptIDEQ applies the EQ predicate on the "receipt_id" field.
func ReceiptIDEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldReceiptID, v))
}

// ReceiptIDNEQ applies the NEQ predicate on the "receipt_id" field.
func ReceiptIDNEQ(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldReceiptID, v))
}

// ReceiptIDIn applies the In predicate on the "receipt_id" field.
func ReceiptIDIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldReceiptID, vs...))
}

// ReceiptIDNotIn applies the NotIn predicate on the "receipt_id" field.
func ReceiptIDNotIn(vs ...uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldReceiptID, vs...))
}

// ReceiptIDGT applies the GT predicate on the "receipt_id" field.
func ReceiptIDGT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldReceiptID, v))
}

// ReceiptIDGTE applies the GTE predicate on the "receipt_id" field.
func ReceiptIDGTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldReceiptID, v))
}

// ReceiptIDLT applies the LT predicate on the "receipt_id" field.
func ReceiptIDLT(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldReceiptID, v))
}

// ReceiptIDLTE applies the LTE predicate on the "receipt_id" field.
func ReceiptIDLTE(v uuid.UUID) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldReceiptID, v))
}

// ReceiptIDIsNil applies the IsNil predicate on the "receipt_id" field.
func ReceiptIDIsNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIsNull(FieldReceiptID))
}

// ReceiptIDNotNil applies the NotNil predicate on the "receipt_id" field.
func ReceiptIDNotNil() predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotNull(FieldReceiptID))
}

// BasisEQ applies the EQ predicate on the "basis" field.
func BasisEQ(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldBasis, v))
}

// BasisNEQ applies the NEQ predicate on the "basis" field.
func BasisNEQ(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldBasis, v))
}

// BasisIn applies the In predicate on the "basis" field.
func BasisIn(vs ...string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldBasis, vs...))
}

// BasisNotIn applies the NotIn predicate on the "basis" field.
func BasisNotIn(vs ...string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldBasis, vs...))
}

// BasisGT applies the GT predicate on the "basis" field.
func BasisGT(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldBasis, v))
}

// BasisGTE applies the GTE predicate on the "basis" field.
func BasisGTE(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldBasis, v))
}

// BasisLT applies the LT predicate on the "basis" field.
func BasisLT(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldBasis, v))
}

// BasisLTE applies the LTE predicate on the "basis" field.
func BasisLTE(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldBasis, v))
}

// BasisContains applies the Contains predicate on the "basis" field.
func BasisContains(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldContains(FieldBasis, v))
}

// BasisHasPrefix applies the HasPrefix predicate on the "basis" field.
func BasisHasPrefix(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldHasPrefix(FieldBasis, v))
}

// BasisHasSuffix applies the HasSuffix predicate on the "basis" field.
func BasisHasSuffix(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldHasSuffix(FieldBasis, v))
}

// BasisEqualFold applies the EqualFold predicate on the "basis" field.
func BasisEqualFold(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEqualFold(FieldBasis, v))
}

// BasisContainsFold applies the ContainsFold predicate on the "basis" field.
func BasisContainsFold(v string) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldContainsFold(FieldBasis, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MatchResult {
	return predicate.MatchResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.MatchResult {
	return predicate.MatchResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.MatchResult {
	return predicate.MatchResult(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEmployee applies the HasEdge predicate on the "employee" edge.
func HasEmployee() predicate.MatchResult {
	return predicate.MatchResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmployeeTable, EmployeeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmployeeWith applies the HasEdge predicate on the "employee" edge with a given conditions (other predicates).
func HasEmployeeWith(preds ...predicate.Employee) predicate.MatchResult {
	return predicate.MatchResult(func(s *sql.Selector) {
		step := newEmployeeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MatchResult) predicate.MatchResult {
	return predicate.MatchResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MatchResult) predicate.MatchResult {
	return predicate.MatchResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MatchResult) predicate.MatchResult {
	return predicate.MatchResult(sql.NotPredicates(p))
}
