// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receipt type in the database.
	Label = "receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldEmployeeID holds the string denoting the employee_id field in the database.
	FieldEmployeeID = "employee_id"
	// FieldTxDate holds the string denoting the tx_date field in the database.
	FieldTxDate = "tx_date"
	// FieldMerchant holds the string denoting the merchant field in the database.
	FieldMerchant = "merchant"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldIsCredit holds the string denoting the is_credit field in the database.
	FieldIsCredit = "is_credit"
	// FieldIncomplete holds the string denoting the incomplete field in the database.
	FieldIncomplete = "incomplete"
	// FieldImageRef holds the string denoting the image_ref field in the database.
	FieldImageRef = "image_ref"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldSourceLine holds the string denoting the source_line field in the database.
	FieldSourceLine = "source_line"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeEmployee holds the string denoting the employee edge name in mutations.
	EdgeEmployee = "employee"
	// Table holds the table name of the receipt in the database.
	Table = "receipts"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "receipts"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// EmployeeTable is the table that holds the employee relation/edge.
	EmployeeTable = "receipts"
	// EmployeeInverseTable is the table name for the Employee entity.
	// It exists in this package in order to avoid circular dependency with the "employee" package.
	EmployeeInverseTable = "employees"
	// EmployeeColumn is the table column denoting the employee relation/edge.
	EmployeeColumn = "employee_id"
)

// Columns holds all SQL columns for receipt fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldEmployeeID,
	FieldTxDate,
	FieldMerchant,
	FieldAmount,
	FieldIsCredit,
	FieldIncomplete,
	FieldImageRef,
	FieldSourceFile,
	FieldSourceLine,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// MerchantValidator is a validator for the "merchant" field. It is called by the builders before save.
	MerchantValidator func(string) error
	// DefaultIsCredit holds the default value on creation for the "is_credit" field.
	DefaultIsCredit bool
	// DefaultIncomplete holds the default value on creation for the "incomplete" field.
	DefaultIncomplete bool
	// SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	SourceFileValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Receipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByEmployeeID orders the results by the employee_id field.
func ByEmployeeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeID, opts...).ToFunc()
}

// ByTxDate orders the results by the tx_date field.
func ByTxDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTxDate, opts...).ToFunc()
}

// ByMerchant orders the results by the merchant field.
func ByMerchant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMerchant, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByIsCredit orders the results by the is_credit field.
func ByIsCredit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCredit, opts...).ToFunc()
}

// ByIncomplete orders the results by the incomplete field.
func ByIncomplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncomplete, opts...).ToFunc()
}

// ByImageRef orders the results by the image_ref field.
func ByImageRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageRef, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// BySourceLine orders the results by the source_line field.
func BySourceLine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLine, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByEmployeeField orders the results by employee field.
func ByEmployeeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmployeeStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newEmployeeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmployeeInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EmployeeTable, EmployeeColumn),
	)
}
