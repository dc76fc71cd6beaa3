// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finops-tools/expense-recon/gen/ent/employee"
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/google/uuid"
)

// MatchResult is the model entity for the MatchResult schema.
type MatchResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID *uuid.UUID `json:"receipt_id,omitempty"`
	// Basis holds the value of the "basis" field.
	Basis string `json:"basis,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatchResultQuery when eager-loading is set.
	Edges        MatchResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatchResultEdges holds the relations/edges for other nodes in the graph.
type MatchResultEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Employee holds the value of the employee edge.
	Employee *Employee `json:"employee,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchResultEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// EmployeeOrErr returns the Employee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchResultEdges) EmployeeOrErr() (*Employee, error) {
	if e.Employee != nil {
		return e.Employee, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: employee.Label}
	}
	return nil, &NotLoadedError{edge: "employee"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MatchResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case matchresult.FieldEmployeeID, matchresult.FieldTransactionID, matchresult.FieldReceiptID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case matchresult.FieldBasis:
			values[i] = new(sql.NullString)
		case matchresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case matchresult.FieldID, matchresult.FieldSessionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MatchResult fields.
func (_m *MatchResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case matchresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case matchresult.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case matchresult.FieldEmployeeID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value.Valid {
				_m.EmployeeID = new(uuid.UUID)
				*_m.EmployeeID = *value.S.(*uuid.UUID)
			}
		case matchresult.FieldTransactionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = new(uuid.UUID)
				*_m.TransactionID = *value.S.(*uuid.UUID)
			}
		case matchresult.FieldReceiptID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value.Valid {
				_m.ReceiptID = new(uuid.UUID)
				*_m.ReceiptID = *value.S.(*uuid.UUID)
			}
		case matchresult.FieldBasis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field basis", values[i])
			} else if value.Valid {
				_m.Basis = value.String
			}
		case matchresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MatchResult.
// This includes values selected through modifiers, order, etc.
func (_m *MatchResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the MatchResult entity.
func (_m *MatchResult) QuerySession() *SessionQuery {
	return NewMatchResultClient(_m.config).QuerySession(_m)
}

// QueryEmployee queries the "employee" edge of the MatchResult entity.
func (_m *MatchResult) QueryEmployee() *EmployeeQuery {
	return NewMatchResultClient(_m.config).QueryEmployee(_m)
}

// Update returns a builder for updating this MatchResult.
// Note that you need to call MatchResult.Unwrap() before calling this method if this MatchResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MatchResult) Update() *MatchResultUpdateOne {
	return NewMatchResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MatchResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MatchResult) Unwrap() *MatchResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MatchResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MatchResult) String() string {
	var builder strings.Builder
	builder.WriteString("MatchResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	if v := _m.EmployeeID; v != nil {
		builder.WriteString("employee_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TransactionID; v != nil {
		builder.WriteString("transaction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReceiptID; v != nil {
		builder.WriteString("receipt_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("basis=")
	builder.WriteString(_m.Basis)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MatchResults is a parsable slice of MatchResult.
type MatchResults []*MatchResult
