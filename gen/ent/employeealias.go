// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finops-tools/expense-recon/gen/ent/employee"
	"github.com/finops-tools/expense-recon/gen/ent/employeealias"
	"github.com/google/uuid"
)

// EmployeeAlias is the model entity for the EmployeeAlias schema.
type EmployeeAlias struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	// Alias holds the value of the "alias" field.
	Alias string `json:"alias,omitempty"`
	// ConfirmedAt holds the value of the "confirmed_at" field.
	ConfirmedAt time.Time `json:"confirmed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmployeeAliasQuery when eager-loading is set.
	Edges        EmployeeAliasEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmployeeAliasEdges holds the relations/edges for other nodes in the graph.
type EmployeeAliasEdges struct {
	// Employee holds the value of the employee edge.
	Employee *Employee `json:"employee,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EmployeeOrErr returns the Employee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmployeeAliasEdges) EmployeeOrErr() (*Employee, error) {
	if e.Employee != nil {
		return e.Employee, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: employee.Label}
	}
	return nil, &NotLoadedError{edge: "employee"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmployeeAlias) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case employeealias.FieldAlias:
			values[i] = new(sql.NullString)
		case employeealias.FieldConfirmedAt:
			values[i] = new(sql.NullTime)
		case employeealias.FieldID, employeealias.FieldEmployeeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmployeeAlias fields.
func (_m *EmployeeAlias) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case employeealias.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case employeealias.FieldEmployeeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value != nil {
				_m.EmployeeID = *value
			}
		case employeealias.FieldAlias:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alias", values[i])
			} else if value.Valid {
				_m.Alias = value.String
			}
		case employeealias.FieldConfirmedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field confirmed_at", values[i])
			} else if value.Valid {
				_m.ConfirmedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmployeeAlias.
// This includes values selected through modifiers, order, etc.
func (_m *EmployeeAlias) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmployee queries the "employee" edge of the EmployeeAlias entity.
func (_m *EmployeeAlias) QueryEmployee() *EmployeeQuery {
	return NewEmployeeAliasClient(_m.config).QueryEmployee(_m)
}

// Update returns a builder for updating this EmployeeAlias.
// Note that you need to call EmployeeAlias.Unwrap() before calling this method if this EmployeeAlias
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmployeeAlias) Update() *EmployeeAliasUpdateOne {
	return NewEmployeeAliasClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmployeeAlias entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmployeeAlias) Unwrap() *EmployeeAlias {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmployeeAlias is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmployeeAlias) String() string {
	var builder strings.Builder
	builder.WriteString("EmployeeAlias(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("employee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmployeeID))
	builder.WriteString(", ")
	builder.WriteString("alias=")
	builder.WriteString(_m.Alias)
	builder.WriteString(", ")
	builder.WriteString("confirmed_at=")
	builder.WriteString(_m.ConfirmedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmployeeAliasSlice is a parsable slice of EmployeeAlias.
type EmployeeAliasSlice []*EmployeeAlias
