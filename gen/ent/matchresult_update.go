// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finops-tools/expense-recon/gen/ent/employee"
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/google/uuid"
)

// MatchResultUpdate is the builder for updating MatchResult entities.
type MatchResultUpdate struct {
	config
	hooks    []Hook
	mutation *MatchResultMutation
}

// Where appends a list predicates to the MatchResultUpdate builder.
func (_u *MatchResultUpdate) Where(ps ...predicate.MatchResult) *MatchResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MatchResultUpdate) SetSessionID(v uuid.UUID) *MatchResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableSessionID(v *uuid.UUID) *MatchResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *MatchResultUpdate) SetEmployeeID(v uuid.UUID) *MatchResultUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableEmployeeID(v *uuid.UUID) *MatchResultUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *MatchResultUpdate) ClearEmployeeID() *MatchResultUpdate {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *MatchResultUpdate) SetTransactionID(v uuid.UUID) *MatchResultUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableTransactionID(v *uuid.UUID) *MatchResultUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *MatchResultUpdate) ClearTransactionID() *MatchResultUpdate {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *MatchResultUpdate) SetReceiptID(v uuid.UUID) *MatchResultUpdate {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableReceiptID(v *uuid.UUID) *MatchResultUpdate {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (_u *MatchResultUpdate) ClearReceiptID() *MatchResultUpdate {
	_u.mutation.ClearReceiptID()
	return _u
}

// SetBasis sets the "basis" field.
func (_u *MatchResultUpdate) SetBasis(v string) *MatchResultUpdate {
	_u.mutation.SetBasis(v)
	return _u
}

// SetNillableBasis sets the "basis" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableBasis(v *string) *MatchResultUpdate {
	if v != nil {
		_u.SetBasis(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MatchResultUpdate) SetCreatedAt(v time.Time) *MatchResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MatchResultUpdate) SetNillableCreatedAt(v *time.Time) *MatchResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *MatchResultUpdate) SetSession(v *Session) *MatchResultUpdate {
	return _u.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *MatchResultUpdate) SetEmployee(v *Employee) *MatchResultUpdate {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the MatchResultMutation object of the builder.
func (_u *MatchResultUpdate) Mutation() *MatchResultMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *MatchResultUpdate) ClearSession() *MatchResultUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *MatchResultUpdate) ClearEmployee() *MatchResultUpdate {
	_u.mutation.ClearEmployee()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchResultUpdate) check() error {
	if v, ok := _u.mutation.Basis(); ok {
		if err := matchresult.BasisValidator(v); err != nil {
			return &ValidationError{Name: "basis", err: fmt.Errorf(`ent: validator failed for field "MatchResult.basis": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchResult.session"`)
	}
	return nil
}

func (_u *MatchResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchresult.Table, matchresult.Columns, sqlgraph.NewFieldSpec(matchresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(matchresult.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(matchresult.FieldTransactionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReceiptID(); ok {
		_spec.SetField(matchresult.FieldReceiptID, field.TypeUUID, value)
	}
	if _u.mutation.ReceiptIDCleared() {
		_spec.ClearField(matchresult.FieldReceiptID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Basis(); ok {
		_spec.SetField(matchresult.FieldBasis, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(matchresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.SessionTable,
			Columns: []string{matchresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.SessionTable,
			Columns: []string{matchresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmployeeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.EmployeeTable,
			Columns: []string{matchresult.EmployeeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.EmployeeTable,
			Columns: []string{matchresult.EmployeeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchResultUpdateOne is the builder for updating a single MatchResult entity.
type MatchResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchResultMutation
}

// SetSessionID sets the "session_id" field.
func (_u *MatchResultUpdateOne) SetSessionID(v uuid.UUID) *MatchResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableSessionID(v *uuid.UUID) *MatchResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *MatchResultUpdateOne) SetEmployeeID(v uuid.UUID) *MatchResultUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *MatchResultUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *MatchResultUpdateOne) ClearEmployeeID() *MatchResultUpdateOne {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *MatchResultUpdateOne) SetTransactionID(v uuid.UUID) *MatchResultUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableTransactionID(v *uuid.UUID) *MatchResultUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (_u *MatchResultUpdateOne) ClearTransactionID() *MatchResultUpdateOne {
	_u.mutation.ClearTransactionID()
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *MatchResultUpdateOne) SetReceiptID(v uuid.UUID) *MatchResultUpdateOne {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableReceiptID(v *uuid.UUID) *MatchResultUpdateOne {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (_u *MatchResultUpdateOne) ClearReceiptID() *MatchResultUpdateOne {
	_u.mutation.ClearReceiptID()
	return _u
}

// SetBasis sets the "basis" field.
func (_u *MatchResultUpdateOne) SetBasis(v string) *MatchResultUpdateOne {
	_u.mutation.SetBasis(v)
	return _u
}

// SetNillableBasis sets the "basis" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableBasis(v *string) *MatchResultUpdateOne {
	if v != nil {
		_u.SetBasis(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MatchResultUpdateOne) SetCreatedAt(v time.Time) *MatchResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MatchResultUpdateOne) SetNillableCreatedAt(v *time.Time) *MatchResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *MatchResultUpdateOne) SetSession(v *Session) *MatchResultUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *MatchResultUpdateOne) SetEmployee(v *Employee) *MatchResultUpdateOne {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the MatchResultMutation object of the builder.
func (_u *MatchResultUpdateOne) Mutation() *MatchResultMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *MatchResultUpdateOne) ClearSession() *MatchResultUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *MatchResultUpdateOne) ClearEmployee() *MatchResultUpdateOne {
	_u.mutation.ClearEmployee()
	return _u
}

// Where appends a list predicates to the MatchResultUpdate builder.
func (_u *MatchResultUpdateOne) Where(ps ...predicate.MatchResult) *MatchResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchResultUpdateOne) Select(field string, fields ...string) *MatchResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MatchResult entity.
func (_u *MatchResultUpdateOne) Save(ctx context.Context) (*MatchResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchResultUpdateOne) SaveX(ctx context.Context) *MatchResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchResultUpdateOne) check() error {
	if v, ok := _u.mutation.Basis(); ok {
		if err := matchresult.BasisValidator(v); err != nil {
			return &ValidationError{Name: "basis", err: fmt.Errorf(`ent: validator failed for field "MatchResult.basis": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MatchResult.session"`)
	}
	return nil
}

func (_u *MatchResultUpdateOne) sqlSave(ctx context.Context) (_node *MatchResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(matchresult.Table, matchresult.Columns, sqlgraph.NewFieldSpec(matchresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MatchResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, matchresult.FieldID)
		for _, f := range fields {
			if !matchresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != matchresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(matchresult.FieldTransactionID, field.TypeUUID, value)
	}
	if _u.mutation.TransactionIDCleared() {
		_spec.ClearField(matchresult.FieldTransactionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReceiptID(); ok {
		_spec.SetField(matchresult.FieldReceiptID, field.TypeUUID, value)
	}
	if _u.mutation.ReceiptIDCleared() {
		_spec.ClearField(matchresult.FieldReceiptID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Basis(); ok {
		_spec.SetField(matchresult.FieldBasis, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(matchresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.SessionTable,
			Columns: []string{matchresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.SessionTable,
			Columns: []string{matchresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmployeeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.EmployeeTable,
			Columns: []string{matchresult.EmployeeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchresult.EmployeeTable,
			Columns: []string{matchresult.EmployeeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MatchResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{matchresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
