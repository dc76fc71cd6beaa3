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
	"github.com/finops-tools/expense-recon/gen/ent/employeealias"
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
	"github.com/google/uuid"
)

// EmployeeAliasUpdate is the builder for updating EmployeeAlias entities.
type EmployeeAliasUpdate struct {
	config
	hooks    []Hook
	mutation *EmployeeAliasMutation
}

// Where appends a list predicates to the EmployeeAliasUpdate builder.
func (_u *EmployeeAliasUpdate) Where(ps ...predicate.EmployeeAlias) *EmployeeAliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *EmployeeAliasUpdate) SetEmployeeID(v uuid.UUID) *EmployeeAliasUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *EmployeeAliasUpdate) SetNillableEmployeeID(v *uuid.UUID) *EmployeeAliasUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *EmployeeAliasUpdate) SetAlias(v string) *EmployeeAliasUpdate {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *EmployeeAliasUpdate) SetNillableAlias(v *string) *EmployeeAliasUpdate {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *EmployeeAliasUpdate) SetConfirmedAt(v time.Time) *EmployeeAliasUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *EmployeeAliasUpdate) SetNillableConfirmedAt(v *time.Time) *EmployeeAliasUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *EmployeeAliasUpdate) SetEmployee(v *Employee) *EmployeeAliasUpdate {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the EmployeeAliasMutation object of the builder.
func (_u *EmployeeAliasUpdate) Mutation() *EmployeeAliasMutation {
	return _u.mutation
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *EmployeeAliasUpdate) ClearEmployee() *EmployeeAliasUpdate {
	_u.mutation.ClearEmployee()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmployeeAliasUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeeAliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmployeeAliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeeAliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeeAliasUpdate) check() error {
	if v, ok := _u.mutation.Alias(); ok {
		if err := employeealias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "EmployeeAlias.alias": %w`, err)}
		}
	}
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmployeeAlias.employee"`)
	}
	return nil
}

func (_u *EmployeeAliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employeealias.Table, employeealias.Columns, sqlgraph.NewFieldSpec(employeealias.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(employeealias.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(employeealias.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.EmployeeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   employeealias.EmployeeTable,
			Columns: []string{employeealias.EmployeeColumn},
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
			Table:   employeealias.EmployeeTable,
			Columns: []string{employeealias.EmployeeColumn},
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
			err = &NotFoundError{employeealias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmployeeAliasUpdateOne is the builder for updating a single EmployeeAlias entity.
type EmployeeAliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmployeeAliasMutation
}

// SetEmployeeID sets the "employee_id" field.
func (_u *EmployeeAliasUpdateOne) SetEmployeeID(v uuid.UUID) *EmployeeAliasUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *EmployeeAliasUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *EmployeeAliasUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *EmployeeAliasUpdateOne) SetAlias(v string) *EmployeeAliasUpdateOne {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *EmployeeAliasUpdateOne) SetNillableAlias(v *string) *EmployeeAliasUpdateOne {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *EmployeeAliasUpdateOne) SetConfirmedAt(v time.Time) *EmployeeAliasUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *EmployeeAliasUpdateOne) SetNillableConfirmedAt(v *time.Time) *EmployeeAliasUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *EmployeeAliasUpdateOne) SetEmployee(v *Employee) *EmployeeAliasUpdateOne {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the EmployeeAliasMutation object of the builder.
func (_u *EmployeeAliasUpdateOne) Mutation() *EmployeeAliasMutation {
	return _u.mutation
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *EmployeeAliasUpdateOne) ClearEmployee() *EmployeeAliasUpdateOne {
	_u.mutation.ClearEmployee()
	return _u
}

// Where appends a list predicates to the EmployeeAliasUpdate builder.
func (_u *EmployeeAliasUpdateOne) Where(ps ...predicate.EmployeeAlias) *EmployeeAliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmployeeAliasUpdateOne) Select(field string, fields ...string) *EmployeeAliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EmployeeAlias entity.
func (_u *EmployeeAliasUpdateOne) Save(ctx context.Context) (*EmployeeAlias, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeeAliasUpdateOne) SaveX(ctx context.Context) *EmployeeAlias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmployeeAliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeeAliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeeAliasUpdateOne) check() error {
	if v, ok := _u.mutation.Alias(); ok {
		if err := employeealias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "EmployeeAlias.alias": %w`, err)}
		}
	}
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EmployeeAlias.employee"`)
	}
	return nil
}

func (_u *EmployeeAliasUpdateOne) sqlSave(ctx context.Context) (_node *EmployeeAlias, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employeealias.Table, employeealias.Columns, sqlgraph.NewFieldSpec(employeealias.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EmployeeAlias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, employeealias.FieldID)
		for _, f := range fields {
			if !employeealias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != employeealias.FieldID {
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
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(employeealias.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(employeealias.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.EmployeeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   employeealias.EmployeeTable,
			Columns: []string{employeealias.EmployeeColumn},
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
			Table:   employeealias.EmployeeTable,
			Columns: []string{employeealias.EmployeeColumn},
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
	_node = &EmployeeAlias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employeealias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
