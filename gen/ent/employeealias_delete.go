// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finops-tools/expense-recon/gen/ent/employeealias"
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
)

// EmployeeAliasDelete is the builder for deleting a EmployeeAlias entity.
type EmployeeAliasDelete struct {
	config
	hooks    []Hook
	mutation *EmployeeAliasMutation
}

// Where appends a list predicates to the EmployeeAliasDelete builder.
func (_d *EmployeeAliasDelete) Where(ps ...predicate.EmployeeAlias) *EmployeeAliasDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EmployeeAliasDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmployeeAliasDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EmployeeAliasDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(employeealias.Table, sqlgraph.NewFieldSpec(employeealias.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EmployeeAliasDeleteOne is the builder for deleting a single EmployeeAlias entity.
type EmployeeAliasDeleteOne struct {
	_d *EmployeeAliasDelete
}

// Where appends a list predicates to the EmployeeAliasDelete builder.
func (_d *EmployeeAliasDeleteOne) Where(ps ...predicate.EmployeeAlias) *EmployeeAliasDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EmployeeAliasDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{employeealias.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EmployeeAliasDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
