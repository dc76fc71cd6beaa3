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
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/finops-tools/expense-recon/gen/ent/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TransactionUpdate) SetSessionID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSessionID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TransactionUpdate) SetEmployeeID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableEmployeeID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *TransactionUpdate) ClearEmployeeID() *TransactionUpdate {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *TransactionUpdate) SetTxDate(v time.Time) *TransactionUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableTxDate(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetPostedDate sets the "posted_date" field.
func (_u *TransactionUpdate) SetPostedDate(v time.Time) *TransactionUpdate {
	_u.mutation.SetPostedDate(v)
	return _u
}

// SetNillablePostedDate sets the "posted_date" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillablePostedDate(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetPostedDate(*v)
	}
	return _u
}

// ClearPostedDate clears the value of the "posted_date" field.
func (_u *TransactionUpdate) ClearPostedDate() *TransactionUpdate {
	_u.mutation.ClearPostedDate()
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *TransactionUpdate) SetMerchant(v string) *TransactionUpdate {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableMerchant(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// SetGroup sets the "group" field.
func (_u *TransactionUpdate) SetGroup(v string) *TransactionUpdate {
	_u.mutation.SetGroup(v)
	return _u
}

// SetNillableGroup sets the "group" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableGroup(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetGroup(*v)
	}
	return _u
}

// ClearGroup clears the value of the "group" field.
func (_u *TransactionUpdate) ClearGroup() *TransactionUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdate) SetAmount(v decimal.Decimal) *TransactionUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmount(v *decimal.Decimal) *TransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetIsCredit sets the "is_credit" field.
func (_u *TransactionUpdate) SetIsCredit(v bool) *TransactionUpdate {
	_u.mutation.SetIsCredit(v)
	return _u
}

// SetNillableIsCredit sets the "is_credit" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableIsCredit(v *bool) *TransactionUpdate {
	if v != nil {
		_u.SetIsCredit(*v)
	}
	return _u
}

// SetIncomplete sets the "incomplete" field.
func (_u *TransactionUpdate) SetIncomplete(v bool) *TransactionUpdate {
	_u.mutation.SetIncomplete(v)
	return _u
}

// SetNillableIncomplete sets the "incomplete" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableIncomplete(v *bool) *TransactionUpdate {
	if v != nil {
		_u.SetIncomplete(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *TransactionUpdate) SetSourceFile(v string) *TransactionUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSourceFile(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSourceLine sets the "source_line" field.
func (_u *TransactionUpdate) SetSourceLine(v string) *TransactionUpdate {
	_u.mutation.SetSourceLine(v)
	return _u
}

// SetNillableSourceLine sets the "source_line" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSourceLine(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetSourceLine(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdate) SetCreatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCreatedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *TransactionUpdate) SetSession(v *Session) *TransactionUpdate {
	return _u.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *TransactionUpdate) SetEmployee(v *Employee) *TransactionUpdate {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *TransactionUpdate) ClearSession() *TransactionUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *TransactionUpdate) ClearEmployee() *TransactionUpdate {
	_u.mutation.ClearEmployee()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.Merchant(); ok {
		if err := transaction.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "Transaction.merchant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := transaction.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Transaction.source_file": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.session"`)
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(transaction.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PostedDate(); ok {
		_spec.SetField(transaction.FieldPostedDate, field.TypeTime, value)
	}
	if _u.mutation.PostedDateCleared() {
		_spec.ClearField(transaction.FieldPostedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(transaction.FieldMerchant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Group(); ok {
		_spec.SetField(transaction.FieldGroup, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		_spec.ClearField(transaction.FieldGroup, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.IsCredit(); ok {
		_spec.SetField(transaction.FieldIsCredit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Incomplete(); ok {
		_spec.SetField(transaction.FieldIncomplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(transaction.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLine(); ok {
		_spec.SetField(transaction.FieldSourceLine, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.SessionTable,
			Columns: []string{transaction.SessionColumn},
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
			Table:   transaction.SessionTable,
			Columns: []string{transaction.SessionColumn},
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
			Table:   transaction.EmployeeTable,
			Columns: []string{transaction.EmployeeColumn},
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
			Table:   transaction.EmployeeTable,
			Columns: []string{transaction.EmployeeColumn},
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
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TransactionUpdateOne) SetSessionID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSessionID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TransactionUpdateOne) SetEmployeeID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *TransactionUpdateOne) ClearEmployeeID() *TransactionUpdateOne {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *TransactionUpdateOne) SetTxDate(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableTxDate(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetPostedDate sets the "posted_date" field.
func (_u *TransactionUpdateOne) SetPostedDate(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetPostedDate(v)
	return _u
}

// SetNillablePostedDate sets the "posted_date" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillablePostedDate(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetPostedDate(*v)
	}
	return _u
}

// ClearPostedDate clears the value of the "posted_date" field.
func (_u *TransactionUpdateOne) ClearPostedDate() *TransactionUpdateOne {
	_u.mutation.ClearPostedDate()
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *TransactionUpdateOne) SetMerchant(v string) *TransactionUpdateOne {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableMerchant(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// SetGroup sets the "group" field.
func (_u *TransactionUpdateOne) SetGroup(v string) *TransactionUpdateOne {
	_u.mutation.SetGroup(v)
	return _u
}

// SetNillableGroup sets the "group" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableGroup(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetGroup(*v)
	}
	return _u
}

// ClearGroup clears the value of the "group" field.
func (_u *TransactionUpdateOne) ClearGroup() *TransactionUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdateOne) SetAmount(v decimal.Decimal) *TransactionUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmount(v *decimal.Decimal) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetIsCredit sets the "is_credit" field.
func (_u *TransactionUpdateOne) SetIsCredit(v bool) *TransactionUpdateOne {
	_u.mutation.SetIsCredit(v)
	return _u
}

// SetNillableIsCredit sets the "is_credit" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableIsCredit(v *bool) *TransactionUpdateOne {
	if v != nil {
		_u.SetIsCredit(*v)
	}
	return _u
}

// SetIncomplete sets the "incomplete" field.
func (_u *TransactionUpdateOne) SetIncomplete(v bool) *TransactionUpdateOne {
	_u.mutation.SetIncomplete(v)
	return _u
}

// SetNillableIncomplete sets the "incomplete" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableIncomplete(v *bool) *TransactionUpdateOne {
	if v != nil {
		_u.SetIncomplete(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *TransactionUpdateOne) SetSourceFile(v string) *TransactionUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSourceFile(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSourceLine sets the "source_line" field.
func (_u *TransactionUpdateOne) SetSourceLine(v string) *TransactionUpdateOne {
	_u.mutation.SetSourceLine(v)
	return _u
}

// SetNillableSourceLine sets the "source_line" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSourceLine(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetSourceLine(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdateOne) SetCreatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *TransactionUpdateOne) SetSession(v *Session) *TransactionUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *TransactionUpdateOne) SetEmployee(v *Employee) *TransactionUpdateOne {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *TransactionUpdateOne) ClearSession() *TransactionUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *TransactionUpdateOne) ClearEmployee() *TransactionUpdateOne {
	_u.mutation.ClearEmployee()
	return _u
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.Merchant(); ok {
		if err := transaction.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "Transaction.merchant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := transaction.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Transaction.source_file": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.session"`)
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
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
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(transaction.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PostedDate(); ok {
		_spec.SetField(transaction.FieldPostedDate, field.TypeTime, value)
	}
	if _u.mutation.PostedDateCleared() {
		_spec.ClearField(transaction.FieldPostedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(transaction.FieldMerchant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Group(); ok {
		_spec.SetField(transaction.FieldGroup, field.TypeString, value)
	}
	if _u.mutation.GroupCleared() {
		_spec.ClearField(transaction.FieldGroup, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.IsCredit(); ok {
		_spec.SetField(transaction.FieldIsCredit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Incomplete(); ok {
		_spec.SetField(transaction.FieldIncomplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(transaction.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLine(); ok {
		_spec.SetField(transaction.FieldSourceLine, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.SessionTable,
			Columns: []string{transaction.SessionColumn},
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
			Table:   transaction.SessionTable,
			Columns: []string{transaction.SessionColumn},
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
			Table:   transaction.EmployeeTable,
			Columns: []string{transaction.EmployeeColumn},
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
			Table:   transaction.EmployeeTable,
			Columns: []string{transaction.EmployeeColumn},
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
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
