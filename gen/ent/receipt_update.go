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
	"github.com/finops-tools/expense-recon/gen/ent/receipt"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReceiptUpdate) SetSessionID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSessionID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *ReceiptUpdate) SetEmployeeID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableEmployeeID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *ReceiptUpdate) ClearEmployeeID() *ReceiptUpdate {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ReceiptUpdate) SetTxDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTxDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *ReceiptUpdate) SetMerchant(v string) *ReceiptUpdate {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableMerchant(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdate) SetAmount(v decimal.Decimal) *ReceiptUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAmount(v *decimal.Decimal) *ReceiptUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetIsCredit sets the "is_credit" field.
func (_u *ReceiptUpdate) SetIsCredit(v bool) *ReceiptUpdate {
	_u.mutation.SetIsCredit(v)
	return _u
}

// SetNillableIsCredit sets the "is_credit" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableIsCredit(v *bool) *ReceiptUpdate {
	if v != nil {
		_u.SetIsCredit(*v)
	}
	return _u
}

// SetIncomplete sets the "incomplete" field.
func (_u *ReceiptUpdate) SetIncomplete(v bool) *ReceiptUpdate {
	_u.mutation.SetIncomplete(v)
	return _u
}

// SetNillableIncomplete sets the "incomplete" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableIncomplete(v *bool) *ReceiptUpdate {
	if v != nil {
		_u.SetIncomplete(*v)
	}
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *ReceiptUpdate) SetImageRef(v string) *ReceiptUpdate {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableImageRef(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// ClearImageRef clears the value of the "image_ref" field.
func (_u *ReceiptUpdate) ClearImageRef() *ReceiptUpdate {
	_u.mutation.ClearImageRef()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *ReceiptUpdate) SetSourceFile(v string) *ReceiptUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSourceFile(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSourceLine sets the "source_line" field.
func (_u *ReceiptUpdate) SetSourceLine(v string) *ReceiptUpdate {
	_u.mutation.SetSourceLine(v)
	return _u
}

// SetNillableSourceLine sets the "source_line" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSourceLine(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetSourceLine(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdate) SetCreatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ReceiptUpdate) SetSession(v *Session) *ReceiptUpdate {
	return _u.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *ReceiptUpdate) SetEmployee(v *Employee) *ReceiptUpdate {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ReceiptUpdate) ClearSession() *ReceiptUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *ReceiptUpdate) ClearEmployee() *ReceiptUpdate {
	_u.mutation.ClearEmployee()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.Merchant(); ok {
		if err := receipt.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "Receipt.merchant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := receipt.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Receipt.source_file": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.session"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(receipt.FieldMerchant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.IsCredit(); ok {
		_spec.SetField(receipt.FieldIsCredit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Incomplete(); ok {
		_spec.SetField(receipt.FieldIncomplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(receipt.FieldImageRef, field.TypeString, value)
	}
	if _u.mutation.ImageRefCleared() {
		_spec.ClearField(receipt.FieldImageRef, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(receipt.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLine(); ok {
		_spec.SetField(receipt.FieldSourceLine, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.SessionTable,
			Columns: []string{receipt.SessionColumn},
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
			Table:   receipt.SessionTable,
			Columns: []string{receipt.SessionColumn},
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
			Table:   receipt.EmployeeTable,
			Columns: []string{receipt.EmployeeColumn},
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
			Table:   receipt.EmployeeTable,
			Columns: []string{receipt.EmployeeColumn},
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
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReceiptUpdateOne) SetSessionID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSessionID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *ReceiptUpdateOne) SetEmployeeID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *ReceiptUpdateOne) ClearEmployeeID() *ReceiptUpdateOne {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ReceiptUpdateOne) SetTxDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTxDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *ReceiptUpdateOne) SetMerchant(v string) *ReceiptUpdateOne {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableMerchant(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ReceiptUpdateOne) SetAmount(v decimal.Decimal) *ReceiptUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAmount(v *decimal.Decimal) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetIsCredit sets the "is_credit" field.
func (_u *ReceiptUpdateOne) SetIsCredit(v bool) *ReceiptUpdateOne {
	_u.mutation.SetIsCredit(v)
	return _u
}

// SetNillableIsCredit sets the "is_credit" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableIsCredit(v *bool) *ReceiptUpdateOne {
	if v != nil {
		_u.SetIsCredit(*v)
	}
	return _u
}

// SetIncomplete sets the "incomplete" field.
func (_u *ReceiptUpdateOne) SetIncomplete(v bool) *ReceiptUpdateOne {
	_u.mutation.SetIncomplete(v)
	return _u
}

// SetNillableIncomplete sets the "incomplete" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableIncomplete(v *bool) *ReceiptUpdateOne {
	if v != nil {
		_u.SetIncomplete(*v)
	}
	return _u
}

// SetImageRef sets the "image_ref" field.
func (_u *ReceiptUpdateOne) SetImageRef(v string) *ReceiptUpdateOne {
	_u.mutation.SetImageRef(v)
	return _u
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableImageRef(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetImageRef(*v)
	}
	return _u
}

// ClearImageRef clears the value of the "image_ref" field.
func (_u *ReceiptUpdateOne) ClearImageRef() *ReceiptUpdateOne {
	_u.mutation.ClearImageRef()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *ReceiptUpdateOne) SetSourceFile(v string) *ReceiptUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSourceFile(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSourceLine sets the "source_line" field.
func (_u *ReceiptUpdateOne) SetSourceLine(v string) *ReceiptUpdateOne {
	_u.mutation.SetSourceLine(v)
	return _u
}

// SetNillableSourceLine sets the "source_line" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSourceLine(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSourceLine(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdateOne) SetCreatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *ReceiptUpdateOne) SetSession(v *Session) *ReceiptUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *ReceiptUpdateOne) SetEmployee(v *Employee) *ReceiptUpdateOne {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *ReceiptUpdateOne) ClearSession() *ReceiptUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *ReceiptUpdateOne) ClearEmployee() *ReceiptUpdateOne {
	_u.mutation.ClearEmployee()
	return _u
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.Merchant(); ok {
		if err := receipt.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "Receipt.merchant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := receipt.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Receipt.source_file": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.session"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(receipt.FieldMerchant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.IsCredit(); ok {
		_spec.SetField(receipt.FieldIsCredit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Incomplete(); ok {
		_spec.SetField(receipt.FieldIncomplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ImageRef(); ok {
		_spec.SetField(receipt.FieldImageRef, field.TypeString, value)
	}
	if _u.mutation.ImageRefCleared() {
		_spec.ClearField(receipt.FieldImageRef, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(receipt.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLine(); ok {
		_spec.SetField(receipt.FieldSourceLine, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.SessionTable,
			Columns: []string{receipt.SessionColumn},
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
			Table:   receipt.SessionTable,
			Columns: []string{receipt.SessionColumn},
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
			Table:   receipt.EmployeeTable,
			Columns: []string{receipt.EmployeeColumn},
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
			Table:   receipt.EmployeeTable,
			Columns: []string{receipt.EmployeeColumn},
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
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
