// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/finops-tools/expense-recon/gen/ent/employee"
	"github.com/finops-tools/expense-recon/gen/ent/receipt"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *ReceiptCreate) SetSessionID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *ReceiptCreate) SetEmployeeID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableEmployeeID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetEmployeeID(*v)
	}
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *ReceiptCreate) SetTxDate(v time.Time) *ReceiptCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetMerchant sets the "merchant" field.
func (_c *ReceiptCreate) SetMerchant(v string) *ReceiptCreate {
	_c.mutation.SetMerchant(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ReceiptCreate) SetAmount(v decimal.Decimal) *ReceiptCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetIsCredit sets the "is_credit" field.
func (_c *ReceiptCreate) SetIsCredit(v bool) *ReceiptCreate {
	_c.mutation.SetIsCredit(v)
	return _c
}

// SetNillableIsCredit sets the "is_credit" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableIsCredit(v *bool) *ReceiptCreate {
	if v != nil {
		_c.SetIsCredit(*v)
	}
	return _c
}

// SetIncomplete sets the "incomplete" field.
func (_c *ReceiptCreate) SetIncomplete(v bool) *ReceiptCreate {
	_c.mutation.SetIncomplete(v)
	return _c
}

// SetNillableIncomplete sets the "incomplete" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableIncomplete(v *bool) *ReceiptCreate {
	if v != nil {
		_c.SetIncomplete(*v)
	}
	return _c
}

// SetImageRef sets the "image_ref" field.
func (_c *ReceiptCreate) SetImageRef(v string) *ReceiptCreate {
	_c.mutation.SetImageRef(v)
	return _c
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableImageRef(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetImageRef(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *ReceiptCreate) SetSourceFile(v string) *ReceiptCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetSourceLine sets the "source_line" field.
func (_c *ReceiptCreate) SetSourceLine(v string) *ReceiptCreate {
	_c.mutation.SetSourceLine(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ReceiptCreate) SetSession(v *Session) *ReceiptCreate {
	return _c.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_c *ReceiptCreate) SetEmployee(v *Employee) *ReceiptCreate {
	return _c.SetEmployeeID(v.ID)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.IsCredit(); !ok {
		v := receipt.DefaultIsCredit
		_c.mutation.SetIsCredit(v)
	}
	if _, ok := _c.mutation.Incomplete(); !ok {
		v := receipt.DefaultIncomplete
		_c.mutation.SetIncomplete(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Receipt.session_id"`)}
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		return &ValidationError{Name: "tx_date", err: errors.New(`ent: missing required field "Receipt.tx_date"`)}
	}
	if _, ok := _c.mutation.Merchant(); !ok {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required field "Receipt.merchant"`)}
	}
	if v, ok := _c.mutation.Merchant(); ok {
		if err := receipt.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "Receipt.merchant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Receipt.amount"`)}
	}
	if _, ok := _c.mutation.IsCredit(); !ok {
		return &ValidationError{Name: "is_credit", err: errors.New(`ent: missing required field "Receipt.is_credit"`)}
	}
	if _, ok := _c.mutation.Incomplete(); !ok {
		return &ValidationError{Name: "incomplete", err: errors.New(`ent: missing required field "Receipt.incomplete"`)}
	}
	if _, ok := _c.mutation.SourceFile(); !ok {
		return &ValidationError{Name: "source_file", err: errors.New(`ent: missing required field "Receipt.source_file"`)}
	}
	if v, ok := _c.mutation.SourceFile(); ok {
		if err := receipt.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Receipt.source_file": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceLine(); !ok {
		return &ValidationError{Name: "source_line", err: errors.New(`ent: missing required field "Receipt.source_line"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Receipt.session"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(receipt.FieldTxDate, field.TypeTime, value)
		_node.TxDate = value
	}
	if value, ok := _c.mutation.Merchant(); ok {
		_spec.SetField(receipt.FieldMerchant, field.TypeString, value)
		_node.Merchant = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(receipt.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.IsCredit(); ok {
		_spec.SetField(receipt.FieldIsCredit, field.TypeBool, value)
		_node.IsCredit = value
	}
	if value, ok := _c.mutation.Incomplete(); ok {
		_spec.SetField(receipt.FieldIncomplete, field.TypeBool, value)
		_node.Incomplete = value
	}
	if value, ok := _c.mutation.ImageRef(); ok {
		_spec.SetField(receipt.FieldImageRef, field.TypeString, value)
		_node.ImageRef = &value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(receipt.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.SourceLine(); ok {
		_spec.SetField(receipt.FieldSourceLine, field.TypeString, value)
		_node.SourceLine = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_node.EmployeeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Receipt.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiptUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiptCreate) OnConflict(opts ...sql.ConflictOption) *ReceiptUpsertOne {
	_c.conflict = opts
	return &ReceiptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiptCreate) OnConflictColumns(columns ...string) *ReceiptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiptUpsertOne{
		create: _c,
	}
}

type (
	// ReceiptUpsertOne is the builder for "upsert"-ing
	//  one Receipt node.
	ReceiptUpsertOne struct {
		create *ReceiptCreate
	}

	// ReceiptUpsert is the "OnConflict" setter.
	ReceiptUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *ReceiptUpsert) SetSessionID(v uuid.UUID) *ReceiptUpsert {
	u.Set(receipt.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateSessionID() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldSessionID)
	return u
}

// SetEmployeeID sets the "employee_id" field.
func (u *ReceiptUpsert) SetEmployeeID(v uuid.UUID) *ReceiptUpsert {
	u.Set(receipt.FieldEmployeeID, v)
	return u
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateEmployeeID() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldEmployeeID)
	return u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *ReceiptUpsert) ClearEmployeeID() *ReceiptUpsert {
	u.SetNull(receipt.FieldEmployeeID)
	return u
}

// SetTxDate sets the "tx_date" field.
func (u *ReceiptUpsert) SetTxDate(v time.Time) *ReceiptUpsert {
	u.Set(receipt.FieldTxDate, v)
	return u
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateTxDate() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldTxDate)
	return u
}

// SetMerchant sets the "merchant" field.
func (u *ReceiptUpsert) SetMerchant(v string) *ReceiptUpsert {
	u.Set(receipt.FieldMerchant, v)
	return u
}

// UpdateMerchant sets the "merchant" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateMerchant() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldMerchant)
	return u
}

// SetAmount sets the "amount" field.
func (u *ReceiptUpsert) SetAmount(v decimal.Decimal) *ReceiptUpsert {
	u.Set(receipt.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateAmount() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldAmount)
	return u
}

// SetIsCredit sets the "is_credit" field.
func (u *ReceiptUpsert) SetIsCredit(v bool) *ReceiptUpsert {
	u.Set(receipt.FieldIsCredit, v)
	return u
}

// UpdateIsCredit sets the "is_credit" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateIsCredit() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldIsCredit)
	return u
}

// SetIncomplete sets the "incomplete" field.
func (u *ReceiptUpsert) SetIncomplete(v bool) *ReceiptUpsert {
	u.Set(receipt.FieldIncomplete, v)
	return u
}

// UpdateIncomplete sets the "incomplete" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateIncomplete() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldIncomplete)
	return u
}

// SetImageRef sets the "image_ref" field.
func (u *ReceiptUpsert) SetImageRef(v string) *ReceiptUpsert {
	u.Set(receipt.FieldImageRef, v)
	return u
}

// UpdateImageRef sets the "image_ref" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateImageRef() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldImageRef)
	return u
}

// ClearImageRef clears the value of the "image_ref" field.
func (u *ReceiptUpsert) ClearImageRef() *ReceiptUpsert {
	u.SetNull(receipt.FieldImageRef)
	return u
}

// SetSourceFile sets the "source_file" field.
func (u *ReceiptUpsert) SetSourceFile(v string) *ReceiptUpsert {
	u.Set(receipt.FieldSourceFile, v)
	return u
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateSourceFile() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldSourceFile)
	return u
}

// SetSourceLine sets the "source_line" field.
func (u *ReceiptUpsert) SetSourceLine(v string) *ReceiptUpsert {
	u.Set(receipt.FieldSourceLine, v)
	return u
}

// UpdateSourceLine sets the "source_line" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateSourceLine() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldSourceLine)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReceiptUpsert) SetCreatedAt(v time.Time) *ReceiptUpsert {
	u.Set(receipt.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReceiptUpsert) UpdateCreatedAt() *ReceiptUpsert {
	u.SetExcluded(receipt.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receipt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiptUpsertOne) UpdateNewValues() *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(receipt.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Receipt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReceiptUpsertOne) Ignore() *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiptUpsertOne) DoNothing() *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiptCreate.OnConflict
// documentation for more info.
func (u *ReceiptUpsertOne) Update(set func(*ReceiptUpsert)) *ReceiptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiptUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ReceiptUpsertOne) SetSessionID(v uuid.UUID) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateSessionID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateSessionID()
	})
}

// SetEmployeeID sets the "employee_id" field.
func (u *ReceiptUpsertOne) SetEmployeeID(v uuid.UUID) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateEmployeeID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateEmployeeID()
	})
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *ReceiptUpsertOne) ClearEmployeeID() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearEmployeeID()
	})
}

// SetTxDate sets the "tx_date" field.
func (u *ReceiptUpsertOne) SetTxDate(v time.Time) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetTxDate(v)
	})
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateTxDate() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateTxDate()
	})
}

// SetMerchant sets the "merchant" field.
func (u *ReceiptUpsertOne) SetMerchant(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetMerchant(v)
	})
}

// UpdateMerchant sets the "merchant" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateMerchant() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateMerchant()
	})
}

// SetAmount sets the "amount" field.
func (u *ReceiptUpsertOne) SetAmount(v decimal.Decimal) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateAmount() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateAmount()
	})
}

// SetIsCredit sets the "is_credit" field.
func (u *ReceiptUpsertOne) SetIsCredit(v bool) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetIsCredit(v)
	})
}

// UpdateIsCredit sets the "is_credit" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateIsCredit() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateIsCredit()
	})
}

// SetIncomplete sets the "incomplete" field.
func (u *ReceiptUpsertOne) SetIncomplete(v bool) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetIncomplete(v)
	})
}

// UpdateIncomplete sets the "incomplete" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateIncomplete() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateIncomplete()
	})
}

// SetImageRef sets the "image_ref" field.
func (u *ReceiptUpsertOne) SetImageRef(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetImageRef(v)
	})
}

// UpdateImageRef sets the "image_ref" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateImageRef() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateImageRef()
	})
}

// ClearImageRef clears the value of the "image_ref" field.
func (u *ReceiptUpsertOne) ClearImageRef() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearImageRef()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *ReceiptUpsertOne) SetSourceFile(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateSourceFile() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateSourceFile()
	})
}

// SetSourceLine sets the "source_line" field.
func (u *ReceiptUpsertOne) SetSourceLine(v string) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetSourceLine(v)
	})
}

// UpdateSourceLine sets the "source_line" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateSourceLine() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateSourceLine()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReceiptUpsertOne) SetCreatedAt(v time.Time) *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReceiptUpsertOne) UpdateCreatedAt() *ReceiptUpsertOne {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReceiptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReceiptUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReceiptUpsertOne.ID is not supported by MySQL driver. Use ReceiptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReceiptUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
	conflict []sql.ConflictOption
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Receipt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiptUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiptCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReceiptUpsertBulk {
	_c.conflict = opts
	return &ReceiptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiptCreateBulk) OnConflictColumns(columns ...string) *ReceiptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiptUpsertBulk{
		create: _c,
	}
}

// ReceiptUpsertBulk is the builder for "upsert"-ing
// a bulk of Receipt nodes.
type ReceiptUpsertBulk struct {
	create *ReceiptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receipt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiptUpsertBulk) UpdateNewValues() *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(receipt.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Receipt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReceiptUpsertBulk) Ignore() *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiptUpsertBulk) DoNothing() *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiptCreateBulk.OnConflict
// documentation for more info.
func (u *ReceiptUpsertBulk) Update(set func(*ReceiptUpsert)) *ReceiptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiptUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ReceiptUpsertBulk) SetSessionID(v uuid.UUID) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateSessionID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateSessionID()
	})
}

// SetEmployeeID sets the "employee_id" field.
func (u *ReceiptUpsertBulk) SetEmployeeID(v uuid.UUID) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateEmployeeID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateEmployeeID()
	})
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *ReceiptUpsertBulk) ClearEmployeeID() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearEmployeeID()
	})
}

// SetTxDate sets the "tx_date" field.
func (u *ReceiptUpsertBulk) SetTxDate(v time.Time) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetTxDate(v)
	})
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateTxDate() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateTxDate()
	})
}

// SetMerchant sets the "merchant" field.
func (u *ReceiptUpsertBulk) SetMerchant(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetMerchant(v)
	})
}

// UpdateMerchant sets the "merchant" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateMerchant() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateMerchant()
	})
}

// SetAmount sets the "amount" field.
func (u *ReceiptUpsertBulk) SetAmount(v decimal.Decimal) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateAmount() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateAmount()
	})
}

// SetIsCredit sets the "is_credit" field.
func (u *ReceiptUpsertBulk) SetIsCredit(v bool) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetIsCredit(v)
	})
}

// UpdateIsCredit sets the "is_credit" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateIsCredit() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateIsCredit()
	})
}

// SetIncomplete sets the "incomplete" field.
func (u *ReceiptUpsertBulk) SetIncomplete(v bool) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetIncomplete(v)
	})
}

// UpdateIncomplete sets the "incomplete" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateIncomplete() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateIncomplete()
	})
}

// SetImageRef sets the "image_ref" field.
func (u *ReceiptUpsertBulk) SetImageRef(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetImageRef(v)
	})
}

// UpdateImageRef sets the "image_ref" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateImageRef() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateImageRef()
	})
}

// ClearImageRef clears the value of the "image_ref" field.
func (u *ReceiptUpsertBulk) ClearImageRef() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.ClearImageRef()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *ReceiptUpsertBulk) SetSourceFile(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateSourceFile() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateSourceFile()
	})
}

// SetSourceLine sets the "source_line" field.
func (u *ReceiptUpsertBulk) SetSourceLine(v string) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetSourceLine(v)
	})
}

// UpdateSourceLine sets the "source_line" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateSourceLine() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateSourceLine()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReceiptUpsertBulk) SetCreatedAt(v time.Time) *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReceiptUpsertBulk) UpdateCreatedAt() *ReceiptUpsertBulk {
	return u.Update(func(s *ReceiptUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *ReceiptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReceiptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
