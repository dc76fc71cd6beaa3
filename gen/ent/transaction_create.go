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
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/finops-tools/expense-recon/gen/ent/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is the builder for creating a Transaction entity.
type TransactionCreate struct {
	config
	mutation *TransactionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *TransactionCreate) SetSessionID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *TransactionCreate) SetEmployeeID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableEmployeeID(v *uuid.UUID) *TransactionCreate {
	if v != nil {
		_c.SetEmployeeID(*v)
	}
	return _c
}

// SetTxDate sets the "tx_date" field.
func (_c *TransactionCreate) SetTxDate(v time.Time) *TransactionCreate {
	_c.mutation.SetTxDate(v)
	return _c
}

// SetPostedDate sets the "posted_date" field.
func (_c *TransactionCreate) SetPostedDate(v time.Time) *TransactionCreate {
	_c.mutation.SetPostedDate(v)
	return _c
}

// SetNillablePostedDate sets the "posted_date" field if the given value is not nil.
func (_c *TransactionCreate) SetNillablePostedDate(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetPostedDate(*v)
	}
	return _c
}

// SetMerchant sets the "merchant" field.
func (_c *TransactionCreate) SetMerchant(v string) *TransactionCreate {
	_c.mutation.SetMerchant(v)
	return _c
}

// SetGroup sets the "group" field.
func (_c *TransactionCreate) SetGroup(v string) *TransactionCreate {
	_c.mutation.SetGroup(v)
	return _c
}

// SetNillableGroup sets the "group" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableGroup(v *string) *TransactionCreate {
	if v != nil {
		_c.SetGroup(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *TransactionCreate) SetAmount(v decimal.Decimal) *TransactionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetIsCredit sets the "is_credit" field.
func (_c *TransactionCreate) SetIsCredit(v bool) *TransactionCreate {
	_c.mutation.SetIsCredit(v)
	return _c
}

// SetNillableIsCredit sets the "is_credit" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableIsCredit(v *bool) *TransactionCreate {
	if v != nil {
		_c.SetIsCredit(*v)
	}
	return _c
}

// SetIncomplete sets the "incomplete" field.
func (_c *TransactionCreate) SetIncomplete(v bool) *TransactionCreate {
	_c.mutation.SetIncomplete(v)
	return _c
}

// SetNillableIncomplete sets the "incomplete" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableIncomplete(v *bool) *TransactionCreate {
	if v != nil {
		_c.SetIncomplete(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *TransactionCreate) SetSourceFile(v string) *TransactionCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetSourceLine sets the "source_line" field.
func (_c *TransactionCreate) SetSourceLine(v string) *TransactionCreate {
	_c.mutation.SetSourceLine(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransactionCreate) SetCreatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCreatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransactionCreate) SetID(v uuid.UUID) *TransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableID(v *uuid.UUID) *TransactionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *TransactionCreate) SetSession(v *Session) *TransactionCreate {
	return _c.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_c *TransactionCreate) SetEmployee(v *Employee) *TransactionCreate {
	return _c.SetEmployeeID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_c *TransactionCreate) Mutation() *TransactionMutation {
	return _c.mutation
}

// Save creates the Transaction in the database.
func (_c *TransactionCreate) Save(ctx context.Context) (*Transaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransactionCreate) SaveX(ctx context.Context) *Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransactionCreate) defaults() {
	if _, ok := _c.mutation.IsCredit(); !ok {
		v := transaction.DefaultIsCredit
		_c.mutation.SetIsCredit(v)
	}
	if _, ok := _c.mutation.Incomplete(); !ok {
		v := transaction.DefaultIncomplete
		_c.mutation.SetIncomplete(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transaction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransactionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Transaction.session_id"`)}
	}
	if _, ok := _c.mutation.TxDate(); !ok {
		return &ValidationError{Name: "tx_date", err: errors.New(`ent: missing required field "Transaction.tx_date"`)}
	}
	if _, ok := _c.mutation.Merchant(); !ok {
		return &ValidationError{Name: "merchant", err: errors.New(`ent: missing required field "Transaction.merchant"`)}
	}
	if v, ok := _c.mutation.Merchant(); ok {
		if err := transaction.MerchantValidator(v); err != nil {
			return &ValidationError{Name: "merchant", err: fmt.Errorf(`ent: validator failed for field "Transaction.merchant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Transaction.amount"`)}
	}
	if _, ok := _c.mutation.IsCredit(); !ok {
		return &ValidationError{Name: "is_credit", err: errors.New(`ent: missing required field "Transaction.is_credit"`)}
	}
	if _, ok := _c.mutation.Incomplete(); !ok {
		return &ValidationError{Name: "incomplete", err: errors.New(`ent: missing required field "Transaction.incomplete"`)}
	}
	if _, ok := _c.mutation.SourceFile(); !ok {
		return &ValidationError{Name: "source_file", err: errors.New(`ent: missing required field "Transaction.source_file"`)}
	}
	if v, ok := _c.mutation.SourceFile(); ok {
		if err := transaction.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Transaction.source_file": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceLine(); !ok {
		return &ValidationError{Name: "source_line", err: errors.New(`ent: missing required field "Transaction.source_line"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transaction.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Transaction.session"`)}
	}
	return nil
}

func (_c *TransactionCreate) sqlSave(ctx context.Context) (*Transaction, error) {
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

func (_c *TransactionCreate) createSpec() (*Transaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Transaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transaction.Table, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TxDate(); ok {
		_spec.SetField(transaction.FieldTxDate, field.TypeTime, value)
		_node.TxDate = value
	}
	if value, ok := _c.mutation.PostedDate(); ok {
		_spec.SetField(transaction.FieldPostedDate, field.TypeTime, value)
		_node.PostedDate = &value
	}
	if value, ok := _c.mutation.Merchant(); ok {
		_spec.SetField(transaction.FieldMerchant, field.TypeString, value)
		_node.Merchant = value
	}
	if value, ok := _c.mutation.Group(); ok {
		_spec.SetField(transaction.FieldGroup, field.TypeString, value)
		_node.Group = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.IsCredit(); ok {
		_spec.SetField(transaction.FieldIsCredit, field.TypeBool, value)
		_node.IsCredit = value
	}
	if value, ok := _c.mutation.Incomplete(); ok {
		_spec.SetField(transaction.FieldIncomplete, field.TypeBool, value)
		_node.Incomplete = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(transaction.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.SourceLine(); ok {
		_spec.SetField(transaction.FieldSourceLine, field.TypeString, value)
		_node.SourceLine = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_node.EmployeeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transaction.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransactionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *TransactionCreate) OnConflict(opts ...sql.ConflictOption) *TransactionUpsertOne {
	_c.conflict = opts
	return &TransactionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransactionCreate) OnConflictColumns(columns ...string) *TransactionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransactionUpsertOne{
		create: _c,
	}
}

type (
	// TransactionUpsertOne is the builder for "upsert"-ing
	//  one Transaction node.
	TransactionUpsertOne struct {
		create *TransactionCreate
	}

	// TransactionUpsert is the "OnConflict" setter.
	TransactionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *TransactionUpsert) SetSessionID(v uuid.UUID) *TransactionUpsert {
	u.Set(transaction.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateSessionID() *TransactionUpsert {
	u.SetExcluded(transaction.FieldSessionID)
	return u
}

// SetEmployeeID sets the "employee_id" field.
func (u *TransactionUpsert) SetEmployeeID(v uuid.UUID) *TransactionUpsert {
	u.Set(transaction.FieldEmployeeID, v)
	return u
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateEmployeeID() *TransactionUpsert {
	u.SetExcluded(transaction.FieldEmployeeID)
	return u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *TransactionUpsert) ClearEmployeeID() *TransactionUpsert {
	u.SetNull(transaction.FieldEmployeeID)
	return u
}

// SetTxDate sets the "tx_date" field.
func (u *TransactionUpsert) SetTxDate(v time.Time) *TransactionUpsert {
	u.Set(transaction.FieldTxDate, v)
	return u
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateTxDate() *TransactionUpsert {
	u.SetExcluded(transaction.FieldTxDate)
	return u
}

// SetPostedDate sets the "posted_date" field.
func (u *TransactionUpsert) SetPostedDate(v time.Time) *TransactionUpsert {
	u.Set(transaction.FieldPostedDate, v)
	return u
}

// UpdatePostedDate sets the "posted_date" field to the value that was provided on create.
func (u *TransactionUpsert) UpdatePostedDate() *TransactionUpsert {
	u.SetExcluded(transaction.FieldPostedDate)
	return u
}

// ClearPostedDate clears the value of the "posted_date" field.
func (u *TransactionUpsert) ClearPostedDate() *TransactionUpsert {
	u.SetNull(transaction.FieldPostedDate)
	return u
}

// SetMerchant sets the "merchant" field.
func (u *TransactionUpsert) SetMerchant(v string) *TransactionUpsert {
	u.Set(transaction.FieldMerchant, v)
	return u
}

// UpdateMerchant sets the "merchant" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateMerchant() *TransactionUpsert {
	u.SetExcluded(transaction.FieldMerchant)
	return u
}

// SetGroup sets the "group" field.
func (u *TransactionUpsert) SetGroup(v string) *TransactionUpsert {
	u.Set(transaction.FieldGroup, v)
	return u
}

// UpdateGroup sets the "group" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateGroup() *TransactionUpsert {
	u.SetExcluded(transaction.FieldGroup)
	return u
}

// ClearGroup clears the value of the "group" field.
func (u *TransactionUpsert) ClearGroup() *TransactionUpsert {
	u.SetNull(transaction.FieldGroup)
	return u
}

// SetAmount sets the "amount" field.
func (u *TransactionUpsert) SetAmount(v decimal.Decimal) *TransactionUpsert {
	u.Set(transaction.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateAmount() *TransactionUpsert {
	u.SetExcluded(transaction.FieldAmount)
	return u
}

// SetIsCredit sets the "is_credit" field.
func (u *TransactionUpsert) SetIsCredit(v bool) *TransactionUpsert {
	u.Set(transaction.FieldIsCredit, v)
	return u
}

// UpdateIsCredit sets the "is_credit" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateIsCredit() *TransactionUpsert {
	u.SetExcluded(transaction.FieldIsCredit)
	return u
}

// SetIncomplete sets the "incomplete" field.
func (u *TransactionUpsert) SetIncomplete(v bool) *TransactionUpsert {
	u.Set(transaction.FieldIncomplete, v)
	return u
}

// UpdateIncomplete sets the "incomplete" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateIncomplete() *TransactionUpsert {
	u.SetExcluded(transaction.FieldIncomplete)
	return u
}

// SetSourceFile sets the "source_file" field.
func (u *TransactionUpsert) SetSourceFile(v string) *TransactionUpsert {
	u.Set(transaction.FieldSourceFile, v)
	return u
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateSourceFile() *TransactionUpsert {
	u.SetExcluded(transaction.FieldSourceFile)
	return u
}

// SetSourceLine sets the "source_line" field.
func (u *TransactionUpsert) SetSourceLine(v string) *TransactionUpsert {
	u.Set(transaction.FieldSourceLine, v)
	return u
}

// UpdateSourceLine sets the "source_line" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateSourceLine() *TransactionUpsert {
	u.SetExcluded(transaction.FieldSourceLine)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *TransactionUpsert) SetCreatedAt(v time.Time) *TransactionUpsert {
	u.Set(transaction.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TransactionUpsert) UpdateCreatedAt() *TransactionUpsert {
	u.SetExcluded(transaction.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransactionUpsertOne) UpdateNewValues() *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(transaction.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TransactionUpsertOne) Ignore() *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransactionUpsertOne) DoNothing() *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransactionCreate.OnConflict
// documentation for more info.
func (u *TransactionUpsertOne) Update(set func(*TransactionUpsert)) *TransactionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TransactionUpsertOne) SetSessionID(v uuid.UUID) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateSessionID() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateSessionID()
	})
}

// SetEmployeeID sets the "employee_id" field.
func (u *TransactionUpsertOne) SetEmployeeID(v uuid.UUID) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateEmployeeID() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateEmployeeID()
	})
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *TransactionUpsertOne) ClearEmployeeID() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearEmployeeID()
	})
}

// SetTxDate sets the "tx_date" field.
func (u *TransactionUpsertOne) SetTxDate(v time.Time) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetTxDate(v)
	})
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateTxDate() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateTxDate()
	})
}

// SetPostedDate sets the "posted_date" field.
func (u *TransactionUpsertOne) SetPostedDate(v time.Time) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetPostedDate(v)
	})
}

// UpdatePostedDate sets the "posted_date" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdatePostedDate() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdatePostedDate()
	})
}

// ClearPostedDate clears the value of the "posted_date" field.
func (u *TransactionUpsertOne) ClearPostedDate() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearPostedDate()
	})
}

// SetMerchant sets the "merchant" field.
func (u *TransactionUpsertOne) SetMerchant(v string) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetMerchant(v)
	})
}

// UpdateMerchant sets the "merchant" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateMerchant() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateMerchant()
	})
}

// SetGroup sets the "group" field.
func (u *TransactionUpsertOne) SetGroup(v string) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetGroup(v)
	})
}

// UpdateGroup sets the "group" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateGroup() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateGroup()
	})
}

// ClearGroup clears the value of the "group" field.
func (u *TransactionUpsertOne) ClearGroup() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearGroup()
	})
}

// SetAmount sets the "amount" field.
func (u *TransactionUpsertOne) SetAmount(v decimal.Decimal) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateAmount() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateAmount()
	})
}

// SetIsCredit sets the "is_credit" field.
func (u *TransactionUpsertOne) SetIsCredit(v bool) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetIsCredit(v)
	})
}

// UpdateIsCredit sets the "is_credit" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateIsCredit() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateIsCredit()
	})
}

// SetIncomplete sets the "incomplete" field.
func (u *TransactionUpsertOne) SetIncomplete(v bool) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetIncomplete(v)
	})
}

// UpdateIncomplete sets the "incomplete" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateIncomplete() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateIncomplete()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *TransactionUpsertOne) SetSourceFile(v string) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateSourceFile() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateSourceFile()
	})
}

// SetSourceLine sets the "source_line" field.
func (u *TransactionUpsertOne) SetSourceLine(v string) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetSourceLine(v)
	})
}

// UpdateSourceLine sets the "source_line" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateSourceLine() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateSourceLine()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TransactionUpsertOne) SetCreatedAt(v time.Time) *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TransactionUpsertOne) UpdateCreatedAt() *TransactionUpsertOne {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *TransactionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TransactionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransactionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TransactionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TransactionUpsertOne.ID is not supported by MySQL driver. Use TransactionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TransactionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TransactionCreateBulk is the builder for creating many Transaction entities in bulk.
type TransactionCreateBulk struct {
	config
	err      error
	builders []*TransactionCreate
	conflict []sql.ConflictOption
}

// Save creates the Transaction entities in the database.
func (_c *TransactionCreateBulk) Save(ctx context.Context) ([]*Transaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransactionMutation)
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
func (_c *TransactionCreateBulk) SaveX(ctx context.Context) []*Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransactionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *TransactionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TransactionUpsertBulk {
	_c.conflict = opts
	return &TransactionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransactionCreateBulk) OnConflictColumns(columns ...string) *TransactionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransactionUpsertBulk{
		create: _c,
	}
}

// TransactionUpsertBulk is the builder for "upsert"-ing
// a bulk of Transaction nodes.
type TransactionUpsertBulk struct {
	create *TransactionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransactionUpsertBulk) UpdateNewValues() *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(transaction.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TransactionUpsertBulk) Ignore() *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransactionUpsertBulk) DoNothing() *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransactionCreateBulk.OnConflict
// documentation for more info.
func (u *TransactionUpsertBulk) Update(set func(*TransactionUpsert)) *TransactionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransactionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TransactionUpsertBulk) SetSessionID(v uuid.UUID) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateSessionID() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateSessionID()
	})
}

// SetEmployeeID sets the "employee_id" field.
func (u *TransactionUpsertBulk) SetEmployeeID(v uuid.UUID) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateEmployeeID() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateEmployeeID()
	})
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *TransactionUpsertBulk) ClearEmployeeID() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearEmployeeID()
	})
}

// SetTxDate sets the "tx_date" field.
func (u *TransactionUpsertBulk) SetTxDate(v time.Time) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetTxDate(v)
	})
}

// UpdateTxDate sets the "tx_date" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateTxDate() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateTxDate()
	})
}

// SetPostedDate sets the "posted_date" field.
func (u *TransactionUpsertBulk) SetPostedDate(v time.Time) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetPostedDate(v)
	})
}

// UpdatePostedDate sets the "posted_date" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdatePostedDate() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdatePostedDate()
	})
}

// ClearPostedDate clears the value of the "posted_date" field.
func (u *TransactionUpsertBulk) ClearPostedDate() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearPostedDate()
	})
}

// SetMerchant sets the "merchant" field.
func (u *TransactionUpsertBulk) SetMerchant(v string) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetMerchant(v)
	})
}

// UpdateMerchant sets the "merchant" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateMerchant() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateMerchant()
	})
}

// SetGroup sets the "group" field.
func (u *TransactionUpsertBulk) SetGroup(v string) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetGroup(v)
	})
}

// UpdateGroup sets the "group" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateGroup() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateGroup()
	})
}

// ClearGroup clears the value of the "group" field.
func (u *TransactionUpsertBulk) ClearGroup() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.ClearGroup()
	})
}

// SetAmount sets the "amount" field.
func (u *TransactionUpsertBulk) SetAmount(v decimal.Decimal) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateAmount() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateAmount()
	})
}

// SetIsCredit sets the "is_credit" field.
func (u *TransactionUpsertBulk) SetIsCredit(v bool) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetIsCredit(v)
	})
}

// UpdateIsCredit sets the "is_credit" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateIsCredit() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateIsCredit()
	})
}

// SetIncomplete sets the "incomplete" field.
func (u *TransactionUpsertBulk) SetIncomplete(v bool) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetIncomplete(v)
	})
}

// UpdateIncomplete sets the "incomplete" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateIncomplete() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateIncomplete()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *TransactionUpsertBulk) SetSourceFile(v string) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateSourceFile() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateSourceFile()
	})
}

// SetSourceLine sets the "source_line" field.
func (u *TransactionUpsertBulk) SetSourceLine(v string) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetSourceLine(v)
	})
}

// UpdateSourceLine sets the "source_line" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateSourceLine() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateSourceLine()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TransactionUpsertBulk) SetCreatedAt(v time.Time) *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TransactionUpsertBulk) UpdateCreatedAt() *TransactionUpsertBulk {
	return u.Update(func(s *TransactionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *TransactionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TransactionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TransactionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransactionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
