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
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/google/uuid"
)

// MatchResultCreate is the builder for creating a MatchResult entity.
type MatchResultCreate struct {
	config
	mutation *MatchResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *MatchResultCreate) SetSessionID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *MatchResultCreate) SetEmployeeID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_c *MatchResultCreate) SetNillableEmployeeID(v *uuid.UUID) *MatchResultCreate {
	if v != nil {
		_c.SetEmployeeID(*v)
	}
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *MatchResultCreate) SetTransactionID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_c *MatchResultCreate) SetNillableTransactionID(v *uuid.UUID) *MatchResultCreate {
	if v != nil {
		_c.SetTransactionID(*v)
	}
	return _c
}

// SetReceiptID sets the "receipt_id" field.
func (_c *MatchResultCreate) SetReceiptID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetReceiptID(v)
	return _c
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_c *MatchResultCreate) SetNillableReceiptID(v *uuid.UUID) *MatchResultCreate {
	if v != nil {
		_c.SetReceiptID(*v)
	}
	return _c
}

// SetBasis sets the "basis" field.
func (_c *MatchResultCreate) SetBasis(v string) *MatchResultCreate {
	_c.mutation.SetBasis(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatchResultCreate) SetCreatedAt(v time.Time) *MatchResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatchResultCreate) SetNillableCreatedAt(v *time.Time) *MatchResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatchResultCreate) SetID(v uuid.UUID) *MatchResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MatchResultCreate) SetNillableID(v *uuid.UUID) *MatchResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *MatchResultCreate) SetSession(v *Session) *MatchResultCreate {
	return _c.SetSessionID(v.ID)
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_c *MatchResultCreate) SetEmployee(v *Employee) *MatchResultCreate {
	return _c.SetEmployeeID(v.ID)
}

// Mutation returns the MatchResultMutation object of the builder.
func (_c *MatchResultCreate) Mutation() *MatchResultMutation {
	return _c.mutation
}

// Save creates the MatchResult in the database.
func (_c *MatchResultCreate) Save(ctx context.Context) (*MatchResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchResultCreate) SaveX(ctx context.Context) *MatchResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := matchresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := matchresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchResultCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MatchResult.session_id"`)}
	}
	if _, ok := _c.mutation.Basis(); !ok {
		return &ValidationError{Name: "basis", err: errors.New(`ent: missing required field "MatchResult.basis"`)}
	}
	if v, ok := _c.mutation.Basis(); ok {
		if err := matchresult.BasisValidator(v); err != nil {
			return &ValidationError{Name: "basis", err: fmt.Errorf(`ent: validator failed for field "MatchResult.basis": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MatchResult.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "MatchResult.session"`)}
	}
	return nil
}

func (_c *MatchResultCreate) sqlSave(ctx context.Context) (*MatchResult, error) {
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

func (_c *MatchResultCreate) createSpec() (*MatchResult, *sqlgraph.CreateSpec) {
	var (
		_node = &MatchResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matchresult.Table, sqlgraph.NewFieldSpec(matchresult.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(matchresult.FieldTransactionID, field.TypeUUID, value)
		_node.TransactionID = &value
	}
	if value, ok := _c.mutation.ReceiptID(); ok {
		_spec.SetField(matchresult.FieldReceiptID, field.TypeUUID, value)
		_node.ReceiptID = &value
	}
	if value, ok := _c.mutation.Basis(); ok {
		_spec.SetField(matchresult.FieldBasis, field.TypeString, value)
		_node.Basis = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(matchresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_node.EmployeeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MatchResult.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MatchResultUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MatchResultCreate) OnConflict(opts ...sql.ConflictOption) *MatchResultUpsertOne {
	_c.conflict = opts
	return &MatchResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MatchResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MatchResultCreate) OnConflictColumns(columns ...string) *MatchResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MatchResultUpsertOne{
		create: _c,
	}
}

type (
	// MatchResultUpsertOne is the builder for "upsert"-ing
	//  one MatchResult node.
	MatchResultUpsertOne struct {
		create *MatchResultCreate
	}

	// MatchResultUpsert is the "OnConflict" setter.
	MatchResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *MatchResultUpsert) SetSessionID(v uuid.UUID) *MatchResultUpsert {
	u.Set(matchresult.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *MatchResultUpsert) UpdateSessionID() *MatchResultUpsert {
	u.SetExcluded(matchresult.FieldSessionID)
	return u
}

// SetEmployeeID sets the "employee_id" field.
func (u *MatchResultUpsert) SetEmployeeID(v uuid.UUID) *MatchResultUpsert {
	u.Set(matchresult.FieldEmployeeID, v)
	return u
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *MatchResultUpsert) UpdateEmployeeID() *MatchResultUpsert {
	u.SetExcluded(matchresult.FieldEmployeeID)
	return u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *MatchResultUpsert) ClearEmployeeID() *MatchResultUpsert {
	u.SetNull(matchresult.FieldEmployeeID)
	return u
}

// SetTransactionID sets the "transaction_id" field.
func (u *MatchResultUpsert) SetTransactionID(v uuid.UUID) *MatchResultUpsert {
	u.Set(matchresult.FieldTransactionID, v)
	return u
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *MatchResultUpsert) UpdateTransactionID() *MatchResultUpsert {
	u.SetExcluded(matchresult.FieldTransactionID)
	return u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *MatchResultUpsert) ClearTransactionID() *MatchResultUpsert {
	u.SetNull(matchresult.FieldTransactionID)
	return u
}

// SetReceiptID sets the "receipt_id" field.
func (u *MatchResultUpsert) SetReceiptID(v uuid.UUID) *MatchResultUpsert {
	u.Set(matchresult.FieldReceiptID, v)
	return u
}

// UpdateReceiptID sets the "receipt_id" field to the value that was provided on create.
func (u *MatchResultUpsert) UpdateReceiptID() *MatchResultUpsert {
	u.SetExcluded(matchresult.FieldReceiptID)
	return u
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (u *MatchResultUpsert) ClearReceiptID() *MatchResultUpsert {
	u.SetNull(matchresult.FieldReceiptID)
	return u
}

// SetBasis sets the "basis" field.
func (u *MatchResultUpsert) SetBasis(v string) *MatchResultUpsert {
	u.Set(matchresult.FieldBasis, v)
	return u
}

// UpdateBasis sets the "basis" field to the value that was provided on create.
func (u *MatchResultUpsert) UpdateBasis() *MatchResultUpsert {
	u.SetExcluded(matchresult.FieldBasis)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *MatchResultUpsert) SetCreatedAt(v time.Time) *MatchResultUpsert {
	u.Set(matchresult.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MatchResultUpsert) UpdateCreatedAt() *MatchResultUpsert {
	u.SetExcluded(matchresult.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MatchResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(matchresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MatchResultUpsertOne) UpdateNewValues() *MatchResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(matchresult.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MatchResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MatchResultUpsertOne) Ignore() *MatchResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MatchResultUpsertOne) DoNothing() *MatchResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MatchResultCreate.OnConflict
// documentation for more info.
func (u *MatchResultUpsertOne) Update(set func(*MatchResultUpsert)) *MatchResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MatchResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *MatchResultUpsertOne) SetSessionID(v uuid.UUID) *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *MatchResultUpsertOne) UpdateSessionID() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateSessionID()
	})
}

// SetEmployeeID sets the "employee_id" field.
func (u *MatchResultUpsertOne) SetEmployeeID(v uuid.UUID) *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *MatchResultUpsertOne) UpdateEmployeeID() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateEmployeeID()
	})
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *MatchResultUpsertOne) ClearEmployeeID() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.ClearEmployeeID()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *MatchResultUpsertOne) SetTransactionID(v uuid.UUID) *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *MatchResultUpsertOne) UpdateTransactionID() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateTransactionID()
	})
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *MatchResultUpsertOne) ClearTransactionID() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.ClearTransactionID()
	})
}

// SetReceiptID sets the "receipt_id" field.
func (u *MatchResultUpsertOne) SetReceiptID(v uuid.UUID) *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetReceiptID(v)
	})
}

// UpdateReceiptID sets the "receipt_id" field to the value that was provided on create.
func (u *MatchResultUpsertOne) UpdateReceiptID() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateReceiptID()
	})
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (u *MatchResultUpsertOne) ClearReceiptID() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.ClearReceiptID()
	})
}

// SetBasis sets the "basis" field.
func (u *MatchResultUpsertOne) SetBasis(v string) *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetBasis(v)
	})
}

// UpdateBasis sets the "basis" field to the value that was provided on create.
func (u *MatchResultUpsertOne) UpdateBasis() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateBasis()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *MatchResultUpsertOne) SetCreatedAt(v time.Time) *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MatchResultUpsertOne) UpdateCreatedAt() *MatchResultUpsertOne {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *MatchResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MatchResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MatchResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MatchResultUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MatchResultUpsertOne.ID is not supported by MySQL driver. Use MatchResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MatchResultUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MatchResultCreateBulk is the builder for creating many MatchResult entities in bulk.
type MatchResultCreateBulk struct {
	config
	err      error
	builders []*MatchResultCreate
	conflict []sql.ConflictOption
}

// Save creates the MatchResult entities in the database.
func (_c *MatchResultCreateBulk) Save(ctx context.Context) ([]*MatchResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatchResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchResultMutation)
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
func (_c *MatchResultCreateBulk) SaveX(ctx context.Context) []*MatchResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MatchResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MatchResultUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MatchResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *MatchResultUpsertBulk {
	_c.conflict = opts
	return &MatchResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MatchResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MatchResultCreateBulk) OnConflictColumns(columns ...string) *MatchResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MatchResultUpsertBulk{
		create: _c,
	}
}

// MatchResultUpsertBulk is the builder for "upsert"-ing
// a bulk of MatchResult nodes.
type MatchResultUpsertBulk struct {
	create *MatchResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MatchResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(matchresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MatchResultUpsertBulk) UpdateNewValues() *MatchResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(matchresult.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MatchResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MatchResultUpsertBulk) Ignore() *MatchResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MatchResultUpsertBulk) DoNothing() *MatchResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MatchResultCreateBulk.OnConflict
// documentation for more info.
func (u *MatchResultUpsertBulk) Update(set func(*MatchResultUpsert)) *MatchResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MatchResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *MatchResultUpsertBulk) SetSessionID(v uuid.UUID) *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *MatchResultUpsertBulk) UpdateSessionID() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateSessionID()
	})
}

// SetEmployeeID sets the "employee_id" field.
func (u *MatchResultUpsertBulk) SetEmployeeID(v uuid.UUID) *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *MatchResultUpsertBulk) UpdateEmployeeID() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateEmployeeID()
	})
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (u *MatchResultUpsertBulk) ClearEmployeeID() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.ClearEmployeeID()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *MatchResultUpsertBulk) SetTransactionID(v uuid.UUID) *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *MatchResultUpsertBulk) UpdateTransactionID() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateTransactionID()
	})
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *MatchResultUpsertBulk) ClearTransactionID() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.ClearTransactionID()
	})
}

// SetReceiptID sets the "receipt_id" field.
func (u *MatchResultUpsertBulk) SetReceiptID(v uuid.UUID) *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetReceiptID(v)
	})
}

// UpdateReceiptID sets the "receipt_id" field to the value that was provided on create.
func (u *MatchResultUpsertBulk) UpdateReceiptID() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateReceiptID()
	})
}

// ClearReceiptID clears the value of the "receipt_id" field.
func (u *MatchResultUpsertBulk) ClearReceiptID() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.ClearReceiptID()
	})
}

// SetBasis sets the "basis" field.
func (u *MatchResultUpsertBulk) SetBasis(v string) *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetBasis(v)
	})
}

// UpdateBasis sets the "basis" field to the value that was provided on create.
func (u *MatchResultUpsertBulk) UpdateBasis() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateBasis()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *MatchResultUpsertBulk) SetCreatedAt(v time.Time) *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MatchResultUpsertBulk) UpdateCreatedAt() *MatchResultUpsertBulk {
	return u.Update(func(s *MatchResultUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *MatchResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MatchResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MatchResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MatchResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
