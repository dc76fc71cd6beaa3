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
	"github.com/finops-tools/expense-recon/gen/ent/employeealias"
	"github.com/google/uuid"
)

// EmployeeAliasCreate is the builder for creating a EmployeeAlias entity.
type EmployeeAliasCreate struct {
	config
	mutation *EmployeeAliasMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEmployeeID sets the "employee_id" field.
func (_c *EmployeeAliasCreate) SetEmployeeID(v uuid.UUID) *EmployeeAliasCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetAlias sets the "alias" field.
func (_c *EmployeeAliasCreate) SetAlias(v string) *EmployeeAliasCreate {
	_c.mutation.SetAlias(v)
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *EmployeeAliasCreate) SetConfirmedAt(v time.Time) *EmployeeAliasCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *EmployeeAliasCreate) SetNillableConfirmedAt(v *time.Time) *EmployeeAliasCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmployeeAliasCreate) SetID(v uuid.UUID) *EmployeeAliasCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmployeeAliasCreate) SetNillableID(v *uuid.UUID) *EmployeeAliasCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_c *EmployeeAliasCreate) SetEmployee(v *Employee) *EmployeeAliasCreate {
	return _c.SetEmployeeID(v.ID)
}

// Mutation returns the EmployeeAliasMutation object of the builder.
func (_c *EmployeeAliasCreate) Mutation() *EmployeeAliasMutation {
	return _c.mutation
}

// Save creates the EmployeeAlias in the database.
func (_c *EmployeeAliasCreate) Save(ctx context.Context) (*EmployeeAlias, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmployeeAliasCreate) SaveX(ctx context.Context) *EmployeeAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeeAliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeeAliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmployeeAliasCreate) defaults() {
	if _, ok := _c.mutation.ConfirmedAt(); !ok {
		v := employeealias.DefaultConfirmedAt()
		_c.mutation.SetConfirmedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := employeealias.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmployeeAliasCreate) check() error {
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`ent: missing required field "EmployeeAlias.employee_id"`)}
	}
	if _, ok := _c.mutation.Alias(); !ok {
		return &ValidationError{Name: "alias", err: errors.New(`ent: missing required field "EmployeeAlias.alias"`)}
	}
	if v, ok := _c.mutation.Alias(); ok {
		if err := employeealias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "EmployeeAlias.alias": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfirmedAt(); !ok {
		return &ValidationError{Name: "confirmed_at", err: errors.New(`ent: missing required field "EmployeeAlias.confirmed_at"`)}
	}
	if len(_c.mutation.EmployeeIDs()) == 0 {
		return &ValidationError{Name: "employee", err: errors.New(`ent: missing required edge "EmployeeAlias.employee"`)}
	}
	return nil
}

func (_c *EmployeeAliasCreate) sqlSave(ctx context.Context) (*EmployeeAlias, error) {
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

func (_c *EmployeeAliasCreate) createSpec() (*EmployeeAlias, *sqlgraph.CreateSpec) {
	var (
		_node = &EmployeeAlias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(employeealias.Table, sqlgraph.NewFieldSpec(employeealias.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Alias(); ok {
		_spec.SetField(employeealias.FieldAlias, field.TypeString, value)
		_node.Alias = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(employeealias.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = value
	}
	if nodes := _c.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_node.EmployeeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmployeeAlias.Create().
//		SetEmployeeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmployeeAliasUpsert) {
//			SetEmployeeID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmployeeAliasCreate) OnConflict(opts ...sql.ConflictOption) *EmployeeAliasUpsertOne {
	_c.conflict = opts
	return &EmployeeAliasUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmployeeAlias.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmployeeAliasCreate) OnConflictColumns(columns ...string) *EmployeeAliasUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmployeeAliasUpsertOne{
		create: _c,
	}
}

type (
	// EmployeeAliasUpsertOne is the builder for "upsert"-ing
	//  one EmployeeAlias node.
	EmployeeAliasUpsertOne struct {
		create *EmployeeAliasCreate
	}

	// EmployeeAliasUpsert is the "OnConflict" setter.
	EmployeeAliasUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmployeeID sets the "employee_id" field.
func (u *EmployeeAliasUpsert) SetEmployeeID(v uuid.UUID) *EmployeeAliasUpsert {
	u.Set(employeealias.FieldEmployeeID, v)
	return u
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *EmployeeAliasUpsert) UpdateEmployeeID() *EmployeeAliasUpsert {
	u.SetExcluded(employeealias.FieldEmployeeID)
	return u
}

// SetAlias sets the "alias" field.
func (u *EmployeeAliasUpsert) SetAlias(v string) *EmployeeAliasUpsert {
	u.Set(employeealias.FieldAlias, v)
	return u
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *EmployeeAliasUpsert) UpdateAlias() *EmployeeAliasUpsert {
	u.SetExcluded(employeealias.FieldAlias)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *EmployeeAliasUpsert) SetConfirmedAt(v time.Time) *EmployeeAliasUpsert {
	u.Set(employeealias.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *EmployeeAliasUpsert) UpdateConfirmedAt() *EmployeeAliasUpsert {
	u.SetExcluded(employeealias.FieldConfirmedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EmployeeAlias.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(employeealias.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmployeeAliasUpsertOne) UpdateNewValues() *EmployeeAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(employeealias.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmployeeAlias.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EmployeeAliasUpsertOne) Ignore() *EmployeeAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmployeeAliasUpsertOne) DoNothing() *EmployeeAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmployeeAliasCreate.OnConflict
// documentation for more info.
func (u *EmployeeAliasUpsertOne) Update(set func(*EmployeeAliasUpsert)) *EmployeeAliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmployeeAliasUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmployeeID sets the "employee_id" field.
func (u *EmployeeAliasUpsertOne) SetEmployeeID(v uuid.UUID) *EmployeeAliasUpsertOne {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *EmployeeAliasUpsertOne) UpdateEmployeeID() *EmployeeAliasUpsertOne {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.UpdateEmployeeID()
	})
}

// SetAlias sets the "alias" field.
func (u *EmployeeAliasUpsertOne) SetAlias(v string) *EmployeeAliasUpsertOne {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *EmployeeAliasUpsertOne) UpdateAlias() *EmployeeAliasUpsertOne {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.UpdateAlias()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *EmployeeAliasUpsertOne) SetConfirmedAt(v time.Time) *EmployeeAliasUpsertOne {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *EmployeeAliasUpsertOne) UpdateConfirmedAt() *EmployeeAliasUpsertOne {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.UpdateConfirmedAt()
	})
}

// Exec executes the query.
func (u *EmployeeAliasUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmployeeAliasCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmployeeAliasUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EmployeeAliasUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EmployeeAliasUpsertOne.ID is not supported by MySQL driver. Use EmployeeAliasUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EmployeeAliasUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EmployeeAliasCreateBulk is the builder for creating many EmployeeAlias entities in bulk.
type EmployeeAliasCreateBulk struct {
	config
	err      error
	builders []*EmployeeAliasCreate
	conflict []sql.ConflictOption
}

// Save creates the EmployeeAlias entities in the database.
func (_c *EmployeeAliasCreateBulk) Save(ctx context.Context) ([]*EmployeeAlias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EmployeeAlias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmployeeAliasMutation)
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
func (_c *EmployeeAliasCreateBulk) SaveX(ctx context.Context) []*EmployeeAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeeAliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeeAliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EmployeeAlias.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EmployeeAliasUpsert) {
//			SetEmployeeID(v+v).
//		}).
//		Exec(ctx)
func (_c *EmployeeAliasCreateBulk) OnConflict(opts ...sql.ConflictOption) *EmployeeAliasUpsertBulk {
	_c.conflict = opts
	return &EmployeeAliasUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EmployeeAlias.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EmployeeAliasCreateBulk) OnConflictColumns(columns ...string) *EmployeeAliasUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EmployeeAliasUpsertBulk{
		create: _c,
	}
}

// EmployeeAliasUpsertBulk is the builder for "upsert"-ing
// a bulk of EmployeeAlias nodes.
type EmployeeAliasUpsertBulk struct {
	create *EmployeeAliasCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EmployeeAlias.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(employeealias.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EmployeeAliasUpsertBulk) UpdateNewValues() *EmployeeAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(employeealias.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EmployeeAlias.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EmployeeAliasUpsertBulk) Ignore() *EmployeeAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EmployeeAliasUpsertBulk) DoNothing() *EmployeeAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EmployeeAliasCreateBulk.OnConflict
// documentation for more info.
func (u *EmployeeAliasUpsertBulk) Update(set func(*EmployeeAliasUpsert)) *EmployeeAliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EmployeeAliasUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmployeeID sets the "employee_id" field.
func (u *EmployeeAliasUpsertBulk) SetEmployeeID(v uuid.UUID) *EmployeeAliasUpsertBulk {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.SetEmployeeID(v)
	})
}

// UpdateEmployeeID sets the "employee_id" field to the value that was provided on create.
func (u *EmployeeAliasUpsertBulk) UpdateEmployeeID() *EmployeeAliasUpsertBulk {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.UpdateEmployeeID()
	})
}

// SetAlias sets the "alias" field.
func (u *EmployeeAliasUpsertBulk) SetAlias(v string) *EmployeeAliasUpsertBulk {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *EmployeeAliasUpsertBulk) UpdateAlias() *EmployeeAliasUpsertBulk {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.UpdateAlias()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *EmployeeAliasUpsertBulk) SetConfirmedAt(v time.Time) *EmployeeAliasUpsertBulk {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *EmployeeAliasUpsertBulk) UpdateConfirmedAt() *EmployeeAliasUpsertBulk {
	return u.Update(func(s *EmployeeAliasUpsert) {
		s.UpdateConfirmedAt()
	})
}

// Exec executes the query.
func (u *EmployeeAliasUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EmployeeAliasCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EmployeeAliasCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EmployeeAliasUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
