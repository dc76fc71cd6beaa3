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
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/gen/ent/receipt"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/finops-tools/expense-recon/gen/ent/transaction"
	"github.com/google/uuid"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v string) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *string) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFileCount sets the "file_count" field.
func (_c *SessionCreate) SetFileCount(v int) *SessionCreate {
	_c.mutation.SetFileCount(v)
	return _c
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFileCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetFileCount(*v)
	}
	return _c
}

// SetTxCount sets the "tx_count" field.
func (_c *SessionCreate) SetTxCount(v int) *SessionCreate {
	_c.mutation.SetTxCount(v)
	return _c
}

// SetNillableTxCount sets the "tx_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTxCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetTxCount(*v)
	}
	return _c
}

// SetReceiptCount sets the "receipt_count" field.
func (_c *SessionCreate) SetReceiptCount(v int) *SessionCreate {
	_c.mutation.SetReceiptCount(v)
	return _c
}

// SetNillableReceiptCount sets the "receipt_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableReceiptCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetReceiptCount(*v)
	}
	return _c
}

// SetMatchedCount sets the "matched_count" field.
func (_c *SessionCreate) SetMatchedCount(v int) *SessionCreate {
	_c.mutation.SetMatchedCount(v)
	return _c
}

// SetNillableMatchedCount sets the "matched_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMatchedCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetMatchedCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SessionCreate) SetLastError(v string) *SessionCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastError(v *string) *SessionCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *SessionCreate) SetWarnings(v []string) *SessionCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SessionCreate) SetExpiresAt(v time.Time) *SessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_c *SessionCreate) AddTransactionIDs(ids ...uuid.UUID) *SessionCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_c *SessionCreate) AddTransactions(v ...*Transaction) *SessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_c *SessionCreate) AddReceiptIDs(ids ...uuid.UUID) *SessionCreate {
	_c.mutation.AddReceiptIDs(ids...)
	return _c
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_c *SessionCreate) AddReceipts(v ...*Receipt) *SessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReceiptIDs(ids...)
}

// AddMatchIDs adds the "matches" edge to the MatchResult entity by IDs.
func (_c *SessionCreate) AddMatchIDs(ids ...uuid.UUID) *SessionCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the MatchResult entity.
func (_c *SessionCreate) AddMatches(v ...*MatchResult) *SessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FileCount(); !ok {
		v := session.DefaultFileCount
		_c.mutation.SetFileCount(v)
	}
	if _, ok := _c.mutation.TxCount(); !ok {
		v := session.DefaultTxCount
		_c.mutation.SetTxCount(v)
	}
	if _, ok := _c.mutation.ReceiptCount(); !ok {
		v := session.DefaultReceiptCount
		_c.mutation.SetReceiptCount(v)
	}
	if _, ok := _c.mutation.MatchedCount(); !ok {
		v := session.DefaultMatchedCount
		_c.mutation.SetMatchedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := session.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileCount(); !ok {
		return &ValidationError{Name: "file_count", err: errors.New(`ent: missing required field "Session.file_count"`)}
	}
	if v, ok := _c.mutation.FileCount(); ok {
		if err := session.FileCountValidator(v); err != nil {
			return &ValidationError{Name: "file_count", err: fmt.Errorf(`ent: validator failed for field "Session.file_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TxCount(); !ok {
		return &ValidationError{Name: "tx_count", err: errors.New(`ent: missing required field "Session.tx_count"`)}
	}
	if v, ok := _c.mutation.TxCount(); ok {
		if err := session.TxCountValidator(v); err != nil {
			return &ValidationError{Name: "tx_count", err: fmt.Errorf(`ent: validator failed for field "Session.tx_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceiptCount(); !ok {
		return &ValidationError{Name: "receipt_count", err: errors.New(`ent: missing required field "Session.receipt_count"`)}
	}
	if v, ok := _c.mutation.ReceiptCount(); ok {
		if err := session.ReceiptCountValidator(v); err != nil {
			return &ValidationError{Name: "receipt_count", err: fmt.Errorf(`ent: validator failed for field "Session.receipt_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchedCount(); !ok {
		return &ValidationError{Name: "matched_count", err: errors.New(`ent: missing required field "Session.matched_count"`)}
	}
	if v, ok := _c.mutation.MatchedCount(); ok {
		if err := session.MatchedCountValidator(v); err != nil {
			return &ValidationError{Name: "matched_count", err: fmt.Errorf(`ent: validator failed for field "Session.matched_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Session.expires_at"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FileCount(); ok {
		_spec.SetField(session.FieldFileCount, field.TypeInt, value)
		_node.FileCount = value
	}
	if value, ok := _c.mutation.TxCount(); ok {
		_spec.SetField(session.FieldTxCount, field.TypeInt, value)
		_node.TxCount = value
	}
	if value, ok := _c.mutation.ReceiptCount(); ok {
		_spec.SetField(session.FieldReceiptCount, field.TypeInt, value)
		_node.ReceiptCount = value
	}
	if value, ok := _c.mutation.MatchedCount(); ok {
		_spec.SetField(session.FieldMatchedCount, field.TypeInt, value)
		_node.MatchedCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(session.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(session.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.TransactionsTable,
			Columns: []string{session.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.ReceiptsTable,
			Columns: []string{session.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.MatchesTable,
			Columns: []string{session.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(matchresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetStatus(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v string) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// SetFileCount sets the "file_count" field.
func (u *SessionUpsert) SetFileCount(v int) *SessionUpsert {
	u.Set(session.FieldFileCount, v)
	return u
}

// UpdateFileCount sets the "file_count" field to the value that was provided on create.
func (u *SessionUpsert) UpdateFileCount() *SessionUpsert {
	u.SetExcluded(session.FieldFileCount)
	return u
}

// AddFileCount adds v to the "file_count" field.
func (u *SessionUpsert) AddFileCount(v int) *SessionUpsert {
	u.Add(session.FieldFileCount, v)
	return u
}

// SetTxCount sets the "tx_count" field.
func (u *SessionUpsert) SetTxCount(v int) *SessionUpsert {
	u.Set(session.FieldTxCount, v)
	return u
}

// UpdateTxCount sets the "tx_count" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTxCount() *SessionUpsert {
	u.SetExcluded(session.FieldTxCount)
	return u
}

// AddTxCount adds v to the "tx_count" field.
func (u *SessionUpsert) AddTxCount(v int) *SessionUpsert {
	u.Add(session.FieldTxCount, v)
	return u
}

// SetReceiptCount sets the "receipt_count" field.
func (u *SessionUpsert) SetReceiptCount(v int) *SessionUpsert {
	u.Set(session.FieldReceiptCount, v)
	return u
}

// UpdateReceiptCount sets the "receipt_count" field to the value that was provided on create.
func (u *SessionUpsert) UpdateReceiptCount() *SessionUpsert {
	u.SetExcluded(session.FieldReceiptCount)
	return u
}

// AddReceiptCount adds v to the "receipt_count" field.
func (u *SessionUpsert) AddReceiptCount(v int) *SessionUpsert {
	u.Add(session.FieldReceiptCount, v)
	return u
}

// SetMatchedCount sets the "matched_count" field.
func (u *SessionUpsert) SetMatchedCount(v int) *SessionUpsert {
	u.Set(session.FieldMatchedCount, v)
	return u
}

// UpdateMatchedCount sets the "matched_count" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMatchedCount() *SessionUpsert {
	u.SetExcluded(session.FieldMatchedCount)
	return u
}

// AddMatchedCount adds v to the "matched_count" field.
func (u *SessionUpsert) AddMatchedCount(v int) *SessionUpsert {
	u.Add(session.FieldMatchedCount, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *SessionUpsert) SetLastError(v string) *SessionUpsert {
	u.Set(session.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SessionUpsert) UpdateLastError() *SessionUpsert {
	u.SetExcluded(session.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *SessionUpsert) ClearLastError() *SessionUpsert {
	u.SetNull(session.FieldLastError)
	return u
}

// SetWarnings sets the "warnings" field.
func (u *SessionUpsert) SetWarnings(v []string) *SessionUpsert {
	u.Set(session.FieldWarnings, v)
	return u
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *SessionUpsert) UpdateWarnings() *SessionUpsert {
	u.SetExcluded(session.FieldWarnings)
	return u
}

// ClearWarnings clears the value of the "warnings" field.
func (u *SessionUpsert) ClearWarnings() *SessionUpsert {
	u.SetNull(session.FieldWarnings)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *SessionUpsert) SetCreatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCreatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsert) SetUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldUpdatedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *SessionUpsert) SetExpiresAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateExpiresAt() *SessionUpsert {
	u.SetExcluded(session.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetFileCount sets the "file_count" field.
func (u *SessionUpsertOne) SetFileCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetFileCount(v)
	})
}

// AddFileCount adds v to the "file_count" field.
func (u *SessionUpsertOne) AddFileCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddFileCount(v)
	})
}

// UpdateFileCount sets the "file_count" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateFileCount() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFileCount()
	})
}

// SetTxCount sets the "tx_count" field.
func (u *SessionUpsertOne) SetTxCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTxCount(v)
	})
}

// AddTxCount adds v to the "tx_count" field.
func (u *SessionUpsertOne) AddTxCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTxCount(v)
	})
}

// UpdateTxCount sets the "tx_count" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTxCount() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTxCount()
	})
}

// SetReceiptCount sets the "receipt_count" field.
func (u *SessionUpsertOne) SetReceiptCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetReceiptCount(v)
	})
}

// AddReceiptCount adds v to the "receipt_count" field.
func (u *SessionUpsertOne) AddReceiptCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddReceiptCount(v)
	})
}

// UpdateReceiptCount sets the "receipt_count" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateReceiptCount() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateReceiptCount()
	})
}

// SetMatchedCount sets the "matched_count" field.
func (u *SessionUpsertOne) SetMatchedCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMatchedCount(v)
	})
}

// AddMatchedCount adds v to the "matched_count" field.
func (u *SessionUpsertOne) AddMatchedCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddMatchedCount(v)
	})
}

// UpdateMatchedCount sets the "matched_count" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMatchedCount() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMatchedCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *SessionUpsertOne) SetLastError(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateLastError() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SessionUpsertOne) ClearLastError() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastError()
	})
}

// SetWarnings sets the "warnings" field.
func (u *SessionUpsertOne) SetWarnings(v []string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateWarnings() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *SessionUpsertOne) ClearWarnings() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearWarnings()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SessionUpsertOne) SetCreatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCreatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertOne) SetUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SessionUpsertOne) SetExpiresAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateExpiresAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetFileCount sets the "file_count" field.
func (u *SessionUpsertBulk) SetFileCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetFileCount(v)
	})
}

// AddFileCount adds v to the "file_count" field.
func (u *SessionUpsertBulk) AddFileCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddFileCount(v)
	})
}

// UpdateFileCount sets the "file_count" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateFileCount() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFileCount()
	})
}

// SetTxCount sets the "tx_count" field.
func (u *SessionUpsertBulk) SetTxCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTxCount(v)
	})
}

// AddTxCount adds v to the "tx_count" field.
func (u *SessionUpsertBulk) AddTxCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTxCount(v)
	})
}

// UpdateTxCount sets the "tx_count" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTxCount() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTxCount()
	})
}

// SetReceiptCount sets the "receipt_count" field.
func (u *SessionUpsertBulk) SetReceiptCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetReceiptCount(v)
	})
}

// AddReceiptCount adds v to the "receipt_count" field.
func (u *SessionUpsertBulk) AddReceiptCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddReceiptCount(v)
	})
}

// UpdateReceiptCount sets the "receipt_count" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateReceiptCount() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateReceiptCount()
	})
}

// SetMatchedCount sets the "matched_count" field.
func (u *SessionUpsertBulk) SetMatchedCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMatchedCount(v)
	})
}

// AddMatchedCount adds v to the "matched_count" field.
func (u *SessionUpsertBulk) AddMatchedCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddMatchedCount(v)
	})
}

// UpdateMatchedCount sets the "matched_count" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMatchedCount() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMatchedCount()
	})
}

// SetLastError sets the "last_error" field.
func (u *SessionUpsertBulk) SetLastError(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateLastError() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *SessionUpsertBulk) ClearLastError() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastError()
	})
}

// SetWarnings sets the "warnings" field.
func (u *SessionUpsertBulk) SetWarnings(v []string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateWarnings() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *SessionUpsertBulk) ClearWarnings() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearWarnings()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SessionUpsertBulk) SetCreatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCreatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertBulk) SetUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SessionUpsertBulk) SetExpiresAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateExpiresAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
