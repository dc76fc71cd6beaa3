// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/finops-tools/expense-recon/gen/ent/matchresult"
	"github.com/finops-tools/expense-recon/gen/ent/predicate"
	"github.com/finops-tools/expense-recon/gen/ent/receipt"
	"github.com/finops-tools/expense-recon/gen/ent/session"
	"github.com/finops-tools/expense-recon/gen/ent/transaction"
	"github.com/google/uuid"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v string) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *string) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileCount sets the "file_count" field.
func (_u *SessionUpdate) SetFileCount(v int) *SessionUpdate {
	_u.mutation.ResetFileCount()
	_u.mutation.SetFileCount(v)
	return _u
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFileCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetFileCount(*v)
	}
	return _u
}

// AddFileCount adds value to the "file_count" field.
func (_u *SessionUpdate) AddFileCount(v int) *SessionUpdate {
	_u.mutation.AddFileCount(v)
	return _u
}

// SetTxCount sets the "tx_count" field.
func (_u *SessionUpdate) SetTxCount(v int) *SessionUpdate {
	_u.mutation.ResetTxCount()
	_u.mutation.SetTxCount(v)
	return _u
}

// SetNillableTxCount sets the "tx_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTxCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTxCount(*v)
	}
	return _u
}

// AddTxCount adds value to the "tx_count" field.
func (_u *SessionUpdate) AddTxCount(v int) *SessionUpdate {
	_u.mutation.AddTxCount(v)
	return _u
}

// SetReceiptCount sets the "receipt_count" field.
func (_u *SessionUpdate) SetReceiptCount(v int) *SessionUpdate {
	_u.mutation.ResetReceiptCount()
	_u.mutation.SetReceiptCount(v)
	return _u
}

// SetNillableReceiptCount sets the "receipt_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableReceiptCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetReceiptCount(*v)
	}
	return _u
}

// AddReceiptCount adds value to the "receipt_count" field.
func (_u *SessionUpdate) AddReceiptCount(v int) *SessionUpdate {
	_u.mutation.AddReceiptCount(v)
	return _u
}

// SetMatchedCount sets the "matched_count" field.
func (_u *SessionUpdate) SetMatchedCount(v int) *SessionUpdate {
	_u.mutation.ResetMatchedCount()
	_u.mutation.SetMatchedCount(v)
	return _u
}

// SetNillableMatchedCount sets the "matched_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMatchedCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetMatchedCount(*v)
	}
	return _u
}

// AddMatchedCount adds value to the "matched_count" field.
func (_u *SessionUpdate) AddMatchedCount(v int) *SessionUpdate {
	_u.mutation.AddMatchedCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SessionUpdate) SetLastError(v string) *SessionUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastError(v *string) *SessionUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SessionUpdate) ClearLastError() *SessionUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SessionUpdate) SetWarnings(v []string) *SessionUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SessionUpdate) AppendWarnings(v []string) *SessionUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SessionUpdate) ClearWarnings() *SessionUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SessionUpdate) SetCreatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCreatedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionUpdate) SetExpiresAt(v time.Time) *SessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExpiresAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *SessionUpdate) AddTransactionIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *SessionUpdate) AddTransactions(v ...*Transaction) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *SessionUpdate) AddReceiptIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *SessionUpdate) AddReceipts(v ...*Receipt) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// AddMatchIDs adds the "matches" edge to the MatchResult entity by IDs.
func (_u *SessionUpdate) AddMatchIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the MatchResult entity.
func (_u *SessionUpdate) AddMatches(v ...*MatchResult) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *SessionUpdate) ClearTransactions() *SessionUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *SessionUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *SessionUpdate) RemoveTransactions(v ...*Transaction) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *SessionUpdate) ClearReceipts() *SessionUpdate {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *SessionUpdate) RemoveReceiptIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *SessionUpdate) RemoveReceipts(v ...*Receipt) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// ClearMatches clears all "matches" edges to the MatchResult entity.
func (_u *SessionUpdate) ClearMatches() *SessionUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to MatchResult entities by IDs.
func (_u *SessionUpdate) RemoveMatchIDs(ids ...uuid.UUID) *SessionUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to MatchResult entities.
func (_u *SessionUpdate) RemoveMatches(v ...*MatchResult) *SessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileCount(); ok {
		if err := session.FileCountValidator(v); err != nil {
			return &ValidationError{Name: "file_count", err: fmt.Errorf(`ent: validator failed for field "Session.file_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TxCount(); ok {
		if err := session.TxCountValidator(v); err != nil {
			return &ValidationError{Name: "tx_count", err: fmt.Errorf(`ent: validator failed for field "Session.tx_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiptCount(); ok {
		if err := session.ReceiptCountValidator(v); err != nil {
			return &ValidationError{Name: "receipt_count", err: fmt.Errorf(`ent: validator failed for field "Session.receipt_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchedCount(); ok {
		if err := session.MatchedCountValidator(v); err != nil {
			return &ValidationError{Name: "matched_count", err: fmt.Errorf(`ent: validator failed for field "Session.matched_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileCount(); ok {
		_spec.SetField(session.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileCount(); ok {
		_spec.AddField(session.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TxCount(); ok {
		_spec.SetField(session.FieldTxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTxCount(); ok {
		_spec.AddField(session.FieldTxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceiptCount(); ok {
		_spec.SetField(session.FieldReceiptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReceiptCount(); ok {
		_spec.AddField(session.FieldReceiptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchedCount(); ok {
		_spec.SetField(session.FieldMatchedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchedCount(); ok {
		_spec.AddField(session.FieldMatchedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(session.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(session.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(session.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(session.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v string) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFileCount sets the "file_count" field.
func (_u *SessionUpdateOne) SetFileCount(v int) *SessionUpdateOne {
	_u.mutation.ResetFileCount()
	_u.mutation.SetFileCount(v)
	return _u
}

// SetNillableFileCount sets the "file_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFileCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetFileCount(*v)
	}
	return _u
}

// AddFileCount adds value to the "file_count" field.
func (_u *SessionUpdateOne) AddFileCount(v int) *SessionUpdateOne {
	_u.mutation.AddFileCount(v)
	return _u
}

// SetTxCount sets the "tx_count" field.
func (_u *SessionUpdateOne) SetTxCount(v int) *SessionUpdateOne {
	_u.mutation.ResetTxCount()
	_u.mutation.SetTxCount(v)
	return _u
}

// SetNillableTxCount sets the "tx_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTxCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTxCount(*v)
	}
	return _u
}

// AddTxCount adds value to the "tx_count" field.
func (_u *SessionUpdateOne) AddTxCount(v int) *SessionUpdateOne {
	_u.mutation.AddTxCount(v)
	return _u
}

// SetReceiptCount sets the "receipt_count" field.
func (_u *SessionUpdateOne) SetReceiptCount(v int) *SessionUpdateOne {
	_u.mutation.ResetReceiptCount()
	_u.mutation.SetReceiptCount(v)
	return _u
}

// SetNillableReceiptCount sets the "receipt_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableReceiptCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetReceiptCount(*v)
	}
	return _u
}

// AddReceiptCount adds value to the "receipt_count" field.
func (_u *SessionUpdateOne) AddReceiptCount(v int) *SessionUpdateOne {
	_u.mutation.AddReceiptCount(v)
	return _u
}

// SetMatchedCount sets the "matched_count" field.
func (_u *SessionUpdateOne) SetMatchedCount(v int) *SessionUpdateOne {
	_u.mutation.ResetMatchedCount()
	_u.mutation.SetMatchedCount(v)
	return _u
}

// SetNillableMatchedCount sets the "matched_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMatchedCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetMatchedCount(*v)
	}
	return _u
}

// AddMatchedCount adds value to the "matched_count" field.
func (_u *SessionUpdateOne) AddMatchedCount(v int) *SessionUpdateOne {
	_u.mutation.AddMatchedCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SessionUpdateOne) SetLastError(v string) *SessionUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastError(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SessionUpdateOne) ClearLastError() *SessionUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SessionUpdateOne) SetWarnings(v []string) *SessionUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SessionUpdateOne) AppendWarnings(v []string) *SessionUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SessionUpdateOne) ClearWarnings() *SessionUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SessionUpdateOne) SetCreatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCreatedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionUpdateOne) SetExpiresAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExpiresAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *SessionUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *SessionUpdateOne) AddTransactions(v ...*Transaction) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *SessionUpdateOne) AddReceiptIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *SessionUpdateOne) AddReceipts(v ...*Receipt) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// AddMatchIDs adds the "matches" edge to the MatchResult entity by IDs.
func (_u *SessionUpdateOne) AddMatchIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the MatchResult entity.
func (_u *SessionUpdateOne) AddMatches(v ...*MatchResult) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *SessionUpdateOne) ClearTransactions() *SessionUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *SessionUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *SessionUpdateOne) RemoveTransactions(v ...*Transaction) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *SessionUpdateOne) ClearReceipts() *SessionUpdateOne {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *SessionUpdateOne) RemoveReceiptIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *SessionUpdateOne) RemoveReceipts(v ...*Receipt) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// ClearMatches clears all "matches" edges to the MatchResult entity.
func (_u *SessionUpdateOne) ClearMatches() *SessionUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to MatchResult entities by IDs.
func (_u *SessionUpdateOne) RemoveMatchIDs(ids ...uuid.UUID) *SessionUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to MatchResult entities.
func (_u *SessionUpdateOne) RemoveMatches(v ...*MatchResult) *SessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileCount(); ok {
		if err := session.FileCountValidator(v); err != nil {
			return &ValidationError{Name: "file_count", err: fmt.Errorf(`ent: validator failed for field "Session.file_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TxCount(); ok {
		if err := session.TxCountValidator(v); err != nil {
			return &ValidationError{Name: "tx_count", err: fmt.Errorf(`ent: validator failed for field "Session.tx_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReceiptCount(); ok {
		if err := session.ReceiptCountValidator(v); err != nil {
			return &ValidationError{Name: "receipt_count", err: fmt.Errorf(`ent: validator failed for field "Session.receipt_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatchedCount(); ok {
		if err := session.MatchedCountValidator(v); err != nil {
			return &ValidationError{Name: "matched_count", err: fmt.Errorf(`ent: validator failed for field "Session.matched_count": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileCount(); ok {
		_spec.SetField(session.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileCount(); ok {
		_spec.AddField(session.FieldFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TxCount(); ok {
		_spec.SetField(session.FieldTxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTxCount(); ok {
		_spec.AddField(session.FieldTxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReceiptCount(); ok {
		_spec.SetField(session.FieldReceiptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReceiptCount(); ok {
		_spec.AddField(session.FieldReceiptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MatchedCount(); ok {
		_spec.SetField(session.FieldMatchedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchedCount(); ok {
		_spec.AddField(session.FieldMatchedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(session.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(session.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(session.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(session.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
