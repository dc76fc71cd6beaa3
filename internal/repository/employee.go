package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finops-tools/expense-recon/gen/ent"
	"github.com/finops-tools/expense-recon/gen/ent/employee"
	"github.com/finops-tools/expense-recon/gen/ent/employeealias"
	"github.com/finops-tools/expense-recon/internal/entity"
)

type employeeRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewEmployeeRepository(entc *ent.Client, log *slog.Logger) EmployeeRepository {
	return &employeeRepo{ent: entc, log: log}
}

func (r *employeeRepo) FindByAlias(ctx context.Context, alias string) (*entity.Employee, error) {
	row, err := r.ent.EmployeeAlias.
		Query().
		Where(employeealias.AliasEQ(alias)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	emp, err := r.ent.Employee.Get(ctx, row.EmployeeID)
	if err != nil {
		return nil, err
	}
	aliases, err := r.aliasesFor(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	return toEmployee(emp, aliases), nil
}

func (r *employeeRepo) Create(ctx context.Context, name, alias string) (*entity.Employee, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	emp, err := tx.Employee.Create().SetName(name).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("employee create failed", "name", name, "err", err)
		return nil, err
	}
	if _, err := tx.EmployeeAlias.
		Create().
		SetEmployeeID(emp.ID).
		SetAlias(alias).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("employee created", "employee_id", emp.ID, "name", name)
	return toEmployee(emp, []string{alias}), nil
}

func (r *employeeRepo) ConfirmAlias(ctx context.Context, employeeID uuid.UUID, alias string) error {
	err := r.ent.EmployeeAlias.
		Create().
		SetEmployeeID(employeeID).
		SetAlias(alias).
		SetConfirmedAt(time.Now()).
		OnConflictColumns(employeealias.FieldAlias).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("alias confirm failed", "employee_id", employeeID, "alias", alias, "err", err)
	}
	return err
}

func (r *employeeRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.ent.Employee.
		Query().
		Where(employee.IDIn(ids...)).
		Order(ent.Asc(employee.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	aliasRows, err := r.ent.EmployeeAlias.
		Query().
		Where(employeealias.EmployeeIDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[uuid.UUID][]string, len(rows))
	for _, a := range aliasRows {
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a.Alias)
	}
	out := make([]*entity.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEmployee(row, byEmployee[row.ID]))
	}
	return out, nil
}

func (r *employeeRepo) aliasesFor(ctx context.Context, id uuid.UUID) ([]string, error) {
	rows, err := r.ent.EmployeeAlias.
		Query().
		Where(employeealias.EmployeeIDEQ(id)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	aliases := make([]string, 0, len(rows))
	for _, row := range rows {
		aliases = append(aliases, row.Alias)
	}
	return aliases, nil
}

func toEmployee(row *ent.Employee, aliases []string) *entity.Employee {
	return &entity.Employee{
		ID:        row.ID,
		Name:      row.Name,
		Aliases:   aliases,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
