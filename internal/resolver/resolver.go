// Package resolver maps parsed display names to stable employee records
// through a normalized alias table. Resolution is idempotent within one
// processing run: re-parsing the same header twice yields the same id.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/finops-tools/expense-recon/internal/entity"
	"github.com/finops-tools/expense-recon/internal/repository"
)

var aliasSpaceRe = regexp.MustCompile(`\s+`)

// Normalize produces the alias-table key for a raw display name: trimmed,
// whitespace-collapsed, uppercased.
func Normalize(raw string) string {
	return strings.ToUpper(aliasSpaceRe.ReplaceAllString(strings.TrimSpace(raw), " "))
}

// Resolver is scoped to one processing run. The in-run cache guarantees
// idempotence without re-querying the alias table for every record.
type Resolver struct {
	repo repository.EmployeeRepository
	log  *slog.Logger

	mu       sync.Mutex
	cache    map[string]*entity.Employee
	warnings []string
}

func NewResolver(repo repository.EmployeeRepository, log *slog.Logger) *Resolver {
	return &Resolver{
		repo:  repo,
		log:   log,
		cache: make(map[string]*entity.Employee),
	}
}

// Resolve returns the employee for rawName, creating one when no alias
// matches. A lookup that races a concurrent create falls back to the
// stored mapping; when that mapping's canonical name differs from rawName
// the discrepancy is kept as a data-quality warning, never an error.
func (r *Resolver) Resolve(ctx context.Context, rawName string) (*entity.Employee, error) {
	alias := Normalize(rawName)
	if alias == "" {
		return nil, fmt.Errorf("empty employee name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if emp, ok := r.cache[alias]; ok {
		return emp, nil
	}

	emp, err := r.repo.FindByAlias(ctx, alias)
	if err != nil {
		return nil, err
	}
	if emp != nil {
		// refresh confirmed_at so conflicting mappings prefer the most
		// recently confirmed alias
		if err := r.repo.ConfirmAlias(ctx, emp.ID, alias); err != nil {
			return nil, err
		}
		r.cache[alias] = emp
		return emp, nil
	}

	emp, err = r.repo.Create(ctx, strings.TrimSpace(rawName), alias)
	if err != nil {
		// lost a create race; the alias row now belongs to someone else
		existing, lookupErr := r.repo.FindByAlias(ctx, alias)
		if lookupErr != nil || existing == nil {
			return nil, err
		}
		if !strings.EqualFold(existing.Name, strings.TrimSpace(rawName)) {
			w := fmt.Sprintf("alias %q maps to existing employee %q, keeping stored mapping", alias, existing.Name)
			r.warnings = append(r.warnings, w)
			r.log.Warn("resolver.alias_conflict", "alias", alias, "existing", existing.Name, "raw", rawName)
		}
		emp = existing
	} else {
		r.log.Info("resolver.employee_created", "employee_id", emp.ID, "name", emp.Name)
	}
	r.cache[alias] = emp
	return emp, nil
}

// Warnings returns data-quality warnings collected during this run.
func (r *Resolver) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}
