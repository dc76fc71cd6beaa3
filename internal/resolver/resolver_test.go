package resolver

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-tools/expense-recon/internal/repository/inmemory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "JANE DOE", Normalize("jane doe"))
	assert.Equal(t, "JANE DOE", Normalize("  Jane   Doe "))
	assert.Equal(t, "JANE DOE", Normalize("JANE DOE"))
	assert.Equal(t, "", Normalize("   "))
}

func TestResolveCreatesThenReuses(t *testing.T) {
	_, store := inmemory.NewStore()
	r := NewResolver(store.Employees, testLogger())
	ctx := context.Background()

	first, err := r.Resolve(ctx, "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", first.Name)

	// same name, different casing and spacing
	second, err := r.Resolve(ctx, "  JANE   DOE ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	third, err := r.Resolve(ctx, "jane doe")
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
}

func TestResolveHitsExistingAlias(t *testing.T) {
	_, store := inmemory.NewStore()
	ctx := context.Background()

	seeded, err := store.Employees.Create(ctx, "Jane Doe", Normalize("Jane Doe"))
	require.NoError(t, err)

	// fresh resolver, no warm cache
	r := NewResolver(store.Employees, testLogger())
	got, err := r.Resolve(ctx, "jane doe")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Empty(t, r.Warnings())
}

func TestResolveEmptyName(t *testing.T) {
	_, store := inmemory.NewStore()
	r := NewResolver(store.Employees, testLogger())

	_, err := r.Resolve(context.Background(), "   ")
	require.Error(t, err)
}

func TestResolveDistinctNamesDistinctEmployees(t *testing.T) {
	_, store := inmemory.NewStore()
	r := NewResolver(store.Employees, testLogger())
	ctx := context.Background()

	a, err := r.Resolve(ctx, "Jane Doe")
	require.NoError(t, err)
	b, err := r.Resolve(ctx, "Sam Spade")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
