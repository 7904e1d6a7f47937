package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/outreach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepo_SaveAndGet(t *testing.T) {
	repo := NewSQLiteTemplateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	tpl := testutil.NewTestTemplate("Acme SDE", testutil.WithAllClosingItems())
	require.NoError(t, repo.Save(ctx, tpl))

	got, err := repo.GetByID(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.Name, got.Name)
	assert.Equal(t, tpl.Request, got.Request)

	byName, err := repo.GetByName(ctx, "acme sde")
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, byName.ID)
}

func TestTemplateRepo_SaveSameNameReplacesRequest(t *testing.T) {
	repo := NewSQLiteTemplateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestTemplate("Weekly")
	require.NoError(t, repo.Save(ctx, first))

	second := testutil.NewTestTemplate("WEEKLY", testutil.WithCompany("Globex"))
	require.NoError(t, repo.Save(ctx, second))
	assert.Equal(t, first.ID, second.ID, "existing id kept")

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Globex", all[0].Request.CompanyName)
	assert.Equal(t, "WEEKLY", all[0].Name)
}

func TestTemplateRepo_ListSearchesNameCompanyRole(t *testing.T) {
	repo := NewSQLiteTemplateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestTemplate("Backend roles", testutil.WithCompany("Initech"))))
	require.NoError(t, repo.Save(ctx, testutil.NewTestTemplate("Data", testutil.WithCompany("Globex"), testutil.WithRole("Analyst"))))

	byName, err := repo.List(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byCompany, err := repo.List(ctx, "globex")
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "Data", byCompany[0].Name)

	byRole, err := repo.List(ctx, "analyst")
	require.NoError(t, err)
	assert.Len(t, byRole, 1)

	all, err := repo.List(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Data", all[0].Name, "newest first")
}

func TestTemplateRepo_Delete(t *testing.T) {
	repo := NewSQLiteTemplateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	tpl := testutil.NewTestTemplate("Temp")
	require.NoError(t, repo.Save(ctx, tpl))
	require.NoError(t, repo.Delete(ctx, tpl.ID))

	_, err := repo.GetByID(ctx, tpl.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, tpl.ID), ErrNotFound)
}
