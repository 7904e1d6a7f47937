package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/repository"
	"github.com/alexanderramin/outreach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_SaveAndApply(t *testing.T) {
	env := setupEnv(t)
	svc := NewTemplateService(env.templates, env.uow)
	ctx := context.Background()

	req := testutil.NewTestJobRequest(testutil.WithAllClosingItems())
	saved, err := svc.Save(ctx, "  Acme backend ", req)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Acme backend", saved.Name)

	for _, ref := range []string{saved.ID, "Acme backend", "ACME BACKEND"} {
		got, err := svc.Apply(ctx, ref)
		require.NoError(t, err, ref)
		assert.Equal(t, req, got, ref)
	}
}

func TestTemplateService_SaveSameNameOverwrites(t *testing.T) {
	env := setupEnv(t)
	svc := NewTemplateService(env.templates, env.uow)
	ctx := context.Background()

	first, err := svc.Save(ctx, "Daily", testutil.NewTestJobRequest())
	require.NoError(t, err)
	second, err := svc.Save(ctx, "daily", testutil.NewTestJobRequest(testutil.WithCompany("Globex")))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Globex", list[0].Request.CompanyName)
}

func TestTemplateService_SaveRequiresName(t *testing.T) {
	svc := NewTemplateService(setupEnv(t).templates, nil)

	_, err := svc.Save(context.Background(), "  ", testutil.NewTestJobRequest())
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestTemplateService_DeleteAndNotFound(t *testing.T) {
	env := setupEnv(t)
	svc := NewTemplateService(env.templates, env.uow)
	ctx := context.Background()

	_, err := svc.Save(ctx, "Gone soon", testutil.NewTestJobRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "gone soon"))

	_, err = svc.Apply(ctx, "Gone soon")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "Gone soon"), repository.ErrNotFound)
}

func TestTemplateService_ExportImport(t *testing.T) {
	src := setupEnv(t)
	from := NewTemplateService(src.templates, src.uow)
	ctx := context.Background()
	_, err := from.Save(ctx, "One", testutil.NewTestJobRequest())
	require.NoError(t, err)
	_, err = from.Save(ctx, "Two", testutil.NewTestJobRequest(testutil.WithCompany("Globex"), testutil.WithAllClosingItems()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, from.Export(ctx, &buf))
	assert.Contains(t, buf.String(), "company_name: Globex")

	dst := setupEnv(t)
	obs := &recordingUseCaseObserver{}
	to := NewTemplateService(dst.templates, dst.uow, obs)
	n, err := to.Import(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := to.Apply(ctx, "two")
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.CompanyName)
	assert.True(t, got.IncludeContact)

	require.NotEmpty(t, obs.events)
	assert.Equal(t, "import-templates", obs.events[0].Name)
	assert.Equal(t, 2, obs.events[0].Fields["imported"])
}

func TestTemplateService_ImportIsAllOrNothing(t *testing.T) {
	env := setupEnv(t)
	svc := NewTemplateService(env.templates, env.uow)
	ctx := context.Background()

	doc := "templates:\n  - name: Fine\n    request:\n      company_name: A\n  - name: \"\"\n"
	_, err := svc.Import(ctx, strings.NewReader(doc))
	require.Error(t, err)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}
