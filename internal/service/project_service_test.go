package service

import (
	"context"
	"testing"

	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/repository"
	"github.com/mbaranski/scrumline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProjectService(t *testing.T) ProjectService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewProjectService(repository.NewSQLiteProjectRepo(database))
}

func TestProjectService_CreateAssignsDefaults(t *testing.T) {
	svc := setupProjectService(t)
	ctx := context.Background()

	p := &domain.Project{Key: "web", Name: "Website"}
	require.NoError(t, svc.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectActive, p.Status)
	assert.False(t, p.CreatedAt.IsZero())

	fetched, err := svc.GetByKey(ctx, "WEB")
	require.NoError(t, err)
	assert.Equal(t, p.ID, fetched.ID)
}

func TestProjectService_CreateRequiresNameAndKey(t *testing.T) {
	svc := setupProjectService(t)
	ctx := context.Background()

	require.Error(t, svc.Create(ctx, &domain.Project{Key: "X"}))
	require.Error(t, svc.Create(ctx, &domain.Project{Name: "X"}))
}

func TestProjectService_ArchiveHidesFromDefaultList(t *testing.T) {
	svc := setupProjectService(t)
	ctx := context.Background()

	p := &domain.Project{Key: "OLD", Name: "Old project"}
	require.NoError(t, svc.Create(ctx, p))

	require.NoError(t, svc.Archive(ctx, p.ID))

	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.ProjectArchived, all[0].Status)
}

func TestProjectService_ArchiveMissing(t *testing.T) {
	svc := setupProjectService(t)

	err := svc.Archive(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
