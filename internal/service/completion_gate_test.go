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

func setupGate(t *testing.T) (*CompletionGate, *repository.SQLiteWorkItemRepo, *domain.Project) {
	t.Helper()
	database := testutil.NewTestDB(t)
	projRepo := repository.NewSQLiteProjectRepo(database)
	itemRepo := repository.NewSQLiteWorkItemRepo(database)

	proj := testutil.NewTestProject("Gate")
	require.NoError(t, projRepo.Create(context.Background(), proj))

	return NewCompletionGate(itemRepo), itemRepo, proj
}

func TestCanComplete_BlockedByOpenChild(t *testing.T) {
	gate, repo, proj := setupGate(t)
	ctx := context.Background()

	story := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeStory, "Story"))
	createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeTask, "Done task",
		testutil.WithParent(story.ID), testutil.WithStatus(domain.StatusDone)))
	open := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeTask, "Open task",
		testutil.WithParent(story.ID), testutil.WithStatus(domain.StatusInProgress)))

	check, err := gate.CanComplete(ctx, story.ID)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	require.Len(t, check.Blocking, 1)
	assert.Equal(t, open.ID, check.Blocking[0].ID)
}

func TestCanComplete_AllowedWhenAllChildrenDone(t *testing.T) {
	gate, repo, proj := setupGate(t)
	ctx := context.Background()

	story := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeStory, "Story"))
	createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeTask, "T1",
		testutil.WithParent(story.ID), testutil.WithStatus(domain.StatusDone)))
	createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeBug, "B1",
		testutil.WithParent(story.ID), testutil.WithStatus(domain.StatusDone)))

	check, err := gate.CanComplete(ctx, story.ID)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Empty(t, check.Blocking)
}

func TestCanComplete_ChildlessAggregateAllowed(t *testing.T) {
	gate, repo, proj := setupGate(t)

	epic := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeEpic, "Empty epic"))

	check, err := gate.CanComplete(context.Background(), epic.ID)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
}

func TestCanComplete_LeafAlwaysAllowed(t *testing.T) {
	gate, repo, proj := setupGate(t)
	ctx := context.Background()

	story := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeStory, "Story"))
	task := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeTask, "Task",
		testutil.WithParent(story.ID)))
	// A sibling in any state is irrelevant to a leaf.
	createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeTask, "Sibling",
		testutil.WithParent(story.ID), testutil.WithStatus(domain.StatusOnHold)))

	check, err := gate.CanComplete(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Empty(t, check.Blocking)
}

func TestCanComplete_OneLevelOnly(t *testing.T) {
	gate, repo, proj := setupGate(t)
	ctx := context.Background()

	// Feature → Story(done) → Task(open). The gate looks at the feature's
	// direct children only; the open grandchild never blocked the story's
	// own completion check being recorded as done here, so the feature
	// passes. Enforcement at every level is what keeps the induction sound.
	feature := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeFeature, "Feature"))
	story := createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeStory, "Story",
		testutil.WithParent(feature.ID), testutil.WithStatus(domain.StatusDone)))
	createItem(t, repo, testutil.NewTestItem(proj.ID, domain.TypeTask, "Grandchild",
		testutil.WithParent(story.ID), testutil.WithStatus(domain.StatusInProgress)))

	check, err := gate.CanComplete(ctx, feature.ID)
	require.NoError(t, err)
	assert.True(t, check.Allowed, "gate checks direct children only")
}

func TestCanComplete_MissingItem(t *testing.T) {
	gate, _, _ := setupGate(t)

	_, err := gate.CanComplete(context.Background(), "no-such-item")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
