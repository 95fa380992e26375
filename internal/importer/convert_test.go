package importer

import (
	"testing"

	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsParentFirstTree(t *testing.T) {
	g := Convert(validSchema())

	require.Len(t, g.Items, 4)
	assert.Equal(t, "DEMO", g.Project.Key)

	epic, feature, story, task := g.Items[0], g.Items[1], g.Items[2], g.Items[3]

	assert.Equal(t, domain.TypeEpic, epic.Type)
	assert.Nil(t, epic.ParentID)

	assert.Equal(t, domain.TypeFeature, feature.Type)
	require.NotNil(t, feature.ParentID)
	assert.Equal(t, epic.ID, *feature.ParentID)

	assert.Equal(t, domain.TypeStory, story.Type)
	require.NotNil(t, story.ParentID)
	assert.Equal(t, feature.ID, *story.ParentID)

	assert.Equal(t, domain.TypeTask, task.Type)
	require.NotNil(t, task.ParentID)
	assert.Equal(t, story.ID, *task.ParentID)
	require.NotNil(t, task.Estimate)
	assert.Equal(t, 5.0, *task.Estimate)

	// Every item with a parent must appear after that parent.
	seen := map[string]bool{}
	for _, item := range g.Items {
		if item.ParentID != nil {
			assert.True(t, seen[*item.ParentID], "parent of %s precedes it", item.Title)
		}
		seen[item.ID] = true
	}
}

func TestConvert_TracksLeafParents(t *testing.T) {
	schema := validSchema()
	// A second, childless story has no values to roll up.
	schema.Epics[0].Features[0].Stories = append(schema.Epics[0].Features[0].Stories,
		StoryImport{Title: "Empty story"})

	g := Convert(schema)

	require.Len(t, g.LeafParents, 1)

	var withChildren *domain.WorkItem
	for _, item := range g.Items {
		if item.Title == "Story" {
			withChildren = item
		}
	}
	require.NotNil(t, withChildren)
	assert.Equal(t, withChildren.ID, g.LeafParents[0])
}

func TestConvert_UppercasesProjectKey(t *testing.T) {
	schema := validSchema()
	schema.Project.Key = "demo"

	g := Convert(schema)
	assert.Equal(t, "DEMO", g.Project.Key)
}

func TestConvert_LeafDefaultsAndDoneTimestamp(t *testing.T) {
	schema := validSchema()
	schema.Epics[0].Features[0].Stories[0].Items = append(
		schema.Epics[0].Features[0].Stories[0].Items,
		LeafItemImport{Title: "Fixed bug", Type: "bug", Status: "done"},
	)

	g := Convert(schema)

	var plain, done *domain.WorkItem
	for _, item := range g.Items {
		switch item.Title {
		case "Task":
			plain = item
		case "Fixed bug":
			done = item
		}
	}
	require.NotNil(t, plain)
	require.NotNil(t, done)

	assert.Equal(t, domain.TypeTask, plain.Type)
	assert.Equal(t, domain.StatusTodo, plain.Status)
	assert.Nil(t, plain.CompletedAt)

	assert.Equal(t, domain.TypeBug, done.Type)
	assert.Equal(t, domain.StatusDone, done.Status)
	assert.NotNil(t, done.CompletedAt)
}
