package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *BacklogSchema {
	est := 5.0
	return &BacklogSchema{
		Project: ProjectImport{Key: "DEMO", Name: "Demo"},
		Epics: []EpicImport{{
			Title: "Epic",
			Features: []FeatureImport{{
				Title: "Feature",
				Stories: []StoryImport{{
					Title: "Story",
					Items: []LeafItemImport{{
						Title:    "Task",
						Estimate: &est,
					}},
				}},
			}},
		}},
	}
}

func TestValidateBacklogSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateBacklogSchema(validSchema()))
}

func TestValidateBacklogSchema_MissingProjectFields(t *testing.T) {
	schema := validSchema()
	schema.Project = ProjectImport{}

	errs := ValidateBacklogSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "project.key")
	assert.Contains(t, errs[1].Error(), "project.name")
}

func TestValidateBacklogSchema_MissingTitles(t *testing.T) {
	schema := validSchema()
	schema.Epics[0].Title = ""
	schema.Epics[0].Features[0].Stories[0].Items[0].Title = ""

	errs := ValidateBacklogSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "epics[0].title")
	assert.Contains(t, errs[1].Error(), "items[0].title")
}

func TestValidateBacklogSchema_RejectsAggregateLeafType(t *testing.T) {
	schema := validSchema()
	schema.Epics[0].Features[0].Stories[0].Items[0].Type = "story"

	errs := ValidateBacklogSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "not a leaf type")
}

func TestValidateBacklogSchema_RejectsInvalidStatus(t *testing.T) {
	schema := validSchema()
	schema.Epics[0].Features[0].Stories[0].Items[0].Status = "blocked"

	errs := ValidateBacklogSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid status")
}

func TestValidateBacklogSchema_RejectsNegativeNumbers(t *testing.T) {
	neg := -1.0
	schema := validSchema()
	schema.Epics[0].Features[0].Stories[0].Items[0].Estimate = &neg
	schema.Epics[0].Features[0].Stories[0].Items[0].ActualHours = &neg

	errs := ValidateBacklogSchema(schema)
	require.Len(t, errs, 2)
}
