package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mbaranski/scrumline/internal/domain"
)

// GeneratedBacklog holds a converted schema ready for persistence. Items is
// ordered parent-first so inserting in order never violates the parent FK.
// LeafParents lists the story IDs whose subtree contains authored values and
// therefore needs a rollup pass after persistence.
type GeneratedBacklog struct {
	Project     *domain.Project
	Items       []*domain.WorkItem
	LeafParents []string
}

// Convert transforms a validated BacklogSchema into domain objects.
// Call ValidateBacklogSchema first; Convert assumes the schema is valid.
func Convert(schema *BacklogSchema) *GeneratedBacklog {
	now := time.Now().UTC()

	project := &domain.Project{
		ID:        uuid.New().String(),
		Key:       strings.ToUpper(schema.Project.Key),
		Name:      schema.Project.Name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	g := &GeneratedBacklog{Project: project}

	for _, epic := range schema.Epics {
		epicItem := newAggregateItem(project.ID, nil, domain.TypeEpic, epic.Title, epic.Description, now)
		g.Items = append(g.Items, epicItem)

		for _, feature := range epic.Features {
			featureItem := newAggregateItem(project.ID, &epicItem.ID, domain.TypeFeature, feature.Title, feature.Description, now)
			g.Items = append(g.Items, featureItem)

			for _, story := range feature.Stories {
				storyItem := newAggregateItem(project.ID, &featureItem.ID, domain.TypeStory, story.Title, story.Description, now)
				g.Items = append(g.Items, storyItem)
				if len(story.Items) > 0 {
					g.LeafParents = append(g.LeafParents, storyItem.ID)
				}

				for _, leaf := range story.Items {
					g.Items = append(g.Items, newLeafItem(project.ID, storyItem.ID, leaf, now))
				}
			}
		}
	}

	return g
}

func newAggregateItem(projectID string, parentID *string, typ domain.ItemType, title, description string, now time.Time) *domain.WorkItem {
	return &domain.WorkItem{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		ParentID:    parentID,
		Title:       title,
		Description: description,
		Type:        typ,
		Status:      domain.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newLeafItem(projectID, parentID string, leaf LeafItemImport, now time.Time) *domain.WorkItem {
	typ := domain.TypeTask
	if leaf.Type != "" {
		typ = domain.ItemType(leaf.Type)
	}
	status := domain.StatusTodo
	if leaf.Status != "" {
		status = domain.ItemStatus(leaf.Status)
	}
	w := &domain.WorkItem{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		ParentID:    &parentID,
		Title:       leaf.Title,
		Description: leaf.Description,
		Type:        typ,
		Status:      status,
		AssigneeID:  leaf.Assignee,
		Estimate:    leaf.Estimate,
		ActualHours: leaf.ActualHours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == domain.StatusDone {
		w.CompletedAt = &now
	}
	return w
}
