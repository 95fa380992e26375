package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mbaranski/scrumline/internal/domain"
)

// resolveProject accepts a project key (case-insensitive), a full project ID,
// or a unique ID prefix and returns the project.
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Key, input) {
			return p, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p, nil
		}
	}

	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveItem accepts a full work item ID, or a unique ID prefix when
// projectRef narrows the search to one project's items.
func resolveItem(ctx context.Context, app *App, projectRef, input string) (*domain.WorkItem, error) {
	if input == "" {
		return nil, fmt.Errorf("item ID is required")
	}

	if projectRef == "" {
		return app.Items.GetByID(ctx, input)
	}

	proj, err := resolveProject(ctx, app, projectRef)
	if err != nil {
		return nil, err
	}
	items, err := app.Items.ListByProject(ctx, proj.ID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.ID == input {
			return item, nil
		}
	}

	var matches []*domain.WorkItem
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("item %q is ambiguous (%d matches)", input, len(matches))
	}
}

// buildChildMap fetches every item in the project and groups them by parent,
// returning the root items and the parent-to-children map for tree rendering.
func buildChildMap(ctx context.Context, app *App, projectID string) ([]*domain.WorkItem, map[string][]*domain.WorkItem, error) {
	items, err := app.Items.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	var roots []*domain.WorkItem
	childMap := make(map[string][]*domain.WorkItem)
	for _, item := range items {
		if item.ParentID == nil {
			roots = append(roots, item)
		} else {
			childMap[*item.ParentID] = append(childMap[*item.ParentID], item)
		}
	}
	return roots, childMap, nil
}
