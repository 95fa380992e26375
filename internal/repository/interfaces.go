package repository

import (
	"context"

	"github.com/mbaranski/scrumline/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByKey(ctx context.Context, key string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.WorkItem, error)
	ListRoots(ctx context.Context, projectID string) ([]*domain.WorkItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	// UpdateAggregates writes only the derived estimate/actual-hours columns.
	// Fails with ErrNotFound when no row matches id.
	UpdateAggregates(ctx context.Context, id string, estimate, actualHours float64) error
	Delete(ctx context.Context, id string) error
}
