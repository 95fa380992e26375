package service

import (
	"context"

	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/importer"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByKey(ctx context.Context, key string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.WorkItem, error)
	ListRoots(ctx context.Context, projectID string) ([]*domain.WorkItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error

	// SetEstimate and LogHours author the two rollup inputs on leaf items
	// and re-trigger the ancestor rollup.
	SetEstimate(ctx context.Context, id string, hours float64) error
	LogHours(ctx context.Context, id string, hours float64) error

	// SetStatus runs the completion gate before any transition to done on an
	// aggregate item, returning *CompletionBlockedError when children are
	// still open.
	SetStatus(ctx context.Context, id string, status domain.ItemStatus) error
	Reopen(ctx context.Context, id string) error
	CanComplete(ctx context.Context, id string) (*CompletionCheck, error)

	// Move re-parents an item, recalculating the old chain before the new
	// one so the stale contribution disappears first.
	Move(ctx context.Context, id string, newParentID *string) error
	Delete(ctx context.Context, id string) error
}

// ImportResult holds the outcome of a backlog import.
type ImportResult struct {
	Project   *domain.Project
	ItemCount int
}

type ImportService interface {
	ImportBacklog(ctx context.Context, filePath string) (*ImportResult, error)
	ImportBacklogFromSchema(ctx context.Context, schema *importer.BacklogSchema) (*ImportResult, error)
}
