package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mbaranski/scrumline/internal/db"
	"github.com/mbaranski/scrumline/internal/importer"
	"github.com/mbaranski/scrumline/internal/repository"
)

type importService struct {
	workItems repository.WorkItemRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewImportService(workItems repository.WorkItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		workItems: workItems,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportBacklog(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadBacklogSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportBacklogFromSchema(ctx, schema)
}

func (s *importService) ImportBacklogFromSchema(ctx context.Context, schema *importer.BacklogSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project": schema.Project.Name}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-backlog",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateBacklogSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema)
	fields["item_count"] = len(generated.Items)

	// The whole tree lands in one transaction; items are ordered
	// parent-first so the FK is satisfied as we go.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txItems := repository.NewSQLiteWorkItemRepo(tx)

		if err := txProjects.Create(ctx, generated.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		for _, item := range generated.Items {
			if err := txItems.Create(ctx, item); err != nil {
				return fmt.Errorf("creating item %q: %w", item.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Seed the derived sums bottom-up. Recalculation is idempotent, so
	// stories sharing an ancestor chain just recompute it twice.
	rollup := NewRollupEngine(s.workItems)
	for _, storyID := range generated.LeafParents {
		id := storyID
		if err := rollup.Recalculate(ctx, &id); err != nil {
			return nil, &AggregateStaleError{Cause: err}
		}
	}

	return &ImportResult{
		Project:   generated.Project,
		ItemCount: len(generated.Items),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
