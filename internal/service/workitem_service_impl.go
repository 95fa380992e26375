package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/repository"
)

type workItemService struct {
	workItems repository.WorkItemRepo
	rollup    *RollupEngine
	gate      *CompletionGate
	observer  UseCaseObserver
}

func NewWorkItemService(
	workItems repository.WorkItemRepo,
	rollup *RollupEngine,
	gate *CompletionGate,
	observers ...UseCaseObserver,
) WorkItemService {
	return &workItemService{
		workItems: workItems,
		rollup:    rollup,
		gate:      gate,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) (err error) {
	defer s.observe(ctx, "workitem-create", time.Now().UTC(), map[string]any{"type": string(w.Type)}, &err)

	if !domain.ValidItemTypes[string(w.Type)] {
		return fmt.Errorf("invalid item type %q", w.Type)
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Status == "" {
		w.Status = domain.StatusTodo
	}
	if w.IsAggregate() {
		// Derived fields start empty; the first child rollup fills them.
		w.Estimate = nil
		w.ActualHours = nil
	}

	if w.ParentID != nil {
		if err := s.validateParent(ctx, w, *w.ParentID); err != nil {
			return err
		}
	}

	if err := s.workItems.Create(ctx, w); err != nil {
		return err
	}

	if w.ParentID != nil {
		if err := s.rollup.Recalculate(ctx, w.ParentID); err != nil {
			return &AggregateStaleError{Cause: err}
		}
	}
	return nil
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.workItems.GetByID(ctx, id)
}

func (s *workItemService) ListChildren(ctx context.Context, parentID string) ([]*domain.WorkItem, error) {
	return s.workItems.ListChildren(ctx, parentID)
}

func (s *workItemService) ListRoots(ctx context.Context, projectID string) ([]*domain.WorkItem, error) {
	return s.workItems.ListRoots(ctx, projectID)
}

func (s *workItemService) ListByProject(ctx context.Context, projectID string) ([]*domain.WorkItem, error) {
	return s.workItems.ListByProject(ctx, projectID)
}

func (s *workItemService) Update(ctx context.Context, w *domain.WorkItem) error {
	w.UpdatedAt = time.Now().UTC()
	return s.workItems.Update(ctx, w)
}

func (s *workItemService) SetEstimate(ctx context.Context, id string, hours float64) (err error) {
	defer s.observe(ctx, "workitem-set-estimate", time.Now().UTC(), map[string]any{"id": id}, &err)

	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := w.SetEstimate(hours, time.Now().UTC()); err != nil {
		return err
	}
	if err := s.workItems.Update(ctx, w); err != nil {
		return err
	}
	if err := s.rollup.Recalculate(ctx, w.ParentID); err != nil {
		return &AggregateStaleError{Cause: err}
	}
	return nil
}

func (s *workItemService) LogHours(ctx context.Context, id string, hours float64) (err error) {
	defer s.observe(ctx, "workitem-log-hours", time.Now().UTC(), map[string]any{"id": id}, &err)

	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := w.LogActualHours(hours, time.Now().UTC()); err != nil {
		return err
	}
	if err := s.workItems.Update(ctx, w); err != nil {
		return err
	}
	if err := s.rollup.Recalculate(ctx, w.ParentID); err != nil {
		return &AggregateStaleError{Cause: err}
	}
	return nil
}

func (s *workItemService) SetStatus(ctx context.Context, id string, status domain.ItemStatus) (err error) {
	defer s.observe(ctx, "workitem-set-status", time.Now().UTC(),
		map[string]any{"id": id, "status": string(status)}, &err)

	if !domain.ValidItemStatuses[string(status)] {
		return fmt.Errorf("invalid status %q", status)
	}

	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch status {
	case domain.StatusDone:
		check, err := s.gate.CanComplete(ctx, id)
		if err != nil {
			return err
		}
		if !check.Allowed {
			return &CompletionBlockedError{Item: w, Blocking: check.Blocking}
		}
		w.MarkDone(now)
	case domain.StatusInProgress:
		w.MarkInProgress(now)
	case domain.StatusOnHold:
		w.Hold(now)
	case domain.StatusTodo:
		w.Status = domain.StatusTodo
		w.CompletedAt = nil
		w.UpdatedAt = now
	}

	return s.workItems.Update(ctx, w)
}

func (s *workItemService) Reopen(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "workitem-reopen", time.Now().UTC(), map[string]any{"id": id}, &err)

	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := w.Reopen(time.Now().UTC()); err != nil {
		return err
	}
	// A done parent stays done when a child reopens; nothing recalculates it
	// until its own status is touched again.
	return s.workItems.Update(ctx, w)
}

func (s *workItemService) CanComplete(ctx context.Context, id string) (*CompletionCheck, error) {
	return s.gate.CanComplete(ctx, id)
}

func (s *workItemService) Move(ctx context.Context, id string, newParentID *string) (err error) {
	defer s.observe(ctx, "workitem-move", time.Now().UTC(), map[string]any{"id": id}, &err)

	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if newParentID != nil {
		if *newParentID == w.ID {
			return fmt.Errorf("cannot move item under itself")
		}
		if err := s.validateParent(ctx, w, *newParentID); err != nil {
			return err
		}
		if err := s.ensureNotDescendant(ctx, w.ID, *newParentID); err != nil {
			return err
		}
	}

	oldParentID := w.ParentID
	w.ParentID = newParentID
	w.UpdatedAt = time.Now().UTC()
	if err := s.workItems.Update(ctx, w); err != nil {
		return err
	}

	// Old chain first, so the stale contribution disappears before the new
	// chain picks it up.
	if err := s.rollup.Recalculate(ctx, oldParentID); err != nil {
		return &AggregateStaleError{Cause: err}
	}
	if err := s.rollup.Recalculate(ctx, newParentID); err != nil {
		return &AggregateStaleError{Cause: err}
	}
	return nil
}

func (s *workItemService) Delete(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "workitem-delete", time.Now().UTC(), map[string]any{"id": id}, &err)

	w, err := s.workItems.GetByID(ctx, id)
	if err != nil {
		return err
	}
	oldParentID := w.ParentID

	if err := s.workItems.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.rollup.Recalculate(ctx, oldParentID); err != nil {
		return &AggregateStaleError{Cause: err}
	}
	return nil
}

// validateParent checks that the prospective parent exists, lives in the same
// project, and is a type the item may attach to.
func (s *workItemService) validateParent(ctx context.Context, w *domain.WorkItem, parentID string) error {
	parent, err := s.workItems.GetByID(ctx, parentID)
	if err != nil {
		return fmt.Errorf("resolving parent: %w", err)
	}
	if parent.ProjectID != w.ProjectID {
		return fmt.Errorf("parent %s belongs to a different project", parentID)
	}
	if !w.Type.CanParent(parent.Type) {
		return fmt.Errorf("a %s cannot be a child of a %s", w.Type, parent.Type)
	}
	return nil
}

// ensureNotDescendant walks up from candidateID and fails if itemID appears
// in the chain, which would create a cycle.
func (s *workItemService) ensureNotDescendant(ctx context.Context, itemID, candidateID string) error {
	cur := candidateID
	for depth := 0; depth < maxRollupDepth; depth++ {
		node, err := s.workItems.GetByID(ctx, cur)
		if err != nil {
			return fmt.Errorf("walking parent chain: %w", err)
		}
		if node.ID == itemID {
			return fmt.Errorf("cannot move item under its own descendant")
		}
		if node.ParentID == nil {
			return nil
		}
		cur = *node.ParentID
	}
	return fmt.Errorf("%w: parent chain deeper than %d", ErrDataIntegrity, maxRollupDepth)
}

func (s *workItemService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
