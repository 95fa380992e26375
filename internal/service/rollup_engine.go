package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbaranski/scrumline/internal/repository"
)

// maxRollupDepth bounds the ancestor walk. The type hierarchy caps real
// chains at four levels (task → story → feature → epic); anything deeper
// means the parent graph is corrupted.
const maxRollupDepth = 10

// RollupEngine keeps every aggregate ancestor's estimate and actual-hours
// consistent with the sum of its direct children. Recalculation is stateless
// and idempotent: sums are always recomputed fresh from the current children,
// never adjusted incrementally, so interleaved writes at different levels
// self-correct on the next trigger.
type RollupEngine struct {
	workItems repository.WorkItemRepo
}

func NewRollupEngine(workItems repository.WorkItemRepo) *RollupEngine {
	return &RollupEngine{workItems: workItems}
}

// Recalculate recomputes the aggregate estimate/actual-hours of the item
// identified by parentID from its direct children, then walks up the parent
// chain doing the same at every level.
//
// A nil parentID is a no-op. A parent that no longer exists is also a no-op:
// it may have been deleted concurrently, and a vanished parent has nothing to
// roll up to. Store I/O errors propagate unchanged.
func (e *RollupEngine) Recalculate(ctx context.Context, parentID *string) error {
	if parentID == nil {
		return nil
	}
	return e.recalculate(ctx, *parentID, 0)
}

func (e *RollupEngine) recalculate(ctx context.Context, id string, depth int) error {
	if depth >= maxRollupDepth {
		return fmt.Errorf("%w: rollup depth exceeded %d at item %s (cycle in parent chain?)",
			ErrDataIntegrity, maxRollupDepth, id)
	}

	parent, err := e.workItems.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("loading rollup target: %w", err)
	}

	// Only aggregate types hold derived sums.
	if !parent.IsAggregate() {
		return nil
	}

	children, err := e.workItems.ListChildren(ctx, parent.ID)
	if err != nil {
		return fmt.Errorf("listing children of %s: %w", parent.ID, err)
	}

	var estimate, actual float64
	for _, c := range children {
		estimate += c.EstimateOrZero()
		actual += c.ActualOrZero()
	}

	if err := e.workItems.UpdateAggregates(ctx, parent.ID, estimate, actual); err != nil {
		// The parent may have been deleted between the read and the write;
		// same treatment as a missing parent on the way in.
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("writing aggregates for %s: %w", parent.ID, err)
	}

	if parent.ParentID == nil {
		return nil
	}
	return e.recalculate(ctx, *parent.ParentID, depth+1)
}
