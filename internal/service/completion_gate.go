package service

import (
	"context"
	"fmt"

	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/repository"
)

// CompletionCheck is the outcome of a completion gate inspection. A blocked
// transition is a normal result, not an error.
type CompletionCheck struct {
	Allowed  bool
	Blocking []*domain.WorkItem
}

// CompletionGate decides whether an item may transition to done. Aggregate
// items require every direct child to be done; because the same gate applied
// when those children completed, the whole subtree is done by induction.
// The check deliberately stays one level deep — a recursive subtree scan
// would re-verify what the gate already guaranteed at each lower level.
type CompletionGate struct {
	workItems repository.WorkItemRepo
}

func NewCompletionGate(workItems repository.WorkItemRepo) *CompletionGate {
	return &CompletionGate{workItems: workItems}
}

// CanComplete reports whether the item may be marked done, listing the direct
// children that block it. Leaf items are never gated. A missing item is an
// error: the caller was about to transition something that does not exist.
func (g *CompletionGate) CanComplete(ctx context.Context, itemID string) (*CompletionCheck, error) {
	item, err := g.workItems.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("loading completion target: %w", err)
	}

	if !item.IsAggregate() {
		return &CompletionCheck{Allowed: true}, nil
	}

	children, err := g.workItems.ListChildren(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("listing children of %s: %w", item.ID, err)
	}

	var blocking []*domain.WorkItem
	for _, c := range children {
		if c.Status != domain.StatusDone {
			blocking = append(blocking, c)
		}
	}

	return &CompletionCheck{
		Allowed:  len(blocking) == 0,
		Blocking: blocking,
	}, nil
}
