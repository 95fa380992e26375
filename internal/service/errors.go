package service

import (
	"errors"
	"fmt"

	"github.com/mbaranski/scrumline/internal/domain"
)

// ErrDataIntegrity signals a corrupted parent chain (the rollup depth bound
// was exceeded, which a well-formed forest cannot do). It must reach the
// caller; the engine never absorbs it.
var ErrDataIntegrity = errors.New("work item hierarchy integrity violation")

// CompletionBlockedError is returned when an aggregate item cannot be marked
// done because direct children are still open. It carries the blocking
// children so the caller can tell the user what remains.
type CompletionBlockedError struct {
	Item     *domain.WorkItem
	Blocking []*domain.WorkItem
}

func (e *CompletionBlockedError) Error() string {
	return fmt.Sprintf("cannot complete %s %q: %d child item(s) not done",
		e.Item.Type, e.Item.Title, len(e.Blocking))
}

// AggregateStaleError reports that a field write succeeded but the ancestor
// rollup that followed it failed. Derived sums may be stale until the next
// recalculation; the authored value itself is already persisted.
type AggregateStaleError struct {
	Cause error
}

func (e *AggregateStaleError) Error() string {
	return fmt.Sprintf("saved, but recomputing ancestor aggregates failed: %v", e.Cause)
}

func (e *AggregateStaleError) Unwrap() error {
	return e.Cause
}
