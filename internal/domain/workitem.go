package domain

import (
	"fmt"
	"time"
)

type WorkItem struct {
	ID          string
	ProjectID   string
	ParentID    *string
	Title       string
	Description string
	Type        ItemType
	Status      ItemStatus
	AssigneeID  string

	// Estimate is story points for stories, hours otherwise. For aggregate
	// types both fields are derived from children and never authored.
	Estimate    *float64
	ActualHours *float64

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

func (w *WorkItem) IsAggregate() bool { return w.Type.IsAggregate() }

func (w *WorkItem) IsLeaf() bool { return w.Type.IsLeaf() }

// EstimateOrZero returns the estimate, treating an absent value as 0.
func (w *WorkItem) EstimateOrZero() float64 {
	if w.Estimate == nil {
		return 0
	}
	return *w.Estimate
}

// ActualOrZero returns the actual hours, treating an absent value as 0.
func (w *WorkItem) ActualOrZero() float64 {
	if w.ActualHours == nil {
		return 0
	}
	return *w.ActualHours
}

// MarkDone transitions the item to done. Completion gating for aggregate
// types happens in the service layer; the entity only tracks timestamps.
func (w *WorkItem) MarkDone(now time.Time) {
	w.Status = StatusDone
	if w.CompletedAt == nil {
		w.CompletedAt = &now
	}
	w.UpdatedAt = now
}

func (w *WorkItem) MarkInProgress(now time.Time) {
	w.Status = StatusInProgress
	w.UpdatedAt = now
}

func (w *WorkItem) Hold(now time.Time) {
	w.Status = StatusOnHold
	w.UpdatedAt = now
}

// Reopen moves a done item back to todo and clears its completion timestamp.
// Reopening never cascades upward; a done ancestor keeps its status until
// something re-triggers a check on it.
func (w *WorkItem) Reopen(now time.Time) error {
	if w.Status != StatusDone {
		return fmt.Errorf("cannot reopen item in status %q", w.Status)
	}
	w.Status = StatusTodo
	w.CompletedAt = nil
	w.UpdatedAt = now
	return nil
}

// SetEstimate sets an authored estimate on a leaf item.
func (w *WorkItem) SetEstimate(hours float64, now time.Time) error {
	if !w.IsLeaf() {
		return fmt.Errorf("estimate on %s items is derived, not authored", w.Type)
	}
	if hours < 0 {
		return fmt.Errorf("estimate must be non-negative, got %v", hours)
	}
	w.Estimate = &hours
	w.UpdatedAt = now
	return nil
}

// LogActualHours sets the authored actual hours on a leaf item.
func (w *WorkItem) LogActualHours(hours float64, now time.Time) error {
	if !w.IsLeaf() {
		return fmt.Errorf("actual hours on %s items are derived, not authored", w.Type)
	}
	if hours < 0 {
		return fmt.Errorf("actual hours must be non-negative, got %v", hours)
	}
	w.ActualHours = &hours
	w.UpdatedAt = now
	return nil
}
