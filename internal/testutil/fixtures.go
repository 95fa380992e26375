package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mbaranski/scrumline/internal/domain"
)

var testKeyCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectKey(key string) ProjectOption {
	return func(p *domain.Project) {
		p.Key = key
	}
}

func defaultKey(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testKeyCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Key:       defaultKey(name),
		Name:      name,
		Status:    domain.ProjectActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WorkItem options
type ItemOption func(*domain.WorkItem)

func WithParent(id string) ItemOption {
	return func(w *domain.WorkItem) {
		w.ParentID = &id
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(w *domain.WorkItem) {
		w.Status = s
	}
}

func WithEstimate(hours float64) ItemOption {
	return func(w *domain.WorkItem) {
		w.Estimate = &hours
	}
}

func WithActualHours(hours float64) ItemOption {
	return func(w *domain.WorkItem) {
		w.ActualHours = &hours
	}
}

func WithAssignee(id string) ItemOption {
	return func(w *domain.WorkItem) {
		w.AssigneeID = id
	}
}

func NewTestItem(projectID string, typ domain.ItemType, title string, opts ...ItemOption) *domain.WorkItem {
	now := time.Now().UTC()
	w := &domain.WorkItem{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Type:      typ,
		Status:    domain.StatusTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}
