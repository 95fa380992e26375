package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.Key == "" {
		return fmt.Errorf("project key is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByKey(ctx context.Context, key string) (*domain.Project, error) {
	return s.projects.GetByKey(ctx, key)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = domain.ProjectArchived
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
