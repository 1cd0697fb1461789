package service

import (
	"context"
	"strings"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

var _ ports.ProjectService = (*ProjectService)(nil)

func NewProjectService(projects ports.ProjectRepository, tasks ports.TaskRepository) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks}
}

func (s *ProjectService) CreateProject(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Identifier = strings.TrimSpace(in.Identifier)
	if in.Name == "" || in.Identifier == "" {
		return domain.Project{}, domain.ErrMissingArgument
	}
	return s.projects.Create(ctx, in)
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) (domain.Project, []domain.Task, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return domain.Project{}, nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, id)
	if err != nil {
		return domain.Project{}, nil, err
	}
	return project, tasks, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}
