package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error)
	Get(ctx context.Context, id int64) (domain.Project, error)
	GetByIdentifier(ctx context.Context, identifier string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error)
	GetProject(ctx context.Context, id int64) (domain.Project, []domain.Task, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
}
