package ports

import (
	"context"
	"time"

	"tasktracker/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, projectID int64, in domain.TaskInput, completionDate *time.Time) (domain.Task, error)
	Get(ctx context.Context, id int64) (domain.Task, error)
	Update(ctx context.Context, id int64, in domain.TaskInput, completionDate *time.Time) error
	SetKanbanStatus(ctx context.Context, id int64, status string) error
	SetVisibility(ctx context.Context, id int64, showInCalendar, kanbanEnabled bool) error
	SetCompleted(ctx context.Context, id int64, completed bool, completionDate *time.Time) error
	SetProject(ctx context.Context, id, projectID int64) error
	ListActive(ctx context.Context) ([]domain.Task, error)
	ListCompleted(ctx context.Context, since *time.Time) ([]domain.Task, error)
	ListKanban(ctx context.Context) ([]domain.Task, error)
	ListCalendar(ctx context.Context) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, projectID int64, in domain.TaskInput) (domain.Task, error)
	CreateQuickTask(ctx context.Context) (domain.Task, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, in domain.TaskInput) error
	ToggleCompleted(ctx context.Context, id int64, completed bool) error
	UpdateKanbanStatus(ctx context.Context, id int64, status string) error
	UpdateVisibility(ctx context.Context, id int64, showInCalendar, kanbanEnabled bool) error
	MoveTask(ctx context.Context, taskID, projectID int64) error
	ListActive(ctx context.Context) ([]domain.Task, error)
	ListRecentlyCompleted(ctx context.Context) ([]domain.Task, error)
	ListAllCompleted(ctx context.Context) ([]domain.Task, error)
	ListKanban(ctx context.Context) ([]domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	CalendarEvents(ctx context.Context) ([]domain.CalendarEvent, error)
}
