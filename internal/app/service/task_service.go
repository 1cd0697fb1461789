package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

// Completed tasks older than this drop off the "recently completed" view.
const recentlyCompletedWindow = 7 * 24 * time.Hour

const quickTaskTitle = "Quick Note"

type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository

	// now is swapped out in tests; every date the service stamps or
	// compares goes through it.
	now func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		now:      time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, projectID int64, in domain.TaskInput) (domain.Task, error) {
	if projectID <= 0 {
		return domain.Task{}, domain.ErrMissingArgument
	}
	if strings.TrimSpace(in.Title) == "" {
		return domain.Task{}, domain.ErrMissingArgument
	}
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return domain.Task{}, err
	}

	applyTaskDefaults(&in)
	return s.tasks.Create(ctx, projectID, in, s.completionDate(nil, in.Completed))
}

// CreateQuickTask files a placeholder task under the implicit dump project,
// creating that project on first use.
func (s *TaskService) CreateQuickTask(ctx context.Context) (domain.Task, error) {
	dump, err := s.projects.GetByIdentifier(ctx, domain.DumpProjectIdentifier)
	if errors.Is(err, domain.ErrProjectNotFound) {
		dump, err = s.projects.Create(ctx, domain.CreateProjectInput{
			Name:       domain.DumpProjectName,
			Identifier: domain.DumpProjectIdentifier,
		})
		if errors.Is(err, domain.ErrDuplicateIdentifier) {
			// Lost the creation race; the project exists now.
			dump, err = s.projects.GetByIdentifier(ctx, domain.DumpProjectIdentifier)
		}
	}
	if err != nil {
		return domain.Task{}, err
	}

	in := domain.TaskInput{Title: quickTaskTitle}
	applyTaskDefaults(&in)
	return s.tasks.Create(ctx, dump.ID, in, nil)
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, in domain.TaskInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ErrMissingArgument
	}

	existing, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}

	applyTaskDefaults(&in)
	return s.tasks.Update(ctx, id, in, s.completionDate(existing.CompletionDate, in.Completed))
}

func (s *TaskService) ToggleCompleted(ctx context.Context, id int64, completed bool) error {
	existing, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.tasks.SetCompleted(ctx, id, completed, s.completionDate(existing.CompletionDate, completed))
}

func (s *TaskService) UpdateKanbanStatus(ctx context.Context, id int64, status string) error {
	if strings.TrimSpace(status) == "" {
		return domain.ErrMissingArgument
	}
	if _, err := s.tasks.Get(ctx, id); err != nil {
		return err
	}
	return s.tasks.SetKanbanStatus(ctx, id, status)
}

func (s *TaskService) UpdateVisibility(ctx context.Context, id int64, showInCalendar, kanbanEnabled bool) error {
	if _, err := s.tasks.Get(ctx, id); err != nil {
		return err
	}
	return s.tasks.SetVisibility(ctx, id, showInCalendar, kanbanEnabled)
}

func (s *TaskService) MoveTask(ctx context.Context, taskID, projectID int64) error {
	if taskID <= 0 || projectID <= 0 {
		return domain.ErrMissingArgument
	}
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return err
	}
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.SetProject(ctx, taskID, projectID)
}

func (s *TaskService) ListActive(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListActive(ctx)
}

func (s *TaskService) ListRecentlyCompleted(ctx context.Context) ([]domain.Task, error) {
	since := dateOf(s.now().Add(-recentlyCompletedWindow))
	return s.tasks.ListCompleted(ctx, &since)
}

func (s *TaskService) ListAllCompleted(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListCompleted(ctx, nil)
}

func (s *TaskService) ListKanban(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListKanban(ctx)
}

func (s *TaskService) ListAll(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.ListAll(ctx)
}

func (s *TaskService) CalendarEvents(ctx context.Context) ([]domain.CalendarEvent, error) {
	tasks, err := s.tasks.ListCalendar(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildCalendarEvents(tasks), nil
}

// completionDate applies the completion-date transition: completing a task
// stamps today once, re-saving a completed task keeps the original stamp,
// and un-completing clears it.
func (s *TaskService) completionDate(existing *time.Time, completed bool) *time.Time {
	if !completed {
		return nil
	}
	if existing != nil {
		return existing
	}
	today := dateOf(s.now())
	return &today
}

func applyTaskDefaults(in *domain.TaskInput) {
	if in.Priority == "" {
		in.Priority = domain.PriorityBasic
	}
	if strings.TrimSpace(in.KanbanStatus) == "" {
		in.KanbanStatus = domain.DefaultKanbanStatus
	}
}

func dateOf(v time.Time) time.Time {
	return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
}
