package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const mysqlForeignKeyViolation = 1452

// listTasksQuery computes the per-project sequence number with a window
// function before any filter is applied, so a task keeps its rank no matter
// which listing it shows up in. Callers append WHERE/ORDER BY clauses.
const listTasksQuery = `
SELECT * FROM (
  SELECT
    t.id, t.project_id, t.title, t.description, t.planned_date,
    t.planned_start_time, t.deadline, t.priority, t.color,
    t.show_in_calendar, t.kanban_enabled, t.kanban_status,
    t.completed, t.completion_date, t.responsible,
    ROW_NUMBER() OVER (PARTITION BY t.project_id ORDER BY t.id) AS seq_in_project,
    p.identifier AS project_identifier,
    p.name AS project_name,
    p.responsible AS project_responsible
  FROM tasks t
  JOIN projects p ON p.id = t.project_id
) t
`

const getTaskQuery = `
SELECT
  t.id, t.project_id, t.title, t.description, t.planned_date,
  t.planned_start_time, t.deadline, t.priority, t.color,
  t.show_in_calendar, t.kanban_enabled, t.kanban_status,
  t.completed, t.completion_date, t.responsible,
  (SELECT COUNT(*) FROM tasks s WHERE s.project_id = t.project_id AND s.id <= t.id) AS seq_in_project,
  p.identifier AS project_identifier,
  p.name AS project_name,
  p.responsible AS project_responsible
FROM tasks t
JOIN projects p ON p.id = t.project_id
WHERE t.id = ?
`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID                 int64          `db:"id"`
	ProjectID          int64          `db:"project_id"`
	Title              string         `db:"title"`
	Description        sql.NullString `db:"description"`
	PlannedDate        sql.NullTime   `db:"planned_date"`
	PlannedStartTime   sql.NullString `db:"planned_start_time"`
	Deadline           sql.NullTime   `db:"deadline"`
	Priority           string         `db:"priority"`
	Color              sql.NullString `db:"color"`
	ShowInCalendar     bool           `db:"show_in_calendar"`
	KanbanEnabled      bool           `db:"kanban_enabled"`
	KanbanStatus       string         `db:"kanban_status"`
	Completed          bool           `db:"completed"`
	CompletionDate     sql.NullTime   `db:"completion_date"`
	Responsible        sql.NullString `db:"responsible"`
	SeqInProject       int64          `db:"seq_in_project"`
	ProjectIdentifier  string         `db:"project_identifier"`
	ProjectName        string         `db:"project_name"`
	ProjectResponsible sql.NullString `db:"project_responsible"`
}

func (r *TaskRepository) Create(ctx context.Context, projectID int64, in domain.TaskInput, completionDate *time.Time) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (project_id, title, description, planned_date, planned_start_time,
                   deadline, priority, color, show_in_calendar, kanban_enabled,
                   kanban_status, completed, completion_date, responsible)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		projectID, in.Title, nullString(in.Description), nullDate(in.PlannedDate),
		nullString(in.PlannedStartTime), nullDate(in.Deadline), string(in.Priority),
		nullString(in.Color), in.ShowInCalendar, in.KanbanEnabled,
		in.KanbanStatus, in.Completed, nullDate(completionDate), nullString(in.Responsible),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Task{}, domain.ErrProjectNotFound
		}
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.Get(ctx, id)
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, in domain.TaskInput, completionDate *time.Time) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET title = ?, description = ?, planned_date = ?, planned_start_time = ?,
    deadline = ?, priority = ?, color = ?, show_in_calendar = ?,
    kanban_enabled = ?, kanban_status = ?, completed = ?, completion_date = ?,
    responsible = ?
WHERE id = ?`,
		in.Title, nullString(in.Description), nullDate(in.PlannedDate),
		nullString(in.PlannedStartTime), nullDate(in.Deadline), string(in.Priority),
		nullString(in.Color), in.ShowInCalendar, in.KanbanEnabled,
		in.KanbanStatus, in.Completed, nullDate(completionDate), nullString(in.Responsible),
		id,
	)
	return err
}

func (r *TaskRepository) SetKanbanStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET kanban_status = ? WHERE id = ?", status, id)
	return err
}

func (r *TaskRepository) SetVisibility(ctx context.Context, id int64, showInCalendar, kanbanEnabled bool) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET show_in_calendar = ?, kanban_enabled = ? WHERE id = ?",
		showInCalendar, kanbanEnabled, id)
	return err
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id int64, completed bool, completionDate *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET completed = ?, completion_date = ? WHERE id = ?",
		completed, nullDate(completionDate), id)
	return err
}

func (r *TaskRepository) SetProject(ctx context.Context, id, projectID int64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET project_id = ? WHERE id = ?", projectID, id)
	if err != nil && isForeignKeyViolation(err) {
		return domain.ErrProjectNotFound
	}
	return err
}

func (r *TaskRepository) ListActive(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, listTasksQuery+"WHERE t.completed = 0 ORDER BY t.id DESC")
}

func (r *TaskRepository) ListCompleted(ctx context.Context, since *time.Time) ([]domain.Task, error) {
	query := listTasksQuery + "WHERE t.completed = 1"
	var args []any
	if since != nil {
		// Legacy rows without a completion date count as recent.
		query += " AND (t.completion_date IS NULL OR t.completion_date >= ?)"
		args = append(args, since.Format("2006-01-02"))
	}
	query += " ORDER BY t.completion_date DESC, t.id DESC"
	return r.list(ctx, query, args...)
}

func (r *TaskRepository) ListKanban(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, listTasksQuery+"WHERE t.kanban_enabled = 1 ORDER BY t.id DESC")
}

func (r *TaskRepository) ListCalendar(ctx context.Context) ([]domain.Task, error) {
	// Timed tasks first, then by planned date and start time; newest id as
	// the final tiebreak.
	return r.list(ctx, listTasksQuery+`
WHERE t.show_in_calendar = 1 AND (t.planned_date IS NOT NULL OR t.deadline IS NOT NULL)
ORDER BY
  CASE WHEN t.planned_start_time IS NOT NULL THEN 0 ELSE 1 END,
  t.planned_date ASC,
  t.planned_start_time ASC,
  t.id DESC`)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return r.list(ctx, listTasksQuery+"WHERE t.project_id = ? ORDER BY t.id", projectID)
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, listTasksQuery+"ORDER BY t.id")
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks, nil
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:             row.ID,
		ProjectID:      row.ProjectID,
		Title:          row.Title,
		Priority:       domain.Priority(row.Priority),
		ShowInCalendar: row.ShowInCalendar,
		KanbanEnabled:  row.KanbanEnabled,
		KanbanStatus:   row.KanbanStatus,
		Completed:      row.Completed,
		SeqInProject:   row.SeqInProject,
		Project: &domain.Project{
			ID:         row.ProjectID,
			Identifier: row.ProjectIdentifier,
			Name:       row.ProjectName,
		},
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.PlannedDate.Valid {
		value := row.PlannedDate.Time
		task.PlannedDate = &value
	}
	if row.PlannedStartTime.Valid {
		value := row.PlannedStartTime.String
		task.PlannedStartTime = &value
	}
	if row.Deadline.Valid {
		value := row.Deadline.Time
		task.Deadline = &value
	}
	if row.Color.Valid {
		value := row.Color.String
		task.Color = &value
	}
	if row.CompletionDate.Valid {
		value := row.CompletionDate.Time
		task.CompletionDate = &value
	}
	if row.Responsible.Valid {
		value := row.Responsible.String
		task.Responsible = &value
	}
	if row.ProjectResponsible.Valid {
		value := row.ProjectResponsible.String
		task.Project.Responsible = &value
	}

	return task
}

func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlForeignKeyViolation
}

func nullDate(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
