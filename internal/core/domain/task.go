package domain

import "time"

type Priority string

const (
	PriorityUrgent    Priority = "Urgent"
	PriorityImportant Priority = "Important"
	PriorityBasic     Priority = "Basic"
	PriorityLow       Priority = "Low"
)

// DefaultKanbanStatus is the column a task lands in when none is chosen.
// Kanban statuses are otherwise free text so boards can grow columns.
const DefaultKanbanStatus = "New"

type Task struct {
	ID               int64
	ProjectID        int64
	Title            string
	Description      *string
	PlannedDate      *time.Time
	PlannedStartTime *string // wall time "15:04", meaningful only with PlannedDate
	Deadline         *time.Time
	Priority         Priority
	Color            *string
	ShowInCalendar   bool
	KanbanEnabled    bool
	KanbanStatus     string
	Completed        bool
	CompletionDate   *time.Time
	Responsible      *string

	// SeqInProject is the 1-based rank of the task within its project,
	// ordered by creation. It is computed by the repository, not stored.
	SeqInProject int64

	Project *Project
}

// TaskInput carries every writable task field. Updates are a full replace,
// except CompletionDate which the service derives from the completed flag.
type TaskInput struct {
	Title            string
	Description      *string
	PlannedDate      *time.Time
	PlannedStartTime *string
	Deadline         *time.Time
	Priority         Priority
	Color            *string
	ShowInCalendar   bool
	KanbanEnabled    bool
	KanbanStatus     string
	Completed        bool
	Responsible      *string
}
