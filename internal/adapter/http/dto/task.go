package dto

type TaskItem struct {
	ID                int64   `json:"id"`
	IDDisplay         string  `json:"id_display"`
	ProjectID         int64   `json:"project_id"`
	ProjectIdentifier string  `json:"project_identifier"`
	ProjectName       string  `json:"project_name"`
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	PlannedDate       *string `json:"planned_date,omitempty"`
	PlannedStartTime  *string `json:"planned_start_time,omitempty"`
	Deadline          *string `json:"deadline,omitempty"`
	Priority          string  `json:"priority"`
	Color             *string `json:"color,omitempty"`
	ShowInCalendar    bool    `json:"show_in_calendar"`
	KanbanEnabled     bool    `json:"kanban_enabled"`
	KanbanStatus      string  `json:"kanban_status"`
	Completed         bool    `json:"completed"`
	CompletionDate    *string `json:"completion_date,omitempty"`
	Responsible       *string `json:"responsible,omitempty"`
	Overdue           bool    `json:"overdue"`
}

// TaskForm is the HTML form payload shared by the create and edit pages.
// Checkboxes arrive as "on" when ticked and are absent otherwise.
type TaskForm struct {
	Title            string `form:"title"`
	Description      string `form:"description"`
	PlannedDate      string `form:"planned_date"`
	PlannedStartTime string `form:"planned_start_time"`
	Deadline         string `form:"deadline"`
	Priority         string `form:"priority"`
	Color            string `form:"color"`
	ShowInCalendar   string `form:"show_in_calendar"`
	KanbanEnabled    string `form:"kanban_enabled"`
	KanbanStatus     string `form:"kanban_status"`
	Completed        string `form:"completed"`
	Responsible      string `form:"responsible"`
}

type UpdateKanbanStatusRequest struct {
	TaskID    int64  `json:"task_id" binding:"required,gt=0"`
	NewStatus string `json:"new_status" binding:"required"`
}

type UpdateTaskVisibilityRequest struct {
	TaskID         int64 `json:"task_id" binding:"required,gt=0"`
	ShowInCalendar *bool `json:"show_in_calendar" binding:"required"`
	KanbanEnabled  *bool `json:"kanban_enabled" binding:"required"`
}

type ToggleTaskCompletedRequest struct {
	TaskID    int64 `json:"task_id" binding:"required,gt=0"`
	Completed *bool `json:"completed" binding:"required"`
}

// MoveTaskRequest carries no binding tags: absent ids surface as the
// missing-argument error instead of a generic payload failure.
type MoveTaskRequest struct {
	TaskID    int64 `json:"task_id"`
	ProjectID int64 `json:"project_id"`
}

type CreateTaskFromCalendarRequest struct {
	Date string `json:"date"`
}

type RedirectResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type ShareTaskResponse struct {
	TaskID  int64  `json:"task_id"`
	URL     string `json:"url"`
	Success bool   `json:"success"`
}

type EditAllowedResponse struct {
	TaskID   int64  `json:"task_id"`
	CanEdit  bool   `json:"can_edit"`
	ClientIP string `json:"client_ip"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
