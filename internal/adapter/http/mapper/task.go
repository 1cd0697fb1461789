package mapper

import (
	"errors"
	"strings"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
)

var ErrInvalidTaskForm = errors.New("invalid task form")

func ToTaskItems(tasks []domain.Task, today time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, today))
	}
	return items
}

func ToTaskItem(task domain.Task, today time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		IDDisplay:      task.DisplayID(),
		ProjectID:      task.ProjectID,
		Title:          task.Title,
		Priority:       string(task.Priority),
		ShowInCalendar: task.ShowInCalendar,
		KanbanEnabled:  task.KanbanEnabled,
		KanbanStatus:   task.KanbanStatus,
		Completed:      task.Completed,
		Overdue:        task.Overdue(today),
	}

	if task.Project != nil {
		item.ProjectIdentifier = task.Project.Identifier
		item.ProjectName = task.Project.Name
	}
	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.PlannedDate != nil {
		value := task.PlannedDate.Format("2006-01-02")
		item.PlannedDate = &value
	}
	if task.PlannedStartTime != nil {
		value := *task.PlannedStartTime
		item.PlannedStartTime = &value
	}
	if task.Deadline != nil {
		value := task.Deadline.Format("2006-01-02")
		item.Deadline = &value
	}
	if task.Color != nil {
		value := *task.Color
		item.Color = &value
	}
	if task.CompletionDate != nil {
		value := task.CompletionDate.Format("2006-01-02")
		item.CompletionDate = &value
	}
	if task.Responsible != nil {
		value := *task.Responsible
		item.Responsible = &value
	}

	return item
}

// ToTaskInput converts an HTML form into a task write. Empty optional
// fields become nil; unparseable dates reject the whole form.
func ToTaskInput(form dto.TaskForm) (domain.TaskInput, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return domain.TaskInput{}, ErrInvalidTaskForm
	}

	plannedDate, err := validation.Date(form.PlannedDate)
	if err != nil {
		return domain.TaskInput{}, ErrInvalidTaskForm
	}
	deadline, err := validation.Date(form.Deadline)
	if err != nil {
		return domain.TaskInput{}, ErrInvalidTaskForm
	}
	startTime, err := validation.StartTime(form.PlannedStartTime)
	if err != nil {
		return domain.TaskInput{}, ErrInvalidTaskForm
	}
	color, err := validation.HexColor(form.Color)
	if err != nil {
		return domain.TaskInput{}, ErrInvalidTaskForm
	}

	return domain.TaskInput{
		Title:            title,
		Description:      optionalString(form.Description),
		PlannedDate:      plannedDate,
		PlannedStartTime: startTime,
		Deadline:         deadline,
		Priority:         domain.Priority(form.Priority),
		Color:            color,
		ShowInCalendar:   checkboxChecked(form.ShowInCalendar),
		KanbanEnabled:    checkboxChecked(form.KanbanEnabled),
		KanbanStatus:     strings.TrimSpace(form.KanbanStatus),
		Completed:        checkboxChecked(form.Completed),
		Responsible:      optionalString(form.Responsible),
	}, nil
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func checkboxChecked(value string) bool {
	return value != ""
}
