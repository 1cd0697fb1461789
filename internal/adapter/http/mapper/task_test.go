package mapper_test

import (
	"testing"
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestToTaskItem(t *testing.T) {
	deadline := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	startTime := "09:30"
	task := domain.Task{
		ID:               12,
		ProjectID:        3,
		Title:            "Prepare launch",
		PlannedStartTime: &startTime,
		Deadline:         &deadline,
		Priority:         domain.PriorityUrgent,
		KanbanStatus:     "New",
		SeqInProject:     4,
		Project:          &domain.Project{ID: 3, Identifier: "SP", Name: "Spaceport"},
	}

	item := mapper.ToTaskItem(task, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	require.Equal(t, "SP-4", item.IDDisplay)
	require.Equal(t, "Spaceport", item.ProjectName)
	require.Equal(t, "SP", item.ProjectIdentifier)
	require.Equal(t, "2026-03-02", *item.Deadline)
	require.Equal(t, "09:30", *item.PlannedStartTime)
	require.True(t, item.Overdue)
	require.Nil(t, item.PlannedDate)
	require.Nil(t, item.Color)
}

func TestToTaskInput(t *testing.T) {
	form := dto.TaskForm{
		Title:            "  Prepare launch  ",
		Description:      "with checklist",
		PlannedDate:      "2026-02-27",
		PlannedStartTime: "09:30",
		Deadline:         "2026-03-02",
		Priority:         "Urgent",
		Color:            "#FF9F43",
		ShowInCalendar:   "on",
		KanbanStatus:     "Doing",
		Completed:        "",
	}

	in, err := mapper.ToTaskInput(form)
	require.NoError(t, err)

	require.Equal(t, "Prepare launch", in.Title)
	require.Equal(t, "with checklist", *in.Description)
	require.Equal(t, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), *in.PlannedDate)
	require.Equal(t, "09:30", *in.PlannedStartTime)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *in.Deadline)
	require.Equal(t, domain.PriorityUrgent, in.Priority)
	require.Equal(t, "#ff9f43", *in.Color)
	require.True(t, in.ShowInCalendar)
	require.False(t, in.KanbanEnabled)
	require.Equal(t, "Doing", in.KanbanStatus)
	require.False(t, in.Completed)
}

func TestToTaskInput_RejectsBadFields(t *testing.T) {
	_, err := mapper.ToTaskInput(dto.TaskForm{Title: "   "})
	require.ErrorIs(t, err, mapper.ErrInvalidTaskForm)

	_, err = mapper.ToTaskInput(dto.TaskForm{Title: "x", PlannedDate: "tomorrow"})
	require.ErrorIs(t, err, mapper.ErrInvalidTaskForm)

	_, err = mapper.ToTaskInput(dto.TaskForm{Title: "x", PlannedStartTime: "later"})
	require.ErrorIs(t, err, mapper.ErrInvalidTaskForm)

	_, err = mapper.ToTaskInput(dto.TaskForm{Title: "x", Color: "blue"})
	require.ErrorIs(t, err, mapper.ErrInvalidTaskForm)
}
