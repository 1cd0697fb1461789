package domain

import "fmt"

// CalendarEvent is the FullCalendar-shaped projection of a task. A task
// yields up to two events: one for its planned date and one for its
// deadline when that differs from the planned date.
type CalendarEvent struct {
	Title         string             `json:"title"`
	Start         string             `json:"start"`
	Color         string             `json:"color"`
	ExtendedProps CalendarEventProps `json:"extendedProps"`
}

// CalendarEventProps rides along for client-side interaction; the server
// never filters or orders on it.
type CalendarEventProps struct {
	TaskID      int64    `json:"taskId"`
	ProjectID   int64    `json:"projectId"`
	Description *string  `json:"description"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	Color       *string  `json:"color"`
	StartTime   *string  `json:"startTime"`
}

// BuildCalendarEvents projects tasks onto calendar events, preserving the
// input order. Tasks hidden from the calendar or without any date yield
// nothing.
func BuildCalendarEvents(tasks []Task) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(tasks))
	for _, t := range tasks {
		if !t.ShowInCalendar {
			continue
		}
		if t.PlannedDate == nil && t.Deadline == nil {
			continue
		}

		if t.PlannedDate != nil {
			start := t.PlannedDate.Format("2006-01-02")
			if t.PlannedStartTime != nil && *t.PlannedStartTime != "" {
				start = start + "T" + *t.PlannedStartTime
			}
			events = append(events, CalendarEvent{
				Title:         fmt.Sprintf("[%s] %s", t.DisplayID(), t.Title),
				Start:         start,
				Color:         t.ResolveColor(),
				ExtendedProps: eventProps(t, t.PlannedStartTime),
			})
		}

		if t.Deadline != nil && !sameDate(t.Deadline, t.PlannedDate) {
			color := colorDeadline
			if t.Color != nil && *t.Color != "" {
				color = *t.Color
			}
			events = append(events, CalendarEvent{
				Title:         fmt.Sprintf("[%s] DEADLINE: %s", t.DisplayID(), t.Title),
				Start:         t.Deadline.Format("2006-01-02"),
				Color:         color,
				ExtendedProps: eventProps(t, nil),
			})
		}
	}
	return events
}

func eventProps(t Task, startTime *string) CalendarEventProps {
	return CalendarEventProps{
		TaskID:      t.ID,
		ProjectID:   t.ProjectID,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
		Color:       t.Color,
		StartTime:   startTime,
	}
}
