package domain

import (
	"fmt"
	"time"
)

const (
	colorUrgent    = "#e03131"
	colorImportant = "#ff9f43"
	colorBasic     = "#1098ad"
	colorLow       = "#6c757d"
	colorFallback  = "#3498db"

	// Deadline events default to red no matter the priority.
	colorDeadline = "#e03131"
)

// Overdue reports whether the task's relevant date has passed. The deadline
// wins when set; a non-overdue or missing deadline falls back to the planned
// date. A date equal to today is not overdue. Completed tasks are not
// exempted; callers decide whether to show the flag for them.
func (t Task) Overdue(today time.Time) bool {
	day := dateOnly(today)
	if t.Deadline != nil && dateOnly(*t.Deadline).Before(day) {
		return true
	}
	return t.PlannedDate != nil && dateOnly(*t.PlannedDate).Before(day)
}

// ResolveColor returns the explicit task color when set, otherwise the
// default for the task's priority.
func (t Task) ResolveColor() string {
	if t.Color != nil && *t.Color != "" {
		return *t.Color
	}
	switch t.Priority {
	case PriorityUrgent:
		return colorUrgent
	case PriorityImportant:
		return colorImportant
	case PriorityBasic:
		return colorBasic
	case PriorityLow:
		return colorLow
	default:
		return colorFallback
	}
}

// DisplayID is the human-facing task label: project identifier plus the
// task's 1-based sequence number within the project.
func (t Task) DisplayID() string {
	identifier := ""
	if t.Project != nil {
		identifier = t.Project.Identifier
	}
	return fmt.Sprintf("%s-%d", identifier, t.SeqInProject)
}

func dateOnly(v time.Time) time.Time {
	return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return false
	}
	return dateOnly(*a).Equal(dateOnly(*b))
}
