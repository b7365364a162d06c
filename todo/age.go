package todo

import (
	"time"

	internalage "github.com/amonks/todolist/internal/age"
)

// AgeData returns how long ago the todo was created and whether it has a
// creation time.
func AgeData(item Todo, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.CreatedAt, now)
}

// DueStatus classifies a due date relative to today.
type DueStatus string

const (
	// DueNone means the todo has no due date.
	DueNone DueStatus = ""

	// DueOverdue means the due date has passed.
	DueOverdue DueStatus = "overdue"

	// DueToday means the todo is due today.
	DueToday DueStatus = "today"

	// DueTomorrow means the todo is due tomorrow.
	DueTomorrow DueStatus = "tomorrow"

	// DueUpcoming means the todo is due after tomorrow.
	DueUpcoming DueStatus = "upcoming"
)

// DueInfo returns the due status of item and the number of days from today
// (in now's location) until its due date. Days is negative when overdue.
func DueInfo(item Todo, now time.Time) (DueStatus, int) {
	if item.DueDate == nil {
		return DueNone, 0
	}
	loc := now.Location()
	days := internalage.CalendarDays(now, item.DueDate.In(loc), loc)
	switch {
	case days < 0:
		return DueOverdue, days
	case days == 0:
		return DueToday, days
	case days == 1:
		return DueTomorrow, days
	default:
		return DueUpcoming, days
	}
}
