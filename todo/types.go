// Package todo implements the todo state-management and query engine.
//
// A Store owns the authoritative, ordered collection of todos. Every mutation
// is followed by a full write of the collection through a Persistence, so
// what is on disk always matches the last successful operation. The query
// functions (Apply, Categories, Summarize) are pure: they derive filtered and
// sorted views from a collection without touching it.
//
// The public API mirrors what a front end needs:
//   - Create, Update, Toggle, Delete for the todo lifecycle
//   - Apply, Categories, Summarize for derived views
//   - Session for a front end that keeps a current Filter and display mode
package todo

import (
	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/internal/validation"
)

// Priority is the importance level of a todo.
type Priority string

const (
	// PriorityLow is the least urgent level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the most urgent level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values, lowest first.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Weight returns the sort weight of a priority: high=3, medium=2, low=1.
// Unknown priorities weigh 0.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ParsePriority normalizes and validates a user-supplied priority.
func ParsePriority(value string) (Priority, error) {
	return normalizePriorityInput(Priority(value))
}

// StatusFilter selects todos by completion.
type StatusFilter string

const (
	// StatusAll keeps every todo.
	StatusAll StatusFilter = "all"

	// StatusActive keeps todos that are not completed.
	StatusActive StatusFilter = "active"

	// StatusCompleted keeps completed todos.
	StatusCompleted StatusFilter = "completed"
)

// ValidStatusFilters returns all valid status filter values.
func ValidStatusFilters() []StatusFilter {
	return []StatusFilter{StatusAll, StatusActive, StatusCompleted}
}

// IsValid returns true if the status filter is a known value.
func (s StatusFilter) IsValid() bool {
	for _, valid := range ValidStatusFilters() {
		if s == valid {
			return true
		}
	}
	return false
}

// SortKey selects the primary ordering of a derived view.
type SortKey string

const (
	// SortByCreatedAt orders by creation time.
	SortByCreatedAt SortKey = "createdAt"

	// SortByDueDate orders by due date; todos without one sort as if due last.
	SortByDueDate SortKey = "dueDate"

	// SortByPriority orders by priority. Ascending puts high first.
	SortByPriority SortKey = "priority"

	// SortByTitle orders titles with locale-aware collation.
	SortByTitle SortKey = "title"
)

// ValidSortKeys returns all valid sort keys.
func ValidSortKeys() []SortKey {
	return []SortKey{SortByCreatedAt, SortByDueDate, SortByPriority, SortByTitle}
}

// IsValid returns true if the sort key is a known value.
func (k SortKey) IsValid() bool {
	for _, valid := range ValidSortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// SortOrder is the direction applied to the sort comparison.
type SortOrder string

const (
	// SortAsc keeps the base comparison.
	SortAsc SortOrder = "asc"

	// SortDesc negates the base comparison.
	SortDesc SortOrder = "desc"
)

// ValidSortOrders returns both sort orders.
func ValidSortOrders() []SortOrder {
	return []SortOrder{SortAsc, SortDesc}
}

// IsValid returns true if the sort order is a known value.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// ParseStatusFilter normalizes and validates a user-supplied status filter.
func ParseStatusFilter(value string) (StatusFilter, error) {
	return normalizeStatusFilterInput(StatusFilter(value))
}

// ParseSortKey validates a user-supplied sort key. Matching is
// case-insensitive, so "duedate" and "due-date" both select SortByDueDate.
func ParseSortKey(value string) (SortKey, error) {
	return normalizeSortKeyInput(SortKey(value))
}

// ParseSortOrder normalizes and validates a user-supplied sort order.
func ParseSortOrder(value string) (SortOrder, error) {
	order := SortOrder(internalstrings.NormalizeLowerTrimSpace(value))
	if !order.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidSortOrder, SortOrder(value), ValidSortOrders())
	}
	return order, nil
}
