package todo

import (
	"errors"
	"fmt"

	"github.com/amonks/todolist/internal/validation"
)

var (
	// ErrEmptyTitle is returned when a todo title is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidPriority is returned when a priority is not low, medium, or high.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDate is returned when a due date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidStatusFilter is returned for an unknown status filter.
	ErrInvalidStatusFilter = errors.New("invalid status filter")

	// ErrInvalidSortKey is returned for an unknown sort key.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidSortOrder is returned for an unknown sort order.
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrAmbiguousTodoIDPrefix is returned when an ID prefix matches multiple todos.
	ErrAmbiguousTodoIDPrefix = errors.New("ambiguous todo ID prefix")

	// ErrNotLoaded is returned when a write is attempted before the initial load.
	ErrNotLoaded = errors.New("todo store has not been loaded")

	// ErrEmptyID is returned when a stored todo has no id.
	ErrEmptyID = errors.New("todo id cannot be empty")

	// ErrDuplicateID is returned when two stored todos share an id.
	ErrDuplicateID = errors.New("duplicate todo id")

	// ErrMissingTimestamp is returned when a stored todo lacks created/updated times.
	ErrMissingTimestamp = errors.New("todo is missing a timestamp")
)

// ValidateTitle checks if an already-trimmed title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, priority, ValidPriorities())
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid.
func ValidateTodo(t *Todo) error {
	if t.ID == "" {
		return ErrEmptyID
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
		return ErrMissingTimestamp
	}
	return nil
}

// ValidateCollection checks every todo and that ids are unique.
func ValidateCollection(todos []Todo) error {
	seen := make(map[string]struct{}, len(todos))
	for i := range todos {
		if err := ValidateTodo(&todos[i]); err != nil {
			return fmt.Errorf("todo %d: %w", i, err)
		}
		if _, ok := seen[todos[i].ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, todos[i].ID)
		}
		seen[todos[i].ID] = struct{}{}
	}
	return nil
}
