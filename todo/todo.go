package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is a unique identifier, immutable once created.
	ID string `json:"id"`

	// Title is the short summary of the todo (trimmed, never empty).
	Title string `json:"title"`

	// Description provides additional context about the todo.
	Description string `json:"description"`

	// Completed reports whether the todo is done.
	Completed bool `json:"completed"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// Category groups todos. Free-form; may be empty.
	Category string `json:"category"`

	// DueDate is the calendar day the todo is due (nil when there is none).
	DueDate *Date `json:"dueDate"`

	// CreatedAt is when the todo was created. It never changes.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the todo was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t Todo) clone() Todo {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

func cloneTodos(todos []Todo) []Todo {
	if todos == nil {
		return nil
	}
	out := make([]Todo, len(todos))
	for i := range todos {
		out[i] = todos[i].clone()
	}
	return out
}
