package todo

import (
	"fmt"
	"slices"
)

// CreateOptions configures a new todo.
type CreateOptions struct {
	// Description provides additional context.
	Description string

	// Category groups the todo. May be empty.
	Category string

	// DueDate is the day the todo is due. Nil means no due date.
	DueDate *Date

	// Priority defaults to PriorityMedium when empty.
	Priority Priority
}

// Create creates a new todo with the given title and puts it first.
// The title is trimmed; an empty title is rejected with ErrEmptyTitle and
// nothing is written.
func (s *Store) Create(title string, opts CreateOptions) (*Todo, error) {
	title = normalizeText(title)
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	priority := opts.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	priority, err := normalizePriorityInput(priority)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	id, err := s.generateID(s.todos)
	if err != nil {
		return nil, err
	}

	now := s.now()
	todo := Todo{
		ID:          id,
		Title:       title,
		Description: normalizeText(opts.Description),
		Completed:   false,
		Priority:    priority,
		Category:    normalizeText(opts.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if opts.DueDate != nil {
		todo.DueDate = DatePtr(*opts.DueDate)
	}

	next := make([]Todo, 0, len(s.todos)+1)
	next = append(next, todo)
	next = append(next, s.todos...)

	if err := s.commit(next, s.darkMode); err != nil {
		return nil, err
	}

	s.logger.Debug("created todo", "id", todo.ID, "title", todo.Title)
	created := todo.clone()
	return &created, nil
}

// UpdateOptions configures fields to update on a todo.
// Nil pointers mean "don't update this field". ID and CreatedAt can never
// be changed.
type UpdateOptions struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *Priority
	Completed   *bool

	// DueDate sets a new due date.
	DueDate *Date

	// ClearDueDate removes the due date. It wins over DueDate.
	ClearDueDate bool
}

// Update applies opts to the todo with the given ID and refreshes UpdatedAt.
// An unknown ID returns ErrTodoNotFound and leaves the collection untouched.
func (s *Store) Update(id string, opts UpdateOptions) (*Todo, error) {
	if opts.Title != nil {
		title := normalizeText(*opts.Title)
		if err := ValidateTitle(title); err != nil {
			return nil, err
		}
		opts.Title = &title
	}
	if opts.Priority != nil {
		normalized, err := normalizePriorityInput(*opts.Priority)
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}

	return s.mutate(id, "updated todo", func(item *Todo) {
		if opts.Title != nil {
			item.Title = *opts.Title
		}
		if opts.Description != nil {
			item.Description = normalizeText(*opts.Description)
		}
		if opts.Category != nil {
			item.Category = normalizeText(*opts.Category)
		}
		if opts.Priority != nil {
			item.Priority = *opts.Priority
		}
		if opts.Completed != nil {
			item.Completed = *opts.Completed
		}
		switch {
		case opts.ClearDueDate:
			item.DueDate = nil
		case opts.DueDate != nil:
			item.DueDate = DatePtr(*opts.DueDate)
		}
	})
}

// Toggle flips Completed on the todo with the given ID.
func (s *Store) Toggle(id string) (*Todo, error) {
	return s.mutate(id, "toggled todo", func(item *Todo) {
		item.Completed = !item.Completed
	})
}

// mutate applies fn to a copy of the todo with id, refreshes UpdatedAt, and
// commits the resulting collection.
func (s *Store) mutate(id string, message string, fn func(*Todo)) (*Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfTodo(s.todos, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}

	item := s.todos[i].clone()
	fn(&item)
	item.ID = s.todos[i].ID
	item.CreatedAt = s.todos[i].CreatedAt
	item.UpdatedAt = s.touch(s.todos[i].UpdatedAt)

	next := slices.Clone(s.todos)
	next[i] = item

	if err := s.commit(next, s.darkMode); err != nil {
		return nil, err
	}

	s.logger.Debug(message, "id", item.ID, "completed", item.Completed)
	updated := item.clone()
	return &updated, nil
}

// Delete removes the todo with the given ID. It reports whether a todo was
// removed; deleting an unknown ID is not an error and writes nothing.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfTodo(s.todos, id)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.todos), i, i+1)
	if err := s.commit(next, s.darkMode); err != nil {
		return false, err
	}

	s.logger.Debug("deleted todo", "id", id)
	return true, nil
}
