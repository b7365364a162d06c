package todo

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/amonks/todolist/internal/ids"
	"github.com/charmbracelet/log"
)

const maxIDAttempts = 8

// Store owns the authoritative todo collection and the display mode.
//
// Todos are kept newest-first. Every successful mutation writes the complete
// resulting snapshot through the Persistence before it becomes visible; if the
// write fails the collection is left exactly as it was.
type Store struct {
	mu          sync.Mutex
	persistence Persistence
	clock       Clock
	newID       func() string
	logger      *log.Logger

	todos    []Todo
	darkMode bool
	loaded   bool
}

// StoreOptions configures how the store is opened.
type StoreOptions struct {
	// Clock supplies timestamps. If nil, SystemClock is used.
	Clock Clock

	// NewID generates todo IDs. If nil, random UUIDs are used.
	NewID func() string

	// Logger receives debug output about mutations. If nil, output is discarded.
	Logger *log.Logger
}

// Open loads the snapshot from persistence and returns a store ready for
// mutations. Open never writes the todos key, so a store that fails to load
// can never overwrite stored data with an empty collection. The only write a
// load may make is the backup of unreadable todos.
func Open(persistence Persistence, opts StoreOptions) (*Store, LoadReport, error) {
	if persistence == nil {
		return nil, LoadReport{}, fmt.Errorf("todo store requires a persistence")
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.NewID == nil {
		opts.NewID = ids.New
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	snapshot, report, err := persistence.Load()
	if err != nil {
		return nil, LoadReport{}, err
	}

	opts.Logger.Debug("loaded todos", "count", len(snapshot.Todos), "source", report.Source)

	return &Store{
		persistence: persistence,
		clock:       opts.Clock,
		newID:       opts.NewID,
		logger:      opts.Logger,
		todos:       cloneTodos(snapshot.Todos),
		darkMode:    snapshot.DarkMode,
		loaded:      true,
	}, report, nil
}

// now returns the clock's time without a monotonic reading, so values
// compare equal after a round trip through storage.
func (s *Store) now() time.Time {
	return s.clock.Now().Round(0)
}

// touch returns the timestamp for a mutation of a record last updated at prev.
// It never goes backwards, even if the clock does.
func (s *Store) touch(prev time.Time) time.Time {
	now := s.now()
	if now.Before(prev) {
		return prev
	}
	return now
}

// commit persists the next state and, only if that succeeds, installs it.
// Callers must hold s.mu.
func (s *Store) commit(todos []Todo, darkMode bool) error {
	if !s.loaded || s.persistence == nil {
		return ErrNotLoaded
	}

	if err := s.persistence.Save(Snapshot{Todos: cloneTodos(todos), DarkMode: darkMode}); err != nil {
		return fmt.Errorf("persist todos: %w", err)
	}

	s.todos = todos
	s.darkMode = darkMode
	return nil
}

// generateID returns an ID not used by any todo in todos.
func (s *Store) generateID(todos []Todo) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if id == "" {
			continue
		}
		if indexOfTodo(todos, id) < 0 {
			return id, nil
		}
		s.logger.Debug("generated id collides, retrying", "id", id)
	}
	return "", fmt.Errorf("%w: no unique id after %d attempts", ErrDuplicateID, maxIDAttempts)
}

func indexOfTodo(todos []Todo, id string) int {
	for i := range todos {
		if todos[i].ID == id {
			return i
		}
	}
	return -1
}

// All returns a copy of the collection in display order (newest first).
func (s *Store) All() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTodos(s.todos)
}

// Get returns a copy of the todo with the given ID.
func (s *Store) Get(id string) (*Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfTodo(s.todos, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTodoNotFound, id)
	}
	item := s.todos[i].clone()
	return &item, nil
}

// IDIndex returns an index of all todo IDs in the store.
func (s *Store) IDIndex() IDIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewIDIndex(s.todos)
}

// Resolve returns the full ID for an exact ID or a unique ID prefix.
func (s *Store) Resolve(ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return NewIDIndex(s.todos).Resolve(ref)
}

// DarkMode returns the persisted display-mode flag.
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// SetDarkMode stores the display-mode flag.
func (s *Store) SetDarkMode(dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(s.todos, dark); err != nil {
		return err
	}
	s.logger.Debug("set dark mode", "dark", dark)
	return nil
}

// UpdateDarkMode sets the display mode to fn applied to the current value,
// and returns the new value.
func (s *Store) UpdateDarkMode(fn func(bool) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dark := fn(s.darkMode)
	if err := s.commit(s.todos, dark); err != nil {
		return s.darkMode, err
	}
	s.logger.Debug("set dark mode", "dark", dark)
	return dark, nil
}
