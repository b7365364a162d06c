package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amonks/todolist/internal/kv"
	"github.com/charmbracelet/log"
)

const (
	// TodosKey holds the JSON array of todos.
	TodosKey = "todos"

	// DarkModeKey holds the display-mode flag as "true" or "false".
	DarkModeKey = "darkMode"

	// CorruptTodosKey holds a copy of the last stored todos value that could
	// not be read, so falling back to sample data never destroys it.
	CorruptTodosKey = "todos.corrupt"
)

// ErrCorruptTodos wraps the reason stored todos were rejected.
var ErrCorruptTodos = errors.New("stored todos are unreadable")

// Snapshot is everything the store persists.
type Snapshot struct {
	Todos    []Todo
	DarkMode bool
}

// LoadSource says where the loaded todos came from.
type LoadSource string

const (
	// LoadSourceStored means the todos were read from storage.
	LoadSourceStored LoadSource = "stored"

	// LoadSourceSeededFresh means nothing was stored and sample todos were used.
	LoadSourceSeededFresh LoadSource = "seeded-fresh"

	// LoadSourceSeededCorrupt means stored todos were unreadable and sample
	// todos were used instead.
	LoadSourceSeededCorrupt LoadSource = "seeded-corrupt"
)

// Seeded reports whether the todos are sample data.
func (s LoadSource) Seeded() bool {
	return s == LoadSourceSeededFresh || s == LoadSourceSeededCorrupt
}

// LoadReport describes the outcome of a Load.
type LoadReport struct {
	Source LoadSource

	// Err is why stored todos were rejected. It wraps ErrCorruptTodos and is
	// only set when Source is LoadSourceSeededCorrupt.
	Err error

	// DarkModeStored is false when the display mode was derived from the
	// environment rather than read from storage.
	DarkModeStored bool
}

// Persistence loads and saves store snapshots.
type Persistence interface {
	// Load reads the stored snapshot. Unreadable todo data is not an error:
	// it falls back to sample todos and is described in the LoadReport.
	Load() (Snapshot, LoadReport, error)

	// Save writes the full snapshot.
	Save(Snapshot) error
}

// KVPersistenceOptions configures a KVPersistence.
type KVPersistenceOptions struct {
	// Clock dates the sample todos. Defaults to SystemClock.
	Clock Clock

	// PrefersDark supplies the display mode when none is stored.
	// Defaults to light.
	PrefersDark func() bool

	// Logger receives warnings about unreadable data. Defaults to discarding.
	Logger *log.Logger
}

// KVPersistence stores snapshots in a kv.Store under TodosKey and DarkModeKey.
type KVPersistence struct {
	store       kv.Store
	clock       Clock
	prefersDark func() bool
	logger      *log.Logger
}

// NewKVPersistence returns a Persistence backed by store.
func NewKVPersistence(store kv.Store, opts KVPersistenceOptions) *KVPersistence {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.PrefersDark == nil {
		opts.PrefersDark = func() bool { return false }
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &KVPersistence{
		store:       store,
		clock:       opts.Clock,
		prefersDark: opts.PrefersDark,
		logger:      opts.Logger,
	}
}

// Load reads todos and the display mode.
func (p *KVPersistence) Load() (Snapshot, LoadReport, error) {
	var snapshot Snapshot
	var report LoadReport

	raw, ok, err := p.store.Get(TodosKey)
	if err != nil {
		return Snapshot{}, LoadReport{}, fmt.Errorf("load todos: %w", err)
	}

	switch {
	case !ok:
		snapshot.Todos = SeedTodos(p.clock.Now())
		report.Source = LoadSourceSeededFresh
		p.logger.Debug("no stored todos, using sample data")
	default:
		todos, decodeErr := DecodeTodos([]byte(raw))
		if decodeErr == nil {
			snapshot.Todos = todos
			report.Source = LoadSourceStored
			break
		}

		report.Source = LoadSourceSeededCorrupt
		report.Err = decodeErr
		snapshot.Todos = SeedTodos(p.clock.Now())
		p.logger.Warn("stored todos are unreadable, using sample data", "err", decodeErr, "backup", CorruptTodosKey)
		if err := p.store.Set(CorruptTodosKey, raw); err != nil {
			p.logger.Warn("could not back up unreadable todos", "err", err, "key", CorruptTodosKey)
		}
	}

	darkRaw, ok, err := p.store.Get(DarkModeKey)
	if err != nil {
		return Snapshot{}, LoadReport{}, fmt.Errorf("load dark mode: %w", err)
	}
	if ok {
		snapshot.DarkMode = strings.TrimSpace(darkRaw) == "true"
		report.DarkModeStored = true
	} else {
		snapshot.DarkMode = p.prefersDark()
	}

	return snapshot, report, nil
}

// Save writes todos and the display mode.
func (p *KVPersistence) Save(snapshot Snapshot) error {
	data, err := EncodeTodos(snapshot.Todos)
	if err != nil {
		return err
	}

	err = p.store.SetMany(map[string]string{
		TodosKey:    string(data),
		DarkModeKey: formatDarkMode(snapshot.DarkMode),
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// EncodeTodos serializes todos in the stored format. A nil slice encodes as [].
func EncodeTodos(todos []Todo) ([]byte, error) {
	if todos == nil {
		todos = []Todo{}
	}
	data, err := json.Marshal(todos)
	if err != nil {
		return nil, fmt.Errorf("encode todos: %w", err)
	}
	return data, nil
}

// DecodeTodos parses and validates a stored todo collection.
// Every failure wraps ErrCorruptTodos.
func DecodeTodos(raw []byte) ([]Todo, error) {
	if err := validateTodosDocument(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTodos, err)
	}

	todos := []Todo{}
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTodos, err)
	}
	if err := ValidateCollection(todos); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptTodos, err)
	}
	return todos, nil
}

func formatDarkMode(dark bool) string {
	if dark {
		return "true"
	}
	return "false"
}
