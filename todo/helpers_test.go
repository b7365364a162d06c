package todo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amonks/todolist/internal/kv"
)

var testEpoch = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: testEpoch}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("todo-%d", n)
	}
}

// newTestStore opens a store over an in-memory kv holding todos. A nil todos
// stores an empty collection so no sample data is loaded.
func newTestStore(t *testing.T, todos []Todo) (*Store, *kv.MemoryStore, *fakeClock) {
	t.Helper()

	data, err := EncodeTodos(todos)
	if err != nil {
		t.Fatalf("encode todos: %v", err)
	}
	mem := kv.NewMemoryStore(map[string]string{
		TodosKey:    string(data),
		DarkModeKey: "false",
	})
	clock := newFakeClock()
	store, report, err := Open(NewKVPersistence(mem, KVPersistenceOptions{Clock: clock}), StoreOptions{
		Clock: clock,
		NewID: sequentialIDs(),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if report.Source != LoadSourceStored {
		t.Fatalf("expected stored source, got %q (%v)", report.Source, report.Err)
	}
	return store, mem, clock
}

func mustCreate(t *testing.T, store *Store, title string, opts CreateOptions) *Todo {
	t.Helper()
	created, err := store.Create(title, opts)
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return created
}

var errDiskFull = errors.New("disk full")

// flakyPersistence wraps a Persistence and fails saves while failing is set.
type flakyPersistence struct {
	Persistence
	failing bool
	saves   int
}

func (p *flakyPersistence) Save(snapshot Snapshot) error {
	if p.failing {
		return errDiskFull
	}
	p.saves++
	return p.Persistence.Save(snapshot)
}

func todoIDs(todos []Todo) []string {
	out := make([]string, 0, len(todos))
	for _, item := range todos {
		out = append(out, item.ID)
	}
	return out
}

func todoTitles(todos []Todo) []string {
	out := make([]string, 0, len(todos))
	for _, item := range todos {
		out = append(out, item.Title)
	}
	return out
}
