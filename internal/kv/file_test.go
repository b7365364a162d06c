package kv

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFileStore_GetMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	value, ok, err := store.Get("todos")
	if err != nil {
		t.Fatalf("get missing key: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key, got %q", value)
	}
}

func TestFileStore_SetGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := NewFileStore(dir)

	if err := store.Set("darkMode", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := store.Get("darkMode")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "true" {
		t.Fatalf("expected true, got %q (ok=%v)", value, ok)
	}

	data, err := os.ReadFile(filepath.Join(dir, "darkMode"))
	if err != nil {
		t.Fatalf("read key file: %v", err)
	}
	if string(data) != "true" {
		t.Fatalf("expected key file to hold the raw value, got %q", data)
	}
}

func TestFileStore_SetManyLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	err := store.SetMany(map[string]string{
		"todos":    "[]",
		"darkMode": "false",
	})
	if err != nil {
		t.Fatalf("set many: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make(map[string]bool)
	for _, entry := range entries {
		names[entry.Name()] = true
	}
	if !names["todos"] || !names["darkMode"] || !names[lockFileName] {
		t.Fatalf("unexpected directory contents: %v", names)
	}
	if len(names) != 3 {
		t.Fatalf("expected only key files and lock file, got %v", names)
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for _, value := range []string{"first", "second", "second"} {
		if err := store.Set("todos", value); err != nil {
			t.Fatalf("set %q: %v", value, err)
		}
	}

	value, _, err := store.Get("todos")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "second" {
		t.Fatalf("expected second, got %q", value)
	}
}

func TestFileStore_InvalidKeys(t *testing.T) {
	store := NewFileStore(t.TempDir())

	for _, key := range []string{"", "..", "../escape", "a/b", ".lock"} {
		if err := store.Set(key, "x"); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Set(%q): expected ErrInvalidKey, got %v", key, err)
		}
		if _, _, err := store.Get(key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Get(%q): expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestFileStore_ConcurrentWriters(t *testing.T) {
	dir := t.TempDir()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store := NewFileStore(dir)
			if err := store.Set("todos", `[{"id":"x"}]`); err != nil {
				t.Errorf("set: %v", err)
			}
		}()
	}
	wg.Wait()

	value, ok, err := NewFileStore(dir).Get("todos")
	if err != nil || !ok {
		t.Fatalf("get after concurrent writes: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"x"}]` {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(map[string]string{"darkMode": "false"})

	if value, ok, _ := store.Get("darkMode"); !ok || value != "false" {
		t.Fatalf("expected seeded value, got %q (ok=%v)", value, ok)
	}
	if err := store.SetMany(map[string]string{"darkMode": "true", "todos": "[]"}); err != nil {
		t.Fatalf("set many: %v", err)
	}
	if value, _, _ := store.Get("darkMode"); value != "true" {
		t.Fatalf("expected updated value, got %q", value)
	}
	if store.Writes() != 1 {
		t.Fatalf("expected 1 write, got %d", store.Writes())
	}
}
