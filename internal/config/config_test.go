package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/todolist/internal/config"
	"github.com/amonks/todolist/internal/testsupport"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if *cfg != (config.Config{}) {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_Project(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFileName), `
[storage]
dir = "/srv/todos"

[list]
sort-by = "dueDate"
sort-order = "asc"
status = "active"
locale = "en"

[log]
level = "debug"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := config.Config{
		Storage: config.Storage{Dir: "/srv/todos"},
		List:    config.List{SortBy: "dueDate", SortOrder: "asc", Status: "active", Locale: "en"},
		Log:     config.Log{Level: "debug"},
	}
	if *cfg != want {
		t.Errorf("config = %+v, expected %+v", *cfg, want)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(home, ".config", "todolist", "config.toml"), `
[list]
sort-by = "priority"
sort-order = "asc"

[log]
level = "info"
`)
	writeFile(t, filepath.Join(tmpDir, config.ProjectFileName), `
[list]
sort-by = "title"

[log]
level = ""
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.List.SortBy != "title" {
		t.Errorf("SortBy = %q, expected project value", cfg.List.SortBy)
	}
	if cfg.List.SortOrder != "asc" {
		t.Errorf("SortOrder = %q, expected global value", cfg.List.SortOrder)
	}
	if cfg.Log.Level != "" {
		t.Errorf("Level = %q, expected explicit empty project value", cfg.Log.Level)
	}
}

func TestLoad_ExpandsHomeInStorageDir(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(home, ".config", "todolist", "config.toml"), `
[storage]
dir = "~/todos"
`)

	cfg, err := config.Load(tmpDir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Storage.Dir != filepath.Join(home, "todos") {
		t.Errorf("Dir = %q, expected %q", cfg.Storage.Dir, filepath.Join(home, "todos"))
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFileName), "[list\nsort-by = ")

	if _, err := config.Load(tmpDir); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	testsupport.SetupTestHome(t)
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, config.ProjectFileName), `
[list]
sortby = "title"
`)

	_, err := config.Load(tmpDir)
	if err == nil || !strings.Contains(err.Error(), "list.sortby") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}
