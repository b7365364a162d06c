package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amonks/todolist/todo"
)

func TestRenderTodoTOML_Create(t *testing.T) {
	content, err := RenderTodoTOML(DefaultCreateData())
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}

	if !strings.Contains(content, `title = ""`) {
		t.Error("expected empty title")
	}
	if !strings.Contains(content, `priority = "medium"`) {
		t.Error("expected default priority medium")
	}
	if !strings.Contains(content, `due = ""`) {
		t.Error("expected empty due date")
	}
	if strings.Contains(content, "description =") {
		t.Error("expected description to be in body")
	}
	if !strings.Contains(content, "---") {
		t.Error("expected frontmatter separator")
	}
	if strings.Contains(content, "completed =") {
		t.Error("completed should not be present for create")
	}
}

func TestRenderTodoTOML_Update(t *testing.T) {
	due := todo.Date{Year: 2025, Month: time.March, Day: 12}
	existing := &todo.Todo{
		ID:          "sample-1",
		Title:       "プロジェクト企画書の作成",
		Priority:    todo.PriorityHigh,
		Category:    "仕事",
		DueDate:     &due,
		Completed:   true,
		Description: "来週の会議までに第1稿を完成させる",
	}

	content, err := RenderTodoTOML(DataFromTodo(existing))
	if err != nil {
		t.Fatalf("RenderTodoTOML failed: %v", err)
	}

	for _, want := range []string{
		`title = "プロジェクト企画書の作成"`,
		`priority = "high"`,
		`category = "仕事"`,
		`due = "2025-03-12"`,
		`completed = true`,
		"来週の会議までに第1稿を完成させる",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in:\n%s", want, content)
		}
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	due := todo.Date{Year: 2025, Month: time.January, Day: 2}
	existing := &todo.Todo{
		ID:          "x",
		Title:       `Quote "this" \ that`,
		Priority:    todo.PriorityLow,
		Category:    "home",
		DueDate:     &due,
		Description: "line one\n\n- item",
	}

	content, err := RenderTodoTOML(DataFromTodo(existing))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	parsed, err := ParseTodoTOML(content)
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, content)
	}

	if parsed.Title != existing.Title {
		t.Errorf("title = %q", parsed.Title)
	}
	if parsed.Priority != "low" || parsed.Category != "home" {
		t.Errorf("unexpected fields %+v", parsed)
	}
	if parsed.DueDate == nil || *parsed.DueDate != due {
		t.Errorf("due = %v", parsed.DueDate)
	}
	if parsed.Completed == nil || *parsed.Completed {
		t.Errorf("completed = %v", parsed.Completed)
	}
	if parsed.Description != existing.Description {
		t.Errorf("description = %q", parsed.Description)
	}
}

func TestParseTodoTOML_Defaults(t *testing.T) {
	parsed, err := ParseTodoTOML("title = \"  Buy milk  \"\n---\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Title != "Buy milk" {
		t.Errorf("title = %q", parsed.Title)
	}
	if parsed.Priority != "medium" {
		t.Errorf("priority = %q", parsed.Priority)
	}
	if parsed.DueDate != nil || parsed.Completed != nil || parsed.Description != "" {
		t.Errorf("unexpected fields %+v", parsed)
	}

	opts := parsed.ToUpdateOptions()
	if !opts.ClearDueDate {
		t.Error("expected empty due to clear the due date")
	}
	if opts.Completed != nil {
		t.Error("expected completion to be left alone")
	}
}

func TestParseTodoTOML_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"empty title", "title = \"  \"\n---\n", todo.ErrEmptyTitle},
		{"bad priority", "title = \"x\"\npriority = \"urgent\"\n---\n", todo.ErrInvalidPriority},
		{"bad due", "title = \"x\"\ndue = \"next week\"\n---\n", todo.ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTodoTOML(tc.content); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := ParseTodoTOML("title = \n---\n"); err == nil {
		t.Fatal("expected TOML syntax error")
	}
}

func TestParseTodoTOML_CRLF(t *testing.T) {
	parsed, err := ParseTodoTOML("title = \"x\"\r\n---\r\nbody\r\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Description != "body" {
		t.Fatalf("description = %q", parsed.Description)
	}
}

func TestToCreateOptions(t *testing.T) {
	due := todo.Date{Year: 2025, Month: time.May, Day: 1}
	parsed := &ParsedTodo{Title: "x", Priority: "high", Category: "仕事", DueDate: &due, Description: "d"}

	opts := parsed.ToCreateOptions()
	if opts.Priority != todo.PriorityHigh || opts.Category != "仕事" || opts.Description != "d" || opts.DueDate == nil {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestEditTodoWithData_UsesEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	body := "#!/bin/sh\nprintf 'title = \"edited\"\\npriority = \"high\"\\n---\\nnotes\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write editor: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	parsed, err := EditTodoWithData(DefaultCreateData())
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if parsed.Title != "edited" || parsed.Priority != "high" || parsed.Description != "notes" {
		t.Fatalf("unexpected parse %+v", parsed)
	}
}

func TestEditTodoWithData_EditorFailure(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	if _, err := EditTodoWithData(DefaultCreateData()); err == nil {
		t.Fatal("expected editor failure")
	}
}

func TestCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "code --wait")
	if got := Command(); strings.Join(got, " ") != "code --wait" {
		t.Fatalf("Command() = %v", got)
	}

	t.Setenv("VISUAL", "nvim")
	if got := Command(); strings.Join(got, " ") != "nvim" {
		t.Fatalf("Command() = %v", got)
	}

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := Command(); strings.Join(got, " ") != "vi" {
		t.Fatalf("Command() = %v", got)
	}
}
