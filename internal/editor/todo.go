package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/todo"
)

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID string
	// Title is the todo title.
	Title string
	// Priority is low, medium, or high.
	Priority string
	// Category groups the todo.
	Category string
	// Due is the due date as YYYY-MM-DD, or empty.
	Due string
	// Completed is the completion flag (only for updates).
	Completed bool
	// Description is the todo description.
	Description string
}

// DefaultCreateData returns TodoData with default values for creating a new todo.
func DefaultCreateData() TodoData {
	return TodoData{Priority: string(todo.PriorityMedium)}
}

// DataFromTodo creates TodoData from an existing todo for editing.
func DataFromTodo(t *todo.Todo) TodoData {
	data := TodoData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Completed:   t.Completed,
		Description: t.Description,
	}
	if t.DueDate != nil {
		data.Due = t.DueDate.String()
	}
	return data
}

var todoTemplate = template.Must(template.New("todo").Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # low, medium, high
category = {{ printf "%q" .Category }}
due = {{ printf "%q" .Due }} # YYYY-MM-DD, or empty for none
{{- if .IsUpdate }}
completed = {{ .Completed }}
{{- end }}
---
{{ .Description }}
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the TOML editor output.
type ParsedTodo struct {
	Title       string     `toml:"title"`
	Priority    string     `toml:"priority"`
	Category    string     `toml:"category"`
	Due         string     `toml:"due"`
	Completed   *bool      `toml:"completed"`
	DueDate     *todo.Date `toml:"-"`
	Description string     `toml:"-"`
}

// ParseTodoTOML parses the TOML content from the editor.
func ParseTodoTOML(content string) (*ParsedTodo, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var parsed ParsedTodo
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Title = internalstrings.TrimSpace(parsed.Title)
	parsed.Category = internalstrings.TrimSpace(parsed.Category)
	parsed.Description = internalstrings.TrimSpace(body)

	if err := todo.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}

	if strings.TrimSpace(parsed.Priority) == "" {
		parsed.Priority = string(todo.PriorityMedium)
	}
	priority, err := todo.ParsePriority(parsed.Priority)
	if err != nil {
		return nil, err
	}
	parsed.Priority = string(priority)

	if due := strings.TrimSpace(parsed.Due); due != "" {
		date, err := todo.ParseDate(due)
		if err != nil {
			return nil, err
		}
		parsed.DueDate = &date
		parsed.Due = date.String()
	} else {
		parsed.Due = ""
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTodoTempFile() (*os.File, error) {
	return os.CreateTemp("", "todo-*.md")
}

// EditTodoWithData opens the editor with pre-populated data and returns the parsed result.
func EditTodoWithData(data TodoData) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTodoTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited))
}

// ToCreateOptions converts a ParsedTodo to todo.CreateOptions.
func (p *ParsedTodo) ToCreateOptions() todo.CreateOptions {
	return todo.CreateOptions{
		Description: p.Description,
		Category:    p.Category,
		DueDate:     p.DueDate,
		Priority:    todo.Priority(p.Priority),
	}
}

// ToUpdateOptions converts a ParsedTodo to todo.UpdateOptions. An empty due
// date in the editor clears the todo's due date.
func (p *ParsedTodo) ToUpdateOptions() todo.UpdateOptions {
	priority := todo.Priority(p.Priority)
	opts := todo.UpdateOptions{
		Title:       &p.Title,
		Description: &p.Description,
		Category:    &p.Category,
		Priority:    &priority,
		Completed:   p.Completed,
		DueDate:     p.DueDate,
	}
	if p.DueDate == nil {
		opts.ClearDueDate = true
	}
	return opts
}
