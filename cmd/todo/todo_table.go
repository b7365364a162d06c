package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/todolist/internal/markdown"
	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/todo"
)

func formatTodoTable(todos []todo.Todo, highlight func(string) string, theme ui.Theme, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "DONE", "PRI", "DUE", "CATEGORY", "AGE", "TITLE"}, len(todos))

	for _, t := range todos {
		title := ui.TruncateTableCell(t.Title)
		if t.Completed {
			title = theme.Muted(title)
		}
		builder.AddRow([]string{
			highlight(t.ID),
			doneMark(t.Completed),
			theme.Priority(t.Priority),
			formatTodoDue(t, theme, now),
			orDash(theme.Category(t.Category)),
			formatTodoAge(t, now),
			title,
		})
	}

	return builder.String()
}

func doneMark(completed bool) string {
	if completed {
		return "x"
	}
	return ""
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

// formatTodoDue renders the due date with its relative label, as in
// "2025-01-03 (2日後)".
func formatTodoDue(item todo.Todo, theme ui.Theme, now time.Time) string {
	status, days := todo.DueInfo(item, now)
	if status == todo.DueNone {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", item.DueDate, theme.Due(status, days))
}

func formatTodoAge(item todo.Todo, now time.Time) string {
	ageValue, ok := todo.AgeData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(ageValue)
}

const todoDetailLineWidth = 80

// formatTodoDetail renders every field of a todo, with the description as
// markdown.
func formatTodoDetail(t todo.Todo, highlight func(string) string, theme ui.Theme, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %s\n", highlight(t.ID))
	fmt.Fprintf(&b, "Title:     %s\n", t.Title)
	fmt.Fprintf(&b, "Status:    %s\n", completionLabel(t.Completed))
	fmt.Fprintf(&b, "Priority:  %s (%s)\n", theme.Priority(t.Priority), t.Priority)
	fmt.Fprintf(&b, "Category:  %s\n", orDash(theme.Category(t.Category)))
	fmt.Fprintf(&b, "Due:       %s\n", formatTodoDue(t, theme, now))
	fmt.Fprintf(&b, "Created:   %s (%s)\n", t.CreatedAt.Local().Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.CreatedAt, now))
	fmt.Fprintf(&b, "Updated:   %s (%s)\n", t.UpdatedAt.Local().Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.UpdatedAt, now))

	if t.Description != "" {
		style := markdown.StyleFor(theme.Plain, theme.Dark)
		rendered := markdown.SafeRender(todoDetailLineWidth, 2, style, []byte(t.Description))
		fmt.Fprintf(&b, "\nDescription:\n%s\n", strings.TrimRight(string(rendered), "\n"))
	}
	return b.String()
}

func completionLabel(completed bool) string {
	if completed {
		return "completed"
	}
	return "active"
}
