package main

import (
	"errors"
	"testing"
	"time"

	"github.com/amonks/todolist/todo"
)

func TestParseDue(t *testing.T) {
	now := time.Date(2025, 3, 31, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  string
	}{
		{input: "2025-04-10", want: "2025-04-10"},
		{input: "today", want: "2025-03-31"},
		{input: " Tomorrow ", want: "2025-04-01"},
		{input: "yesterday", want: "2025-03-30"},
		{input: "+3d", want: "2025-04-03"},
		{input: "-31d", want: "2025-02-28"},
		{input: "+0d", want: "2025-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDue(tt.input, now)
			if err != nil {
				t.Fatalf("parseDue(%q): %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Fatalf("parseDue(%q) = %s, expected %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDueRejectsGarbage(t *testing.T) {
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"", "next week", "3d", "+d", "2025-13-01"} {
		if _, err := parseDue(input, now); !errors.Is(err, todo.ErrInvalidDate) {
			t.Fatalf("parseDue(%q) error = %v, expected ErrInvalidDate", input, err)
		}
	}
}

func TestDueValueTracksWhetherSet(t *testing.T) {
	value := newDueValue(func() time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	if value.Date() != nil {
		t.Fatal("expected unset due value to have no date")
	}
	if value.String() != "" {
		t.Fatalf("expected empty string for unset value, got %q", value.String())
	}

	if err := value.Set("tomorrow"); err != nil {
		t.Fatalf("set due: %v", err)
	}
	if got := value.Date(); got == nil || got.String() != "2025-01-02" {
		t.Fatalf("expected 2025-01-02, got %v", got)
	}
}

func TestPriorityValue(t *testing.T) {
	value := newPriorityValue(todo.PriorityMedium)
	if value.String() != "medium" {
		t.Fatalf("expected default medium, got %q", value.String())
	}

	if err := value.Set("HIGH"); err != nil {
		t.Fatalf("set priority: %v", err)
	}
	if value.value != todo.PriorityHigh {
		t.Fatalf("expected high, got %q", value.value)
	}

	err := value.Set("urgent")
	if !errors.Is(err, todo.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if value.value != todo.PriorityHigh {
		t.Fatalf("expected failed set to keep high, got %q", value.value)
	}
}

func TestEnumValue(t *testing.T) {
	value := newEnumValue[todo.SortKey]("", "key", todo.ParseSortKey)
	if value.Type() != "key" {
		t.Fatalf("expected type name key, got %q", value.Type())
	}

	if err := value.Set("due-date"); err != nil {
		t.Fatalf("set sort key: %v", err)
	}
	if value.value != todo.SortByDueDate {
		t.Fatalf("expected dueDate, got %q", value.value)
	}

	if err := value.Set("size"); !errors.Is(err, todo.ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
}
