package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/todo"
)

// priorityValue is a pflag.Value accepting low, medium, or high.
type priorityValue struct {
	value todo.Priority
}

func newPriorityValue(def todo.Priority) *priorityValue {
	return &priorityValue{value: def}
}

func (p *priorityValue) String() string {
	return string(p.value)
}

func (p *priorityValue) Set(s string) error {
	parsed, err := todo.ParsePriority(s)
	if err != nil {
		return err
	}
	p.value = parsed
	return nil
}

func (p *priorityValue) Type() string {
	return "priority"
}

// dueValue is a pflag.Value accepting a calendar date. Besides YYYY-MM-DD
// it understands today, tomorrow, yesterday, and day offsets like +3d or -1d.
type dueValue struct {
	now   func() time.Time
	value *todo.Date
}

func newDueValue(now func() time.Time) *dueValue {
	return &dueValue{now: now}
}

func (d *dueValue) String() string {
	if d.value == nil {
		return ""
	}
	return d.value.String()
}

func (d *dueValue) Set(s string) error {
	parsed, err := parseDue(s, d.now())
	if err != nil {
		return err
	}
	d.value = &parsed
	return nil
}

func (d *dueValue) Type() string {
	return "date"
}

// Date returns the parsed date, or nil if the flag was not set.
func (d *dueValue) Date() *todo.Date {
	return d.value
}

func parseDue(value string, now time.Time) (todo.Date, error) {
	today := todo.DateOf(now)
	normalized := internalstrings.NormalizeLowerTrimSpace(value)
	switch normalized {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if offset, ok := parseDayOffset(normalized); ok {
		return today.AddDays(offset), nil
	}

	date, err := todo.ParseDate(value)
	if err != nil {
		return todo.Date{}, fmt.Errorf("%w (or today, tomorrow, yesterday, +Nd, -Nd)", err)
	}
	return date, nil
}

func parseDayOffset(value string) (int, bool) {
	if len(value) < 3 || !strings.HasSuffix(value, "d") {
		return 0, false
	}
	if value[0] != '+' && value[0] != '-' {
		return 0, false
	}
	n, err := strconv.Atoi(value[:len(value)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// enumValue is a pflag.Value that normalizes its input with parse.
type enumValue[T ~string] struct {
	value    T
	typeName string
	parse    func(string) (T, error)
}

func newEnumValue[T ~string](def T, typeName string, parse func(string) (T, error)) *enumValue[T] {
	return &enumValue[T]{value: def, typeName: typeName, parse: parse}
}

func (e *enumValue[T]) String() string {
	return string(e.value)
}

func (e *enumValue[T]) Set(s string) error {
	parsed, err := e.parse(s)
	if err != nil {
		return err
	}
	e.value = parsed
	return nil
}

func (e *enumValue[T]) Type() string {
	return e.typeName
}
