package ui

import (
	"fmt"
	"unicode/utf16"

	"github.com/amonks/todolist/todo"
	"github.com/charmbracelet/lipgloss"
)

// swatch is a foreground color for each display mode.
type swatch struct {
	light lipgloss.Color
	dark  lipgloss.Color
}

func (s swatch) pick(dark bool) lipgloss.Color {
	if dark {
		return s.dark
	}
	return s.light
}

// categoryPalette is purple, blue, green, yellow, pink, indigo, teal, orange.
var categoryPalette = []swatch{
	{light: "91", dark: "141"},
	{light: "25", dark: "75"},
	{light: "28", dark: "114"},
	{light: "136", dark: "221"},
	{light: "162", dark: "218"},
	{light: "61", dark: "105"},
	{light: "30", dark: "80"},
	{light: "166", dark: "215"},
}

var (
	overdueSwatch  = swatch{light: "160", dark: "203"}
	todaySwatch    = swatch{light: "166", dark: "215"}
	tomorrowSwatch = swatch{light: "136", dark: "221"}
	upcomingSwatch = swatch{light: "242", dark: "246"}

	highSwatch   = swatch{light: "160", dark: "203"}
	mediumSwatch = swatch{light: "136", dark: "221"}
	lowSwatch    = swatch{light: "32", dark: "117"}

	mutedSwatch = swatch{light: "244", dark: "243"}
)

// Theme styles todo attributes for the current display mode.
type Theme struct {
	// Dark selects colors readable on a dark background.
	Dark bool

	// Plain disables all styling.
	Plain bool
}

// NewTheme returns a theme for stdout. Styling is disabled when stdout is not
// a terminal or NO_COLOR is set.
func NewTheme(dark bool) Theme {
	return Theme{Dark: dark, Plain: !ansiEnabled()}
}

func (theme Theme) render(s swatch, text string) string {
	if theme.Plain || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(s.pick(theme.Dark)).Render(text)
}

// Category renders a category badge. Each category keeps the same color
// across runs.
func (theme Theme) Category(category string) string {
	if category == "" {
		return ""
	}
	return theme.render(categoryPalette[CategoryColorIndex(category)], category)
}

// Due renders the relative due-date label of status.
func (theme Theme) Due(status todo.DueStatus, days int) string {
	label := DueLabel(status, days)
	switch status {
	case todo.DueOverdue:
		return theme.render(overdueSwatch, label)
	case todo.DueToday:
		return theme.render(todaySwatch, label)
	case todo.DueTomorrow:
		return theme.render(tomorrowSwatch, label)
	case todo.DueUpcoming:
		return theme.render(upcomingSwatch, label)
	default:
		return label
	}
}

// Priority renders a priority label.
func (theme Theme) Priority(priority todo.Priority) string {
	label := PriorityLabel(priority)
	switch priority {
	case todo.PriorityHigh:
		return theme.render(highSwatch, label)
	case todo.PriorityMedium:
		return theme.render(mediumSwatch, label)
	case todo.PriorityLow:
		return theme.render(lowSwatch, label)
	default:
		return label
	}
}

// Muted renders de-emphasized text, used for completed todos.
func (theme Theme) Muted(text string) string {
	return theme.render(mutedSwatch, text)
}

// CategoryColorIndex maps a category to an index into the badge palette.
// The hash runs over UTF-16 code units with 32-bit wraparound, so a
// category always gets the same color.
func CategoryColorIndex(category string) int {
	if category == "" {
		return 0
	}
	var hash int32
	for _, unit := range utf16.Encode([]rune(category)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(len(categoryPalette)))
}

// DueLabel returns the short relative label for a due date: "3日超過",
// "今日", "明日", or "5日後". It is empty when there is no due date.
func DueLabel(status todo.DueStatus, days int) string {
	switch status {
	case todo.DueOverdue:
		return fmt.Sprintf("%d日超過", -days)
	case todo.DueToday:
		return "今日"
	case todo.DueTomorrow:
		return "明日"
	case todo.DueUpcoming:
		return fmt.Sprintf("%d日後", days)
	default:
		return ""
	}
}

// PriorityLabel returns the one-character label for a priority.
func PriorityLabel(priority todo.Priority) string {
	switch priority {
	case todo.PriorityHigh:
		return "高"
	case todo.PriorityMedium:
		return "中"
	case todo.PriorityLow:
		return "低"
	default:
		return string(priority)
	}
}

// StatusLabel returns the label for a status filter.
func StatusLabel(status todo.StatusFilter) string {
	switch status {
	case todo.StatusActive:
		return "未完了"
	case todo.StatusCompleted:
		return "完了済み"
	default:
		return "すべて"
	}
}

// FormatStats renders the header summary line.
func FormatStats(stats todo.Stats) string {
	return fmt.Sprintf("全%d件 · 未完了%d件 · 完了%d件", stats.Total, stats.Active, stats.Completed)
}
