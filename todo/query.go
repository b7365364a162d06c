package todo

import (
	"slices"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/internal/validation"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used for title sorting.
var DefaultLocale = language.Japanese

// noDueDate is where todos without a due date sort: effectively never.
var noDueDate = Date{Year: 9999, Month: 12, Day: 31}

// Filter describes a derived view.
type Filter struct {
	// Status filters by completion.
	Status StatusFilter

	// Search keeps todos whose title or description contains it, ignoring case.
	Search string

	// Category keeps todos whose category equals it exactly. Nil disables
	// the category filter.
	Category *string

	// SortBy is the primary ordering key.
	SortBy SortKey

	// SortOrder is applied to the comparison result.
	SortOrder SortOrder
}

// DefaultFilter returns the initial view: everything, newest first.
func DefaultFilter() Filter {
	return Filter{
		Status:    StatusAll,
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
	}
}

// Validate checks the enum fields of the filter.
func (f Filter) Validate() error {
	if _, err := normalizeStatusFilterInput(f.Status); err != nil {
		return err
	}
	if _, err := normalizeSortKeyInput(f.SortBy); err != nil {
		return err
	}
	if !f.SortOrder.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidSortOrder, f.SortOrder, ValidSortOrders())
	}
	return nil
}

// FilterUpdate is a partial Filter. Nil fields are left unchanged.
type FilterUpdate struct {
	Status    *StatusFilter
	Search    *string
	Category  *string
	SortBy    *SortKey
	SortOrder *SortOrder

	// ClearCategory removes the category filter. It wins over Category.
	ClearCategory bool
}

// Merge returns f with the set fields of update applied.
func (f Filter) Merge(update FilterUpdate) Filter {
	if update.Status != nil {
		f.Status = *update.Status
	}
	if update.Search != nil {
		f.Search = *update.Search
	}
	switch {
	case update.ClearCategory:
		f.Category = nil
	case update.Category != nil:
		category := *update.Category
		f.Category = &category
	}
	if update.SortBy != nil {
		f.SortBy = *update.SortBy
	}
	if update.SortOrder != nil {
		f.SortOrder = *update.SortOrder
	}
	return f
}

// Matches reports whether item passes the status, category and search clauses.
func (f Filter) Matches(item Todo) bool {
	switch f.Status {
	case StatusActive:
		if item.Completed {
			return false
		}
	case StatusCompleted:
		if !item.Completed {
			return false
		}
	}
	if f.Category != nil && item.Category != *f.Category {
		return false
	}
	if f.Search != "" {
		if !internalstrings.ContainsFold(item.Title, f.Search) && !internalstrings.ContainsFold(item.Description, f.Search) {
			return false
		}
	}
	return true
}

// Apply returns the todos that match filter, sorted as it specifies.
// It never modifies todos. Ties keep their order in todos.
func Apply(todos []Todo, filter Filter) []Todo {
	return ApplyWithLocale(todos, filter, DefaultLocale)
}

// ApplyWithLocale is Apply with an explicit title collation locale.
func ApplyWithLocale(todos []Todo, filter Filter, locale language.Tag) []Todo {
	result := make([]Todo, 0, len(todos))
	for _, item := range todos {
		if filter.Matches(item) {
			result = append(result, item.clone())
		}
	}

	compare := baseComparator(filter.SortBy, locale)
	descending := filter.SortOrder != SortAsc
	slices.SortStableFunc(result, func(a, b Todo) int {
		if descending {
			return -compare(a, b)
		}
		return compare(a, b)
	})

	return result
}

// baseComparator returns the ascending comparison for key. Priority is the
// exception: its ascending order puts high first.
func baseComparator(key SortKey, locale language.Tag) func(a, b Todo) int {
	switch key {
	case SortByTitle:
		collator := collate.New(locale)
		return func(a, b Todo) int {
			return collator.CompareString(a.Title, b.Title)
		}
	case SortByDueDate:
		return func(a, b Todo) int {
			return dueDateOrNever(a).Compare(dueDateOrNever(b))
		}
	case SortByPriority:
		return func(a, b Todo) int {
			return b.Priority.Weight() - a.Priority.Weight()
		}
	default:
		return func(a, b Todo) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
}

func dueDateOrNever(item Todo) Date {
	if item.DueDate == nil {
		return noDueDate
	}
	return *item.DueDate
}

// Categories returns the distinct non-empty categories in first-seen order.
func Categories(todos []Todo) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range todos {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// Stats counts todos by completion.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Summarize counts the whole collection.
func Summarize(todos []Todo) Stats {
	stats := Stats{Total: len(todos)}
	for _, item := range todos {
		if item.Completed {
			stats.Completed++
		} else {
			stats.Active++
		}
	}
	return stats
}
