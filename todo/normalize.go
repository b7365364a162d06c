package todo

import (
	"strings"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/internal/validation"
)

func normalizePriorityInput(priority Priority) (Priority, error) {
	normalized := Priority(internalstrings.NormalizeLowerTrimSpace(string(priority)))
	if !normalized.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, priority, ValidPriorities())
	}
	return normalized, nil
}

func normalizeStatusFilterInput(status StatusFilter) (StatusFilter, error) {
	normalized := StatusFilter(internalstrings.NormalizeLowerTrimSpace(string(status)))
	if !normalized.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatusFilter, status, ValidStatusFilters())
	}
	return normalized, nil
}

func normalizeSortKeyInput(key SortKey) (SortKey, error) {
	folded := strings.NewReplacer("-", "", "_", "").Replace(internalstrings.NormalizeLowerTrimSpace(string(key)))
	for _, valid := range ValidSortKeys() {
		if strings.ToLower(string(valid)) == folded {
			return valid, nil
		}
	}
	return "", validation.FormatInvalidValueError(ErrInvalidSortKey, key, ValidSortKeys())
}

// normalizeText trims a free-form field and unifies its line endings.
func normalizeText(value string) string {
	return internalstrings.TrimSpace(internalstrings.NormalizeNewlines(value))
}
