// Package validation formats errors for values outside a fixed set.
package validation

import (
	"fmt"
	"strings"
)

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// FormatInvalidValueError wraps sentinel with the rejected value and the
// accepted ones, as in `invalid priority "urgent": must be low, medium, high`.
func FormatInvalidValueError[T ~string](sentinel error, value T, valid []T) error {
	return fmt.Errorf("%w %q: must be %s", sentinel, string(value), FormatValidValues(valid))
}
