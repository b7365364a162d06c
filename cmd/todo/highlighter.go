package main

import (
	"strings"

	"github.com/amonks/todolist/internal/ui"
	"github.com/amonks/todolist/todo"
)

func logHighlighter(prefixLengths map[string]int, highlight func(string, int) string) func(string) string {
	if prefixLengths == nil {
		prefixLengths = map[string]int{}
	}
	return func(id string) string {
		if id == "" {
			return id
		}
		prefixLen, ok := prefixLengths[strings.ToLower(id)]
		if !ok {
			return highlight(id, 0)
		}
		return highlight(id, prefixLen)
	}
}

// storeHighlighter highlights IDs by their shortest unique prefix in store.
func storeHighlighter(store *todo.Store) func(string) string {
	return logHighlighter(store.IDIndex().PrefixLengths(), ui.HighlightID)
}
