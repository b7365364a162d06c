package todo

import (
	"fmt"
	"strings"

	"github.com/amonks/todolist/internal/ids"
)

// IDIndex answers the two questions the CLI asks about todo IDs: which todo
// a typed reference means, and how much of each ID must be shown for it to
// be unambiguous.
//
// Matching ignores case, so "Sample-2" finds "sample-2". Stored data can hold
// IDs that differ only in case; such IDs share a folded entry and are only
// reachable by their exact spelling.
type IDIndex struct {
	folded    []string
	spellings map[string][]string
}

// NewIDIndex builds an IDIndex over the IDs of todos.
func NewIDIndex(todos []Todo) IDIndex {
	index := IDIndex{spellings: make(map[string][]string, len(todos))}
	stored := make([]string, 0, len(todos))
	for _, item := range todos {
		key := strings.ToLower(item.ID)
		index.spellings[key] = append(index.spellings[key], item.ID)
		stored = append(stored, item.ID)
	}
	index.folded = ids.NormalizeUniqueIDs(stored)
	return index
}

// Resolve returns the stored ID that ref names. An exact ID always wins;
// otherwise ref is a case-insensitive prefix that must pick out one todo.
func (index IDIndex) Resolve(ref string) (string, error) {
	if ref == "" {
		return "", ErrTodoNotFound
	}
	for _, spelling := range index.spellings[strings.ToLower(ref)] {
		if spelling == ref {
			return spelling, nil
		}
	}

	match, found, ambiguous := ids.MatchPrefixNormalized(index.folded, ref)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTodoNotFound, ref)
	}
	candidates := index.spellings[match]
	if ambiguous || len(candidates) > 1 {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTodoIDPrefix, ref)
	}
	return candidates[0], nil
}

// PrefixLengths returns, keyed by lowercased ID, the number of leading
// characters that distinguish each ID from every other.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengthsNormalized(index.folded)
}
