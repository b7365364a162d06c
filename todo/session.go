package todo

import (
	"sync"

	"golang.org/x/text/language"
)

// View is the derived state a front end renders.
type View struct {
	Todos      []Todo   `json:"todos"`
	Categories []string `json:"categories"`
	Stats      Stats    `json:"stats"`
}

// Session binds a Store to a current Filter. It is the surface a front end
// talks to: mutators, filter control, display-mode control, and View.
type Session struct {
	store  *Store
	locale language.Tag

	mu     sync.Mutex
	filter Filter
}

// NewSession returns a session over store starting from filter.
func NewSession(store *Store, filter Filter) *Session {
	return &Session{store: store, filter: filter, locale: DefaultLocale}
}

// SetLocale changes the collation locale used for title sorting.
func (s *Session) SetLocale(locale language.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
}

// Store returns the underlying store.
func (s *Session) Store() *Store {
	return s.store
}

// Filter returns the current filter.
func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter merges update into the current filter and returns the result.
func (s *Session) SetFilter(update FilterUpdate) Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.filter.Merge(update)
	return s.filter
}

// View recomputes the filtered todos, categories, and stats. Categories and
// stats always cover the whole collection, not just the filtered todos.
func (s *Session) View() View {
	s.mu.Lock()
	filter := s.filter
	locale := s.locale
	s.mu.Unlock()

	all := s.store.All()
	return View{
		Todos:      ApplyWithLocale(all, filter, locale),
		Categories: Categories(all),
		Stats:      Summarize(all),
	}
}

// AddTodo creates a todo.
func (s *Session) AddTodo(title string, opts CreateOptions) (*Todo, error) {
	return s.store.Create(title, opts)
}

// UpdateTodo updates a todo.
func (s *Session) UpdateTodo(id string, opts UpdateOptions) (*Todo, error) {
	return s.store.Update(id, opts)
}

// DeleteTodo deletes a todo, reporting whether one was removed.
func (s *Session) DeleteTodo(id string) (bool, error) {
	return s.store.Delete(id)
}

// ToggleTodo flips a todo's completion.
func (s *Session) ToggleTodo(id string) (*Todo, error) {
	return s.store.Toggle(id)
}

// DarkMode returns the display-mode flag.
func (s *Session) DarkMode() bool {
	return s.store.DarkMode()
}

// SetDarkMode sets the display-mode flag.
func (s *Session) SetDarkMode(dark bool) error {
	return s.store.SetDarkMode(dark)
}

// ToggleDarkMode flips the display-mode flag and returns the new value.
func (s *Session) ToggleDarkMode() (bool, error) {
	return s.store.UpdateDarkMode(func(dark bool) bool { return !dark })
}
