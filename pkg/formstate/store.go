package formstate

import (
	"sort"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/deepval"
	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/rules"
)

// Store is an in-memory form state implementing engine.State: the
// value tree, error lists, validating flags, and touched/inactive
// bookkeeping for one form. It is safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	values     map[string]any
	errors     map[string]rules.Errors
	validating map[string]bool
	touched    map[string]bool
	inactive   map[string]bool

	onChange func(path string)
}

// New creates a store around an initial value tree. A nil tree starts
// empty. The tree is not copied; the caller hands ownership over.
func New(values map[string]any) *Store {
	if values == nil {
		values = make(map[string]any)
	}
	return &Store{
		values:     values,
		errors:     make(map[string]rules.Errors),
		validating: make(map[string]bool),
		touched:    make(map[string]bool),
		inactive:   make(map[string]bool),
	}
}

// FromJSON creates a store from a JSON document, decoded into the
// map[string]any / []any tree shape the engine operates on.
func FromJSON(data []byte) (*Store, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return New(values), nil
}

// OnChange installs the hook invoked after every Set, typically the
// engine's OnFieldChanged. The hook runs outside the store's lock, so
// it may read back through the store freely.
func (s *Store) OnChange(fn func(path string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Get reads the value at a concrete path.
func (s *Store) Get(path string) (any, bool) {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fieldpath.Get(s.values, p)
}

// Set writes a value at a concrete path, creating intermediate
// objects as needed, and fires the change hook.
func (s *Store) Set(path string, value any) error {
	p, err := fieldpath.Parse(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if err := fieldpath.Set(s.values, p, value); err != nil {
		s.mu.Unlock()
		return err
	}
	hook := s.onChange
	s.mu.Unlock()

	if hook != nil {
		hook(path)
	}
	return nil
}

// Values returns a snapshot of the value tree. The snapshot is deep
// cloned so a validation pass reading it never races with the UI
// writing through Set.
func (s *Store) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepval.Clone(s.values).(map[string]any)
}

// SetErrors replaces the error list of a field. An empty list removes
// the entry.
func (s *Store) SetErrors(path string, errs rules.Errors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(errs) == 0 {
		delete(s.errors, path)
		return
	}
	s.errors[path] = errs
}

// ClearErrors removes the error entry of a field.
func (s *Store) ClearErrors(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errors, path)
}

// Errors returns the current error list of a field.
func (s *Store) Errors(path string) rules.Errors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors[path]
}

// ErrorPaths lists every field that currently has errors, sorted.
func (s *Store) ErrorPaths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.errors))
	for path := range s.errors {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// SetValidating flips the async-check-in-progress flag of a field.
func (s *Store) SetValidating(path string, validating bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !validating {
		delete(s.validating, path)
		return
	}
	s.validating[path] = true
}

// Validating reports whether a field has an async check in progress.
func (s *Store) Validating(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validating[path]
}

// Touched reports whether a field has been interacted with.
func (s *Store) Touched(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched[path]
}

// MarkTouched marks a field as interacted with.
func (s *Store) MarkTouched(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched[path] = true
}

// SetInactive marks a field as conditionally inactive or active again.
// Inactive fields never block form-level validity.
func (s *Store) SetInactive(path string, inactive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !inactive {
		delete(s.inactive, path)
		return
	}
	s.inactive[path] = true
}

// Inactive reports whether a field is conditionally inactive.
func (s *Store) Inactive(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inactive[path]
}
