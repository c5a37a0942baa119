package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/volt/pkg/errors"
)

// Registry stores items by name. The zero value is not usable; use New.
type Registry[T any] struct {
	// kind names the items in error messages, e.g. "engine".
	kind string

	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty registry. kind is used in error messages.
func New[T any](kind string) *Registry[T] {
	if kind == "" {
		kind = "item"
	}
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// Kind returns the item kind given to New.
func (r *Registry[T]) Kind() string { return r.kind }

// Register adds an item. Names must be non-empty and unique.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s %q is already registered", r.kind, name).
			WithDetail("name", name)
	}

	r.items[name] = item
	return nil
}

// Replace adds or overwrites an item.
func (r *Registry[T]) Replace(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = item
	return nil
}

// Lookup returns the item and whether it exists.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	return item, ok
}

// Get returns the named item or a NOT_FOUND error whose "known" detail
// lists the registered names.
func (r *Registry[T]) Get(name string) (T, error) {
	if item, ok := r.Lookup(name); ok {
		return item, nil
	}
	var zero T
	return zero, errors.Newf(errors.ErrNotFound, "%s %q not found", r.kind, name).
		WithDetail("name", name).
		WithDetail("known", r.Names())
}

// Remove deletes an item.
func (r *Registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "%s %q not found", r.kind, name).
			WithDetail("name", name)
	}
	delete(r.items, name)
	return nil
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Len is the number of registered items.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Clear removes every item.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
}

// MustRegister registers an item and panics on failure. Registration of
// builtins happens at startup, where a failure is a programming error.
func MustRegister[T any](r *Registry[T], name string, item T) {
	if err := r.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s %q: %v", r.kind, name, err))
	}
}
