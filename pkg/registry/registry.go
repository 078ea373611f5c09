package registry

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/sigslot/pkg/errors"
	"github.com/arthur-debert/sigslot/pkg/signal"
	"github.com/arthur-debert/sigslot/pkg/slotmap"
)

// ChangeKind tells what happened to a registry entry
type ChangeKind string

const (
	Registered ChangeKind = "registered"
	Removed    ChangeKind = "removed"
)

// Change describes one registration or removal
type Change struct {
	Kind ChangeKind
	Name string
}

// Registry is a generic, thread-safe registry for storing and retrieving
// items by name
type Registry[T any] interface {
	// Register adds an item to the registry
	Register(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Remove removes an item from the registry
	Remove(name string) error

	// List returns all registered names in registration order
	List() []string

	// Items returns all registered items in registration order
	Items() []T

	// Has checks if an item is registered
	Has(name string) bool

	// Clear removes all items from the registry
	Clear()

	// Count returns the number of registered items
	Count() int

	// OnChange connects a handler called after every registration and
	// removal
	OnChange(handler func(Change)) *signal.Connection
}

type entry[T any] struct {
	name string
	item T
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	mu      sync.RWMutex
	entries slotmap.Map[entry[T]]
	index   map[string]slotmap.Key
	changed *signal.Signal[Change, signal.Void]
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		index:   make(map[string]slotmap.Key),
		changed: signal.NewVoid[Change](signal.WithName("registry.changed")),
	}
}

// Register adds an item to the registry
func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	if _, exists := r.index[name]; exists {
		r.mu.Unlock()
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}
	r.index[name] = r.entries.Insert(entry[T]{name: name, item: item})
	r.mu.Unlock()

	r.changed.Emit(Change{Kind: Registered, Name: name})
	return nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if key, exists := r.index[name]; exists {
		if e, ok := r.entries.Get(key); ok {
			return e.item, nil
		}
	}

	var zero T
	return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
}

// Remove removes an item from the registry
func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	key, exists := r.index[name]
	if !exists {
		r.mu.Unlock()
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	delete(r.index, name)
	r.entries.Remove(key)
	r.mu.Unlock()

	r.changed.Emit(Change{Kind: Removed, Name: name})
	return nil
}

// List returns all registered names in registration order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, r.entries.Len())
	for _, e := range r.entries.All() {
		names = append(names, e.name)
	}
	return names
}

// Items returns all registered items in registration order
func (r *registry[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, r.entries.Len())
	for _, e := range r.entries.All() {
		items = append(items, e.item)
	}
	return items
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.index[name]
	return exists
}

// Clear removes all items from the registry, announcing each removal
func (r *registry[T]) Clear() {
	names := r.List()
	for _, name := range names {
		_ = r.Remove(name)
	}
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entries.Len()
}

// OnChange connects handler to the registry's change signal
func (r *registry[T]) OnChange(handler func(Change)) *signal.Connection {
	return signal.ConnectVoid(r.changed, handler)
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet retrieves an item and panics if not found
// This is useful when the item must exist
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
