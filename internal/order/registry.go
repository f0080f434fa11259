package order

import (
	"sort"
	"sync"

	"github.com/agbru/coffeemachine/internal/beverage"
	apperrors "github.com/agbru/coffeemachine/internal/errors"
	"github.com/agbru/coffeemachine/internal/recipe"
)

// Constructor builds a fresh Order each time it is called.
type Constructor func() Order

// Registry maps beverage names to order constructors. Registering a name
// twice replaces the earlier constructor. It is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// NewDefaultRegistry returns a registry seeded with coffee and tea, whose
// beverages run on steps.
func NewDefaultRegistry(steps beverage.Steps) *Registry {
	r := NewRegistry()
	r.Register("coffee", BeverageConstructor("coffee", recipe.Coffee, steps))
	r.Register("tea", BeverageConstructor("tea", recipe.Tea, steps))
	return r
}

// Register inserts or overwrites the constructor for name.
func (r *Registry) Register(name string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = c
}

// Create invokes the constructor registered under name and returns its
// order wrapped in a Ticket. An unknown name, a nil constructor or a nil
// constructed order yields a NotFoundError.
func (r *Registry) Create(name string) (Order, error) {
	r.mu.RLock()
	c, ok := r.constructors[name]
	r.mu.RUnlock()
	if !ok || c == nil {
		return nil, apperrors.NotFoundError{Name: name}
	}

	o := c()
	if o == nil {
		return nil, apperrors.NotFoundError{Name: name}
	}
	return NewTicket(name, o), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[name]
	return ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.constructors)
}

// BeverageConstructor returns a constructor building a new Beverage from rec
// on every call, so no two orders share preparation state.
func BeverageConstructor(name string, rec recipe.Recipe, steps beverage.Steps) Constructor {
	return func() Order {
		return FromBeverage(beverage.New(name, rec, beverage.WithSteps(steps)))
	}
}
