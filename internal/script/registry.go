package script

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gamescript/internal/game"
)

// IDSFunc checks one IDS field value against an actor.
type IDSFunc func(a *game.Actor, value int) bool

// ObjectFilter transforms a target set. It may modify params in place or
// return a different set.
type ObjectFilter func(r *Resolver, sender game.Scriptable, params *Targets, flags game.GAFlags) *Targets

// Registry holds the IDS checks and object filters available to a Resolver.
type Registry struct {
	ids     map[IDSField]IDSFunc
	filters map[FilterID]ObjectFilter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ids:     make(map[IDSField]IDSFunc),
		filters: make(map[FilterID]ObjectFilter),
	}
}

// NewDefaultRegistry returns a registry with every built-in IDS check and
// object filter. It panics if the built-in tables fail to register.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := r.registerAll(defaultIDSFuncs(), defaultFilters()); err != nil {
		panic(fmt.Sprintf("registering built-in script functions: %v", err))
	}
	return r
}

func (r *Registry) registerAll(ids map[IDSField]IDSFunc, filters map[FilterID]ObjectFilter) error {
	el := errors.NewErrorList()
	for field, fn := range ids {
		el.Add(r.RegisterIDS(field, fn))
	}
	for id, fn := range filters {
		el.Add(r.RegisterFilter(id, fn))
	}
	return el.Err()
}

// RegisterIDS adds the check for an IDS field.
func (r *Registry) RegisterIDS(field IDSField, fn IDSFunc) error {
	if field < 0 || int(field) >= ObjectIDSCount {
		return fmt.Errorf("ids field %d out of range", int(field))
	}
	if fn == nil {
		return fmt.Errorf("ids function cannot be nil")
	}
	if _, exists := r.ids[field]; exists {
		return fmt.Errorf("ids field %q already registered", field)
	}
	r.ids[field] = fn
	return nil
}

// RegisterFilter adds an object filter.
func (r *Registry) RegisterFilter(id FilterID, fn ObjectFilter) error {
	if id <= 0 {
		return fmt.Errorf("filter id must be positive")
	}
	if fn == nil {
		return fmt.Errorf("object filter cannot be nil")
	}
	if _, exists := r.filters[id]; exists {
		return fmt.Errorf("object filter %q already registered", id)
	}
	r.filters[id] = fn
	return nil
}

func (r *Registry) idsFunc(field IDSField) (IDSFunc, bool) {
	fn, ok := r.ids[field]
	return fn, ok
}

func (r *Registry) filter(id FilterID) (ObjectFilter, bool) {
	fn, ok := r.filters[id]
	return fn, ok
}
