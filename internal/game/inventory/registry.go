package inventory

import (
	"fmt"
	"sort"
)

// Registry holds all loaded item definitions indexed by ID. It interns definitions so
// that every ItemInstance of the same item shares one *ItemDef.
type Registry struct {
	items map[string]*ItemDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*ItemDef)}
}

// Register validates d and adds it to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if d is invalid or
// d.ID is already registered.
func (r *Registry) Register(d *ItemDef) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.Register: %w", err)
	}
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.Register: item ID %q already registered", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

// LoadDir loads every item definition in dir and registers it.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns the number of registered items, or the first error.
func (r *Registry) LoadDir(dir string) (int, error) {
	defs, err := LoadItems(dir)
	if err != nil {
		return 0, err
	}
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return 0, err
		}
	}
	return len(defs), nil
}

// Item returns the ItemDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// All returns every registered definition sorted by ID.
func (r *Registry) All() []*ItemDef {
	out := make([]*ItemDef, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.items)
}
