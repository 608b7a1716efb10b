package entity

import (
	"github.com/google/uuid"
)

// Registry holds the entities of one level, keyed by ID and iterated in spawn order.
type Registry struct {
	byID  map[ID]*Entity
	order []ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[ID]*Entity),
	}
}

// Spawn adds an entity and returns its new ID. Any ID already set on e is replaced.
func (r *Registry) Spawn(e Entity) ID {
	e.ID = uuid.New()
	r.byID[e.ID] = &e
	r.order = append(r.order, e.ID)
	return e.ID
}

// Get returns the entity with the given ID, or nil if not found.
func (r *Registry) Get(id ID) *Entity {
	return r.byID[id]
}

// Remove deletes an entity. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id ID) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// All returns every entity in spawn order.
func (r *Registry) All() []*Entity {
	return r.Filter(func(*Entity) bool { return true })
}

// Filter returns the entities for which keep returns true, in spawn order.
func (r *Registry) Filter(keep func(*Entity) bool) []*Entity {
	result := make([]*Entity, 0, len(r.order))
	for _, id := range r.order {
		if e := r.byID[id]; keep(e) {
			result = append(result, e)
		}
	}
	return result
}

// Player returns the first player entity, or nil if there is none.
func (r *Registry) Player() *Entity {
	players := r.Filter(func(e *Entity) bool { return e.Kind == KindPlayer })
	if len(players) == 0 {
		return nil
	}
	return players[0]
}

// Count returns the number of entities in the registry.
func (r *Registry) Count() int {
	return len(r.order)
}
