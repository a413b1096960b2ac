package engine

import "reflect"

// storage is the type-erased view of a component column
type storage interface {
	Has(e Entity) bool
	Remove(e Entity) bool
	Len() int
	All() []Entity
	Clear()
	Type() reflect.Type
}

// Store is a sparse-set column for component type T.
// sparse maps a slot index to its dense position, dense entities and values stay packed for iteration.
type Store[T any] struct {
	sparse   []int32
	entities []Entity
	values   []T
}

const absent = -1

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		entities: make([]Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

func (s *Store[T]) denseIndex(e Entity) int {
	idx := int(e.Index())
	if idx >= len(s.sparse) {
		return absent
	}
	d := int(s.sparse[idx])
	if d == absent || s.entities[d] != e {
		return absent
	}
	return d
}

// Set inserts or replaces the component for an entity
func (s *Store[T]) Set(e Entity, val T) {
	if d := s.denseIndex(e); d != absent {
		s.values[d] = val
		return
	}
	idx := int(e.Index())
	for len(s.sparse) <= idx {
		s.sparse = append(s.sparse, absent)
	}
	// A stale handle in the same slot is overwritten
	if old := s.sparse[idx]; old != absent {
		s.removeDense(int(old))
	}
	s.sparse[idx] = int32(len(s.entities))
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get returns a copy of the component, false for missing or stale handles
func (s *Store[T]) Get(e Entity) (T, bool) {
	if d := s.denseIndex(e); d != absent {
		return s.values[d], true
	}
	var zero T
	return zero, false
}

// Ptr returns the address of the stored component, valid until the next insert or remove
func (s *Store[T]) Ptr(e Entity) *T {
	if d := s.denseIndex(e); d != absent {
		return &s.values[d]
	}
	return nil
}

// Has checks if entity has this component
func (s *Store[T]) Has(e Entity) bool {
	return s.denseIndex(e) != absent
}

// Remove deletes the component of an entity with swap-remove
func (s *Store[T]) Remove(e Entity) bool {
	d := s.denseIndex(e)
	if d == absent {
		return false
	}
	s.removeDense(d)
	return true
}

func (s *Store[T]) removeDense(d int) {
	last := len(s.entities) - 1
	removed := s.entities[d]
	if d != last {
		moved := s.entities[last]
		s.entities[d] = moved
		s.values[d] = s.values[last]
		s.sparse[moved.Index()] = int32(d)
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	s.sparse[removed.Index()] = absent
}

// Len returns number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// All returns a snapshot of the entities with this component
func (s *Store[T]) All() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	clear(s.values)
	s.sparse = s.sparse[:0]
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}

func (s *Store[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}
