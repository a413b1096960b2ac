package engine

import (
	"reflect"
	"slices"

	"github.com/pkg/errors"
)

// World owns the entity set, one column per component type, the unique resources and the workloads.
// It is single-threaded: workloads run to completion on the caller's goroutine.
type World struct {
	entities entityAllocator
	stores   map[reflect.Type]storage
	uniques  map[reflect.Type]any

	borrows   *borrowTable
	workloads map[string]*workload

	// current is the access set of the running system, nil outside a workload
	current   *accessSet
	openQuery int
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		stores:    make(map[reflect.Type]storage),
		uniques:   make(map[reflect.Type]any),
		borrows:   newBorrowTable(),
		workloads: make(map[string]*workload),
	}
}

// storeFor returns the column of T, creating it on first use
func storeFor[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	return s
}

// checkAccess panics when the running system did not declare k with at least mode m
func (w *World) checkAccess(k storageKey, m BorrowMode) {
	if w.current == nil || w.current.permits(k, m) {
		return
	}
	panic(errors.Wrapf(ErrUndeclaredAccess, "system %s: %s %s", w.current.owner, m, k))
}

func (w *World) checkAllStorages(op string) {
	if w.current == nil || w.current.all {
		return
	}
	panic(errors.Wrapf(ErrUndeclaredAccess, "system %s: %s requires all storages", w.current.owner, op))
}

// Part is one component of a spawn bundle, build with With
type Part interface {
	componentType() reflect.Type
	insert(w *World, e Entity)
}

type part[T any] struct {
	value T
}

func (p part[T]) componentType() reflect.Type { return reflect.TypeFor[T]() }

func (p part[T]) insert(w *World, e Entity) { storeFor[T](w).Set(e, p.value) }

// With wraps a component value for Spawn
func With[T any](value T) Part {
	return part[T]{value: value}
}

// Spawn creates an entity with the given components and returns its handle.
// Panics if two parts share a component type.
func (w *World) Spawn(parts ...Part) Entity {
	sig := signature(parts)
	for i := 1; i < len(sig); i++ {
		if sig[i] == sig[i-1] {
			panic("engine: duplicate component type in spawn: " + sig[i].String())
		}
	}
	for _, p := range parts {
		w.checkAccess(storageKey{kindComponent, p.componentType()}, Exclusive)
	}

	e := w.entities.allocate()
	for _, p := range parts {
		p.insert(w, e)
	}
	return e
}

// SpawnBulk creates one entity per row, every row must carry the same component set
func (w *World) SpawnBulk(rows [][]Part) ([]Entity, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	first := signature(rows[0])
	for i, row := range rows[1:] {
		if !slices.Equal(first, signature(row)) {
			return nil, errors.Wrapf(ErrSignatureMismatch, "row %d", i+1)
		}
	}

	out := make([]Entity, 0, len(rows))
	for _, row := range rows {
		out = append(out, w.Spawn(row...))
	}
	return out, nil
}

func signature(parts []Part) []reflect.Type {
	sig := make([]reflect.Type, len(parts))
	for i, p := range parts {
		sig[i] = p.componentType()
	}
	slices.SortFunc(sig, func(a, b reflect.Type) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return sig
}

// Delete removes the entity and all of its components in one step.
// Returns false for stale or unknown handles. Panics inside an open query iteration.
func (w *World) Delete(e Entity) bool {
	w.checkAllStorages("delete")
	if w.openQuery > 0 {
		panic(errors.Wrapf(ErrQueryOpen, "%s", e))
	}
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.release(e)
}

// Alive reports whether the handle still refers to a live entity
func (w *World) Alive(e Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.entities.count
}

// Clear removes all entities and components, uniques and workloads are kept.
// Previously issued handles stay stale forever.
func (w *World) Clear() {
	w.checkAllStorages("clear")
	if w.openQuery > 0 {
		panic(errors.Wrap(ErrQueryOpen, "clear"))
	}
	for _, s := range w.stores {
		s.Clear()
	}
	w.entities.releaseAll()
}
