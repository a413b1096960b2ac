package engine

// View is a shared borrow of the component column of T
type View[T any] struct {
	store *Store[T]
}

// ViewOf borrows the column of T for reading
func ViewOf[T any](w *World) View[T] {
	s := storeFor[T](w)
	w.checkAccess(storageKey{kindComponent, s.Type()}, Shared)
	return View[T]{store: s}
}

// Get returns a copy of the component of e
func (v View[T]) Get(e Entity) (T, bool) { return v.store.Get(e) }

func (v View[T]) Has(e Entity) bool { return v.store.Has(e) }

func (v View[T]) Len() int { return v.store.Len() }

func (v View[T]) queryable() storage { return v.store }

// ViewMut is an exclusive borrow of the component column of T
type ViewMut[T any] struct {
	world *World
	store *Store[T]
}

// ViewMutOf borrows the column of T for writing
func ViewMutOf[T any](w *World) ViewMut[T] {
	s := storeFor[T](w)
	w.checkAccess(storageKey{kindComponent, s.Type()}, Exclusive)
	return ViewMut[T]{world: w, store: s}
}

// Get returns the stored component for in-place mutation, nil if e lacks it
func (v ViewMut[T]) Get(e Entity) *T { return v.store.Ptr(e) }

// Value returns a copy of the component of e
func (v ViewMut[T]) Value(e Entity) (T, bool) { return v.store.Get(e) }

// Set attaches or replaces the component of a live entity, stale handles are ignored
func (v ViewMut[T]) Set(e Entity, val T) bool {
	if !v.world.Alive(e) {
		return false
	}
	v.store.Set(e, val)
	return true
}

func (v ViewMut[T]) Has(e Entity) bool { return v.store.Has(e) }

func (v ViewMut[T]) Len() int { return v.store.Len() }

func (v ViewMut[T]) queryable() storage { return v.store }
