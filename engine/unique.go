package engine

import (
	"reflect"

	"github.com/pkg/errors"
)

// Uniques are process-wide singletons keyed by their Go type.
// They are stored by pointer so exclusive access mutates in place.

// AddUnique registers or replaces the unique of type T
func AddUnique[T any](w *World, value T) {
	w.checkAllStorages("add unique")
	p := new(T)
	*p = value
	w.uniques[reflect.TypeFor[T]()] = p
}

// RemoveUnique drops the unique of type T, reports whether it existed
func RemoveUnique[T any](w *World) bool {
	w.checkAllStorages("remove unique")
	t := reflect.TypeFor[T]()
	_, ok := w.uniques[t]
	delete(w.uniques, t)
	return ok
}

// HasUnique reports whether the unique of type T exists, it is not a borrow
func HasUnique[T any](w *World) bool {
	_, ok := w.uniques[reflect.TypeFor[T]()]
	return ok
}

// Unique returns a copy of the unique of type T through a shared borrow
// Returns the zero value of T and false if not found
func Unique[T any](w *World) (T, bool) {
	t := reflect.TypeFor[T]()
	w.checkAccess(storageKey{kindUnique, t}, Shared)
	if p, ok := w.uniques[t]; ok {
		return *p.(*T), true
	}
	var zero T
	return zero, false
}

// UniqueMut returns the unique of type T through an exclusive borrow, nil if not found
func UniqueMut[T any](w *World) (*T, bool) {
	t := reflect.TypeFor[T]()
	w.checkAccess(storageKey{kindUnique, t}, Exclusive)
	if p, ok := w.uniques[t]; ok {
		return p.(*T), true
	}
	return nil, false
}

// MustUnique retrieves a unique or panics if missing
// Useful for core uniques (time, viewport) the pipeline cannot run without
func MustUnique[T any](w *World) T {
	v, ok := Unique[T](w)
	if !ok {
		panic(errors.Wrap(ErrMissingUnique, reflect.TypeFor[T]().String()))
	}
	return v
}

// MustUniqueMut is the exclusive counterpart of MustUnique
func MustUniqueMut[T any](w *World) *T {
	v, ok := UniqueMut[T](w)
	if !ok {
		panic(errors.Wrap(ErrMissingUnique, reflect.TypeFor[T]().String()))
	}
	return v
}

// ClearUniques drops every unique except the listed keep types
func ClearUniques(w *World, keep ...reflect.Type) {
	w.checkAllStorages("clear uniques")
	for t := range w.uniques {
		retained := false
		for _, k := range keep {
			if k == t {
				retained = true
				break
			}
		}
		if !retained {
			delete(w.uniques, t)
		}
	}
}
