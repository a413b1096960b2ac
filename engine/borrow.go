package engine

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// storageKind separates component columns from unique resources of the same Go type
type storageKind uint8

const (
	kindComponent storageKind = iota
	kindUnique
	kindAll
)

type storageKey struct {
	kind storageKind
	typ  reflect.Type
}

func (k storageKey) String() string {
	switch k.kind {
	case kindComponent:
		return "component " + k.typ.String()
	case kindUnique:
		return "unique " + k.typ.String()
	default:
		return "all storages"
	}
}

// BorrowMode is shared (many readers) or exclusive (one writer)
type BorrowMode uint8

const (
	Shared BorrowMode = iota
	Exclusive
)

func (m BorrowMode) String() string {
	if m == Exclusive {
		return "exclusive"
	}
	return "shared"
}

// Access is one storage borrow a system declares
type Access struct {
	key  storageKey
	mode BorrowMode
}

func (a Access) String() string {
	return fmt.Sprintf("%s %s", a.mode, a.key)
}

// Reads declares shared access to the component column of T
func Reads[T any]() Access {
	return Access{storageKey{kindComponent, reflect.TypeFor[T]()}, Shared}
}

// Writes declares exclusive access to the component column of T
func Writes[T any]() Access {
	return Access{storageKey{kindComponent, reflect.TypeFor[T]()}, Exclusive}
}

// ReadsUnique declares shared access to the unique of type T
func ReadsUnique[T any]() Access {
	return Access{storageKey{kindUnique, reflect.TypeFor[T]()}, Shared}
}

// WritesUnique declares exclusive access to the unique of type T
func WritesUnique[T any]() Access {
	return Access{storageKey{kindUnique, reflect.TypeFor[T]()}, Exclusive}
}

// AllStorages declares exclusive access to every column, every unique and the entity set.
// Required to delete entities or add and remove uniques from inside a system.
func AllStorages() Access {
	return Access{storageKey{kind: kindAll}, Exclusive}
}

// accessSet is a validated, conflict-free declaration list
type accessSet struct {
	owner string
	all   bool
	modes map[storageKey]BorrowMode
}

// newAccessSet rejects a declaration list that borrows the same storage twice in conflicting modes
func newAccessSet(owner string, accesses []Access) (*accessSet, error) {
	set := &accessSet{owner: owner, modes: make(map[storageKey]BorrowMode, len(accesses))}
	for _, a := range accesses {
		if a.key.kind == kindAll {
			set.all = true
			continue
		}
		if prev, ok := set.modes[a.key]; ok && (prev == Exclusive || a.mode == Exclusive) {
			return nil, errors.Wrapf(ErrBorrowConflict, "%s: %s declared twice", owner, a.key)
		}
		set.modes[a.key] = a.mode
	}
	if set.all && len(set.modes) > 0 {
		return nil, errors.Wrapf(ErrBorrowConflict, "%s: all storages combined with individual borrows", owner)
	}
	return set, nil
}

func (s *accessSet) permits(k storageKey, m BorrowMode) bool {
	if s.all {
		return true
	}
	declared, ok := s.modes[k]
	return ok && declared >= m
}

// borrowState counts the outstanding borrows of one storage
type borrowState struct {
	shared    int
	exclusive bool
}

// borrowTable tracks every borrow currently held, pipeline or embedder
type borrowTable struct {
	all     int
	states  map[storageKey]*borrowState
	holders int
}

func newBorrowTable() *borrowTable {
	return &borrowTable{states: make(map[storageKey]*borrowState)}
}

// acquire takes every borrow of the set or none of them
func (t *borrowTable) acquire(set *accessSet) (func(), error) {
	if t.all > 0 {
		return nil, errors.Wrapf(ErrBorrowConflict, "%s: all storages are exclusively borrowed", set.owner)
	}
	if set.all {
		if t.holders > 0 {
			return nil, errors.Wrapf(ErrBorrowConflict, "%s: all storages requested while %d borrows are held", set.owner, t.holders)
		}
		t.all++
		t.holders++
		return func() {
			t.all--
			t.holders--
		}, nil
	}

	for k, m := range set.modes {
		st, ok := t.states[k]
		if !ok {
			continue
		}
		if st.exclusive || (m == Exclusive && st.shared > 0) {
			return nil, errors.Wrapf(ErrBorrowConflict, "%s: %s %s already borrowed", set.owner, m, k)
		}
	}

	for k, m := range set.modes {
		st, ok := t.states[k]
		if !ok {
			st = &borrowState{}
			t.states[k] = st
		}
		if m == Exclusive {
			st.exclusive = true
		} else {
			st.shared++
		}
	}
	t.holders++

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for k, m := range set.modes {
			st := t.states[k]
			if m == Exclusive {
				st.exclusive = false
			} else {
				st.shared--
			}
			if !st.exclusive && st.shared == 0 {
				delete(t.states, k)
			}
		}
		t.holders--
	}, nil
}

// Borrow takes borrows outside of any workload, e.g. a frontend reading the framebuffer while
// another component holds state. The returned release must be called once.
// A workload run while the borrow is held fails with ErrBorrowConflict on the first overlapping system.
func Borrow(w *World, accesses ...Access) (release func(), err error) {
	set, err := newAccessSet("borrow", accesses)
	if err != nil {
		return nil, err
	}
	return w.borrows.acquire(set)
}
