package engine

import (
	"github.com/pkg/errors"
)

// System is one step of a workload. Access lists every storage Run touches;
// the world rejects conflicting declarations at build time and undeclared access at run time.
type System interface {
	Name() string
	Access() []Access
	Run(w *World)
}

type workload struct {
	name    string
	systems []System
	access  []*accessSet
}

// WorkloadBuilder collects systems in execution order
type WorkloadBuilder struct {
	name    string
	systems []System
}

// NewWorkload starts a named workload, systems run strictly in the order they are added
func NewWorkload(name string) *WorkloadBuilder {
	return &WorkloadBuilder{name: name}
}

// With appends systems to the workload
func (b *WorkloadBuilder) With(systems ...System) *WorkloadBuilder {
	b.systems = append(b.systems, systems...)
	return b
}

// Add validates every system's declarations and registers the workload on the world
func (b *WorkloadBuilder) Add(w *World) error {
	if _, exists := w.workloads[b.name]; exists {
		return errors.Wrap(ErrDuplicateWorkload, b.name)
	}
	wl := &workload{name: b.name, systems: b.systems, access: make([]*accessSet, len(b.systems))}
	for i, s := range b.systems {
		set, err := newAccessSet(b.name+"/"+s.Name(), s.Access())
		if err != nil {
			return err
		}
		wl.access[i] = set
	}
	w.workloads[b.name] = wl
	return nil
}

// RunWorkload runs every system of the named workload once, in registration order.
// Each system holds its borrows only while it runs. A conflict with a borrow still held
// elsewhere aborts the workload before that system runs.
func (w *World) RunWorkload(name string) error {
	wl, ok := w.workloads[name]
	if !ok {
		return errors.Wrap(ErrUnknownWorkload, name)
	}
	for i, s := range wl.systems {
		if err := w.runSystem(s, wl.access[i]); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) runSystem(s System, set *accessSet) error {
	release, err := w.borrows.acquire(set)
	if err != nil {
		return err
	}
	prev := w.current
	w.current = set
	defer func() {
		w.current = prev
		release()
	}()
	s.Run(w)
	return nil
}

// Workloads returns the system names of a workload in execution order
func (w *World) Workloads(name string) []string {
	wl, ok := w.workloads[name]
	if !ok {
		return nil
	}
	names := make([]string, len(wl.systems))
	for i, s := range wl.systems {
		names[i] = s.Name()
	}
	return names
}
