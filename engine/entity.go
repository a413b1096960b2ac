package engine

import "fmt"

// Entity is a generation-checked slot handle: slot index in the low 32 bits, generation in the high 32.
// Generations start at 1 so the zero Entity never resolves.
type Entity uint64

// NoEntity is the zero handle
const NoEntity Entity = 0

func newEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the slot generation the handle was issued with
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d@%d)", e.Index(), e.Generation())
}

// entityAllocator hands out slots and recycles freed ones with a bumped generation
type entityAllocator struct {
	generations []uint32
	alive       []bool
	free        []uint32
	count       int
}

func (a *entityAllocator) allocate() Entity {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.generations))
		a.generations = append(a.generations, 1)
		a.alive = append(a.alive, false)
	}
	a.alive[idx] = true
	a.count++
	return newEntity(idx, a.generations[idx])
}

func (a *entityAllocator) isAlive(e Entity) bool {
	idx := e.Index()
	return int(idx) < len(a.generations) && a.alive[idx] && a.generations[idx] == e.Generation()
}

func (a *entityAllocator) bump(idx uint32) {
	a.alive[idx] = false
	a.generations[idx]++
	if a.generations[idx] == 0 {
		a.generations[idx] = 1
	}
}

// release frees the slot, any handle carrying the old generation becomes stale
func (a *entityAllocator) release(e Entity) bool {
	if !a.isAlive(e) {
		return false
	}
	a.bump(e.Index())
	a.free = append(a.free, e.Index())
	a.count--
	return true
}

// releaseAll frees every live slot
func (a *entityAllocator) releaseAll() {
	a.free = a.free[:0]
	for i := len(a.generations) - 1; i >= 0; i-- {
		if a.alive[i] {
			a.bump(uint32(i))
		}
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
}
