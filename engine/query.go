package engine

import "sort"

// Queryable is a borrowed view usable as a query filter
type Queryable interface {
	queryable() storage
}

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	world    *World
	stores   []storage
	executed bool
	results  []Entity
}

// Query creates a new QueryBuilder over views the caller already borrowed.
//
// Example:
//
//	positions := engine.ViewMutOf[component.Position](w)
//	velocities := engine.ViewOf[component.Velocity](w)
//	w.Query().With(positions).With(velocities).Each(func(e engine.Entity) { ... })
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]storage, 0, 4),
	}
}

// With adds a view to the inner join
// Panics if called after Execute().
func (qb *QueryBuilder) With(v Queryable) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, v.queryable())
	return qb
}

// Execute returns a snapshot of the entities present in every joined store.
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		qb.results = qb.stores[0].All()
		return qb.results
	}

	// Starting with the smallest store minimizes the number of Has() checks
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Len() < qb.stores[j].Len()
	})

	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}

// Each visits the join result. Entity deletion is forbidden until it returns;
// queue deletions and apply them after the iteration.
func (qb *QueryBuilder) Each(fn func(e Entity)) {
	results := qb.Execute()
	qb.world.openQuery++
	defer func() { qb.world.openQuery-- }()
	for _, e := range results {
		fn(e)
	}
}
