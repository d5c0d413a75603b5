package ecs

import "iter"

// A query wraps a view with an entity-ID cache for repeated iteration.
// Execute snapshots the IDs matching the join; Each then walks the snapshot,
// re-fetching component pointers and skipping entities whose membership
// changed since. The Scheduler calls Execute on a system's query fields
// before each run.

// Query caches a single-column view.
type Query[A any] struct {
	view     View[A]
	entities []EntityID
	valid    bool
}

// NewQuery creates a query over A's column.
func NewQuery[A any](w *World) *Query[A] {
	q := &Query[A]{}
	q.Init(w)
	return q
}

// Init wires the query to a world. Called by the Scheduler for query fields
// on registered systems.
func (q *Query[A]) Init(w *World) {
	q.view.Init(w)
	q.entities = nil
	q.valid = false
}

// Execute rebuilds the entity snapshot.
func (q *Query[A]) Execute() {
	q.entities = q.entities[:0]
	q.view.Each(func(e EntityID, _ *A) {
		q.entities = append(q.entities, e)
	})
	q.valid = true
}

// Count returns the size of the current snapshot.
// Panics if Execute has not run.
func (q *Query[A]) Count() int {
	if !q.valid {
		panic("Query.Count called before Query.Execute")
	}
	return len(q.entities)
}

// Each visits the snapshot. Panics if Execute has not run.
func (q *Query[A]) Each(fn func(e EntityID, a *A)) {
	if !q.valid {
		panic("Query.Each called before Query.Execute")
	}
	for _, e := range q.entities {
		if a := q.view.col.get(e); a != nil {
			fn(e, a)
		}
	}
}

// Iter returns an iterator over the snapshot.
// Panics if Execute has not run.
func (q *Query[A]) Iter() iter.Seq2[EntityID, *A] {
	if !q.valid {
		panic("Query.Iter called before Query.Execute")
	}
	return func(yield func(EntityID, *A) bool) {
		for _, e := range q.entities {
			if a := q.view.col.get(e); a != nil {
				if !yield(e, a) {
					return
				}
			}
		}
	}
}

// Query2 caches a two-column join.
type Query2[A, B any] struct {
	view     View2[A, B]
	entities []EntityID
	valid    bool
}

// NewQuery2 creates a query over the intersection of A's and B's columns.
func NewQuery2[A, B any](w *World) *Query2[A, B] {
	q := &Query2[A, B]{}
	q.Init(w)
	return q
}

func (q *Query2[A, B]) Init(w *World) {
	q.view.Init(w)
	q.entities = nil
	q.valid = false
}

// Execute rebuilds the entity snapshot.
func (q *Query2[A, B]) Execute() {
	q.entities = q.entities[:0]
	q.view.Each(func(e EntityID, _ *A, _ *B) {
		q.entities = append(q.entities, e)
	})
	q.valid = true
}

// Count returns the size of the current snapshot.
// Panics if Execute has not run.
func (q *Query2[A, B]) Count() int {
	if !q.valid {
		panic("Query2.Count called before Query2.Execute")
	}
	return len(q.entities)
}

// Each visits the snapshot. Panics if Execute has not run.
func (q *Query2[A, B]) Each(fn func(e EntityID, a *A, b *B)) {
	if !q.valid {
		panic("Query2.Each called before Query2.Execute")
	}
	for _, e := range q.entities {
		a := q.view.ca.get(e)
		if a == nil {
			continue
		}
		b := q.view.cb.get(e)
		if b == nil {
			continue
		}
		fn(e, a, b)
	}
}

// Query3 caches a three-column join.
type Query3[A, B, C any] struct {
	view     View3[A, B, C]
	entities []EntityID
	valid    bool
}

// NewQuery3 creates a query over the intersection of three columns.
func NewQuery3[A, B, C any](w *World) *Query3[A, B, C] {
	q := &Query3[A, B, C]{}
	q.Init(w)
	return q
}

func (q *Query3[A, B, C]) Init(w *World) {
	q.view.Init(w)
	q.entities = nil
	q.valid = false
}

// Execute rebuilds the entity snapshot.
func (q *Query3[A, B, C]) Execute() {
	q.entities = q.entities[:0]
	q.view.Each(func(e EntityID, _ *A, _ *B, _ *C) {
		q.entities = append(q.entities, e)
	})
	q.valid = true
}

// Count returns the size of the current snapshot.
// Panics if Execute has not run.
func (q *Query3[A, B, C]) Count() int {
	if !q.valid {
		panic("Query3.Count called before Query3.Execute")
	}
	return len(q.entities)
}

// Each visits the snapshot. Panics if Execute has not run.
func (q *Query3[A, B, C]) Each(fn func(e EntityID, a *A, b *B, c *C)) {
	if !q.valid {
		panic("Query3.Each called before Query3.Execute")
	}
	for _, e := range q.entities {
		a := q.view.ca.get(e)
		if a == nil {
			continue
		}
		b := q.view.cb.get(e)
		if b == nil {
			continue
		}
		c := q.view.cc.get(e)
		if c == nil {
			continue
		}
		fn(e, a, b, c)
	}
}
