package ecs

import "iter"

// A view joins one column per component type and visits every entity present
// in all of them. Joins iterate the smallest participating column and probe
// the rest, so cost scales with the rarest component. Iteration order is the
// smallest column's dense order and nothing stronger: swap-remove and sort
// reorder it freely between calls.
//
// Views must not structurally mutate a participating column mid-iteration
// (add, remove, destroy, sort); the engine does not detect it. Overwriting
// values through the yielded pointers is fine.

// View iterates a single column. The one-column case is a guaranteed
// sequential scan of the dense buffer.
type View[A any] struct {
	col *Column[A]
}

// NewView creates a view over A's column, registering the type on demand.
func NewView[A any](w *World) *View[A] {
	v := &View[A]{}
	v.Init(w)
	return v
}

// Init wires the view to a world. Called by the Scheduler for view fields on
// registered systems.
func (v *View[A]) Init(w *World) {
	v.col = columnFor[A](&w.registry)
}

// Each invokes fn for every entity carrying an A.
func (v *View[A]) Each(fn func(e EntityID, a *A)) {
	if v.col == nil {
		return
	}
	for i := 0; i < len(v.col.data); i++ {
		fn(v.col.entities[i], &v.col.data[i])
	}
}

// All returns an iterator over the column in dense order.
func (v *View[A]) All() iter.Seq2[EntityID, *A] {
	return func(yield func(EntityID, *A) bool) {
		if v.col == nil {
			return
		}
		for i := 0; i < len(v.col.data); i++ {
			if !yield(v.col.entities[i], &v.col.data[i]) {
				return
			}
		}
	}
}

// Count returns the number of entities the view would visit.
func (v *View[A]) Count() int {
	if v.col == nil {
		return 0
	}
	return v.col.count()
}

// View2 joins two columns.
type View2[A, B any] struct {
	world *World
	ca    *Column[A]
	cb    *Column[B]
	ids   [2]ComponentID
}

// NewView2 creates a view over the intersection of A's and B's columns.
func NewView2[A, B any](w *World) *View2[A, B] {
	v := &View2[A, B]{}
	v.Init(w)
	return v
}

func (v *View2[A, B]) Init(w *World) {
	v.world = w
	v.ids[0] = registerComponent[A](&w.registry)
	v.ids[1] = registerComponent[B](&w.registry)
	v.ca, v.cb = nil, nil
	if v.ids[0] != InvalidComponent && v.ids[1] != InvalidComponent {
		v.ca = w.registry.columns[v.ids[0]].(*Column[A])
		v.cb = w.registry.columns[v.ids[1]].(*Column[B])
	}
}

// Each invokes fn for every entity carrying both an A and a B.
func (v *View2[A, B]) Each(fn func(e EntityID, a *A, b *B)) {
	if v.ca == nil {
		return
	}
	s := v.world.registry.smallestColumn(v.ids[:])
	for i := 0; i < s.count(); i++ {
		e := s.entityAt(i)
		a := v.ca.get(e)
		if a == nil {
			continue
		}
		b := v.cb.get(e)
		if b == nil {
			continue
		}
		fn(e, a, b)
	}
}

// All returns an iterator over the join. The yielded struct holds pointers
// into both columns.
func (v *View2[A, B]) All() iter.Seq2[EntityID, Row2[A, B]] {
	return func(yield func(EntityID, Row2[A, B]) bool) {
		if v.ca == nil {
			return
		}
		s := v.world.registry.smallestColumn(v.ids[:])
		for i := 0; i < s.count(); i++ {
			e := s.entityAt(i)
			a := v.ca.get(e)
			if a == nil {
				continue
			}
			b := v.cb.get(e)
			if b == nil {
				continue
			}
			if !yield(e, Row2[A, B]{A: a, B: b}) {
				return
			}
		}
	}
}

// Row2 is one joined result of a two-column view.
type Row2[A, B any] struct {
	A *A
	B *B
}

// View3 joins three columns.
type View3[A, B, C any] struct {
	world *World
	ca    *Column[A]
	cb    *Column[B]
	cc    *Column[C]
	ids   [3]ComponentID
}

// NewView3 creates a view over the intersection of three columns.
func NewView3[A, B, C any](w *World) *View3[A, B, C] {
	v := &View3[A, B, C]{}
	v.Init(w)
	return v
}

func (v *View3[A, B, C]) Init(w *World) {
	v.world = w
	v.ids[0] = registerComponent[A](&w.registry)
	v.ids[1] = registerComponent[B](&w.registry)
	v.ids[2] = registerComponent[C](&w.registry)
	v.ca, v.cb, v.cc = nil, nil, nil
	if v.ids[0] != InvalidComponent && v.ids[1] != InvalidComponent && v.ids[2] != InvalidComponent {
		v.ca = w.registry.columns[v.ids[0]].(*Column[A])
		v.cb = w.registry.columns[v.ids[1]].(*Column[B])
		v.cc = w.registry.columns[v.ids[2]].(*Column[C])
	}
}

// Each invokes fn for every entity carrying all three component types.
func (v *View3[A, B, C]) Each(fn func(e EntityID, a *A, b *B, c *C)) {
	if v.ca == nil {
		return
	}
	s := v.world.registry.smallestColumn(v.ids[:])
	for i := 0; i < s.count(); i++ {
		e := s.entityAt(i)
		a := v.ca.get(e)
		if a == nil {
			continue
		}
		b := v.cb.get(e)
		if b == nil {
			continue
		}
		c := v.cc.get(e)
		if c == nil {
			continue
		}
		fn(e, a, b, c)
	}
}

// View4 joins four columns.
type View4[A, B, C, D any] struct {
	world *World
	ca    *Column[A]
	cb    *Column[B]
	cc    *Column[C]
	cd    *Column[D]
	ids   [4]ComponentID
}

// NewView4 creates a view over the intersection of four columns.
func NewView4[A, B, C, D any](w *World) *View4[A, B, C, D] {
	v := &View4[A, B, C, D]{}
	v.Init(w)
	return v
}

func (v *View4[A, B, C, D]) Init(w *World) {
	v.world = w
	v.ids[0] = registerComponent[A](&w.registry)
	v.ids[1] = registerComponent[B](&w.registry)
	v.ids[2] = registerComponent[C](&w.registry)
	v.ids[3] = registerComponent[D](&w.registry)
	v.ca, v.cb, v.cc, v.cd = nil, nil, nil, nil
	for _, id := range v.ids {
		if id == InvalidComponent {
			return
		}
	}
	v.ca = w.registry.columns[v.ids[0]].(*Column[A])
	v.cb = w.registry.columns[v.ids[1]].(*Column[B])
	v.cc = w.registry.columns[v.ids[2]].(*Column[C])
	v.cd = w.registry.columns[v.ids[3]].(*Column[D])
}

// Each invokes fn for every entity carrying all four component types.
func (v *View4[A, B, C, D]) Each(fn func(e EntityID, a *A, b *B, c *C, d *D)) {
	if v.ca == nil {
		return
	}
	s := v.world.registry.smallestColumn(v.ids[:])
	for i := 0; i < s.count(); i++ {
		e := s.entityAt(i)
		a := v.ca.get(e)
		if a == nil {
			continue
		}
		b := v.cb.get(e)
		if b == nil {
			continue
		}
		c := v.cc.get(e)
		if c == nil {
			continue
		}
		d := v.cd.get(e)
		if d == nil {
			continue
		}
		fn(e, a, b, c, d)
	}
}
