package ecs

import "reflect"

// Typed operations live at package level because Go methods cannot take type
// parameters. Each resolves the element type to its column through the
// entity's world and routes the mutation there.

// RegisterComponent pins T to a ComponentID ahead of first use. Registration
// also happens implicitly on the first typed operation involving T; calling
// this up front only makes the ID assignment order explicit. Returns
// InvalidComponent once MaxComponentTypes types exist.
func RegisterComponent[T any](w *World) ComponentID {
	return registerComponent[T](&w.registry)
}

// Add attaches a zero-valued T to the entity and returns a pointer to the
// stored element. Adding a component the entity already has overwrites it.
// The pointer stays valid until the column next grows, removes, or sorts.
// Returns nil if the component type limit is exhausted.
func Add[T any](e Entity) *T {
	col := columnFor[T](&e.world.registry)
	if col == nil {
		return nil
	}
	var zero T
	return col.add(e.id, zero)
}

// Set writes v as the entity's T, attaching the component first if absent.
func Set[T any](e Entity, v T) *T {
	col := columnFor[T](&e.world.registry)
	if col == nil {
		return nil
	}
	return col.set(e.id, v)
}

// Get returns a pointer to the entity's T, or nil if the entity does not
// carry one. The pointer aliases the column's dense buffer: any add, remove,
// or sort on the column invalidates it.
func Get[T any](e Entity) *T {
	col := columnFor[T](&e.world.registry)
	if col == nil {
		return nil
	}
	return col.get(e.id)
}

// Remove detaches the entity's T. Removing an absent component is a no-op.
func Remove[T any](e Entity) {
	col := columnFor[T](&e.world.registry)
	if col == nil {
		return
	}
	col.remove(e.id)
}

// Has reports whether the entity carries a T.
func Has[T any](e Entity) bool {
	col := columnFor[T](&e.world.registry)
	return col != nil && col.hasEntity(e.id)
}

// Has2 reports whether the entity carries both component types.
func Has2[A, B any](e Entity) bool {
	return Has[A](e) && Has[B](e)
}

// Has3 reports whether the entity carries all three component types.
func Has3[A, B, C any](e Entity) bool {
	return Has[A](e) && Has[B](e) && Has[C](e)
}

// Has4 reports whether the entity carries all four component types.
func Has4[A, B, C, D any](e Entity) bool {
	return Has[A](e) && Has[B](e) && Has[C](e) && Has[D](e)
}

// Sort reorders T's column in place so cmp holds pairwise over the dense
// buffer, updating the entity maps with every swap. Per-entity lookups are
// unaffected; pointers previously returned by Get are not. The column skips
// the work if it is still flagged sorted from a previous call.
func Sort[T any](w *World, cmp func(a, b T) bool) {
	col := columnFor[T](&w.registry)
	if col == nil {
		return
	}
	col.sortBy(cmp)
}

// SetSingleton registers v as the world's singleton T and returns the stored
// box. If a T singleton already exists the existing box is returned
// unchanged; mutate through the returned pointer to update it.
func SetSingleton[T any](w *World, v T) *T {
	t := reflect.TypeFor[T]()
	if box, ok := w.singletons[t]; ok {
		return box.(*T)
	}
	box := new(T)
	*box = v
	w.singletons[t] = box
	return box
}

// GetSingleton returns the world's singleton T, or nil if none was set.
func GetSingleton[T any](w *World) *T {
	box, ok := w.singletons[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return box.(*T)
}
