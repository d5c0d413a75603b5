package ecs

import "reflect"

// columnStore is the type-erased face of a Column[T]. The Registry routes
// per-entity bookkeeping (destroy, type listing, smallest-column selection)
// through it without knowing element types.
type columnStore interface {
	count() int
	capacity() int
	hasEntity(e EntityID) bool
	removeEntity(e EntityID) bool
	entityAt(i int) EntityID
	typeName() string
	elemType() reflect.Type
	valueOf(e EntityID) any
	isSorted() bool
}
