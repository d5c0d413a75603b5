package ecs

import (
	"reflect"
	"slices"
)

// World is the top-level container: a registry of component columns, the
// name index, and the singleton table. Worlds are fully isolated from each
// other and are not safe for concurrent use; every operation runs to
// completion on the caller's goroutine.
type World struct {
	registry   Registry
	singletons map[reflect.Type]any
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		registry:   newRegistry(),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn creates a new anonymous entity. Released IDs are reused before the
// counter advances.
func (w *World) Spawn() Entity {
	return Entity{id: w.registry.create(), world: w}
}

// SpawnNamed creates an entity bound to name, or returns the existing entity
// if the name is already taken. Calling twice with the same name yields the
// same entity.
func (w *World) SpawnNamed(name string) Entity {
	return Entity{id: w.registry.createNamed(name), world: w}
}

// Lookup resolves a name to its entity. A missing name yields a handle over
// InvalidEntity whose IsValid reports false.
func (w *World) Lookup(name string) Entity {
	return Entity{id: w.registry.lookup(name), world: w}
}

// Wrap builds a handle for a raw ID obtained elsewhere (iteration callbacks
// hand out raw EntityIDs).
func (w *World) Wrap(id EntityID) Entity {
	return Entity{id: id, world: w}
}

// Entities returns handles for every entity currently present in at least
// one column or bound to a name, in ascending ID order. Intended for debug
// tooling; the world keeps no standalone entity list.
func (w *World) Entities() []Entity {
	ids := w.registry.liveEntities()
	entities := make([]Entity, len(ids))
	for i, id := range ids {
		entities[i] = Entity{id: id, world: w}
	}
	return entities
}

// ColumnInfo is a read-only snapshot of one column's bookkeeping.
type ColumnInfo struct {
	ID       ComponentID
	Type     string
	Count    int
	Capacity int
	Sorted   bool
}

// ComponentsOf returns pointers to every component value the entity carries,
// in component registration order. The pointers alias the columns; debug
// tooling edits through them in place.
func (w *World) ComponentsOf(id EntityID) []any {
	var values []any
	for _, col := range w.registry.columns {
		if v := col.valueOf(id); v != nil {
			values = append(values, v)
		}
	}
	return values
}

// SingletonTypes lists the type names of the singletons set on the world.
func (w *World) SingletonTypes() []string {
	types := make([]string, 0, len(w.singletons))
	for t := range w.singletons {
		types = append(types, t.String())
	}
	slices.Sort(types)
	return types
}

// Columns snapshots every registered column in registration order.
func (w *World) Columns() []ColumnInfo {
	infos := make([]ColumnInfo, len(w.registry.columns))
	for i, col := range w.registry.columns {
		infos[i] = ColumnInfo{
			ID:       ComponentID(i),
			Type:     col.typeName(),
			Count:    col.count(),
			Capacity: col.capacity(),
			Sorted:   col.isSorted(),
		}
	}
	return infos
}
