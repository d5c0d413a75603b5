package ecs

import (
	"reflect"
	"slices"
)

// Registry owns the component columns and the entity ID allocator. It is the
// untyped hub the typed façade dispatches through: columns are indexed by
// ComponentID, and typeToID pins each element type to the ID it was assigned
// on first use.
type Registry struct {
	columns    []columnStore
	typeToID   map[reflect.Type]ComponentID
	names      map[string]EntityID
	freeIDs    []EntityID
	nextEntity EntityID
}

func newRegistry() Registry {
	return Registry{
		typeToID: make(map[reflect.Type]ComponentID),
		names:    make(map[string]EntityID),
	}
}

// registerComponent resolves T to its ComponentID, assigning the next free ID
// on first use. Returns InvalidComponent once MaxComponentTypes distinct
// types have been registered; an assigned ID stays valid for the registry's
// lifetime.
func registerComponent[T any](r *Registry) ComponentID {
	t := reflect.TypeFor[T]()
	if id, ok := r.typeToID[t]; ok {
		return id
	}
	if len(r.columns) >= MaxComponentTypes {
		return InvalidComponent
	}
	id := ComponentID(len(r.columns))
	r.columns = append(r.columns, newColumn[T]())
	r.typeToID[t] = id
	return id
}

// columnFor returns T's column, registering the type on demand. Nil once the
// type limit is exhausted.
func columnFor[T any](r *Registry) *Column[T] {
	id := registerComponent[T](r)
	if id == InvalidComponent {
		return nil
	}
	return r.columns[id].(*Column[T])
}

// create returns the next entity ID, recycling released IDs FIFO before
// advancing the counter.
func (r *Registry) create() EntityID {
	if len(r.freeIDs) > 0 {
		id := r.freeIDs[0]
		r.freeIDs = r.freeIDs[1:]
		return id
	}
	id := r.nextEntity
	r.nextEntity++
	return id
}

// createNamed returns the entity bound to name, creating and binding a fresh
// entity if the name is unused. A name maps to at most one entity.
func (r *Registry) createNamed(name string) EntityID {
	if id, ok := r.names[name]; ok {
		return id
	}
	id := r.create()
	r.names[name] = id
	return id
}

func (r *Registry) lookup(name string) EntityID {
	if id, ok := r.names[name]; ok {
		return id
	}
	return InvalidEntity
}

// destroy removes e from every column, unbinds its name, and pushes the ID
// onto the free queue. Destroying an entity twice without recreating it in
// between corrupts the allocator; callers own that discipline.
func (r *Registry) destroy(e EntityID) {
	if !r.validEntity(e) {
		return
	}
	for _, col := range r.columns {
		col.removeEntity(e)
	}
	for name, id := range r.names {
		if id == e {
			delete(r.names, name)
			break
		}
	}
	r.freeIDs = append(r.freeIDs, e)
}

func (r *Registry) validEntity(e EntityID) bool {
	return e != InvalidEntity && e < r.nextEntity
}

func (r *Registry) entityName(e EntityID) string {
	for name, id := range r.names {
		if id == e {
			return name
		}
	}
	return ""
}

// entityTypeNames lists the type names of the columns containing e, in
// component registration order.
func (r *Registry) entityTypeNames(e EntityID) []string {
	var types []string
	for _, col := range r.columns {
		if col.hasEntity(e) {
			types = append(types, col.typeName())
		}
	}
	return types
}

// smallestColumn picks the column with the fewest elements among ids, ties
// going to the earliest entry. Multi-column joins iterate this one and probe
// the rest.
func (r *Registry) smallestColumn(ids []ComponentID) columnStore {
	smallest := r.columns[ids[0]]
	for _, id := range ids[1:] {
		if r.columns[id].count() < smallest.count() {
			smallest = r.columns[id]
		}
	}
	return smallest
}

// liveEntities returns the ascending union of every entity present in at
// least one column or bound to a name. Debug tooling only; the registry
// keeps no standalone entity list.
func (r *Registry) liveEntities() []EntityID {
	seen := make(map[EntityID]struct{})
	for _, col := range r.columns {
		for i := 0; i < col.count(); i++ {
			seen[col.entityAt(i)] = struct{}{}
		}
	}
	for _, id := range r.names {
		seen[id] = struct{}{}
	}
	ids := make([]EntityID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
