package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// Column is the dense storage for all live elements of one component type.
// Elements sit contiguously in data; entities[i] names the entity whose
// element occupies slot i, and slots maps each present entity back to its
// slot. The two maps are mutated together or not at all.
type Column[T any] struct {
	data     []T
	entities []EntityID
	slots    *intmap.Map[EntityID, uint32]
	name     string
	sorted   bool
}

func newColumn[T any]() *Column[T] {
	return &Column[T]{
		data:     make([]T, 0, initialColumnCapacity),
		entities: make([]EntityID, 0, initialColumnCapacity),
		slots:    intmap.New[EntityID, uint32](initialColumnCapacity),
		name:     reflect.TypeFor[T]().String(),
	}
}

// add appends v as the element for e and returns a pointer to the stored
// copy. If e is already present the call degrades to set: overwriting is
// the only safe interpretation, a second append would corrupt the maps.
func (c *Column[T]) add(e EntityID, v T) *T {
	if slot, ok := c.slots.Get(e); ok {
		c.data[slot] = v
		c.sorted = false
		return &c.data[slot]
	}
	c.grow()
	slot := uint32(len(c.data))
	c.data = append(c.data, v)
	c.entities = append(c.entities, e)
	c.slots.Put(e, slot)
	c.sorted = false
	return &c.data[slot]
}

// set overwrites the element for e, adding it if absent. A value change can
// break a previously sorted order, so the sorted hint is dropped here too.
func (c *Column[T]) set(e EntityID, v T) *T {
	return c.add(e, v)
}

// get returns a pointer into the dense buffer, or nil if e is absent.
// The pointer is invalidated by any subsequent add, remove, or sort.
func (c *Column[T]) get(e EntityID) *T {
	slot, ok := c.slots.Get(e)
	if !ok {
		return nil
	}
	return &c.data[slot]
}

// remove swap-removes the element for e: the tail element moves into the
// vacated slot, so density is preserved but relative order is not.
func (c *Column[T]) remove(e EntityID) bool {
	slot, ok := c.slots.Get(e)
	if !ok {
		return false
	}
	last := uint32(len(c.data) - 1)
	if slot != last {
		moved := c.entities[last]
		c.data[slot] = c.data[last]
		c.entities[slot] = moved
		c.slots.Put(moved, slot)
	}
	var zero T
	c.data[last] = zero
	c.data = c.data[:last]
	c.entities = c.entities[:last]
	c.slots.Del(e)
	c.sorted = false
	return true
}

// swapSlots exchanges the elements at slots i and j and keeps both index
// maps consistent. Sorting goes through here for every swap.
func (c *Column[T]) swapSlots(i, j int) {
	if i == j {
		return
	}
	c.data[i], c.data[j] = c.data[j], c.data[i]
	ei, ej := c.entities[i], c.entities[j]
	c.entities[i], c.entities[j] = ej, ei
	c.slots.Put(ei, uint32(j))
	c.slots.Put(ej, uint32(i))
}

// grow doubles capacity when the column is full. The slices are reallocated
// explicitly so capacity follows the power-of-two schedule instead of the
// runtime's append heuristics.
func (c *Column[T]) grow() {
	if len(c.data) < cap(c.data) {
		return
	}
	newCap := cap(c.data) * 2
	data := make([]T, len(c.data), newCap)
	copy(data, c.data)
	c.data = data
	entities := make([]EntityID, len(c.entities), newCap)
	copy(entities, c.entities)
	c.entities = entities
}

func (c *Column[T]) count() int    { return len(c.data) }
func (c *Column[T]) capacity() int { return cap(c.data) }

func (c *Column[T]) hasEntity(e EntityID) bool {
	_, ok := c.slots.Get(e)
	return ok
}

func (c *Column[T]) removeEntity(e EntityID) bool { return c.remove(e) }

func (c *Column[T]) entityAt(i int) EntityID { return c.entities[i] }

func (c *Column[T]) typeName() string { return c.name }

func (c *Column[T]) elemType() reflect.Type { return reflect.TypeFor[T]() }

func (c *Column[T]) valueOf(e EntityID) any {
	p := c.get(e)
	if p == nil {
		return nil
	}
	return p
}

func (c *Column[T]) isSorted() bool { return c.sorted }
