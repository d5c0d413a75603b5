package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type compA struct{ V int }
type compB struct{ V int }

func TestRegisterComponentStableID(t *testing.T) {
	r := newRegistry()

	idA := registerComponent[compA](&r)
	idB := registerComponent[compB](&r)

	assert.Equal(t, ComponentID(0), idA)
	assert.Equal(t, ComponentID(1), idB)

	// Registration is idempotent: the same type always resolves to the ID
	// it was assigned first.
	assert.Equal(t, idA, registerComponent[compA](&r))
	assert.Equal(t, idB, registerComponent[compB](&r))
	assert.Len(t, r.columns, 2)
}

func TestRegisterComponentLimit(t *testing.T) {
	r := newRegistry()

	// Fill the registry to the type limit; the column contents never
	// matter here, only the count does.
	for len(r.columns) < MaxComponentTypes {
		r.columns = append(r.columns, newColumn[compA]())
	}

	assert.Equal(t, InvalidComponent, registerComponent[compB](&r))
	assert.Len(t, r.columns, MaxComponentTypes)
	assert.Nil(t, columnFor[compB](&r))
}

func TestEntityIDAllocation(t *testing.T) {
	r := newRegistry()

	e0 := r.create()
	e1 := r.create()
	assert.Equal(t, EntityID(0), e0)
	assert.Equal(t, EntityID(1), e1)
	assert.NotEqual(t, e0, e1)

	// Released IDs come back FIFO before the counter advances.
	r.destroy(e0)
	r.destroy(e1)
	assert.Equal(t, e0, r.create())
	assert.Equal(t, e1, r.create())
	assert.Equal(t, EntityID(2), r.create())
}

func TestDestroyRemovesFromColumns(t *testing.T) {
	r := newRegistry()
	col := columnFor[compA](&r)

	e := r.create()
	other := r.create()
	col.add(e, compA{V: 1})
	col.add(other, compA{V: 2})

	r.destroy(e)

	assert.False(t, col.hasEntity(e))
	assert.True(t, col.hasEntity(other))
	assert.Equal(t, 2, col.get(other).V)
}

func TestDestroyUnbindsName(t *testing.T) {
	r := newRegistry()

	e := r.createNamed("boss")
	require.Equal(t, e, r.lookup("boss"))

	r.destroy(e)

	assert.Equal(t, InvalidEntity, r.lookup("boss"))
	assert.Equal(t, "", r.entityName(e))

	// The name is free for rebinding and the ID free for reuse.
	e2 := r.createNamed("boss")
	assert.Equal(t, e, e2)
}

func TestDestroyInvalidIsNoop(t *testing.T) {
	r := newRegistry()
	r.create()

	r.destroy(InvalidEntity)
	r.destroy(42) // never issued

	assert.Empty(t, r.freeIDs)
}

func TestNamedEntityIdempotent(t *testing.T) {
	r := newRegistry()

	e1 := r.createNamed("ship")
	e2 := r.createNamed("ship")
	assert.Equal(t, e1, e2)

	assert.Equal(t, "ship", r.entityName(e1))
	assert.Equal(t, InvalidEntity, r.lookup("missing"))
}

func TestEntityTypeNames(t *testing.T) {
	r := newRegistry()
	ca := columnFor[compA](&r)
	cb := columnFor[compB](&r)

	e := r.create()
	ca.add(e, compA{})
	cb.add(e, compB{})

	names := r.entityTypeNames(e)
	require.Len(t, names, 2)
	assert.Contains(t, names[0], "compA")
	assert.Contains(t, names[1], "compB")

	assert.Empty(t, r.entityTypeNames(r.create()))
}

func TestSmallestColumn(t *testing.T) {
	r := newRegistry()
	ca := columnFor[compA](&r)
	cb := columnFor[compB](&r)

	for i := EntityID(0); i < 10; i++ {
		ca.add(i, compA{})
	}
	for i := EntityID(0); i < 3; i++ {
		cb.add(i, compB{})
	}

	ids := []ComponentID{0, 1}
	assert.Same(t, cb, r.smallestColumn(ids))

	// Ties break to the first occurrence.
	for i := EntityID(3); i < 10; i++ {
		cb.add(i, compB{})
	}
	assert.Same(t, ca, r.smallestColumn(ids))
}

func TestLiveEntities(t *testing.T) {
	r := newRegistry()
	col := columnFor[compA](&r)

	e0 := r.create()
	e1 := r.createNamed("tracked")
	e2 := r.create()
	col.add(e2, compA{})
	col.add(e0, compA{})

	ids := r.liveEntities()
	assert.Equal(t, []EntityID{e0, e1, e2}, ids)
}
