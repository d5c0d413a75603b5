package ecs_test

import (
	"testing"

	"github.com/plus3/tessera/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortPreservesMapping(t *testing.T) {
	w := ecs.NewWorld()

	xs := []float32{3, 1, 4, 1, 5, 9, 2, 6}
	entities := make([]ecs.Entity, len(xs))
	for i, x := range xs {
		entities[i] = w.Spawn()
		ecs.Set(entities[i], Position{X: x})
	}

	ecs.Sort(w, func(a, b Position) bool { return a.X < b.X })

	// Dense order is non-decreasing by x.
	var order []float32
	ecs.NewView[Position](w).Each(func(_ ecs.EntityID, p *Position) {
		order = append(order, p.X)
	})
	require.Len(t, order, len(xs))
	for i := 0; i < len(order)-1; i++ {
		assert.LessOrEqual(t, order[i], order[i+1])
	}

	// Every entity still resolves to the value it was inserted with.
	for i, e := range entities {
		assert.Equal(t, xs[i], ecs.Get[Position](e).X)
	}
}

func TestSortThenRemove(t *testing.T) {
	w := ecs.NewWorld()

	entities := make([]ecs.Entity, 6)
	for i := range entities {
		entities[i] = w.Spawn()
		ecs.Set(entities[i], Score(5-i))
	}

	ecs.Sort(w, func(a, b Score) bool { return a < b })
	entities[3].Destroy()

	for i, e := range entities {
		if i == 3 {
			continue
		}
		require.NotNil(t, ecs.Get[Score](e))
		assert.Equal(t, Score(5-i), *ecs.Get[Score](e))
	}
}

func TestSortSkipsWhenFlagged(t *testing.T) {
	w := ecs.NewWorld()

	for i := 0; i < 4; i++ {
		ecs.Set(w.Spawn(), Score(i))
	}

	ecs.Sort(w, func(a, b Score) bool { return a > b })

	first := func() Score {
		var got Score
		for _, s := range ecs.NewView[Score](w).All() {
			got = *s
			break
		}
		return got
	}
	assert.Equal(t, Score(3), first())

	// The column is flagged sorted, so a sort with the opposite order is
	// skipped outright.
	ecs.Sort(w, func(a, b Score) bool { return a < b })
	assert.Equal(t, Score(3), first())
}

func TestSetInvalidatesSortFlag(t *testing.T) {
	w := ecs.NewWorld()

	entities := make([]ecs.Entity, 4)
	for i := range entities {
		entities[i] = w.Spawn()
		ecs.Set(entities[i], Score(i))
	}

	asc := func(a, b Score) bool { return a < b }
	ecs.Sort(w, asc)

	// Breaking the order through set must force the next sort to run.
	ecs.Set(entities[0], Score(100))
	ecs.Sort(w, asc)

	var order []Score
	ecs.NewView[Score](w).Each(func(_ ecs.EntityID, s *Score) {
		order = append(order, *s)
	})
	assert.Equal(t, []Score{1, 2, 3, 100}, order)
}

func TestSortManyElements(t *testing.T) {
	w := ecs.NewWorld()

	// Worst-case-ish input for Lomuto: descending run with duplicates.
	const n = 500
	entities := make([]ecs.Entity, n)
	for i := 0; i < n; i++ {
		entities[i] = w.Spawn()
		ecs.Set(entities[i], Temperature(float64((n-i)%37)))
	}

	ecs.Sort(w, func(a, b Temperature) bool { return a < b })

	var prev Temperature = -1
	count := 0
	ecs.NewView[Temperature](w).Each(func(_ ecs.EntityID, v *Temperature) {
		assert.LessOrEqual(t, prev, *v)
		prev = *v
		count++
	})
	assert.Equal(t, n, count)

	for i, e := range entities {
		assert.Equal(t, Temperature(float64((n-i)%37)), *ecs.Get[Temperature](e))
	}
}
