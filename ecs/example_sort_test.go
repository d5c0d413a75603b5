package ecs_test

import (
	"fmt"

	"github.com/plus3/tessera/ecs"
)

// ExampleSort reorders a column in place with a caller-supplied order. The
// entity maps are updated with every swap, so per-entity lookups keep
// returning each entity's own value after the sort. The sort is unstable.
func ExampleSort() {
	w := ecs.NewWorld()

	depths := []float64{3, 1, 2}
	entities := make([]ecs.Entity, len(depths))
	for i, d := range depths {
		entities[i] = w.Spawn()
		ecs.Set(entities[i], Temperature(d))
	}

	ecs.Sort(w, func(a, b Temperature) bool { return a < b })

	sep := ""
	ecs.NewView[Temperature](w).Each(func(_ ecs.EntityID, v *Temperature) {
		fmt.Printf("%s%.0f", sep, float64(*v))
		sep = " "
	})
	fmt.Println()

	// Lookups still resolve through the entity, not the slot.
	fmt.Println("first entity still holds", float64(*ecs.Get[Temperature](entities[0])))

	// Output:
	// 1 2 3
	// first entity still holds 3
}
