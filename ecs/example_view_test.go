package ecs_test

import (
	"fmt"

	"github.com/plus3/tessera/ecs"
)

// ExampleView demonstrates iterating every entity carrying one component
// type. The single-column case is a sequential scan of the column's dense
// buffer, visiting elements in slot order.
func ExampleView() {
	w := ecs.NewWorld()

	for i := 0; i < 3; i++ {
		ecs.Set(w.Spawn(), Position{X: float32(i * 10)})
	}

	ecs.NewView[Position](w).Each(func(e ecs.EntityID, p *Position) {
		fmt.Printf("entity %d at x=%.0f\n", e, p.X)
	})

	// Output:
	// entity 0 at x=0
	// entity 1 at x=10
	// entity 2 at x=20
}

// ExampleView2 shows a two-column join. The view iterates the smaller of
// the two columns and probes the other, so only entities carrying both
// components are visited. Yielded pointers alias the columns directly;
// writes through them are immediately visible.
func ExampleView2() {
	w := ecs.NewWorld()

	mover := w.Spawn()
	ecs.Set(mover, Position{X: 0})
	ecs.Set(mover, Velocity{DX: 5})

	ecs.Set(w.Spawn(), Position{X: 100}) // no velocity, never visited

	view := ecs.NewView2[Position, Velocity](w)
	view.Each(func(_ ecs.EntityID, p *Position, v *Velocity) {
		p.X += v.DX
	})

	fmt.Printf("mover at x=%.0f\n", ecs.Get[Position](mover).X)

	// Output:
	// mover at x=5
}
