package ecs_test

import (
	"fmt"

	"github.com/plus3/tessera/ecs"
)

// GravitySystem pulls every mover downward. Declaring a Query2 field lets
// the scheduler wire the system to the world at registration time and
// refresh the snapshot before each tick.
type GravitySystem struct {
	Movers ecs.Query2[Position, Velocity]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	s.Movers.Each(func(_ ecs.EntityID, p *Position, v *Velocity) {
		v.DY -= 9.8 * float32(frame.DeltaTime)
		p.Y += v.DY * float32(frame.DeltaTime)
	})
}

// ExampleScheduler runs registered systems in order with a fixed delta time.
// Systems mutate the world directly; there is no deferred command buffer.
func ExampleScheduler() {
	w := ecs.NewWorld()
	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&GravitySystem{})

	ball := w.Spawn()
	ecs.Set(ball, Position{Y: 100})
	ecs.Set(ball, Velocity{})

	for i := 0; i < 3; i++ {
		scheduler.Once(1.0)
	}

	fmt.Printf("ball at y=%.1f\n", ecs.Get[Position](ball).Y)

	// Output:
	// ball at y=41.2
}
