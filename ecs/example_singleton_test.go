package ecs_test

import (
	"fmt"

	"github.com/plus3/tessera/ecs"
)

// ExampleSetSingleton demonstrates world-level singleton components. A
// singleton belongs to the world, not to any entity, and is addressed purely
// by type. The first Set registers the value; later Sets return the
// registered box unchanged, so updates go through the pointer.
func ExampleSetSingleton() {
	w := ecs.NewWorld()

	cfg := ecs.SetSingleton(w, GameConfig{Gravity: 9.8, MaxPlayers: 4})
	fmt.Println("players:", ecs.GetSingleton[GameConfig](w).MaxPlayers)

	cfg.MaxPlayers = 8
	fmt.Println("players:", ecs.GetSingleton[GameConfig](w).MaxPlayers)

	// Output:
	// players: 4
	// players: 8
}

// ExampleSingleton shows the cached accessor used by systems. NewSingleton
// guarantees the singleton exists, creating it from the initializer if
// needed.
func ExampleSingleton() {
	w := ecs.NewWorld()

	counter := ecs.NewSingleton(w, FrameCounter{Frames: 10})
	counter.Get().Frames++

	fmt.Println("frames:", ecs.GetSingleton[FrameCounter](w).Frames)

	// Output:
	// frames: 11
}
