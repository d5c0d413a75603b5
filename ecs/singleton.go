package ecs

// Singleton provides cached access to a world-level component instance that
// is not associated with any entity. Use it for global state a frame loop
// reads every tick.
type Singleton[T any] struct {
	world *World
	box   *T
}

// NewSingleton creates a Singleton accessor for the given world. If the T
// singleton does not exist yet it is created with the initializer value, or
// the zero value without one, so the singleton is guaranteed to exist after
// the call.
func NewSingleton[T any](w *World, initializer ...T) *Singleton[T] {
	var v T
	if len(initializer) > 0 {
		v = initializer[0]
	}
	return &Singleton[T]{
		world: w,
		box:   SetSingleton(w, v),
	}
}

// Init wires the accessor to a world without creating the singleton. Called
// by the Scheduler for Singleton fields on registered systems.
func (s *Singleton[T]) Init(w *World) {
	s.world = w
	s.box = nil
}

// Get returns a pointer to the singleton, or nil if it has not been set.
func (s *Singleton[T]) Get() *T {
	if s.box == nil && s.world != nil {
		s.box = GetSingleton[T](s.world)
	}
	return s.box
}

// Exists reports whether the singleton has been set on the world.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
