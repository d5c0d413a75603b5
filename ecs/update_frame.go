package ecs

// UpdateFrame carries per-tick context into System.Execute. Systems mutate
// the world directly; there is no deferred command buffer, so a system must
// not structurally mutate a column it is currently iterating.
type UpdateFrame struct {
	DeltaTime float64
	World     *World
}

func newUpdateFrame(dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		World:     world,
	}
}
