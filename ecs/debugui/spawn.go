package debugui

import "github.com/plus3/tessera/ecs"

// SpawnDebugUI attaches one of each inspection window component to fresh
// entities and guarantees the ImguiInputState singleton exists. The window
// components hold state only: ImguiSystem runs ImguiItem render functions and
// does not call their Render methods.
func SpawnDebugUI(world *ecs.World) {
	ecs.Set(world.Spawn(), NewEntityBrowserComponent(100))
	ecs.Set(world.Spawn(), NewComponentInspectorComponent())
	ecs.Set(world.Spawn(), NewColumnViewerComponent())
	ecs.Set(world.Spawn(), NewJoinDebuggerComponent())
	ecs.Set(world.Spawn(), NewPerformanceStatsComponent(120))
	ecs.NewSingleton(world, ImguiInputState{})
}
