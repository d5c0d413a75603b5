// Package debugui provides immediate-mode GUI inspection for ECS worlds
// using Dear ImGui. It ships an entity browser, a component inspector, a
// column viewer, a join debugger, and performance windows as ECS components,
// plus a single system that runs ImguiItem render functions.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tessera/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton
// component. Use this to determine if ImGui is consuming mouse or keyboard
// input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem collects all ImguiItem render functions and invokes them after
// iteration completes, so a render function is free to spawn or destroy
// entities. It also refreshes the ImguiInputState singleton with the current
// capture state.
type ImguiSystem struct {
	Items      ecs.View[ImguiItem]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and runs all queued ImGui render functions.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := i.InputState.Get()
	state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	renders := make([]func(), 0, i.Items.Count())
	i.Items.Each(func(_ ecs.EntityID, item *ImguiItem) {
		renders = append(renders, item.Render)
	})
	for _, render := range renders {
		render()
	}
}
