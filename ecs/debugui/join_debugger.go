package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tessera/ecs"
)

func NewJoinDebuggerComponent() JoinDebuggerComponent {
	return JoinDebuggerComponent{
		selectedTypes: make(map[string]bool),
	}
}

// Render lets you toggle component types on and off and lists the entities
// carrying all selected types. This mirrors what a view over the same tuple
// would visit, which makes join mismatches easy to diagnose.
func (jd *JoinDebuggerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Join Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(jd.selectedTypes)
	}

	for _, info := range world.Columns() {
		selected := jd.selectedTypes[info.Type]
		label := fmt.Sprintf("%s (%d)", info.Type, info.Count)
		if imgui.Checkbox(label, &selected) {
			if selected {
				jd.selectedTypes[info.Type] = true
			} else {
				delete(jd.selectedTypes, info.Type)
			}
		}
	}

	imgui.Separator()

	if len(jd.selectedTypes) == 0 {
		imgui.Text("No types selected")
		imgui.End()
		return
	}

	matches := jd.matchingEntities(world)
	imgui.Text(fmt.Sprintf("%d matching entities", len(matches)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("JoinTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Name")
		imgui.TableHeadersRow()

		for _, e := range matches {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.ID()))
			imgui.TableNextColumn()
			imgui.Text(e.Name())
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (jd *JoinDebuggerComponent) matchingEntities(world *ecs.World) []ecs.Entity {
	var matches []ecs.Entity
	for _, e := range world.Entities() {
		types := e.Types()
		all := true
		for selected := range jd.selectedTypes {
			if !slices.Contains(types, selected) {
				all = false
				break
			}
		}
		if all {
			matches = append(matches, e)
		}
	}
	return matches
}
