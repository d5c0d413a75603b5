package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tessera/ecs"
)

func NewColumnViewerComponent() ColumnViewerComponent {
	return ColumnViewerComponent{
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render shows one row per registered column: its component ID, element
// type, live count, capacity, and whether the sorted hint is set, followed by
// a footer with the column total and the summed live element count.
func (cv *ColumnViewerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Column Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	infos := world.Columns()
	cv.sortInfos(infos)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ColumnTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Capacity")
		imgui.TableSetupColumn("Sorted")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			cv.sortColumn = int(spec.ColumnIndex())
			cv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			cv.sortInfos(infos)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, info := range infos {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.ID))

			imgui.TableNextColumn()
			imgui.Text(info.Type)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Count))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Capacity))

			imgui.TableNextColumn()
			if info.Sorted {
				imgui.Text("yes")
			} else {
				imgui.Text("no")
			}
		}

		imgui.EndTable()
	}

	totalLive := 0
	for _, info := range infos {
		totalLive += info.Count
	}
	imgui.Text(fmt.Sprintf("%d columns, %d live elements", len(infos), totalLive))

	imgui.End()
}

func (cv *ColumnViewerComponent) sortInfos(infos []ecs.ColumnInfo) {
	sort.Slice(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		var less bool

		switch cv.sortColumn {
		case 1:
			less = a.Type < b.Type
		case 2:
			less = a.Count < b.Count
		case 3:
			less = a.Capacity < b.Capacity
		case 4:
			less = !a.Sorted && b.Sorted
		default:
			less = a.ID < b.ID
		}

		if !cv.sortAscending {
			return !less
		}
		return less
	})
}
