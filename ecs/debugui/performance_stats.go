package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tessera/ecs"
)

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Render plots the frame-time history and, when a scheduler is supplied,
// a per-system timing table.
func (ps *PerformanceStatsComponent) Render(world *ecs.World, scheduler *ecs.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	infos := world.Columns()
	totalLive := 0
	for _, info := range infos {
		totalLive += info.Count
	}

	imgui.Text(fmt.Sprintf("Live Elements: %d", totalLive))
	imgui.Text(fmt.Sprintf("Columns: %d", len(infos)))
	imgui.Text(fmt.Sprintf("Singletons: %d", len(world.SingletonTypes())))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if scheduler != nil {
		if imgui.TreeNodeStr("System Timings") {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Last")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Max")
				imgui.TableHeadersRow()

				for _, s := range scheduler.GetStats().Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(s.Name)
					imgui.TableNextColumn()
					imgui.Text(s.LastDuration.String())
					imgui.TableNextColumn()
					imgui.Text(s.AvgDuration.String())
					imgui.TableNextColumn()
					imgui.Text(s.MaxDuration.String())
				}

				imgui.EndTable()
			}
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range world.SingletonTypes() {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock delta time between frames for the stats
// window.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
