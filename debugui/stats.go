package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tankfield/ecs"
)

// StatsWindow renders a window with storage contents, a frame-time history
// plot, and per-system scheduler timings.
type StatsWindow struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	frameHistory []float32
	frameIndex   int
}

// NewStatsWindow creates a stats window tracking the given storage and
// scheduler, keeping historyFrames frame-time samples.
func NewStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) *StatsWindow {
	return &StatsWindow{
		storage:      storage,
		scheduler:    scheduler,
		frameHistory: make([]float32, historyFrames),
	}
}

// Render draws the window. Wrap it in an ImguiItem to run it every frame.
func (w *StatsWindow) Render(deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)

	if !imgui.BeginV("Simulation Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w.frameHistory[w.frameIndex] = deltaTime * 1000.0
	w.frameIndex = (w.frameIndex + 1) % len(w.frameHistory)

	stats := w.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Component Columns: %d", stats.ColumnCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	var avgFrameTime float32
	for _, ft := range w.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(len(w.frameHistory))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	if imgui.TreeNodeStr("Component Columns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ColumnStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, col := range stats.Columns {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(col.ComponentType)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", col.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("System Timings") {
		schedStats := w.scheduler.GetStats()
		for _, sys := range schedStats.Systems {
			imgui.BulletText(fmt.Sprintf("%s: avg %s, last %s", sys.Name, sys.AvgDuration, sys.LastDuration))
		}
		imgui.TreePop()
	}

	imgui.End()
}
