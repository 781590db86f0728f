package main

import (
	"math/rand/v2"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tankfield/debugui"
	debugui_ebiten "github.com/plus3/tankfield/debugui/ebiten"
	"github.com/plus3/tankfield/ecs"
	"github.com/plus3/tankfield/render"
	"github.com/plus3/tankfield/sim"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// The two simulation parameters, fixed at launch.
	tankCount      = 20
	safeZoneRadius = 8.0
)

// Game drives the two schedulers from the ebiten loop: the simulation
// pipeline from Update, the render pipeline from Draw.
type Game struct {
	Storage         *ecs.Storage
	UpdateScheduler *ecs.Scheduler
	RenderScheduler *ecs.Scheduler
	ImguiBackend    *ecs.Singleton[debugui_ebiten.ImguiBackend]
	Screen          *ecs.Singleton[render.Screen]
	Camera          *ecs.Singleton[render.Camera]
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("tankfield")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("tankfield", ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	registry := ecs.NewComponentRegistry()
	sim.RegisterComponents(registry)
	ecs.RegisterComponent[debugui.ImguiItem](registry)

	storage := ecs.NewStorage(registry)

	config := sim.Config{
		TankCount:      tankCount,
		SafeZoneRadius: safeZoneRadius,
	}
	ecs.NewSingleton[sim.Config](storage, config)
	ecs.NewSingleton[sim.NoiseField](storage, sim.NewNoiseField(rand.Int64()))
	ecs.NewSingleton[render.Camera](storage, render.Camera{
		Zoom:    2.0,
		ScreenW: ScreenWidth,
		ScreenH: ScreenHeight,
	})
	ecs.NewSingleton[render.InputState](storage)
	ecs.NewSingleton[render.Screen](storage)
	ecs.NewSingleton[debugui.ImguiInputState](storage)
	ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage, debugui_ebiten.ImguiBackend{
		EbitenBackend: imguiBackend,
	})

	sim.SpawnTanks(storage, config)

	update := sim.NewPipeline(storage)
	update.Register(&render.CameraControlSystem{})
	update.Register(&debugui.ImguiSystem{})

	renderScheduler := ecs.NewScheduler(storage)
	renderScheduler.Register(&render.RenderSystem{})

	statsWindow := debugui.NewStatsWindow(storage, update, 120)
	storage.Spawn(debugui.ImguiItem{
		Render: func() { statsWindow.Render(1.0 / 60.0) },
	})

	game := &Game{
		Storage:         storage,
		UpdateScheduler: update,
		RenderScheduler: renderScheduler,
		ImguiBackend:    ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage),
		Screen:          ecs.NewSingleton[render.Screen](storage),
		Camera:          ecs.NewSingleton[render.Camera](storage),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.ImguiBackend.Get().BeginFrame()
	g.UpdateScheduler.Once(1.0 / 60.0)
	g.ImguiBackend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	camera := g.Camera.Get()
	camera.ScreenW = screen.Bounds().Dx()
	camera.ScreenH = screen.Bounds().Dy()

	g.Screen.Get().Image = screen
	g.RenderScheduler.Once(0)

	g.ImguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ImguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
