package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tankfield/debugui"
	"github.com/plus3/tankfield/ecs"
)

// pixelsPerMeter converts world distances to screen pixels at zoom 1.
const pixelsPerMeter = 16

// Camera is the top-down view: world X maps to screen X, world Z to screen
// Y, with the camera target centered on screen.
type Camera struct {
	X, Z    float32
	Zoom    float32
	ScreenW int
	ScreenH int
}

// InputState tracks mouse state across frames for camera dragging.
type InputState struct {
	LastMouseX    int
	LastMouseY    int
	Dragging      bool
	DragStartX    float32
	DragStartZ    float32
	PrevMouseLeft bool
}

// Screen hands the current frame's target image to the render scheduler.
type Screen struct {
	*ebiten.Image
}

// CameraControlSystem pans the camera with left-mouse dragging and zooms with
// the wheel, keeping the point under the cursor fixed while zooming.
type CameraControlSystem struct {
	Camera     ecs.Singleton[Camera]
	InputState ecs.Singleton[InputState]
	ImguiInput ecs.Singleton[debugui.ImguiInputState]
}

func (s *CameraControlSystem) Execute(frame *ecs.UpdateFrame) {
	camera := s.Camera.Get()
	input := s.InputState.Get()

	if s.ImguiInput.Get().WantCaptureMouse {
		return
	}

	mx, my := ebiten.CursorPosition()
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if mouseLeft && !input.PrevMouseLeft {
		input.Dragging = true
		input.DragStartX = camera.X
		input.DragStartZ = camera.Z
		input.LastMouseX = mx
		input.LastMouseY = my
	}
	if !mouseLeft {
		input.Dragging = false
	}

	if input.Dragging {
		dx := float32(mx - input.LastMouseX)
		dy := float32(my - input.LastMouseY)
		camera.X = input.DragStartX - dx/(camera.Zoom*pixelsPerMeter)
		camera.Z = input.DragStartZ - dy/(camera.Zoom*pixelsPerMeter)
	}
	input.PrevMouseLeft = mouseLeft

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		oldZoom := camera.Zoom
		camera.Zoom += float32(wheelY) * 0.2
		if camera.Zoom < 0.5 {
			camera.Zoom = 0.5
		}
		if camera.Zoom > 8.0 {
			camera.Zoom = 8.0
		}

		cx := float32(mx - camera.ScreenW/2)
		cy := float32(my - camera.ScreenH/2)
		worldX := camera.X + cx/(oldZoom*pixelsPerMeter)
		worldZ := camera.Z + cy/(oldZoom*pixelsPerMeter)
		camera.X = worldX - cx/(camera.Zoom*pixelsPerMeter)
		camera.Z = worldZ - cy/(camera.Zoom*pixelsPerMeter)
	}
}
