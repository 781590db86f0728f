// Package render draws the simulation top-down with ebiten vector
// primitives. It is presentation only: nothing in here feeds back into the
// simulation.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tankfield/ecs"
	"github.com/plus3/tankfield/sim"
)

var forwardAxis = mgl32.Vec3{0, 0, 1}

var (
	groundColor   = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	safeZoneFill  = color.RGBA{R: 40, G: 200, B: 40, A: 90}
	safeZoneRim   = color.RGBA{R: 40, G: 200, B: 40, A: 200}
	headingMarker = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// RenderSystem paints the ground, the translucent safe-zone disc and every
// Shape-bearing entity. Hulls draw as boxes with a heading tick, turrets and
// projectiles as circles, barrels as strokes along the cannon's world up
// axis.
type RenderSystem struct {
	Camera ecs.Singleton[Camera]
	Config ecs.Singleton[sim.Config]
	Screen ecs.Singleton[Screen]

	Shapes ecs.Query[struct {
		*sim.Shape
		*sim.GlobalTransform
	}]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	camera := s.Camera.Get()
	screen := s.Screen.Get().Image
	if screen == nil {
		return
	}

	screen.Fill(groundColor)

	radius := s.Config.Get().SafeZoneRadius
	zx, zy := s.toScreen(camera, 0, 0)
	zr := radius * camera.Zoom * pixelsPerMeter
	vector.DrawFilledCircle(screen, zx, zy, zr, safeZoneFill, true)
	vector.StrokeCircle(screen, zx, zy, zr, 1.5, safeZoneRim, true)

	// Boxes under circles, barrels on top.
	for _, kind := range []sim.ShapeKind{sim.ShapeBox, sim.ShapeSphere, sim.ShapeCylinder} {
		for item := range s.Shapes.Iter() {
			if item.Shape.Kind != kind {
				continue
			}
			s.drawShape(screen, camera, item.Shape, item.GlobalTransform)
		}
	}
}

func (s *RenderSystem) drawShape(screen *ebiten.Image, camera *Camera, shape *sim.Shape, world *sim.GlobalTransform) {
	pos := world.Translation
	sx, sy := s.toScreen(camera, pos.X(), pos.Z())

	scale := camera.Zoom * pixelsPerMeter

	switch shape.Kind {
	case sim.ShapeBox:
		size := shape.Size * scale
		vector.DrawFilledRect(screen, sx-size/2, sy-size/2, size, size, shape.Color, false)

		// Heading tick along the hull's world forward axis.
		forward := world.Rotation.Rotate(forwardAxis)
		tx, ty := s.toScreen(camera, pos.X()+forward.X()*shape.Size, pos.Z()+forward.Z()*shape.Size)
		vector.StrokeLine(screen, sx, sy, tx, ty, 1.5, headingMarker, true)

	case sim.ShapeSphere:
		vector.DrawFilledCircle(screen, sx, sy, shape.Size*scale, shape.Color, true)

	case sim.ShapeCylinder:
		// The barrel runs along the cannon's local Y; its world half length
		// folds in the rig's Y scale.
		up := world.Up()
		halfLen := shape.Size / 2 * world.Scale.Y()
		bx, by := s.toScreen(camera, pos.X()-up.X()*halfLen, pos.Z()-up.Z()*halfLen)
		tx, ty := s.toScreen(camera, pos.X()+up.X()*halfLen, pos.Z()+up.Z()*halfLen)
		width := shape.Size * world.Scale.X() * scale * 0.2
		if width < 1 {
			width = 1
		}
		vector.StrokeLine(screen, bx, by, tx, ty, width, shape.Color, true)
	}
}

func (s *RenderSystem) toScreen(camera *Camera, wx, wz float32) (float32, float32) {
	sx := (wx-camera.X)*camera.Zoom*pixelsPerMeter + float32(camera.ScreenW)/2
	sy := (wz-camera.Z)*camera.Zoom*pixelsPerMeter + float32(camera.ScreenH)/2
	return sx, sy
}
