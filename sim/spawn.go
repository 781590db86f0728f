package sim

import (
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/plus3/tankfield/ecs"
)

// turretTilt pitches every barrel off the vertical axis, in radians.
const turretTilt = 45.0

// SpawnTanks builds Config.TankCount tank rigs at the origin. Each rig is the
// permanent hierarchy Tank -> Turret -> Cannon -> SpawnPoint; the turret
// records the muzzle handle once and keeps it for its whole lifetime.
func SpawnTanks(storage *ecs.Storage, cfg Config) {
	for i := 0; i < cfg.TankCount; i++ {
		col := randomHullColor()

		tank := storage.Spawn(
			Tank{},
			NewTransform(mgl32.Vec3{0, 0.5, 0}),
			GlobalTransform{},
			Shape{Kind: ShapeBox, Color: col, Size: 1.0},
		)

		turret := storage.SpawnChild(tank,
			Transform{
				Translation: mgl32.Vec3{0, 0.5, 0},
				Rotation:    mgl32.QuatRotate(turretTilt, mgl32.Vec3{1, 0, 0}),
				Scale:       mgl32.Vec3{1, 1, 1},
			},
			GlobalTransform{},
			Shape{Kind: ShapeSphere, Color: col, Size: 0.5},
		)

		cannon := storage.SpawnChild(turret,
			Cannon{},
			Transform{
				Translation: mgl32.Vec3{0, 0.5, 0},
				Rotation:    mgl32.QuatIdent(),
				Scale:       mgl32.Vec3{0.2, 0.5, 0.2},
			},
			GlobalTransform{},
			Shape{Kind: ShapeCylinder, Color: col, Size: 2.0},
		)

		muzzle := storage.SpawnChild(cannon,
			SpawnPoint{},
			NewTransform(mgl32.Vec3{0, 1, 0}),
			GlobalTransform{},
		)

		storage.AddComponent(turret, Turret{SpawnPoint: muzzle})
	}
}

func randomHullColor() color.RGBA {
	hue := rand.Float64() * 360
	r, g, b := colorful.Hsl(hue, 1.0, 0.5).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
