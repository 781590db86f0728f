package sim

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/plus3/tankfield/ecs"
)

// Tank marks a mobile root entity. Tanks are created once at startup and
// never destroyed.
type Tank struct{}

// Turret is the rotating child of a tank. SpawnPoint is the handle of its
// muzzle entity, recorded once at rig construction and valid for the turret's
// whole lifetime. Shooting is re-derived every frame from the turret's
// planar distance to the origin; it is state, not an event.
type Turret struct {
	SpawnPoint ecs.Entity
	Shooting   bool
}

// Cannon marks the barrel entity between turret and muzzle. Purely visual.
type Cannon struct{}

// SpawnPoint marks the muzzle entity whose world position seeds projectiles.
type SpawnPoint struct{}

// Projectile carries a cannon ball's velocity. Position integration, ground
// bounce and the slow-speed despawn all live in ProjectileSystem.
type Projectile struct {
	Velocity mgl32.Vec3
}

// ShapeKind selects the drawable primitive for an entity.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeCylinder
)

// Shape is the drawable surface the renderer consumes. The simulation writes
// it at spawn time and never reads it back.
type Shape struct {
	Kind  ShapeKind
	Color color.RGBA
	Size  float32
}

// Config holds the two simulation parameters, fixed at process start and
// read-only thereafter.
type Config struct {
	TankCount      int
	SafeZoneRadius float32
}

// NoiseField is a deterministic pseudo-random function of 3D position,
// sampled by the movement system to derive smoothly varying headings.
type NoiseField struct {
	noise opensimplex.Noise
}

// NewNoiseField creates a noise field for the given seed. Samples are
// normalized to [0, 1].
func NewNoiseField(seed int64) NoiseField {
	return NoiseField{noise: opensimplex.NewNormalized(seed)}
}

// Sample evaluates the field at a 3D position.
func (n *NoiseField) Sample(x, y, z float32) float32 {
	return float32(n.noise.Eval3(float64(x), float64(y), float64(z)))
}
