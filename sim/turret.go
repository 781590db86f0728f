package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/tankfield/ecs"
)

const (
	// turretYawRate is the turret's constant angular velocity in radians per
	// second (half a turn per second).
	turretYawRate = math.Pi
	// launchSpeed is the muzzle speed of a projectile in meters per second.
	launchSpeed = 20.0
	// projectileSize is the drawn radius of a cannon ball.
	projectileSize = 0.1
)

// TurretRotationSystem spins every turret around the world Y axis at a fixed
// rate, unconditionally and independently of tank motion.
type TurretRotationSystem struct {
	Turrets ecs.Query[struct {
		*Turret
		*Transform
	}]
}

func (s *TurretRotationSystem) Execute(frame *ecs.UpdateFrame) {
	yaw := mgl32.QuatRotate(float32(turretYawRate*frame.DeltaTime), mgl32.Vec3{0, 1, 0})
	for turret := range s.Turrets.Iter() {
		// Premultiplied so the yaw is applied in the parent frame.
		turret.Transform.Rotation = yaw.Mul(turret.Transform.Rotation)
	}
}

// SafeZoneSystem derives each turret's shooting state from its world
// position: shooting exactly when the planar (XZ) distance from the origin
// exceeds the configured radius. Two states, no hysteresis, re-derived every
// frame.
type SafeZoneSystem struct {
	Turrets ecs.Query[struct {
		*Turret
		*GlobalTransform
	}]
	Config ecs.Singleton[Config]
}

func (s *SafeZoneSystem) Execute(frame *ecs.UpdateFrame) {
	radius := s.Config.Get().SafeZoneRadius
	for turret := range s.Turrets.Iter() {
		pos := turret.GlobalTransform.Translation
		planar := mgl32.Vec2{pos.X(), pos.Z()}
		turret.Turret.Shooting = planar.Len() > radius
	}
}

// ShootingSystem spawns one projectile per frame for every turret currently
// shooting, at the world position of the turret's muzzle, along the turret's
// world up direction. Firing is level-triggered, not edge-triggered: a turret
// outside the zone emits a projectile on every single frame.
//
// Must run after TurretRotationSystem (and transform propagation), since the
// launch direction reads the turret's current world orientation.
type ShootingSystem struct {
	Turrets ecs.Query[struct {
		*Turret
		*GlobalTransform
		*Shape
	}]
}

func (s *ShootingSystem) Execute(frame *ecs.UpdateFrame) {
	for turret := range s.Turrets.Iter() {
		if !turret.Turret.Shooting {
			continue
		}

		muzzle := ecs.ReadComponent[GlobalTransform](frame.Storage, turret.Turret.SpawnPoint)
		if muzzle == nil {
			// The muzzle link is established once at rig construction and
			// never broken; failing to resolve it is a setup bug.
			panic("sim: turret muzzle does not resolve to a world transform")
		}

		frame.Commands.Spawn(
			Projectile{Velocity: turret.GlobalTransform.Up().Mul(launchSpeed)},
			NewTransform(muzzle.Translation),
			GlobalTransform{
				Translation: muzzle.Translation,
				Rotation:    mgl32.QuatIdent(),
				Scale:       mgl32.Vec3{1, 1, 1},
			},
			Shape{Kind: ShapeSphere, Color: turret.Shape.Color, Size: projectileSize},
		)
	}
}
