package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/tankfield/ecs"
)

const (
	// restitution is the fraction of vertical speed retained after a ground
	// bounce.
	restitution = 0.8
	// minSpeedSq is the squared speed below which a projectile despawns.
	minSpeedSq = 0.1
)

// gravity is the constant acceleration applied to every projectile.
var gravity = mgl32.Vec3{0, -9.82, 0}

// ProjectileSystem integrates every cannon ball: position by velocity, a
// ground bounce on the y = 0 plane, then gravity into velocity. The bounce
// check runs before the gravity step within the same frame, so the exact
// bounce height lags a continuous-time solution by one frame. Projectiles
// whose squared speed falls below minSpeedSq are despawned at end of frame.
type ProjectileSystem struct {
	Projectiles ecs.Query[struct {
		ecs.Entity
		*Projectile
		*Transform
	}]
}

func (s *ProjectileSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)

	for item := range s.Projectiles.Iter() {
		pos := item.Transform.Translation.Add(item.Projectile.Velocity.Mul(dt))

		// Ground bounce: reflect height, invert and dampen vertical speed.
		// Only the y coordinate is checked; the ground has no horizontal
		// extent to collide with.
		if pos.Y() < 0 {
			pos[1] = -pos[1]
			item.Projectile.Velocity[1] = -item.Projectile.Velocity[1] * restitution
		}
		item.Transform.Translation = pos

		item.Projectile.Velocity = item.Projectile.Velocity.Add(gravity.Mul(dt))

		if item.Projectile.Velocity.LenSqr() < minSpeedSq {
			frame.Commands.Delete(item.Entity)
		}
	}
}
