package sim

import "github.com/plus3/tankfield/ecs"

// RegisterComponents registers every simulation component type.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Tank](registry)
	ecs.RegisterComponent[Turret](registry)
	ecs.RegisterComponent[Cannon](registry)
	ecs.RegisterComponent[SpawnPoint](registry)
	ecs.RegisterComponent[Projectile](registry)
	ecs.RegisterComponent[Shape](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[GlobalTransform](registry)
}

// NewPipeline builds the per-frame update pipeline. The order is load
// bearing: transforms are propagated after movement and turret rotation so
// the safe-zone check and the firing pass both read this frame's world poses,
// and firing comes last so the launch direction reflects the rotation applied
// this frame.
func NewPipeline(storage *ecs.Storage) *ecs.Scheduler {
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&TurretRotationSystem{})
	scheduler.Register(&ProjectileSystem{})
	scheduler.Register(&TransformSystem{})
	scheduler.Register(&SafeZoneSystem{})
	scheduler.Register(&ShootingSystem{})
	return scheduler
}
