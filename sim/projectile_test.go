package sim_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/tankfield/ecs"
	"github.com/plus3/tankfield/sim"
)

func spawnProjectile(storage *ecs.Storage, at, velocity mgl32.Vec3) ecs.Entity {
	return storage.Spawn(
		sim.Projectile{Velocity: velocity},
		sim.NewTransform(at),
	)
}

func newProjectileScheduler(storage *ecs.Storage) *ecs.Scheduler {
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.ProjectileSystem{})
	return scheduler
}

func TestProjectileIntegration(t *testing.T) {
	storage := newSimStorage()
	e := spawnProjectile(storage, mgl32.Vec3{0, 10, 0}, mgl32.Vec3{3, 0, 0})

	scheduler := newProjectileScheduler(storage)
	scheduler.Once(0.1)

	transform := ecs.ReadComponent[sim.Transform](storage, e)
	assertVec3InDelta(t, mgl32.Vec3{0.3, 10, 0}, transform.Translation, 1e-5)

	// Position moves by the old velocity, then gravity updates velocity.
	projectile := ecs.ReadComponent[sim.Projectile](storage, e)
	assertVec3InDelta(t, mgl32.Vec3{3, -0.982, 0}, projectile.Velocity, 1e-5)
}

func TestProjectileFallsUnderGravity(t *testing.T) {
	storage := newSimStorage()
	e := spawnProjectile(storage, mgl32.Vec3{0, 50, 0}, mgl32.Vec3{0, 0, 0})

	scheduler := newProjectileScheduler(storage)

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		scheduler.Once(dt)
	}

	// One second of explicit-Euler free fall.
	var expectedDrop float32
	var vy float32
	for i := 0; i < 60; i++ {
		expectedDrop += vy * float32(dt)
		vy -= 9.82 * float32(dt)
	}

	transform := ecs.ReadComponent[sim.Transform](storage, e)
	assert.InDelta(t, 50+float64(expectedDrop), float64(transform.Translation.Y()), 1e-3)

	projectile := ecs.ReadComponent[sim.Projectile](storage, e)
	assert.InDelta(t, -9.82, float64(projectile.Velocity.Y()), 1e-3)
}

func TestProjectileBounce(t *testing.T) {
	storage := newSimStorage()
	e := spawnProjectile(storage, mgl32.Vec3{0, 0.05, 0}, mgl32.Vec3{2, -1, 0})

	scheduler := newProjectileScheduler(storage)
	scheduler.Once(0.1)

	// The overshoot below the ground is reflected back above it.
	transform := ecs.ReadComponent[sim.Transform](storage, e)
	assert.InDelta(t, 0.05, float64(transform.Translation.Y()), 1e-5)

	projectile := ecs.ReadComponent[sim.Projectile](storage, e)

	// Vertical speed is inverted and dampened to 0.8, then gravity applies.
	assert.InDelta(t, 0.8-0.982, float64(projectile.Velocity.Y()), 1e-5)

	// Horizontal speed is untouched by the bounce.
	assert.Equal(t, float32(2), projectile.Velocity.X())
}

func TestProjectileDespawnsWhenSlow(t *testing.T) {
	storage := newSimStorage()

	// After the gravity step this frame the velocity is (0.1, 0, 0), whose
	// squared speed 0.01 is below the despawn threshold.
	slow := spawnProjectile(storage, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0.1, 0.982, 0})
	fast := spawnProjectile(storage, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{1, 0.982, 0})

	scheduler := newProjectileScheduler(storage)
	scheduler.Once(0.1)

	assert.False(t, storage.Alive(slow))
	assert.True(t, storage.Alive(fast))
}

func TestProjectileSurvivesAboveThreshold(t *testing.T) {
	storage := newSimStorage()

	// Squared speed stays just above 0.1 for several frames.
	e := spawnProjectile(storage, mgl32.Vec3{0, 100, 0}, mgl32.Vec3{0.4, 10, 0})

	scheduler := newProjectileScheduler(storage)
	for i := 0; i < 10; i++ {
		scheduler.Once(1.0 / 60.0)
		if !storage.Alive(e) {
			t.Fatalf("projectile despawned early on frame %d", i)
		}
	}
}

func TestPipelineFiresFromSpawnedRigs(t *testing.T) {
	storage := newSimStorage()
	config := sim.Config{TankCount: 3, SafeZoneRadius: 0}
	ecs.NewSingleton[sim.Config](storage, config)
	ecs.NewSingleton[sim.NoiseField](storage, sim.NewNoiseField(1))

	sim.SpawnTanks(storage, config)
	scheduler := sim.NewPipeline(storage)

	projectiles := ecs.NewQuery[struct{ *sim.Projectile }](storage)

	// With a zero radius every muzzle is outside the zone, so each rig
	// fires once per frame.
	scheduler.Once(1.0 / 60.0)
	assert.Equal(t, 3, projectiles.Count())

	scheduler.Once(1.0 / 60.0)
	assert.Equal(t, 6, projectiles.Count())

	for item := range projectiles.Iter() {
		assert.InDelta(t, 20.0, float64(item.Projectile.Velocity.Len()), 1e-3)
	}
}
