package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/tankfield/ecs"
)

const (
	// tankSpeed is the fixed ground speed in meters per second.
	tankSpeed = 5.0
	// noiseScale divides world coordinates before they feed the noise lookup.
	noiseScale = 10.0
)

// MovementSystem wanders every tank across the plane. The heading is a pure
// function of the tank's current position and its arena index (so tanks
// sharing a position still diverge); there is no memory of past headings and
// no goal seeking.
type MovementSystem struct {
	Tanks ecs.Query[struct {
		ecs.Entity
		*Tank
		*Transform
	}]
	Noise ecs.Singleton[NoiseField]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)
	noise := s.Noise.Get()

	for tank := range s.Tanks.Iter() {
		pos := tank.Transform.Translation
		heading := Heading(noise, pos, tank.Entity.Index())

		sin, cos := math.Sincos(float64(heading))
		tank.Transform.Rotation = mgl32.QuatRotate(heading, mgl32.Vec3{0, 1, 0})
		tank.Transform.Translation = pos.Add(
			mgl32.Vec3{float32(sin), 0, float32(cos)}.Mul(tankSpeed * dt))
	}
}

// Heading maps a noise sample at the tank's (scaled) position to an angle in
// [0, 4π). The Y coordinate of the lookup is replaced by the tank's stable
// identity so that co-located tanks pick different headings.
func Heading(noise *NoiseField, position mgl32.Vec3, identity uint32) float32 {
	sample := noise.Sample(
		position.X()/noiseScale,
		float32(identity)/noiseScale,
		position.Z()/noiseScale,
	)
	return sample * 4 * math.Pi
}
