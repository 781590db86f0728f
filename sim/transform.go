package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/tankfield/ecs"
)

// Transform is an entity's pose relative to its parent: translation, rotation
// and scale, in that composition order.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns an identity-rotated, unit-scaled transform at the
// given translation.
func NewTransform(translation mgl32.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// GlobalTransform is an entity's pose in world space, recomputed every frame
// by composing local transforms along the parent chain.
type GlobalTransform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Up returns the world-space direction of the entity's local +Y axis.
func (g *GlobalTransform) Up() mgl32.Vec3 {
	return g.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// compose applies a child's local transform to this world pose.
func (g *GlobalTransform) compose(local *Transform) GlobalTransform {
	scaled := mgl32.Vec3{
		g.Scale.X() * local.Translation.X(),
		g.Scale.Y() * local.Translation.Y(),
		g.Scale.Z() * local.Translation.Z(),
	}
	return GlobalTransform{
		Translation: g.Translation.Add(g.Rotation.Rotate(scaled)),
		Rotation:    g.Rotation.Mul(local.Rotation),
		Scale: mgl32.Vec3{
			g.Scale.X() * local.Scale.X(),
			g.Scale.Y() * local.Scale.Y(),
			g.Scale.Z() * local.Scale.Z(),
		},
	}
}

func globalFrom(local *Transform) GlobalTransform {
	return GlobalTransform{
		Translation: local.Translation,
		Rotation:    local.Rotation,
		Scale:       local.Scale,
	}
}

// TransformSystem recomputes GlobalTransform for every hierarchy root and its
// descendants. It must run after anything that rotates or moves entities and
// before anything that reads world poses, so the firing check sees the
// turret's current orientation rather than last frame's.
type TransformSystem struct {
	Transformed ecs.Query[struct {
		ecs.Entity
		*Transform
		*GlobalTransform
	}]
}

func (s *TransformSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Transformed.Iter() {
		if frame.Storage.Parent(item.Entity) != ecs.NoEntity {
			continue
		}
		world := globalFrom(item.Transform)
		*item.GlobalTransform = world
		s.propagate(frame.Storage, item.Entity, &world)
	}
}

func (s *TransformSystem) propagate(storage *ecs.Storage, parent ecs.Entity, parentWorld *GlobalTransform) {
	for _, child := range storage.Children(parent) {
		local := ecs.ReadComponent[Transform](storage, child)
		global := ecs.ReadComponent[GlobalTransform](storage, child)
		if local == nil || global == nil {
			continue
		}
		world := parentWorld.compose(local)
		*global = world
		s.propagate(storage, child, &world)
	}
}
