package ecs

// Entity is an opaque handle into the Storage arena. It encodes the slot
// generation (upper 32 bits) and the arena index (lower 32 bits), so a handle
// held across frames stops resolving once its slot has been despawned and
// reused.
type Entity uint64

// NoEntity is the zero handle. It never refers to a live entity.
const NoEntity Entity = 0

func newEntity(generation, index uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the handle.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the arena index from the handle.
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
