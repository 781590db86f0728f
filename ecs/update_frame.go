package ecs

// UpdateFrame carries the per-frame context passed to every system: the
// elapsed time since the previous frame, the deferred command buffer, and
// the storage itself.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
