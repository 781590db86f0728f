package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/tankfield/ecs"
)

type commandSpawnSystem struct {
	Positions ecs.Query[struct {
		ecs.Entity
		*Position
	}]
	seenBeforeFlush int
}

func (s *commandSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Position{X: 1})

	// Structural changes are deferred; nothing new is visible mid-frame.
	s.seenBeforeFlush = 0
	for range s.Positions.Iter() {
		s.seenBeforeFlush++
	}
}

func TestCommandsDeferSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	system := &commandSpawnSystem{}
	scheduler.Register(system)

	scheduler.Once(1.0)
	if system.seenBeforeFlush != 0 {
		t.Errorf("expected no entities visible before flush, got %d", system.seenBeforeFlush)
	}

	scheduler.Once(1.0)
	if system.seenBeforeFlush != 1 {
		t.Errorf("expected 1 entity visible next frame, got %d", system.seenBeforeFlush)
	}
}

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	e := storage.Spawn(Position{X: 1})

	commands := &ecs.Commands{}
	commands.Delete(e)

	if !storage.Alive(e) {
		t.Fatal("entity should still be alive before flush")
	}

	commands.Flush(storage)

	if storage.Alive(e) {
		t.Error("entity should be dead after flush")
	}
}

func TestCommandsAddRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	e := storage.Spawn(Position{X: 1})

	commands := &ecs.Commands{}
	commands.AddComponent(e, Velocity{DX: 3})
	commands.Flush(storage)

	vel := ecs.ReadComponent[Velocity](storage, e)
	if vel == nil || vel.DX != 3 {
		t.Fatalf("expected velocity DX=3 after flush, got %v", vel)
	}

	commands.RemoveComponent(e, reflect.TypeOf(Velocity{}))
	commands.Flush(storage)

	if storage.HasComponent(e, reflect.TypeOf(Velocity{})) {
		t.Error("expected velocity to be removed after flush")
	}
}

func TestCommandsDeleteWinsOverAdd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	e := storage.Spawn(Position{X: 1})

	// Queued in the opposite order; deletes are still applied first.
	commands := &ecs.Commands{}
	commands.AddComponent(e, Velocity{DX: 3})
	commands.Delete(e)
	commands.Flush(storage)

	if storage.Alive(e) {
		t.Error("expected entity to be deleted")
	}
}

func TestCommandsSpawnChildSkipsDeadParent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	parent := storage.Spawn(Position{X: 1})

	commands := &ecs.Commands{}
	commands.Delete(parent)
	commands.SpawnChild(parent, Position{X: 2})
	commands.Flush(storage)

	view := ecs.NewView[struct{ *Position }](storage)
	count := 0
	for range view.Entities() {
		count++
	}
	if count != 0 {
		t.Errorf("expected no entities after flush, got %d", count)
	}
}

func TestCommandsDeferRunsAfterStructuralChanges(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	commands := &ecs.Commands{}
	commands.Spawn(Position{X: 9})

	var seen float32 = -1
	commands.Defer(func() {
		view := ecs.NewView[struct{ *Position }](storage)
		for item := range view.Iter() {
			seen = item.Position.X
		}
	})
	commands.Flush(storage)

	if seen != 9 {
		t.Errorf("expected deferred func to see spawned entity, got %f", seen)
	}
}
