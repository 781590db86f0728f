package ecs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/tankfield/ecs"
)

type Pose struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type PhysicsSystem struct {
	Entities ecs.Query[struct {
		*Pose
		*Speed
	}]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Iter() {
		entity.Pose.X += entity.Speed.DX * float32(frame.DeltaTime)
		entity.Pose.Y += entity.Speed.DY * float32(frame.DeltaTime)
	}
}

// ExampleScheduler demonstrates building a frame loop with systems. The
// Scheduler initializes Query fields on registration, executes systems in
// registration order, and flushes the command buffer at the end of each
// frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Pose](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Pose{X: 0, Y: 0}, Speed{DX: 10, DY: 5})
	storage.Spawn(Pose{X: 100, Y: 100}, Speed{DX: -5, DY: -5})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})

	scheduler.Once(1.0)

	view := ecs.NewView[struct{ *Pose }](storage)

	fmt.Println("After one frame:")
	for item := range view.Iter() {
		fmt.Printf("Position: (%.0f, %.0f)\n", item.Pose.X, item.Pose.Y)
	}

	// Output:
	// After one frame:
	// Position: (10, 5)
	// Position: (95, 95)
}

// ExampleScheduler_Run demonstrates a continuous loop. Run blocks and
// executes all systems at a fixed interval until the context is cancelled.
func ExampleScheduler_Run() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Pose](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Pose{X: 0, Y: 0}, Speed{DX: 1, DY: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}

type GameTime struct {
	TotalFrames int
	TotalTime   float64
}

type TimeTracker struct {
	GameTime ecs.Singleton[GameTime]
}

func (s *TimeTracker) Execute(frame *ecs.UpdateFrame) {
	gameTime := s.GameTime.Get()
	gameTime.TotalFrames++
	gameTime.TotalTime += frame.DeltaTime
}

// ExampleScheduler_withSingletons demonstrates singleton components in
// systems. Singleton fields are initialized by the Scheduler just like Query
// fields and give systems access to global state.
func ExampleScheduler_withSingletons() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Pose](registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton[GameTime](storage, GameTime{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&TimeTracker{})

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	var gameTime *GameTime
	storage.ReadSingleton(&gameTime)
	fmt.Printf("Frames: %d, Time: %.3f\n", gameTime.TotalFrames, gameTime.TotalTime)

	// Output:
	// Frames: 3, Time: 0.048
}
