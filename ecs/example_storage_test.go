package ecs_test

import (
	"fmt"

	"github.com/plus3/tankfield/ecs"
)

// ExampleStorage demonstrates the basic API for managing entities and
// components. Entities are generational handles into an arena; component data
// lives in per-type columns and pointers into them stay valid for the
// entity's lifetime.
func ExampleStorage() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)

	player := storage.Spawn(
		Position{X: 10, Y: 20},
		Velocity{DX: 1, DY: 0},
		Health{Current: 100, Max: 100},
	)

	pos := ecs.ReadComponent[Position](storage, player)
	fmt.Printf("Player spawned at (%.0f, %.0f)\n", pos.X, pos.Y)

	pos.X = 15
	pos.Y = 25
	fmt.Printf("Player moved to (%.0f, %.0f)\n", pos.X, pos.Y)

	storage.Delete(player)
	fmt.Println("Player deleted")

	// Output:
	// Player spawned at (10, 20)
	// Player moved to (15, 25)
	// Player deleted
}

// ExampleStorage_hierarchy shows parent/child links. Children are created
// under a parent and the whole subtree despawns together.
func ExampleStorage_hierarchy() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	storage := ecs.NewStorage(registry)

	body := storage.Spawn(Position{X: 0, Y: 0})
	arm := storage.SpawnChild(body, Position{X: 1, Y: 0})
	hand := storage.SpawnChild(arm, Position{X: 2, Y: 0})

	fmt.Printf("Body children: %d\n", len(storage.Children(body)))
	fmt.Printf("Hand's parent is the arm: %v\n", storage.Parent(hand) == arm)

	storage.Delete(body)
	fmt.Printf("Hand alive after subtree delete: %v\n", storage.Alive(hand))

	// Output:
	// Body children: 1
	// Hand's parent is the arm: true
	// Hand alive after subtree delete: false
}
