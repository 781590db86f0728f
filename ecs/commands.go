package ecs

import "reflect"

// Commands provides a buffer for deferred ECS operations that are executed at
// the end of a frame. This prevents structural changes to the storage during
// system execution.
type Commands struct {
	spawns  []spawnCommand
	deletes []Entity
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	parent     Entity
	components []any
}

type addComponentCommand struct {
	entity    Entity
	component any
}

type removeComponentCommand struct {
	entity   Entity
	compType reflect.Type
}

// Spawn queues a root entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{parent: NoEntity, components: components})
}

// SpawnChild queues a child entity spawn operation under the given parent.
func (c *Commands) SpawnChild(parent Entity, components ...any) {
	c.spawns = append(c.spawns, spawnCommand{parent: parent, components: components})
}

// Delete queues an entity (subtree) deletion operation.
func (c *Commands) Delete(entity Entity) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity Entity, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity Entity, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Defer queues an arbitrary function to run after all structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued commands to the provided storage, resetting the
// buffer state.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[Entity]bool)

	for _, entity := range c.deletes {
		storage.Delete(entity)
		deleted[entity] = true
	}

	for _, cmd := range c.removes {
		if !deleted[cmd.entity] {
			storage.RemoveComponent(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if !deleted[cmd.entity] {
			storage.AddComponent(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		if cmd.parent != NoEntity && !storage.Alive(cmd.parent) {
			continue
		}
		storage.SpawnChild(cmd.parent, cmd.components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
