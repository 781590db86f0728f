package ecs

import "reflect"

// Storage is an arena of entities with per-type component columns and
// explicit parent/child links between entities. Entities are addressed by
// generational handles; slots are recycled through a free list and the
// generation bump invalidates any handle that still points at a recycled
// slot.
type Storage struct {
	registry   *ComponentRegistry
	slots      []slot
	free       []uint32
	columns    map[reflect.Type]column
	singletons map[reflect.Type]any // maps T to a stable *T
}

type slot struct {
	generation uint32
	alive      bool
	parent     Entity
	children   []Entity
	types      []reflect.Type
}

// NewStorage creates a new entity storage with the given component registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		columns:    make(map[reflect.Type]column),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn creates a new root entity with the provided components.
func (s *Storage) Spawn(components ...any) Entity {
	return s.SpawnChild(NoEntity, components...)
}

// SpawnChild creates a new entity parented to the given entity. The
// parent/child link is established once at creation; it lasts until the
// subtree is despawned. Pass NoEntity for a root entity.
func (s *Storage) SpawnChild(parent Entity, components ...any) Entity {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}
	if parent != NoEntity && !s.Alive(parent) {
		panic("cannot spawn child of a dead entity")
	}

	var index uint32
	if len(s.free) > 0 {
		index = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		index = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[index]
	sl.generation++
	sl.alive = true
	sl.parent = parent
	sl.children = sl.children[:0]
	sl.types = sl.types[:0]

	entity := newEntity(sl.generation, index)
	if parent != NoEntity {
		ps := &s.slots[parent.Index()]
		ps.children = append(ps.children, entity)
	}

	for _, comp := range components {
		s.addComponent(entity, comp)
	}
	return entity
}

// Delete despawns the entity and its entire subtree. Stale handles are
// ignored.
func (s *Storage) Delete(e Entity) {
	if !s.Alive(e) {
		return
	}

	sl := &s.slots[e.Index()]
	if sl.parent != NoEntity && s.Alive(sl.parent) {
		ps := &s.slots[sl.parent.Index()]
		for i, child := range ps.children {
			if child == e {
				ps.children = append(ps.children[:i], ps.children[i+1:]...)
				break
			}
		}
	}
	s.deleteSubtree(e)
}

func (s *Storage) deleteSubtree(e Entity) {
	sl := &s.slots[e.Index()]
	for _, child := range sl.children {
		if s.Alive(child) {
			s.deleteSubtree(child)
		}
	}

	for _, typ := range sl.types {
		s.columns[typ].remove(e.Index())
	}

	sl.alive = false
	sl.parent = NoEntity
	sl.children = sl.children[:0]
	sl.types = sl.types[:0]
	s.free = append(s.free, e.Index())
}

// Alive reports whether the handle refers to a live entity.
func (s *Storage) Alive(e Entity) bool {
	index := e.Index()
	if int(index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[index]
	return sl.alive && sl.generation == e.Generation()
}

// Parent returns the parent handle, or NoEntity for roots and dead entities.
func (s *Storage) Parent(e Entity) Entity {
	if !s.Alive(e) {
		return NoEntity
	}
	return s.slots[e.Index()].parent
}

// Children returns the live child handles of the entity. The returned slice
// is owned by the storage and must not be modified.
func (s *Storage) Children(e Entity) []Entity {
	if !s.Alive(e) {
		return nil
	}
	return s.slots[e.Index()].children
}

// AddComponent attaches a component to a live entity, overwriting any
// existing value of the same type.
func (s *Storage) AddComponent(e Entity, component any) {
	if !s.Alive(e) {
		return
	}
	s.addComponent(e, component)
}

func (s *Storage) addComponent(e Entity, component any) {
	compType := componentType(component)
	col := s.columnFor(compType)

	sl := &s.slots[e.Index()]
	if !col.has(e.Index()) {
		sl.types = append(sl.types, compType)
	}
	col.add(e.Index(), component)
}

// RemoveComponent detaches a component type from a live entity.
func (s *Storage) RemoveComponent(e Entity, compType reflect.Type) {
	if !s.Alive(e) {
		return
	}

	col, ok := s.columns[compType]
	if !ok || !col.has(e.Index()) {
		return
	}
	col.remove(e.Index())

	sl := &s.slots[e.Index()]
	for i, typ := range sl.types {
		if typ == compType {
			sl.types = append(sl.types[:i], sl.types[i+1:]...)
			break
		}
	}
}

// GetComponent returns a pointer to the component of the given type for the
// entity, as an any. Returns nil if the entity is dead or has no such
// component.
func (s *Storage) GetComponent(e Entity, compType reflect.Type) any {
	if !s.Alive(e) {
		return nil
	}
	col, ok := s.columns[compType]
	if !ok {
		return nil
	}
	return col.get(e.Index())
}

// HasComponent checks if a live entity has a component of the given type.
func (s *Storage) HasComponent(e Entity, compType reflect.Type) bool {
	if !s.Alive(e) {
		return false
	}
	col, ok := s.columns[compType]
	return ok && col.has(e.Index())
}

// AddSingleton stores a single global instance of the value's type. The
// instance lives outside the entity arena; use it for configuration and
// other per-world state.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	t := v.Type()
	if t.Kind() == reflect.Ptr {
		panic("singleton value must not be a pointer")
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	s.singletons[t] = ptr.Interface()
}

// ReadSingleton populates target, which must be a pointer to a component
// pointer (e.g. **Config), with the singleton of that type. Returns false if
// no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a component pointer")
	}

	entry, ok := s.singletons[v.Elem().Type().Elem()]
	if !ok {
		return false
	}
	v.Elem().Set(reflect.ValueOf(entry))
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) any {
	return s.singletons[t]
}

// columnFor returns the column for a component type, creating it on first
// use. Unregistered types are a setup bug.
func (s *Storage) columnFor(t reflect.Type) column {
	col, ok := s.columns[t]
	if ok {
		return col
	}

	factory := s.registry.getFactory(t)
	if factory == nil {
		panic("component type " + t.String() + " not registered")
	}
	col = factory()
	s.columns[t] = col
	return col
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Map ||
		t.Kind() == reflect.Chan || t.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// ReadComponent returns a typed pointer to the entity's component, or nil if
// the entity is dead or has no component of type T.
func ReadComponent[T any](s *Storage, e Entity) *T {
	comp := s.GetComponent(e, reflect.TypeFor[T]())
	if comp == nil {
		return nil
	}
	return comp.(*T)
}
