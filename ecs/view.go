package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View represents a query for entities with a specific combination of
// components. The type T should be a struct whose fields are pointers to
// component types. Named fields can be marked as optional using the
// `ecs:"optional"` struct tag; a field of type ecs.Entity is filled with the
// entity's handle instead of component data.
type View[T any] struct {
	storage *Storage
	fields  []viewField
}

type viewField struct {
	typ      reflect.Type
	offset   uintptr
	optional bool
	handle   bool
}

var entityType = reflect.TypeFor[Entity]()

// NewView creates a new view for the given struct type. Embedded fields are
// always required.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	fields := make([]viewField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityType {
			fields = append(fields, viewField{
				typ:    entityType,
				offset: field.Offset,
				handle: true,
			})
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or ecs.Entity")
		}

		// Embedded fields (field.Anonymous) are always required.
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		fields = append(fields, viewField{
			typ:      field.Type.Elem(),
			offset:   field.Offset,
			optional: isOptional,
		})
	}

	return &View[T]{
		storage: storage,
		fields:  fields,
	}
}

// Fill populates the provided struct pointer with component data for the
// given entity. Returns false if the entity is dead or missing any required
// component. Optional components are set to nil if not present.
func (v *View[T]) Fill(e Entity, ptr *T) bool {
	if !v.storage.Alive(e) {
		return false
	}

	// Use unsafe.Pointer to directly access the struct's memory.
	// This avoids reflection overhead in the hot path.
	structPtr := unsafe.Pointer(ptr)

	for i := range v.fields {
		f := &v.fields[i]
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + f.offset)

		if f.handle {
			*(*Entity)(fieldPtr) = e
			continue
		}

		component := v.storage.GetComponent(e, f.typ)
		if component == nil {
			if !f.optional {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// Extract the data pointer from the interface value.
		componentPtr := (*iface)(unsafe.Pointer(&component)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the
// entity doesn't have all the required components.
func (v *View[T]) Get(e Entity) *T {
	var result T
	if !v.Fill(e, &result) {
		return nil
	}
	return &result
}

// drivingColumn picks the column of the first required component field, which
// bounds the set of entities the view can match.
func (v *View[T]) drivingColumn() (column, bool) {
	for i := range v.fields {
		f := &v.fields[i]
		if f.handle || f.optional {
			continue
		}
		col, ok := v.storage.columns[f.typ]
		return col, ok
	}
	return nil, false
}

// Entities returns an iterator over the handles of all entities that have
// every required component of this view.
func (v *View[T]) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		col, ok := v.drivingColumn()
		if !ok {
			return
		}

		var probe T
		for index := range col.indices() {
			e := newEntity(v.storage.slots[index].generation, index)
			if !v.Fill(e, &probe) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Iter returns an iterator over populated view structs for all entities that
// have every required component. Optional components are nil if not present;
// an ecs.Entity field carries the handle.
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		col, ok := v.drivingColumn()
		if !ok {
			return
		}

		for index := range col.indices() {
			e := newEntity(v.storage.slots[index].generation, index)

			var result T
			if !v.Fill(e, &result) {
				continue
			}
			if !yield(result) {
				return
			}
		}
	}
}
