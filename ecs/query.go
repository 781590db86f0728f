package ecs

import "iter"

// Query wraps a View for use as a system field. The Scheduler initializes
// Query fields reflectively when the system is registered, so systems declare
// the component combinations they operate on as struct types and never touch
// the storage directly.
type Query[T any] struct {
	view *View[T]
}

// NewQuery creates a standalone Query. Inside systems this is not needed;
// the Scheduler calls Init on registration.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
}

// Iter returns an iterator over populated view structs for all matching
// entities.
func (q *Query[T]) Iter() iter.Seq[T] {
	return q.view.Iter()
}

// Entities returns an iterator over the handles of all matching entities.
func (q *Query[T]) Entities() iter.Seq[Entity] {
	return q.view.Entities()
}

// Get returns the populated view struct for a single entity, or nil if it
// doesn't match.
func (q *Query[T]) Get(e Entity) *T {
	return q.view.Get(e)
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for range q.view.Entities() {
		n++
	}
	return n
}
