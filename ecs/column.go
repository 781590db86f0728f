package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// column is a type-erased component column keyed by arena index.
type column interface {
	add(index uint32, item any)
	remove(index uint32)
	get(index uint32) any
	has(index uint32) bool
	count() int
	indices() iter.Seq[uint32]
}

const columnBlockSize = 64

// blockColumn stores components of type T in fixed-size blocks so that
// component addresses stay stable for the lifetime of the entity. Slots are
// recycled through a free list; the arena index of each entity maps to its
// slot through an intmap.
type blockColumn[T any] struct {
	blocks    [][columnBlockSize]T
	owner     []uint32 // slot -> arena index
	filled    []bool
	freeSlots []int
	nextSlot  int
	slots     *intmap.Map[uint32, uint32] // arena index -> slot
}

func newBlockColumn[T any]() *blockColumn[T] {
	return &blockColumn[T]{
		slots: intmap.New[uint32, uint32](columnBlockSize),
	}
}

// add inserts or overwrites the component for the given arena index.
// Accepts either a T value or a *T.
func (c *blockColumn[T]) add(index uint32, item any) {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		panic("component value does not match column type")
	}

	if slot, ok := c.slots.Get(index); ok {
		c.blocks[slot/columnBlockSize][slot%columnBlockSize] = value
		return
	}

	var slot int
	if len(c.freeSlots) > 0 {
		slot = c.freeSlots[len(c.freeSlots)-1]
		c.freeSlots = c.freeSlots[:len(c.freeSlots)-1]
	} else {
		slot = c.nextSlot
		c.nextSlot++
		if slot/columnBlockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, [columnBlockSize]T{})
		}
		c.owner = append(c.owner, 0)
		c.filled = append(c.filled, false)
	}

	c.blocks[slot/columnBlockSize][slot%columnBlockSize] = value
	c.owner[slot] = index
	c.filled[slot] = true
	c.slots.Put(index, uint32(slot))
}

func (c *blockColumn[T]) remove(index uint32) {
	slot, ok := c.slots.Get(index)
	if !ok {
		return
	}

	var zero T
	c.blocks[slot/columnBlockSize][slot%columnBlockSize] = zero
	c.filled[slot] = false
	c.freeSlots = append(c.freeSlots, int(slot))
	c.slots.Del(index)
}

// get returns a *T for the given arena index, or nil if absent.
func (c *blockColumn[T]) get(index uint32) any {
	slot, ok := c.slots.Get(index)
	if !ok {
		return nil
	}
	return &c.blocks[slot/columnBlockSize][slot%columnBlockSize]
}

func (c *blockColumn[T]) has(index uint32) bool {
	_, ok := c.slots.Get(index)
	return ok
}

func (c *blockColumn[T]) count() int {
	return c.slots.Len()
}

// indices iterates the arena indices currently stored in this column,
// in slot order.
func (c *blockColumn[T]) indices() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for slot := 0; slot < c.nextSlot; slot++ {
			if !c.filled[slot] {
				continue
			}
			if !yield(c.owner[slot]) {
				return
			}
		}
	}
}
