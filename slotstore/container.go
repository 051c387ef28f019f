// SPDX-License-Identifier: MIT
//
// File: container.go
// Role: the slotted container itself — Insert/Remove/Get/All/Clone.
//
// Implementation:
//   - slots holds one zero-or-live value per index below the high-water
//     mark; occupied tracks which of those are live; free holds the
//     LIFO stack of recycled indices.
//   - Insert pops free if non-empty, otherwise appends at the high-water
//     mark. Remove nulls the slot and, only when the removed index is
//     the trailing (high-water - 1) one, shrinks the high-water mark
//     instead of pushing a free-slot entry (the "trailing-slot collapse"
//     rule also used by Node incidence arrays in package hostgraph).
//
// AI-Hints (file):
//   - Get/Remove bound-check with >= against len(slots), never >: a
//     one-past-the-end read must never resolve to a stale, reused slot.
package slotstore

import "iter"

// Indexed is implemented by elements stored in a Container. Insert calls
// SetIndex with the slot it assigned so the element can report its own
// stable index afterward (Node.Index/Edge.Index rely on this).
type Indexed interface {
	SetIndex(i int)
}

// Container is a generic slotted array: insert hands out a stable index,
// remove recycles it via a LIFO free-slot stack, and iteration visits
// occupied slots in ascending index order.
//
// Zero value is not usable; construct with New.
type Container[T Indexed] struct {
	slots    []T
	occupied []bool
	free     []int
}

// New returns an empty Container.
func New[T Indexed]() *Container[T] {
	return &Container[T]{}
}

// Insert places x into a recycled slot if one is free, otherwise appends
// at the high-water mark, calls x.SetIndex with the assigned index, and
// returns that index.
//
// Complexity: O(1) amortized.
func (c *Container[T]) Insert(x T) int {
	var idx int
	if n := len(c.free); n > 0 {
		idx = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		var zero T
		c.slots = append(c.slots, zero)
		c.occupied = append(c.occupied, false)
		idx = len(c.slots) - 1
	}
	x.SetIndex(idx)
	c.slots[idx] = x
	c.occupied[idx] = true

	return idx
}

// Get returns the element at index, or ErrOutOfRange if index is at or
// beyond the high-water mark, or ErrEmptySlot if index is in range but
// currently unoccupied.
//
// Complexity: O(1).
func (c *Container[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(c.slots) {
		return zero, ErrOutOfRange
	}
	if !c.occupied[index] {
		return zero, ErrEmptySlot
	}

	return c.slots[index], nil
}

// Remove nulls the slot at index. If index is the trailing occupied
// slot (index == high-water mark - 1), the high-water mark shrinks by
// one and no free-slot entry is produced; otherwise index is pushed
// onto the free-slot stack for reuse by a future Insert.
//
// Returns ErrOutOfRange for an index at or beyond the high-water mark
// and ErrInvariantViolation if the slot is already empty; in both cases
// state is unchanged.
//
// Complexity: O(1).
func (c *Container[T]) Remove(index int) error {
	if index < 0 || index >= len(c.slots) {
		return ErrOutOfRange
	}
	if !c.occupied[index] {
		return ErrInvariantViolation
	}

	var zero T
	c.slots[index] = zero
	c.occupied[index] = false

	if index == len(c.slots)-1 {
		c.slots = c.slots[:index]
		c.occupied = c.occupied[:index]
	} else {
		c.free = append(c.free, index)
	}

	return nil
}

// Count returns the number of currently occupied slots.
//
// Complexity: O(1).
func (c *Container[T]) Count() int {
	return len(c.slots) - len(c.free)
}

// HighWater returns the container's current high-water mark (one past
// the greatest index ever assigned and not since trimmed by a trailing
// Remove).
//
// Complexity: O(1).
func (c *Container[T]) HighWater() int {
	return len(c.slots)
}

// Occupied reports whether index names a live element. Out-of-range
// indices report false rather than erroring, for use by diagnostics
// that scan [0, HighWater).
//
// Complexity: O(1).
func (c *Container[T]) Occupied(index int) bool {
	if index < 0 || index >= len(c.slots) {
		return false
	}

	return c.occupied[index]
}

// FreeSlots returns a snapshot of the free-slot stack, bottom-to-top.
// Intended for hostgraph.Validate; not part of the matcher-facing query
// surface.
//
// Complexity: O(len(free)).
func (c *Container[T]) FreeSlots() []int {
	out := make([]int, len(c.free))
	copy(out, c.free)

	return out
}

// All returns an iterator over (index, element) for every occupied
// slot, in ascending index order. The sequence is finite and may be
// restarted by calling All again.
//
// Complexity: O(HighWater) to exhaust.
func (c *Container[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, occ := range c.occupied {
			if !occ {
				continue
			}
			if !yield(i, c.slots[i]) {
				return
			}
		}
	}
}

// Clone returns a new Container with the identical shape (high-water
// mark, occupied bitmap, free-slot stack) as c, with each occupied
// element replaced by copyElem(element). copyElem need not call
// SetIndex: Clone invokes SetIndex on the returned value with the slot
// it is stored into.
//
// This is what lets hostgraph's snapshot stack (spec §4.4) reproduce
// exact stable indices after restore: the clone's free-slot stack and
// high-water mark are byte-for-byte the same as the source's.
//
// Complexity: O(HighWater).
func (c *Container[T]) Clone(copyElem func(T) T) *Container[T] {
	out := &Container[T]{
		slots:    make([]T, len(c.slots)),
		occupied: make([]bool, len(c.occupied)),
		free:     append([]int(nil), c.free...),
	}
	for i, occ := range c.occupied {
		if !occ {
			continue
		}
		ne := copyElem(c.slots[i])
		ne.SetIndex(i)
		out.slots[i] = ne
		out.occupied[i] = true
	}

	return out
}
