// SPDX-License-Identifier: MIT
package slotstore

import "errors"

// Sentinel errors for Container operations. Callers MUST branch with
// errors.Is; messages are not part of the contract.
var (
	// ErrOutOfRange indicates an index at or beyond the container's
	// high-water mark was requested.
	ErrOutOfRange = errors.New("slotstore: index out of range")

	// ErrEmptySlot indicates a live (in-range) index names a slot that
	// currently holds no element.
	ErrEmptySlot = errors.New("slotstore: slot is empty")

	// ErrInvariantViolation indicates Remove was called on a slot that
	// is already empty.
	ErrInvariantViolation = errors.New("slotstore: remove of already-empty slot")
)
