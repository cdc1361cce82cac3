// Copyright 2025 The go-sortutil Authors. SPDX-License-Identifier: Apache-2.0

// Package triplebuf provides a lock-free single-producer single-consumer
// triple buffer for latest-value handoff: the producer repeatedly publishes
// snapshots, the consumer always observes the most recently committed one,
// and neither side ever blocks or allocates after construction. Typical use
// is handing freshly sorted batches from a worker to a reader that only
// cares about the newest result.
//
// Exactly one goroutine may produce (Write/Commit) and exactly one may
// consume (Read). The three slots rotate between the two sides through a
// single atomic word, so a slot is never owned by both at once.
package triplebuf

import "sync/atomic"

const (
	slotMask  = 0b011
	freshFlag = 0b100
)

// Buffer is a triple buffer holding values of type T.
type Buffer[T any] struct {
	slots [3]T

	// ready holds the slot index last committed by the producer, with
	// freshFlag set until the consumer takes it.
	ready atomic.Uint32

	back  uint32 // producer-owned slot
	front uint32 // consumer-owned slot
}

// New creates an empty buffer. The consumer reads the zero value of T until
// the first Commit.
func New[T any]() *Buffer[T] {
	b := &Buffer[T]{back: 1}
	b.ready.Store(2)
	return b
}

// Write returns the producer's current slot to fill in. The pointer is
// valid until the next Commit. Producer side only.
func (b *Buffer[T]) Write() *T {
	return &b.slots[b.back]
}

// Commit publishes the slot last returned by Write and hands the producer a
// free slot for the next Write. Producer side only.
func (b *Buffer[T]) Commit() {
	prev := b.ready.Swap(b.back | freshFlag)
	b.back = prev & slotMask
}

// Read returns the freshest committed value. The bool reports whether the
// value changed since the previous Read. The pointer is valid until the
// next Read. Consumer side only.
func (b *Buffer[T]) Read() (*T, bool) {
	if b.ready.Load()&freshFlag == 0 {
		return &b.slots[b.front], false
	}

	// Trade the consumer's slot for whatever is newest; a commit racing in
	// between simply means we pick up an even fresher slot.
	prev := b.ready.Swap(b.front)
	b.front = prev & slotMask
	return &b.slots[b.front], true
}
