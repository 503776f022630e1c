// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ring implements a bounded FIFO circular buffer.
//
// A Buffer holds at most Cap() live elements in a fixed backing array.
// Adding to a full Buffer evicts the oldest element. What happens to
// elements that no longer fit when the capacity shrinks depends on the
// Buffer's Policy.
//
// Buffers are not safe for concurrent use. Callers that share a Buffer
// between goroutines must guard it themselves.
package ring

import (
	"errors"

	"github.com/gammazero/deque"
)

var (
	// ErrEmpty is returned by reads from a Buffer with no elements.
	ErrEmpty = errors.New("ring: buffer is empty")

	// ErrExhausted is returned by Iterator.Next past the last element.
	ErrExhausted = errors.New("ring: iterator exhausted")

	// ErrCapacity is returned for a capacity less than 1.
	ErrCapacity = errors.New("ring: capacity must be at least 1")
)

// Policy selects what SetCapacity does with elements that no longer
// fit.
type Policy int

const (
	// DropOldest discards the oldest elements that do not fit.
	DropOldest Policy = iota

	// RetainOverflow moves the oldest elements that do not fit to a
	// pending queue. Pending elements are returned by reads before
	// any live element and count toward Len.
	RetainOverflow
)

func (p Policy) String() string {
	switch p {
	case DropOldest:
		return "drop-oldest"
	case RetainOverflow:
		return "retain-overflow"
	}
	return "Policy(?)"
}

// Buffer is a circular FIFO of T.
type Buffer[T any] struct {
	buf []T

	// head is the next slot to write, tail the oldest live element.
	// head == tail is both empty and full, so empty tells them apart.
	head, tail int
	empty      bool

	policy Policy

	// pending holds overflow retained by SetCapacity, oldest first.
	// Every pending element is older than every live element, and
	// pending is only non-empty while the live store is full.
	pending deque.Deque[T]
}

// New returns an empty Buffer holding at most capacity live elements.
func New[T any](capacity int, policy Policy) (*Buffer[T], error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	return &Buffer[T]{
		buf:    make([]T, capacity),
		empty:  true,
		policy: policy,
	}, nil
}

// Policy returns the shrink policy b was created with.
func (b *Buffer[T]) Policy() Policy {
	return b.policy
}

// Cap returns the maximum number of live elements.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}

// Len returns the number of retrievable elements, including pending
// overflow.
func (b *Buffer[T]) Len() int {
	return b.live() + b.pending.Len()
}

// Pending returns the number of overflow elements retained by
// SetCapacity that have not been read yet.
func (b *Buffer[T]) Pending() int {
	return b.pending.Len()
}

// Empty reports whether b has no retrievable elements.
func (b *Buffer[T]) Empty() bool {
	return b.empty
}

// Full reports whether the live store is at capacity, so that the next
// Add evicts.
func (b *Buffer[T]) Full() bool {
	return b.head == b.tail && !b.empty
}

func (b *Buffer[T]) live() int {
	switch {
	case b.empty:
		return 0
	case b.head > b.tail:
		return b.head - b.tail
	}
	return b.head + len(b.buf) - b.tail
}

// at returns the i'th oldest retrievable element. i must be in
// [0, b.Len()).
func (b *Buffer[T]) at(i int) T {
	np := b.pending.Len()
	if i < np {
		return b.pending.At(i)
	}
	return b.buf[(b.tail+i-np)%len(b.buf)]
}

// Add inserts item as the youngest element. If the live store is full,
// Add evicts the oldest element and returns it with ok set. With
// pending overflow, that is the oldest pending element, and the oldest
// live element moves to the back of the pending queue to make room.
func (b *Buffer[T]) Add(item T) (evicted T, ok bool) {
	if b.Full() {
		if b.pending.Len() > 0 {
			evicted, ok = b.pending.PopFront(), true
			b.pending.PushBack(b.buf[b.tail])
		} else {
			evicted, ok = b.buf[b.tail], true
		}
		b.tail = b.next(b.tail)
	}
	b.buf[b.head] = item
	b.head = b.next(b.head)
	b.empty = false
	return
}

func (b *Buffer[T]) next(i int) int {
	i++
	if i == len(b.buf) {
		return 0
	}
	return i
}

// Remove removes and returns the oldest element.
func (b *Buffer[T]) Remove() (T, error) {
	if b.pending.Len() > 0 {
		return b.pending.PopFront(), nil
	}
	var zero T
	if b.empty {
		return zero, ErrEmpty
	}
	x := b.buf[b.tail]
	b.buf[b.tail] = zero
	b.tail = b.next(b.tail)
	b.empty = b.head == b.tail
	return x, nil
}

// Oldest returns the oldest element without removing it.
func (b *Buffer[T]) Oldest() (T, error) {
	if b.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return b.at(0), nil
}

// Youngest returns the most recently added element without removing
// it.
func (b *Buffer[T]) Youngest() (T, error) {
	if !b.empty {
		i := b.head - 1
		if i < 0 {
			i = len(b.buf) - 1
		}
		return b.buf[i], nil
	}
	var zero T
	return zero, ErrEmpty
}

// RemoveAll removes every element and returns them oldest first. It
// returns nil if b is empty.
func (b *Buffer[T]) RemoveAll() []T {
	n := b.Len()
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = b.at(i)
	}
	b.pending.Clear()
	var zero T
	for i := range b.buf {
		b.buf[i] = zero
	}
	b.head, b.tail, b.empty = 0, 0, true
	return out
}

// SetCapacity changes the maximum number of live elements to n. If
// fewer than the current elements fit, the oldest ones are discarded
// (DropOldest) or moved to the pending queue (RetainOverflow). Growing
// the buffer moves pending elements back into the live store.
func (b *Buffer[T]) SetCapacity(n int) error {
	if n < 1 {
		return ErrCapacity
	}
	if n == len(b.buf) {
		return nil
	}

	old := make([]T, b.Len())
	for i := range old {
		old[i] = b.at(i)
	}
	b.pending.Clear()
	if excess := len(old) - n; excess > 0 {
		if b.policy == RetainOverflow {
			for _, x := range old[:excess] {
				b.pending.PushBack(x)
			}
		}
		old = old[excess:]
	}

	b.buf = make([]T, n)
	copy(b.buf, old)
	b.tail = 0
	b.head = len(old) % n
	b.empty = len(old) == 0
	return nil
}
