// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

// Iterator walks the elements of a Buffer in one direction, once.
//
// An Iterator captures the Buffer's size when it is created. Modifying
// the Buffer while the Iterator is in use gives undefined results.
type Iterator[T any] struct {
	b       *Buffer[T]
	i, n    int
	reverse bool
}

// OldestFirst returns an Iterator over b from oldest to youngest.
func (b *Buffer[T]) OldestFirst() *Iterator[T] {
	return &Iterator[T]{b: b, n: b.Len()}
}

// YoungestFirst returns an Iterator over b from youngest to oldest.
func (b *Buffer[T]) YoungestFirst() *Iterator[T] {
	return &Iterator[T]{b: b, n: b.Len(), reverse: true}
}

// HasNext reports whether Next will return another element.
func (it *Iterator[T]) HasNext() bool {
	return it.i < it.n
}

// Len returns the number of elements left.
func (it *Iterator[T]) Len() int {
	return it.n - it.i
}

// Next returns the next element, or ErrExhausted if there are none.
func (it *Iterator[T]) Next() (T, error) {
	if it.i >= it.n {
		var zero T
		return zero, ErrExhausted
	}
	k := it.i
	if it.reverse {
		k = it.n - 1 - k
	}
	it.i++
	return it.b.at(k), nil
}
