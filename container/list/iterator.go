// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

// Iterator is a forward only cursor over a List. It does not own any
// part of the list and must not be used once the list has been cleared,
// freed or had elements not yet returned by Next removed; no attempt is
// made to detect such use. An Iterator may be copied, each copy advances
// independently.
type Iterator[T any] struct {
	cur *node[T]
	end *node[T]
}

// Iterator returns an Iterator positioned at the head of the list. The
// iterator for an empty or invalid list is already exhausted.
func (dl *List[T]) Iterator() Iterator[T] {
	if dl.Len() == 0 {
		return Iterator[T]{}
	}
	return Iterator[T]{cur: dl.sentinel.next, end: &dl.sentinel}
}

// Next returns the element at the cursor and advances the cursor. Once
// the tail has been returned Next returns false, as it does for all
// subsequent calls. An iterator parked on a node that has since been
// removed is treated as exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	// Linked nodes always have a non-nil next, removed ones are zeroed.
	if it.cur == nil || it.cur == it.end || it.cur.next == nil {
		it.cur = nil
		var zero T
		return zero, false
	}
	val := it.cur.T
	it.cur = it.cur.next
	return val, true
}

// Find returns the first element, scanning from the head, for which
// pred(element, key) returns true. It does not modify the list.
func (dl *List[T]) Find(pred func(elem, key T) bool, key T) (T, bool) {
	return FindFunc(dl, pred, key)
}

// FindFunc is like Find but allows for the search key to be of a different
// type to the list's elements.
func FindFunc[T, K any](dl *List[T], pred func(elem T, key K) bool, key K) (T, bool) {
	var zero T
	if dl.Len() == 0 || pred == nil {
		return zero, false
	}
	for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
		if pred(n.T, key) {
			return n.T, true
		}
	}
	return zero, false
}
