// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides a doubly linked list whose elements are opaque to
// the list and are formatted, destroyed and compared by caller supplied
// Behaviors.
//
// Failure is always reported by return value: operations that produce an
// element return (T, bool) with false meaning empty, not found or an
// invalid list. A List is valid once created by New, NewWithBehaviors or
// NewOrdered and until Free is called; a nil *List is never valid.
//
// Elements inserted into a List belong to it until they are returned by
// Remove, which hands them back to the caller without calling Destroy.
// Clear, Free and Erase call Destroy on the elements they discard.
package list

import (
	"iter"
	"strings"
)

// List provides a doubly linked list.
type List[T any] struct {
	// sentinel.next and sentinel.prev are the first and last nodes,
	// or the sentinel itself when the list is empty. A nil
	// sentinel.next marks an uninitialized or freed list.
	sentinel node[T]
	len      int
	b        Behaviors[T]
}

type node[T any] struct {
	next *node[T]
	prev *node[T]
	T    T
}

// New returns an empty list bound to the supplied format, destroy and
// compare functions. Any of them may be nil, see Behaviors.
func New[T any](format func(T) string, destroy func(T), compare func(a, b T) int) *List[T] {
	return NewWithBehaviors(Behaviors[T]{
		Format:  format,
		Destroy: destroy,
		Compare: compare,
	})
}

// NewWithBehaviors returns an empty list bound to b.
func NewWithBehaviors[T any](b Behaviors[T]) *List[T] {
	dl := &List[T]{b: b.withDefaults()}
	dl.reset()
	return dl
}

func (dl *List[T]) reset() {
	dl.len = 0
	dl.sentinel.next = &dl.sentinel
	dl.sentinel.prev = &dl.sentinel
}

// Valid returns true if the list may be used, that is, it was created
// by one of the constructors and has not been freed.
func (dl *List[T]) Valid() bool {
	return dl != nil && dl.sentinel.next != nil
}

// Len returns the number of elements in the list, or 0 for an invalid list.
func (dl *List[T]) Len() int {
	if !dl.Valid() {
		return 0
	}
	return dl.len
}

// Clear destroys every element, head to tail, and leaves the list empty
// and usable. It is a no-op for an empty or invalid list.
func (dl *List[T]) Clear() {
	if !dl.Valid() {
		return
	}
	for n := dl.sentinel.next; n != &dl.sentinel; {
		next := n.next
		dl.b.Destroy(n.T)
		*n = node[T]{}
		n = next
	}
	dl.reset()
}

// Free clears the list and then invalidates it. All subsequent operations
// on the list report failure.
func (dl *List[T]) Free() {
	if !dl.Valid() {
		return
	}
	dl.Clear()
	dl.sentinel = node[T]{}
	dl.b = Behaviors[T]{}
}

func (dl *List[T]) insertAfterNode(val T, it *node[T]) {
	n := &node[T]{T: val}
	n.prev = it
	n.next = it.next
	n.prev.next = n
	n.next.prev = n
	dl.len++
}

// InsertBack appends val to the list. It returns false if the list
// is invalid.
func (dl *List[T]) InsertBack(val T) bool {
	if !dl.Valid() {
		return false
	}
	dl.insertAfterNode(val, dl.sentinel.prev)
	return true
}

// InsertFront prepends val to the list. It returns false if the list
// is invalid.
func (dl *List[T]) InsertFront(val T) bool {
	if !dl.Valid() {
		return false
	}
	dl.insertAfterNode(val, &dl.sentinel)
	return true
}

// Front returns the first element without removing it.
func (dl *List[T]) Front() (T, bool) {
	if dl.Len() == 0 {
		var zero T
		return zero, false
	}
	return dl.sentinel.next.T, true
}

// Back returns the last element without removing it.
func (dl *List[T]) Back() (T, bool) {
	if dl.Len() == 0 {
		var zero T
		return zero, false
	}
	return dl.sentinel.prev.T, true
}

func (dl *List[T]) removeNode(n *node[T]) T {
	dl.len--
	n.prev.next = n.next
	n.next.prev = n.prev
	val := n.T
	*n = node[T]{}
	return val
}

// Remove unlinks the first element, scanning from the head, that compares
// equal to val and returns it. The element is not destroyed, ownership
// passes back to the caller.
func (dl *List[T]) Remove(val T) (T, bool) {
	if n := dl.matchForward(val); n != nil {
		return dl.removeNode(n), true
	}
	var zero T
	return zero, false
}

// RemoveReverse is like Remove but scans from the tail.
func (dl *List[T]) RemoveReverse(val T) (T, bool) {
	if n := dl.matchReverse(val); n != nil {
		return dl.removeNode(n), true
	}
	var zero T
	return zero, false
}

// Erase is like Remove except that the removed element is destroyed
// rather than returned.
func (dl *List[T]) Erase(val T) bool {
	n := dl.matchForward(val)
	if n == nil {
		return false
	}
	dl.b.Destroy(dl.removeNode(n))
	return true
}

func (dl *List[T]) matchForward(val T) *node[T] {
	if dl.Len() == 0 || dl.b.Compare == nil {
		return nil
	}
	for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
		if dl.b.Compare(n.T, val) == 0 {
			return n
		}
	}
	return nil
}

func (dl *List[T]) matchReverse(val T) *node[T] {
	if dl.Len() == 0 || dl.b.Compare == nil {
		return nil
	}
	for n := dl.sentinel.prev; n != &dl.sentinel; n = n.prev {
		if dl.b.Compare(n.T, val) == 0 {
			return n
		}
	}
	return nil
}

// InsertSorted inserts val immediately before the first element that
// val compares less than, or at the back if there is no such element.
// Elements that compare equal to val therefore remain ahead of it.
// A list built only with InsertSorted is in ascending order.
func (dl *List[T]) InsertSorted(val T) bool {
	if !dl.Valid() {
		return false
	}
	if dl.b.Compare != nil {
		for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
			if dl.b.Compare(val, n.T) < 0 {
				dl.insertAfterNode(val, n.prev)
				return true
			}
		}
	}
	dl.insertAfterNode(val, dl.sentinel.prev)
	return true
}

// Separator is placed between formatted elements by ToString.
const Separator = "\n"

// ToString returns the formatted elements, head to tail, joined by
// Separator. An empty list yields an empty string, an invalid one
// yields false.
func (dl *List[T]) ToString() (string, bool) {
	if !dl.Valid() {
		return "", false
	}
	out := &strings.Builder{}
	for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
		if n != dl.sentinel.next {
			out.WriteString(Separator)
		}
		out.WriteString(dl.b.Format(n.T))
	}
	return out.String(), true
}

// String implements fmt.Stringer.
func (dl *List[T]) String() string {
	s, _ := dl.ToString()
	return s
}

// Forward returns an iterator over the elements from head to tail.
func (dl *List[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !dl.Valid() {
			return
		}
		for n := dl.sentinel.next; n != &dl.sentinel; n = n.next {
			if !yield(n.T) {
				break
			}
		}
	}
}

// Reverse returns an iterator over the elements from tail to head.
func (dl *List[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !dl.Valid() {
			return
		}
		for n := dl.sentinel.prev; n != &dl.sentinel; n = n.prev {
			if !yield(n.T) {
				break
			}
		}
	}
}
