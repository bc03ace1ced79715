// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"cmp"
	"fmt"
)

// Behaviors are the caller supplied functions that a List uses to work
// with its otherwise opaque elements.
type Behaviors[T any] struct {
	// Format returns a printable representation of an element, it
	// must not modify the element. If nil, fmt.Sprint is used.
	Format func(T) string
	// Destroy releases any resources held by an element. It is called
	// by Clear, Free and Erase but never by Remove. If nil, elements
	// are simply dropped.
	Destroy func(T)
	// Compare returns a negative number, zero or a positive number
	// when a is less than, equal to or greater than b. It is used
	// both for equality, by Remove and Erase, and for ordering, by
	// InsertSorted. If nil, no element ever compares equal or less.
	Compare func(a, b T) int
}

func (b Behaviors[T]) withDefaults() Behaviors[T] {
	if b.Format == nil {
		b.Format = func(v T) string { return fmt.Sprint(v) }
	}
	if b.Destroy == nil {
		b.Destroy = func(T) {}
	}
	return b
}

// NewOrdered returns a list for an ordered type using cmp.Compare and
// fmt.Sprint. Its elements need no destruction.
func NewOrdered[T cmp.Ordered]() *List[T] {
	return NewWithBehaviors(Behaviors[T]{Compare: cmp.Compare[T]})
}
