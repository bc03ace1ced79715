// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list_test

import (
	"slices"
	"strconv"
	"testing"

	"cloudeng.io/listadt/container/list"
)

func forward[T any](dl *list.List[T]) []T {
	var res []T
	for g := range dl.Forward() {
		res = append(res, g)
	}
	return res
}

func reverse[T any](dl *list.List[T]) []T {
	var res []T
	for g := range dl.Reverse() {
		res = append(res, g)
	}
	return res
}

func iterate[T any](dl *list.List[T]) []T {
	var res []T
	it := dl.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		res = append(res, v)
	}
	return res
}

func testDL[T comparable](t *testing.T, dl *list.List[T], fwd []T) {
	t.Helper()
	if got, want := forward(dl), fwd; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := iterate(dl), fwd; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dl.Len(), len(fwd); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	head, hok := dl.Front()
	tail, tok := dl.Back()
	if got, want := hok, len(fwd) > 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := tok, len(fwd) > 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(fwd) > 0 {
		if got, want := head, fwd[0]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tail, fwd[len(fwd)-1]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	rev := slices.Clone(fwd)
	slices.Reverse(rev)
	if got, want := reverse(dl), rev; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDL(t *testing.T) {
	dl := list.NewOrdered[int]()
	testDL(t, dl, []int{})

	dl.InsertBack(1)
	testDL(t, dl, []int{1})
	dl.InsertBack(2)
	testDL(t, dl, []int{1, 2})
	dl.InsertBack(3)
	testDL(t, dl, []int{1, 2, 3})
	dl.InsertBack(4)
	dl.InsertBack(50)
	dl.InsertBack(6)
	testDL(t, dl, []int{1, 2, 3, 4, 50, 6})

	if v, ok := dl.Remove(1); !ok || v != 1 {
		t.Errorf("got %v, %v, want 1, true", v, ok)
	}
	testDL(t, dl, []int{2, 3, 4, 50, 6})
	if v, ok := dl.RemoveReverse(6); !ok || v != 6 {
		t.Errorf("got %v, %v, want 6, true", v, ok)
	}
	testDL(t, dl, []int{2, 3, 4, 50})
	dl.Remove(3)
	testDL(t, dl, []int{2, 4, 50})
	if _, ok := dl.Remove(33); ok {
		t.Errorf("removed an element that is not in the list")
	}
	testDL(t, dl, []int{2, 4, 50})
	dl.InsertFront(34)
	testDL(t, dl, []int{34, 2, 4, 50})
	dl.Remove(34)
	dl.Remove(4)
	testDL(t, dl, []int{2, 50})
	dl.Clear()
	testDL(t, dl, []int{})
	dl.InsertFront(1)
	dl.InsertFront(3)
	testDL(t, dl, []int{3, 1})
	dl.Remove(3)
	dl.Remove(1)
	testDL(t, dl, []int{})
}

func TestInsertionOrder(t *testing.T) {
	in := []string{"e1", "e2", "e3", "e4"}
	back := list.NewOrdered[string]()
	front := list.NewOrdered[string]()
	for _, v := range in {
		back.InsertBack(v)
		front.InsertFront(v)
	}
	testDL(t, back, in)
	rev := slices.Clone(in)
	slices.Reverse(rev)
	testDL(t, front, rev)
}

func TestScenario(t *testing.T) {
	dl := list.NewOrdered[int]()
	dl.InsertBack(1)
	dl.InsertBack(2)
	dl.InsertBack(3)
	if got, want := dl.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, _ := dl.Front(); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got, _ := dl.Back(); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
	got, ok := dl.Remove(2)
	if !ok || got != 2 {
		t.Errorf("got %v, %v, want 2, true", got, ok)
	}
	testDL(t, dl, []int{1, 3})
}

type resource struct {
	id     int
	closed bool
}

func newResourceList(destroyed *[]int) *list.List[*resource] {
	return list.New(
		func(r *resource) string { return "r" + strconv.Itoa(r.id) },
		func(r *resource) {
			r.closed = true
			*destroyed = append(*destroyed, r.id)
		},
		func(a, b *resource) int { return a.id - b.id },
	)
}

func TestClearAndFree(t *testing.T) {
	var destroyed []int
	dl := newResourceList(&destroyed)
	var rs []*resource
	for i := 1; i <= 5; i++ {
		r := &resource{id: i}
		rs = append(rs, r)
		dl.InsertBack(r)
	}
	dl.Clear()
	if got, want := destroyed, []int{1, 2, 3, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, r := range rs {
		if !r.closed {
			t.Errorf("resource %v was not destroyed", r.id)
		}
	}
	if got, want := dl.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := dl.Front(); ok {
		t.Errorf("expected no front element")
	}
	if _, ok := dl.Back(); ok {
		t.Errorf("expected no back element")
	}

	// Clearing an empty list is a no-op.
	dl.Clear()
	if got, want := len(destroyed), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The list remains usable after Clear.
	if !dl.InsertBack(&resource{id: 7}) {
		t.Fatalf("insert failed after clear")
	}
	if got, want := dl.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	dl.Free()
	if got, want := destroyed, []int{1, 2, 3, 4, 5, 7}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if dl.Valid() {
		t.Errorf("list is still valid after Free")
	}
	if dl.InsertBack(&resource{id: 8}) || dl.InsertFront(&resource{id: 8}) || dl.InsertSorted(&resource{id: 8}) {
		t.Errorf("insert succeeded on a freed list")
	}
	if got, want := dl.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := dl.ToString(); ok {
		t.Errorf("ToString succeeded on a freed list")
	}
	// Freeing twice is harmless.
	dl.Free()
}

func TestRemoveAndErase(t *testing.T) {
	var destroyed []int
	dl := newResourceList(&destroyed)
	r1, r2, r3 := &resource{id: 1}, &resource{id: 2}, &resource{id: 3}
	dl.InsertBack(r1)
	dl.InsertBack(r2)
	dl.InsertBack(r3)

	got, ok := dl.Remove(&resource{id: 2})
	if !ok || got != r2 {
		t.Fatalf("got %v, %v, want %v, true", got, ok, r2)
	}
	if r2.closed || len(destroyed) != 0 {
		t.Errorf("Remove destroyed the element it returned")
	}

	if !dl.Erase(&resource{id: 3}) {
		t.Fatalf("Erase failed")
	}
	if !r3.closed {
		t.Errorf("Erase did not destroy the element")
	}
	if got, want := destroyed, []int{3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if dl.Erase(&resource{id: 3}) {
		t.Errorf("Erase succeeded for a missing element")
	}
	if got, want := dl.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if front, _ := dl.Front(); front != r1 {
		t.Errorf("got %v, want %v", front, r1)
	}
	if back, _ := dl.Back(); back != r1 {
		t.Errorf("got %v, want %v", back, r1)
	}
}

func TestEmptyAndInvalid(t *testing.T) {
	for _, dl := range []*list.List[int]{nil, {}, list.NewOrdered[int]()} {
		if _, ok := dl.Front(); ok {
			t.Errorf("Front: expected failure")
		}
		if _, ok := dl.Back(); ok {
			t.Errorf("Back: expected failure")
		}
		if _, ok := dl.Remove(1); ok {
			t.Errorf("Remove: expected failure")
		}
		if _, ok := dl.RemoveReverse(1); ok {
			t.Errorf("RemoveReverse: expected failure")
		}
		if dl.Erase(1) {
			t.Errorf("Erase: expected failure")
		}
		if _, ok := dl.Find(func(a, b int) bool { return true }, 0); ok {
			t.Errorf("Find: expected failure")
		}
		if got, want := dl.Len(), 0; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		it := dl.Iterator()
		if _, ok := it.Next(); ok {
			t.Errorf("Next: expected failure")
		}
		if got, want := len(forward(dl)), 0; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		dl.Clear()
		dl.Free()
	}
	var nilList *list.List[int]
	if nilList.Valid() || (&list.List[int]{}).Valid() {
		t.Errorf("uninitialized lists should not be valid")
	}
	if nilList.InsertBack(1) {
		t.Errorf("insert succeeded on a nil list")
	}
}

func TestDefaultBehaviors(t *testing.T) {
	dl := list.New[int](nil, nil, nil)
	dl.InsertSorted(3)
	dl.InsertSorted(1)
	dl.InsertSorted(2)
	// Without a compare function InsertSorted appends and nothing matches.
	testDL(t, dl, []int{3, 1, 2})
	if _, ok := dl.Remove(1); ok {
		t.Errorf("Remove matched without a compare function")
	}
	if got, want := dl.String(), "3\n1\n2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	dl.Clear()
	dl.Free()
}
