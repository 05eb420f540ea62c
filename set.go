// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset

import (
	"cmp"
	"iter"

	list "github.com/bahlo/generic-list-go"

	"github.com/bitmark-inc/orderedset/avl"
)

// Set - unique items in ascending order
type Set[T any] struct {
	tree *avl.Tree[T]
	less func(a, b T) bool
}

// New - create an empty set for a naturally ordered type
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewFunc - create an empty set ordered by a less predicate
//
// two items are treated as equal when neither is less than the other,
// so the predicate alone defines the whole ordering contract
func NewFunc[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{
		tree: avl.NewFunc(less),
		less: less,
	}
}

// From - create a set holding the given values
// duplicates collapse to a single item
func From[T cmp.Ordered](values ...T) *Set[T] {
	s := New[T]()
	for _, value := range values {
		s.Insert(value)
	}
	return s
}

// FromFunc - create a set with a less predicate holding the given
// values; duplicates collapse to a single item
func FromFunc[T any](less func(a, b T) bool, values ...T) *Set[T] {
	s := NewFunc(less)
	for _, value := range values {
		s.Insert(value)
	}
	return s
}

// Collect - create a set from an item sequence
// duplicates collapse to a single item
func Collect[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	for value := range seq {
		s.Insert(value)
	}
	return s
}

// Size - number of items currently in the set
func (s *Set[T]) Size() int {
	return s.tree.Count()
}

// IsEmpty - true if the set holds no items
func (s *Set[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Insert - add an item
// returns true if the item was added, false if already present
func (s *Set[T]) Insert(value T) bool {
	return s.tree.Insert(value)
}

// Erase - remove an item
// returns true if the item was present
func (s *Set[T]) Erase(value T) bool {
	return s.tree.Delete(value)
}

// Find - position of an item, or nil if not present
func (s *Set[T]) Find(value T) *list.Element[T] {
	return s.tree.Search(value)
}

// LowerBound - position of the smallest item not less than value, or
// nil if every item is less than value
func (s *Set[T]) LowerBound(value T) *list.Element[T] {
	return s.tree.LowerBound(value)
}

// First - position of the lowest item or nil if the set is empty;
// Element.Next walks the rest in ascending order
func (s *Set[T]) First() *list.Element[T] {
	return s.tree.First()
}

// Last - position of the highest item or nil
func (s *Set[T]) Last() *list.Element[T] {
	return s.tree.Last()
}

// All - iterate items in ascending order
func (s *Set[T]) All() iter.Seq[T] {
	return s.tree.All()
}

// Each - call fn on every item in ascending order until fn returns
// false or the items run out
func (s *Set[T]) Each(fn func(value T) bool) {
	for value := range s.tree.All() {
		if !fn(value) {
			return
		}
	}
}

// Values - snapshot of all items in ascending order
func (s *Set[T]) Values() []T {
	values := make([]T, 0, s.Size())
	for value := range s.tree.All() {
		values = append(values, value)
	}
	return values
}

// Copy - deep copy sharing no structure with the original
//
// rebuilt by re-inserting the items in ascending order, which gives a
// deterministic tree shape independent of the original's history
func (s *Set[T]) Copy() *Set[T] {
	c := NewFunc(s.less)
	for value := range s.tree.All() {
		c.Insert(value)
	}
	return c
}

// Clear - discard all items, leaving an empty reusable set
func (s *Set[T]) Clear() {
	s.tree.Clear()
}
