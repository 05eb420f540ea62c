// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	list "github.com/bahlo/generic-list-go"
)

// First - return the entry with the lowest item or nil if the tree is
// empty; Element.Next walks the rest in ascending order
func (tree *Tree[T]) First() *list.Element[T] {
	return tree.order.Front()
}

// Last - return the entry with the highest item or nil
func (tree *Tree[T]) Last() *list.Element[T] {
	return tree.order.Back()
}

// All - iterate items in ascending order
// each step walks one link of the order list
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := tree.order.Front(); nil != e; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}
