// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	list "github.com/bahlo/generic-list-go"
)

// Search - find a specific item
// returns the item's entry in the order list, or nil if not present
func (tree *Tree[T]) Search(value T) *list.Element[T] {
	return tree.search(tree.root, value)
}

func (tree *Tree[T]) search(p *node[T], value T) *list.Element[T] {
	if nil == p {
		return nil
	}

	if tree.less(value, p.value) {
		return tree.search(p.left, value)
	}
	if tree.less(p.value, value) {
		return tree.search(p.right, value)
	}
	return p.element
}

// LowerBound - entry of the smallest item not less than value
// returns nil if every stored item is less than value
func (tree *Tree[T]) LowerBound(value T) *list.Element[T] {
	return tree.lowerBound(tree.root, value)
}

func (tree *Tree[T]) lowerBound(p *node[T], value T) *list.Element[T] {
	if nil == p {
		return nil
	}

	if tree.less(value, p.value) {
		// p is the answer unless the left sub-tree holds a smaller
		// item still not less than value
		if left := tree.lowerBound(p.left, value); nil != left {
			return left
		}
		return p.element
	}
	if tree.less(p.value, value) {
		return tree.lowerBound(p.right, value)
	}
	return p.element
}
