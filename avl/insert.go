// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	list "github.com/bahlo/generic-list-go"
)

// Insert - insert a new item into the tree
// returns true if the item was added, false if already present
func (tree *Tree[T]) Insert(value T) bool {
	// the descent below sends "not less" to the right, so an equal
	// item must be excluded up front
	if nil != tree.search(tree.root, value) {
		return false
	}
	tree.root = tree.put(tree.root, value)
	tree.count += 1
	return true
}

// internal routine for insert
//
// the new leaf's list entry goes before the lower bound computed
// against the whole pre-insertion tree: rotations on the unwind
// rewire edges only and never change any node's sorted rank, so the
// position stays correct while ancestors rebalance
func (tree *Tree[T]) put(p *node[T], value T) *node[T] {
	if nil == p { // insert new node
		var element *list.Element[T]
		if next := tree.lowerBound(tree.root, value); nil == next {
			element = tree.order.PushBack(value)
		} else {
			element = tree.order.InsertBefore(value, next)
		}
		return newNode(value, element)
	}

	if tree.less(value, p.value) {
		p.left = tree.put(p.left, value)
	} else {
		p.right = tree.put(p.right, value)
	}
	return rebalance(p)
}
