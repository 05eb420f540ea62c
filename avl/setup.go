// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	list "github.com/bahlo/generic-list-go"
)

// Tree - type to hold the root node of a tree together with the list
// mirroring its sorted order
type Tree[T any] struct {
	root  *node[T]
	count int
	less  func(a, b T) bool
	order list.List[T]
}

// New - create an initially empty tree for a naturally ordered type
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewFunc - create an initially empty tree ordered by a less predicate
func NewFunc[T any](less func(a, b T) bool) *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
		less:  less,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Depth - the height of the tree
func (tree *Tree[T]) Depth() int {
	return height(tree.root)
}

// Clear - discard all nodes and their order list entries
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.order.Init()
}
