// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	list "github.com/bahlo/generic-list-go"
)

// a node in the tree
type node[T any] struct {
	left    *node[T]         // left sub-tree
	right   *node[T]         // right sub-tree
	value   T                // the stored item
	height  int              // 1 for a leaf
	element *list.Element[T] // this node's entry in the order list
}

// allocate a new leaf node already linked to its order list entry
func newNode[T any](value T, element *list.Element[T]) *node[T] {
	return &node[T]{
		value:   value,
		height:  1,
		element: element,
	}
}
