// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	list "github.com/bahlo/generic-list-go"
)

// CheckHeights - verify every stored height and the AVL property
func (tree *Tree[T]) CheckHeights() bool {
	return checkHeights(tree.root)
}

// internal: consistency checker
func checkHeights[T any](p *node[T]) bool {
	if nil == p {
		return true
	}
	l := height(p.left)
	r := height(p.right)
	h := 1 + l
	if r > l {
		h = 1 + r
	}
	if p.height != h {
		fmt.Printf("height fail at node: %v  actual: %d  expected: %d\n", p.value, p.height, h)
		return false
	}
	if r-l > 1 || l-r > 1 {
		fmt.Printf("balance fail at node: %v  left: %d  right: %d\n", p.value, l, r)
		return false
	}
	if !checkHeights(p.left) {
		return false
	}
	return checkHeights(p.right)
}

// CheckOrder - verify that an in-order walk of the tree, the order
// list and the per-node list entries all agree
func (tree *Tree[T]) CheckOrder() bool {
	e := tree.order.Front()
	n := 0
	if !checkOrder(tree.root, &e, &n) {
		return false
	}
	if nil != e {
		fmt.Printf("order fail: list has entries beyond the last node\n")
		return false
	}
	if n != tree.count {
		fmt.Printf("count fail: actual: %d  expected: %d\n", n, tree.count)
		return false
	}
	return true
}

// internal: in-order walk advancing the list cursor in step
func checkOrder[T any](p *node[T], e **list.Element[T], n *int) bool {
	if nil == p {
		return true
	}
	if !checkOrder(p.left, e, n) {
		return false
	}
	if nil == *e {
		fmt.Printf("order fail at node: %v  list ended early\n", p.value)
		return false
	}
	if p.element != *e {
		fmt.Printf("order fail at node: %v  entry holds: %v\n", p.value, (*e).Value)
		return false
	}
	*e = (*e).Next()
	*n += 1
	return checkOrder(p.right, e, n)
}
