// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor: right height minus left height
func factor[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

// recompute a node's height from its already correct children
func setHeight[T any](p *node[T]) {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// single RR rotation; the order list is untouched
func rotateLeft[T any](p *node[T]) *node[T] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	setHeight(p)
	setHeight(p1)
	return p1
}

// single LL rotation; the order list is untouched
func rotateRight[T any](p *node[T]) *node[T] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	setHeight(p)
	setHeight(p1)
	return p1
}

// re-establish the AVL property at one node after a single insert or
// delete below it; must be applied on every unwind step so the factor
// can never drift past ±2
func rebalance[T any](p *node[T]) *node[T] {
	setHeight(p)
	switch factor(p) {
	case +2:
		if factor(p.right) < 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	case -2:
		if factor(p.left) > 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	}
	return p
}
