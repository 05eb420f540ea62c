// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove a specific item from the tree
// returns true if the item was present
func (tree *Tree[T]) Delete(value T) bool {
	root, removed := tree.del(tree.root, value)
	tree.root = root
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree[T]) del(p *node[T], value T) (*node[T], bool) {
	if nil == p { // item not in tree
		return nil, false
	}

	removed := false
	if tree.less(value, p.value) {
		p.left, removed = tree.del(p.left, value)
	} else if tree.less(p.value, value) {
		p.right, removed = tree.del(p.right, value)
	} else { // found: unlink the node and its list entry together
		tree.order.Remove(p.element)
		left := p.left
		right := p.right
		p.left = nil
		p.right = nil
		p.element = nil
		if nil == right {
			return left, true
		}
		mn := findMin(right)
		mn.right = removeMin(right)
		mn.left = left
		return rebalance(mn), true
	}
	return rebalance(p), removed
}

// internal: lowest node of a sub-tree
func findMin[T any](p *node[T]) *node[T] {
	if nil == p.left {
		return p
	}
	return findMin(p.left)
}

// internal: detach the lowest node, rebalancing on the way back
func removeMin[T any](p *node[T]) *node[T] {
	if nil == p.left {
		return p.right
	}
	p.left = removeMin(p.left)
	return rebalance(p)
}
