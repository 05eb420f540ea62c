// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree fused with a doubly-linked list
// that mirrors the sorted order of the items
//
// Every node keeps a stable reference to its own entry in the list,
// so stepping to the next item costs O(1) instead of a fresh descent
// from the root.  Rotations rewire tree edges only and never move a
// node to a different sorted rank, which is what keeps the list
// references valid without any adjustment.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Ordering is defined by a single less predicate; two items are
// considered equal when neither is less than the other.
package avl
