// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedset - a set of unique items held in ascending order
//
// The set is backed by an AVL tree fused with a doubly-linked list
// mirroring the sorted order, so membership, insertion, removal and
// lower-bound cost O(log n) while stepping through the items in order
// costs O(1) per item.
//
// Positions are *list.Element values from the order list; nil is the
// one-past-last sentinel returned when nothing matches.
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package orderedset
