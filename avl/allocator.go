// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Handle - index of a node in the tree's arena, zero is "no node"
type Handle uint32

const none Handle = 0

// a node in the tree
type node[K any, A any] struct {
	left   Handle // left sub-tree
	right  Handle // right sub-tree
	up     Handle // parent node, or free list link for released slots
	key    K      // key part for ordering
	aug    A      // augmented subtree state
	height int    // 1 + max(height(left), height(right))
}

// storage for the nodes of a single tree
//
// slot zero is never used so that a zero Handle means absent
type arena[K any, A any] struct {
	nodes      []node[K, A]
	pool       Handle // linked list (via up) of released slots
	totalNodes int    // total slots created
	freeNodes  int    // number of slots in the pool
}

func newArena[K any, A any]() arena[K, A] {
	return arena[K, A]{
		nodes: make([]node[K, A], 1, 16),
	}
}

// allocate a new node, reuses released slots if any are available
func (a *arena[K, A]) alloc(key K, aug A) Handle {
	if none == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("avl: pool corrupt: %d free nodes but empty list", a.freeNodes)
		}
		a.totalNodes += 1
		a.nodes = append(a.nodes, node[K, A]{
			key:    key,
			aug:    aug,
			height: 1,
		})
		return Handle(len(a.nodes) - 1)
	}
	h := a.pool
	p := &a.nodes[h]
	a.pool = p.up
	p.key = key
	p.aug = aug
	p.height = 1
	p.left = none
	p.right = none
	p.up = none // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return h
}

// return a node to the pool
func (a *arena[K, A]) release(h Handle) {
	var zeroKey K
	var zeroAug A

	p := &a.nodes[h]
	p.up = a.pool // use as free list pointer
	p.left = none
	p.right = none
	p.key = zeroKey
	p.aug = zeroAug
	p.height = 0
	a.freeNodes += 1

	a.pool = h
}

// number of live nodes according to the allocator
func (a *arena[K, A]) used() int {
	return a.totalNodes - a.freeNodes
}
