// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns true if a node was removed; a key that is not in the tree
// is not an error and leaves the tree unchanged
func (tree *Tree[K, A, AP]) Delete(key K) (bool, error) {
	if tree.IsEmpty() {
		return false, fault.ErrEmptyTree
	}
	root, removed := tree.delete(tree.root, key)
	tree.root = root
	tree.setUp(root, none)
	return removed, nil
}

// internal delete routine
// returns the possibly updated root of the subtree
func (tree *Tree[K, A, AP]) delete(h Handle, key K) (Handle, bool) {
	if none == h { // key not in tree
		return none, false
	}

	removed := false
	child := none

	c := tree.at(h).key.Compare(key)
	switch {
	case c > 0: // p.key > key
		child, removed = tree.delete(tree.at(h).left, key)
		tree.at(h).left = child
		tree.setUp(child, h)

	case c < 0: // p.key < key
		child, removed = tree.delete(tree.at(h).right, key)
		tree.at(h).right = child
		tree.setUp(child, h)

	default: // found: delete p
		p := tree.at(h)
		if none == p.left || none == p.right {
			child = p.left
			if none == child {
				child = p.right
			}
			tree.setUp(child, p.up)
			tree.arena.release(h)
			tree.count -= 1
			return child, true
		}

		// two children: take over the in-order successor's content,
		// then remove the successor, which has no left child
		s := tree.at(tree.leftmost(p.right))
		p.key = s.key
		p.aug = s.aug

		child, removed = tree.delete(p.right, p.key)
		tree.at(h).right = child
		tree.setUp(child, h)
	}

	if !removed {
		return h, false
	}
	return tree.rebalance(h), true
}

// internal: lowest node in a sub-tree
func (tree *Tree[K, A, AP]) leftmost(h Handle) Handle {
	for none != tree.at(h).left {
		h = tree.at(h).left
	}
	return h
}

// internal: highest node in a sub-tree
func (tree *Tree[K, A, AP]) rightmost(h Handle) Handle {
	for none != tree.at(h).right {
		h = tree.at(h).right
	}
	return h
}
