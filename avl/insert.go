// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - add a new key to the tree
//
// returns fault.ErrDuplicateKey, leaving the tree unchanged, if the
// key is already present
func (tree *Tree[K, A, AP]) Insert(key K) error {
	var aug A
	return tree.InsertNode(key, aug)
}

// InsertNode - add a new node built from a key and a caller prepared
// augmentation, for augmentations that carry per-node state in
// addition to derived state
func (tree *Tree[K, A, AP]) InsertNode(key K, aug A) error {
	root, err := tree.insert(tree.root, key, aug)
	if nil != err {
		return err
	}
	tree.root = root
	tree.setUp(root, none)
	tree.count += 1
	return nil
}

// internal routine for insert
// returns the possibly updated root of the subtree
func (tree *Tree[K, A, AP]) insert(h Handle, key K, aug A) (Handle, error) {
	if none == h { // insert new node
		return tree.newNode(key, aug), nil
	}

	// no pointer into the arena is held across the recursion since
	// allocation may move the nodes
	c := tree.at(h).key.Compare(key)
	switch {
	case c > 0: // p.key > key
		child, err := tree.insert(tree.at(h).left, key, aug)
		if nil != err {
			return h, err
		}
		tree.at(h).left = child
		tree.setUp(child, h)
	case c < 0: // p.key < key
		child, err := tree.insert(tree.at(h).right, key, aug)
		if nil != err {
			return h, err
		}
		tree.at(h).right = child
		tree.setUp(child, h)
	default:
		return h, fault.ErrDuplicateKey
	}
	return tree.rebalance(h), nil
}
