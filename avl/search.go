// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find a specific item
//
// returns nil if the key is not in the tree
func (tree *Tree[K, A, AP]) Search(key K) (*Node[K, A, AP], error) {
	if tree.IsEmpty() {
		return nil, fault.ErrEmptyTree
	}
	h := tree.root
	for none != h {
		c := tree.at(h).key.Compare(key)
		switch {
		case c > 0: // p.key > key
			h = tree.at(h).left
		case c < 0: // p.key < key
			h = tree.at(h).right
		default:
			return tree.cursor(h), nil
		}
	}
	return nil, nil
}

// Predecessor - the node with the highest key below key
//
// returns nil if there is no such node
func (tree *Tree[K, A, AP]) Predecessor(key K) (*Node[K, A, AP], error) {
	if tree.IsEmpty() {
		return nil, fault.ErrEmptyTree
	}
	h := tree.approach(key)
	if tree.at(h).key.Compare(key) < 0 {
		return tree.cursor(h), nil
	}
	p := tree.at(h)
	if none != p.left {
		return tree.cursor(tree.rightmost(p.left)), nil
	}

	// first ancestor ordered before this node
	k := p.key
	for up := p.up; none != up; up = tree.at(up).up {
		if tree.at(up).key.Compare(k) < 0 { // up.key < key
			return tree.cursor(up), nil
		}
	}
	return nil, nil
}

// Successor - the node with the lowest key above key
//
// returns nil if there is no such node
func (tree *Tree[K, A, AP]) Successor(key K) (*Node[K, A, AP], error) {
	if tree.IsEmpty() {
		return nil, fault.ErrEmptyTree
	}
	h := tree.approach(key)
	if tree.at(h).key.Compare(key) > 0 {
		return tree.cursor(h), nil
	}
	p := tree.at(h)
	if none != p.right {
		return tree.cursor(tree.leftmost(p.right)), nil
	}

	// first ancestor ordered after this node
	k := p.key
	for up := p.up; none != up; up = tree.at(up).up {
		if tree.at(up).key.Compare(k) > 0 { // up.key > key
			return tree.cursor(up), nil
		}
	}
	return nil, nil
}

// internal: descend towards key and stop at the matching node or at
// the last node before the required child is absent
//
// tree must not be empty
func (tree *Tree[K, A, AP]) approach(key K) Handle {
	h := tree.root
	for {
		p := tree.at(h)
		c := p.key.Compare(key)
		next := none
		switch {
		case c > 0:
			next = p.left
		case c < 0:
			next = p.right
		default:
			return h
		}
		if none == next {
			return h
		}
		h = next
	}
}
