// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// promote the left child of n, returns the new subtree root
//
// the caller must link the result into n's former parent slot
func (tree *Tree[K, A, AP]) rotateRight(n Handle) Handle {
	p := tree.at(n)
	l := p.left
	pl := tree.at(l)
	moved := pl.right

	pl.right = n
	p.left = moved
	tree.setUp(moved, n)

	pl.up = p.up
	p.up = l

	// child first: l's augmentation is derived from n's
	tree.recompute(n)
	tree.recompute(l)
	return l
}

// promote the right child of n, mirror of rotateRight
func (tree *Tree[K, A, AP]) rotateLeft(n Handle) Handle {
	p := tree.at(n)
	r := p.right
	pr := tree.at(r)
	moved := pr.left

	pr.left = n
	p.right = moved
	tree.setUp(moved, n)

	pr.up = p.up
	p.up = r

	tree.recompute(n)
	tree.recompute(r)
	return r
}

// restore the AVL property at n after a change below it
//
// returns the possibly new subtree root, whose up link is n's old one
func (tree *Tree[K, A, AP]) rebalance(n Handle) Handle {
	tree.recompute(n)
	b := tree.balance(n)
	switch {
	case b < -1: // right-heavy
		r := tree.at(n).right
		if tree.balance(r) > 0 { // right-left case
			r = tree.rotateRight(r)
			tree.at(n).right = r
		}
		n = tree.rotateLeft(n)
	case b > 1: // left-heavy
		l := tree.at(n).left
		if tree.balance(l) < 0 { // left-right case
			l = tree.rotateLeft(l)
			tree.at(n).left = l
		}
		n = tree.rotateRight(n)
	}
	return n
}
