// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a read only view of one node of a tree
//
// a Node stays valid until the next Insert or Delete on its tree,
// after which it may refer to a released or relocated node
type Node[K Item[K], A any, AP Augment[K, A]] struct {
	tree *Tree[K, A, AP]
	h    Handle
}

// wrap a handle, nil for the absent handle
func (tree *Tree[K, A, AP]) cursor(h Handle) *Node[K, A, AP] {
	if none == h {
		return nil
	}
	return &Node[K, A, AP]{
		tree: tree,
		h:    h,
	}
}

// Handle - arena index of the node
func (p *Node[K, A, AP]) Handle() Handle {
	return p.h
}

// Key - read the key from a node
func (p *Node[K, A, AP]) Key() K {
	return p.tree.at(p.h).key
}

// Aug - the augmented state of the node's subtree
//
// the result must be treated as read only
func (p *Node[K, A, AP]) Aug() *A {
	return &p.tree.at(p.h).aug
}

// Compare - compare the node's key with a bare key
func (p *Node[K, A, AP]) Compare(key K) int {
	return p.Key().Compare(key)
}

// CompareNode - compare the keys of two nodes
func (p *Node[K, A, AP]) CompareNode(q *Node[K, A, AP]) int {
	return p.Key().Compare(q.Key())
}

// Height - height of the subtree rooted at this node, a leaf is 1
func (p *Node[K, A, AP]) Height() int {
	return p.tree.at(p.h).height
}

// Balance - height(left) - height(right)
func (p *Node[K, A, AP]) Balance() int {
	return p.tree.balance(p.h)
}

// LeftHeavy - left subtree is strictly higher
func (p *Node[K, A, AP]) LeftHeavy() bool {
	return p.Balance() > 0
}

// RightHeavy - right subtree is strictly higher
func (p *Node[K, A, AP]) RightHeavy() bool {
	return p.Balance() < 0
}

// Left - left child or nil
func (p *Node[K, A, AP]) Left() *Node[K, A, AP] {
	return p.tree.cursor(p.tree.at(p.h).left)
}

// Right - right child or nil
func (p *Node[K, A, AP]) Right() *Node[K, A, AP] {
	return p.tree.cursor(p.tree.at(p.h).right)
}

// Parent - return parent node of a node, nil for the root
func (p *Node[K, A, AP]) Parent() *Node[K, A, AP] {
	return p.tree.cursor(p.tree.at(p.h).up)
}

// Depth - get the depth of a node
func (p *Node[K, A, AP]) Depth() uint {
	count := uint(0)
	parent := p.tree.at(p.h).up
	for none != parent {
		count += 1
		parent = p.tree.at(parent).up
	}
	return count
}
