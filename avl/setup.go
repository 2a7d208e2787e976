// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key must implement the Compare function
//
// Compare returns a negative number, zero or a positive number when
// the receiver orders before, equal to or after the argument
type Item[K any] interface {
	Compare(K) int
}

// Augment - derived per-subtree state stored in every node
//
// Recompute is called on a node's own state after its height has
// been updated.  left and right are the state of the immediate
// children, nil for an absent child; they are always up to date when
// Recompute runs, so it must not look any further down the tree.
type Augment[K any, A any] interface {
	*A
	Recompute(key K, left *A, right *A)
}

// NoAugment - the empty augmentation for a plain tree
type NoAugment[K any] struct{}

// Recompute - nothing to do
func (*NoAugment[K]) Recompute(K, *NoAugment[K], *NoAugment[K]) {}

// Tree - type to hold the root node of a tree
type Tree[K Item[K], A any, AP Augment[K, A]] struct {
	arena arena[K, A]
	root  Handle
	count int
}

// New - create an initially empty tree
func New[K Item[K], A any, AP Augment[K, A]]() *Tree[K, A, AP] {
	return &Tree[K, A, AP]{
		arena: newArena[K, A](),
		root:  none,
		count: 0,
	}
}

// NewPlain - create an empty tree without augmentation
func NewPlain[K Item[K]]() *Tree[K, NoAugment[K], *NoAugment[K]] {
	return New[K, NoAugment[K], *NoAugment[K]]()
}

// NewFromKey - create a tree holding a single key
func NewFromKey[K Item[K], A any, AP Augment[K, A]](key K) *Tree[K, A, AP] {
	var aug A
	return NewFromNode[K, A, AP](key, aug)
}

// NewFromNode - create a tree whose root is a node built from a key
// and a caller prepared augmentation
func NewFromNode[K Item[K], A any, AP Augment[K, A]](key K, aug A) *Tree[K, A, AP] {
	tree := New[K, A, AP]()
	tree.root = tree.newNode(key, aug)
	tree.count = 1
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, A, AP]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, A, AP]) Count() int {
	return tree.count
}

// Height - height of the root node, zero for an empty tree
func (tree *Tree[K, A, AP]) Height() int {
	return tree.height(tree.root)
}

// Root - return the root node of the tree, nil if empty
func (tree *Tree[K, A, AP]) Root() *Node[K, A, AP] {
	return tree.cursor(tree.root)
}

// allocate and initialise a fresh leaf
func (tree *Tree[K, A, AP]) newNode(key K, aug A) Handle {
	h := tree.arena.alloc(key, aug)
	tree.recompute(h)
	return h
}

// internal accessors, all tolerate the absent handle
func (tree *Tree[K, A, AP]) at(h Handle) *node[K, A] {
	return &tree.arena.nodes[h]
}

func (tree *Tree[K, A, AP]) height(h Handle) int {
	if none == h {
		return 0
	}
	return tree.arena.nodes[h].height
}

func (tree *Tree[K, A, AP]) augOf(h Handle) *A {
	if none == h {
		return nil
	}
	return &tree.arena.nodes[h].aug
}

// update height then the augmentation from the immediate children
func (tree *Tree[K, A, AP]) recompute(h Handle) {
	p := tree.at(h)
	lh := tree.height(p.left)
	rh := tree.height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	AP(&p.aug).Recompute(p.key, tree.augOf(p.left), tree.augOf(p.right))
}

// height(left) - height(right)
func (tree *Tree[K, A, AP]) balance(h Handle) int {
	p := tree.at(h)
	return tree.height(p.left) - tree.height(p.right)
}

// set the parent link of a child, ignoring absent children
func (tree *Tree[K, A, AP]) setUp(child Handle, up Handle) {
	if none != child {
		tree.arena.nodes[child].up = up
	}
}
