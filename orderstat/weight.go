// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderstat

import (
	"fmt"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Weight - the number of nodes in a subtree
type Weight[K any] struct {
	count int
}

// Recompute - one for this node plus the weights of both children
func (w *Weight[K]) Recompute(_ K, left *Weight[K], right *Weight[K]) {
	w.count = 1 + left.Count() + right.Count()
}

// Count - weight of the subtree, zero for an absent subtree
func (w *Weight[K]) Count() int {
	if nil == w {
		return 0
	}
	return w.count
}

// String - show the weight in tree prints
func (w Weight[K]) String() string {
	return fmt.Sprintf("w:%d", w.count)
}

// Tree - an avl tree with subtree weights
type Tree[K avl.Item[K]] struct {
	*avl.Tree[K, Weight[K], *Weight[K]]
}

// New - create an empty weighted tree
func New[K avl.Item[K]]() *Tree[K] {
	return &Tree[K]{
		Tree: avl.New[K, Weight[K], *Weight[K]](),
	}
}

// weight of a node's left subtree
func leftWeight[K avl.Item[K]](n *avl.Node[K, Weight[K], *Weight[K]]) int {
	if l := n.Left(); nil != l {
		return l.Aug().Count()
	}
	return 0
}

// CheckWeights - verify every subtree weight against its children
func (tree *Tree[K]) CheckWeights() error {
	_, err := checkWeights(tree.Root())
	return err
}

func checkWeights[K avl.Item[K]](n *avl.Node[K, Weight[K], *Weight[K]]) (int, error) {
	if nil == n {
		return 0, nil
	}
	l, err := checkWeights(n.Left())
	if nil != err {
		return 0, err
	}
	r, err := checkWeights(n.Right())
	if nil != err {
		return 0, err
	}
	if w := n.Aug().Count(); 1+l+r != w {
		return 0, fmt.Errorf("key: %v  weight: %d  expected: %d: %w", n.Key(), w, 1+l+r, fault.ErrInconsistentWeight)
	}
	return 1 + l + r, nil
}
