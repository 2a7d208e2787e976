// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderstat

import (
	"github.com/bitmark-inc/avltree/avl"
)

// ByRank - strategy selecting the node of a one based rank, nil if
// the rank is outside 1..Count
func ByRank[K avl.Item[K]](root *avl.Node[K, Weight[K], *Weight[K]], rank int) *avl.Node[K, Weight[K], *Weight[K]] {
	if rank < 1 || rank > root.Aug().Count() {
		return nil
	}
	n := root
	for nil != n {
		r := leftWeight(n) + 1
		switch {
		case rank < r:
			n = n.Left()
		case rank > r:
			rank -= r
			n = n.Right()
		default:
			return n
		}
	}
	return nil
}

// Select - the node of a one based rank, nil if out of range
func (tree *Tree[K]) Select(rank int) (*avl.Node[K, Weight[K], *Weight[K]], error) {
	return avl.Find[K, Weight[K], *Weight[K], int](tree.Tree, ByRank[K], rank)
}

// RankOf - the one based rank of a key, zero if it is not in the tree
func (tree *Tree[K]) RankOf(key K) (int, error) {
	n, err := tree.Search(key)
	if nil != err || nil == n {
		return 0, err
	}

	// everything to the left, plus each ancestor reached from its right
	rank := leftWeight(n) + 1
	for p := n.Parent(); nil != p; p = p.Parent() {
		if p.Compare(n.Key()) < 0 {
			rank += leftWeight(p) + 1
		}
	}
	return rank, nil
}
