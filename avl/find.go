// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Strategy - a caller supplied traversal that starts at the root and
// selects a node using the query, or returns nil
type Strategy[K Item[K], A any, AP Augment[K, A], Q any] func(root *Node[K, A, AP], query Q) *Node[K, A, AP]

// Find - run a custom search over the tree
//
// when the strategy runs the tree satisfies both the ordering and the
// balance invariants and all augmentations are up to date
func Find[K Item[K], A any, AP Augment[K, A], Q any](tree *Tree[K, A, AP], strategy Strategy[K, A, AP, Q], query Q) (*Node[K, A, AP], error) {
	if tree.IsEmpty() {
		return nil, fault.ErrEmptyTree
	}
	return strategy(tree.Root(), query), nil
}
