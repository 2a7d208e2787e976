// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the structure of the whole tree
//
// parent links, cached heights, balance, key order and the node
// count are all checked; the first violation is returned wrapped with
// the offending key
func (tree *Tree[K, A, AP]) Check() error {
	if none != tree.root && none != tree.at(tree.root).up {
		return fmt.Errorf("root: %v: %w", tree.at(tree.root).key, fault.ErrInconsistentParent)
	}
	n, _, err := tree.check(tree.root, none, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("counted: %d  expected: %d: %w", n, tree.count, fault.ErrInconsistentCount)
	}
	if u := tree.arena.used(); u != tree.count {
		return fmt.Errorf("arena in use: %d  expected: %d: %w", u, tree.count, fault.ErrInconsistentCount)
	}
	return nil
}

// internal: consistency checker
// low and high bound the keys allowed in the subtree (nil = unbounded)
// returns the number of nodes and the height of the subtree
func (tree *Tree[K, A, AP]) check(h Handle, up Handle, low *K, high *K) (int, int, error) {
	if none == h {
		return 0, 0, nil
	}
	p := tree.at(h)
	if p.up != up {
		return 0, 0, fmt.Errorf("key: %v: %w", p.key, fault.ErrInconsistentParent)
	}
	if nil != low && p.key.Compare(*low) <= 0 {
		return 0, 0, fmt.Errorf("key: %v  not above: %v: %w", p.key, *low, fault.ErrOutOfOrder)
	}
	if nil != high && p.key.Compare(*high) >= 0 {
		return 0, 0, fmt.Errorf("key: %v  not below: %v: %w", p.key, *high, fault.ErrOutOfOrder)
	}

	key := p.key
	nl, hl, err := tree.check(p.left, h, low, &key)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := tree.check(p.right, h, &key, high)
	if nil != err {
		return 0, 0, err
	}

	height := 1 + hl
	if hr > hl {
		height = 1 + hr
	}
	if height != p.height {
		return 0, 0, fmt.Errorf("key: %v  height: %d  expected: %d: %w", key, p.height, height, fault.ErrInconsistentHeight)
	}
	if d := hl - hr; d > 1 || d < -1 {
		return 0, 0, fmt.Errorf("key: %v  balance: %d: %w", key, d, fault.ErrUnbalanced)
	}
	return 1 + nl + nr, height, nil
}
