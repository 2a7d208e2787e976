// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent links and a per-node
// augmentation that is recomputed bottom-up after every structural
// change
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes are held in a per-tree arena and refer to their children and
// parent by handle, so a rotation is a few handle assignments and
// released slots are reused by later inserts.
//
// The augmentation is a type parameter: any type A whose pointer
// implements Augment[K, A] can carry derived subtree state, for
// example a subtree weight for order statistics.  Custom queries over
// that state are run with Find and a caller supplied Strategy.
//
// Duplicate keys are rejected; a delete of a key that is not present
// is a no-op.
package avl
