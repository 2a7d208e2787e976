// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderstat - order statistics on top of an avl tree
//
// every node carries the weight (number of nodes) of its subtree,
// which lets ByRank select the node of a given rank and RankOf find
// the rank of a key, both in time proportional to the tree height.
//
// Ranks are one based: rank 1 is the lowest key.
package orderstat
