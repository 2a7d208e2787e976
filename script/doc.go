// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - run text scripts of tree operations
//
// a script has one operation per line, blank lines and anything after
// a '#' are ignored.  Arguments are integer keys (or ranks), decimal
// or 0x hex, and may be given as $VARIABLE to take the value from the
// environment:
//
//   insert 1 3 4 5 2 100 20 13
//   rank 3          # the key of rank 3
//   delete 4
//   predecessor 5
//   check
//   print
//
// operations: insert, delete, search, predecessor, successor, rank,
// position, count, height, check, print
package script
