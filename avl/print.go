// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, rotated
// so the right subtree is at the top
//
// returns the maximum depth of the tree
func (tree *Tree[K, A, AP]) Print(w io.Writer, verbose bool) int {
	return tree.printTree(w, tree.root, "", root, verbose)
}

// internal print - returns the maximum depth of the subtree
func (tree *Tree[K, A, AP]) printTree(w io.Writer, h Handle, prefix string, br branch, verbose bool) int {
	if none == h {
		return 0
	}
	p := tree.at(h)
	rd := 0
	ld := 0
	if none != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right, verbose)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if verbose {
		up := interface{}(nil)
		if none != p.up {
			up = tree.at(p.up).key
		}
		fmt.Fprintf(w, "%v ^%v h:%d %+2d %+v\n", p.key, up, p.height, tree.balance(h), p.aug)
	} else {
		fmt.Fprintf(w, "%v\n", p.key)
	}
	if none != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left, verbose)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
