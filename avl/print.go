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
type side int

const (
	rootSide  side = iota
	leftSide  side = iota
	rightSide side = iota
)

// Print - display an ASCII graphic representation of the tree
//
// right sub-trees are drawn above their parent; returns the depth
// of the tree in levels (zero for an empty tree)
func (tree *Tree) Print(w io.Writer, printDetails bool) int {
	return printTree(w, tree.root, "", rootSide, printDetails)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, s subtree, prefix string, sd side, printDetails bool) int {
	key, left, right, ok := parts(s)
	if !ok {
		return 0
	}
	rd := 0
	ld := 0
	if Empty != right.shape() {
		t := "       "
		if leftSide == sd {
			t = "|      "
		}
		rd = printTree(w, right, prefix+t, rightSide, printDetails)
	}
	switch sd {
	case rootSide:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftSide:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightSide:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printDetails {
		fmt.Fprintf(w, "%q %s h:%d %+2d n:%d\n", fmt.Sprint(key), s.shape(), s.height(), balanceFactor(s), s.size())
	} else {
		fmt.Fprintf(w, "%q\n", fmt.Sprint(key))
	}
	if Empty != left.shape() {
		t := "       "
		if rightSide == sd {
			t = "|      "
		}
		ld = printTree(w, left, prefix+t, leftSide, printDetails)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
