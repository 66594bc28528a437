// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type number int

func (i number) Compare(x interface{}) int {
	j := x.(number)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

func leaf(i int) subtree {
	return singleton{key: number(i)}
}

func node(i int, left subtree, right subtree) subtree {
	return makeBranch(number(i), left, right)
}

func TestMakeBranchDerivesHeight(t *testing.T) {
	assert.Equal(t, leaf(1), node(1, empty{}, empty{}), "childless branch not collapsed")

	b := node(4, node(2, leaf(1), leaf(3)), empty{})
	assert.Equal(t, 2, b.height(), "wrong height")
	assert.Equal(t, 4, b.size(), "wrong size")
	assert.Equal(t, -2, balanceFactor(b), "wrong balance factor")
}

func TestRotateLeft(t *testing.T) {
	// 1 → 2 → 3 chain
	s := node(1, empty{}, node(2, empty{}, leaf(3)))
	r := rotateLeft(s)

	assert.Equal(t, node(2, leaf(1), leaf(3)), r, "wrong rotation")
	assert.Equal(t, 1, r.height(), "wrong height")
	assert.Nil(t, check(r), "inconsistent")
}

func TestRotateRight(t *testing.T) {
	s := node(3, node(2, leaf(1), empty{}), empty{})
	r := rotateRight(s)

	assert.Equal(t, node(2, leaf(1), leaf(3)), r, "wrong rotation")
	assert.Nil(t, check(r), "inconsistent")
}

func TestRotatePromotesSingleton(t *testing.T) {
	s := node(1, empty{}, leaf(2))
	r := rotateLeft(s)
	assert.Equal(t, node(2, leaf(1), empty{}), r, "singleton not promoted")

	s = node(2, leaf(1), empty{})
	r = rotateRight(s)
	assert.Equal(t, node(1, empty{}, leaf(2)), r, "singleton not promoted")
}

func TestRotateWithoutChildIsUnchanged(t *testing.T) {
	s := node(2, leaf(1), empty{})
	assert.Equal(t, s, rotateLeft(s), "rotated around empty")
	assert.Equal(t, empty{}, rotateRight(empty{}), "rotated empty")
}

func TestDoubleRotations(t *testing.T) {
	lr := rotateLeftRight(node(3, node(1, empty{}, leaf(2)), empty{}))
	assert.Equal(t, node(2, leaf(1), leaf(3)), lr, "wrong left-right")

	rl := rotateRightLeft(node(1, empty{}, node(3, leaf(2), empty{})))
	assert.Equal(t, node(2, leaf(1), leaf(3)), rl, "wrong right-left")
}

func TestRebalanceKeepsInnerSubtrees(t *testing.T) {
	// left heavy with a balanced left child: single right rotation
	s := node(8,
		node(4, node(2, leaf(1), leaf(3)), node(6, leaf(5), leaf(7))),
		leaf(9))
	r := rebalance(s)

	assert.Equal(t, number(4), r.(*branch).key, "wrong root")
	assert.Nil(t, check(r), "inconsistent")
	assert.Equal(t, 9, r.size(), "lost items")

	// balanced nodes are untouched
	b := node(2, leaf(1), leaf(3))
	assert.Equal(t, b, rebalance(b), "balanced node changed")
}

func TestCheckFindsFaults(t *testing.T) {
	bad := &branch{key: number(2), h: 5, n: 3, left: leaf(1), right: leaf(3)}
	assert.Error(t, check(bad), "height fault not found")

	bad = &branch{key: number(2), h: 1, n: 3, left: leaf(3), right: leaf(1)}
	assert.Error(t, check(bad), "order fault not found")

	bad = &branch{key: number(2), h: 1, n: 7, left: leaf(1), right: leaf(3)}
	assert.Error(t, check(bad), "count fault not found")

	bad = &branch{key: number(2), h: 0, n: 1, left: empty{}, right: empty{}}
	assert.Error(t, check(bad), "shape fault not found")

	unbalanced := &branch{key: number(1), h: 2, n: 3, left: empty{}, right: node(2, empty{}, leaf(3))}
	assert.Error(t, check(unbalanced), "balance fault not found")
}
