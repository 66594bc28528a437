// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: split a node into key and children
//
// a singleton is treated as a branch with two empty children
func parts(s subtree) (Item, subtree, subtree, bool) {
	switch p := s.(type) {
	case singleton:
		return p.key, empty{}, empty{}, true
	case *branch:
		return p.key, p.left, p.right, true
	default:
		return nil, s, s, false
	}
}

// single RR rotation, the right child becomes the new root
func rotateLeft(s subtree) subtree {
	key, left, right, ok := parts(s)
	if !ok {
		return s
	}
	rightKey, rightLeft, rightRight, ok := parts(right)
	if !ok {
		return s
	}
	return makeBranch(rightKey, makeBranch(key, left, rightLeft), rightRight)
}

// single LL rotation, the left child becomes the new root
func rotateRight(s subtree) subtree {
	key, left, right, ok := parts(s)
	if !ok {
		return s
	}
	leftKey, leftLeft, leftRight, ok := parts(left)
	if !ok {
		return s
	}
	return makeBranch(leftKey, leftLeft, makeBranch(key, leftRight, right))
}

// double LR rotation
func rotateLeftRight(s subtree) subtree {
	key, left, right, ok := parts(s)
	if !ok {
		return s
	}
	return rotateRight(makeBranch(key, rotateLeft(left), right))
}

// double RL rotation
func rotateRightLeft(s subtree) subtree {
	key, left, right, ok := parts(s)
	if !ok {
		return s
	}
	return rotateLeft(makeBranch(key, left, rotateRight(right)))
}

// restore the balance of a subtree whose children are already balanced
// and differ in height by at most two
func rebalance(s subtree) subtree {
	b, ok := s.(*branch)
	if !ok {
		return s
	}
	switch bf := balanceFactor(b); {
	case bf < -1: // left heavy
		if balanceFactor(b.left) <= 0 {
			return rotateRight(b)
		}
		return rotateLeftRight(b)
	case bf > 1: // right heavy
		if balanceFactor(b.right) >= 0 {
			return rotateLeft(b)
		}
		return rotateRightLeft(b)
	}
	return b
}
