// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the order, height, balance and count of every branch
//
// returns nil for a consistent tree, otherwise the first fault found
// wrapped with the key of the offending node
func (tree *Tree) Check() error {
	return check(tree.root)
}

// internal: consistency checker
func check(s subtree) error {
	p, ok := s.(*branch)
	if !ok {
		return nil
	}
	if err := check(p.left); nil != err {
		return err
	}
	if err := check(p.right); nil != err {
		return err
	}

	if Empty == p.left.shape() && Empty == p.right.shape() {
		return fmt.Errorf("key: %v: %w", p.key, fault.ErrShapeViolation)
	}

	if max, ok := largest(p.left); ok && max.Compare(p.key) > 0 {
		return fmt.Errorf("key: %v  left: %v: %w", p.key, max, fault.ErrOrderViolation)
	}
	if min, ok := smallest(p.right); ok && min.Compare(p.key) < 0 {
		return fmt.Errorf("key: %v  right: %v: %w", p.key, min, fault.ErrOrderViolation)
	}

	lh := p.left.height()
	rh := p.right.height()
	h := lh
	if rh > h {
		h = rh
	}
	if p.h != 1+h {
		return fmt.Errorf("key: %v  height: %d  expected: %d: %w", p.key, p.h, 1+h, fault.ErrHeightMismatch)
	}

	if bf := rh - lh; bf < -1 || bf > 1 {
		return fmt.Errorf("key: %v  balance: %+d: %w", p.key, bf, fault.ErrBalanceViolation)
	}

	if n := 1 + p.left.size() + p.right.size(); p.n != n {
		return fmt.Errorf("key: %v  count: %d  expected: %d: %w", p.key, p.n, n, fault.ErrCountMismatch)
	}
	return nil
}

// MaximumHeight - the greatest height an AVL tree of n items can have
//
// height is counted in edges, so a single item has height zero
func MaximumHeight(n int) int {
	if n <= 0 {
		return -1
	}
	return int(math.Floor(1.44*math.Log2(float64(n+2)) - 0.328))
}
