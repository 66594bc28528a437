// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert an item into the tree
//
// returns a new tree, the receiver is not modified; an item equal to
// an existing one is kept as a duplicate
func (tree *Tree) Insert(key Item) *Tree {
	return wrap(insert(key, tree.root))
}

// internal routine for insert
func insert(key Item, s subtree) subtree {
	switch p := s.(type) {
	case singleton:
		if p.key.Compare(key) >= 0 { // key <= p.key
			return makeBranch(p.key, singleton{key: key}, empty{})
		}
		return makeBranch(p.key, empty{}, singleton{key: key})

	case *branch:
		if p.key.Compare(key) >= 0 { // key <= p.key
			return rebalance(makeBranch(p.key, insert(key, p.left), p.right))
		}
		return rebalance(makeBranch(p.key, p.left, insert(key, p.right)))

	default: // empty
		return singleton{key: key}
	}
}
