// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes one occurrence of an item from the tree
//
// if the item is not present the receiver itself is returned
func (tree *Tree) Delete(key Item) *Tree {
	s, removed := remove(key, tree.root)
	if !removed {
		return tree
	}
	return wrap(s)
}

// internal delete routine
//
// returns the new subtree and whether an item was removed; when
// nothing was removed the original subtree is returned unchanged
func remove(key Item, s subtree) (subtree, bool) {
	switch p := s.(type) {
	case singleton:
		if 0 == p.key.Compare(key) {
			return empty{}, true
		}
		return s, false

	case *branch:
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			left, removed := remove(key, p.left)
			if !removed {
				return s, false
			}
			return rebalance(makeBranch(p.key, left, p.right)), true

		case c < 0: // p.key < key
			right, removed := remove(key, p.right)
			if !removed {
				return s, false
			}
			return rebalance(makeBranch(p.key, p.left, right)), true

		default: // found: delete p
			if Empty == p.left.shape() {
				return p.right, true
			}

			// replace by the in-order predecessor
			predecessor, _ := largest(p.left)
			left, _ := remove(predecessor, p.left)
			return rebalance(makeBranch(predecessor, left, p.right)), true
		}

	default: // empty: key not in tree
		return s, false
	}
}

// internal: highest item in a sub-tree
func largest(s subtree) (Item, bool) {
	for {
		switch p := s.(type) {
		case singleton:
			return p.key, true
		case *branch:
			if Empty == p.right.shape() {
				return p.key, true
			}
			s = p.right
		default:
			return nil, false
		}
	}
}

// internal: lowest item in a sub-tree
func smallest(s subtree) (Item, bool) {
	for {
		switch p := s.(type) {
		case singleton:
			return p.key, true
		case *branch:
			if Empty == p.left.shape() {
				return p.key, true
			}
			s = p.left
		default:
			return nil, false
		}
	}
}
