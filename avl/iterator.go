// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the lowest item, nil if empty
func (tree *Tree) First() Item {
	key, _ := smallest(tree.root)
	return key
}

// Last - return the highest item, nil if empty
//
// for a left sub-tree this is the in-order predecessor of its parent
func (tree *Tree) Last() Item {
	key, _ := largest(tree.root)
	return key
}

// Walk - call f for each item in ascending order, stops early if f
// returns false
//
// returns false if the walk was stopped
func (tree *Tree) Walk(f func(Item) bool) bool {
	return walk(tree.root, f)
}

func walk(s subtree, f func(Item) bool) bool {
	switch p := s.(type) {
	case singleton:
		return f(p.key)
	case *branch:
		return walk(p.left, f) && f(p.key) && walk(p.right, f)
	default:
		return true
	}
}

// Items - all items in ascending order
func (tree *Tree) Items() []Item {
	items := make([]Item, 0, tree.Count())
	tree.Walk(func(key Item) bool {
		items = append(items, key)
		return true
	})
	return items
}
