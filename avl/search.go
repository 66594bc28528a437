// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the item is in the tree
func (tree *Tree) Search(key Item) bool {
	s := tree.root
	for {
		switch p := s.(type) {
		case singleton:
			return 0 == p.key.Compare(key)
		case *branch:
			switch c := p.key.Compare(key); {
			case c > 0: // p.key > key
				s = p.left
			case c < 0: // p.key < key
				s = p.right
			default:
				return true
			}
		default:
			return false
		}
	}
}

// Rank - number of items that are less than key, and whether key
// itself is in the tree
//
// when found, Get(index) returns an item equal to key
func (tree *Tree) Rank(key Item) (int, bool) {
	index := 0
	found := false
	s := tree.root
	for {
		switch p := s.(type) {
		case singleton:
			switch c := p.key.Compare(key); {
			case c < 0:
				index += 1
			case 0 == c:
				found = true
			}
			return index, found
		case *branch:
			c := p.key.Compare(key)
			if c < 0 { // p.key < key
				index += p.left.size() + 1
				s = p.right
				continue
			}
			if 0 == c {
				found = true
			}
			s = p.left
		default:
			return index, found
		}
	}
}
