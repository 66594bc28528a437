// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - the item at a zero based in-order index, nil if out of range
func (tree *Tree) Get(index int) Item {
	if index < 0 || index >= tree.Count() {
		return nil
	}
	return get(index, tree.root)
}

func get(index int, s subtree) Item {
	for {
		switch p := s.(type) {
		case singleton:
			if 0 == index {
				return p.key
			}
			return nil
		case *branch:
			nl := p.left.size()

			if index < nl {
				s = p.left
				continue
			}
			if index > nl {
				// subtract left nodes + 1 (for this node)
				index -= nl + 1
				s = p.right
				continue
			}
			return p.key
		default:
			return nil
		}
	}
}
