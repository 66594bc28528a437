// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 for less, equal, greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Shape - the three forms a subtree can take
type Shape int

// possible shapes
const (
	Empty     Shape = iota
	Singleton Shape = iota
	Branch    Shape = iota
)

// String - name of a shape
func (s Shape) String() string {
	switch s {
	case Empty:
		return "empty"
	case Singleton:
		return "singleton"
	case Branch:
		return "branch"
	default:
		return "unknown"
	}
}

// internal: one of empty, singleton or *branch
type subtree interface {
	shape() Shape
	height() int
	size() int
}

// no items
type empty struct{}

// exactly one item and no children
type singleton struct {
	key Item
}

// an item, cached height and size, and two owned subtrees
type branch struct {
	key   Item
	h     int // 1 + max(left.height, right.height)
	n     int // 1 + left.size + right.size
	left  subtree
	right subtree
}

func (empty) shape() Shape     { return Empty }
func (empty) height() int      { return -1 }
func (empty) size() int        { return 0 }
func (singleton) shape() Shape { return Singleton }
func (singleton) height() int  { return 0 }
func (singleton) size() int    { return 1 }
func (b *branch) shape() Shape { return Branch }
func (b *branch) height() int  { return b.h }
func (b *branch) size() int    { return b.n }

// Tree - an immutable handle on a subtree
type Tree struct {
	root subtree
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: empty{},
	}
}

// internal: wrap a subtree
func wrap(s subtree) *Tree {
	return &Tree{root: s}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return Empty == tree.root.shape()
}

// Count - number of items currently in the tree, duplicates included
func (tree *Tree) Count() int {
	return tree.root.size()
}

// Shape - the shape of the root of the tree
func (tree *Tree) Shape() Shape {
	return tree.root.shape()
}

// Height - -1 for empty, 0 for a single item, else the cached height
func (tree *Tree) Height() int {
	return tree.root.height()
}

// BalanceFactor - height(right) - height(left) of a branch, zero otherwise
func (tree *Tree) BalanceFactor() int {
	return balanceFactor(tree.root)
}

// Key - the item at the root of the tree, nil if empty
func (tree *Tree) Key() Item {
	switch s := tree.root.(type) {
	case singleton:
		return s.key
	case *branch:
		return s.key
	default:
		return nil
	}
}

// Left - the left sub-tree, empty unless the root is a branch
func (tree *Tree) Left() *Tree {
	if b, ok := tree.root.(*branch); ok {
		return wrap(b.left)
	}
	return New()
}

// Right - the right sub-tree, empty unless the root is a branch
func (tree *Tree) Right() *Tree {
	if b, ok := tree.root.(*branch); ok {
		return wrap(b.right)
	}
	return New()
}

// internal: balance factor of any subtree
func balanceFactor(s subtree) int {
	if b, ok := s.(*branch); ok {
		return b.right.height() - b.left.height()
	}
	return 0
}

// internal: build a subtree from a key and two children
//
// height and size are always derived from the children; a key with
// no children collapses to a singleton
func makeBranch(key Item, left subtree, right subtree) subtree {
	if Empty == left.shape() && Empty == right.shape() {
		return singleton{key: key}
	}
	h := left.height()
	if r := right.height(); r > h {
		h = r
	}
	return &branch{
		key:   key,
		h:     1 + h,
		n:     1 + left.size() + right.size(),
		left:  left,
		right: right,
	}
}
