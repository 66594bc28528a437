// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a persistent AVL balanced tree of ordered items
//
// Every subtree is one of three shapes: Empty (height -1), Singleton
// (one item, no children, height 0) or Branch (one item, a cached
// height and two subtrees).  Insert and Delete never modify an
// existing tree; they build the changed path and return a new tree
// that shares all untouched subtrees with the old one.  Any tree
// value is therefore an immutable snapshot and may be read from
// several go routines while a single writer derives new trees.
//
// Duplicates are retained: an item equal to a branch key is inserted
// into the left subtree, and Delete removes one occurrence at a time.
//
// The ordering comes from Item.Compare and must be a consistent total
// order.  Inconsistent comparisons leave the tree order undefined;
// they are not detected.
package avl
