// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyset

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Store - persistence for a complete set
type Store interface {
	Save(name string, tree *avl.Tree) error
}

// Set - a copy on write set of items
type Set struct {
	writer sync.Mutex // serialises Insert, Delete and Replace

	sync.RWMutex // guards the fields below
	tree         *avl.Tree
	version      uint64

	name string
	log  *logger.L
}

// New - create an empty set
func New(name string, log *logger.L) (*Set, error) {
	if "" == name {
		return nil, fault.ErrInvalidSetName
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	return &Set{
		tree: avl.New(),
		name: name,
		log:  log,
	}, nil
}

// Name - the set's name
func (s *Set) Name() string {
	return s.name
}

// Snapshot - the current tree
//
// the result is immutable and unaffected by later changes to the set
func (s *Set) Snapshot() *avl.Tree {
	s.RLock()
	defer s.RUnlock()
	return s.tree
}

// Version - incremented every time the set changes
func (s *Set) Version() uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.version
}

// the current tree and its version, read together
func (s *Set) snapshotVersion() (*avl.Tree, uint64) {
	s.RLock()
	defer s.RUnlock()
	return s.tree, s.version
}

// Count - number of items in the set
func (s *Set) Count() int {
	return s.Snapshot().Count()
}

// Search - true if an equal item is present
func (s *Set) Search(item avl.Item) bool {
	if nil == item {
		return false
	}
	return s.Snapshot().Search(item)
}

// Insert - add items and return the number added
//
// nil items are ignored
func (s *Set) Insert(items ...avl.Item) int {
	s.writer.Lock()
	defer s.writer.Unlock()

	tree := s.Snapshot()
	n := 0
	for _, item := range items {
		if nil == item {
			continue
		}
		tree = tree.Insert(item)
		n += 1
	}
	if n > 0 {
		s.publish(tree)
	}

	s.log.Debugf("%s: inserted: %d  count: %d", s.name, n, tree.Count())
	return n
}

// Delete - remove one occurrence of each item and return the number
// actually removed
func (s *Set) Delete(items ...avl.Item) int {
	s.writer.Lock()
	defer s.writer.Unlock()

	tree := s.Snapshot()
	n := 0
	for _, item := range items {
		if nil == item {
			continue
		}
		next := tree.Delete(item)
		if next != tree {
			n += 1
			tree = next
		}
	}
	if n > 0 {
		s.publish(tree)
	}

	s.log.Debugf("%s: deleted: %d  count: %d", s.name, n, tree.Count())
	return n
}

// Replace - swap in a complete tree, e.g. one loaded from storage
func (s *Set) Replace(tree *avl.Tree) {
	if nil == tree {
		tree = avl.New()
	}

	s.writer.Lock()
	defer s.writer.Unlock()

	s.publish(tree)
	s.log.Infof("%s: replaced  count: %d", s.name, tree.Count())
}

// must hold the writer lock
func (s *Set) publish(tree *avl.Tree) {
	s.Lock()
	s.tree = tree
	s.version += 1
	s.Unlock()
}
