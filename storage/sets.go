// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/element"
	"github.com/bitmark-inc/avltree/fault"
)

// record prefixes
const (
	namePrefix    = 'N'
	elementPrefix = 'S'
)

func nameKey(name string) []byte {
	return append([]byte{namePrefix}, name...)
}

// S ++ name ++ 0x00
func elementRange(name string) *util.Range {
	prefix := make([]byte, 0, len(name)+2)
	prefix = append(prefix, elementPrefix)
	prefix = append(prefix, name...)
	prefix = append(prefix, 0x00)
	return util.BytesPrefix(prefix)
}

func validName(name string) error {
	if "" == name || 0 <= bytes.IndexByte([]byte(name), 0x00) {
		return fault.ErrInvalidSetName
	}
	return nil
}

func packCount(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

func unpackCount(buffer []byte) (uint64, error) {
	if 8 != len(buffer) {
		return 0, fmt.Errorf("count length: %d: %w", len(buffer), fault.ErrInvalidElement)
	}
	return binary.BigEndian.Uint64(buffer), nil
}

// count ++ kind
func packNameRecord(n uint64, kind element.Kind) []byte {
	return append(packCount(n), kind...)
}

func unpackNameRecord(buffer []byte) (uint64, element.Kind, error) {
	if len(buffer) < 8 {
		return 0, "", fmt.Errorf("name record length: %d: %w", len(buffer), fault.ErrInvalidElement)
	}
	n, err := unpackCount(buffer[:8])
	return n, element.Kind(buffer[8:]), err
}

// Save - replace the stored contents of a set with a tree
//
// the whole set is written in a single batch
func (d *Database) Save(name string, tree *avl.Tree) error {
	if err := validName(name); nil != err {
		return err
	}
	if nil == tree {
		tree = avl.New()
	}

	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.ErrReadOnly
	}

	batch := new(leveldb.Batch)

	// clear out the previous contents
	r := elementRange(name)
	iter := d.db.NewIterator(r, nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}

	// equal items are adjacent in order, so count runs of them
	var (
		err      error
		kind     element.Kind
		previous avl.Item
		count    uint64
	)
	flush := func() {
		if nil == previous || nil != err {
			return
		}
		k, e := element.KindOf(previous)
		if nil != e {
			err = e
			return
		}
		if "" == kind {
			kind = k
		} else if k != kind {
			err = fmt.Errorf("set: %q  kind: %s  element: %v: %w", name, kind, previous, fault.ErrKindMismatch)
			return
		}
		encoded, e := element.Encode(previous)
		if nil != e {
			err = e
			return
		}
		key := make([]byte, 0, len(r.Start)+len(encoded))
		key = append(key, r.Start...)
		key = append(key, encoded...)
		batch.Put(key, packCount(count))
	}
	tree.Walk(func(item avl.Item) bool {
		if nil != previous && 0 == previous.Compare(item) {
			count += 1
			return true
		}
		flush()
		previous = item
		count = 1
		return nil == err
	})
	flush()
	if nil != err {
		return err
	}

	batch.Put(nameKey(name), packNameRecord(uint64(tree.Count()), kind))

	if err := d.db.Write(batch, nil); nil != err {
		return err
	}
	d.log.Debugf("saved: %q  count: %d", name, tree.Count())
	return nil
}

// Load - rebuild a saved set
func (d *Database) Load(name string, kind element.Kind) (*avl.Tree, error) {
	if err := validName(name); nil != err {
		return nil, err
	}

	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return nil, fault.ErrNotInitialised
	}

	value, err := d.db.Get(nameKey(name), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrSetNotFound
	} else if nil != err {
		return nil, err
	}
	expected, stored, err := unpackNameRecord(value)
	if nil != err {
		return nil, err
	}

	// an empty set records no kind
	if "" != stored && kind != stored {
		return nil, fmt.Errorf("set: %q  stored: %s  requested: %s: %w", name, stored, kind, fault.ErrKindMismatch)
	}

	r := elementRange(name)
	iter := d.db.NewIterator(r, nil)
	defer iter.Release()

	tree := avl.New()
	for iter.Next() {
		item, err := element.Decode(kind, iter.Key()[len(r.Start):])
		if nil != err {
			return nil, err
		}
		count, err := unpackCount(iter.Value())
		if nil != err {
			return nil, err
		}
		for i := uint64(0); i < count; i += 1 {
			tree = tree.Insert(item)
		}
	}
	if err := iter.Error(); nil != err {
		return nil, err
	}

	if uint64(tree.Count()) != expected {
		return nil, fmt.Errorf("set: %q  loaded: %d  expected: %d: %w", name, tree.Count(), expected, fault.ErrCountMismatch)
	}
	return tree, nil
}

// Names - all stored set names in ascending order
func (d *Database) Names() ([]string, error) {
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return nil, fault.ErrNotInitialised
	}

	iter := d.db.NewIterator(util.BytesPrefix([]byte{namePrefix}), nil)
	defer iter.Release()

	names := make([]string, 0, 8)
	for iter.Next() {
		names = append(names, string(iter.Key()[1:]))
	}
	return names, iter.Error()
}

// Remove - delete a set and all its elements
func (d *Database) Remove(name string) error {
	if err := validName(name); nil != err {
		return err
	}

	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.ErrNotInitialised
	}
	if d.readOnly {
		return fault.ErrReadOnly
	}

	key := nameKey(name)
	if ok, err := d.db.Has(key, nil); nil != err {
		return err
	} else if !ok {
		return fault.ErrSetNotFound
	}

	batch := new(leveldb.Batch)
	batch.Delete(key)

	iter := d.db.NewIterator(elementRange(name), nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}

	if err := d.db.Write(batch, nil); nil != err {
		return err
	}
	d.log.Infof("removed: %q", name)
	return nil
}
