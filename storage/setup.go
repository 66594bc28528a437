// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avltree/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentVersion = 1
)

// access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - handle to an open store
type Database struct {
	sync.RWMutex
	db       *leveldb.DB
	readOnly bool
	log      *logger.L
}

// Open - open or create the database directory
func Open(name string, readOnly bool) (*Database, error) {

	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentVersion {
		db.Close()
		log.Criticalf("database version: %d > current version: %d", version, currentVersion)
		return nil, fmt.Errorf("%w: %d > current version: %d", fault.ErrDatabaseVersion, version, currentVersion)
	}

	if 0 == version {
		if readOnly {
			db.Close()
			return nil, fmt.Errorf("%w: read-only database is not initialised", fault.ErrDatabaseVersion)
		}

		// database was empty so tag as current version
		err = putVersion(db, currentVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened: %q  version: %d  read-only: %t", name, currentVersion, readOnly)

	return &Database{
		db:       db,
		readOnly: readOnly,
		log:      log,
	}, nil
}

// Close - close the database
//
// subsequent operations return fault.ErrNotInitialised
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		d.db.Close()
		d.db = nil
		d.log.Info("closed")
		d.log.Flush()
	}
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
