// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyset

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// Checkpointer - background process to save a set whenever it changes
type Checkpointer struct {
	sync.Mutex
	set      *Set
	store    Store
	interval time.Duration
	log      *logger.L
	saved    uint64
}

// NewCheckpointer - create a checkpointer writing a set to a store
//
// the set is treated as saved at its current version
func NewCheckpointer(set *Set, store Store, interval time.Duration, log *logger.L) (*Checkpointer, error) {
	if interval <= 0 {
		return nil, fault.ErrInvalidInterval
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Checkpointer{
		set:      set,
		store:    store,
		interval: interval,
		log:      log,
		saved:    set.Version(),
	}, nil
}

// Run - background process loop
//
// a final checkpoint is made on shutdown
func (c *Checkpointer) Run(args interface{}, shutdown <-chan struct{}) {

	c.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(c.interval):
			if err := c.Checkpoint(); nil != err {
				c.log.Errorf("%s: checkpoint error: %s", c.set.Name(), err)
			}
		}
	}

	if err := c.Checkpoint(); nil != err {
		c.log.Errorf("%s: final checkpoint error: %s", c.set.Name(), err)
	}

	c.log.Info("shutting down…")
	c.log.Flush()
}

// Checkpoint - save the set if it changed since the last save
func (c *Checkpointer) Checkpoint() error {
	c.Lock()
	defer c.Unlock()

	tree, version := c.set.snapshotVersion()
	if version == c.saved {
		return nil
	}

	if err := c.store.Save(c.set.Name(), tree); nil != err {
		return err
	}

	c.log.Infof("%s: saved version: %d  count: %d", c.set.Name(), version, tree.Count())
	c.saved = version
	return nil
}
