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

// Auditor - background process to periodically verify the structure
// of a set
type Auditor struct {
	sync.Mutex
	set      *Set
	interval time.Duration
	log      *logger.L
	audited  uint64
	lastErr  error
}

// NewAuditor - create an auditor for a set
func NewAuditor(set *Set, interval time.Duration, log *logger.L) (*Auditor, error) {
	if interval <= 0 {
		return nil, fault.ErrInvalidInterval
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Auditor{
		set:      set,
		interval: interval,
		log:      log,
	}, nil
}

// Run - background process loop
func (a *Auditor) Run(args interface{}, shutdown <-chan struct{}) {

	a.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(a.interval):
			_ = a.Audit()
		}
	}

	a.log.Info("shutting down…")
	a.log.Flush()
}

// Audit - check the current snapshot, skipping the check if the set
// has not changed since the last one
func (a *Auditor) Audit() error {
	a.Lock()
	defer a.Unlock()

	tree, version := a.set.snapshotVersion()
	if 0 != a.audited && version == a.audited {
		return a.lastErr
	}

	err := tree.Check()
	if nil != err {
		a.log.Criticalf("%s: version: %d  audit failed: %s", a.set.Name(), version, err)
		fault.Criticalf("set: %s  version: %d  corrupt tree: %s", a.set.Name(), version, err)
	} else {
		a.log.Debugf("%s: version: %d  count: %d  height: %d  ok", a.set.Name(), version, tree.Count(), tree.Height())
	}

	a.audited = version
	a.lastErr = err
	return err
}
