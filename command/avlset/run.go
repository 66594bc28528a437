// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/keyset"
	"github.com/bitmark-inc/avltree/watcher"
)

// keep the set in memory with periodic audit and checkpoint until a
// signal is received
func (env *environment) run() error {

	cfg := env.configuration

	db, set, err := openSet(cfg)
	if nil != err {
		return err
	}
	defer db.Close()

	env.log.Infof("set: %s  kind: %s  count: %d", set.Name(), cfg.Kind, set.Count())

	auditor, err := keyset.NewAuditor(set, cfg.auditInterval(), logger.New("auditor"))
	if nil != err {
		return err
	}

	checkpointer, err := keyset.NewCheckpointer(set, db, cfg.checkpointInterval(), logger.New("checkpoint"))
	if nil != err {
		return err
	}

	processes := background.Processes{auditor, checkpointer}

	if "" != cfg.ImportFile {
		w, err := watcher.New(cfg.ImportFile, logger.New("watcher"))
		if nil != err {
			return err
		}
		defer w.Close()

		imp := newImporter(set, cfg.kind(), w, logger.New("importer"))

		// the file replaces the stored contents
		if err := imp.reload(); nil != err {
			return err
		}

		if err := w.Start(); nil != err {
			return err
		}
		processes = append(processes, imp)
	}

	p := background.Start(processes, nil)

	sig := <-env.signals
	env.log.Infof("received signal: %v", sig)

	// final checkpoint happens here
	p.Stop()

	// the saved tree must be consistent
	fault.PanicIfError("final audit", auditor.Audit())
	return nil
}
