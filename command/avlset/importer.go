// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/element"
	"github.com/bitmark-inc/avltree/keyset"
	"github.com/bitmark-inc/avltree/watcher"
)

// re-imports are limited to one every few seconds
const (
	rateLimitImport = rate.Limit(0.5)
	rateBurstImport = 1
)

// events closer together than this are treated as one change
const settleTime = 100 * time.Millisecond

// read one item per line, blank lines and lines starting with '#'
// are skipped
func readItems(fileName string, kind element.Kind) ([]avl.Item, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	items := make([]avl.Item, 0, 64)
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		item, err := element.Parse(kind, line)
		if nil != err {
			return nil, fmt.Errorf("%s:%d: %w", fileName, lineNumber, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return items, nil
}

// build a tree from a file
func readTree(fileName string, kind element.Kind) (*avl.Tree, error) {
	items, err := readItems(fileName, kind)
	if nil != err {
		return nil, err
	}
	tree := avl.New()
	for _, item := range items {
		tree = tree.Insert(item)
	}
	return tree, nil
}

// background process to reload a set whenever the import file changes
type importer struct {
	log     *logger.L
	limiter *rate.Limiter
	set     *keyset.Set
	kind    element.Kind
	watcher watcher.FileWatcher
}

func newImporter(set *keyset.Set, kind element.Kind, w watcher.FileWatcher, log *logger.L) *importer {
	return &importer{
		log:     log,
		limiter: rate.NewLimiter(rateLimitImport, rateBurstImport),
		set:     set,
		kind:    kind,
		watcher: w,
	}
}

// Run - background process loop
func (imp *importer) Run(args interface{}, shutdown <-chan struct{}) {

	imp.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-imp.watcher.ChangeChannel():
			if !imp.settle(shutdown) || !imp.wait(shutdown) {
				break loop
			}
			if err := imp.reload(); nil != err {
				imp.log.Errorf("reload: %q  error: %s", imp.watcher.FilePath(), err)
			}

		case <-imp.watcher.RemoveChannel():
			imp.log.Warnf("import file: %q removed, set unchanged", imp.watcher.FilePath())
		}
	}

	imp.log.Info("shutting down…")
	imp.log.Flush()
}

// absorb the burst of events from a single write, false on shutdown
func (imp *importer) settle(shutdown <-chan struct{}) bool {
	timeout := time.After(settleTime)
	for {
		select {
		case <-shutdown:
			return false
		case <-imp.watcher.ChangeChannel():
		case <-timeout:
			return true
		}
	}
}

// delay until the limiter allows another reload, false on shutdown
func (imp *importer) wait(shutdown <-chan struct{}) bool {
	r := imp.limiter.Reserve()
	if !r.OK() {
		return false
	}
	select {
	case <-shutdown:
		r.Cancel()
		return false
	case <-time.After(r.Delay()):
		return true
	}
}

// replace the set with the file contents
func (imp *importer) reload() error {
	tree, err := readTree(imp.watcher.FilePath(), imp.kind)
	if nil != err {
		return err
	}
	imp.set.Replace(tree)
	imp.log.Infof("reloaded: %q  count: %d", imp.watcher.FilePath(), tree.Count())
	return nil
}
