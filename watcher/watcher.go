// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - notify when a single file changes or is removed
package watcher

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
)

// FileWatcher - events for one file
type FileWatcher interface {
	Start() error
	Close() error
	FilePath() string
	ChangeChannel() <-chan struct{}
	RemoveChannel() <-chan struct{}
}

type fileWatcher struct {
	sync.Mutex
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	started  bool
}

// New - create a watcher for an existing file
//
// the containing directory is watched so that editors which replace
// the file are still seen as a change
func New(targetFile string, log *logger.L) (FileWatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if info, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrWatchedFileMissing
	} else if nil != err {
		return nil, err
	} else if info.IsDir() {
		return nil, fault.ErrIsADirectory
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

func (w *fileWatcher) FilePath() string {
	return w.filePath
}

func (w *fileWatcher) ChangeChannel() <-chan struct{} {
	return w.change
}

func (w *fileWatcher) RemoveChannel() <-chan struct{} {
	return w.remove
}

// Start - begin delivering events
func (w *fileWatcher) Start() error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		return fault.ErrAlreadyInitialised
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}
	w.started = true

	go w.loop()

	return nil
}

// Close - stop watching, no further events are sent
func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

func (w *fileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}

			if isRemove(event) {
				if _, err := os.Stat(w.filePath); nil == err {
					// replaced by rename
					w.sendEvent(w.change, "change")
					continue
				}
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				continue
			}

			if isChange(event) {
				w.log.Info("sending file change event…")
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if isChannelFull(ch) {
		w.log.Debugf("event channel %s full, discard event", name)
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
