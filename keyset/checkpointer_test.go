// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyset

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/element"
)

const internalLogDir = "testing-internal"

func setupInternalLogger() {
	_ = os.RemoveAll(internalLogDir)
	_ = os.Mkdir(internalLogDir, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: internalLogDir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

func teardownInternalLogger() {
	logger.Finalise()
	_ = os.RemoveAll(internalLogDir)
}

// records the count of every tree saved
type countingStore struct {
	sync.Mutex
	counts []int
}

func (s *countingStore) Save(name string, tree *avl.Tree) error {
	s.Lock()
	s.counts = append(s.counts, tree.Count())
	s.Unlock()
	return nil
}

// each insert adds one item and one version, so a saved tree must
// hold exactly as many items as the version recorded for it
func TestCheckpointRecordsVersionOfSavedTree(t *testing.T) {
	setupInternalLogger()
	defer teardownInternalLogger()

	set, err := New("numbers", logger.New("testing"))
	assert.Nil(t, err, "new set error")

	store := &countingStore{}
	c, err := NewCheckpointer(set, store, time.Hour, logger.New("testing"))
	assert.Nil(t, err, "new checkpointer error")

	const inserts = 2000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < inserts; i += 1 {
			set.Insert(element.Integer(i))
		}
	}()

writing:
	for {
		select {
		case <-done:
			break writing
		default:
		}
		previous := len(store.counts)
		assert.Nil(t, c.Checkpoint(), "checkpoint error")
		if len(store.counts) > previous {
			assert.Equal(t, uint64(store.counts[len(store.counts)-1]), c.saved, "saved version does not match saved tree")
		}
	}

	assert.Nil(t, c.Checkpoint(), "final checkpoint error")
	assert.Equal(t, uint64(inserts), c.saved, "final version not saved")
	assert.Equal(t, inserts, store.counts[len(store.counts)-1], "final tree not saved")
}
