// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative not joined")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute changed")
	assert.Equal(t, "/data/sets.leveldb", util.EnsureAbsolute("/data/x/..", "./sets.leveldb"), "not cleaned")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(fileName), "file exists before creation")

	assert.Nil(t, ioutil.WriteFile(fileName, []byte{}, 0600), "write error")
	assert.True(t, util.EnsureFileExists(fileName), "file not found")
}

func TestIsPlainFileName(t *testing.T) {
	assert.True(t, util.IsPlainFileName("avlset.log"), "plain name rejected")
	assert.False(t, util.IsPlainFileName("log/avlset.log"), "path accepted")
	assert.False(t, util.IsPlainFileName("/avlset.log"), "absolute path accepted")
	assert.False(t, util.IsPlainFileName(""), "empty name accepted")
}
