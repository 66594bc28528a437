// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/element"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabase           = "avlset.leveldb"
	defaultSet                = "default"
	defaultKind               = element.StringKind
	defaultAuditInterval      = 60 // seconds
	defaultCheckpointInterval = 10 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "avlset.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the program's configuration file
type Configuration struct {
	DataDirectory      string               `gluamapper:"data_directory" json:"data_directory"`
	Database           string               `gluamapper:"database" json:"database"`
	Set                string               `gluamapper:"set" json:"set"`
	Kind               string               `gluamapper:"kind" json:"kind"`
	AuditInterval      int                  `gluamapper:"audit_interval" json:"audit_interval"`
	CheckpointInterval int                  `gluamapper:"checkpoint_interval" json:"checkpoint_interval"`
	ImportFile         string               `gluamapper:"import_file" json:"import_file"`
	Logging            logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:      defaultDataDirectory,
		Database:           defaultDatabase,
		Set:                defaultSet,
		Kind:               string(defaultKind),
		AuditInterval:      defaultAuditInterval,
		CheckpointInterval: defaultCheckpointInterval,
		ImportFile:         "", // no import file by default

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	kind, err := element.ParseKind(options.Kind)
	if nil != err {
		return nil, err
	}
	options.Kind = string(kind)

	if "" == options.Set {
		return nil, fault.ErrInvalidSetName
	}

	if options.AuditInterval <= 0 || options.CheckpointInterval <= 0 {
		return nil, fault.ErrInvalidInterval
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrNotADirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrNotADirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.ImportFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names
	mustNotBePaths := []*string{
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		if !util.IsPlainFileName(*f) {
			return nil, fmt.Errorf("file: %q: %w", *f, fault.ErrNotPlainFileName)
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

func (c *Configuration) kind() element.Kind {
	return element.Kind(c.Kind)
}

func (c *Configuration) auditInterval() time.Duration {
	return time.Duration(c.AuditInterval) * time.Second
}

func (c *Configuration) checkpointInterval() time.Duration {
	return time.Duration(c.CheckpointInterval) * time.Second
}
