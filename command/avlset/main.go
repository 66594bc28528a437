// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		usage(os.Stdout, program)
		return
	}

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	// these commands don't require the configuration
	switch command {
	case "version", "V":
		fmt.Printf("%s\n", version)
		return
	case "help", "h", "?":
		usage(os.Stdout, program)
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic log setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	env := &environment{
		configuration: masterConfiguration,
		log:           log,
		out:           os.Stdout,
		verbose:       len(options["verbose"]) > 0,
		signals:       ch,
	}

	if "run" == command || "start" == command {
		if 0 == len(options["quiet"]) {
			fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
		}
	}

	err = processCommand(env, command, arguments)
	if errors.Is(err, fault.ErrUnknownCommand) {
		fmt.Printf("error: no such command: %v\n", command)
		usage(os.Stdout, program)
		exitwithstatus.Exit(1)
	} else if nil != err {
		log.Errorf("command: %s  error: %s", command, err)
		exitwithstatus.Message("%s: command: %s  error: %s", program, command, err)
	}
}

func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                (h)      - display this message\n")
	fmt.Fprintf(w, "  version             (V)      - display version string\n\n")

	fmt.Fprintf(w, "  insert KEY...       (add)    - add keys to the configured set\n")
	fmt.Fprintf(w, "  delete KEY...       (remove) - remove one occurrence of each key\n")
	fmt.Fprintf(w, "  search KEY...       (s)      - report presence and rank of each key\n")
	fmt.Fprintf(w, "  import FILE                  - add one key per line from FILE\n\n")

	fmt.Fprintf(w, "  list                (l)      - all keys in ascending order\n")
	fmt.Fprintf(w, "  print               (p)      - draw the tree, --verbose adds node details\n")
	fmt.Fprintf(w, "  check                        - verify the tree structure\n")
	fmt.Fprintf(w, "  stats                        - count, height and height bound\n\n")

	fmt.Fprintf(w, "  names                        - list all stored sets\n")
	fmt.Fprintf(w, "  drop                         - delete the configured set from the database\n\n")

	fmt.Fprintf(w, "  run                 (start)  - keep the set loaded, audit and checkpoint it\n")
	fmt.Fprintf(w, "                                 and reload import_file whenever it changes\n")
	fmt.Fprintf(w, "\n")
}
