// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/element"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/keyset"
	"github.com/bitmark-inc/avltree/storage"
	"github.com/bitmark-inc/avltree/util"
)

// state shared by all commands
type environment struct {
	configuration *Configuration
	log           *logger.L
	out           io.Writer
	verbose       bool
	signals       <-chan os.Signal
}

// data command handler
//
// returns fault.ErrUnknownCommand so the caller can print usage
func processCommand(env *environment, command string, arguments []string) error {

	switch command {
	case "insert", "add":
		return env.modify(arguments, func(set *keyset.Set, items []avl.Item) {
			n := set.Insert(items...)
			fmt.Fprintf(env.out, "inserted: %d  count: %d\n", n, set.Count())
		})

	case "delete", "remove":
		return env.modify(arguments, func(set *keyset.Set, items []avl.Item) {
			n := set.Delete(items...)
			fmt.Fprintf(env.out, "deleted: %d  count: %d\n", n, set.Count())
		})

	case "import":
		if 1 != len(arguments) {
			return fmt.Errorf("import requires one file name: %w", fault.ErrMissingArgument)
		}
		items, err := readItems(arguments[0], env.configuration.kind())
		if nil != err {
			return err
		}
		return env.update(func(set *keyset.Set) {
			n := set.Insert(items...)
			fmt.Fprintf(env.out, "imported: %d  count: %d\n", n, set.Count())
		})

	case "search", "s":
		items, err := env.parse(arguments)
		if nil != err {
			return err
		}
		tree, err := env.load()
		if nil != err {
			return err
		}
		for _, item := range items {
			if rank, found := tree.Rank(item); found {
				fmt.Fprintf(env.out, "%v: found  rank: %d\n", item, rank)
			} else {
				fmt.Fprintf(env.out, "%v: not found\n", item)
			}
		}
		return nil

	case "list", "l":
		tree, err := env.load()
		if nil != err {
			return err
		}
		tree.Walk(func(item avl.Item) bool {
			fmt.Fprintf(env.out, "%v\n", item)
			return true
		})
		return nil

	case "print", "p":
		tree, err := env.load()
		if nil != err {
			return err
		}
		tree.Print(env.out, env.verbose)
		return nil

	case "check":
		tree, err := env.load()
		if nil != err {
			return err
		}
		if err := tree.Check(); nil != err {
			return err
		}
		fmt.Fprintf(env.out, "ok  count: %d  height: %d\n", tree.Count(), tree.Height())
		return nil

	case "stats":
		tree, err := env.load()
		if nil != err {
			return err
		}
		fmt.Fprintf(env.out, "set:            %s\n", env.configuration.Set)
		fmt.Fprintf(env.out, "kind:           %s\n", env.configuration.Kind)
		fmt.Fprintf(env.out, "shape:          %s\n", tree.Shape())
		fmt.Fprintf(env.out, "count:          %d\n", tree.Count())
		fmt.Fprintf(env.out, "height:         %d\n", tree.Height())
		fmt.Fprintf(env.out, "maximum height: %d\n", avl.MaximumHeight(tree.Count()))
		fmt.Fprintf(env.out, "balance factor: %d\n", tree.BalanceFactor())
		if !tree.IsEmpty() {
			fmt.Fprintf(env.out, "first:          %v\n", tree.First())
			fmt.Fprintf(env.out, "last:           %v\n", tree.Last())
		}
		return nil

	case "names":
		if !util.EnsureFileExists(env.configuration.Database) {
			return nil
		}
		db, err := storage.Open(env.configuration.Database, storage.ReadOnly)
		if nil != err {
			return err
		}
		defer db.Close()
		names, err := db.Names()
		if nil != err {
			return err
		}
		for _, name := range names {
			fmt.Fprintf(env.out, "%s\n", name)
		}
		return nil

	case "drop":
		if !util.EnsureFileExists(env.configuration.Database) {
			return fault.ErrSetNotFound
		}
		db, err := storage.Open(env.configuration.Database, storage.ReadWrite)
		if nil != err {
			return err
		}
		defer db.Close()
		if err := db.Remove(env.configuration.Set); nil != err {
			return err
		}
		fmt.Fprintf(env.out, "dropped: %s\n", env.configuration.Set)
		return nil

	case "run", "start":
		return env.run()

	default:
		return fault.ErrUnknownCommand
	}
}

// parse command arguments as elements of the configured kind
func (env *environment) parse(arguments []string) ([]avl.Item, error) {
	if 0 == len(arguments) {
		return nil, fmt.Errorf("no items given: %w", fault.ErrMissingArgument)
	}
	items := make([]avl.Item, 0, len(arguments))
	for _, a := range arguments {
		item, err := element.Parse(env.configuration.kind(), a)
		if nil != err {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// read-only view of the stored set, empty if never saved
func (env *environment) load() (*avl.Tree, error) {
	if !util.EnsureFileExists(env.configuration.Database) {
		return avl.New(), nil
	}

	db, err := storage.Open(env.configuration.Database, storage.ReadOnly)
	if nil != err {
		return nil, err
	}
	defer db.Close()

	return loadTree(db, env.configuration)
}

func loadTree(db *storage.Database, cfg *Configuration) (*avl.Tree, error) {
	tree, err := db.Load(cfg.Set, cfg.kind())
	if fault.ErrSetNotFound == err {
		return avl.New(), nil
	}
	return tree, err
}

// open the stored set for writing
func openSet(cfg *Configuration) (*storage.Database, *keyset.Set, error) {
	db, err := storage.Open(cfg.Database, storage.ReadWrite)
	if nil != err {
		return nil, nil, err
	}

	tree, err := loadTree(db, cfg)
	if nil != err {
		db.Close()
		return nil, nil, err
	}

	set, err := keyset.New(cfg.Set, logger.New("keyset"))
	if nil != err {
		db.Close()
		return nil, nil, err
	}
	set.Replace(tree)
	return db, set, nil
}

// parse items then apply a change to the set
func (env *environment) modify(arguments []string, f func(*keyset.Set, []avl.Item)) error {
	items, err := env.parse(arguments)
	if nil != err {
		return err
	}
	return env.update(func(set *keyset.Set) {
		f(set, items)
	})
}

// apply a change and save the result
func (env *environment) update(f func(*keyset.Set)) error {
	db, set, err := openSet(env.configuration)
	if nil != err {
		return err
	}
	defer db.Close()

	version := set.Version()
	f(set)
	if version == set.Version() {
		return nil
	}

	tree := set.Snapshot()
	env.log.Infof("saving: %s  count: %d", set.Name(), tree.Count())
	return db.Save(set.Name(), tree)
}
