// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keyset - a named, concurrently accessible set of items
// backed by a persistent AVL tree
//
// writers are serialised and publish a new tree by swapping the root;
// readers take a snapshot which never changes, so a long traversal
// does not hold any lock.
//
// two background processes are provided: the Auditor which verifies
// the tree structure and the Checkpointer which writes the set to a
// Store whenever it has changed.
package keyset
