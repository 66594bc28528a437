// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package element - concrete items for AVL trees
//
// String items order lexically by byte, Integer items numerically.
// The binary encoding preserves order so that encoded elements sort
// the same way in a key value store.
package element
