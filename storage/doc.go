// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain named sets in an on-disk LevelDB store
//
// Notes:
// 1. each record type has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. name     = set name, must not contain 0x00
// 4. element  = order preserving element encoding (see element.Encode)
// 5. count    = big endian uint64 (8 bytes)
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32 (4 bytes)
//
// Sets:
//
//   N ++ name                  - set is present
//                                data: count of items ++ kind
//                                (kind is empty for an empty set)
//   S ++ name ++ 0x00 ++ element
//                              - one distinct element
//                                data: count of occurrences
package storage
