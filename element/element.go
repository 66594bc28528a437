// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package element

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Kind - type of element held in a set
type Kind string

// supported kinds
const (
	StringKind  Kind = "string"
	IntegerKind Kind = "integer"
)

// String - a text element
type String string

// Integer - a signed numeric element
type Integer int64

// Compare - lexical comparison for AVL interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// Compare - numeric comparison for AVL interface
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - conversion for fmt package
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// ParseKind - validate a kind name, case insensitive
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case StringKind, IntegerKind:
		return k, nil
	default:
		return "", fmt.Errorf("kind: %q: %w", name, fault.ErrUnknownKind)
	}
}

// KindOf - the kind of an element
func KindOf(item avl.Item) (Kind, error) {
	switch item.(type) {
	case String:
		return StringKind, nil
	case Integer:
		return IntegerKind, nil
	default:
		return "", fmt.Errorf("element: %v: %w", item, fault.ErrInvalidElement)
	}
}

// Parse - create an element of the given kind from text
func Parse(kind Kind, text string) (avl.Item, error) {
	switch kind {
	case StringKind:
		return String(text), nil
	case IntegerKind:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if nil != err {
			return nil, fmt.Errorf("integer: %q: %w", text, fault.ErrInvalidElement)
		}
		return Integer(n), nil
	default:
		return nil, fmt.Errorf("kind: %q: %w", kind, fault.ErrUnknownKind)
	}
}

// Encode - order preserving binary form of an element
//
// integers are big endian with the sign bit inverted
func Encode(item avl.Item) ([]byte, error) {
	switch e := item.(type) {
	case String:
		return []byte(e), nil
	case Integer:
		buffer := make([]byte, 8)
		binary.BigEndian.PutUint64(buffer, uint64(e)^(1<<63))
		return buffer, nil
	default:
		return nil, fmt.Errorf("element: %v: %w", item, fault.ErrInvalidElement)
	}
}

// Decode - reverse of Encode
func Decode(kind Kind, buffer []byte) (avl.Item, error) {
	switch kind {
	case StringKind:
		return String(buffer), nil
	case IntegerKind:
		if 8 != len(buffer) {
			return nil, fmt.Errorf("integer length: %d: %w", len(buffer), fault.ErrInvalidElement)
		}
		return Integer(binary.BigEndian.Uint64(buffer) ^ (1 << 63)), nil
	default:
		return nil, fmt.Errorf("kind: %q: %w", kind, fault.ErrUnknownKind)
	}
}
