// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package element_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/element"
	"github.com/bitmark-inc/avltree/fault"
)

func TestParseKind(t *testing.T) {
	k, err := element.ParseKind(" Integer ")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, element.IntegerKind, k, "wrong kind")

	_, err = element.ParseKind("float")
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %v", err)
}

func TestParse(t *testing.T) {
	s, err := element.Parse(element.StringKind, "apple")
	assert.Nil(t, err, "string parse error")
	assert.Equal(t, element.String("apple"), s, "wrong string")

	i, err := element.Parse(element.IntegerKind, " -42")
	assert.Nil(t, err, "integer parse error")
	assert.Equal(t, element.Integer(-42), i, "wrong integer")

	_, err = element.Parse(element.IntegerKind, "4x2")
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)

	_, err = element.Parse(element.Kind("float"), "1.5")
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %v", err)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, element.Integer(-5).Compare(element.Integer(3)), "wrong less")
	assert.Equal(t, 0, element.Integer(3).Compare(element.Integer(3)), "wrong equal")
	assert.Equal(t, 1, element.Integer(10).Compare(element.Integer(9)), "wrong greater")
	assert.Equal(t, -1, element.String("10").Compare(element.String("9")), "strings not lexical")
}

// encoded integers must sort like the integers themselves
func TestEncodePreservesOrder(t *testing.T) {
	values := []element.Integer{-1 << 62, -300, -1, 0, 1, 255, 256, 1 << 40}

	previous := []byte(nil)
	for _, v := range values {
		b, err := element.Encode(v)
		assert.Nil(t, err, "encode error")
		if nil != previous && bytes.Compare(previous, b) >= 0 {
			t.Fatalf("encoding of: %d does not sort after its predecessor", v)
		}
		previous = b

		d, err := element.Decode(element.IntegerKind, b)
		assert.Nil(t, err, "decode error")
		assert.Equal(t, v, d, "wrong decode")
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := element.Decode(element.IntegerKind, []byte{1, 2, 3})
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)

	_, err = element.Encode(nil)
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)

	s, err := element.Decode(element.StringKind, []byte("pear"))
	assert.Nil(t, err, "decode error")
	assert.Equal(t, element.String("pear"), s, "wrong string")
}

func TestKindOf(t *testing.T) {
	k, err := element.KindOf(element.String("x"))
	assert.Nil(t, err, "string kind error")
	assert.Equal(t, element.StringKind, k, "wrong kind")

	k, err = element.KindOf(element.Integer(3))
	assert.Nil(t, err, "integer kind error")
	assert.Equal(t, element.IntegerKind, k, "wrong kind")

	_, err = element.KindOf(nil)
	assert.True(t, fault.IsErrInvalid(err), "nil accepted")
}
