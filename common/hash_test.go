// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	//空串的keccak256
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(Keccak256(nil)))
	assert.Equal(t, Keccak256([]byte("4nonce")), Keccak256([]byte("4"), []byte("nonce")))
	assert.Len(t, Keccak256([]byte("x")), 32)
}

func TestHex(t *testing.T) {
	b, err := FromHex("0x0102ff")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 0xff}, b)

	b, err = FromHex("abc")
	require.Nil(t, err)
	assert.Equal(t, []byte{0x0a, 0xbc}, b)

	_, err = FromHex("0xzz")
	assert.NotNil(t, err)

	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 0xff}))
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	src[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, dst)
}
